// Package dialog infers conversational context for short follow-up replies.
//
// The completion model tends to forget a clarifying exchange it initiated one
// turn earlier ("J1 math" -> "which location?" -> "Bishan"). This package
// inspects the most recent assistant message, decides whether the current
// user message answers a pending clarifying question, and if so produces a
// rewritten model-facing message plus an instruction for the system prompt.
// It is best-effort: anything it does not recognize passes through unchanged,
// and it never errors.
package dialog

import (
	"context"
	"fmt"

	"github.com/rmss-studio/tutorbot/internal/logger"

	"github.com/qmuntal/stateless" // FSM library
)

// FSM states: what clarifying question, if any, the previous assistant turn
// left pending.
type fsmState stateless.State

var (
	stateNoPendingQuestion fsmState = "NoPendingQuestion"
	stateAwaitingLocation  fsmState = "AwaitingLocation"
	stateAwaitingSubject   fsmState = "AwaitingSubject"
	stateResolved          fsmState = "Resolved"    // Terminal: context inferred, rewrite produced
	statePassthrough       fsmState = "Passthrough" // Terminal: no rewrite
)

type fsmTrigger stateless.Trigger

var (
	triggerLocationAnswered fsmTrigger = "LocationAnswered"
	triggerSubjectAnswered  fsmTrigger = "SubjectAnswered"
	triggerNoMatch          fsmTrigger = "NoMatch"
)

// Hint is the per-request inference result. Message is what gets sent to the
// model (the original user message unless Rewritten is set); Instruction is
// appended to the system prompt. Hints are ephemeral and never persisted.
type Hint struct {
	Message     string
	Instruction string
	Rewritten   bool
}

// Infer inspects the most recent assistant message for the session and the
// current user message, and returns the context hint to apply to the model
// call. lastAssistant is empty at the start of a session; the hint then is
// always a passthrough.
func Infer(lastAssistant, current string) Hint {
	hint := Hint{Message: current}

	start := classify(lastAssistant)
	fsm := stateless.NewStateMachine(start)

	fsm.Configure(stateNoPendingQuestion).
		Permit(triggerNoMatch, statePassthrough)

	// The assistant asked "which location" after the user named a subject.
	// The subject it was asking about is embedded in its own question.
	fsm.Configure(stateAwaitingLocation).
		Permit(triggerLocationAnswered, stateResolved).
		Permit(triggerNoMatch, statePassthrough)

	// The assistant asked "which subject" (or level) after the user named a
	// location; the location is embedded in the assistant's question.
	fsm.Configure(stateAwaitingSubject).
		Permit(triggerSubjectAnswered, stateResolved).
		Permit(triggerNoMatch, statePassthrough)

	fsm.Configure(stateResolved).
		OnEntryFrom(triggerLocationAnswered, func(_ context.Context, args ...any) error {
			subject := args[0].(string)
			location := args[1].(string)
			hint = Hint{
				Message:     fmt.Sprintf("%s at %s", subject, location),
				Instruction: fmt.Sprintf("\n\nCONTEXT: The user previously asked about %s and you asked which location. They answered '%s'. Provide %s information for %s location only.", subject, current, subject, location),
				Rewritten:   true,
			}
			return nil
		}).
		OnEntryFrom(triggerSubjectAnswered, func(_ context.Context, args ...any) error {
			location := args[0].(string)
			hint = Hint{
				Message:     fmt.Sprintf("%s at %s", current, location),
				Instruction: fmt.Sprintf("\n\nCONTEXT: The user previously asked about classes at %s and you asked which subject. They answered '%s'. Provide %s information for %s location only.", location, current, current, location),
				Rewritten:   true,
			}
			return nil
		})

	fsm.Configure(statePassthrough)

	trigger, args := resolveTrigger(start, lastAssistant, current)
	if err := fsm.Fire(trigger, args...); err != nil {
		// Misfires mean passthrough, never a failed request.
		logger.L.Warn("dialog FSM fire error", "error", err)
		return Hint{Message: current}
	}

	return hint
}

// classify derives the FSM's starting state from the most recent assistant
// message, checked in the precedence order "which location" first.
func classify(lastAssistant string) fsmState {
	if lastAssistant == "" {
		return stateNoPendingQuestion
	}
	if containsFold(lastAssistant, "which location") {
		return stateAwaitingLocation
	}
	if containsFold(lastAssistant, "which subject") || containsFold(lastAssistant, "which level") {
		return stateAwaitingSubject
	}
	return stateNoPendingQuestion
}

// resolveTrigger picks the trigger (and its payload) for the current user
// message given the machine's starting state.
func resolveTrigger(start fsmState, lastAssistant, current string) (stateless.Trigger, []any) {
	switch start {
	case stateAwaitingLocation:
		location, ok := matchLocation(current)
		if !ok {
			break
		}
		// The pending subject lives in the assistant's own question; without
		// one there is nothing to carry over.
		subject, ok := matchSubjectPhrase(lastAssistant)
		if !ok {
			break
		}
		return triggerLocationAnswered, []any{subject, location}
	case stateAwaitingSubject:
		if location, ok := matchLocation(lastAssistant); ok {
			return triggerSubjectAnswered, []any{location}
		}
	}
	return triggerNoMatch, nil
}
