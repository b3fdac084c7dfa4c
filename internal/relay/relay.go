// Package relay performs the single call-and-store round trip behind the
// chat endpoint: resolve the session, infer follow-up context, call the
// completion service with the composed system prompt, clean the reply, and
// persist both turns.
package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/rmss-studio/tutorbot/internal/dialog"
	"github.com/rmss-studio/tutorbot/internal/history"
	"github.com/rmss-studio/tutorbot/internal/llm"
	"github.com/rmss-studio/tutorbot/internal/logger"
)

// How many stored turns to read back for context inference. The dialog
// lookback only ever uses the most recent assistant message.
const lookbackTurns = 10

// Request is one inbound chat message. SessionID may be empty, in which case
// a fresh session is minted. UserType is stored for record-keeping only.
type Request struct {
	Message   string
	SessionID string
	UserType  string
}

// Response echoes the session and carries the assistant reply.
type Response struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
}

// Relay wires the completion client to the transcript store. The system
// prompt is fixed at construction and never mutated.
type Relay struct {
	llm    llm.Client
	store  *history.Store
	system string
	model  string
}

// New creates a relay around the given completion client and store.
func New(client llm.Client, store *history.Store, systemPrompt, model string) *Relay {
	return &Relay{
		llm:    client,
		store:  store,
		system: systemPrompt,
		model:  model,
	}
}

// Chat handles one user message end to end. Sessions are not locked: two
// concurrent requests on the same session can interleave their lookbacks,
// which at worst costs a context rewrite, never transcript integrity.
func (r *Relay) Chat(ctx context.Context, req Request) (Response, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	recent, err := r.store.Recent(ctx, sessionID, lookbackTurns)
	if err != nil {
		return Response{}, fmt.Errorf("history lookback: %w", err)
	}

	var lastAssistant string
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Sender == history.SenderAssistant {
			lastAssistant = recent[i].Body
			break
		}
	}

	hint := dialog.Infer(lastAssistant, req.Message)
	if hint.Rewritten {
		logger.L.Info("context rewrite applied", "session_id", sessionID, "rewritten", hint.Message)
	}

	resp, err := r.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.system + hint.Instruction},
			{Role: openai.ChatMessageRoleUser, Content: hint.Message},
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("completion call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("completion returned no choices")
	}

	cleaned := CleanReply(resp.Choices[0].Message.Content)

	// The transcript records what the user actually typed, not the rewrite.
	userMsg := history.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Body:      req.Message,
		Sender:    history.SenderUser,
		UserType:  req.UserType,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.store.SaveMessage(ctx, userMsg); err != nil {
		return Response{}, fmt.Errorf("store user turn: %w", err)
	}

	replyID := uuid.New().String()
	assistantMsg := history.Message{
		ID:        replyID,
		SessionID: sessionID,
		Body:      cleaned,
		Sender:    history.SenderAssistant,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.store.SaveMessage(ctx, assistantMsg); err != nil {
		return Response{}, fmt.Errorf("store assistant turn: %w", err)
	}

	return Response{Response: cleaned, SessionID: sessionID, MessageID: replyID}, nil
}

// CleanReply trims the raw model output and restores line breaks the model
// sometimes emits as literal two-character escape sequences. Genuine line
// breaks are preserved for mobile-friendly formatting, per the prompt's own
// instructions.
func CleanReply(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "")
	return s
}
