package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A fresh session has no assistant turn to carry context from.
func TestInfer_NoPriorAssistantMessage(t *testing.T) {
	hint := Infer("", "J1 math")
	require.False(t, hint.Rewritten)
	require.Equal(t, "J1 math", hint.Message)
	require.Empty(t, hint.Instruction)
}

func TestInfer_LocationAnswer(t *testing.T) {
	lastAssistant := "Which location are you interested in for J1 Math?"

	hint := Infer(lastAssistant, "Marine Parade")
	require.True(t, hint.Rewritten)
	require.Equal(t, "J1 Math at Marine Parade", hint.Message)
	require.Contains(t, hint.Instruction, "J1 Math")
	require.Contains(t, hint.Instruction, "Marine Parade")
}

func TestInfer_LocationAnswerIsCaseInsensitive(t *testing.T) {
	hint := Infer("WHICH LOCATION would you like for P6 MATH?", "punggol")
	require.True(t, hint.Rewritten)
	require.Equal(t, "P6 Math at Punggol", hint.Message)
}

// The location can be buried in a longer reply; substring matching still
// picks it up.
func TestInfer_LocationAnswerEmbeddedInSentence(t *testing.T) {
	hint := Infer("Which location would you prefer for S1 Math?", "the bishan one please")
	require.True(t, hint.Rewritten)
	require.Equal(t, "S1 Math at Bishan", hint.Message)
}

func TestInfer_SubjectAnswer(t *testing.T) {
	lastAssistant := "Which subject or level would you like to know about at Punggol?"

	hint := Infer(lastAssistant, "P5 Science")
	require.True(t, hint.Rewritten)
	require.Equal(t, "P5 Science at Punggol", hint.Message)
	require.Contains(t, hint.Instruction, "Punggol")
	require.Contains(t, hint.Instruction, "P5 Science")
}

func TestInfer_WhichLevelVariant(t *testing.T) {
	hint := Infer("Which level interests you at Kovan?", "secondary math")
	require.True(t, hint.Rewritten)
	require.Equal(t, "secondary math at Kovan", hint.Message)
}

// Clarification phrased some other way is silently missed: passthrough.
func TestInfer_UnrecognizedClarification(t *testing.T) {
	hint := Infer("Could you tell me more about what you are looking for?", "Bishan")
	require.False(t, hint.Rewritten)
	require.Equal(t, "Bishan", hint.Message)
	require.Empty(t, hint.Instruction)
}

// "which location" asked, but the reply names no known location.
func TestInfer_LocationQuestionWithoutKnownLocation(t *testing.T) {
	hint := Infer("Which location are you interested in for J1 Math?", "the one near my house")
	require.False(t, hint.Rewritten)
	require.Equal(t, "the one near my house", hint.Message)
}

// "which location" asked and answered, but the assistant's question carried
// no recognizable subject phrase: nothing to carry over.
func TestInfer_LocationAnswerWithoutSubjectInQuestion(t *testing.T) {
	hint := Infer("Which location are you interested in?", "Jurong")
	require.False(t, hint.Rewritten)
	require.Equal(t, "Jurong", hint.Message)
}

// "which subject" asked, but the assistant's question named no location.
func TestInfer_SubjectQuestionWithoutLocation(t *testing.T) {
	hint := Infer("Which subject would you like to know about?", "chemistry")
	require.False(t, hint.Rewritten)
	require.Equal(t, "chemistry", hint.Message)
}

// The catalog is generated from the level × subject table; spot-check a few
// entries from each level band.
func TestSubjectPhraseCatalog(t *testing.T) {
	for _, phrase := range []string{"P2 Math", "P6 Science", "S3 AMath", "S4 EMath", "J2 Economics"} {
		got, ok := matchSubjectPhrase("about " + phrase + " please")
		require.True(t, ok, phrase)
		require.Equal(t, phrase, got)
	}

	_, ok := matchSubjectPhrase("P2 Science") // not offered at P2
	require.False(t, ok)
}

func TestMatchLocationCanonicalizes(t *testing.T) {
	got, ok := matchLocation("i live near MARINE parade lah")
	require.True(t, ok)
	require.Equal(t, "Marine Parade", got)

	_, ok = matchLocation("Tampines")
	require.False(t, ok)
}
