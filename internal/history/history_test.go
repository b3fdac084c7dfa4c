package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(func() { s.Close() })
	require.NotNil(t, s.db, "expected sqlite-backed store in tests")
	return s
}

func msg(sessionID, sender, body string, at time.Time) Message {
	return Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Body:      body,
		Sender:    sender,
		CreatedAt: at,
	}
}

func TestListMessages_OrderAndIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderUser, "J1 math", base)))
	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderAssistant, "Which location?", base.Add(time.Second))))
	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderUser, "Bishan", base.Add(2*time.Second))))
	require.NoError(t, s.SaveMessage(ctx, msg("s2", SenderUser, "other session", base)))

	got, err := s.ListMessages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt), "timestamps must be non-decreasing")
	}
	require.Equal(t, "J1 math", got[0].Body)
	require.Equal(t, "Bishan", got[2].Body)
	for _, m := range got {
		require.Equal(t, "s1", m.SessionID)
	}
}

// Equal timestamps keep insertion order: the user turn is stored before the
// assistant reply and must stay first.
func TestListMessages_InsertionOrderOnEqualTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderUser, "first", at)))
	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderAssistant, "second", at)))

	got, err := s.ListMessages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Body)
	require.Equal(t, "second", got[1].Body)
}

func TestRecent_ReturnsChronologicalTail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 6; i++ {
		body := "turn"
		sender := SenderUser
		if i%2 == 1 {
			sender = SenderAssistant
		}
		require.NoError(t, s.SaveMessage(ctx, msg("s1", sender, body+string(rune('a'+i)), base.Add(time.Duration(i)*time.Second))))
	}

	got, err := s.Recent(ctx, "s1", 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, "turnc", got[0].Body)
	require.Equal(t, "turnf", got[3].Body)
}

func TestRecent_EmptySession(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Recent(context.Background(), "missing", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStatusChecks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	check := StatusCheck{ID: uuid.New().String(), ClientName: "monitor-1", Timestamp: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, s.SaveStatusCheck(ctx, check))

	got, err := s.ListStatusChecks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "monitor-1", got[0].ClientName)
}

// The memory fallback keeps the same contract when no database is available.
func TestMemoryFallback(t *testing.T) {
	s := &Store{}
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderUser, "one", base)))
	require.NoError(t, s.SaveMessage(ctx, msg("s1", SenderAssistant, "two", base.Add(time.Second))))
	require.NoError(t, s.SaveMessage(ctx, msg("s2", SenderUser, "elsewhere", base)))

	got, err := s.ListMessages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	tail, err := s.Recent(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.Equal(t, "two", tail[0].Body)
}
