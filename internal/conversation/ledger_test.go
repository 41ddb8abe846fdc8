package conversation

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(max int) Ledger {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	return New(Options{
		MaxHistory: max,
		Now: func() time.Time {
			n++
			return base.Add(time.Duration(n) * time.Second)
		},
		NewID: func() string { return "sess-fixed" },
	})
}

func TestAppend_CapDropsOldest(t *testing.T) {
	l := newTestLedger(20)
	for i := 1; i <= 25; i++ {
		_, err := l.Append("s1", RoleUser, fmt.Sprintf("m%d", i), nil)
		require.NoError(t, err)
	}

	msgs := l.Read("s1", 0)
	require.Len(t, msgs, 20)
	assert.Equal(t, "m6", msgs[0].Content)
	assert.Equal(t, "m25", msgs[19].Content)
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].Timestamp.After(msgs[i-1].Timestamp), "timestamps must be monotonic")
	}
}

func TestAppend_InvalidRole(t *testing.T) {
	l := newTestLedger(0)
	_, err := l.Append("s1", Role("system"), "x", nil)
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, 0, l.Len("s1"))

	_, err = l.Append("", RoleUser, "x", nil)
	assert.ErrorIs(t, err, ErrEmptySession)
}

func TestRead_Limit(t *testing.T) {
	l := newTestLedger(0)
	for i := 0; i < 5; i++ {
		_, _ = l.Append("s1", RoleUser, fmt.Sprint(i), nil)
	}
	msgs := l.Read("s1", 2)
	require.Len(t, msgs, 2)
	assert.Equal(t, "3", msgs[0].Content)
	assert.Nil(t, l.Read("missing", 3))
}

func TestSummarize(t *testing.T) {
	l := newTestLedger(0)
	assert.Equal(t, "New conversation", l.Summarize("s1"))

	_, _ = l.Append("s1", RoleUser, "first", nil)
	_, _ = l.Append("s1", RoleUser, "Create a job description", nil)
	_, _ = l.Append("s1", RoleAssistant, strings.Repeat("x", 120), nil)
	_, _ = l.Append("s1", RoleUser, "thanks", nil)

	want := "User: Create a job description | Assistant: " + strings.Repeat("x", 100) + "... | User: thanks"
	assert.Equal(t, want, l.Summarize("s1"))
	assert.Equal(t, want, l.Summarize("s1"), "summary must be deterministic")
}

func TestCreateSessionAndExport(t *testing.T) {
	l := newTestLedger(0)
	id := l.CreateSession()
	assert.Equal(t, "sess-fixed", id)

	info, ok := l.Session(id)
	require.True(t, ok)
	assert.Equal(t, 0, info.MessageCount)

	_, _ = l.Append(id, RoleUser, "hello", map[string]any{"source": "cli"})
	l.AddActiveTask(id, "task_1")
	l.AddActiveTask(id, "task_1")
	l.AddActiveTask(id, "task_2")
	l.RemoveActiveTask(id, "task_1")

	exp, ok := l.Export(id)
	require.True(t, ok)
	assert.Equal(t, id, exp.SessionID)
	require.Len(t, exp.Messages, 1)
	assert.Equal(t, "cli", exp.Messages[0].Metadata["source"])
	assert.Equal(t, []string{"task_2"}, exp.ActiveTasks)
	assert.True(t, exp.UpdatedAt.After(exp.CreatedAt))

	l.Clear(id)
	_, ok = l.Export(id)
	assert.False(t, ok)
}

func TestConcurrentAppendsAcrossSessions(t *testing.T) {
	l := New(Options{MaxHistory: 100})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("s%d", i)
			for j := 0; j < 30; j++ {
				_, _ = l.Append(sid, RoleUser, "m", nil)
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < 10; i++ {
		assert.Equal(t, 30, l.Len(fmt.Sprintf("s%d", i)))
	}
}
