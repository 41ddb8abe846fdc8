package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/pkg/log"
)

type fakeUseCase struct {
	sessions int
	inputs   []orchestrator.ProcessInput
	cleared  []string
	ledger   map[string][]conversation.Message
}

func newFakeUseCase() *fakeUseCase {
	return &fakeUseCase{ledger: map[string][]conversation.Message{}}
}

func (f *fakeUseCase) Process(_ context.Context, in orchestrator.ProcessInput) (orchestrator.ProcessOutput, error) {
	if strings.TrimSpace(in.Message) == "" {
		return orchestrator.ProcessOutput{}, orchestrator.ErrEmptyMessage
	}
	if in.SessionID == "" {
		in.SessionID = f.StartSession()
	}
	f.inputs = append(f.inputs, in)
	f.ledger[in.SessionID] = append(f.ledger[in.SessionID],
		conversation.Message{Role: conversation.RoleUser, Content: in.Message},
		conversation.Message{Role: conversation.RoleAssistant, Content: "Job created"},
	)
	return orchestrator.ProcessOutput{
		SessionID: in.SessionID,
		Response: orchestrator.AgentResponse{
			Success:     true,
			Message:     "Job created",
			Summary:     "Completed 1 tasks.",
			NextActions: []string{"Post the job"},
		},
	}, nil
}

func (f *fakeUseCase) StartSession() string {
	f.sessions++
	return "sess-" + string(rune('0'+f.sessions))
}

func (f *fakeUseCase) Status(id string) orchestrator.SessionStatus {
	return orchestrator.SessionStatus{SessionID: id, ConversationLength: len(f.ledger[id])}
}

func (f *fakeUseCase) History(id string, _ int) []conversation.Message { return f.ledger[id] }

func (f *fakeUseCase) Export(id string) (conversation.Export, bool) {
	msgs, ok := f.ledger[id]
	if !ok {
		return conversation.Export{}, false
	}
	return conversation.Export{
		SessionID: id,
		Messages:  msgs,
		CreatedAt: time.Date(2026, 3, 6, 15, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 6, 15, 1, 0, 0, time.UTC),
	}, true
}

func (f *fakeUseCase) ClearSession(id string) {
	f.cleared = append(f.cleared, id)
	delete(f.ledger, id)
}

func executeCLI(t *testing.T, uc *fakeUseCase, stdin string, args ...string) (string, error) {
	t.Helper()
	build := func(context.Context) (*runtime, error) {
		return &runtime{uc: uc, l: log.NewNop()}, nil
	}

	cmd := newRootCmd(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	uc := newFakeUseCase()

	out, err := executeCLI(t, uc, "", "ask", "Create", "a", "Go", "job", "--context", "position=Go Engineer")
	require.NoError(t, err)
	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "Create a Go job", uc.inputs[0].Message)
	assert.Equal(t, "Go Engineer", uc.inputs[0].Context["position"])
	assert.Contains(t, out, "Job created")
	assert.Contains(t, out, "Completed 1 tasks.")
	assert.Contains(t, out, "- Post the job")
}

func TestAsk_ExportYAML(t *testing.T) {
	uc := newFakeUseCase()
	path := filepath.Join(t.TempDir(), "session.yaml")

	_, err := executeCLI(t, uc, "", "ask", "Create a job", "--export", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export conversation.Export
	require.NoError(t, yaml.Unmarshal(data, &export))
	assert.Equal(t, "sess-1", export.SessionID)
	require.Len(t, export.Messages, 2)
	assert.Equal(t, conversation.RoleAssistant, export.Messages[1].Role)
}

func TestAsk_RequiresRequest(t *testing.T) {
	_, err := executeCLI(t, newFakeUseCase(), "", "ask")
	assert.Error(t, err)
}

func TestAsk_BuildFailure(t *testing.T) {
	cmd := newRootCmd(func(context.Context) (*runtime, error) {
		return nil, errors.New("no LLM providers configured")
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"ask", "hello"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no LLM providers configured")
}

func TestChat(t *testing.T) {
	uc := newFakeUseCase()
	stdin := strings.Join([]string{
		"help",
		"",
		"Create a job description for a Go engineer",
		"status",
		"export",
		"clear",
		"exit",
		"never reached",
	}, "\n")

	out, err := executeCLI(t, uc, stdin, "chat")
	require.NoError(t, err)

	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "sess-1", uc.inputs[0].SessionID)
	assert.Equal(t, []string{"sess-1"}, uc.cleared)

	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Assistant: Job created")
	assert.Contains(t, out, "messages: 2")
	assert.Contains(t, out, "session_id: sess-1")
	assert.Contains(t, out, "New session sess-2")
	assert.Contains(t, out, "Goodbye!")
}

func TestChat_EOFEnds(t *testing.T) {
	uc := newFakeUseCase()

	out, err := executeCLI(t, uc, "export\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to export yet.")
	assert.Empty(t, uc.inputs)
}

func TestCalendarAuth_MissingCredentials(t *testing.T) {
	_, err := executeCLI(t, newFakeUseCase(), "", "calendar-auth", "--credentials", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read credentials file")
}

func TestCalendarAuth_EmptyCode(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`), 0o600))

	out, err := executeCLI(t, newFakeUseCase(), "\n", "calendar-auth", "--credentials", creds)
	require.Error(t, err)
	assert.Contains(t, out, "accounts.google.com")
	assert.Contains(t, err.Error(), "no authorization code")
}
