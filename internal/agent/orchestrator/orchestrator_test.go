package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/internal/memory"
	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/internal/reasoning/reasoningtest"
	"hiring-orchestrator/pkg/log"
)

type harness struct {
	o      *Orchestrator
	fake   *reasoningtest.Fake
	mem    memory.Store
	ledger conversation.Ledger

	mu    sync.Mutex
	calls []string
	seen  map[string]map[string]any
}

func (h *harness) record(taskID string, ctx map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, taskID)
	h.seen[taskID] = ctx
}

func succeed(h *harness, msg string, next []string, ids map[string]string) agent.Handler {
	return agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
		h.record(in.Task.ID, in.Context)
		return agent.Output{Success: true, Message: msg, NextActions: next, EntityIDs: ids}, nil
	})
}

func newHarness(t *testing.T, handlers func(h *harness) agent.Handlers, structured ...string) *harness {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC) }
	h := &harness{
		fake:   &reasoningtest.Fake{Intent: reasoning.IntentAnalysis{Intent: "hire", Confidence: 0.9}, Structured: structured},
		mem:    memory.New(memory.Options{Now: now}),
		ledger: conversation.New(conversation.Options{Now: now}),
		seen:   map[string]map[string]any{},
	}
	var hs agent.Handlers
	if handlers != nil {
		hs = handlers(h)
	}
	l := log.NewNop()
	h.o = New(l, h.fake, planner.New(l, h.fake), agent.NewDispatcher(l, hs), h.mem, h.ledger, Options{Now: now})
	return h
}

func process(t *testing.T, h *harness, sessionID, message string) ProcessOutput {
	t.Helper()
	out, err := h.o.Process(context.Background(), ProcessInput{SessionID: sessionID, Message: message})
	require.NoError(t, err)
	return out
}

func TestProcess_IntentClarification(t *testing.T) {
	h := newHarness(t, nil)
	h.fake.Intent = reasoning.IntentAnalysis{RequiresClarification: true, ClarificationQuestions: []string{"Which role?", "Which team?"}}

	out := process(t, h, "s1", "create a job for X")

	assert.True(t, out.Response.Success)
	assert.Equal(t, MsgClarifyIntent, out.Response.Message)
	assert.Equal(t, []string{"Which role?", "Which team?"}, out.Response.Suggestions)
	assert.Equal(t, []State{StateReceived, StateIntentChecked, StateClarifying, StateResponded}, out.Trace)
	assert.Zero(t, out.Dispatched())
	assert.Nil(t, out.Plan)
	assert.Zero(t, h.fake.CallCount("GenerateStructured"), "no decomposition on the clarification path")

	msgs := h.ledger.Read("s1", 0)
	require.Len(t, msgs, 2)
	assert.Equal(t, conversation.RoleAssistant, msgs[1].Role)
	assert.Equal(t, MsgClarifyIntent, msgs[1].Content)
}

func TestProcess_IntentClarificationDefaultQuestion(t *testing.T) {
	h := newHarness(t, nil)
	h.fake.Intent = reasoning.IntentAnalysis{RequiresClarification: true}

	out := process(t, h, "s1", "help")
	assert.Equal(t, []string{DefaultClarifyQuestion}, out.Response.Suggestions)
}

func TestProcess_PlanClarification(t *testing.T) {
	h := newHarness(t, nil, `{"tasks":[],"requires_clarification":true,"clarification_questions":["What seniority?"]}`)

	out := process(t, h, "s1", "hire someone")

	assert.True(t, out.Response.Success)
	assert.Equal(t, MsgClarifyPlan, out.Response.Message)
	assert.Equal(t, []string{"What seniority?"}, out.Response.Suggestions)
	assert.True(t, out.Reached(StateDecomposed))
	assert.True(t, out.Reached(StateClarifying))
	assert.False(t, out.Reached(StateExecuting))
}

func TestProcess_InvalidPlanDispatchesNothing(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			JobDescription:  succeed(h, "jd", nil, nil),
			ResumeScreening: succeed(h, "screen", nil, nil),
		}
	}, `{"tasks":[
		{"task_type":"job_description","description":"a","priority":1},
		{"task_type":"resume_screening","description":"b","priority":2,"dependencies":["task_9"]}
	]}`)

	out := process(t, h, "s1", "write a JD and screen")

	assert.False(t, out.Response.Success)
	assert.Equal(t, "Invalid task sequence: task_2 depends on unknown task_9", out.Response.Message)
	assert.ErrorIs(t, out.Failure, planner.ErrInvalidPlan)
	assert.Equal(t, []State{StateReceived, StateIntentChecked, StateDecomposed, StateInvalidPlan, StateResponded}, out.Trace)
	assert.Zero(t, out.Dispatched())
	assert.Empty(t, h.calls)

	assert.Equal(t, 1, h.ledger.Len("s1"), "only the user message is recorded")
	assert.Empty(t, h.mem.ListShortTerm("s1"))
}

func TestProcess_MixedOutcomes(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			JobDescription: succeed(h, "Job created", []string{"A", "B", "C"}, map[string]string{agent.KeyJobID: "j1"}),
			ResumeScreening: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
				h.record(in.Task.ID, in.Context)
				panic("boom")
			}),
			InterviewScheduling: succeed(h, "Interview booked", []string{"C", "D", "E"}, map[string]string{agent.KeyInterviewID: "i1"}),
			EmailCommunication:  succeed(h, "Email sent", []string{"F", "G", "A"}, nil),
		}
	}, `{"tasks":[
		{"task_type":"email_communication","description":"email","priority":4},
		{"task_type":"interview_scheduling","description":"book","priority":3,"dependencies":["task_3"]},
		{"task_type":"job_description","description":"jd","priority":1},
		{"task_type":"payroll","description":"pay","priority":2},
		{"task_type":"resume_screening","description":"screen","priority":2}
	]}`)

	out := process(t, h, "s1", "run the whole hiring flow")

	require.Len(t, out.Results, 5)
	order := make([]string, len(out.Results))
	for i, r := range out.Results {
		order[i] = r.TaskID
	}
	assert.Equal(t, []string{"task_3", "task_4", "task_5", "task_2", "task_1"}, order)

	assert.False(t, out.Results[1].Success)
	assert.ErrorIs(t, out.Results[1].Err, agent.ErrUnknownTaskType)
	assert.False(t, out.Results[2].Success)
	assert.Equal(t, "panic: boom", out.Results[2].Error)

	assert.True(t, out.Response.Success)
	assert.Equal(t, "Job created\nInterview booked\nEmail sent", out.Response.Message)
	assert.Equal(t, "Completed 3 tasks.", out.Response.Summary)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, out.Response.NextActions)
	assert.Equal(t, map[string]any{agent.KeyJobID: "j1", agent.KeyInterviewID: "i1"}, out.Response.Data)
	assert.Nil(t, out.Failure)

	// task_2 depends on task_3 and runs after it
	prior, found := h.seen["task_2"][agent.ResultKey("task_3")]
	require.True(t, found)
	assert.True(t, prior.(agent.TaskResult).Success)

	msgs := h.ledger.Read("s1", 0)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Job created\nInterview booked\nEmail sent\n\nCompleted 3 tasks.", msgs[1].Content)

	snap, ok := h.mem.GetShortTerm("s1", KeyLastAction)
	require.True(t, ok)
	assert.Equal(t, "hire", snap.(lastAction).Intent)
	assert.Len(t, snap.(lastAction).Results, 5)

	status := h.o.Status("s1")
	assert.Empty(t, status.ActiveTasks)
	assert.Equal(t, 2, status.ConversationLength)
	assert.Equal(t, "j1", status.Context[ContextTypeEntities][agent.KeyJobID])
}

func TestProcess_AllTasksFail(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			Analytics: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
				return agent.Output{}, errors.New("repository offline")
			}),
		}
	}, `{"tasks":[
		{"task_type":"payroll","description":"pay","priority":1},
		{"task_type":"analytics","description":"stats","priority":2}
	]}`)

	out := process(t, h, "s1", "pay people and show stats")

	assert.False(t, out.Response.Success)
	assert.Equal(t, MsgAllTasksFailed+"\n- no handler for task type: payroll\n- repository offline", out.Response.Message)
	assert.Equal(t, []string{"no handler for task type: payroll", "repository offline"}, out.Response.Data[KeyErrors])
	assert.Empty(t, out.Response.Summary)
	assert.Equal(t, 2, h.ledger.Len("s1"))
}

func TestProcess_SingleSuccessHasNoSummary(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: succeed(h, "", nil, nil)}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":2}]}`)

	out := process(t, h, "s1", "stats please")

	assert.Equal(t, MsgTaskCompleted, out.Response.Message)
	assert.Empty(t, out.Response.Summary)
	assert.Nil(t, out.Response.Data)
}

func TestProcess_NextActionsCapped(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			JobDescription: succeed(h, "one", []string{"a", "b", "c", "a"}, nil),
			Analytics:      succeed(h, "two", []string{"d", "b", "e", "f", "g"}, nil),
		}
	}, `{"tasks":[
		{"task_type":"job_description","description":"jd","priority":1},
		{"task_type":"analytics","description":"stats","priority":2}
	]}`)

	out := process(t, h, "s1", "jd and stats")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, out.Response.NextActions)
}

func TestProcess_UpstreamFailures(t *testing.T) {
	t.Run("intent", func(t *testing.T) {
		h := newHarness(t, nil)
		h.fake.IntentErr = reasoning.ErrUpstream

		out := process(t, h, "s1", "hire")
		assert.False(t, out.Response.Success)
		assert.True(t, strings.HasPrefix(out.Response.Message, "I couldn't process your request: "))
		assert.ErrorIs(t, out.Failure, reasoning.ErrUpstream)
		assert.Equal(t, []State{StateReceived, StateResponded}, out.Trace)
		assert.Zero(t, h.fake.CallCount("GenerateStructured"))
		assert.Equal(t, 1, h.ledger.Len("s1"))
	})

	t.Run("unparseable plan", func(t *testing.T) {
		h := newHarness(t, nil)
		h.fake.StructuredErr = reasoning.ErrUnparseable

		out := process(t, h, "s1", "hire")
		assert.False(t, out.Response.Success)
		assert.ErrorIs(t, out.Failure, reasoning.ErrUpstream)
		assert.ErrorIs(t, out.Failure, reasoning.ErrUnparseable)
		assert.Equal(t, 1, h.fake.CallCount("GenerateStructured"), "no retry in the orchestrator")
		assert.Equal(t, 1, h.ledger.Len("s1"))
		assert.Empty(t, h.mem.ListShortTerm("s1"))
	})
}

func TestProcess_RemembersEntitiesAcrossTurns(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			JobDescription:  succeed(h, "Job created", nil, map[string]string{agent.KeyJobID: "j1"}),
			ResumeScreening: succeed(h, "Screened", nil, nil),
		}
	},
		`{"tasks":[{"task_type":"job_description","description":"jd","priority":1}]}`,
		`{"tasks":[{"task_type":"resume_screening","description":"screen","priority":1}]}`,
	)

	process(t, h, "s1", "write a JD")
	process(t, h, "s1", "screen this resume")

	seen := h.seen["task_1"]
	id, ok := agent.LookupEntityID(seen, agent.KeyJobID)
	assert.True(t, ok)
	assert.Equal(t, "j1", id)
	assert.Equal(t, "screen this resume", seen[KeyUserRequest])
	assert.Contains(t, seen[KeyConversationSummary], "User: write a JD")
	assert.NotNil(t, seen[KeyTimeContext])
}

func TestProcess_NewEntityBeatsRememberedEntity(t *testing.T) {
	var (
		mu       sync.Mutex
		jobs     = []string{"job-A", "job-B"}
		screened []string
	)
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{
			JobDescription: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
				mu.Lock()
				id := jobs[0]
				jobs = jobs[1:]
				mu.Unlock()
				return agent.Output{Success: true, Message: "created " + id, EntityIDs: map[string]string{agent.KeyJobID: id}}, nil
			}),
			ResumeScreening: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
				id, _ := in.EntityID(agent.KeyJobID)
				mu.Lock()
				screened = append(screened, id)
				mu.Unlock()
				return agent.Output{Success: true, Message: "screened against " + id}, nil
			}),
		}
	},
		`{"tasks":[{"task_type":"job_description","description":"jd A","priority":1}]}`,
		`{"tasks":[
			{"task_type":"job_description","description":"jd B","priority":1},
			{"task_type":"resume_screening","description":"screen","priority":2,"dependencies":["task_1"]}
		]}`,
	)

	process(t, h, "s1", "create job A")
	out := process(t, h, "s1", "create job B and screen this resume")

	require.Len(t, out.Results, 2)
	assert.Equal(t, []string{"job-B"}, screened)
	assert.Equal(t, "job-B", out.Response.Data[agent.KeyJobID])

	entities, ok := h.mem.GetContext("s1", ContextTypeEntities)
	require.True(t, ok)
	assert.Equal(t, "job-B", entities[agent.KeyJobID])
}

func TestProcess_SerializesTurnsPerSession(t *testing.T) {
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
			entered <- struct{}{}
			<-release
			return agent.Output{Success: true, Message: "stats"}, nil
		})}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":1}]}`)

	var wg sync.WaitGroup
	turn := func(msg string) {
		defer wg.Done()
		_, err := h.o.Process(context.Background(), ProcessInput{SessionID: "s1", Message: msg})
		assert.NoError(t, err)
	}

	wg.Add(1)
	go turn("first")
	<-entered

	wg.Add(1)
	go turn("second")
	select {
	case <-entered:
		t.Fatal("second turn entered a handler while the first was still running")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, h.ledger.Len("s1"), "second turn must wait before touching the ledger")

	close(release)
	wg.Wait()

	var roles []conversation.Role
	for _, m := range h.o.History("s1", 0) {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []conversation.Role{
		conversation.RoleUser, conversation.RoleAssistant,
		conversation.RoleUser, conversation.RoleAssistant,
	}, roles)
	assert.Empty(t, h.o.turns, "idle sessions release their lock entry")
}

func TestClearSession_WaitsForRunningTurn(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: agent.HandlerFunc(func(ctx context.Context, in agent.Input) (agent.Output, error) {
			close(entered)
			<-release
			return agent.Output{Success: true, Message: "stats"}, nil
		})}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":1}]}`)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := h.o.Process(context.Background(), ProcessInput{SessionID: "s1", Message: "stats"})
		assert.NoError(t, err)
	}()
	<-entered

	cleared := make(chan struct{})
	go func() {
		h.o.ClearSession("s1")
		close(cleared)
	}()
	select {
	case <-cleared:
		t.Fatal("ClearSession returned while a turn was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-done
	<-cleared
	assert.Equal(t, 0, h.ledger.Len("s1"))
}

func TestProcess_IntentEntitiesDoNotOverrideCaller(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: succeed(h, "stats", nil, nil)}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":1}]}`)
	h.fake.Intent.Entities = map[string]any{"analysis_type": "overview", "position": "SRE"}

	_, err := h.o.Process(context.Background(), ProcessInput{
		SessionID: "s1",
		Message:   "stats",
		Context:   map[string]any{"analysis_type": "candidate_pipeline"},
	})
	require.NoError(t, err)

	assert.Equal(t, "candidate_pipeline", h.seen["task_1"]["analysis_type"])
	assert.Equal(t, "SRE", h.seen["task_1"]["position"])
}

func TestProcess_InputValidation(t *testing.T) {
	h := newHarness(t, nil)
	h.fake.Intent = reasoning.IntentAnalysis{RequiresClarification: true}

	_, err := h.o.Process(context.Background(), ProcessInput{SessionID: "s1", Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	out, err := h.o.Process(context.Background(), ProcessInput{Message: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, 2, h.ledger.Len(out.SessionID))
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: succeed(h, "stats", nil, nil)}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":1}]}`)

	id := h.o.StartSession()
	process(t, h, id, "stats")

	assert.Len(t, h.o.History(id, 1), 1)
	exp, ok := h.o.Export(id)
	require.True(t, ok)
	assert.Len(t, exp.Messages, 2)

	status := h.o.Status(id)
	assert.Len(t, status.RecentActions, 1)
	assert.Equal(t, KeyLastAction, status.RecentActions[0].Key)

	h.o.ClearSession(id)
	assert.Zero(t, h.o.Status(id).ConversationLength)
	assert.Empty(t, h.mem.ListShortTerm(id))
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newHarness(t, func(h *harness) agent.Handlers {
		return agent.Handlers{Analytics: succeed(h, "stats", nil, nil)}
	}, `{"tasks":[{"task_type":"analytics","description":"stats","priority":1}]}`)

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = h.o.Process(context.Background(), ProcessInput{SessionID: id, Message: "stats for " + id})
		}(id)
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c", "d"} {
		msgs := h.ledger.Read(id, 0)
		require.Len(t, msgs, 2, id)
		assert.Equal(t, "stats for "+id, msgs[0].Content)
	}
}
