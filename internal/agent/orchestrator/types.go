package orchestrator

import (
	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/memory"
	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/internal/reasoning"
)

// State is a step of one Process invocation.
type State string

const (
	StateReceived      State = "RECEIVED"
	StateIntentChecked State = "INTENT_CHECKED"
	StateClarifying    State = "CLARIFYING"
	StateDecomposed    State = "DECOMPOSED"
	StateInvalidPlan   State = "INVALID_PLAN"
	StateExecuting     State = "EXECUTING"
	StateResponded     State = "RESPONDED"
)

// AgentResponse is what the caller of the orchestrator gets back.
type AgentResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Summary     string         `json:"summary,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	NextActions []string       `json:"next_actions,omitempty"`
}

// ProcessInput is one user turn.
type ProcessInput struct {
	// SessionID may be empty, in which case a new session is started.
	SessionID string
	Message   string
	Context   map[string]any
}

// ProcessOutput is the outcome of one user turn.
type ProcessOutput struct {
	SessionID string
	Response  AgentResponse
	// Trace lists every state visited, ending with StateResponded.
	Trace   []State
	Intent  *reasoning.IntentAnalysis
	Plan    *planner.Plan
	Results []agent.TaskResult
	// Failure is set for upstream and invalid-plan outcomes.
	Failure error
}

// Dispatched reports how many tasks were handed to the dispatcher.
func (o ProcessOutput) Dispatched() int {
	return len(o.Results)
}

// Reached reports whether the invocation passed through s.
func (o ProcessOutput) Reached(s State) bool {
	for _, t := range o.Trace {
		if t == s {
			return true
		}
	}
	return false
}

// SessionStatus is a snapshot of a session's memory and ledger.
type SessionStatus struct {
	SessionID          string                    `json:"session_id"`
	Context            map[string]map[string]any `json:"context"`
	RecentActions      []memory.Entry            `json:"recent_actions"`
	ConversationLength int                       `json:"conversation_length"`
	ActiveTasks        []string                  `json:"active_tasks"`
	Summary            string                    `json:"summary"`
}

// lastAction is the short-term snapshot written after every dispatched plan.
type lastAction struct {
	Intent  string             `json:"intent"`
	Results []agent.TaskResult `json:"results"`
}
