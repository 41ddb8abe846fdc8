package agent

import (
	"context"
	"time"

	"hiring-orchestrator/internal/planner"
)

// Handler executes one task type. A returned error, a panic, or an Output with
// Success false all mark the task failed without stopping the plan.
type Handler interface {
	Execute(ctx context.Context, in Input) (Output, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, in Input) (Output, error)

func (f HandlerFunc) Execute(ctx context.Context, in Input) (Output, error) {
	return f(ctx, in)
}

// Handlers is the capability registry: exactly one slot per planner.TaskType.
// A nil slot behaves like an unknown type.
type Handlers struct {
	JobDescription      Handler
	ResumeScreening     Handler
	InterviewScheduling Handler
	EmailCommunication  Handler
	Analytics           Handler
	OfferGeneration     Handler
}

// For returns the handler registered for t. Adding a TaskType without a case
// here fails the exhaustive linter.
func (h Handlers) For(t planner.TaskType) (Handler, bool) {
	var handler Handler
	//exhaustive:enforce
	switch t {
	case planner.TaskJobDescription:
		handler = h.JobDescription
	case planner.TaskResumeScreening:
		handler = h.ResumeScreening
	case planner.TaskInterviewScheduling:
		handler = h.InterviewScheduling
	case planner.TaskEmailCommunication:
		handler = h.EmailCommunication
	case planner.TaskAnalytics:
		handler = h.Analytics
	case planner.TaskOfferGeneration:
		handler = h.OfferGeneration
	}
	return handler, handler != nil
}

// Missing lists the known task types without a handler.
func (h Handlers) Missing() []planner.TaskType {
	var out []planner.TaskType
	for _, t := range planner.AllTaskTypes {
		if _, ok := h.For(t); !ok {
			out = append(out, t)
		}
	}
	return out
}

// Input is what a handler receives.
type Input struct {
	Task      planner.Task
	SessionID string
	// Context is a private copy of the shared context, including the results of
	// every task dispatched before this one.
	Context map[string]any
}

// Output is what a handler returns on completion.
type Output struct {
	Success     bool
	Message     string
	Error       string
	NextActions []string
	// EntityIDs carries identifiers created or touched, keyed by job_id,
	// candidate_id, interview_id.
	EntityIDs map[string]string
	Data      map[string]any
}

// TaskResult is the per-task outcome, 1:1 with the plan.
type TaskResult struct {
	TaskID      string            `json:"task_id"`
	Type        planner.TaskType  `json:"type"`
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
	NextActions []string          `json:"next_actions,omitempty"`
	EntityIDs   map[string]string `json:"entity_ids,omitempty"`
	Data        map[string]any    `json:"data,omitempty"`
	Duration    time.Duration     `json:"duration"`
	// Seq is the 0-based dispatch position.
	Seq int   `json:"seq"`
	Err error `json:"-"`
}

// Observer is notified around each task.
type Observer interface {
	TaskStarted(sessionID string, task planner.Task)
	TaskFinished(sessionID string, result TaskResult)
}

// DispatchRequest is the input of Dispatcher.Dispatch.
type DispatchRequest struct {
	SessionID string
	Tasks     []planner.Task
	Context   map[string]any
	Observer  Observer
}
