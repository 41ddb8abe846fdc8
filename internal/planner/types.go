package planner

// TaskType is the closed set of work a plan can contain. Values coming back from
// the reasoning service are kept verbatim even when unknown, so the dispatcher
// can report them per task.
type TaskType string

const (
	TaskJobDescription      TaskType = "job_description"
	TaskResumeScreening     TaskType = "resume_screening"
	TaskInterviewScheduling TaskType = "interview_scheduling"
	TaskEmailCommunication  TaskType = "email_communication"
	TaskAnalytics           TaskType = "analytics"
	TaskOfferGeneration     TaskType = "offer_generation"
)

// AllTaskTypes lists every known TaskType in declaration order.
var AllTaskTypes = []TaskType{
	TaskJobDescription,
	TaskResumeScreening,
	TaskInterviewScheduling,
	TaskEmailCommunication,
	TaskAnalytics,
	TaskOfferGeneration,
}

func (t TaskType) Valid() bool {
	for _, known := range AllTaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Task is one unit of a plan.
type Task struct {
	ID                string   `json:"task_id"`
	Type              TaskType `json:"type"`
	Description       string   `json:"description"`
	Priority          int      `json:"priority"`
	Dependencies      []string `json:"dependencies,omitempty"`
	InputRequirements []string `json:"input_requirements,omitempty"`
}

// Decomposition is the raw outcome of one reasoning call, before validation.
type Decomposition struct {
	Tasks                  []Task
	RequiresClarification  bool
	ClarificationQuestions []string
}

type PlanStatus string

const (
	StatusReady              PlanStatus = "ready"
	StatusNeedsClarification PlanStatus = "needs_clarification"
	StatusInvalidSequence    PlanStatus = "invalid_sequence"
)

// Plan is the validated, priority-ordered execution plan.
type Plan struct {
	Status        PlanStatus `json:"status"`
	Tasks         []Task     `json:"tasks,omitempty"`
	Questions     []string   `json:"questions,omitempty"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	// Err is set when Status is StatusInvalidSequence.
	Err error `json:"-"`
}

// Valid reports whether the plan may be dispatched.
func (p Plan) Valid() bool {
	return p.Status == StatusReady
}
