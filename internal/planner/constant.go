package planner

// Log prefixes
const (
	LogPrefixDecompose    = "internal.planner.Decompose"
	LogPrefixGeneratePlan = "internal.planner.GeneratePlan"
)

const (
	DefaultPriority = 3
	MinPriority     = 1
	MaxPriority     = 5

	taskIDPrefix = "task_"

	defaultTaskMinutes = 2
)

const (
	EstimateUnderFive   = "Less than 5 minutes"
	EstimateFiveFifteen = "5-15 minutes"
	EstimateOverFifteen = "15+ minutes"
)

// taskMinutes is the per-type cost used by EstimateTime.
var taskMinutes = map[TaskType]int{
	TaskJobDescription:      2,
	TaskResumeScreening:     3,
	TaskInterviewScheduling: 1,
	TaskEmailCommunication:  1,
	TaskAnalytics:           2,
	TaskOfferGeneration:     2,
}

const (
	SystemDecompose = "You are a task planning expert for HR workflows."

	PromptDecompose = `Analyze this HR request and break it down into actionable tasks:

Request: %q%s

Available task types:
- job_description: Create or modify job descriptions
- resume_screening: Screen and evaluate candidate resumes
- interview_scheduling: Schedule and manage interviews
- email_communication: Send emails to candidates
- analytics: Generate hiring metrics and reports
- offer_generation: Create offer letters

For each task, specify:
1. Task type
2. Clear description
3. Priority (1=highest, 5=lowest)
4. Dependencies: ids of tasks that must complete first, written as "task_N" where N is the
   1-based position of that task in your list
5. Input requirements

If the request is unclear or missing critical information, set requires_clarification to true and list questions.`

	promptContextPrefix = "\nContext: "
)

var schemaDecompose = map[string]any{
	"tasks": []map[string]any{{
		"task_type":          "string (job_description|resume_screening|interview_scheduling|email_communication|analytics|offer_generation)",
		"description":        "string",
		"priority":           "integer (1-5, where 1 is highest)",
		"dependencies":       []string{"string (task_N ids this depends on)"},
		"input_requirements": []string{"string"},
	}},
	"requires_clarification":  "boolean",
	"clarification_questions": []string{"string"},
}

// QuestionEmptyPlan is asked when the reasoning service produced no tasks.
const QuestionEmptyPlan = "Which hiring task would you like me to handle (job description, screening, interviews, emails, analytics or offers)?"
