package orchestrator

import "hiring-orchestrator/internal/agent"

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.orchestrator.Process"
	LogPrefixStatus  = "internal.agent.orchestrator.Status"
)

// Response messages
const (
	MsgClarifyIntent         = "I need some clarification to help you better:"
	MsgClarifyPlan           = "I need more information:"
	MsgInvalidSequence       = "Invalid task sequence: %s"
	MsgAllTasksFailed        = "I encountered some issues processing your request:"
	MsgUpstreamFailure       = "I couldn't process your request: %s"
	MsgTaskCompleted         = "Task completed successfully"
	MsgCompletedSummary      = "Completed %d tasks."
	DefaultClarifyQuestion   = "Could you share more details about what you need?"
	failureLinePrefix        = "\n- "
	summarySeparator         = "\n\n"
	metadataKeyState         = "state"
	metadataKeyIntent        = "intent"
	metadataKeyTaskCount     = "task_count"
	metadataKeySuccessCount  = "success_count"
	metadataKeyEstimatedTime = "estimated_time"
)

// Working context keys
const (
	KeyConversationSummary = "conversation_summary"
	KeyUserRequest         = "user_request"
	KeyTimeContext         = "time_context"
	KeyLastAction          = "last_action"
	KeyErrors              = "errors"
	ContextTypeEntities    = agent.KeyRememberedEntities
)

// Configuration
const (
	MaxNextActions    = 5
	RecentActionLimit = 5
	DefaultTimezone   = "UTC"
	DateFormatISO     = "2006-01-02"
)

// responseDataKeys are copied from successful results into the response data.
var responseDataKeys = []string{"job_id", "candidate_id", "interview_id", "job_description"}
