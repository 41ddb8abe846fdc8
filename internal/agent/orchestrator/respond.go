package orchestrator

import (
	"fmt"
	"strings"

	"hiring-orchestrator/internal/agent"
)

// synthesize turns the task results into the user-facing response.
func synthesize(results []agent.TaskResult) AgentResponse {
	var succeeded, failed []agent.TaskResult
	for _, r := range results {
		if r.Success {
			succeeded = append(succeeded, r)
		} else {
			failed = append(failed, r)
		}
	}

	if len(succeeded) == 0 {
		errs := make([]string, 0, len(failed))
		var sb strings.Builder
		sb.WriteString(MsgAllTasksFailed)
		for _, r := range failed {
			errs = append(errs, r.Error)
			sb.WriteString(failureLinePrefix)
			sb.WriteString(r.Error)
		}
		return AgentResponse{
			Success: false,
			Message: sb.String(),
			Data:    map[string]any{KeyErrors: errs},
		}
	}

	var (
		messages []string
		data     = map[string]any{}
		actions  []string
		seen     = map[string]bool{}
	)
	for _, r := range succeeded {
		if r.Message != "" {
			messages = append(messages, r.Message)
		}
		for _, key := range responseDataKeys {
			if v, ok := r.Data[key]; ok && v != nil {
				data[key] = v
			} else if id, ok := r.EntityIDs[key]; ok && id != "" {
				data[key] = id
			}
		}
		for _, a := range r.NextActions {
			if len(actions) == MaxNextActions {
				break
			}
			if !seen[a] {
				seen[a] = true
				actions = append(actions, a)
			}
		}
	}

	resp := AgentResponse{
		Success:     true,
		Message:     strings.Join(messages, "\n"),
		NextActions: actions,
	}
	if resp.Message == "" {
		resp.Message = MsgTaskCompleted
	}
	if len(succeeded) > 1 {
		resp.Summary = fmt.Sprintf(MsgCompletedSummary, len(succeeded))
	}
	if len(data) > 0 {
		resp.Data = data
	}
	return resp
}
