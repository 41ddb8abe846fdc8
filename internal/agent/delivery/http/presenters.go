package http

import (
	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/pkg/response"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// --- Request DTOs ---

type sendMessageReq struct {
	SessionID string         `json:"-"`
	Message   string         `json:"message" binding:"required"`
	Context   map[string]any `json:"context"`
}

func (r sendMessageReq) toInput() orchestrator.ProcessInput {
	return orchestrator.ProcessInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Context:   r.Context,
	}
}

type historyReq struct {
	SessionID string `form:"-"`
	Limit     *int   `form:"limit"`
}

func (r historyReq) limit() int {
	if r.Limit == nil || *r.Limit == 0 {
		return defaultHistoryLimit
	}
	if *r.Limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return *r.Limit
}

// --- Response DTOs ---

type startSessionResp struct {
	SessionID string `json:"session_id"`
}

type taskResp struct {
	TaskID  string `json:"task_id"`
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type sendMessageResp struct {
	SessionID     string                     `json:"session_id"`
	Response      orchestrator.AgentResponse `json:"response"`
	Intent        string                     `json:"intent,omitempty"`
	PlanStatus    string                     `json:"plan_status,omitempty"`
	EstimatedTime string                     `json:"estimated_time,omitempty"`
	Tasks         []taskResp                 `json:"tasks,omitempty"`
	States        []string                   `json:"states"`
}

type messageResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
	Metadata  map[string]any    `json:"metadata,omitempty"`
}

type historyResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
}

type exportResp struct {
	SessionID   string            `json:"session_id"`
	Messages    []messageResp     `json:"messages"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
	ActiveTasks []string          `json:"active_tasks"`
}

func (h *handler) newSendMessageResp(o orchestrator.ProcessOutput) sendMessageResp {
	resp := sendMessageResp{
		SessionID: o.SessionID,
		Response:  o.Response,
		States:    make([]string, 0, len(o.Trace)),
	}
	for _, s := range o.Trace {
		resp.States = append(resp.States, string(s))
	}
	if o.Intent != nil {
		resp.Intent = o.Intent.Intent
	}
	if o.Plan != nil {
		resp.PlanStatus = string(o.Plan.Status)
		resp.EstimatedTime = o.Plan.EstimatedTime
	}
	for _, r := range o.Results {
		t := taskResp{
			TaskID:  r.TaskID,
			Type:    string(r.Type),
			Success: r.Success,
			Message: r.Message,
			Error:   r.Error,
		}
		resp.Tasks = append(resp.Tasks, t)
	}
	return resp
}

func newMessageResps(msgs []conversation.Message) []messageResp {
	out := make([]messageResp, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResp{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: response.DateTime(m.Timestamp),
			Metadata:  m.Metadata,
		})
	}
	return out
}

func (h *handler) newHistoryResp(sessionID string, msgs []conversation.Message) historyResp {
	return historyResp{SessionID: sessionID, Messages: newMessageResps(msgs)}
}

func (h *handler) newExportResp(e conversation.Export) exportResp {
	return exportResp{
		SessionID:   e.SessionID,
		Messages:    newMessageResps(e.Messages),
		CreatedAt:   response.DateTime(e.CreatedAt),
		UpdatedAt:   response.DateTime(e.UpdatedAt),
		ActiveTasks: e.ActiveTasks,
	}
}
