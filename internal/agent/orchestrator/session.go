package orchestrator

import (
	"context"

	"hiring-orchestrator/internal/conversation"
	pkgLog "hiring-orchestrator/pkg/log"
)

func (o *Orchestrator) StartSession() string {
	return o.ledger.CreateSession()
}

// Status reports the session's context, its latest short-term entries and the
// ledger length.
func (o *Orchestrator) Status(sessionID string) SessionStatus {
	recent := o.memory.ListShortTerm(sessionID)
	if len(recent) > RecentActionLimit {
		recent = recent[len(recent)-RecentActionLimit:]
	}

	status := SessionStatus{
		SessionID:          sessionID,
		Context:            o.memory.ListContext(sessionID),
		RecentActions:      recent,
		ConversationLength: o.ledger.Len(sessionID),
		Summary:            o.memory.SummarizeSession(sessionID),
	}
	if info, ok := o.ledger.Session(sessionID); ok {
		status.ActiveTasks = info.ActiveTasks
	}
	return status
}

func (o *Orchestrator) History(sessionID string, limit int) []conversation.Message {
	return o.ledger.Read(sessionID, limit)
}

func (o *Orchestrator) Export(sessionID string) (conversation.Export, bool) {
	return o.ledger.Export(sessionID)
}

// ClearSession drops the session's ledger and memory. Long-term entity memory
// is shared and kept.
func (o *Orchestrator) ClearSession(sessionID string) {
	unlock := o.lockSession(sessionID)
	defer unlock()

	o.ledger.Clear(sessionID)
	o.memory.ClearSession(sessionID)
	o.l.Infof(pkgLog.WithSessionID(context.Background(), sessionID), "%s: session cleared", LogPrefixStatus)
}
