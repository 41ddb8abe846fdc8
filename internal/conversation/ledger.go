package conversation

import (
	"fmt"
	"strings"
)

func (l *implLedger) CreateSession() string {
	id := l.opts.NewID()
	l.getOrCreate(id)
	return id
}

func (l *implLedger) Append(sessionID string, role Role, content string, metadata map[string]any) (Message, error) {
	if sessionID == "" {
		return Message{}, ErrEmptySession
	}
	if !role.Valid() {
		return Message{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s := l.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		Role:      role,
		Content:   content,
		Timestamp: l.opts.Now(),
		Metadata:  metadata,
	}
	s.messages = append(s.messages, msg)
	if over := len(s.messages) - l.opts.MaxHistory; over > 0 {
		s.messages = append([]Message(nil), s.messages[over:]...)
	}
	s.updatedAt = msg.Timestamp
	return msg, nil
}

func (l *implLedger) Read(sessionID string, limit int) []Message {
	s := l.get(sessionID)
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return tail(s.messages, limit)
}

func (l *implLedger) Summarize(sessionID string) string {
	msgs := l.Read(sessionID, summaryWindow)
	if len(msgs) == 0 {
		return summaryEmpty
	}

	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		label := "User"
		if m.Role == RoleAssistant {
			label = "Assistant"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", label, clip(m.Content, summaryMaxChars)))
	}
	return strings.Join(parts, summarySeparator)
}

func (l *implLedger) Session(sessionID string) (SessionInfo, bool) {
	s := l.get(sessionID)
	if s == nil {
		return SessionInfo{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		SessionID:    s.id,
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
		MessageCount: len(s.messages),
		ActiveTasks:  append([]string(nil), s.activeTasks...),
	}, true
}

func (l *implLedger) Len(sessionID string) int {
	s := l.get(sessionID)
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (l *implLedger) AddActiveTask(sessionID, taskID string) {
	s := l.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.activeTasks {
		if id == taskID {
			return
		}
	}
	s.activeTasks = append(s.activeTasks, taskID)
}

func (l *implLedger) RemoveActiveTask(sessionID, taskID string) {
	s := l.get(sessionID)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.activeTasks {
		if id == taskID {
			s.activeTasks = append(s.activeTasks[:i], s.activeTasks[i+1:]...)
			return
		}
	}
}

func (l *implLedger) Export(sessionID string) (Export, bool) {
	s := l.get(sessionID)
	if s == nil {
		return Export{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return Export{
		SessionID:   s.id,
		Messages:    tail(s.messages, 0),
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
		ActiveTasks: append([]string(nil), s.activeTasks...),
	}, true
}

func (l *implLedger) Clear(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, sessionID)
}

func tail(msgs []Message, limit int) []Message {
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
