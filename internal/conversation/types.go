package conversation

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one ledger entry.
type Message struct {
	Role      Role           `json:"role" yaml:"role"`
	Content   string         `json:"content" yaml:"content"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SessionInfo describes a session without its messages.
type SessionInfo struct {
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	ActiveTasks  []string  `json:"active_tasks"`
}

// Export is a full snapshot of a session.
type Export struct {
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Messages    []Message `json:"messages" yaml:"messages"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
	ActiveTasks []string  `json:"active_tasks" yaml:"active_tasks"`
}

// Options configures a Ledger.
type Options struct {
	MaxHistory int
	Now        func() time.Time
	NewID      func() string
}
