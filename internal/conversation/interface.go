package conversation

// Ledger is the append-only, length-bounded message history of each session.
type Ledger interface {
	// CreateSession allocates a new session id with an empty history.
	CreateSession() string
	// Append adds a message, creating the session implicitly. When the history
	// exceeds the cap the oldest messages are dropped.
	Append(sessionID string, role Role, content string, metadata map[string]any) (Message, error)
	// Read returns the last limit messages, or all of them when limit <= 0.
	Read(sessionID string, limit int) []Message
	// Summarize returns a short deterministic digest of the latest messages.
	Summarize(sessionID string) string

	Session(sessionID string) (SessionInfo, bool)
	Len(sessionID string) int
	AddActiveTask(sessionID, taskID string)
	RemoveActiveTask(sessionID, taskID string)
	Export(sessionID string) (Export, bool)
	Clear(sessionID string)
}
