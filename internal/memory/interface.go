package memory

import "time"

// Store is the session memory: a short-term TTL cache per session, a durable
// entity store shared across sessions, and a per-session context cache.
// Missing sessions or keys yield empty results, never errors.
type Store interface {
	StoreShortTerm(sessionID, key string, value any, ttl time.Duration)
	// GetShortTerm returns the newest live value written under key.
	GetShortTerm(sessionID, key string) (any, bool)
	// ListShortTerm returns every live entry of the session, oldest first.
	ListShortTerm(sessionID string) []Entry

	StoreLongTerm(entityID string, fields map[string]any)
	GetLongTerm(entityID string) (map[string]any, bool)

	StoreContext(sessionID, contextType string, data map[string]any)
	GetContext(sessionID, contextType string) (map[string]any, bool)
	ListContext(sessionID string) map[string]map[string]any

	// GetRelevantContext returns the recent short-term entries plus the whole
	// context snapshot. query is accepted for future ranking and ignored.
	GetRelevantContext(sessionID, query string) map[string]any

	SummarizeSession(sessionID string) string
	ClearSession(sessionID string)
}
