package memory

import "time"

const (
	DefaultTTL          = 60 * time.Minute
	DefaultRecentWindow = 5

	KeyRecentInteractions = "recent_interactions"
	FieldUpdatedAt        = "updated_at"

	summaryNoSession = "No active session"
)
