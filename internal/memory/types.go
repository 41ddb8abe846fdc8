package memory

import "time"

// Entry is one short-term record.
type Entry struct {
	Key       string    `json:"key"`
	Value     any       `json:"value"`
	WrittenAt time.Time `json:"written_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e Entry) expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Options configures a Store.
type Options struct {
	DefaultTTL   time.Duration
	RecentWindow int
	Now          func() time.Time
}
