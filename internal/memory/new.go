package memory

import (
	"sync"
	"time"
)

type sessionBucket struct {
	mu        sync.Mutex
	shortTerm []Entry
	contexts  map[string]map[string]any
}

type implStore struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*sessionBucket

	ltMu     sync.RWMutex
	longTerm map[string]map[string]any
}

var _ Store = (*implStore)(nil)

// New creates an in-process Store.
func New(opts Options) Store {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultTTL
	}
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = DefaultRecentWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implStore{
		opts:     opts,
		sessions: make(map[string]*sessionBucket),
		longTerm: make(map[string]map[string]any),
	}
}

// bucket returns the session's bucket. The registry lock is only held for the
// lookup; callers lock the bucket itself.
func (s *implStore) bucket(sessionID string, create bool) *sessionBucket {
	s.mu.RLock()
	b, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok || !create {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok = s.sessions[sessionID]; ok {
		return b
	}
	b = &sessionBucket{contexts: make(map[string]map[string]any)}
	s.sessions[sessionID] = b
	return b
}
