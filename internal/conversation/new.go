package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	mu          sync.Mutex
	id          string
	messages    []Message
	createdAt   time.Time
	updatedAt   time.Time
	activeTasks []string
}

type implLedger struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*session
}

var _ Ledger = (*implLedger)(nil)

// New creates an in-process Ledger.
func New(opts Options) Ledger {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &implLedger{
		opts:     opts,
		sessions: make(map[string]*session),
	}
}

func (l *implLedger) get(sessionID string) *session {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sessions[sessionID]
}

func (l *implLedger) getOrCreate(sessionID string) *session {
	if s := l.get(sessionID); s != nil {
		return s
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.sessions[sessionID]; ok {
		return s
	}
	now := l.opts.Now()
	s := &session{id: sessionID, createdAt: now, updatedAt: now}
	l.sessions[sessionID] = s
	return s
}
