package orchestrator

import (
	"sync"
	"time"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/internal/memory"
	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/internal/reasoning"
	pkgLog "hiring-orchestrator/pkg/log"
)

// Options tunes the orchestrator. Zero values fall back to defaults.
type Options struct {
	Timezone string
	Now      func() time.Time
}

type Orchestrator struct {
	l          pkgLog.Logger
	reasoning  reasoning.Service
	planner    planner.Planner
	dispatcher *agent.Dispatcher
	memory     memory.Store
	ledger     conversation.Ledger
	loc        *time.Location
	now        func() time.Time

	mu    sync.Mutex
	turns map[string]*sessionTurn
}

// sessionTurn serializes the turns of one session. refs counts holders and
// waiters so the entry can be dropped once nobody uses it.
type sessionTurn struct {
	mu   sync.Mutex
	refs int
}

var _ UseCase = (*Orchestrator)(nil)

func New(l pkgLog.Logger, r reasoning.Service, p planner.Planner, d *agent.Dispatcher, m memory.Store, ledger conversation.Ledger, opts Options) *Orchestrator {
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		loc = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Orchestrator{
		l:          l,
		reasoning:  r,
		planner:    p,
		dispatcher: d,
		memory:     m,
		ledger:     ledger,
		loc:        loc,
		now:        opts.Now,
		turns:      make(map[string]*sessionTurn),
	}
}

// lockSession blocks until the caller owns sessionID. The registry lock is only
// held for the lookup.
func (o *Orchestrator) lockSession(sessionID string) (unlock func()) {
	o.mu.Lock()
	turn, ok := o.turns[sessionID]
	if !ok {
		turn = &sessionTurn{}
		o.turns[sessionID] = turn
	}
	turn.refs++
	o.mu.Unlock()

	turn.mu.Lock()
	return func() {
		turn.mu.Unlock()
		o.mu.Lock()
		turn.refs--
		if turn.refs == 0 {
			delete(o.turns, sessionID)
		}
		o.mu.Unlock()
	}
}
