package memory

import (
	"sync"
	"time"

	"hiring-orchestrator/internal/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	data  map[repository.Kind][]repository.Record
	clock func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a process-local repository. now may be nil.
func New(now func() time.Time) repository.Repository {
	if now == nil {
		now = time.Now
	}
	return &implRepository{
		data:  make(map[repository.Kind][]repository.Record),
		clock: now,
	}
}
