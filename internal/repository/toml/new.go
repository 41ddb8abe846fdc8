package toml

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"hiring-orchestrator/internal/repository"
)

const (
	recordsFileMode = 0o600
	recordsDirMode  = 0o700
	tempFilePattern = ".records-*.toml.tmp"
)

type implRepository struct {
	path  string
	mu    *sync.RWMutex
	clock func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ repository.Repository = (*implRepository)(nil)

// New returns a repository backed by a single TOML file at path. The file is
// created on first write. Repositories opened on the same path share a lock.
func New(path string, now func() time.Time) (repository.Repository, error) {
	if path == "" {
		return nil, errors.New("records path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve records path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if now == nil {
		now = time.Now
	}
	return &implRepository{path: absPath, mu: lockForPath(absPath), clock: now}, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
