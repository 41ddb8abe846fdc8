package memory

import (
	"context"
	"fmt"

	"hiring-orchestrator/internal/repository"
)

func (r *implRepository) Create(ctx context.Context, kind repository.Kind, fields repository.Record) (repository.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	rec, err := repository.NewRecord(fields, r.clock())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(kind, rec.ID()) >= 0 {
		return nil, fmt.Errorf("%w: duplicate id %s", repository.ErrFailedToInsert, rec.ID())
	}
	r.data[kind] = append(r.data[kind], rec)
	return rec.Clone(), nil
}

func (r *implRepository) Get(ctx context.Context, kind repository.Kind, id string) (repository.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(kind, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return r.data[kind][i].Clone(), nil
}

func (r *implRepository) List(ctx context.Context, kind repository.Kind, opt repository.ListOptions) ([]repository.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]repository.Record, 0)
	for _, rec := range r.data[kind] {
		if !rec.Matches(opt.Filters) {
			continue
		}
		out = append(out, rec.Clone())
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, kind repository.Kind, id string, fields repository.Record) (repository.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(kind, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	merged, err := repository.Merge(r.data[kind][i], fields, r.clock())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	r.data[kind][i] = merged
	return merged.Clone(), nil
}

func (r *implRepository) Delete(ctx context.Context, kind repository.Kind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(kind, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	recs := r.data[kind]
	r.data[kind] = append(recs[:i:i], recs[i+1:]...)
	return nil
}

func (r *implRepository) indexOf(kind repository.Kind, id string) int {
	for i, rec := range r.data[kind] {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}
