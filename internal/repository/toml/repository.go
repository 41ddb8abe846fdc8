package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"hiring-orchestrator/internal/repository"
)

func (r *implRepository) Create(ctx context.Context, kind repository.Kind, fields repository.Record) (repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}
	rec, err := repository.NewRecord(fields, r.clock())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	recs := file.bucket(kind)
	if indexOf(*recs, rec.ID()) >= 0 {
		return nil, fmt.Errorf("%w: duplicate id %s", repository.ErrFailedToInsert, rec.ID())
	}
	*recs = append(*recs, rec)

	if err := r.writeSchema(file); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

func (r *implRepository) Get(ctx context.Context, kind repository.Kind, id string) (repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	recs := *file.bucket(kind)
	i := indexOf(recs, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return repository.Record(recs[i]), nil
}

func (r *implRepository) List(ctx context.Context, kind repository.Kind, opt repository.ListOptions) ([]repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	out := make([]repository.Record, 0)
	for _, rec := range *file.bucket(kind) {
		if !repository.Record(rec).Matches(opt.Filters) {
			continue
		}
		out = append(out, repository.Record(rec))
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, kind repository.Kind, id string, fields repository.Record) (repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	recs := file.bucket(kind)
	i := indexOf(*recs, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	merged, err := repository.Merge(repository.Record((*recs)[i]), fields, r.clock())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	(*recs)[i] = merged

	if err := r.writeSchema(file); err != nil {
		return nil, err
	}
	return merged.Clone(), nil
}

func (r *implRepository) Delete(ctx context.Context, kind repository.Kind, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", repository.ErrUnknownKind, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	recs := file.bucket(kind)
	i := indexOf(*recs, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	*recs = append((*recs)[:i:i], (*recs)[i+1:]...)

	return r.writeSchema(file)
}

func (r *implRepository) readSchema() (*fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := &fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return nil, fmt.Errorf("read records file: %w", err)
	}

	file := &fileSchema{}
	if err := toml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *implRepository) writeSchema(file *fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), recordsDirMode); err != nil {
		return fmt.Errorf("create records directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode records file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp records file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp records file: %w", err)
	}
	if err := tempFile.Chmod(recordsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp records file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp records file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace records file: %w", err)
	}
	cleanup = false

	return nil
}
