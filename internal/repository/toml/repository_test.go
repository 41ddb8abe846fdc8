package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-orchestrator/internal/repository"
)

func newTestRepo(t *testing.T) (repository.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "hiring.toml")
	repo, err := New(path, func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) })
	require.NoError(t, err)
	return repo, path
}

func TestRoundTripAcrossInstances(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	created, err := repo.Create(ctx, repository.KindJobs, repository.Record{
		"title":  "Backend Engineer",
		"status": "open",
		"skills": []string{"go", "sql"},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(recordsFileMode), info.Mode().Perm())

	reopened, err := New(path, nil)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, repository.KindJobs, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got["title"])
	assert.Equal(t, []any{"go", "sql"}, got["skills"])
	assert.Equal(t, "2026-03-02T09:00:00Z", got[repository.FieldCreatedAt])
}

func TestMissingFileIsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	recs, err := repo.List(context.Background(), repository.KindCandidates, repository.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = repo.Get(context.Background(), repository.KindCandidates, "c1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateListDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	var ids []string
	for _, score := range []float64{85, 40, 65} {
		rec, err := repo.Create(ctx, repository.KindCandidates, repository.Record{"score": score, "status": "new"})
		require.NoError(t, err)
		ids = append(ids, rec.ID())
	}

	_, err := repo.Update(ctx, repository.KindCandidates, ids[0], repository.Record{"status": "interview"})
	require.NoError(t, err)

	fresh, err := repo.List(ctx, repository.KindCandidates, repository.ListOptions{Filters: map[string]any{"status": "new"}})
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	scored, err := repo.List(ctx, repository.KindCandidates, repository.ListOptions{Filters: map[string]any{"score": 85}})
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, ids[0], scored[0].ID())

	require.NoError(t, repo.Delete(ctx, repository.KindCandidates, ids[1]))
	all, err := repo.List(ctx, repository.KindCandidates, repository.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	repo, err := New(path, nil)
	require.NoError(t, err)
	_, err = repo.List(context.Background(), repository.KindJobs, repository.ListOptions{})
	assert.ErrorContains(t, err, "unsupported records file version 9")
}

func TestCanceledContext(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, repository.KindJobs, repository.Record{})
	assert.ErrorIs(t, err, context.Canceled)
}
