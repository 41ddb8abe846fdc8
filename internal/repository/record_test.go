package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	rec, err := NewRecord(Record{"title": "SRE", "salary": 100, "tags": []string{"go"}, "empty": nil}, now)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID())
	assert.Equal(t, "2026-02-01T10:00:00Z", rec[FieldCreatedAt])
	assert.Equal(t, float64(100), rec["salary"])
	assert.Equal(t, []any{"go"}, rec["tags"])
	_, hasEmpty := rec["empty"]
	assert.False(t, hasEmpty)
}

func TestMergeKeepsIdentity(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	rec, err := NewRecord(Record{"id": "j1", "status": "open"}, now)
	require.NoError(t, err)

	merged, err := Merge(rec, Record{"id": "other", "status": "closed"}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "j1", merged.ID())
	assert.Equal(t, "closed", merged[FieldStatus])
	assert.Equal(t, "2026-02-01T11:00:00Z", merged[FieldUpdatedAt])
	assert.Equal(t, "open", rec[FieldStatus], "original must be untouched")
}

func TestMatches(t *testing.T) {
	rec := Record{"status": "open", "score": float64(3)}
	assert.True(t, rec.Matches(map[string]any{"status": "open", "score": 3}))
	assert.False(t, rec.Matches(map[string]any{"status": "closed"}))
	assert.False(t, rec.Matches(map[string]any{"missing": "x"}))
	assert.True(t, rec.Matches(nil))
}

func TestCloneIsDeep(t *testing.T) {
	rec := Record{
		"required_skills": []any{"Go", "SQL"},
		"salary":          map[string]any{"min": float64(1), "bands": []any{map[string]any{"level": "L4"}}},
		"tags":            []string{"backend"},
	}
	cp := rec.Clone()

	cp["required_skills"].([]any)[0] = "Rust"
	cp["salary"].(map[string]any)["min"] = float64(2)
	cp["salary"].(map[string]any)["bands"].([]any)[0].(map[string]any)["level"] = "L7"
	cp["tags"].([]string)[0] = "frontend"

	assert.Equal(t, []any{"Go", "SQL"}, rec["required_skills"])
	assert.Equal(t, float64(1), rec["salary"].(map[string]any)["min"])
	assert.Equal(t, "L4", rec["salary"].(map[string]any)["bands"].([]any)[0].(map[string]any)["level"])
	assert.Equal(t, []string{"backend"}, rec["tags"])
	assert.Nil(t, Record(nil).Clone())
}
