package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldStatus    = "status"
)

// Normalize converts arbitrary Go values to their JSON shapes (string,
// float64, bool, []any, map[string]any) and drops nil values, so every backend
// stores and returns the same thing.
func Normalize(in Record) (Record, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("normalize record: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("normalize record: %w", err)
	}
	dropNils(out)
	return Record(out), nil
}

func dropNils(m map[string]any) {
	for k, v := range m {
		switch vv := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			dropNils(vv)
		case []any:
			kept := vv[:0]
			for _, item := range vv {
				if item == nil {
					continue
				}
				if im, ok := item.(map[string]any); ok {
					dropNils(im)
				}
				kept = append(kept, item)
			}
			m[k] = kept
		}
	}
}

// NewRecord normalizes fields and stamps id and timestamps.
func NewRecord(fields Record, now time.Time) (Record, error) {
	rec, err := Normalize(fields)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = Record{}
	}
	if id, _ := rec[FieldID].(string); id == "" {
		rec[FieldID] = uuid.NewString()
	}
	ts := now.UTC().Format(time.RFC3339)
	rec[FieldCreatedAt] = ts
	rec[FieldUpdatedAt] = ts
	return rec, nil
}

// Merge applies fields onto rec, keeping id and created_at.
func Merge(rec, fields Record, now time.Time) (Record, error) {
	patch, err := Normalize(fields)
	if err != nil {
		return nil, err
	}
	out := rec.Clone()
	for k, v := range patch {
		if k == FieldID || k == FieldCreatedAt {
			continue
		}
		out[k] = v
	}
	out[FieldUpdatedAt] = now.UTC().Format(time.RFC3339)
	return out, nil
}

// Matches reports whether rec satisfies every filter. Values are compared by
// their printed form so 3, int64(3) and 3.0 are equal.
func (r Record) Matches(filters map[string]any) bool {
	for k, want := range filters {
		got, ok := r[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// ID returns the record id.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// String returns r[key] as a string, or "" if absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Float returns r[key] as a float64.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy. Nested maps and slices are copied so callers
// cannot reach into stored records.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(vv))
		for k, item := range vv {
			m[k] = cloneValue(item)
		}
		return m
	case Record:
		return vv.Clone()
	case []any:
		s := make([]any, len(vv))
		for i, item := range vv {
			s[i] = cloneValue(item)
		}
		return s
	case []string:
		return append([]string(nil), vv...)
	default:
		return v
	}
}
