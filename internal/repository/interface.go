package repository

import "context"

// Kind names a record collection.
type Kind string

const (
	KindJobs       Kind = "jobs"
	KindCandidates Kind = "candidates"
	KindInterviews Kind = "interviews"
	KindTasks      Kind = "tasks"
)

// Kinds lists every collection.
var Kinds = []Kind{KindJobs, KindCandidates, KindInterviews, KindTasks}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Record is a schemaless hiring record. Every stored record carries
// FieldID, FieldCreatedAt and FieldUpdatedAt.
type Record map[string]any

// Repository persists jobs, candidates, interviews and task audit records.
type Repository interface {
	Create(ctx context.Context, kind Kind, fields Record) (Record, error)
	Get(ctx context.Context, kind Kind, id string) (Record, error)
	List(ctx context.Context, kind Kind, opt ListOptions) ([]Record, error)
	Update(ctx context.Context, kind Kind, id string, fields Record) (Record, error)
	Delete(ctx context.Context, kind Kind, id string) error
}
