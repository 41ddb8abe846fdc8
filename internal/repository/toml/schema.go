package toml

import (
	"fmt"

	"hiring-orchestrator/internal/repository"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	Jobs       []map[string]any `toml:"jobs,omitempty"`
	Candidates []map[string]any `toml:"candidates,omitempty"`
	Interviews []map[string]any `toml:"interviews,omitempty"`
	Tasks      []map[string]any `toml:"tasks,omitempty"`
}

func (f *fileSchema) applyDefaults() {
	if f.Version == 0 {
		f.Version = currentSchemaVersion
	}
}

func (f *fileSchema) validateVersion() error {
	if f.Version != 0 && f.Version != currentSchemaVersion {
		return fmt.Errorf("unsupported records file version %d", f.Version)
	}
	return nil
}

func (f *fileSchema) bucket(kind repository.Kind) *[]map[string]any {
	switch kind {
	case repository.KindJobs:
		return &f.Jobs
	case repository.KindCandidates:
		return &f.Candidates
	case repository.KindInterviews:
		return &f.Interviews
	case repository.KindTasks:
		return &f.Tasks
	default:
		return nil
	}
}

func indexOf(recs []map[string]any, id string) int {
	for i, rec := range recs {
		if repository.Record(rec).ID() == id {
			return i
		}
	}
	return -1
}
