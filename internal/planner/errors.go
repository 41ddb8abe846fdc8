package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlan is matched by every *InvalidPlanError.
var ErrInvalidPlan = errors.New("invalid task sequence")

// MissingDependency names a reference that does not resolve inside the plan.
type MissingDependency struct {
	TaskID     string
	Dependency string
}

// InvalidPlanError lists every dependency that points outside the plan.
type InvalidPlanError struct {
	Missing []MissingDependency
}

func (e *InvalidPlanError) Error() string {
	refs := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		refs[i] = fmt.Sprintf("%s -> %s", m.TaskID, m.Dependency)
	}
	return fmt.Sprintf("%s: unknown dependencies [%s]", ErrInvalidPlan, strings.Join(refs, ", "))
}

func (e *InvalidPlanError) Is(target error) bool {
	return target == ErrInvalidPlan
}
