package planner

import (
	"context"
	"sort"
)

func (p *implPlanner) GeneratePlan(ctx context.Context, request string, reqCtx map[string]any) (Plan, error) {
	dec, err := p.Decompose(ctx, request, reqCtx)
	if err != nil {
		return Plan{}, err
	}

	if dec.RequiresClarification {
		return Plan{Status: StatusNeedsClarification, Questions: dec.ClarificationQuestions}, nil
	}
	if len(dec.Tasks) == 0 {
		return Plan{Status: StatusNeedsClarification, Questions: []string{QuestionEmptyPlan}}, nil
	}

	if err := Validate(dec.Tasks); err != nil {
		p.l.Warnf(ctx, "%s: %v", LogPrefixGeneratePlan, err)
		return Plan{Status: StatusInvalidSequence, Err: err}, nil
	}

	tasks := Prioritize(dec.Tasks)
	p.l.Infof(ctx, "%s: %d task(s) planned", LogPrefixGeneratePlan, len(tasks))

	return Plan{
		Status:        StatusReady,
		Tasks:         tasks,
		EstimatedTime: EstimateTime(tasks),
	}, nil
}

// Validate checks that every dependency names a task of the same plan. Only
// existence is checked: cycles and forward references pass.
func Validate(tasks []Task) error {
	ids := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = struct{}{}
	}

	var missing []MissingDependency
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if _, ok := ids[dep]; !ok {
				missing = append(missing, MissingDependency{TaskID: t.ID, Dependency: dep})
			}
		}
	}
	if len(missing) > 0 {
		return &InvalidPlanError{Missing: missing}
	}
	return nil
}

// Prioritize returns a copy of tasks stably sorted by ascending priority.
// Dependencies do not influence the order.
func Prioritize(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// EstimateTime sums the per-type cost table into a coarse band.
func EstimateTime(tasks []Task) string {
	total := 0
	for _, t := range tasks {
		if m, ok := taskMinutes[t.Type]; ok {
			total += m
			continue
		}
		total += defaultTaskMinutes
	}

	switch {
	case total < 5:
		return EstimateUnderFive
	case total < 15:
		return EstimateFiveFifteen
	default:
		return EstimateOverFifteen
	}
}
