package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type rawDecomposition struct {
	Tasks                  []rawTask `json:"tasks"`
	RequiresClarification  bool      `json:"requires_clarification"`
	ClarificationQuestions []string  `json:"clarification_questions"`
}

type rawTask struct {
	TaskType          string            `json:"task_type"`
	Description       string            `json:"description"`
	Priority          json.RawMessage   `json:"priority"`
	Dependencies      []json.RawMessage `json:"dependencies"`
	InputRequirements []string          `json:"input_requirements"`
}

func (p *implPlanner) Decompose(ctx context.Context, request string, reqCtx map[string]any) (Decomposition, error) {
	prompt := fmt.Sprintf(PromptDecompose, request, renderContext(reqCtx))

	var raw rawDecomposition
	if err := p.reasoning.GenerateStructured(ctx, prompt, schemaDecompose, SystemDecompose, &raw); err != nil {
		return Decomposition{}, fmt.Errorf("%s: %w", LogPrefixDecompose, err)
	}

	return buildDecomposition(raw), nil
}

func buildDecomposition(raw rawDecomposition) Decomposition {
	tasks := make([]Task, 0, len(raw.Tasks))
	for i, rt := range raw.Tasks {
		deps := make([]string, 0, len(rt.Dependencies))
		for _, d := range rt.Dependencies {
			if ref := normalizeDependency(d); ref != "" {
				deps = append(deps, ref)
			}
		}
		tasks = append(tasks, Task{
			ID:                TaskID(i + 1),
			Type:              TaskType(strings.TrimSpace(rt.TaskType)),
			Description:       rt.Description,
			Priority:          parsePriority(rt.Priority),
			Dependencies:      deps,
			InputRequirements: rt.InputRequirements,
		})
	}

	return Decomposition{
		Tasks:                  tasks,
		RequiresClarification:  raw.RequiresClarification,
		ClarificationQuestions: raw.ClarificationQuestions,
	}
}

// TaskID returns the id of the task at 1-based position n.
func TaskID(n int) string {
	return taskIDPrefix + strconv.Itoa(n)
}

// normalizeDependency accepts "task_2", 2 or "2" and returns "task_2". Other
// strings are returned trimmed so validation can reject them.
func normalizeDependency(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return TaskID(int(n))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return TaskID(i)
	}
	return s
}

func parsePriority(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultPriority
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return DefaultPriority
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return DefaultPriority
		}
	}

	switch p := int(n); {
	case p < MinPriority:
		return MinPriority
	case p > MaxPriority:
		return MaxPriority
	default:
		return p
	}
}

func renderContext(reqCtx map[string]any) string {
	if len(reqCtx) == 0 {
		return ""
	}
	b, err := json.MarshalIndent(reqCtx, "", "  ")
	if err != nil {
		return promptContextPrefix + fmt.Sprintf("%v", reqCtx)
	}
	return promptContextPrefix + string(b)
}
