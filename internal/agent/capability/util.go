package capability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
)

// failed reports a task that could not run because of its inputs.
func failed(format string, args ...any) agent.Output {
	return agent.Output{Success: false, Error: fmt.Sprintf(format, args...)}
}

// requestText is the freeform text a handler works from.
func requestText(in agent.Input) string {
	if s := in.String(KeyUserRequest); s != "" {
		return s
	}
	return in.Task.Description
}

// lookupFailed turns a repository lookup error into the handler result: a
// missing record fails the task, anything else is a collaborator error.
func lookupFailed(err error, kind repository.Kind, id string) (agent.Output, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return failed("%s %s not found", singular(kind), id), nil
	}
	return agent.Output{}, fmt.Errorf("load %s %s: %w", singular(kind), id, err)
}

func singular(kind repository.Kind) string {
	return strings.TrimSuffix(string(kind), "s")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func containsAny(s string, words ...string) bool {
	s = strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// intValue reads a positive count from a context value, which may arrive as a
// JSON number or a string.
func intValue(v any, def int) int {
	var n int
	switch vv := v.(type) {
	case int:
		n = vv
	case int64:
		n = int(vv)
	case float64:
		n = int(vv)
	case string:
		n, _ = strconv.Atoi(strings.TrimSpace(vv))
	}
	if n <= 0 {
		return def
	}
	return n
}
