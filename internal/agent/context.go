package agent

import (
	"fmt"
	"sort"
	"strings"
)

// ResultKey is the shared-context key under which a task's result is stored.
func ResultKey(taskID string) string {
	return taskID + resultKeySuffix
}

// PriorResults returns every TaskResult stored in ctx in dispatch order.
func PriorResults(ctx map[string]any) []TaskResult {
	var out []TaskResult
	for k, v := range ctx {
		if !strings.HasSuffix(k, resultKeySuffix) {
			continue
		}
		if r, ok := v.(TaskResult); ok {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// LookupEntityID resolves key in order: the most recent successful prior
// result of the current plan, then ctx itself, then the ids remembered from
// earlier turns under KeyRememberedEntities.
func LookupEntityID(ctx map[string]any, key string) (string, bool) {
	results := PriorResults(ctx)
	for i := len(results) - 1; i >= 0; i-- {
		if !results[i].Success {
			continue
		}
		if id, ok := results[i].EntityIDs[key]; ok && id != "" {
			return id, true
		}
	}
	if id, ok := nonEmpty(ctx[key]); ok {
		return id, true
	}
	if remembered, ok := ctx[KeyRememberedEntities].(map[string]any); ok {
		return nonEmpty(remembered[key])
	}
	return "", false
}

func nonEmpty(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s := fmt.Sprint(v)
	return s, s != ""
}

// String returns ctx[key] when it is a non-empty string.
func (in Input) String(key string) string {
	if v, ok := in.Context[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// EntityID resolves key through LookupEntityID.
func (in Input) EntityID(key string) (string, bool) {
	return LookupEntityID(in.Context, key)
}
