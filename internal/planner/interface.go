package planner

import "context"

// Planner turns a freeform request into an execution plan.
type Planner interface {
	// Decompose performs exactly one reasoning call and builds tasks from it.
	Decompose(ctx context.Context, request string, reqCtx map[string]any) (Decomposition, error)
	// GeneratePlan decomposes, validates and orders. The error return is reserved
	// for reasoning failures; clarification and invalid dependencies are
	// reported through Plan.Status.
	GeneratePlan(ctx context.Context, request string, reqCtx map[string]any) (Plan, error)
}
