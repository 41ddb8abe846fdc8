package agent

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/pkg/log"
)

// Dispatcher runs a plan strictly in order.
type Dispatcher struct {
	l        log.Logger
	handlers Handlers
	now      func() time.Time
}

// NewDispatcher creates a dispatcher over handlers.
func NewDispatcher(l log.Logger, handlers Handlers) *Dispatcher {
	return &Dispatcher{l: l, handlers: handlers, now: time.Now}
}

// Dispatch executes every task and returns one result per task in plan order.
// A failing task never stops the loop.
func (d *Dispatcher) Dispatch(ctx context.Context, req DispatchRequest) []TaskResult {
	shared := make(map[string]any, len(req.Context)+len(req.Tasks))
	for k, v := range req.Context {
		shared[k] = v
	}

	results := make([]TaskResult, 0, len(req.Tasks))
	for i, task := range req.Tasks {
		if req.Observer != nil {
			req.Observer.TaskStarted(req.SessionID, task)
		}

		res := d.runOne(ctx, req.SessionID, task, copyContext(shared))
		res.Seq = i
		shared[ResultKey(task.ID)] = res
		results = append(results, res)

		if req.Observer != nil {
			req.Observer.TaskFinished(req.SessionID, res)
		}
	}
	return results
}

func (d *Dispatcher) runOne(ctx context.Context, sessionID string, task planner.Task, taskCtx map[string]any) TaskResult {
	start := d.now()
	res := TaskResult{TaskID: task.ID, Type: task.Type}

	handler, ok := d.handlers.For(task.Type)
	if !ok {
		res.Err = fmt.Errorf("%w: %s", ErrUnknownTaskType, task.Type)
		res.Error = res.Err.Error()
		d.l.Warnf(ctx, "%s: %s: %v", LogPrefixDispatch, task.ID, res.Err)
		return res
	}

	d.l.Infof(ctx, "%s: executing %s (%s)", LogPrefixDispatch, task.ID, task.Type)
	out, err := d.invoke(ctx, handler, Input{Task: task, SessionID: sessionID, Context: taskCtx})
	res.Duration = d.now().Sub(start)

	switch {
	case err != nil:
		res.Err = &HandlerError{TaskID: task.ID, Err: err}
		res.Error = err.Error()
	case !out.Success:
		msg := out.Error
		if msg == "" {
			msg = "task reported failure"
		}
		res.Err = &HandlerError{TaskID: task.ID, Err: errors.New(msg)}
		res.Error = msg
		res.Data = out.Data
	default:
		res.Success = true
		res.Message = out.Message
		res.NextActions = out.NextActions
		res.EntityIDs = out.EntityIDs
		res.Data = out.Data
	}

	if res.Err != nil {
		d.l.Warnf(ctx, "%s: %s failed: %v", LogPrefixDispatch, task.ID, res.Err)
	}
	return res
}

// invoke calls the handler and turns a panic into an error.
func (d *Dispatcher) invoke(ctx context.Context, h Handler, in Input) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "%s: %s panicked: %v\n%s", LogPrefixDispatch, in.Task.ID, r, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.Execute(ctx, in)
}

func copyContext(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
