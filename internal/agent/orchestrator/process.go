package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/internal/reasoning"
	pkgLog "hiring-orchestrator/pkg/log"
)

// Process runs one user turn: intent check, decomposition, validation,
// dispatch and response synthesis. Turns of the same session run one at a time.
func (o *Orchestrator) Process(ctx context.Context, in ProcessInput) (ProcessOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return ProcessOutput{}, ErrEmptyMessage
	}
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = o.ledger.CreateSession()
	}
	unlock := o.lockSession(sessionID)
	defer unlock()

	ctx = pkgLog.WithSessionID(ctx, sessionID)
	out := ProcessOutput{SessionID: sessionID, Trace: []State{StateReceived}}

	// RECEIVED
	if _, err := o.ledger.Append(sessionID, conversation.RoleUser, message, nil); err != nil {
		return ProcessOutput{}, fmt.Errorf("%s: append user message: %w", LogPrefixProcess, err)
	}
	working := o.mergeContext(sessionID, message, in.Context)

	// INTENT_CHECKED
	intent, err := o.reasoning.AnalyzeIntent(ctx, message)
	if err != nil {
		return o.upstreamFailure(ctx, out, err), nil
	}
	out.Intent = &intent
	out.Trace = append(out.Trace, StateIntentChecked)
	mergeEntities(working, intent.Entities)

	if intent.RequiresClarification {
		return o.clarify(sessionID, out, MsgClarifyIntent, intent.ClarificationQuestions), nil
	}

	// DECOMPOSED
	plan, err := o.planner.GeneratePlan(ctx, message, working)
	if err != nil {
		return o.upstreamFailure(ctx, out, err), nil
	}
	out.Plan = &plan
	out.Trace = append(out.Trace, StateDecomposed)

	switch plan.Status {
	case planner.StatusNeedsClarification:
		return o.clarify(sessionID, out, MsgClarifyPlan, plan.Questions), nil
	case planner.StatusInvalidSequence:
		return o.invalidPlan(ctx, out, plan), nil
	}

	// EXECUTING
	out.Trace = append(out.Trace, StateExecuting)
	o.l.Infof(ctx, "%s: dispatching %d tasks (estimated %s)", LogPrefixProcess, len(plan.Tasks), plan.EstimatedTime)
	out.Results = o.dispatcher.Dispatch(ctx, agent.DispatchRequest{
		SessionID: sessionID,
		Tasks:     plan.Tasks,
		Context:   working,
		Observer:  ledgerObserver{ledger: o.ledger},
	})

	// RESPONDED
	out.Response = synthesize(out.Results)
	out.Trace = append(out.Trace, StateResponded)
	o.remember(ctx, sessionID, intent.Intent, out)
	return out, nil
}

// mergeContext builds the working context: caller context, then the session's
// memory, then the fixed keys. Remembered entity ids stay nested under
// ContextTypeEntities so ids created by the current plan take precedence.
func (o *Orchestrator) mergeContext(sessionID, message string, callerCtx map[string]any) map[string]any {
	working := make(map[string]any, len(callerCtx)+8)
	for k, v := range callerCtx {
		working[k] = v
	}
	for k, v := range o.memory.GetRelevantContext(sessionID, message) {
		if _, set := callerCtx[k]; !set {
			working[k] = v
		}
	}
	working[KeyConversationSummary] = o.ledger.Summarize(sessionID)
	working[KeyUserRequest] = message
	working[KeyTimeContext] = buildTimeContext(o.now().In(o.loc))
	return working
}

// mergeEntities adds the entities found by intent analysis without overriding
// anything already in the working context.
func mergeEntities(working, entities map[string]any) {
	for k, v := range entities {
		if v == nil {
			continue
		}
		if _, ok := working[k]; !ok {
			working[k] = v
		}
	}
}

func (o *Orchestrator) clarify(sessionID string, out ProcessOutput, message string, questions []string) ProcessOutput {
	if len(questions) == 0 {
		questions = []string{DefaultClarifyQuestion}
	}
	out.Trace = append(out.Trace, StateClarifying, StateResponded)
	out.Response = AgentResponse{
		Success:     true,
		Message:     message,
		Suggestions: questions,
	}
	o.appendAssistant(sessionID, message, map[string]any{metadataKeyState: string(StateClarifying)})
	return out
}

func (o *Orchestrator) invalidPlan(ctx context.Context, out ProcessOutput, plan planner.Plan) ProcessOutput {
	detail := "unknown error"
	var ipe *planner.InvalidPlanError
	switch {
	case errors.As(plan.Err, &ipe):
		refs := make([]string, len(ipe.Missing))
		for i, m := range ipe.Missing {
			refs[i] = fmt.Sprintf("%s depends on unknown %s", m.TaskID, m.Dependency)
		}
		detail = strings.Join(refs, ", ")
	case plan.Err != nil:
		detail = plan.Err.Error()
	}

	o.l.Warnf(ctx, "%s: invalid plan: %s", LogPrefixProcess, detail)
	out.Trace = append(out.Trace, StateInvalidPlan, StateResponded)
	out.Failure = plan.Err
	if out.Failure == nil {
		out.Failure = planner.ErrInvalidPlan
	}
	out.Response = AgentResponse{
		Success: false,
		Message: fmt.Sprintf(MsgInvalidSequence, detail),
		Data:    map[string]any{KeyErrors: []string{detail}},
	}
	return out
}

func (o *Orchestrator) upstreamFailure(ctx context.Context, out ProcessOutput, err error) ProcessOutput {
	o.l.Errorf(ctx, "%s: reasoning failed: %v", LogPrefixProcess, err)
	if !errors.Is(err, reasoning.ErrUpstream) {
		err = fmt.Errorf("%w: %w", reasoning.ErrUpstream, err)
	}
	out.Failure = err
	out.Trace = append(out.Trace, StateResponded)
	out.Response = AgentResponse{
		Success: false,
		Message: fmt.Sprintf(MsgUpstreamFailure, err),
	}
	return out
}

// remember writes the last-action snapshot, the entity ids produced by this
// turn and the assistant message.
func (o *Orchestrator) remember(ctx context.Context, sessionID, intent string, out ProcessOutput) {
	o.memory.StoreShortTerm(sessionID, KeyLastAction, lastAction{Intent: intent, Results: out.Results}, 0)

	ids := map[string]any{}
	for _, key := range []string{agent.KeyJobID, agent.KeyCandidateID, agent.KeyInterviewID} {
		if v, ok := out.Response.Data[key]; ok {
			ids[key] = v
		}
	}
	if len(ids) > 0 {
		prev, _ := o.memory.GetContext(sessionID, ContextTypeEntities)
		for k, v := range prev {
			if _, ok := ids[k]; !ok {
				ids[k] = v
			}
		}
		o.memory.StoreContext(sessionID, ContextTypeEntities, ids)
	}

	text := out.Response.Message
	if out.Response.Summary != "" {
		text += summarySeparator + out.Response.Summary
	}
	succeeded := 0
	for _, r := range out.Results {
		if r.Success {
			succeeded++
		}
	}
	meta := map[string]any{
		metadataKeyState:        string(StateResponded),
		metadataKeyIntent:       intent,
		metadataKeyTaskCount:    len(out.Results),
		metadataKeySuccessCount: succeeded,
	}
	if out.Plan != nil {
		meta[metadataKeyEstimatedTime] = out.Plan.EstimatedTime
	}
	o.appendAssistant(sessionID, text, meta)
	o.l.Infof(ctx, "%s: %d/%d tasks succeeded", LogPrefixProcess, succeeded, len(out.Results))
}

func (o *Orchestrator) appendAssistant(sessionID, text string, meta map[string]any) {
	if _, err := o.ledger.Append(sessionID, conversation.RoleAssistant, text, meta); err != nil {
		o.l.Warnf(context.Background(), "%s: append assistant message: %v", LogPrefixProcess, err)
	}
}

// ledgerObserver tracks in-flight tasks on the session.
type ledgerObserver struct {
	ledger conversation.Ledger
}

func (l ledgerObserver) TaskStarted(sessionID string, task planner.Task) {
	l.ledger.AddActiveTask(sessionID, task.ID)
}

func (l ledgerObserver) TaskFinished(sessionID string, result agent.TaskResult) {
	l.ledger.RemoveActiveTask(sessionID, result.TaskID)
}
