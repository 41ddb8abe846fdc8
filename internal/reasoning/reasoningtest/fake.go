// Package reasoningtest provides an in-memory reasoning.Service for tests.
package reasoningtest

import (
	"context"
	"errors"
	"sync"

	"hiring-orchestrator/internal/reasoning"
)

// Fake answers from canned values and records every call.
type Fake struct {
	mu sync.Mutex

	Intent    reasoning.IntentAnalysis
	IntentErr error

	// Structured is consumed in order by GenerateStructured; the last element
	// is reused once the queue is down to one.
	Structured    []string
	StructuredErr error

	Text    string
	TextErr error

	Requirements reasoning.JobRequirements
	Description  reasoning.JobDescription
	Match        reasoning.CandidateMatch
	HRErr        error

	Calls   []string
	Prompts []string
}

var _ reasoning.Service = (*Fake)(nil)

func (f *Fake) record(method, prompt string) {
	f.Calls = append(f.Calls, method)
	f.Prompts = append(f.Prompts, prompt)
}

// CallCount returns how many times method was invoked.
func (f *Fake) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *Fake) GenerateText(ctx context.Context, prompt, systemPrompt string, history []reasoning.Turn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GenerateText", prompt)
	if f.TextErr != nil {
		return "", f.TextErr
	}
	return f.Text, nil
}

func (f *Fake) GenerateStructured(ctx context.Context, prompt string, schema any, systemPrompt string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GenerateStructured", prompt)
	if f.StructuredErr != nil {
		return f.StructuredErr
	}
	if len(f.Structured) == 0 {
		return errors.New("reasoningtest: no structured response queued")
	}
	next := f.Structured[0]
	if len(f.Structured) > 1 {
		f.Structured = f.Structured[1:]
	}
	return reasoning.DecodeJSON(next, out)
}

func (f *Fake) AnalyzeIntent(ctx context.Context, message string) (reasoning.IntentAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("AnalyzeIntent", message)
	if f.IntentErr != nil {
		return reasoning.IntentAnalysis{}, f.IntentErr
	}
	return f.Intent, nil
}

func (f *Fake) ExtractJobRequirements(ctx context.Context, description string) (reasoning.JobRequirements, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ExtractJobRequirements", description)
	if f.HRErr != nil {
		return reasoning.JobRequirements{}, f.HRErr
	}
	return f.Requirements, nil
}

func (f *Fake) GenerateJobDescription(ctx context.Context, req reasoning.JobRequirements, companyName string) (reasoning.JobDescription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GenerateJobDescription", companyName)
	if f.HRErr != nil {
		return reasoning.JobDescription{}, f.HRErr
	}
	return f.Description, nil
}

func (f *Fake) CompareCandidateToJob(ctx context.Context, resumeText string, job map[string]any) (reasoning.CandidateMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CompareCandidateToJob", resumeText)
	if f.HRErr != nil {
		return reasoning.CandidateMatch{}, f.HRErr
	}
	return f.Match, nil
}
