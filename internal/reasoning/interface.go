package reasoning

import (
	"context"

	"hiring-orchestrator/pkg/llmprovider"
)

// Generator is the text-generation backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Service is the reasoning collaborator used by the orchestrator, the planner
// and the capability handlers. Implementations are safe for concurrent use.
type Service interface {
	// GenerateText returns free text for prompt. history supplies prior turns; only
	// the most recent few are forwarded.
	GenerateText(ctx context.Context, prompt, systemPrompt string, history []Turn) (string, error)
	// GenerateStructured asks for JSON matching schema and decodes it into out.
	GenerateStructured(ctx context.Context, prompt string, schema any, systemPrompt string, out any) error

	AnalyzeIntent(ctx context.Context, message string) (IntentAnalysis, error)
	ExtractJobRequirements(ctx context.Context, description string) (JobRequirements, error)
	GenerateJobDescription(ctx context.Context, req JobRequirements, companyName string) (JobDescription, error)
	CompareCandidateToJob(ctx context.Context, resumeText string, job map[string]any) (CandidateMatch, error)
}
