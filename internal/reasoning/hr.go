package reasoning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// AnalyzeIntent classifies message and reports whether clarification is needed.
func (s *implService) AnalyzeIntent(ctx context.Context, message string) (IntentAnalysis, error) {
	var out IntentAnalysis
	if err := s.generateStructured(ctx, fmt.Sprintf(PromptIntent, message), schemaIntent, SystemIntent, IntentTemperature, &out); err != nil {
		return IntentAnalysis{}, err
	}
	out.Intent = strings.TrimSpace(out.Intent)
	s.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixAnalyzeIntent, out.Intent, out.Confidence)
	return out, nil
}

func (s *implService) ExtractJobRequirements(ctx context.Context, description string) (JobRequirements, error) {
	var out JobRequirements
	if err := s.GenerateStructured(ctx, fmt.Sprintf(PromptJobRequirements, description), schemaJobRequirements, "", &out); err != nil {
		return JobRequirements{}, err
	}
	return out, nil
}

func (s *implService) GenerateJobDescription(ctx context.Context, req JobRequirements, companyName string) (JobDescription, error) {
	reqJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return JobDescription{}, fmt.Errorf("marshal requirements: %w", err)
	}

	var out JobDescription
	prompt := fmt.Sprintf(PromptJobDescription, companyName, reqJSON)
	if err := s.GenerateStructured(ctx, prompt, schemaJobDescription, SystemJobDescription, &out); err != nil {
		return JobDescription{}, err
	}
	if out.Title == "" {
		out.Title = req.Position
	}
	return out, nil
}

func (s *implService) CompareCandidateToJob(ctx context.Context, resumeText string, job map[string]any) (CandidateMatch, error) {
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return CandidateMatch{}, fmt.Errorf("marshal job: %w", err)
	}

	var out CandidateMatch
	prompt := fmt.Sprintf(PromptCandidateMatch, jobJSON, truncate(resumeText, maxResumeChars))
	if err := s.GenerateStructured(ctx, prompt, schemaCandidateMatch, SystemCandidateMatch, &out); err != nil {
		return CandidateMatch{}, err
	}
	if out.Recommendation == "" {
		out.Recommendation = RecommendationFor(out.MatchScore)
	}
	return out, nil
}

// RecommendationFor maps a 0-100 match score to a recommendation bucket.
func RecommendationFor(score float64) string {
	switch {
	case score >= 80:
		return RecommendationStrong
	case score >= 60:
		return RecommendationGood
	case score >= 40:
		return RecommendationPotential
	default:
		return RecommendationNo
	}
}
