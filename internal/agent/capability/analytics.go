package capability

import (
	"context"
	"fmt"
	"math"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
)

func (c *implCapabilities) analytics(ctx context.Context, in agent.Input) (agent.Output, error) {
	kind := in.String(KeyAnalysisType)
	if kind == "" {
		kind = AnalysisOverview
		if containsAny(in.Task.Description, "pipeline", "funnel", "conversion", "bottleneck") {
			kind = AnalysisCandidatePipeline
		}
	}

	candidates, err := c.Repo.List(ctx, repository.KindCandidates, repository.ListOptions{})
	if err != nil {
		return agent.Output{}, fmt.Errorf("list candidates: %w", err)
	}

	switch kind {
	case AnalysisOverview:
		return c.overview(ctx, candidates)
	case AnalysisCandidatePipeline:
		return pipeline(candidates), nil
	default:
		return failed("unknown analysis type: %s", kind), nil
	}
}

func (c *implCapabilities) overview(ctx context.Context, candidates []repository.Record) (agent.Output, error) {
	jobs, err := c.Repo.List(ctx, repository.KindJobs, repository.ListOptions{})
	if err != nil {
		return agent.Output{}, fmt.Errorf("list jobs: %w", err)
	}
	interviews, err := c.Repo.List(ctx, repository.KindInterviews, repository.ListOptions{
		Filters: map[string]any{repository.FieldStatus: InterviewStatusBooked},
	})
	if err != nil {
		return agent.Output{}, fmt.Errorf("list interviews: %w", err)
	}

	active := 0
	for _, j := range jobs {
		switch j.String(repository.FieldStatus) {
		case "active", "open", "published":
			active++
		}
	}

	var scoreSum float64
	scored := 0
	for _, cand := range candidates {
		if s, ok := cand.Float("match_score"); ok {
			scoreSum += s
			scored++
		}
	}
	avg := 0.0
	if scored > 0 {
		avg = round1(scoreSum / float64(scored))
	}

	overview := map[string]any{
		"total_jobs":             len(jobs),
		"active_jobs":            active,
		"active_jobs_percentage": percent(active, len(jobs)),
		"total_candidates":       len(candidates),
		"candidates_by_status":   statusCounts(candidates),
		"average_match_score":    avg,
		"interviews_scheduled":   len(interviews),
	}

	var recs []string
	if len(candidates) == 0 {
		recs = append(recs, "Source more candidates for open positions")
	} else {
		if scored > 0 && avg < scoreScreening {
			recs = append(recs, "Review job requirements to attract better matched candidates")
		}
		if len(interviews) == 0 {
			recs = append(recs, "Schedule interviews with top candidates")
		}
	}
	if len(jobs) > 0 && active == 0 {
		recs = append(recs, "Publish draft job descriptions")
	}

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Analytics overview generated: %d jobs, %d candidates, %d interviews scheduled", len(jobs), len(candidates), len(interviews)),
		NextActions: recs,
		Data:        map[string]any{"analytics": overview},
	}, nil
}

func pipeline(candidates []repository.Record) agent.Output {
	counts := statusCounts(candidates)
	total := len(candidates)

	rates := map[string]float64{
		"to_interview": percent(counts[StatusInterview], total),
		"to_offer":     percent(counts[StatusOffer], total),
		"to_hire":      percent(counts[StatusHired], total),
	}

	var bottlenecks []string
	if counts[StatusScreening] > counts[StatusInterview]*3 {
		bottlenecks = append(bottlenecks, "Many candidates stuck in screening. Consider a faster screening process.")
	}
	if counts[StatusInterview] > counts[StatusOffer]*5 {
		bottlenecks = append(bottlenecks, "High interview to offer ratio. Review interview evaluation criteria.")
	}

	var next []string
	if rates["to_interview"] < 20 && total > 0 {
		next = append(next, "Improve screening criteria to move more candidates to interview")
	}
	if len(bottlenecks) > 0 {
		next = append(next, "Address pipeline bottlenecks")
	}

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Pipeline analysis complete: %d candidates", total),
		NextActions: next,
		Data: map[string]any{"analytics": map[string]any{
			"total_candidates": total,
			"by_status":        counts,
			"conversion_rates": rates,
			"bottlenecks":      bottlenecks,
		}},
	}
}

func statusCounts(candidates []repository.Record) map[string]int {
	counts := make(map[string]int)
	for _, cand := range candidates {
		status := cand.String(repository.FieldStatus)
		if status == "" {
			status = StatusNew
		}
		counts[status]++
	}
	return counts
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
