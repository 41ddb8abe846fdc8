package capability

import (
	"context"
	"fmt"
	"strings"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
)

func (c *implCapabilities) offerGeneration(ctx context.Context, in agent.Input) (agent.Output, error) {
	candidateID, okCandidate := in.EntityID(agent.KeyCandidateID)
	jobID, okJob := in.EntityID(agent.KeyJobID)
	if !okCandidate || !okJob {
		return failed("candidate_id and job_id are required"), nil
	}

	candidate, err := c.Repo.Get(ctx, repository.KindCandidates, candidateID)
	if err != nil {
		return lookupFailed(err, repository.KindCandidates, candidateID)
	}
	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}

	name := firstNonEmpty(candidate.String("name"), defaultCandidateName)
	position := job.String("title")
	prompt := fmt.Sprintf(PromptOfferLetter,
		c.opts.CompanyName,
		name,
		position,
		firstNonEmpty(in.String(KeySalary), job.String("salary_range"), "Competitive"),
		firstNonEmpty(in.String(KeyStartDate), "to be agreed"),
		firstNonEmpty(in.String(KeyBenefits), "standard company benefits"),
	)

	letter, err := c.Reasoning.GenerateText(ctx, prompt, SystemOfferLetter, nil)
	if err != nil {
		return agent.Output{}, fmt.Errorf("draft offer letter: %w", err)
	}
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return failed("offer letter came back empty"), nil
	}

	if _, err := c.Repo.Update(ctx, repository.KindCandidates, candidateID, repository.Record{
		"status":       StatusOffer,
		"offer_letter": letter,
	}); err != nil {
		return agent.Output{}, fmt.Errorf("update candidate: %w", err)
	}
	c.Logger.Infof(ctx, "%s: offer drafted for %s (%s)", LogPrefixOffer, candidateID, position)

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Offer letter drafted for %s (%s)", name, position),
		NextActions: offerNextActions,
		EntityIDs: map[string]string{
			agent.KeyCandidateID: candidateID,
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{"offer_letter": letter},
	}, nil
}
