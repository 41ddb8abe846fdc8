package capability

import (
	"context"
	"fmt"
	"strings"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/internal/repository"
)

func (c *implCapabilities) jobDescription(ctx context.Context, in agent.Input) (agent.Output, error) {
	request := requestText(in)
	if request == "" {
		return failed("a job request is required"), nil
	}

	reqs, err := c.Reasoning.ExtractJobRequirements(ctx, request)
	if err != nil {
		return agent.Output{}, fmt.Errorf("extract requirements: %w", err)
	}
	jd, err := c.Reasoning.GenerateJobDescription(ctx, reqs, c.opts.CompanyName)
	if err != nil {
		return agent.Output{}, fmt.Errorf("generate job description: %w", err)
	}
	text := jd.FullText()

	job, err := c.Repo.Create(ctx, repository.KindJobs, repository.Record{
		"title":            jd.Title,
		"company_name":     c.opts.CompanyName,
		"department":       reqs.Department,
		"location":         firstNonEmpty(reqs.Location, defaultJobLocation),
		"employment_type":  firstNonEmpty(reqs.EmploymentType, defaultEmploymentType),
		"description":      text,
		"requirements":     jd.RequiredQualifications,
		"required_skills":  reqs.RequiredSkills,
		"preferred_skills": reqs.PreferredSkills,
		"experience_years": reqs.ExperienceYears,
		"salary_range":     formatSalaryRange(reqs.SalaryRange),
		"status":           JobStatusDraft,
	})
	if err != nil {
		return agent.Output{}, fmt.Errorf("save job: %w", err)
	}
	jobID := job.ID()

	c.Memory.StoreLongTerm(LongTermJobPrefix+jobID, map[string]any{
		"title":           jd.Title,
		"status":          JobStatusDraft,
		"required_skills": reqs.RequiredSkills,
		"session_id":      in.SessionID,
	})
	c.Logger.Infof(ctx, "%s: created job %s (%s)", LogPrefixJobDescription, jobID, jd.Title)

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Job description created for %s", jd.Title),
		NextActions: jobDescriptionNextActions,
		EntityIDs:   map[string]string{agent.KeyJobID: jobID},
		Data: map[string]any{
			agent.KeyJobID:    jobID,
			KeyJobDescription: text,
			"title":           jd.Title,
		},
	}, nil
}

func formatSalaryRange(r reasoning.SalaryRange) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s - %s", thousands(*r.Min), thousands(*r.Max))
	case r.Min != nil:
		return "from " + thousands(*r.Min)
	case r.Max != nil:
		return "up to " + thousands(*r.Max)
	default:
		return "Competitive"
	}
}

func thousands(n int) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
