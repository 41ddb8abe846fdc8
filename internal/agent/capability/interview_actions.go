package capability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
)

func (c *implCapabilities) interviewQuestions(ctx context.Context, in agent.Input) (agent.Output, error) {
	jobID, ok := in.EntityID(agent.KeyJobID)
	if !ok {
		return failed("job_id is required to generate interview questions"), nil
	}
	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}

	interviewType := firstNonEmpty(in.String(KeyInterviewType), defaultInterviewType)
	position := firstNonEmpty(job.String("title"), "the open role")
	skills := stringSlice(job["required_skills"])
	if len(skills) == 0 && job.String("description") != "" {
		reqs, err := c.Reasoning.ExtractJobRequirements(ctx, job.String("description"))
		if err != nil {
			return agent.Output{}, fmt.Errorf("extract requirements: %w", err)
		}
		skills = reqs.RequiredSkills
	}

	var out struct {
		Questions []InterviewQuestion `json:"questions"`
	}
	prompt := fmt.Sprintf(PromptInterviewQuestions, interviewType, position, strings.Join(skills, ", "))
	if err := c.Reasoning.GenerateStructured(ctx, prompt, schemaInterviewQuestions, SystemInterviewQuestions, &out); err != nil {
		return agent.Output{}, fmt.Errorf("generate interview questions: %w", err)
	}
	if len(out.Questions) == 0 {
		return failed("no interview questions were generated"), nil
	}
	c.Logger.Infof(ctx, "%s: %d %s questions for job %s", LogPrefixInterview, len(out.Questions), interviewType, jobID)

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Generated %d %s interview questions for %s", len(out.Questions), interviewType, position),
		NextActions: questionsNextActions,
		EntityIDs:   map[string]string{agent.KeyJobID: jobID},
		Data: map[string]any{
			"position":        position,
			"interview_type":  interviewType,
			"questions":       out.Questions,
			"total_questions": len(out.Questions),
		},
	}, nil
}

// sendInvitation mails the invitation for interview_id, or for the latest
// interview of candidate_id and job_id.
func (c *implCapabilities) sendInvitation(ctx context.Context, in agent.Input) (agent.Output, error) {
	interviewID, err := c.invitationTarget(ctx, in)
	if err != nil {
		return agent.Output{}, err
	}
	if interviewID == "" {
		return failed("interview_id is required to send an invitation"), nil
	}

	interview, err := c.Repo.Get(ctx, repository.KindInterviews, interviewID)
	if err != nil {
		return lookupFailed(err, repository.KindInterviews, interviewID)
	}
	candidateID, jobID := interview.String("candidate_id"), interview.String("job_id")
	candidate, err := c.Repo.Get(ctx, repository.KindCandidates, candidateID)
	if err != nil {
		return lookupFailed(err, repository.KindCandidates, candidateID)
	}
	job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
	if err != nil {
		return lookupFailed(err, repository.KindJobs, jobID)
	}

	to := firstNonEmpty(in.String(KeyCandidateEmail), candidate.String("email"))
	if to == "" {
		return failed("candidate %s has no email address", candidateID), nil
	}

	data := emailData{
		CandidateName: firstNonEmpty(candidate.String("name"), defaultCandidateName),
		Position:      firstNonEmpty(job.String("title"), "open"),
		CompanyName:   firstNonEmpty(job.String("company_name"), c.opts.CompanyName),
		Location:      firstNonEmpty(interview.String("calendar_link"), interview.String("location")),
		Interviewer:   interview.String("interviewer"),
	}
	if at, perr := time.Parse(time.RFC3339, interview.String("scheduled_at")); perr == nil {
		at = at.In(c.opts.Location)
		data.InterviewDate = at.Format(invitationDateLayout)
		data.InterviewTime = at.Format(invitationTimeLayout)
	}

	subject, body, err := renderEmail(TemplateInterviewInvitation, data)
	if err != nil {
		return agent.Output{}, err
	}
	if err := c.Mailer.Send(ctx, Email{To: to, Subject: subject, Body: body, Template: TemplateInterviewInvitation}); err != nil {
		return agent.Output{}, fmt.Errorf("send interview invitation: %w", err)
	}
	if _, err := c.Repo.Update(ctx, repository.KindInterviews, interviewID, repository.Record{
		"invitation_sent_to": to,
		"invitation_sent_at": c.opts.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		c.Logger.Warnf(ctx, "%s: interview %s not marked as invited: %v", LogPrefixInterview, interviewID, err)
	}
	c.Logger.Infof(ctx, "%s: invitation for %s sent to %s", LogPrefixInterview, interviewID, to)

	return agent.Output{
		Success: true,
		Message: fmt.Sprintf("Interview invitation sent to %s", to),
		EntityIDs: map[string]string{
			agent.KeyInterviewID: interviewID,
			agent.KeyCandidateID: candidateID,
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{
			"email_sent_to": to,
			"subject":       subject,
		},
	}, nil
}

func (c *implCapabilities) invitationTarget(ctx context.Context, in agent.Input) (string, error) {
	if id, ok := in.EntityID(agent.KeyInterviewID); ok {
		return id, nil
	}
	candidateID, okCandidate := in.EntityID(agent.KeyCandidateID)
	jobID, okJob := in.EntityID(agent.KeyJobID)
	if !okCandidate || !okJob {
		return "", nil
	}
	interviews, err := c.Repo.List(ctx, repository.KindInterviews, repository.ListOptions{
		Filters: map[string]any{"candidate_id": candidateID, "job_id": jobID},
	})
	if err != nil {
		return "", fmt.Errorf("list interviews: %w", err)
	}
	latest := ""
	var latestAt string
	for _, iv := range interviews {
		if at := iv.String(repository.FieldCreatedAt); latest == "" || at > latestAt {
			latest, latestAt = iv.ID(), at
		}
	}
	return latest, nil
}

func stringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
