package capability

import (
	"context"
	"fmt"
	"time"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
)

func (c *implCapabilities) emailCommunication(ctx context.Context, in agent.Input) (agent.Output, error) {
	name := firstNonEmpty(in.String(KeyEmailTemplate), templateFor(in.Task.Description))
	if _, ok := emailTemplates[name]; !ok {
		return failed("unknown email template: %s", name), nil
	}

	data := emailData{
		CandidateName:    in.String(KeyCandidateName),
		Position:         in.String(KeyPosition),
		CompanyName:      c.opts.CompanyName,
		Location:         in.String(KeyLocation),
		Interviewer:      in.String(KeyInterviewer),
		StartDate:        in.String(KeyStartDate),
		Salary:           in.String(KeySalary),
		Benefits:         in.String(KeyBenefits),
		ResponseDeadline: in.String(KeyResponseByDate),
	}
	to := in.String(KeyCandidateEmail)
	entities := map[string]string{}

	if candidateID, ok := in.EntityID(agent.KeyCandidateID); ok {
		candidate, err := c.Repo.Get(ctx, repository.KindCandidates, candidateID)
		if err != nil {
			return lookupFailed(err, repository.KindCandidates, candidateID)
		}
		data.CandidateName = firstNonEmpty(data.CandidateName, candidate.String("name"))
		to = firstNonEmpty(to, candidate.String("email"))
		entities[agent.KeyCandidateID] = candidateID
	}
	if jobID, ok := in.EntityID(agent.KeyJobID); ok {
		job, err := c.Repo.Get(ctx, repository.KindJobs, jobID)
		if err != nil {
			return lookupFailed(err, repository.KindJobs, jobID)
		}
		data.Position = firstNonEmpty(data.Position, job.String("title"))
		entities[agent.KeyJobID] = jobID
	}
	if interviewID, ok := in.EntityID(agent.KeyInterviewID); ok && name == TemplateInterviewInvitation {
		interview, err := c.Repo.Get(ctx, repository.KindInterviews, interviewID)
		if err != nil {
			return lookupFailed(err, repository.KindInterviews, interviewID)
		}
		if at, perr := time.Parse(time.RFC3339, interview.String("scheduled_at")); perr == nil {
			at = at.In(c.opts.Location)
			data.InterviewDate = at.Format("2006-01-02")
			data.InterviewTime = at.Format("15:04")
		}
		data.Location = firstNonEmpty(data.Location, interview.String("location"))
		data.Interviewer = firstNonEmpty(data.Interviewer, interview.String("interviewer"))
		entities[agent.KeyInterviewID] = interviewID
	}

	if to == "" {
		return failed("recipient email is required (candidate_email or a candidate with an email)"), nil
	}
	data.CandidateName = firstNonEmpty(data.CandidateName, defaultCandidateName)
	data.Position = firstNonEmpty(data.Position, "open")

	subject, body, err := renderEmail(name, data)
	if err != nil {
		return agent.Output{}, err
	}
	if err := c.Mailer.Send(ctx, Email{To: to, Subject: subject, Body: body, Template: name}); err != nil {
		return agent.Output{}, fmt.Errorf("send %s email: %w", name, err)
	}

	if _, err := c.Repo.Create(ctx, repository.KindTasks, repository.Record{
		"type":         "email",
		"template":     name,
		"to":           to,
		"subject":      subject,
		"status":       "sent",
		"session_id":   in.SessionID,
		"task_id":      in.Task.ID,
		"candidate_id": entities[agent.KeyCandidateID],
	}); err != nil {
		c.Logger.Warnf(ctx, "%s: audit record for %s not saved: %v", LogPrefixEmail, in.Task.ID, err)
	}
	c.Logger.Infof(ctx, "%s: sent %s to %s", LogPrefixEmail, name, to)

	return agent.Output{
		Success:   true,
		Message:   fmt.Sprintf("Sent %s email to %s", name, to),
		EntityIDs: entities,
		Data: map[string]any{
			"template": name,
			"to":       to,
			"subject":  subject,
		},
	}, nil
}
