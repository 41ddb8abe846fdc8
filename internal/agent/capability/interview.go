package capability

import (
	"context"
	"fmt"
	"time"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/repository"
	"hiring-orchestrator/pkg/datemath"
	"hiring-orchestrator/pkg/gcalendar"
)

func (c *implCapabilities) interviewScheduling(ctx context.Context, in agent.Input) (agent.Output, error) {
	switch action := interviewAction(in); action {
	case InterviewActionSchedule:
		return c.scheduleInterview(ctx, in)
	case InterviewActionQuestions:
		return c.interviewQuestions(ctx, in)
	case InterviewActionInvitation:
		return c.sendInvitation(ctx, in)
	default:
		return failed("unknown interview action: %s", action), nil
	}
}

// interviewAction honours interview_action. Without it a task that asks for
// questions or an invitation, and not for scheduling, is routed there.
func interviewAction(in agent.Input) string {
	if a := in.String(KeyInterviewAction); a != "" {
		return a
	}
	desc := in.Task.Description
	if containsAny(desc, "schedule", "book") {
		return InterviewActionSchedule
	}
	switch {
	case containsAny(desc, "question"):
		return InterviewActionQuestions
	case containsAny(desc, "invitation", "invite"):
		return InterviewActionInvitation
	}
	return InterviewActionSchedule
}

func (c *implCapabilities) scheduleInterview(ctx context.Context, in agent.Input) (agent.Output, error) {
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

	start, err := c.interviewStart(in)
	if err != nil {
		return failed("%v", err), nil
	}
	end := start.Add(c.opts.InterviewDuration)

	interviewer := firstNonEmpty(in.String(KeyInterviewer), defaultInterviewer)
	location := firstNonEmpty(in.String(KeyLocation), defaultInterviewLocation)
	interviewType := firstNonEmpty(in.String(KeyInterviewType), defaultInterviewType)
	name := candidate.String("name")
	title := job.String("title")

	fields := repository.Record{
		"candidate_id":   candidateID,
		"job_id":         jobID,
		"interview_type": interviewType,
		"interviewer":    interviewer,
		"location":       location,
		"status":         InterviewStatusBooked,
	}

	if c.Calendar != nil {
		start, end = c.freeSlot(ctx, start, end)
		event, calErr := c.Calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  c.opts.CalendarID,
			Summary:     fmt.Sprintf("Interview: %s - %s", name, title),
			Description: fmt.Sprintf("%s interview with %s for %s.", interviewType, name, title),
			Location:    location,
			Attendees:   nonEmpty(candidate.String("email")),
			StartTime:   start,
			EndTime:     end,
			Timezone:    c.opts.Location.String(),
		})
		if calErr != nil {
			c.Logger.Warnf(ctx, "%s: calendar event for %s not created: %v", LogPrefixInterview, candidateID, calErr)
			fields["calendar_error"] = calErr.Error()
		} else {
			fields["calendar_event_id"] = event.ID
			fields["calendar_link"] = event.HtmlLink
		}
	}
	fields["scheduled_at"] = start.Format(time.RFC3339)

	interview, err := c.Repo.Create(ctx, repository.KindInterviews, fields)
	if err != nil {
		return agent.Output{}, fmt.Errorf("save interview: %w", err)
	}
	interviewID := interview.ID()

	if _, err := c.Repo.Update(ctx, repository.KindCandidates, candidateID, repository.Record{
		"status":         StatusInterview,
		"interview_date": start.Format(time.RFC3339),
	}); err != nil {
		return agent.Output{}, fmt.Errorf("update candidate: %w", err)
	}
	c.Logger.Infof(ctx, "%s: interview %s booked for %s at %s", LogPrefixInterview, interviewID, candidateID, start.Format(DateTimeLayout))

	return agent.Output{
		Success:     true,
		Message:     fmt.Sprintf("Interview scheduled with %s on %s", name, start.Format("2006-01-02 at 15:04")),
		NextActions: interviewNextActions,
		EntityIDs: map[string]string{
			agent.KeyInterviewID: interviewID,
			agent.KeyCandidateID: candidateID,
			agent.KeyJobID:       jobID,
		},
		Data: map[string]any{
			agent.KeyInterviewID: interviewID,
			"scheduled_at":       start.Format(time.RFC3339),
			"interviewer":        interviewer,
			"location":           location,
			"calendar_link":      fields["calendar_link"],
		},
	}, nil
}

// interviewStart reads date and time from the context. A missing date means
// the next business day and a missing time means 10:00.
func (c *implCapabilities) interviewStart(in agent.Input) (time.Time, error) {
	now := c.opts.Now().In(c.opts.Location)
	date, clock := in.String(KeyDate), in.String(KeyTime)

	start := nextBusinessDay(now)
	if date == "" && clock == "" {
		return start, nil
	}

	day, hour, minute := start, defaultInterviewHour, 0
	if date != "" {
		d, err := c.dates.Parse(date, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid interview date/time %q %q: %w", date, clock, err)
		}
		day = d
	}
	if clock != "" {
		h, m, err := datemath.ParseClock(clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid interview date/time %q %q: %w", date, clock, err)
		}
		hour, minute = h, m
	}
	return c.dates.At(day, hour, minute), nil
}

func nextBusinessDay(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), defaultInterviewHour, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// freeSlot shifts [start, end) by whole hours until it no longer overlaps an
// existing calendar event. Listing failures keep the requested slot.
func (c *implCapabilities) freeSlot(ctx context.Context, start, end time.Time) (time.Time, time.Time) {
	span := end.Sub(start)
	events, err := c.Calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: c.opts.CalendarID,
		TimeMin:    start,
		TimeMax:    start.Add(time.Duration(maxSlotShifts)*time.Hour + span),
	})
	if err != nil {
		c.Logger.Warnf(ctx, "%s: list events: %v", LogPrefixInterview, err)
		return start, end
	}

	for i := 0; i <= maxSlotShifts; i++ {
		candidateStart := start.Add(time.Duration(i) * time.Hour)
		candidateEnd := candidateStart.Add(span)
		busy := false
		for _, e := range events {
			if e.Overlaps(candidateStart, candidateEnd) {
				busy = true
				break
			}
		}
		if !busy {
			return candidateStart, candidateEnd
		}
	}
	return start, end
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
