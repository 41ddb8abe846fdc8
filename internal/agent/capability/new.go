package capability

import (
	"time"

	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/pkg/datemath"
)

type implCapabilities struct {
	Deps
	opts  Options
	dates *datemath.Parser
}

// New wires one handler per task type over the shared collaborators.
func New(deps Deps, opts Options) agent.Handlers {
	if opts.CompanyName == "" {
		opts.CompanyName = defaultCompanyName
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.InterviewDuration <= 0 {
		opts.InterviewDuration = defaultInterviewDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &implCapabilities{Deps: deps, opts: opts, dates: datemath.NewParserIn(opts.Location)}
	return agent.Handlers{
		JobDescription:      agent.HandlerFunc(c.jobDescription),
		ResumeScreening:     agent.HandlerFunc(c.resumeScreening),
		InterviewScheduling: agent.HandlerFunc(c.interviewScheduling),
		EmailCommunication:  agent.HandlerFunc(c.emailCommunication),
		Analytics:           agent.HandlerFunc(c.analytics),
		OfferGeneration:     agent.HandlerFunc(c.offerGeneration),
	}
}
