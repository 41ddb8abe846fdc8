package capability

import (
	"time"

	"hiring-orchestrator/internal/memory"
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/internal/repository"
	"hiring-orchestrator/pkg/log"
)

// Email is one outgoing message.
type Email struct {
	To       string
	Subject  string
	Body     string
	Template string
}

// Options tunes the handlers. Zero values fall back to defaults.
type Options struct {
	CompanyName       string
	Location          *time.Location
	CalendarID        string
	InterviewDuration time.Duration
	Now               func() time.Time
}

// Deps are the collaborators shared by every handler. Calendar may be nil.
type Deps struct {
	Logger    log.Logger
	Reasoning reasoning.Service
	Repo      repository.Repository
	Memory    memory.Store
	Mailer    Mailer
	Calendar  Calendar
}

// InterviewQuestion is one generated interview question.
type InterviewQuestion struct {
	Question     string `json:"question"`
	Type         string `json:"type"`
	FocusArea    string `json:"focus_area"`
	SampleAnswer string `json:"sample_answer"`
}

// emailData feeds the email templates.
type emailData struct {
	CandidateName    string
	Position         string
	CompanyName      string
	Timeline         string
	InterviewDate    string
	InterviewTime    string
	Location         string
	Interviewer      string
	StartDate        string
	Salary           string
	Benefits         string
	ResponseDeadline string
}
