package capability

import (
	"context"

	"hiring-orchestrator/pkg/gcalendar"
)

// Mailer delivers rendered emails.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Calendar is the subset of the Google Calendar client used for interviews.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

var _ Calendar = (*gcalendar.Client)(nil)
