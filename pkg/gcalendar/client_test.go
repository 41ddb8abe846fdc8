package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"hiring-orchestrator/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestCredentials(t *testing.T) {
	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "token.json")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		dir := t.TempDir()
		credsPath := filepath.Join(dir, "google-credentials.json")
		if err := os.WriteFile(credsPath, []byte(mockCreds), 0o600); err != nil {
			t.Fatal(err)
		}
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := gcalendar.SaveToken(filepath.Join(dir, gcalendar.DefaultTokenFile), tok); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil || !strings.Contains(err.Error(), "calendar-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "none.json"))
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("oauth config", func(t *testing.T) {
		cfg, err := gcalendar.OAuthConfigFromJSON([]byte(mockCreds))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.ClientID != "test-client-id.apps.googleusercontent.com" || cfg.RedirectURL != "http://localhost" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Interview",
		Attendees: []string{"ana@example.com"},
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	attendees, _ := body["attendees"].([]any)
	if len(attendees) != 1 {
		t.Errorf("expected one attendee in request, got %v", body["attendees"])
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"items": [
				{"id": "e1", "summary": "Standup", "start": {"dateTime": "2026-05-04T10:00:00Z"}, "end": {"dateTime": "2026-05-04T10:30:00Z"}},
				{"id": "e2", "summary": "Holiday", "start": {"date": "2026-05-05"}, "end": {"date": "2026-05-06"}}
			]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	slot := time.Date(2026, 5, 4, 10, 15, 0, 0, time.UTC)
	if !events[0].Overlaps(slot, slot.Add(time.Hour)) {
		t.Errorf("expected standup to overlap %v", slot)
	}
	if events[1].StartTime.IsZero() {
		t.Errorf("all-day event start not parsed")
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"}); err == nil {
		t.Errorf("expected list error")
	}
}
