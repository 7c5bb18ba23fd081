package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"mentalbank/pkg/gcalendar"
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

func newFakeClient(t *testing.T, ts *httptest.Server) *gcalendar.Client {
	t.Helper()
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

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken credentials JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Upsert Inserts When No Tagged Event", func(t *testing.T) {
		var inserted bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				w.Write([]byte(`{"items": []}`))
			case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/primary/events":
				inserted = true
				w.Write([]byte(`{"id": "event-123", "summary": "Ship v1", "htmlLink": "https://calendar.google.com/event-uri"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		client := newFakeClient(t, ts)
		event, err := client.UpsertAllDayEvent(context.Background(), gcalendar.UpsertEventRequest{
			SourceID: "goal-1",
			Summary:  "Ship v1",
			Date:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to upsert event: %v", err)
		}
		if !inserted {
			t.Error("expected insert path")
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("Upsert Updates Existing Tagged Event", func(t *testing.T) {
		var updated bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				w.Write([]byte(`{"items": [{"id": "event-123"}]}`))
			case r.Method == http.MethodPut && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123":
				updated = true
				w.Write([]byte(`{"id": "event-123", "summary": "Ship v1"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		client := newFakeClient(t, ts)
		_, err := client.UpsertAllDayEvent(context.Background(), gcalendar.UpsertEventRequest{
			SourceID: "goal-1",
			Summary:  "Ship v1",
			Date:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to upsert event: %v", err)
		}
		if !updated {
			t.Error("expected update path")
		}
	})

	t.Run("Delete By Source ID", func(t *testing.T) {
		var deleted bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				w.Write([]byte(`{"items": [{"id": "event-123"}]}`))
			case r.Method == http.MethodDelete && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123":
				deleted = true
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		client := newFakeClient(t, ts)
		if err := client.DeleteEventBySourceID(context.Background(), "", "goal-1"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if !deleted {
			t.Error("expected delete call")
		}
	})

	t.Run("Delete Missing Event Is Not An Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		}))
		defer ts.Close()

		client := newFakeClient(t, ts)
		if err := client.DeleteEventBySourceID(context.Background(), "", "goal-gone"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("List Events", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"items": [{"id": "event-123", "summary": "Existing Event", "start": {"date": "2026-09-01"}, "end": {"date": "2026-09-01"}}]}`))
		}))
		defer ts.Close()

		client := newFakeClient(t, ts)
		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 1 || events[0].Summary != "Existing Event" {
			t.Fatalf("unexpected events: %+v", events)
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(24 * time.Hour),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})
}
