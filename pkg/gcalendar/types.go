package gcalendar

import "time"

// UpsertEventRequest is the input for creating/updating a goal deadline event.
type UpsertEventRequest struct {
	CalendarID  string
	SourceID    string // record ID that owns the event, used as the upsert key
	Summary     string
	Description string
	Date        time.Time // all-day event date
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
