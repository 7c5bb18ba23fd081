package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goalRepo "mentalbank/internal/goal/repository"
	"mentalbank/internal/report"
	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/gcalendar"
	"mentalbank/pkg/log"
	"mentalbank/pkg/metrics"
)

const (
	maxAttempts       = 3
	initialBackoff    = 500 * time.Millisecond
	resyncHorizonDays = 30
)

// Worker consumes goal.sync messages and mirrors goal deadlines into
// Google Calendar as all-day events.
type Worker struct {
	goalRepo   goalRepo.Repository
	calendar   *gcalendar.Client
	calendarID string
	l          log.Logger
}

// New creates a worker. calendar may be nil when credentials are absent;
// messages are then acknowledged and skipped.
func New(gr goalRepo.Repository, calendar *gcalendar.Client, calendarID string, l log.Logger) *Worker {
	return &Worker{
		goalRepo:   gr,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}

// Handle processes one queue message. Malformed payloads are dropped;
// calendar failures after retries are requeued.
func (w *Worker) Handle(ctx context.Context, body []byte) (requeue bool, err error) {
	start := time.Now()

	var msg syncPkg.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		w.l.Warnf(ctx, "sync/worker: dropping malformed message: %v", err)
		metrics.RecordSyncConsume("malformed", start, err)
		return false, err
	}
	if !msg.Action.Valid() {
		w.l.Warnf(ctx, "sync/worker: dropping message with unknown action %q", msg.Action)
		err := fmt.Errorf("unknown action %q", msg.Action)
		metrics.RecordSyncConsume("unknown", start, err)
		return false, err
	}

	if w.calendar == nil {
		w.l.Infof(ctx, "sync/worker: calendar not configured, skipping %s for goal %s", msg.Action, msg.GoalID)
		metrics.RecordSyncConsume(string(msg.Action), start, nil)
		return false, nil
	}

	err = w.withRetry(ctx, func() error {
		return w.process(ctx, msg)
	})
	metrics.RecordSyncConsume(string(msg.Action), start, err)
	if err != nil {
		w.l.Errorf(ctx, "sync/worker: %s for goal %s failed after %d attempts: %v", msg.Action, msg.GoalID, maxAttempts, err)
		return true, err
	}
	return false, nil
}

func (w *Worker) process(ctx context.Context, msg syncPkg.Message) error {
	switch msg.Action {
	case syncPkg.ActionUpsert:
		return w.upsertGoal(ctx, msg.UserID, msg.GoalID)
	case syncPkg.ActionDelete:
		return w.calendar.DeleteEventBySourceID(ctx, w.calendarID, msg.GoalID)
	case syncPkg.ActionResync:
		return w.resync(ctx, msg.UserID)
	}
	return nil
}

// upsertGoal pushes one goal's deadline to the calendar. A goal that has
// disappeared, gone inactive or completed takes its event with it.
func (w *Worker) upsertGoal(ctx context.Context, userID, goalID string) error {
	g, err := w.goalRepo.GetOneGoal(ctx, goalRepo.GetOneGoalOptions{UserID: userID, ID: goalID})
	if err != nil {
		return err
	}
	if g.ID == "" || !g.Active || g.Completed {
		return w.calendar.DeleteEventBySourceID(ctx, w.calendarID, goalID)
	}

	_, err = w.calendar.UpsertAllDayEvent(ctx, gcalendar.UpsertEventRequest{
		CalendarID:  w.calendarID,
		SourceID:    g.ID,
		Summary:     g.Title,
		Description: fmt.Sprintf("Mental Bank goal (%s), target %.2f", g.TimeFrame, g.TargetValue),
		Date:        g.TargetDate,
	})
	return err
}

// resync re-pushes every goal due within the horizon.
func (w *Worker) resync(ctx context.Context, userID string) error {
	goals, _, err := w.goalRepo.ListGoals(ctx, goalRepo.ListGoalsOptions{UserID: userID})
	if err != nil {
		return err
	}

	for _, g := range report.UpcomingGoals(goals, time.Now().UTC(), resyncHorizonDays) {
		if err := w.upsertGoal(ctx, userID, g.ID); err != nil {
			return err
		}
	}
	return nil
}

// withRetry runs fn up to maxAttempts times with exponential backoff.
func (w *Worker) withRetry(ctx context.Context, fn func() error) error {
	backoff := initialBackoff
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}
