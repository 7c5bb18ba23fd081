package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentalbank/internal/goal"
	repo "mentalbank/internal/goal/repository"
	"mentalbank/internal/model"
	syncPkg "mentalbank/internal/sync"
)

var testScope = model.Scope{UserID: "user-1"}

func TestCreateGoal(t *testing.T) {
	targetDate := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("creates goal and publishes upsert", func(t *testing.T) {
		mockRepo := &mockRepository{
			createGoalFunc: func(opt repo.CreateGoalOptions) (goal.Goal, error) {
				if opt.UserID != "user-1" {
					t.Errorf("user id: got %s", opt.UserID)
				}
				return goal.Goal{ID: "g1", UserID: opt.UserID, Title: opt.Title, TimeFrame: opt.TimeFrame, Active: true}, nil
			},
		}
		pub := &mockPublisher{}
		uc := New(mockRepo, pub, &mockLogger{})

		out, err := uc.CreateGoal(context.Background(), testScope, goal.CreateGoalInput{
			Title:       "Save 10k",
			TargetValue: 10000,
			TargetDate:  targetDate,
			TimeFrame:   goal.TimeFrameAnnual,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.ID != "g1" {
			t.Errorf("goal id: got %s", out.Goal.ID)
		}
		if len(pub.published) != 1 {
			t.Fatalf("published %d messages, want 1", len(pub.published))
		}
		msg := pub.published[0]
		if msg.Action != syncPkg.ActionUpsert || msg.GoalID != "g1" || msg.UserID != "user-1" {
			t.Errorf("unexpected message: %+v", msg)
		}
	})

	t.Run("rejects unknown time frame", func(t *testing.T) {
		uc := New(&mockRepository{}, nil, &mockLogger{})
		_, err := uc.CreateGoal(context.Background(), testScope, goal.CreateGoalInput{
			Title:     "Nope",
			TimeFrame: "quarterly",
		})
		if !errors.Is(err, goal.ErrInvalidTimeFrame) {
			t.Fatalf("got %v, want ErrInvalidTimeFrame", err)
		}
	})

	t.Run("nil publisher does not fail the mutation", func(t *testing.T) {
		mockRepo := &mockRepository{
			createGoalFunc: func(opt repo.CreateGoalOptions) (goal.Goal, error) {
				return goal.Goal{ID: "g1"}, nil
			},
		}
		uc := New(mockRepo, nil, &mockLogger{})
		if _, err := uc.CreateGoal(context.Background(), testScope, goal.CreateGoalInput{
			Title:     "Offline",
			TimeFrame: goal.TimeFrameWeekly,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		mockRepo := &mockRepository{
			createGoalFunc: func(opt repo.CreateGoalOptions) (goal.Goal, error) {
				return goal.Goal{ID: "g1"}, nil
			},
		}
		pub := &mockPublisher{err: errors.New("queue down")}
		uc := New(mockRepo, pub, &mockLogger{})
		if _, err := uc.CreateGoal(context.Background(), testScope, goal.CreateGoalInput{
			Title:     "Queue down",
			TimeFrame: goal.TimeFrameWeekly,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDetailGoal(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := New(&mockRepository{}, nil, &mockLogger{})
		_, err := uc.DetailGoal(context.Background(), testScope, "missing")
		if !errors.Is(err, goal.ErrGoalNotFound) {
			t.Fatalf("got %v, want ErrGoalNotFound", err)
		}
	})

	t.Run("applies derived milestone status", func(t *testing.T) {
		past := time.Now().UTC().Add(-48 * time.Hour)
		future := time.Now().UTC().Add(48 * time.Hour)
		mockRepo := &mockRepository{
			getOneGoalFunc: func(opt repo.GetOneGoalOptions) (goal.Goal, error) {
				return goal.Goal{ID: opt.ID, UserID: opt.UserID, Active: true}, nil
			},
			listMilestonesFunc: func(goalID string) ([]goal.Milestone, error) {
				return []goal.Milestone{
					{ID: "m1", Status: goal.MilestoneStatusPending, DueDate: past},
					{ID: "m2", Status: goal.MilestoneStatusPending, DueDate: future},
					{ID: "m3", Status: goal.MilestoneStatusCompleted, DueDate: past},
				}, nil
			},
		}
		uc := New(mockRepo, nil, &mockLogger{})

		out, err := uc.DetailGoal(context.Background(), testScope, "g1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []goal.MilestoneStatus{
			goal.MilestoneStatusOverdue,
			goal.MilestoneStatusPending,
			goal.MilestoneStatusCompleted,
		}
		for i, w := range want {
			if out.Milestones[i].Status != w {
				t.Errorf("milestone %d: got %s, want %s", i, out.Milestones[i].Status, w)
			}
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	existing := goal.Goal{
		ID:                 "g1",
		UserID:             "user-1",
		Title:              "Original",
		TargetValue:        5000,
		TimeFrame:          goal.TimeFrameMonthly,
		ProgressPercentage: 20,
		Active:             true,
	}

	newMockRepo := func(captured *repo.UpdateGoalOptions) *mockRepository {
		return &mockRepository{
			getOneGoalFunc: func(opt repo.GetOneGoalOptions) (goal.Goal, error) {
				return existing, nil
			},
			updateGoalFunc: func(opt repo.UpdateGoalOptions) (goal.Goal, error) {
				*captured = opt
				return existing, nil
			},
		}
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		var captured repo.UpdateGoalOptions
		uc := New(newMockRepo(&captured), &mockPublisher{}, &mockLogger{})

		progress := 55
		_, err := uc.UpdateGoal(context.Background(), testScope, goal.UpdateGoalInput{
			ID:                 "g1",
			ProgressPercentage: &progress,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Title != "Original" || captured.TargetValue != 5000 || captured.TimeFrame != goal.TimeFrameMonthly {
			t.Errorf("unset fields changed: %+v", captured)
		}
		if captured.ProgressPercentage != 55 {
			t.Errorf("progress: got %d, want 55", captured.ProgressPercentage)
		}
	})

	t.Run("progress and completed are independent", func(t *testing.T) {
		var captured repo.UpdateGoalOptions
		uc := New(newMockRepo(&captured), &mockPublisher{}, &mockLogger{})

		completed := true
		_, err := uc.UpdateGoal(context.Background(), testScope, goal.UpdateGoalInput{
			ID:        "g1",
			Completed: &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !captured.Completed {
			t.Error("completed not set")
		}
		if captured.ProgressPercentage != 20 {
			t.Errorf("progress changed alongside completion: got %d", captured.ProgressPercentage)
		}
	})

	t.Run("rejects out-of-range progress", func(t *testing.T) {
		var captured repo.UpdateGoalOptions
		uc := New(newMockRepo(&captured), &mockPublisher{}, &mockLogger{})

		progress := 101
		_, err := uc.UpdateGoal(context.Background(), testScope, goal.UpdateGoalInput{
			ID:                 "g1",
			ProgressPercentage: &progress,
		})
		if !errors.Is(err, goal.ErrInvalidProgress) {
			t.Fatalf("got %v, want ErrInvalidProgress", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := New(&mockRepository{}, nil, &mockLogger{})
		_, err := uc.UpdateGoal(context.Background(), testScope, goal.UpdateGoalInput{ID: "missing"})
		if !errors.Is(err, goal.ErrGoalNotFound) {
			t.Fatalf("got %v, want ErrGoalNotFound", err)
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("deletes and publishes delete event", func(t *testing.T) {
		mockRepo := &mockRepository{
			getOneGoalFunc: func(opt repo.GetOneGoalOptions) (goal.Goal, error) {
				return goal.Goal{ID: opt.ID, UserID: opt.UserID}, nil
			},
		}
		pub := &mockPublisher{}
		uc := New(mockRepo, pub, &mockLogger{})

		if err := uc.DeleteGoal(context.Background(), testScope, "g1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pub.published) != 1 || pub.published[0].Action != syncPkg.ActionDelete {
			t.Fatalf("expected one delete message, got %+v", pub.published)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := New(&mockRepository{}, nil, &mockLogger{})
		err := uc.DeleteGoal(context.Background(), testScope, "missing")
		if !errors.Is(err, goal.ErrGoalNotFound) {
			t.Fatalf("got %v, want ErrGoalNotFound", err)
		}
	})
}
