package usecase

import (
	"context"

	"mentalbank/internal/goal"
	goalRepo "mentalbank/internal/goal/repository"
	"mentalbank/internal/model"
	"mentalbank/internal/report"
	taskRepo "mentalbank/internal/task/repository"
)

const (
	defaultHorizonDays = 7
	defaultWindowDays  = 30
)

var allTimeFrames = []goal.TimeFrame{
	goal.TimeFrameWeekly,
	goal.TimeFrameMonthly,
	goal.TimeFrameBiannual,
	goal.TimeFrameAnnual,
}

func (uc *implUseCase) UpcomingGoals(ctx context.Context, sc model.Scope, input report.UpcomingGoalsInput) (report.UpcomingGoalsOutput, error) {
	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = defaultHorizonDays
	}

	goals, _, err := uc.goalRepo.ListGoals(ctx, goalRepo.ListGoalsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "report/usecase.UpcomingGoals: %v", err)
		return report.UpcomingGoalsOutput{}, err
	}

	upcoming := report.UpcomingGoals(goals, uc.now().UTC(), horizon)
	if input.Limit > 0 && len(upcoming) > input.Limit {
		upcoming = upcoming[:input.Limit]
	}
	return report.UpcomingGoalsOutput{Goals: upcoming}, nil
}

func (uc *implUseCase) GoalSummary(ctx context.Context, sc model.Scope, input report.GoalSummaryInput) (report.GoalSummaryOutput, error) {
	if input.TimeFrame != "" && !input.TimeFrame.Valid() {
		return report.GoalSummaryOutput{}, goal.ErrInvalidTimeFrame
	}

	goals, _, err := uc.goalRepo.ListGoals(ctx, goalRepo.ListGoalsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "report/usecase.GoalSummary: %v", err)
		return report.GoalSummaryOutput{}, err
	}

	frames := allTimeFrames
	if input.TimeFrame != "" {
		frames = []goal.TimeFrame{input.TimeFrame}
	}

	out := report.GoalSummaryOutput{Frames: make([]report.TimeFrameSummary, 0, len(frames))}
	for _, tf := range frames {
		matched := report.ByTimeFrame(goals, tf)
		out.Frames = append(out.Frames, report.TimeFrameSummary{
			TimeFrame:       tf,
			Count:           len(matched),
			CompletionRate:  report.CompletionRate(matched),
			AverageProgress: report.AverageProgress(matched),
		})
	}
	return out, nil
}

func (uc *implUseCase) Categories(ctx context.Context, sc model.Scope) (report.CategoriesOutput, error) {
	categories, err := uc.taskRepo.ListCategories(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "report/usecase.Categories categories: %v", err)
		return report.CategoriesOutput{}, err
	}

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "report/usecase.Categories tasks: %v", err)
		return report.CategoriesOutput{}, err
	}

	return report.CategoriesOutput{Rows: report.CategoryRollup(tasks, categories)}, nil
}

func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope, input report.InsightsInput) (report.InsightsOutput, error) {
	window := input.WindowDays
	if window <= 0 {
		window = defaultWindowDays
	}

	to := uc.now().UTC()
	from := to.AddDate(0, 0, -window)

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:      sc.UserID,
		CreatedFrom: from,
		CreatedTo:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report/usecase.Insights: %v", err)
		return report.InsightsOutput{}, err
	}

	return report.InsightsOutput{
		From:    from,
		To:      to,
		Summary: report.InsightSummary(tasks, from, to),
	}, nil
}
