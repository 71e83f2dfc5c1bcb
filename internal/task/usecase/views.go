package usecase

import (
	"context"
	"time"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	repo "personal-secretary/internal/task/repository"
)

// PriorityMatrix groups open tasks into Eisenhower quadrants, splitting
// both axes at the scale midpoint.
func (uc *implUseCase) PriorityMatrix(ctx context.Context) (task.PriorityMatrixOutput, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PriorityMatrix ListTasks: %v", err)
		return task.PriorityMatrixOutput{}, err
	}

	var out task.PriorityMatrixOutput
	for _, t := range tasks {
		urgent := t.Urgency >= model.PriorityMid
		important := t.Importance >= model.PriorityMid
		switch {
		case urgent && important:
			out.UrgentImportant = append(out.UrgentImportant, t)
		case !urgent && important:
			out.NotUrgentImportant = append(out.NotUrgentImportant, t)
		case urgent && !important:
			out.UrgentNotImportant = append(out.UrgentNotImportant, t)
		default:
			out.NotUrgentNotImportant = append(out.NotUrgentNotImportant, t)
		}
	}
	return out, nil
}

// CalendarView returns open tasks due in the inclusive date range,
// grouped by due date.
func (uc *implUseCase) CalendarView(ctx context.Context, input task.CalendarViewInput) (task.CalendarViewOutput, error) {
	start, err := time.Parse(dateFormatISO, input.StartDate)
	if err != nil {
		return task.CalendarViewOutput{}, task.ErrInvalidRange
	}
	end, err := time.Parse(dateFormatISO, input.EndDate)
	if err != nil {
		return task.CalendarViewOutput{}, task.ErrInvalidRange
	}
	if end.Before(start) {
		return task.CalendarViewOutput{}, task.ErrInvalidRange
	}

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		DueFrom: input.StartDate,
		DueTo:   input.EndDate,
		SortBy:  "due_date",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarView ListTasks: %v", err)
		return task.CalendarViewOutput{}, err
	}

	days := make(map[string][]model.Task)
	for _, t := range tasks {
		days[t.DueDate] = append(days[t.DueDate], t)
	}
	return task.CalendarViewOutput{Days: days}, nil
}
