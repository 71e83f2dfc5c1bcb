package usecase

import (
	"context"

	"personal-secretary/internal/task"
	repo "personal-secretary/internal/task/repository"
)

const dateFormatISO = "2006-01-02"

// List returns tasks matching the filter criteria. Relative date filters
// (today/tomorrow/week/month) resolve against the injected clock.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	from, to := uc.dateBounds(input.DateFilter)

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:        input.Status,
		DueFrom:       from,
		DueTo:         to,
		MinImportance: input.MinImportance,
		MinUrgency:    input.MinUrgency,
		SortBy:        input.SortBy,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// dateBounds translates a named date filter into an inclusive ISO range.
func (uc *implUseCase) dateBounds(filter string) (from, to string) {
	now := uc.clock()
	today := now.Format(dateFormatISO)

	switch filter {
	case "today":
		return today, today
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1).Format(dateFormatISO)
		return tomorrow, tomorrow
	case "week":
		return today, now.AddDate(0, 0, 7).Format(dateFormatISO)
	case "month":
		return today, now.AddDate(0, 0, 30).Format(dateFormatISO)
	default:
		return "", ""
	}
}
