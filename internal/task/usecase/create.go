package usecase

import (
	"context"
	"strings"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	repo "personal-secretary/internal/task/repository"
)

// Create validates and persists a new task. Importance and urgency are
// clamped to the 1-5 scale; the task type is inferred from the schedule
// when not supplied.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	taskType := input.TaskType
	if taskType == "" {
		// A clock time makes it a scheduled calendar entry.
		if input.DueTime != "" {
			taskType = model.TaskTypeCalendar
		} else {
			taskType = model.TaskTypeChecklist
		}
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           title,
		Description:     strings.TrimSpace(input.Description),
		Importance:      clampPriority(input.Importance),
		Urgency:         clampPriority(input.Urgency),
		DueDate:         input.DueDate,
		DueTime:         input.DueTime,
		DurationMinutes: input.DurationMinutes,
		TaskType:        taskType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
