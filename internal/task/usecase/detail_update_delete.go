package usecase

import (
	"context"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	repo "personal-secretary/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when the
// ID matches nothing.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == 0 {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update. Zero-valued fields keep their current
// values; priorities are re-clamped when changed.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == 0 {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	importance := existing.Importance
	if input.Importance != 0 {
		importance = clampPriority(input.Importance)
	}
	urgency := existing.Urgency
	if input.Urgency != 0 {
		urgency = clampPriority(input.Urgency)
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              input.ID,
		Title:           coalesce(input.Title, existing.Title),
		Description:     coalesce(input.Description, existing.Description),
		Importance:      importance,
		Urgency:         urgency,
		DueDate:         coalesce(input.DueDate, existing.DueDate),
		DueTime:         coalesce(input.DueTime, existing.DueTime),
		DurationMinutes: coalesceInt(input.DurationMinutes, existing.DurationMinutes),
		Status:          model.TaskStatus(coalesce(string(input.Status), string(existing.Status))),
		TaskType:        model.TaskType(coalesce(string(input.TaskType), string(existing.TaskType))),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}
