package usecase

import (
	"context"

	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	repo "personal-secretary/internal/task/repository"
)

// resolveTarget finds the task a complete/delete command refers to, by
// numeric ID first, falling back to fuzzy title match.
func (uc *implUseCase) resolveTarget(ctx context.Context, input task.ResolveInput) (model.Task, error) {
	if input.ID == 0 && input.TitleFragment == "" {
		return model.Task{}, task.ErrMissingTarget
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{
		ID:            input.ID,
		TitleFragment: input.TitleFragment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveTarget GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Complete marks the referenced task as completed.
func (uc *implUseCase) Complete(ctx context.Context, input task.ResolveInput) (task.CompleteTaskOutput, error) {
	target, err := uc.resolveTarget(ctx, input)
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}

	completed, err := uc.repo.CompleteTask(ctx, target.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
		return task.CompleteTaskOutput{}, err
	}
	if completed.ID == 0 {
		return task.CompleteTaskOutput{}, task.ErrTaskNotFound
	}
	return task.CompleteTaskOutput{Task: completed}, nil
}

// Delete removes the referenced task and returns a snapshot of it.
func (uc *implUseCase) Delete(ctx context.Context, input task.ResolveInput) (task.DeleteTaskOutput, error) {
	target, err := uc.resolveTarget(ctx, input)
	if err != nil {
		return task.DeleteTaskOutput{}, err
	}

	if err := uc.repo.DeleteTask(ctx, target.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return task.DeleteTaskOutput{}, err
	}
	return task.DeleteTaskOutput{Task: target}, nil
}
