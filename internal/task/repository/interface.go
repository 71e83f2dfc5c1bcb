package repository

import (
	"context"

	"personal-secretary/internal/model"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns a zero-value Task (ID == 0) when nothing matches —
	// not-found is not an error at this layer.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	CompleteTask(ctx context.Context, id int64) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
