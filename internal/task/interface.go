package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id int64) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Complete and Delete accept a numeric ID or a fuzzy title fragment.
	Complete(ctx context.Context, input ResolveInput) (CompleteTaskOutput, error)
	Delete(ctx context.Context, input ResolveInput) (DeleteTaskOutput, error)

	// PriorityMatrix groups open tasks into Eisenhower quadrants.
	PriorityMatrix(ctx context.Context) (PriorityMatrixOutput, error)

	// CalendarView returns open tasks in the date range, grouped by due date.
	CalendarView(ctx context.Context, input CalendarViewInput) (CalendarViewOutput, error)
}
