package task

import "personal-secretary/internal/model"

// --- UseCase Inputs ---

// CreateTaskInput holds the fields for creating a task.
type CreateTaskInput struct {
	Title           string
	Description     string
	Importance      int    // clamped to [1,5], 0 means default
	Urgency         int    // clamped to [1,5], 0 means default
	DueDate         string // ISO date, optional
	DueTime         string // HH:MM, optional
	DurationMinutes int
	TaskType        model.TaskType // inferred from DueTime when empty
}

// ListTasksInput holds filter and pagination criteria for listing tasks.
type ListTasksInput struct {
	Status        model.TaskStatus // empty means pending + in_progress
	DateFilter    string           // today / tomorrow / week / month / all
	MinImportance int
	MinUrgency    int
	SortBy        string // due_date (default), urgency, importance, created_at
	Limit         int
	Offset        int
}

// UpdateTaskInput holds a partial update; zero values leave fields unchanged.
type UpdateTaskInput struct {
	ID              int64
	Title           string
	Description     string
	Importance      int
	Urgency         int
	DueDate         string
	DueTime         string
	DurationMinutes int
	Status          model.TaskStatus
	TaskType        model.TaskType
}

// ResolveInput identifies a task by numeric ID or fuzzy title fragment.
// Exactly one of the two should be set; ID wins when both are.
type ResolveInput struct {
	ID            int64
	TitleFragment string
}

// CalendarViewInput is an inclusive ISO date range.
type CalendarViewInput struct {
	StartDate string
	EndDate   string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type CompleteTaskOutput struct {
	Task model.Task
}

type DeleteTaskOutput struct {
	Task model.Task // snapshot of the task that was removed
}

// PriorityMatrixOutput groups open tasks into Eisenhower quadrants.
type PriorityMatrixOutput struct {
	UrgentImportant       []model.Task
	NotUrgentImportant    []model.Task
	UrgentNotImportant    []model.Task
	NotUrgentNotImportant []model.Task
}

// CalendarViewOutput maps ISO dates to the tasks due on them.
type CalendarViewOutput struct {
	Days map[string][]model.Task
}
