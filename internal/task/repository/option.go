package repository

import "personal-secretary/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Importance      int
	Urgency         int
	DueDate         string
	DueTime         string
	DurationMinutes int
	TaskType        model.TaskType
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// ID takes precedence; TitleFragment does a case-insensitive substring
// match and must already be sanitized of LIKE wildcards.
type GetOneTaskOptions struct {
	ID            int64
	TitleFragment string
}

// ListTasksOptions holds filter, sort and pagination parameters.
type ListTasksOptions struct {
	Status        model.TaskStatus // empty means exclude completed
	DueFrom       string           // inclusive ISO date lower bound
	DueTo         string           // inclusive ISO date upper bound
	MinImportance int
	MinUrgency    int
	SortBy        string // due_date, urgency, importance, created_at
	Limit         int
	Offset        int
}

// UpdateTaskOptions holds the full post-coalesce state to persist.
type UpdateTaskOptions struct {
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
