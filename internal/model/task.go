package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskType distinguishes scheduled (calendar) tasks from plain checklist items.
type TaskType string

const (
	TaskTypeCalendar  TaskType = "calendar"
	TaskTypeChecklist TaskType = "checklist"
)

// Importance/urgency use a 1-5 scale with 3 as the neutral midpoint
// (Eisenhower matrix quadrants split at the midpoint).
const (
	PriorityMin     = 1
	PriorityMax     = 5
	PriorityDefault = 3
	PriorityMid     = 3
)

// Task is a stored task.
type Task struct {
	ID              int64
	Title           string
	Description     string
	Importance      int    // 1-5
	Urgency         int    // 1-5
	DueDate         string // ISO date YYYY-MM-DD, empty when unscheduled
	DueTime         string // HH:MM, empty when no clock time
	DurationMinutes int    // 0 when unknown
	Status          TaskStatus
	TaskType        TaskType
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
