package interpreter

// Kind is the classified purpose of a user command.
type Kind string

const (
	KindCreateTask   Kind = "create_task"
	KindListTasks    Kind = "list_tasks"
	KindCompleteTask Kind = "complete_task"
	KindDeleteTask   Kind = "delete_task"
	KindUnknown      Kind = "unknown"
)

// Intent is the structured result of interpreting one command. Exactly one
// payload field is set, matching Kind; Unknown carries only Raw.
type Intent struct {
	Kind   Kind
	Create *CreateTask
	List   *ListTasks
	Ref    *TaskRef // complete / delete target
	Raw    string   // original text, kept for diagnostic echoing
}

// CreateTask holds the extracted fields for a task creation command.
// Title may be empty after stripping — callers must reject that before
// touching the store.
type CreateTask struct {
	Title      string
	DueDate    string // ISO date, empty when no date phrase recognized
	DueTime    string // HH:MM, empty when no time phrase recognized
	Importance int    // always within [1,5]
	Urgency    int    // always within [1,5]
}

// DateFilter scopes a list command to a date range.
type DateFilter string

const (
	DateFilterAll      DateFilter = "all"
	DateFilterToday    DateFilter = "today"
	DateFilterTomorrow DateFilter = "tomorrow"
	DateFilterWeek     DateFilter = "week"
	DateFilterMonth    DateFilter = "month"
)

// HighPriorityThreshold is the minimum level implied by "urgent"/"important"
// filter keywords on the 1-5 scale.
const HighPriorityThreshold = 4

// ListTasks holds the extracted filter criteria for a list command.
type ListTasks struct {
	DateFilter    DateFilter
	MinUrgency    int    // 0 when unset
	MinImportance int    // 0 when unset
	SortBy        string // urgency, importance or due_date
}

// TaskRef identifies the target of a complete/delete command, either by
// numeric reference or by a sanitized fuzzy title fragment.
type TaskRef struct {
	ID            int64  // 0 when no numeric reference was found
	TitleFragment string // empty when a numeric reference was found
}
