package http

import (
	"personal-secretary/internal/model"
	"personal-secretary/internal/task"
	"personal-secretary/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string `json:"title"            binding:"required,min=1,max=255"`
	Description     string `json:"description"      binding:"max=1000"`
	Importance      int    `json:"importance"       binding:"omitempty,min=1,max=5"`
	Urgency         int    `json:"urgency"          binding:"omitempty,min=1,max=5"`
	DueDate         string `json:"due_date"         binding:"omitempty,datetime=2006-01-02"`
	DueTime         string `json:"due_time"         binding:"omitempty,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`
	TaskType        string `json:"task_type"        binding:"omitempty,oneof=calendar checklist"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:           r.Title,
		Description:     r.Description,
		Importance:      r.Importance,
		Urgency:         r.Urgency,
		DueDate:         r.DueDate,
		DueTime:         r.DueTime,
		DurationMinutes: r.DurationMinutes,
		TaskType:        model.TaskType(r.TaskType),
	}
}

type listReq struct {
	Status        string `form:"status"        binding:"omitempty,oneof=pending in_progress completed"`
	DateFilter    string `form:"date_filter"   binding:"omitempty,oneof=today tomorrow week month all"`
	MinImportance int    `form:"min_importance" binding:"omitempty,min=1,max=5"`
	MinUrgency    int    `form:"min_urgency"    binding:"omitempty,min=1,max=5"`
	SortBy        string `form:"sort_by"        binding:"omitempty,oneof=due_date urgency importance created_at"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		Status:        model.TaskStatus(r.Status),
		DateFilter:    r.DateFilter,
		MinImportance: r.MinImportance,
		MinUrgency:    r.MinUrgency,
		SortBy:        r.SortBy,
		Limit:         limit,
		Offset:        offset,
	}
}

type updateReq struct {
	ID              int64  `json:"-"` // populated from URI param
	Title           string `json:"title"            binding:"omitempty,min=1,max=255"`
	Description     string `json:"description"      binding:"omitempty,max=1000"`
	Importance      int    `json:"importance"       binding:"omitempty,min=1,max=5"`
	Urgency         int    `json:"urgency"          binding:"omitempty,min=1,max=5"`
	DueDate         string `json:"due_date"         binding:"omitempty,datetime=2006-01-02"`
	DueTime         string `json:"due_time"         binding:"omitempty,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`
	Status          string `json:"status"           binding:"omitempty,oneof=pending in_progress completed"`
	TaskType        string `json:"task_type"        binding:"omitempty,oneof=calendar checklist"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Importance:      r.Importance,
		Urgency:         r.Urgency,
		DueDate:         r.DueDate,
		DueTime:         r.DueTime,
		DurationMinutes: r.DurationMinutes,
		Status:          model.TaskStatus(r.Status),
		TaskType:        model.TaskType(r.TaskType),
	}
}

type calendarReq struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"required,datetime=2006-01-02"`
}

func (r calendarReq) toInput() task.CalendarViewInput {
	return task.CalendarViewInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Importance      int                `json:"importance"`
	Urgency         int                `json:"urgency"`
	DueDate         string             `json:"due_date,omitempty"`
	DueTime         string             `json:"due_time,omitempty"`
	DurationMinutes int                `json:"duration_minutes,omitempty"`
	Status          string             `json:"status"`
	TaskType        string             `json:"task_type"`
	CompletedAt     *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Importance:      t.Importance,
		Urgency:         t.Urgency,
		DueDate:         t.DueDate,
		DueTime:         t.DueTime,
		DurationMinutes: t.DurationMinutes,
		Status:          string(t.Status),
		TaskType:        string(t.TaskType),
		CompletedAt:     (*response.DateTime)(t.CompletedAt),
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type matrixResp struct {
	UrgentImportant       []taskResp `json:"urgent_important"`
	NotUrgentImportant    []taskResp `json:"not_urgent_important"`
	UrgentNotImportant    []taskResp `json:"urgent_not_important"`
	NotUrgentNotImportant []taskResp `json:"not_urgent_not_important"`
}

func newMatrixResp(out task.PriorityMatrixOutput) matrixResp {
	return matrixResp{
		UrgentImportant:       newTaskListResp(out.UrgentImportant),
		NotUrgentImportant:    newTaskListResp(out.NotUrgentImportant),
		UrgentNotImportant:    newTaskListResp(out.UrgentNotImportant),
		NotUrgentNotImportant: newTaskListResp(out.NotUrgentNotImportant),
	}
}

func newCalendarResp(out task.CalendarViewOutput) map[string][]taskResp {
	days := make(map[string][]taskResp, len(out.Days))
	for date, tasks := range out.Days {
		days[date] = newTaskListResp(tasks)
	}
	return days
}
