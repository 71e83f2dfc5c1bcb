package http

import (
	"personal-secretary/internal/command"
	"personal-secretary/internal/model"
	"personal-secretary/pkg/response"
)

type executeReq struct {
	Text string `json:"text" binding:"required"`
}

func (r executeReq) toInput() command.ExecuteInput {
	return command.ExecuteInput{Text: r.Text}
}

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

type executeResp struct {
	Success bool       `json:"success"`
	Action  string     `json:"action"`
	Message string     `json:"message"`
	Task    *taskResp  `json:"task,omitempty"`
	Tasks   []taskResp `json:"tasks,omitempty"`
}

func newExecuteResp(out command.ExecuteOutput) executeResp {
	resp := executeResp{
		Success: out.Success,
		Action:  out.Action,
		Message: out.Message,
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	if len(out.Tasks) > 0 {
		resp.Tasks = make([]taskResp, len(out.Tasks))
		for i, t := range out.Tasks {
			resp.Tasks[i] = newTaskResp(t)
		}
	}
	return resp
}
