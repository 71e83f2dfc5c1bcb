package http

import (
	"github.com/gin-gonic/gin"

	"personal-secretary/internal/task"
	"personal-secretary/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task with the provided fields. Importance and urgency default to 3.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks with optional status, date and priority filters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status      query string false "pending / in_progress / completed"
// @Param       date_filter query string false "today / tomorrow / week / month / all"
// @Param       sort_by     query string false "due_date / urgency / importance / created_at"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{
		Tasks:  newTaskListResp(output.Tasks),
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	})
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update: omitted fields keep their current values.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Complete godoc
// @Summary     Mark a task as completed
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, task.ResolveInput{ID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.Delete(ctx, task.ResolveInput{ID: id}); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Calendar godoc
// @Summary     Calendar view
// @Description Returns open tasks in the date range, grouped by due date.
// @Tags        Tasks
// @Produce     json
// @Param       start_date query string true "ISO date"
// @Param       end_date   query string true "ISO date"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CalendarView(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCalendarResp(output))
}

// PriorityMatrix godoc
// @Summary     Eisenhower priority matrix
// @Description Returns open tasks grouped into importance/urgency quadrants.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/priority-matrix [GET]
func (h *handler) PriorityMatrix(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PriorityMatrix(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.PriorityMatrix: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMatrixResp(output))
}
