package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id URI parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errWrongID
	}
	return id, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "processListReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}

// processUpdateReq binds the update request body and the :id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "processUpdateReq: %v", err)
		return req, errWrongBody
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processCalendarReq binds the calendar view query parameters.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	ctx := c.Request.Context()

	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "processCalendarReq: %v", err)
		return req, errWrongQuery
	}
	return req, nil
}
