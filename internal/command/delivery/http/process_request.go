package http

import (
	"github.com/gin-gonic/gin"
)

// processExecuteReq binds and validates the command request body.
func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	ctx := c.Request.Context()

	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "processExecuteReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
