package http

import (
	"github.com/gin-gonic/gin"

	"personal-secretary/pkg/response"
)

// Execute godoc
// @Summary     Execute a natural language command
// @Description Interprets a voice or text command ("add task call dentist
// @Description tomorrow at 2pm", "show my tasks", ...) and runs it against
// @Description the task store. The returned message is phrased for read-back.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Command text"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/command [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newExecuteResp(output))
}
