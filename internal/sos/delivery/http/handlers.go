package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// Trigger godoc
// @Summary     Raise an emergency SOS alert
// @Tags        SOS
// @Produce     json
// @Success     200 {object} triggerResp
// @Failure     404 {object} response.Resp "Patient not found"
// @Security    BearerAuth
// @Router      /api/v1/sos/trigger [POST]
func (h *handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Trigger(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Trigger: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTriggerResp(out))
}

// List godoc
// @Summary     List the patient's SOS alerts
// @Tags        SOS
// @Produce     json
// @Success     200 {object} listResp
// @Security    BearerAuth
// @Router      /api/v1/sos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(out))
}
