package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// Feed godoc
// @Summary     List the current user's notifications
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} feedResp
// @Security    BearerAuth
// @Router      /api/v1/notifications [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	notifications, err := h.uc.Feed(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Feed: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newFeedResp(notifications))
}
