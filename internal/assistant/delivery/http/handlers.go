package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// Chat godoc
// @Summary     Talk to the voice assistant
// @Description Resolves free text into a reply, an action, and a client navigation target.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Utterance"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BearerAuth
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput(middleware.GetUserID(c), middleware.GetRole(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(output))
}
