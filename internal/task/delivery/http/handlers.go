package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// Add godoc
// @Summary     Add a task for today
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, middleware.GetUserID(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body toggleReq true "Completion state"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Toggle(ctx, middleware.GetUserID(c), req.ID, req.IsCompleted); err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ListToday godoc
// @Summary     List today's tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Security    BearerAuth
// @Router      /api/v1/tasks/today [GET]
func (h *handler) ListToday(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ListToday(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListToday: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(tasks))
}
