package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processBookAppointmentReq(c *gin.Context) (bookAppointmentReq, error) {
	var req bookAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processRefillReq(c *gin.Context) (refillReq, error) {
	var req refillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
