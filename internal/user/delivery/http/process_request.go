package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSignupGuardianReq(c *gin.Context) (signupGuardianReq, error) {
	var req signupGuardianReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSignupPatientReq(c *gin.Context) (signupPatientReq, error) {
	var req signupPatientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSignupUnityReq(c *gin.Context) (signupUnityReq, error) {
	var req signupUnityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
