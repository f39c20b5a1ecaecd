package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// SignupGuardian godoc
// @Summary     Register a guardian account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupGuardianReq true "Guardian credentials"
// @Success     200 {object} authResp
// @Failure     409 {object} response.Resp "Email taken"
// @Router      /api/v1/auth/guardian/signup [POST]
func (h *handler) SignupGuardian(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupGuardianReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignupGuardian(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignupGuardian: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// LoginGuardian godoc
// @Summary     Sign a guardian in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/guardian/login [POST]
func (h *handler) LoginGuardian(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.LoginGuardian(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// SignupPatient godoc
// @Summary     Register a patient under the calling guardian
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupPatientReq true "Patient data"
// @Success     200 {object} patientResp
// @Failure     409 {object} response.Resp "Email taken"
// @Security    BearerAuth
// @Router      /api/v1/patients [POST]
func (h *handler) SignupPatient(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupPatientReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignupPatient(ctx, middleware.GetUserID(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignupPatient: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPatientResp(out.Patient))
}

// LoginPatient godoc
// @Summary     Sign a patient in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/patient/login [POST]
func (h *handler) LoginPatient(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.LoginPatient(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// SignupUnity godoc
// @Summary     Register a unity-hub account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupUnityReq true "Account data"
// @Success     200 {object} authResp
// @Failure     409 {object} response.Resp "Email taken"
// @Router      /api/v1/auth/unity/signup [POST]
func (h *handler) SignupUnity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupUnityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignupUnity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignupUnity: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// LoginUnity godoc
// @Summary     Sign a unity-hub account in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/unity/login [POST]
func (h *handler) LoginUnity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.LoginUnity(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// Profile godoc
// @Summary     Get the current account's profile
// @Tags        Auth
// @Produce     json
// @Success     200 {object} profileResp
// @Security    BearerAuth
// @Router      /api/v1/me [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Profile(ctx, middleware.GetRole(c), middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(out))
}

// ListPatients godoc
// @Summary     List the guardian's patients
// @Tags        Auth
// @Produce     json
// @Success     200 {object} patientListResp
// @Security    BearerAuth
// @Router      /api/v1/patients [GET]
func (h *handler) ListPatients(c *gin.Context) {
	ctx := c.Request.Context()

	patients, err := h.uc.ListPatients(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPatients: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPatientListResp(patients))
}
