package http

import (
	"github.com/gin-gonic/gin"

	"goldensage/internal/middleware"
	"goldensage/pkg/response"
)

// PatientDashboard godoc
// @Summary     Get the patient's dashboard data
// @Tags        Health
// @Produce     json
// @Success     200 {object} dashboardResp
// @Security    BearerAuth
// @Router      /api/v1/dashboard [GET]
func (h *handler) PatientDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.PatientDashboard(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.PatientDashboard: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDashboardResp(out))
}

// GuardianPatientView godoc
// @Summary     Get a guardian's view of one patient
// @Tags        Health
// @Produce     json
// @Param       id path string true "Patient ID"
// @Success     200 {object} dashboardResp
// @Failure     403 {object} response.Resp "Not your patient"
// @Security    BearerAuth
// @Router      /api/v1/patients/{id}/dashboard [GET]
func (h *handler) GuardianPatientView(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GuardianPatientView(ctx, middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GuardianPatientView: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDashboardResp(out))
}

// BookAppointment godoc
// @Summary     Book a doctor appointment
// @Tags        Health
// @Accept      json
// @Produce     json
// @Param       body body bookAppointmentReq true "Appointment data"
// @Success     200 {object} appointmentResp
// @Security    BearerAuth
// @Router      /api/v1/appointments [POST]
func (h *handler) BookAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookAppointmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.BookAppointment(ctx, req.toInput(middleware.GetUserID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.BookAppointment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAppointmentResp(out.Appointment))
}

// RequestRefill godoc
// @Summary     Request a medication refill
// @Tags        Health
// @Accept      json
// @Produce     json
// @Param       body body refillReq true "Medication to refill"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Medication not found"
// @Security    BearerAuth
// @Router      /api/v1/medications/refill [POST]
func (h *handler) RequestRefill(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefillReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RequestRefill(ctx, middleware.GetUserID(c), req.MedicationID); err != nil {
		h.l.Errorf(ctx, "uc.RequestRefill: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// CheckEmergency godoc
// @Summary     Poll for an active emergency among the guardian's patients
// @Tags        Health
// @Produce     json
// @Success     200 {object} emergencyResp
// @Security    BearerAuth
// @Router      /api/v1/emergency/check [GET]
func (h *handler) CheckEmergency(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CheckEmergency(ctx, middleware.GetUserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckEmergency: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEmergencyResp(out))
}
