package http

import (
	"goldensage/internal/model"
	"goldensage/internal/sos"
	"goldensage/pkg/response"
)

type locationResp struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type alertResp struct {
	ID          string            `json:"id"`
	AlertID     string            `json:"alert_id"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	GuardianID  string            `json:"guardian_id,omitempty"`
	Timestamp   response.DateTime `json:"timestamp"`
	Status      string            `json:"status"`
	Location    locationResp      `json:"location"`
	Message     string            `json:"message"`
}

func newAlertResp(a model.SOSAlert) alertResp {
	return alertResp{
		ID:          a.ID.Hex(),
		AlertID:     a.AlertID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		GuardianID:  a.GuardianID,
		Timestamp:   response.DateTime(a.Timestamp),
		Status:      a.Status,
		Location: locationResp{
			Latitude:  a.Location.Latitude,
			Longitude: a.Location.Longitude,
		},
		Message: a.Message,
	}
}

type triggerResp struct {
	AlertID string `json:"alert_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newTriggerResp(out sos.TriggerOutput) triggerResp {
	return triggerResp{
		AlertID: out.Alert.AlertID,
		Status:  out.Alert.Status,
		Message: "Emergency alert sent to your guardian",
	}
}

type listResp struct {
	Alerts      []alertResp `json:"alerts"`
	ActiveCount int         `json:"active_count"`
}

func newListResp(out sos.ListOutput) listResp {
	alerts := make([]alertResp, len(out.Alerts))
	for i, a := range out.Alerts {
		alerts[i] = newAlertResp(a)
	}
	return listResp{Alerts: alerts, ActiveCount: out.ActiveCount}
}
