package http

import (
	"goldensage/internal/model"
	"goldensage/pkg/response"
)

type notificationResp struct {
	ID        string            `json:"id"`
	Type      string            `json:"type,omitempty"`
	Title     string            `json:"title,omitempty"`
	Message   string            `json:"message"`
	PatientID string            `json:"patient_id,omitempty"`
	AlertID   string            `json:"alert_id,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
	Read      bool              `json:"read"`
	Priority  string            `json:"priority,omitempty"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID.Hex(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		PatientID: n.PatientID,
		AlertID:   n.AlertID,
		Timestamp: response.DateTime(n.Timestamp),
		Read:      n.Read,
		Priority:  n.Priority,
	}
}

type feedResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newFeedResp(notifications []model.Notification) feedResp {
	out := make([]notificationResp, len(notifications))
	for i, n := range notifications {
		out[i] = newNotificationResp(n)
	}
	return feedResp{Notifications: out}
}
