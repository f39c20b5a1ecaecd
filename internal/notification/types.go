package notification

// Notification types understood by the web clients.
const (
	TypeInfo         = "info"
	TypeRefill       = "refill_request"
	TypeEmergencySOS = "emergency_sos"
)

// Priorities understood by the web clients.
const (
	PriorityNormal   = "normal"
	PriorityCritical = "critical"
)

// NotifyInput is the input for appending a notification.
// PatientID and AlertID link emergency notifications back to their alert.
type NotifyInput struct {
	UserID    string
	Type      string
	Title     string
	Message   string
	Priority  string
	PatientID string
	AlertID   string
}
