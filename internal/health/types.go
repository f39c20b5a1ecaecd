package health

import "goldensage/internal/model"

// AppointmentStatusScheduled is the status every new booking starts with.
const AppointmentStatusScheduled = "scheduled"

// DashboardOutput is the data backing both dashboard surfaces.
type DashboardOutput struct {
	PatientName  string
	PatientPhone string
	Vitals       []model.Vital
	Tasks        []model.Task
	Medications  []model.Medication
	Appointments []model.Appointment
}

// BookAppointmentInput is the input for scheduling a doctor visit.
// Date is YYYY-MM-DD, Time is HH:MM (24h).
type BookAppointmentInput struct {
	PatientID  string
	DoctorName string
	Specialty  string
	Date       string
	Time       string
}

// AppointmentOutput wraps a booked appointment.
type AppointmentOutput struct {
	Appointment model.Appointment
}

// EmergencyOutput is the guardian emergency poll result.
type EmergencyOutput struct {
	Detected    bool
	PatientName string
}
