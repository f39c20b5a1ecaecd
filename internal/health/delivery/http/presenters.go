package http

import (
	"goldensage/internal/health"
	"goldensage/internal/model"
	"goldensage/pkg/response"
)

// --- Request DTOs ---

type bookAppointmentReq struct {
	DoctorName string `json:"doctor_name" binding:"required,min=1,max=120"`
	Specialty  string `json:"specialty"   binding:"max=120"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	Time       string `json:"time"        binding:"required,datetime=15:04"`
}

func (r bookAppointmentReq) toInput(patientID string) health.BookAppointmentInput {
	return health.BookAppointmentInput{
		PatientID:  patientID,
		DoctorName: r.DoctorName,
		Specialty:  r.Specialty,
		Date:       r.Date,
		Time:       r.Time,
	}
}

type refillReq struct {
	MedicationID string `json:"medication_id" binding:"required"`
}

// --- Response DTOs ---

type vitalResp struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Value     string            `json:"value"`
	Unit      string            `json:"unit"`
	Timestamp response.DateTime `json:"timestamp"`
}

type medicationResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	TimeOfDay string `json:"time_of_day"`
	Stock     int    `json:"stock"`
}

type appointmentResp struct {
	ID         string `json:"id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	Date        string `json:"date"`
}

type dashboardResp struct {
	PatientName  string            `json:"patient_name"`
	PatientPhone string            `json:"patient_phone,omitempty"`
	Vitals       []vitalResp       `json:"vitals"`
	Tasks        []taskResp        `json:"tasks"`
	Medications  []medicationResp  `json:"medications"`
	Appointments []appointmentResp `json:"appointments"`
}

func newDashboardResp(out health.DashboardOutput) dashboardResp {
	resp := dashboardResp{
		PatientName:  out.PatientName,
		PatientPhone: out.PatientPhone,
		Vitals:       make([]vitalResp, len(out.Vitals)),
		Tasks:        make([]taskResp, len(out.Tasks)),
		Medications:  make([]medicationResp, len(out.Medications)),
		Appointments: make([]appointmentResp, len(out.Appointments)),
	}
	for i, v := range out.Vitals {
		resp.Vitals[i] = vitalResp{
			ID:        v.ID.Hex(),
			Type:      v.Type,
			Value:     v.Value,
			Unit:      v.Unit,
			Timestamp: response.DateTime(v.Timestamp),
		}
	}
	for i, task := range out.Tasks {
		resp.Tasks[i] = taskResp{
			ID:          task.ID.Hex(),
			Title:       task.Title,
			Description: task.Description,
			IsCompleted: task.IsCompleted,
			Date:        task.Date,
		}
	}
	for i, med := range out.Medications {
		resp.Medications[i] = medicationResp{
			ID:        med.ID.Hex(),
			Name:      med.Name,
			Dosage:    med.Dosage,
			TimeOfDay: med.TimeOfDay,
			Stock:     med.Stock,
		}
	}
	for i, appt := range out.Appointments {
		resp.Appointments[i] = newAppointmentResp(appt)
	}
	return resp
}

func newAppointmentResp(a model.Appointment) appointmentResp {
	return appointmentResp{
		ID:         a.ID.Hex(),
		DoctorName: a.DoctorName,
		Specialty:  a.Specialty,
		Date:       a.Date,
		Time:       a.Time,
		Status:     a.Status,
	}
}

type emergencyResp struct {
	EmergencyDetected bool   `json:"emergency_detected"`
	PatientName       string `json:"patient_name,omitempty"`
}

func newEmergencyResp(out health.EmergencyOutput) emergencyResp {
	return emergencyResp{
		EmergencyDetected: out.Detected,
		PatientName:       out.PatientName,
	}
}
