package usecase

import (
	"context"
	"errors"

	"goldensage/internal/health"
	"goldensage/internal/health/repository"
	"goldensage/internal/model"
	userRepo "goldensage/internal/user/repository"
)

const (
	patientVitalsLimit       = 10
	guardianVitalsLimit      = 5
	patientAppointmentsLimit = 5
)

// PatientDashboard assembles the patient's own dashboard: latest vitals,
// today's tasks, medications and recent appointments.
func (uc *implUseCase) PatientDashboard(ctx context.Context, patientID string) (health.DashboardOutput, error) {
	patient, err := uc.getPatient(ctx, patientID)
	if err != nil {
		return health.DashboardOutput{}, err
	}

	return uc.assemble(ctx, patient, patientVitalsLimit, repository.ListAppointmentsOptions{
		Limit: patientAppointmentsLimit,
	})
}

// GuardianPatientView assembles a guardian's view of one of their patients.
func (uc *implUseCase) GuardianPatientView(ctx context.Context, guardianID, patientID string) (health.DashboardOutput, error) {
	patient, err := uc.getPatient(ctx, patientID)
	if err != nil {
		return health.DashboardOutput{}, err
	}
	if patient.GuardianID != guardianID {
		return health.DashboardOutput{}, health.ErrNotYourPatient
	}

	return uc.assemble(ctx, patient, guardianVitalsLimit, repository.ListAppointmentsOptions{
		Ascending: true,
	})
}

// CheckEmergency reports whether any of the guardian's patients has the
// emergency flag set.
func (uc *implUseCase) CheckEmergency(ctx context.Context, guardianID string) (health.EmergencyOutput, error) {
	patient, err := uc.patients.FindEmergencyPatient(ctx, guardianID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return health.EmergencyOutput{}, nil
		}
		uc.l.Errorf(ctx, "uc.CheckEmergency FindEmergencyPatient: %v", err)
		return health.EmergencyOutput{}, err
	}
	return health.EmergencyOutput{Detected: true, PatientName: patient.Name}, nil
}

func (uc *implUseCase) getPatient(ctx context.Context, patientID string) (model.Patient, error) {
	patient, err := uc.patients.GetPatientByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return model.Patient{}, health.ErrPatientNotFound
		}
		uc.l.Errorf(ctx, "uc getPatient: %v", err)
		return model.Patient{}, err
	}
	return patient, nil
}

func (uc *implUseCase) assemble(
	ctx context.Context,
	patient model.Patient,
	vitalsLimit int64,
	apptOpts repository.ListAppointmentsOptions,
) (health.DashboardOutput, error) {
	patientID := patient.ID.Hex()

	vitals, err := uc.repo.ListVitals(ctx, patientID, vitalsLimit)
	if err != nil {
		uc.l.Errorf(ctx, "uc assemble ListVitals: %v", err)
		return health.DashboardOutput{}, err
	}

	tasks, err := uc.tasks.ListToday(ctx, patientID)
	if err != nil {
		uc.l.Errorf(ctx, "uc assemble ListToday: %v", err)
		return health.DashboardOutput{}, err
	}

	medications, err := uc.repo.ListMedications(ctx, patientID)
	if err != nil {
		uc.l.Errorf(ctx, "uc assemble ListMedications: %v", err)
		return health.DashboardOutput{}, err
	}

	appointments, err := uc.repo.ListAppointments(ctx, patientID, apptOpts)
	if err != nil {
		uc.l.Errorf(ctx, "uc assemble ListAppointments: %v", err)
		return health.DashboardOutput{}, err
	}

	return health.DashboardOutput{
		PatientName:  patient.Name,
		PatientPhone: patient.Phone,
		Vitals:       vitals,
		Tasks:        tasks,
		Medications:  medications,
		Appointments: appointments,
	}, nil
}
