package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"goldensage/internal/model"
	"goldensage/internal/user/repository"
	"goldensage/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory repository for testing. Lookups consult the stored slices so
// signup-then-login flows work end to end.
type mockRepository struct {
	guardians  []model.Guardian
	patients   []model.Patient
	unityUsers []model.UnityUser

	emergencySet map[string]bool

	createErr error
	getErr    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{emergencySet: map[string]bool{}}
}

func (m *mockRepository) CreateGuardian(ctx context.Context, opts repository.CreateGuardianOptions) (model.Guardian, error) {
	if m.createErr != nil {
		return model.Guardian{}, m.createErr
	}
	g := model.Guardian{
		ID:       primitive.NewObjectID(),
		Email:    opts.Email,
		Password: opts.Password,
	}
	m.guardians = append(m.guardians, g)
	return g, nil
}

func (m *mockRepository) GetGuardianByEmail(ctx context.Context, email string) (model.Guardian, error) {
	if m.getErr != nil {
		return model.Guardian{}, m.getErr
	}
	for _, g := range m.guardians {
		if g.Email == email {
			return g, nil
		}
	}
	return model.Guardian{}, repository.ErrNotFound
}

func (m *mockRepository) GetGuardianByID(ctx context.Context, id string) (model.Guardian, error) {
	for _, g := range m.guardians {
		if g.ID.Hex() == id {
			return g, nil
		}
	}
	return model.Guardian{}, repository.ErrNotFound
}

func (m *mockRepository) CreatePatient(ctx context.Context, opts repository.CreatePatientOptions) (model.Patient, error) {
	if m.createErr != nil {
		return model.Patient{}, m.createErr
	}
	p := model.Patient{
		ID:         primitive.NewObjectID(),
		Name:       opts.Name,
		Email:      opts.Email,
		Password:   opts.Password,
		Phone:      opts.Phone,
		GuardianID: opts.GuardianID,
	}
	m.patients = append(m.patients, p)
	return p, nil
}

func (m *mockRepository) GetPatientByEmail(ctx context.Context, email string) (model.Patient, error) {
	if m.getErr != nil {
		return model.Patient{}, m.getErr
	}
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return model.Patient{}, repository.ErrNotFound
}

func (m *mockRepository) GetPatientByID(ctx context.Context, id string) (model.Patient, error) {
	for _, p := range m.patients {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return model.Patient{}, repository.ErrNotFound
}

func (m *mockRepository) ListPatientsByGuardian(ctx context.Context, guardianID string) ([]model.Patient, error) {
	var out []model.Patient
	for _, p := range m.patients {
		if p.GuardianID == guardianID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepository) SetPatientEmergency(ctx context.Context, patientID string, emergency bool) error {
	m.emergencySet[patientID] = emergency
	return nil
}

func (m *mockRepository) FindEmergencyPatient(ctx context.Context, guardianID string) (model.Patient, error) {
	for _, p := range m.patients {
		if p.GuardianID == guardianID && m.emergencySet[p.ID.Hex()] {
			return p, nil
		}
	}
	return model.Patient{}, repository.ErrNotFound
}

func (m *mockRepository) CreateUnityUser(ctx context.Context, opts repository.CreateUnityUserOptions) (model.UnityUser, error) {
	if m.createErr != nil {
		return model.UnityUser{}, m.createErr
	}
	u := model.UnityUser{
		ID:       primitive.NewObjectID(),
		Email:    opts.Email,
		Password: opts.Password,
		Role:     opts.Kind,
		Name:     opts.Name,
	}
	m.unityUsers = append(m.unityUsers, u)
	return u, nil
}

func (m *mockRepository) GetUnityUserByEmail(ctx context.Context, email string) (model.UnityUser, error) {
	if m.getErr != nil {
		return model.UnityUser{}, m.getErr
	}
	for _, u := range m.unityUsers {
		if u.Email == email {
			return u, nil
		}
	}
	return model.UnityUser{}, repository.ErrNotFound
}

func (m *mockRepository) GetUnityUserByID(ctx context.Context, id string) (model.UnityUser, error) {
	for _, u := range m.unityUsers {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return model.UnityUser{}, repository.ErrNotFound
}

func newTestUseCase(repo repository.Repository) *implUseCase {
	return New(&mockLogger{}, repo, scope.NewManager("test-secret", time.Hour))
}
