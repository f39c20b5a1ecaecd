package http

import (
	"goldensage/internal/model"
	"goldensage/internal/user"
)

// --- Request DTOs ---

type signupGuardianReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r signupGuardianReq) toInput() user.SignupGuardianInput {
	return user.SignupGuardianInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type signupPatientReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=120"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"    binding:"max=20"`
}

func (r signupPatientReq) toInput() user.SignupPatientInput {
	return user.SignupPatientInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}

type signupUnityReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Kind     string `json:"kind"     binding:"required,oneof=individual ngo"`
	Name     string `json:"name"     binding:"required,min=1,max=120"`
}

func (r signupUnityReq) toInput() user.SignupUnityInput {
	return user.SignupUnityInput{
		Email:    r.Email,
		Password: r.Password,
		Kind:     r.Kind,
		Name:     r.Name,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type authResp struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		Token:  out.Token,
		UserID: out.UserID,
		Role:   string(out.Role),
		Name:   out.Name,
	}
}

type patientResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	GuardianID  string `json:"guardian_id"`
	IsEmergency bool   `json:"is_emergency"`
}

func newPatientResp(p model.Patient) patientResp {
	return patientResp{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		GuardianID:  p.GuardianID,
		IsEmergency: p.IsEmergency,
	}
}

type patientListResp struct {
	Patients []patientResp `json:"patients"`
}

func newPatientListResp(patients []model.Patient) patientListResp {
	out := make([]patientResp, len(patients))
	for i, p := range patients {
		out[i] = newPatientResp(p)
	}
	return patientListResp{Patients: out}
}

type guardianResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type unityResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
}

type profileResp struct {
	Role     string        `json:"role"`
	Guardian *guardianResp `json:"guardian,omitempty"`
	Patient  *patientResp  `json:"patient,omitempty"`
	Unity    *unityResp    `json:"unity,omitempty"`
}

func newProfileResp(out user.ProfileOutput) profileResp {
	resp := profileResp{Role: string(out.Role)}
	if out.Guardian != nil {
		resp.Guardian = &guardianResp{
			ID:    out.Guardian.ID.Hex(),
			Email: out.Guardian.Email,
		}
	}
	if out.Patient != nil {
		p := newPatientResp(*out.Patient)
		resp.Patient = &p
	}
	if out.Unity != nil {
		resp.Unity = &unityResp{
			ID:    out.Unity.ID.Hex(),
			Email: out.Unity.Email,
			Kind:  out.Unity.Role,
			Name:  out.Unity.Name,
		}
	}
	return resp
}
