package handler

import (
	"time"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// --- Request types ---

// Emails are checked by the identity gateway so its message reaches the user
// verbatim; only presence is validated here.

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type citizenRegisterRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	DOB             string `json:"dob"             validate:"required,datetime=2006-01-02"`
	Phone           string `json:"phone"           validate:"required,numeric,max=10"`
	Address         string `json:"address"         validate:"required"`
	Pincode         string `json:"pincode"         validate:"required,numeric,max=6"`
	State           string `json:"state"           validate:"required"`
	District        string `json:"district"        validate:"required"`
}

type authorityRegisterRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	GovID           string `json:"govId"           validate:"required"`
	Department      string `json:"department"      validate:"required"`
	Jurisdiction    string `json:"jurisdiction"    validate:"required"`
}

type adminRegisterRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	AdminCode       string `json:"adminCode"       validate:"required"`
}

type partnerLoginRequest struct {
	OrgName       string `json:"orgName"       validate:"required"`
	Email         string `json:"email"         validate:"required"`
	Password      string `json:"password"      validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Role          string `json:"role"`
	Phone         string `json:"phone"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type confirmResetRequest struct {
	Token           string `json:"token"           validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// --- Response types ---

type authResponse struct {
	Token     string         `json:"token"`
	Session   domain.Session `json:"session"`
	Landing   string         `json:"landing"`
	ExpiresAt time.Time      `json:"expires_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request → Service input ---

func toCitizenRegistration(req citizenRegisterRequest) (ports.CitizenRegistration, error) {
	dob, err := time.Parse(time.DateOnly, req.DOB)
	if err != nil {
		return ports.CitizenRegistration{}, domain.Invalid("dob", "dob must be a date formatted as 2006-01-02")
	}
	return ports.CitizenRegistration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DOB:             dob,
		Phone:           req.Phone,
		Address:         req.Address,
		Pincode:         req.Pincode,
		State:           req.State,
		District:        req.District,
	}, nil
}

func toAuthorityRegistration(req authorityRegisterRequest) ports.AuthorityRegistration {
	return ports.AuthorityRegistration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		GovID:           req.GovID,
		Department:      req.Department,
		Jurisdiction:    req.Jurisdiction,
	}
}

func toAdminRegistration(req adminRegisterRequest) ports.AdminRegistration {
	return ports.AdminRegistration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AdminCode:       req.AdminCode,
	}
}

func toPartnerLogin(req partnerLoginRequest) ports.PartnerLogin {
	return ports.PartnerLogin{
		OrgName:       req.OrgName,
		Email:         req.Email,
		Password:      req.Password,
		ContactPerson: req.ContactPerson,
		Role:          req.Role,
		Phone:         req.Phone,
	}
}

// --- Service result → HTTP response ---

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		Token:     r.Token,
		Session:   r.Session,
		Landing:   r.Landing,
		ExpiresAt: r.ExpiresAt.UTC(),
	}
}
