package handler

import (
	"time"

	"github.com/crediya/auth-service/internal/core/domain"
)

const birthDateLayout = "2006-01-02"

// --- Request / Response types ---

type createUserRequest struct {
	NumberDocument string  `json:"number_document" validate:"required"`
	Name           string  `json:"name"            validate:"required"`
	LastName       string  `json:"last_name"       validate:"required"`
	BirthDate      string  `json:"birth_date"      validate:"omitempty,datetime=2006-01-02"`
	Address        string  `json:"address"`
	Email          string  `json:"email"           validate:"required,email"`
	Phone          string  `json:"phone"`
	Password       string  `json:"password"        validate:"required,min=6"`
	RoleID         int64   `json:"role_id"         validate:"required,gt=0"`
	BaseSalary     float64 `json:"base_salary"     validate:"required,gt=0,lte=15000000"`
}

type roleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type userResponse struct {
	ID             string        `json:"id"`
	NumberDocument string        `json:"number_document"`
	Name           string        `json:"name"`
	LastName       string        `json:"last_name"`
	BirthDate      string        `json:"birth_date,omitempty"`
	Address        string        `json:"address,omitempty"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	BaseSalary     float64       `json:"base_salary"`
	Role           *roleResponse `json:"role,omitempty"`
}

// --- Mapping ---

// toDomain builds the candidate user. The birth date has already passed
// validation, so a parse failure can only mean an empty field.
func (r createUserRequest) toDomain() *domain.User {
	birthDate, _ := time.Parse(birthDateLayout, r.BirthDate)
	return &domain.User{
		NumberDocument: r.NumberDocument,
		Name:           r.Name,
		LastName:       r.LastName,
		BirthDate:      birthDate,
		Address:        r.Address,
		Email:          r.Email,
		Phone:          r.Phone,
		BaseSalary:     r.BaseSalary,
		Role:           &domain.Role{ID: r.RoleID},
	}
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:             u.ID,
		NumberDocument: u.NumberDocument,
		Name:           u.Name,
		LastName:       u.LastName,
		Address:        u.Address,
		Email:          u.Email,
		Phone:          u.Phone,
		BaseSalary:     u.BaseSalary,
	}
	if !u.BirthDate.IsZero() {
		resp.BirthDate = u.BirthDate.Format(birthDateLayout)
	}
	if u.Role != nil {
		resp.Role = &roleResponse{ID: u.Role.ID, Name: u.Role.Name, Description: u.Role.Description}
	}
	return resp
}
