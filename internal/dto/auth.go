package dto

import (
	"time"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
)

// RegisterJobseekerRequest is the registration payload for jobseekers.
// ConfirmPassword must equal Password and terms must be accepted.
type RegisterJobseekerRequest struct {
	FullName        string `json:"full_name" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Phone           string `json:"phone" binding:"omitempty,max=15"`
	LinkedIn        string `json:"linked_in" binding:"omitempty,url"`
	Portfolio       string `json:"portfolio" binding:"omitempty,url"`
	TermsAccepted   bool   `json:"terms_accepted" binding:"eq=true"`
}

// Registration converts the request into the domain registration shape.
func (r *RegisterJobseekerRequest) Registration() *domain.Registration {
	return &domain.Registration{
		Email:         r.Email,
		Password:      r.Password,
		TermsAccepted: r.TermsAccepted,
		FullName:      r.FullName,
		Phone:         r.Phone,
		LinkedIn:      r.LinkedIn,
		Portfolio:     r.Portfolio,
	}
}

// RegisterEmployerRequest is the registration payload for employers.
type RegisterEmployerRequest struct {
	FirstName       string `json:"first_name" binding:"required,min=3"`
	LastName        string `json:"last_name" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"omitempty,max=13"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	DateOfBirth     string `json:"date_of_birth" binding:"omitempty"`
	Gender          string `json:"gender" binding:"required"`
	TermsAccepted   bool   `json:"terms_accepted" binding:"eq=true"`
}

// Registration converts the request into the domain registration shape.
func (r *RegisterEmployerRequest) Registration() *domain.Registration {
	return &domain.Registration{
		Email:         r.Email,
		Password:      r.Password,
		TermsAccepted: r.TermsAccepted,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		DateOfBirth:   r.DateOfBirth,
		Gender:        r.Gender,
	}
}

// LoginRequest is shared by both account kinds.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AccountResponse is the public view of an account, returned from register
// and login. The password hash never appears here.
type AccountResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at,omitempty"`
}

// LoginResponse carries the issued token alongside the public identity. The
// same token is also set as the session cookie.
type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

// ToAccountResponse converts a domain account to its public view.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
