package domain

import "time"

// Role tags which account relation a principal belongs to. It is fixed at
// registration and never changes.
type Role string

const (
	RoleJobseeker Role = "user"
	RoleEmployer  Role = "employer"
)

// Account is a registered principal, either a jobseeker or an employer.
// The two kinds live in separate relations but share the auth-relevant shape.
type Account struct {
	ID            int64
	Name          string // full_name for jobseekers, first_name for employers
	Email         string
	PasswordHash  string
	Role          Role
	TermsAccepted bool
	CreatedAt     time.Time
}

// Registration carries the validated input for creating an account. Password
// is plaintext here and must not escape the registration flow; profile fields
// not used by a given relation stay empty.
type Registration struct {
	Email         string
	Password      string
	TermsAccepted bool

	// Jobseeker profile
	FullName  string
	LinkedIn  string
	Portfolio string

	// Employer profile
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string

	// Shared
	Phone string
}

// Identity is the safe-to-expose projection of an account that the
// authorization middleware attaches to the request context. It never carries
// the password hash.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Identity returns the public projection of the account.
func (a *Account) Identity() *Identity {
	return &Identity{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}
