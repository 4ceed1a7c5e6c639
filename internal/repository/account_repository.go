package repository

import (
	"context"
	"errors"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// AccountRepository is the credential-store access contract. One
// implementation exists per account relation (jobseekers, employers); the
// auth service and middleware are written against this interface so both
// account kinds share one control flow.
//
// Lookup methods return (nil, nil) when no row matches.
type AccountRepository interface {
	// Create inserts the account and returns it with the store-assigned id.
	Create(ctx context.Context, reg *domain.Registration, passwordHash string) (*domain.Account, error)
	// GetByEmail retrieves the full account row, including the password
	// hash, for credential verification.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// GetIdentityByID retrieves only the safe-to-expose fields.
	GetIdentityByID(ctx context.Context, id int64) (*domain.Identity, error)
	// ExistsByEmail checks for a duplicate registration.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Role returns the fixed role tag of this relation.
	Role() domain.Role
}

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint rejection,
// e.g. two concurrent registrations racing on the same email.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
