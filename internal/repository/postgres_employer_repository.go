package repository

import (
	"context"
	"errors"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEmployerRepository implements AccountRepository over the employers
// relation.
type PostgresEmployerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEmployerRepository creates a new PostgresEmployerRepository
func NewPostgresEmployerRepository(pool *pgxpool.Pool) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{pool: pool}
}

// Role returns the employer role tag
func (r *PostgresEmployerRepository) Role() domain.Role {
	return domain.RoleEmployer
}

// Create inserts an employer account and returns it with the assigned id
func (r *PostgresEmployerRepository) Create(ctx context.Context, reg *domain.Registration, passwordHash string) (*domain.Account, error) {
	query := `
		INSERT INTO employers (first_name, last_name, email, phone, password, date_of_birth, gender, terms_accepted, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	account := &domain.Account{
		Name:          reg.FirstName,
		Email:         reg.Email,
		PasswordHash:  passwordHash,
		Role:          domain.RoleEmployer,
		TermsAccepted: reg.TermsAccepted,
	}
	err := r.pool.QueryRow(ctx, query,
		reg.FirstName,
		reg.LastName,
		reg.Email,
		nullable(reg.Phone),
		passwordHash,
		nullable(reg.DateOfBirth),
		reg.Gender,
		reg.TermsAccepted,
		domain.RoleEmployer,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByEmail retrieves an employer account by email
func (r *PostgresEmployerRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, first_name, email, password, role, terms_accepted, created_at
		FROM employers
		WHERE email = $1
	`
	account := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.TermsAccepted,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// GetIdentityByID retrieves only the safe-to-expose fields of an employer
func (r *PostgresEmployerRepository) GetIdentityByID(ctx context.Context, id int64) (*domain.Identity, error) {
	query := `SELECT id, first_name, email, role FROM employers WHERE id = $1`
	identity := &domain.Identity{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&identity.ID,
		&identity.Name,
		&identity.Email,
		&identity.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return identity, nil
}

// ExistsByEmail checks if an employer exists with the given email
func (r *PostgresEmployerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employers WHERE email = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}
