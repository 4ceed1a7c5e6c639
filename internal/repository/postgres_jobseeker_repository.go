package repository

import (
	"context"
	"errors"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresJobseekerRepository implements AccountRepository over the users
// relation.
type PostgresJobseekerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobseekerRepository creates a new PostgresJobseekerRepository
func NewPostgresJobseekerRepository(pool *pgxpool.Pool) *PostgresJobseekerRepository {
	return &PostgresJobseekerRepository{pool: pool}
}

// Role returns the jobseeker role tag
func (r *PostgresJobseekerRepository) Role() domain.Role {
	return domain.RoleJobseeker
}

// Create inserts a jobseeker account and returns it with the assigned id
func (r *PostgresJobseekerRepository) Create(ctx context.Context, reg *domain.Registration, passwordHash string) (*domain.Account, error) {
	query := `
		INSERT INTO users (full_name, email, password, phone, linked_in, portfolio, terms_accepted, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	account := &domain.Account{
		Name:          reg.FullName,
		Email:         reg.Email,
		PasswordHash:  passwordHash,
		Role:          domain.RoleJobseeker,
		TermsAccepted: reg.TermsAccepted,
	}
	err := r.pool.QueryRow(ctx, query,
		reg.FullName,
		reg.Email,
		passwordHash,
		nullable(reg.Phone),
		nullable(reg.LinkedIn),
		nullable(reg.Portfolio),
		reg.TermsAccepted,
		domain.RoleJobseeker,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByEmail retrieves a jobseeker account by email
func (r *PostgresJobseekerRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, full_name, email, password, role, terms_accepted, created_at
		FROM users
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

// GetIdentityByID retrieves only the safe-to-expose fields of a jobseeker
func (r *PostgresJobseekerRepository) GetIdentityByID(ctx context.Context, id int64) (*domain.Identity, error) {
	query := `SELECT id, full_name, email, role FROM users WHERE id = $1`
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

// ExistsByEmail checks if a jobseeker exists with the given email
func (r *PostgresJobseekerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

// nullable maps an empty string to SQL NULL for optional profile columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
