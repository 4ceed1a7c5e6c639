package service

import (
	"context"
	"errors"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/notify"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/repository"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/token"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
)

// AuthService is the login/register/authenticate control flow for one
// account relation. Two instances run in the service, one per account kind,
// sharing this implementation through the repository interface.
type AuthService interface {
	// Register validates business rules, hashes the password and persists
	// the account. The welcome notification is fired best-effort.
	Register(ctx context.Context, reg *domain.Registration) (*domain.Account, error)
	// Login verifies credentials and returns a signed access token with
	// the public account view.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Authenticate verifies a token and resolves its subject against the
	// account relation. Used by the authorization middleware.
	Authenticate(ctx context.Context, tokenString string) (*domain.Identity, error)
}

// authService implements AuthService
type authService struct {
	accounts   repository.AccountRepository
	issuer     *token.Issuer
	notifier   notify.Notifier
	log        *zap.Logger
	bcryptCost int
}

// NewAuthService creates an AuthService bound to one account relation
func NewAuthService(
	accounts repository.AccountRepository,
	issuer *token.Issuer,
	notifier notify.Notifier,
	log *zap.Logger,
) AuthService {
	return &authService{
		accounts:   accounts,
		issuer:     issuer,
		notifier:   notifier,
		log:        log,
		bcryptCost: 10,
	}
}

// Register registers a new account
func (s *authService) Register(ctx context.Context, reg *domain.Registration) (*domain.Account, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.register")
	defer span.End()

	span.SetAttributes(attribute.String("role", string(s.accounts.Role())))

	exists, err := s.accounts.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if exists {
		span.SetStatus(codes.Error, "account already exists")
		return nil, ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	account, err := s.accounts.Create(ctx, reg, string(hashed))
	if err != nil {
		// A concurrent registration may slip past the pre-check; the
		// unique index resolves the race and we report the same conflict.
		if repository.IsUniqueViolation(err) {
			span.SetStatus(codes.Error, "account already exists")
			return nil, ErrAccountExists
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Fire-and-continue: a notification failure must not abort registration.
	go func(email, name string) {
		if err := s.notifier.SendWelcome(context.Background(), email, name); err != nil {
			s.log.Warn("welcome notification failed",
				zap.String("email", email),
				zap.Error(err),
			)
		}
	}(account.Email, account.Name)

	span.SetAttributes(attribute.Int64("account_id", account.ID))
	span.SetStatus(codes.Ok, "")
	return account, nil
}

// Login authenticates an account by email and password
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	span.SetAttributes(attribute.String("role", string(s.accounts.Role())))

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", nil, err
	}
	if account == nil {
		span.SetStatus(codes.Error, "invalid credentials")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		span.SetStatus(codes.Error, "invalid credentials")
		return "", nil, ErrInvalidCredentials
	}

	tokenString, err := s.issuer.Issue(account.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", nil, err
	}

	span.SetAttributes(attribute.Int64("account_id", account.ID))
	span.SetStatus(codes.Ok, "")
	return tokenString, account, nil
}

// Authenticate verifies a token and resolves the subject account
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*domain.Identity, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.authenticate")
	defer span.End()

	accountID, err := s.issuer.Verify(tokenString)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	identity, err := s.accounts.GetIdentityByID(ctx, accountID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if identity == nil {
		// Orphaned token: cryptographically valid but the account is gone.
		span.SetStatus(codes.Error, "account not found")
		return nil, ErrAccountNotFound
	}

	span.SetAttributes(attribute.Int64("account_id", identity.ID))
	span.SetStatus(codes.Ok, "")
	return identity, nil
}
