package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/token"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockAccountRepository is an in-memory implementation of AccountRepository
type mockAccountRepository struct {
	role        domain.Role
	accounts    map[int64]*domain.Account
	emailIndex  map[string]*domain.Account
	nextID      int64
	createError error
}

func newMockAccountRepository(role domain.Role) *mockAccountRepository {
	return &mockAccountRepository{
		role:       role,
		accounts:   make(map[int64]*domain.Account),
		emailIndex: make(map[string]*domain.Account),
		nextID:     1,
	}
}

func (r *mockAccountRepository) Role() domain.Role {
	return r.role
}

func (r *mockAccountRepository) Create(ctx context.Context, reg *domain.Registration, passwordHash string) (*domain.Account, error) {
	if r.createError != nil {
		return nil, r.createError
	}
	if _, dup := r.emailIndex[reg.Email]; dup {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	name := reg.FullName
	if name == "" {
		name = reg.FirstName
	}
	account := &domain.Account{
		ID:            r.nextID,
		Name:          name,
		Email:         reg.Email,
		PasswordHash:  passwordHash,
		Role:          r.role,
		TermsAccepted: reg.TermsAccepted,
		CreatedAt:     time.Now(),
	}
	r.nextID++
	r.accounts[account.ID] = account
	r.emailIndex[account.Email] = account
	return account, nil
}

func (r *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.emailIndex[email], nil
}

func (r *mockAccountRepository) GetIdentityByID(ctx context.Context, id int64) (*domain.Identity, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return account.Identity(), nil
}

func (r *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockAccountRepository) deleteAccount(id int64) {
	if account, ok := r.accounts[id]; ok {
		delete(r.emailIndex, account.Email)
		delete(r.accounts, id)
	}
}

// mockNotifier records welcome sends on a channel
type mockNotifier struct {
	sent chan string
	err  error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan string, 8)}
}

func (n *mockNotifier) SendWelcome(ctx context.Context, email, name string) error {
	n.sent <- email
	return n.err
}

func newTestService(repo *mockAccountRepository, notifier *mockNotifier) AuthService {
	issuer := token.NewIssuer("test-secret-key", "Job Portal", 10*time.Hour)
	return NewAuthService(repo, issuer, notifier, zap.NewNop())
}

func jobseekerRegistration(email string) *domain.Registration {
	return &domain.Registration{
		Email:         email,
		Password:      "secret1",
		TermsAccepted: true,
		FullName:      "Test User",
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockAccountRepository(domain.RoleJobseeker)
	notifier := newMockNotifier()
	svc := newTestService(repo, notifier)

	t.Run("successful registration", func(t *testing.T) {
		account, err := svc.Register(context.Background(), jobseekerRegistration("a@x.com"))
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if account.ID == 0 {
			t.Error("Register() account id not assigned")
		}
		if account.PasswordHash == "secret1" {
			t.Error("Register() stored plaintext password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")); err != nil {
			t.Errorf("stored hash does not verify against original password: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("other")); err == nil {
			t.Error("stored hash verifies against a different password")
		}

		select {
		case email := <-notifier.sent:
			if email != "a@x.com" {
				t.Errorf("welcome sent to %q, want a@x.com", email)
			}
		case <-time.After(time.Second):
			t.Error("welcome notification was not sent")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), jobseekerRegistration("a@x.com"))
		if !errors.Is(err, ErrAccountExists) {
			t.Fatalf("expected ErrAccountExists, got %v", err)
		}
		if len(repo.accounts) != 1 {
			t.Errorf("duplicate registration inserted a row, have %d accounts", len(repo.accounts))
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo.createError = errors.New("connection reset")
		defer func() { repo.createError = nil }()

		_, err := svc.Register(context.Background(), jobseekerRegistration("b@x.com"))
		if err == nil || errors.Is(err, ErrAccountExists) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("notification failure does not abort", func(t *testing.T) {
		notifier.err = errors.New("smtp down")
		defer func() { notifier.err = nil }()

		_, err := svc.Register(context.Background(), jobseekerRegistration("c@x.com"))
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		<-notifier.sent
	})
}

func TestAuthService_RegisterRace(t *testing.T) {
	// A second registration that slips past the pre-check is rejected by
	// the store's unique index and reported as the same conflict.
	repo := newMockAccountRepository(domain.RoleJobseeker)
	svc := newTestService(repo, newMockNotifier())

	if _, err := svc.Register(context.Background(), jobseekerRegistration("race@x.com")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	repo.createError = &pgconn.PgError{Code: "23505"}
	_, err := svc.Register(context.Background(), jobseekerRegistration("other@x.com"))
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists on unique violation, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockAccountRepository(domain.RoleJobseeker)
	svc := newTestService(repo, newMockNotifier())

	registered, err := svc.Register(context.Background(), jobseekerRegistration("a@x.com"))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("successful login", func(t *testing.T) {
		tok, account, err := svc.Login(context.Background(), "a@x.com", "secret1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if tok == "" {
			t.Error("Login() token is empty")
		}
		if account.ID != registered.ID {
			t.Errorf("account id = %d, want %d", account.ID, registered.ID)
		}

		identity, err := svc.Authenticate(context.Background(), tok)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if identity.ID != registered.ID {
			t.Errorf("token subject resolves to %d, want %d", identity.ID, registered.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "a@x.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := newMockAccountRepository(domain.RoleEmployer)
	svc := newTestService(repo, newMockNotifier())

	account, err := svc.Register(context.Background(), &domain.Registration{
		Email:         "boss@corp.com",
		Password:      "secret1",
		TermsAccepted: true,
		FirstName:     "Boss",
		LastName:      "Person",
		Gender:        "female",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tok, _, err := svc.Login(context.Background(), "boss@corp.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("resolves identity without password hash", func(t *testing.T) {
		identity, err := svc.Authenticate(context.Background(), tok)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if identity.Email != "boss@corp.com" || identity.Role != domain.RoleEmployer {
			t.Errorf("unexpected identity %+v", identity)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "not.a.jwt")
		if !errors.Is(err, token.ErrInvalidToken) {
			t.Fatalf("expected token.ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expiredIssuer := token.NewIssuer("test-secret-key", "Job Portal", -1*time.Second)
		expired, err := expiredIssuer.Issue(account.ID)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		_, err = svc.Authenticate(context.Background(), expired)
		if !errors.Is(err, token.ErrTokenExpired) {
			t.Fatalf("expected token.ErrTokenExpired, got %v", err)
		}
	})

	t.Run("orphaned token after account deletion", func(t *testing.T) {
		repo.deleteAccount(account.ID)
		_, err := svc.Authenticate(context.Background(), tok)
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
