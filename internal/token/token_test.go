package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", "Job Portal", 10*time.Hour)

	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	accountID, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if accountID != 42 {
		t.Fatalf("account id mismatch: got %d want 42", accountID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "Job Portal", -1*time.Second)

	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret", "Job Portal", time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = NewIssuer("wrong-secret", "Job Portal", time.Hour).Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "Job Portal", time.Hour)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip the last signature character
	last := tok[len(tok)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := tok[:len(tok)-1] + string(flipped)

	_, err = issuer.Verify(tampered)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_NonNumericSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, err = NewIssuer(secret, "Job Portal", time.Hour).Verify(tok)
	if !errors.Is(err, ErrMalformedSubject) {
		t.Fatalf("expected ErrMalformedSubject, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, err = NewIssuer(secret, "Job Portal", time.Hour).Verify(tok)
	if !errors.Is(err, ErrMalformedSubject) {
		t.Fatalf("expected ErrMalformedSubject, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k", "Job Portal", time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssue_TimeVariantSignatures(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "Job Portal", time.Hour)

	first, err := issuer.Issue(5)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	second, err := issuer.Issue(5)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if first == second {
		t.Fatal("expected different signatures for issuance at different times")
	}
	for _, tok := range []string{first, second} {
		if _, err := issuer.Verify(tok); err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
	}
}

func TestIssue_ClaimsShape(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", "Job Portal", 10*time.Hour)
	tok, err := issuer.Issue(99)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("expected compact three-part token, got %q", tok)
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("ParseWithClaims() error = %v", err)
	}

	if claims.Subject != "99" {
		t.Errorf("subject = %q, want %q", claims.Subject, "99")
	}
	if claims.Issuer != "Job Portal" {
		t.Errorf("issuer = %q, want %q", claims.Issuer, "Job Portal")
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "99" {
		t.Errorf("audience = %v, want [99]", claims.Audience)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 10*time.Hour {
		t.Errorf("token validity = %v, want 10h", ttl)
	}
}
