// Package token issues and verifies the signed bearer credentials used for
// session authentication. Tokens are stateless: validity is determined by
// signature and expiry alone, account existence is checked by the caller.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was valid but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken means the signature did not verify or the token is
	// structurally broken.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMalformedSubject means the subject claim is absent or not a
	// numeric account id.
	ErrMalformedSubject = errors.New("malformed subject claim")
)

// Issuer creates and verifies HS256-signed access tokens carrying the
// account id as subject and audience.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewIssuer constructs an Issuer. The secret is process-wide and immutable.
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue signs a token for the given account id. Two calls at different times
// yield different signatures (time-variant claims) but both verify until
// expiry.
func (i *Issuer) Issue(accountID int64) (string, error) {
	id := strconv.FormatInt(accountID, 10)
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   id,
		Issuer:    i.issuer,
		Audience:  jwt.ClaimStrings{id},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the subject account id.
// It does not confirm the account still exists; that is the middleware's job.
func (i *Issuer) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !tok.Valid {
		return 0, ErrInvalidToken
	}

	if claims.Subject == "" {
		return 0, ErrMalformedSubject
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformedSubject
	}

	return accountID, nil
}
