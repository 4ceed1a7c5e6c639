package middleware

import (
	"errors"
	"strings"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/domain"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/service"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/token"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/response"
	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the resolved identity is stored under.
const IdentityKey = "identity"

const bearerPrefix = "Bearer "

// RequireAuth gates protected routes. It extracts the access token from the
// session cookie (header fallback), verifies it and resolves the subject in
// the relation the given service is bound to. Instantiated once per account
// kind: RequireAuth(jobseekerAuth, ...) and RequireAuth(employerAuth, ...).
func RequireAuth(auth service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, bearerPrefix) {
				tokenString = header[len(bearerPrefix):]
			}
		}

		if tokenString == "" {
			response.AbortUnauthorized(c, "Unauthorized: Missing accessToken")
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			// Sub-reason distinguished for client diagnostics, identical
			// HTTP outcome.
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				response.AbortUnauthorized(c, "Unauthorized: AccessToken expired")
			case errors.Is(err, token.ErrInvalidToken), errors.Is(err, token.ErrMalformedSubject):
				response.AbortUnauthorized(c, "Unauthorized: Invalid accessToken")
			case errors.Is(err, service.ErrAccountNotFound):
				response.AbortUnauthorized(c, "Unauthorized: account not found")
			default:
				response.AbortUnauthorized(c, "Unauthorized: Authentication error")
			}
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// Identity returns the identity the authorization middleware attached to the
// request, or nil when the route is not protected.
func Identity(c *gin.Context) *domain.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
