package handler

import (
	"errors"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/dto"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/middleware"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/service"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmployerHandler handles employer authentication HTTP requests
type EmployerHandler struct {
	auth   service.AuthService
	cookie SessionCookie
	log    *zap.Logger
}

// NewEmployerHandler creates a new EmployerHandler
func NewEmployerHandler(auth service.AuthService, cookie SessionCookie, log *zap.Logger) *EmployerHandler {
	return &EmployerHandler{auth: auth, cookie: cookie, log: log}
}

// Register handles employer registration
// POST /api/v1/employer/register
func (h *EmployerHandler) Register(c *gin.Context) {
	var req dto.RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := dto.FieldErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.auth.Register(c.Request.Context(), req.Registration())
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			response.Conflict(c, "Employer already exists")
			return
		}
		h.log.Error("employer registration failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, "Employer registered successfully", dto.ToAccountResponse(account))
}

// Login handles employer login
// POST /api/v1/employer/login
func (h *EmployerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := dto.FieldErrors(err); fields != nil {
			response.ValidationFailed(c, fields)
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokenString, account, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		h.log.Error("employer login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.cookie.set(c, tokenString)
	response.Success(c, "Login successful", dto.LoginResponse{
		Token: tokenString,
		User:  dto.ToAccountResponse(account),
	})
}

// Logout clears the session cookie
// POST /api/v1/employer/logout
func (h *EmployerHandler) Logout(c *gin.Context) {
	h.cookie.clear(c)
	response.Success(c, "Logged out successfully", nil)
}

// Me returns the identity resolved by the authorization middleware
// GET /api/v1/employer/me
func (h *EmployerHandler) Me(c *gin.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, "Unauthorized: Missing accessToken")
		return
	}
	response.Success(c, "", identity)
}
