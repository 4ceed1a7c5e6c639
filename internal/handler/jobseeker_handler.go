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

// JobseekerHandler handles jobseeker authentication HTTP requests
type JobseekerHandler struct {
	auth   service.AuthService
	cookie SessionCookie
	log    *zap.Logger
}

// NewJobseekerHandler creates a new JobseekerHandler
func NewJobseekerHandler(auth service.AuthService, cookie SessionCookie, log *zap.Logger) *JobseekerHandler {
	return &JobseekerHandler{auth: auth, cookie: cookie, log: log}
}

// Register handles jobseeker registration
// POST /api/v1/jobseeker/register
func (h *JobseekerHandler) Register(c *gin.Context) {
	var req dto.RegisterJobseekerRequest
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
			response.Conflict(c, "User already exists")
			return
		}
		h.log.Error("jobseeker registration failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, "User registered successfully. A welcome email has been sent.", dto.ToAccountResponse(account))
}

// Login handles jobseeker login
// POST /api/v1/jobseeker/login
func (h *JobseekerHandler) Login(c *gin.Context) {
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
		h.log.Error("jobseeker login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.cookie.set(c, tokenString)
	response.Success(c, "Login successful", dto.LoginResponse{
		Token: tokenString,
		User:  dto.ToAccountResponse(account),
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; no invalidation list is kept.
// POST /api/v1/jobseeker/logout
func (h *JobseekerHandler) Logout(c *gin.Context) {
	h.cookie.clear(c)
	response.Success(c, "Logged out successfully", nil)
}

// Me returns the identity resolved by the authorization middleware
// GET /api/v1/jobseeker/me
func (h *JobseekerHandler) Me(c *gin.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, "Unauthorized: Missing accessToken")
		return
	}
	response.Success(c, "", identity)
}
