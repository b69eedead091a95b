package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/constants"
	"github.com/haojie/dochub-api/internal/dto"
	"github.com/haojie/dochub-api/internal/response"
	"github.com/haojie/dochub-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SendEmailCode sends a verification code to the given address.
func (h *AuthHandler) SendEmailCode(c *gin.Context) {
	type EmailRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.authService.SendVerificationCode(c.Request.Context(), req.Email); err != nil {
		respondAuthError(c, err)
		return
	}

	response.Created(c, "verification email sent", nil)
}

// Register creates a user after validating the emailed code.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username        string `json:"username" binding:"required,min=3,max=32"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required"`
		PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
		Code            string `json:"code" binding:"required,len=6"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Created(c, "registered successfully", dto.ToUserDTO(*user))
}

// Login authenticates a user and returns an access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Success(c, "login success", result)
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		response.BadRequest(c, fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailSendFailed),
		errors.Is(err, services.ErrCodeExpiredOrMissing),
		errors.Is(err, services.ErrCodeMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
