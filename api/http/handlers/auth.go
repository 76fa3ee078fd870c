package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nexushq/talent-registry/api/http/presenter"
	"github.com/nexushq/talent-registry/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Domain     string `json:"domain"`
	Skill      string `json:"skill"`
	Experience string `json:"experience"`
	Summary    string `json:"summary"`
}

// Register handles candidate self-registration. The verification token is
// returned in the response body; delivery to the user is an external concern.
// @Summary Register candidate
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
	}

	user, err := h.useCase.Register(c.Context(), auth.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Domain:     auth.Domain(req.Domain),
		Skill:      req.Skill,
		Experience: req.Experience,
		Summary:    req.Summary,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"user":              user,
		"verificationToken": user.VerificationToken,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email/password and returns a session token. Unknown
// email and wrong password produce the same response.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

// VerifyEmail consumes a one-time verification token.
// @Summary Verify email
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body verifyEmailRequest true "verification token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req verifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.useCase.VerifyEmail(c.Context(), strings.TrimSpace(req.Token))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return presenter.Error(c, http.StatusBadRequest, "invalid request")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to verify email")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"user": user})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a time-bound reset token. Unknown emails get the same
// generic failure, so callers cannot enumerate accounts.
// @Summary Request password reset
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body forgotPasswordRequest true "account email"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	token, err := h.useCase.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusBadRequest, "invalid request")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to process request")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"resetToken": token})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword consumes a reset token and replaces the password. Expired and
// unknown tokens fail uniformly.
// @Summary Reset password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body resetPasswordRequest true "reset token + new password"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.useCase.ResetPassword(c.Context(), strings.TrimSpace(req.Token), req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return presenter.Error(c, http.StatusBadRequest, "invalid request")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to reset password")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true})
}

// Me returns the profile behind the bearer token.
// @Summary Current user profile
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	user, err := h.useCase.Profile(c.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, user)
}
