package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"moneyman/internal/auth"
	"moneyman/internal/errors"
	"moneyman/internal/service"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. secureCookies marks session
// cookies Secure (production only).
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: validationMessage(err)})
	}

	if err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login godoc
// @Summary Log a user in and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: validationMessage(err)})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	auth.SetSessionCookie(c, token, h.secureCookies)

	return c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
	})
}

// Logout godoc
// @Summary Log out by clearing the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.ClearSessionCookie(c, h.secureCookies)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
