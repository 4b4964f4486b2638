package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/thesanmark/auth-api/api/http/presenter"
	"github.com/thesanmark/auth-api/pkg/auth"
	"github.com/thesanmark/auth-api/pkg/security/token"
	"github.com/thesanmark/auth-api/pkg/validation"
)

const credentialMismatchMessage = "Email & password does not match with our record"

type AuthHandler struct {
	useCase auth.AuthUseCase
	users   auth.UserRepository
}

func NewAuthHandler(useCase auth.AuthUseCase, users auth.UserRepository) *AuthHandler {
	return &AuthHandler{useCase: useCase, users: users}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles user registration and returns a fresh access token.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router  /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	// A malformed body falls through with zero values; the validator
	// then reports every field as missing, matching the 400 contract.
	_ = c.BodyParser(&req)

	errs := validation.Check(req)
	if !errs.Any() {
		if _, err := h.users.GetByEmail(c.Context(), req.Email); err == nil {
			errs.Add("email", "The email has already been taken.")
		}
	}
	if errs.Any() {
		return presenter.FailValidation(c, errs)
	}

	result, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			// Lost the race to a concurrent registration after the
			// uniqueness pre-check passed; same envelope either way.
			errs.Add("email", "The email has already been taken.")
			return presenter.FailValidation(c, errs)
		}
		return presenter.FailInternal(c, "failed to create user")
	}

	return presenter.Success(c, http.StatusCreated, "User created successfully", fiber.Map{
		"token": result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a fresh access token.
// Earlier tokens stay valid; one user may hold several live sessions.
// @Summary Login user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	_ = c.BodyParser(&req)

	if errs := validation.Check(req); errs.Any() {
		return presenter.FailValidation(c, errs)
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password, so the
			// response cannot be used to enumerate accounts.
			return presenter.Fail(c, http.StatusUnauthorized, credentialMismatchMessage)
		}
		return presenter.FailInternal(c, "failed to login")
	}

	return presenter.Success(c, http.StatusOK, "User logged in successfully", fiber.Map{
		"token": result.Token,
	})
}

// Profile returns the authenticated user's record.
// @Summary User profile
// @Tags    account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router  /profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := token.CurrentUser(c)
	if !ok {
		return presenter.Fail(c, http.StatusUnauthorized, "unauthenticated")
	}
	return presenter.Success(c, http.StatusOK, "Profile information", fiber.Map{
		"data": user,
		"id":   user.ID,
	})
}

// Logout revokes every access token owned by the authenticated user,
// ending all of their active sessions, not just the presenting one.
// @Summary Logout user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router  /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, ok := token.CurrentUser(c)
	if !ok {
		return presenter.Fail(c, http.StatusUnauthorized, "unauthenticated")
	}
	if err := h.useCase.Logout(c.Context(), user.ID); err != nil {
		return presenter.FailInternal(c, "failed to logout")
	}
	return presenter.Success(c, http.StatusOK, "User logged out", fiber.Map{
		"data": []any{},
	})
}
