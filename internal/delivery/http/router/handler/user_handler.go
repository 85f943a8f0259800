package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// UserHandler holds dependencies for identity and profile handlers
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// VerifyAuth resolves the caller's bearer identity to their profile
func (h *UserHandler) VerifyAuth(c echo.Context) error {
	user, err := h.uc.VerifyAuth(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Authenticated")
}

// AdminLoginRequest represents the request body for the admin console login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges admin credentials for a session token
func (h *UserHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.uc.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Login successful")
}

// CreateProfile registers a profile for the caller
func (h *UserHandler) CreateProfile(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, created, err := h.uc.CreateProfile(c.Request().Context(), uidFrom(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	if !created {
		return response.Success(c, http.StatusOK, user, "Profile already exists")
	}

	return response.Success(c, http.StatusCreated, user, "Profile created successfully")
}

// GetProfile retrieves the caller's own profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to the caller's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), uidFrom(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// GetPublicProfile retrieves another user's profile with activity stats
func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetStatus retrieves a user's presence
func (h *UserHandler) GetStatus(c echo.Context) error {
	status, err := h.uc.GetStatus(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Status retrieved successfully")
}

// UpdateStatus records a presence heartbeat for the caller
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	var req usecase.UpdateStatusInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), uidFrom(c), &req); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully")
}
