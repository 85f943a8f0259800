package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// NotificationHandler holds dependencies for the notification feed handlers
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns the caller's notifications, newest first
func (h *NotificationHandler) List(c echo.Context) error {
	page := intQueryParam(c, "page", 1)
	limit := intQueryParam(c, "limit", 20)

	result, err := h.uc.List(c.Request().Context(), uidFrom(c), page, limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notifications retrieved successfully")
}

// Get retrieves one notification the caller may see
func (h *NotificationHandler) Get(c echo.Context) error {
	notification, err := h.uc.Get(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification retrieved successfully")
}

// MarkRead adds the caller to the notification's read set
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead marks every visible unread notification read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	updated, err := h.uc.MarkAllRead(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": updated}, "Notifications marked as read")
}

// Delete removes a notification targeted at the caller
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}

// UnreadCount counts the caller's visible unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread_count": count}, "Unread count retrieved successfully")
}

// intQueryParam parses a positive integer query parameter with a fallback.
func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
