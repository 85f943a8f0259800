package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// AdminHandler holds dependencies for the moderation console handlers
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers returns one page of the moderation user list
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var query usecase.AdminUserQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	page, err := h.uc.ListUsers(c.Request().Context(), &query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Users retrieved successfully")
}

// SetUserStatusRequest represents the request body for banning or reinstating
// a user
type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetUserStatus bans or reinstates a user
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	var req SetUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.SetUserStatus(c.Request().Context(), c.Param("uid"), *req.IsActive)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User status updated successfully")
}

// DeleteUser removes a user with their items, reservations and likes
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("uid")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// UserItems returns one user's donations and reservations
func (h *AdminHandler) UserItems(c echo.Context) error {
	activity, err := h.uc.UserItems(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity, "User items retrieved successfully")
}

// ListItems returns one page of the moderation item list
func (h *AdminHandler) ListItems(c echo.Context) error {
	var query usecase.AdminItemQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item query")
	}

	page, err := h.uc.ListItems(c.Request().Context(), &query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Items retrieved successfully")
}

// GetItem retrieves one item without touching its counters
func (h *AdminHandler) GetItem(c echo.Context) error {
	item, err := h.uc.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// UpdateItem applies a partial update without an ownership check
func (h *AdminHandler) UpdateItem(c echo.Context) error {
	var req usecase.UpdateItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated successfully")
}

// VerifyItemRequest represents the request body for toggling the verified
// badge
type VerifyItemRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// VerifyItem toggles the item's verified badge
func (h *AdminHandler) VerifyItem(c echo.Context) error {
	var req VerifyItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.VerifyItem(c.Request().Context(), c.Param("id"), *req.Verified)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item verification updated successfully")
}

// DeleteItem removes an item with its reservations and likes
func (h *AdminHandler) DeleteItem(c echo.Context) error {
	if err := h.uc.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}

// BulkDeleteItems removes several items in one sweep
func (h *AdminHandler) BulkDeleteItems(c echo.Context) error {
	var req usecase.BulkDeleteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deleted, err := h.uc.BulkDeleteItems(c.Request().Context(), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"deleted": deleted}, "Items deleted successfully")
}

// Statistics computes the moderation dashboard summary
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// DemandAreas ranks reservation locations for the moderation map
func (h *AdminHandler) DemandAreas(c echo.Context) error {
	areas, err := h.uc.DemandAreas(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"demand_areas": areas,
		"total_areas":  len(areas),
	}, "Demand areas retrieved successfully")
}

// Profile returns the signed-in admin's identity
func (h *AdminHandler) Profile(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"email": adminEmailFrom(c),
		"role":  "admin",
	}, "Admin profile retrieved successfully")
}

// Logout acknowledges an admin sign-out. Admin sessions are stateless JWTs,
// so the client simply discards its token.
func (h *AdminHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Admin logged out successfully")
}

// SendNotification publishes a notification to the given audience
func (h *AdminHandler) SendNotification(c echo.Context) error {
	var req usecase.SendNotificationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.SendNotification(c.Request().Context(), adminEmailFrom(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Notification sent successfully")
}

// ListNotifications returns the admin audit records, newest first
func (h *AdminHandler) ListNotifications(c echo.Context) error {
	records, err := h.uc.ListNotifications(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Notifications retrieved successfully")
}

// GetNotification returns one audit record with its delivery statistics
func (h *AdminHandler) GetNotification(c echo.Context) error {
	detail, err := h.uc.GetNotification(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Notification retrieved successfully")
}

// DeleteNotification removes an audit record and its user-facing copy
func (h *AdminHandler) DeleteNotification(c echo.Context) error {
	if err := h.uc.DeleteNotification(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}

// ResendNotification publishes a fresh copy of a previously sent notification
func (h *AdminHandler) ResendNotification(c echo.Context) error {
	record, err := h.uc.ResendNotification(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Notification resent successfully")
}

// ListReports returns moderation reports, optionally filtered by status
func (h *AdminHandler) ListReports(c echo.Context) error {
	reports, err := h.uc.ListReports(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "Reports retrieved successfully")
}

// ResolveReport closes a report
func (h *AdminHandler) ResolveReport(c echo.Context) error {
	report, err := h.uc.ResolveReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Report resolved successfully")
}
