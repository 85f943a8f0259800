package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// ReservationHandler holds dependencies for the reservation workflow handlers
type ReservationHandler struct {
	uc usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(uc usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Reserve creates a pending reservation for the caller
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req usecase.ReserveInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// The item may come from the path or the body.
	if itemID := c.Param("id"); itemID != "" {
		req.ItemID = itemID
	}
	if req.ItemID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "item_id is required")
	}

	reservation, err := h.uc.Reserve(c.Request().Context(), uidFrom(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation requested successfully")
}

// Decide lets the donor approve or decline a pending reservation
func (h *ReservationHandler) Decide(c echo.Context) error {
	var req usecase.ReservationDecision
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reservation, err := h.uc.Decide(c.Request().Context(), uidFrom(c), c.Param("id"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation updated successfully")
}

// Cancel lets the requester withdraw their reservation
func (h *ReservationHandler) Cancel(c echo.Context) error {
	if err := h.uc.Cancel(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation cancelled successfully")
}

// Pickup lets the requester confirm collection of an approved item
func (h *ReservationHandler) Pickup(c echo.Context) error {
	reservation, err := h.uc.Pickup(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation, "Pickup confirmed successfully")
}

// Get retrieves a reservation with its item; parties only
func (h *ReservationHandler) Get(c echo.Context) error {
	detail, err := h.uc.Get(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Reservation retrieved successfully")
}

// ListMine returns the caller's reservations
func (h *ReservationHandler) ListMine(c echo.Context) error {
	reservations, err := h.uc.ListForRequester(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "Reservations retrieved successfully")
}

// ListForDonor returns reservations on the caller's items
func (h *ReservationHandler) ListForDonor(c echo.Context) error {
	reservations, err := h.uc.ListForDonor(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "Reservations retrieved successfully")
}

// ListPickups returns the caller's completed pickups
func (h *ReservationHandler) ListPickups(c echo.Context) error {
	reservations, err := h.uc.ListPickups(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "Pickups retrieved successfully")
}

// ListForItem returns the reservations on one item; donor only
func (h *ReservationHandler) ListForItem(c echo.Context) error {
	reservations, err := h.uc.ListForItem(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "Requests retrieved successfully")
}
