package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// TrackingHandler holds dependencies for pickup tracking handlers
type TrackingHandler struct {
	uc usecase.TrackingUsecase
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(uc usecase.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// Get retrieves a tracking record with its item and reservation; parties only
func (h *TrackingHandler) Get(c echo.Context) error {
	detail, err := h.uc.Get(c.Request().Context(), uidFrom(c), c.Param("trackingId"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Tracking retrieved successfully")
}

// Advance appends a status event to a tracking record; donor only
func (h *TrackingHandler) Advance(c echo.Context) error {
	var req usecase.AdvanceTrackingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.Advance(c.Request().Context(), uidFrom(c), c.Param("trackingId"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Tracking updated successfully")
}

// QR renders the tracking ID as a PNG QR code
func (h *TrackingHandler) QR(c echo.Context) error {
	png, err := h.uc.QR(c.Request().Context(), c.Param("trackingId"))
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMine returns records where the caller is the requester
func (h *TrackingHandler) ListMine(c echo.Context) error {
	records, err := h.uc.ListForUser(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Tracking records retrieved successfully")
}

// ListForDonor returns records where the caller is the donor
func (h *TrackingHandler) ListForDonor(c echo.Context) error {
	records, err := h.uc.ListForDonor(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Tracking records retrieved successfully")
}
