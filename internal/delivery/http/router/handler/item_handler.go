package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// ItemHandler holds dependencies for donation catalogue handlers
type ItemHandler struct {
	uc usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(uc usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List returns one page of the item feed with the caller's dashboard counters
func (h *ItemHandler) List(c echo.Context) error {
	var query usecase.ItemListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), uidFrom(c), &query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Items retrieved successfully")
}

// Create posts a donation on behalf of the caller
func (h *ItemHandler) Create(c echo.Context) error {
	var req usecase.CreateItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.Create(c.Request().Context(), uidFrom(c), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Item created successfully")
}

// Get retrieves one item and bumps its view counter
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// Update applies a partial update; owner only
func (h *ItemHandler) Update(c echo.Context) error {
	var req usecase.UpdateItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	item, err := h.uc.Update(c.Request().Context(), uidFrom(c), c.Param("id"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated successfully")
}

// Delete removes the item with its reservations and likes; owner only
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}

// UploadImages stores uploaded images and appends their URLs to the item
func (h *ItemHandler) UploadImages(c echo.Context) error {
	uploads, err := readUploads(c, "images")
	if err != nil {
		return err
	}
	if len(uploads) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "At least one image file is required")
	}

	item, err := h.uc.AddImages(c.Request().Context(), uidFrom(c), c.Param("id"), uploads)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Images uploaded successfully")
}

// Search filters available items by text, category and an optional radius
func (h *ItemHandler) Search(c echo.Context) error {
	var query usecase.ItemSearchQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}

	items, err := h.uc.Search(c.Request().Context(), &query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}

// ListByCategory returns available items in a category
func (h *ItemHandler) ListByCategory(c echo.Context) error {
	items, err := h.uc.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}

// Like records a like; a duplicate like is a conflict
func (h *ItemHandler) Like(c echo.Context) error {
	item, err := h.uc.Like(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Item liked")
}

// Unlike withdraws a like; withdrawing a missing like is a conflict
func (h *ItemHandler) Unlike(c echo.Context) error {
	item, err := h.uc.Unlike(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Like removed")
}

// Favorite bookmarks an item for the caller
func (h *ItemHandler) Favorite(c echo.Context) error {
	if err := h.uc.Favorite(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item added to favorites")
}

// Unfavorite removes the caller's bookmark
func (h *ItemHandler) Unfavorite(c echo.Context) error {
	if err := h.uc.Unfavorite(c.Request().Context(), uidFrom(c), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from favorites")
}

// ListFavorites returns the caller's bookmarked items
func (h *ItemHandler) ListFavorites(c echo.Context) error {
	items, err := h.uc.ListFavorites(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Favorites retrieved successfully")
}

// ListDonations returns the items posted by the caller
func (h *ItemHandler) ListDonations(c echo.Context) error {
	items, err := h.uc.ListDonations(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Donations retrieved successfully")
}

// Report files a moderation report against an item
func (h *ItemHandler) Report(c echo.Context) error {
	var req usecase.ReportItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.uc.Report(c.Request().Context(), uidFrom(c), c.Param("id"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report, "Report submitted successfully")
}
