package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// ChatHandler holds dependencies for donor-requester messaging handlers
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// List returns the caller's conversations
func (h *ChatHandler) List(c echo.Context) error {
	chats, err := h.uc.List(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats, "Chats retrieved successfully")
}

// Messages returns a chat's messages in chronological order; parties only
func (h *ChatHandler) Messages(c echo.Context) error {
	messages, err := h.uc.Messages(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// SendText posts a text message to a chat; parties only
func (h *ChatHandler) SendText(c echo.Context) error {
	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendText(c.Request().Context(), uidFrom(c), c.Param("id"), &req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// SendImage stores an uploaded image and posts it as a message
func (h *ChatHandler) SendImage(c echo.Context) error {
	uploads, err := readUploads(c, "image")
	if err != nil {
		return err
	}
	if len(uploads) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "An image file is required")
	}

	message, err := h.uc.SendImage(c.Request().Context(), uidFrom(c), c.Param("id"), &uploads[0])
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Image sent successfully")
}

// MarkRead marks the counterparty's messages read
func (h *ChatHandler) MarkRead(c echo.Context) error {
	updated, err := h.uc.MarkRead(c.Request().Context(), uidFrom(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": updated}, "Messages marked as read")
}

// UnreadCount counts unread counterparty messages across the caller's chats
func (h *ChatHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), uidFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread_count": count}, "Unread count retrieved successfully")
}
