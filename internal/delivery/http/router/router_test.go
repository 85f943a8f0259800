package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"sharecare/internal/delivery/http/middleware"
	"sharecare/internal/delivery/http/router/handler"
	mockSvc "sharecare/internal/mocks/service"
)

func registeredRoutes(t *testing.T) map[string]bool {
	tokenSvc := mockSvc.NewMockTokenService(t)

	r := NewRouter(RouterParams{
		UserHandler:         handler.NewUserHandler(nil),
		ItemHandler:         handler.NewItemHandler(nil),
		ReservationHandler:  handler.NewReservationHandler(nil),
		TrackingHandler:     handler.NewTrackingHandler(nil),
		ChatHandler:         handler.NewChatHandler(nil),
		NotificationHandler: handler.NewNotificationHandler(nil),
		AdminHandler:        handler.NewAdminHandler(nil),
		UploadHandler:       handler.NewUploadHandler(nil),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	routes := map[string]bool{}
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRegisterRoutes_ChatImagePath(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes[http.MethodPost+" /api/v1/chats/:id/messages/image"])
	assert.False(t, routes[http.MethodPost+" /api/v1/chats/:id/images"])
}

func TestRegisterRoutes_AdminConsole(t *testing.T) {
	routes := registeredRoutes(t)

	tests := []string{
		http.MethodGet + " /api/v1/admin/profile",
		http.MethodPost + " /api/v1/admin/logout",
		http.MethodGet + " /api/v1/admin/demand-areas",
		http.MethodGet + " /api/v1/admin/users/:uid/items",
		http.MethodGet + " /api/v1/admin/notifications/:id",
		http.MethodGet + " /api/v1/admin/statistics",
	}

	for _, route := range tests {
		assert.True(t, routes[route], route)
	}
}

func TestRegisterRoutes_Upload(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes[http.MethodPost+" /api/v1/upload"])
}
