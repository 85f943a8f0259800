// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sharecare/internal/delivery/http/middleware"
	"sharecare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ItemHandler         *handler.ItemHandler
	ReservationHandler  *handler.ReservationHandler
	TrackingHandler     *handler.TrackingHandler
	ChatHandler         *handler.ChatHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	itemHandler         *handler.ItemHandler
	reservationHandler  *handler.ReservationHandler
	trackingHandler     *handler.TrackingHandler
	chatHandler         *handler.ChatHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	uploadHandler       *handler.UploadHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		itemHandler:         params.ItemHandler,
		reservationHandler:  params.ReservationHandler,
		trackingHandler:     params.TrackingHandler,
		chatHandler:         params.ChatHandler,
		notificationHandler: params.NotificationHandler,
		adminHandler:        params.AdminHandler,
		uploadHandler:       params.UploadHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Standalone file upload
	api.POST("/upload", r.uploadHandler.Upload, r.authMiddleware.Authenticate)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/verify", r.userHandler.VerifyAuth, r.authMiddleware.Authenticate)
		authGroup.POST("/admin/login", r.userHandler.AdminLogin)
	}

	// Caller-scoped routes
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/create", r.userHandler.CreateProfile)
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.PUT("/status", r.userHandler.UpdateStatus)
		userGroup.GET("/donations", r.itemHandler.ListDonations)
		userGroup.GET("/favorites", r.itemHandler.ListFavorites)
		userGroup.GET("/reservations", r.reservationHandler.ListMine)
		userGroup.GET("/pickups", r.reservationHandler.ListPickups)
		userGroup.GET("/tracking", r.trackingHandler.ListMine)
	}

	// Other users' public profiles
	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/:uid", r.userHandler.GetPublicProfile)
		usersGroup.GET("/:uid/status", r.userHandler.GetStatus)
	}

	// Donor-side views
	donorGroup := api.Group("/donor")
	donorGroup.Use(r.authMiddleware.Authenticate)
	{
		donorGroup.GET("/reservations", r.reservationHandler.ListForDonor)
		donorGroup.GET("/tracking", r.trackingHandler.ListForDonor)
	}

	// Donation catalogue
	itemGroup := api.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.GET("", r.itemHandler.List)
		itemGroup.POST("", r.itemHandler.Create)
		itemGroup.GET("/search", r.itemHandler.Search)
		itemGroup.GET("/category/:category", r.itemHandler.ListByCategory)
		itemGroup.GET("/:id", r.itemHandler.Get)
		itemGroup.PUT("/:id", r.itemHandler.Update)
		itemGroup.DELETE("/:id", r.itemHandler.Delete)
		itemGroup.POST("/:id/images", r.itemHandler.UploadImages)
		itemGroup.POST("/:id/reserve", r.reservationHandler.Reserve)
		itemGroup.POST("/:id/pickup", r.reservationHandler.Pickup)
		itemGroup.GET("/:id/requests", r.reservationHandler.ListForItem)
		itemGroup.POST("/:id/like", r.itemHandler.Like)
		itemGroup.DELETE("/:id/like", r.itemHandler.Unlike)
		itemGroup.POST("/:id/favorite", r.itemHandler.Favorite)
		itemGroup.DELETE("/:id/favorite", r.itemHandler.Unfavorite)
		itemGroup.POST("/:id/report", r.itemHandler.Report)
	}

	// Reservation workflow
	reservationGroup := api.Group("/reservations")
	reservationGroup.Use(r.authMiddleware.Authenticate)
	{
		reservationGroup.POST("", r.reservationHandler.Reserve)
		reservationGroup.GET("/:id", r.reservationHandler.Get)
		reservationGroup.PUT("/:id/status", r.reservationHandler.Decide)
		reservationGroup.DELETE("/:id", r.reservationHandler.Cancel)
	}

	// Pickup tracking
	trackingGroup := api.Group("/tracking")
	trackingGroup.Use(r.authMiddleware.Authenticate)
	{
		trackingGroup.GET("/:trackingId", r.trackingHandler.Get)
		trackingGroup.PUT("/:trackingId/status", r.trackingHandler.Advance)
		trackingGroup.GET("/:trackingId/qr", r.trackingHandler.QR)
	}

	// Donor-requester messaging
	chatGroup := api.Group("/chats")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.GET("", r.chatHandler.List)
		chatGroup.GET("/unread-count", r.chatHandler.UnreadCount)
		chatGroup.GET("/:id/messages", r.chatHandler.Messages)
		chatGroup.POST("/:id/messages", r.chatHandler.SendText)
		chatGroup.POST("/:id/messages/image", r.chatHandler.SendImage)
		chatGroup.PUT("/:id/messages/read", r.chatHandler.MarkRead)
	}

	// Notification feed
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.GET("/:id", r.notificationHandler.Get)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.Delete)
	}

	// Moderation console
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.AuthenticateAdmin)
	{
		adminGroup.GET("/profile", r.adminHandler.Profile)
		adminGroup.POST("/logout", r.adminHandler.Logout)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:uid/status", r.adminHandler.SetUserStatus)
		adminGroup.DELETE("/users/:uid", r.adminHandler.DeleteUser)
		adminGroup.GET("/users/:uid/items", r.adminHandler.UserItems)
		adminGroup.GET("/items", r.adminHandler.ListItems)
		adminGroup.GET("/items/:id", r.adminHandler.GetItem)
		adminGroup.PUT("/items/:id", r.adminHandler.UpdateItem)
		adminGroup.PUT("/items/:id/verify", r.adminHandler.VerifyItem)
		adminGroup.DELETE("/items/:id", r.adminHandler.DeleteItem)
		adminGroup.POST("/items/bulk-delete", r.adminHandler.BulkDeleteItems)
		adminGroup.GET("/statistics", r.adminHandler.Statistics)
		adminGroup.GET("/demand-areas", r.adminHandler.DemandAreas)
		adminGroup.POST("/notifications", r.adminHandler.SendNotification)
		adminGroup.GET("/notifications", r.adminHandler.ListNotifications)
		adminGroup.GET("/notifications/:id", r.adminHandler.GetNotification)
		adminGroup.DELETE("/notifications/:id", r.adminHandler.DeleteNotification)
		adminGroup.POST("/notifications/:id/resend", r.adminHandler.ResendNotification)
		adminGroup.GET("/reports", r.adminHandler.ListReports)
		adminGroup.PUT("/reports/:id/resolve", r.adminHandler.ResolveReport)
	}
}
