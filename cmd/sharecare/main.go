package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sharecare/config"
	"sharecare/internal/delivery"
	"sharecare/internal/delivery/http"
	"sharecare/internal/delivery/http/middleware"
	"sharecare/internal/delivery/http/router/handler"
	"sharecare/internal/domain/service"
	"sharecare/internal/infra/auth"
	logs "sharecare/internal/infra/log"
	"sharecare/internal/infra/mail"
	"sharecare/internal/infra/persistence/firestore"
	"sharecare/internal/infra/qrcode"
	"sharecare/internal/infra/storage"
	"sharecare/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewItemRepository,
			firestore.NewReservationRepository,
			firestore.NewTrackingRepository,
			firestore.NewChatRepository,
			firestore.NewNotificationRepository,
			firestore.NewAdminNotificationRepository,
			firestore.NewEngagementRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPService,
			newQRCodeService,
			newBlobService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newBlobService opens the blob bucket and ties its cleanup to the fx
// lifecycle
func newBlobService(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.BlobService, error) {
	svc, cleanup, err := storage.NewBlobService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob bucket: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(cleanup())
		},
	})

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewItemService,
			impl.NewReservationService,
			impl.NewTrackingService,
			impl.NewChatService,
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewItemHandler,
			handler.NewReservationHandler,
			handler.NewTrackingHandler,
			handler.NewChatHandler,
			handler.NewNotificationHandler,
			handler.NewAdminHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
