package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	"sharecare/internal/domain/service"
	"sharecare/internal/usecase"
)

type trackingService struct {
	trackingRepo    repository.TrackingRepository
	reservationRepo repository.ReservationRepository
	itemRepo        repository.ItemRepository
	userRepo        repository.UserRepository
	qrcodeService   service.QRCodeService
	notifications   usecase.NotificationUsecase
	mailService     service.MailService
	logger          *slog.Logger
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	TrackingRepo    repository.TrackingRepository
	ReservationRepo repository.ReservationRepository
	ItemRepo        repository.ItemRepository
	UserRepo        repository.UserRepository
	QRCodeService   service.QRCodeService
	Notifications   usecase.NotificationUsecase
	MailService     service.MailService
	Logger          *slog.Logger
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		trackingRepo:    params.TrackingRepo,
		reservationRepo: params.ReservationRepo,
		itemRepo:        params.ItemRepo,
		userRepo:        params.UserRepo,
		qrcodeService:   params.QRCodeService,
		notifications:   params.Notifications,
		mailService:     params.MailService,
		logger:          params.Logger,
	}
}

// Get retrieves a tracking record with its item and reservation; parties only.
func (s *trackingService) Get(ctx context.Context, uid, trackingID string) (*usecase.TrackingDetail, error) {
	record, err := s.findRecord(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if record.DonorID != uid && record.RequesterID != uid {
		return nil, domainerrors.ErrForbidden
	}

	detail := &usecase.TrackingDetail{
		Record:            record,
		StatusDefinitions: entity.TrackingStatusDefinitions,
	}
	if item, err := s.itemRepo.FindByID(ctx, record.ItemID); err == nil {
		detail.Item = item
	}
	if reservation, err := s.reservationRepo.FindByID(ctx, record.ReservationID); err == nil {
		detail.Reservation = reservation
	}

	return detail, nil
}

// Advance appends a status event; donor only.
func (s *trackingService) Advance(ctx context.Context, uid, trackingID string, input *usecase.AdvanceTrackingInput) (*entity.TrackingRecord, error) {
	status := entity.TrackingStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidTrackingStatus.WithDetails(
			fmt.Sprintf("unknown status %q", input.Status))
	}

	record, err := s.findRecord(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if record.DonorID != uid {
		return nil, domainerrors.ErrForbidden
	}

	now := time.Now()
	record.Append(entity.TrackingEvent{
		Status:    status,
		Timestamp: now,
		Notes:     input.Notes,
		UpdatedBy: uid,
	})

	if err := s.trackingRepo.Update(ctx, record.TrackingID, map[string]any{
		"current_status": string(record.CurrentStatus),
		"status_history": record.StatusHistory,
		"updated_at":     now,
	}); err != nil {
		return nil, err
	}

	if status == entity.TrackingPickedUp || status == entity.TrackingCompleted {
		s.completeReservation(ctx, record, now)
	}

	info := entity.TrackingStatusDefinitions[status]
	if _, err := s.notifications.Notify(ctx, entity.TargetedTo(record.RequesterID),
		info.Title,
		fmt.Sprintf("Tracking %s: %s", record.TrackingID, info.Description),
		"tracking_update"); err != nil {
		s.logger.WarnContext(ctx, "tracking notification failed",
			slog.String("tracking_id", record.TrackingID), slog.Any("error", err))
	}

	if requester, err := s.userRepo.FindByUID(ctx, record.RequesterID); err == nil {
		itemName := ""
		if item, err := s.itemRepo.FindByID(ctx, record.ItemID); err == nil {
			itemName = item.Name
		}
		if err := s.mailService.SendTrackingUpdate(ctx, requester.Email, requester.FullName, itemName, record.TrackingID, info.Title); err != nil {
			s.logger.WarnContext(ctx, "tracking email failed",
				slog.String("tracking_id", record.TrackingID), slog.Any("error", err))
		}
	}

	return record, nil
}

// completeReservation settles the reservation and item once the record
// reaches picked_up or completed. Failures are logged; the tracking advance
// already happened.
func (s *trackingService) completeReservation(ctx context.Context, record *entity.TrackingRecord, now time.Time) {
	reservation, err := s.reservationRepo.FindByID(ctx, record.ReservationID)
	if err != nil {
		s.logger.WarnContext(ctx, "reservation lookup failed on tracking completion",
			slog.String("tracking_id", record.TrackingID), slog.Any("error", err))

		return
	}

	if reservation.Status != entity.ReservationStatusPickedUp {
		if err := s.reservationRepo.Update(ctx, reservation.ID, map[string]any{
			"status":       string(entity.ReservationStatusPickedUp),
			"picked_up_at": now,
			"completed_at": now,
			"updated_at":   now,
		}); err != nil {
			s.logger.WarnContext(ctx, "reservation completion failed",
				slog.String("tracking_id", record.TrackingID), slog.Any("error", err))

			return
		}
	}

	item, err := s.itemRepo.FindByID(ctx, record.ItemID)
	if err != nil {
		return
	}
	if !item.IsBulkItem && item.Status != entity.ItemStatusDonated {
		if err := s.itemRepo.Update(ctx, item.ID, map[string]any{
			"status":     string(entity.ItemStatusDonated),
			"updated_at": now,
		}); err != nil {
			s.logger.WarnContext(ctx, "item settlement failed on tracking completion",
				slog.String("tracking_id", record.TrackingID), slog.Any("error", err))
		}
	}
}

// QR renders the tracking ID as a PNG QR code.
func (s *trackingService) QR(ctx context.Context, trackingID string) ([]byte, error) {
	record, err := s.findRecord(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	return s.qrcodeService.GenerateTrackingQR(record.TrackingID)
}

// ListForUser returns records where the caller is the requester.
func (s *trackingService) ListForUser(ctx context.Context, uid string) ([]*entity.TrackingRecord, error) {
	records, err := s.trackingRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	filtered := records[:0:0]
	for _, record := range records {
		if record.RequesterID == uid {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

// ListForDonor returns records where the caller is the donor.
func (s *trackingService) ListForDonor(ctx context.Context, uid string) ([]*entity.TrackingRecord, error) {
	records, err := s.trackingRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	filtered := records[:0:0]
	for _, record := range records {
		if record.DonorID == uid {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

// findRecord resolves a tracking ID case-insensitively.
func (s *trackingService) findRecord(ctx context.Context, trackingID string) (*entity.TrackingRecord, error) {
	record, err := s.trackingRepo.FindByTrackingID(ctx, strings.ToUpper(strings.TrimSpace(trackingID)))
	if err != nil {
		if errors.Is(err, repository.ErrTrackingNotFound) {
			return nil, domainerrors.ErrTrackingNotFound
		}

		return nil, err
	}

	return record, nil
}
