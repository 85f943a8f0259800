package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	"sharecare/internal/domain/service"
	"sharecare/internal/usecase"
	"sharecare/internal/util"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	itemRepo        repository.ItemRepository
	userRepo        repository.UserRepository
	trackingRepo    repository.TrackingRepository
	chatRepo        repository.ChatRepository
	notifications   usecase.NotificationUsecase
	mailService     service.MailService
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	ItemRepo        repository.ItemRepository
	UserRepo        repository.UserRepository
	TrackingRepo    repository.TrackingRepository
	ChatRepo        repository.ChatRepository
	Notifications   usecase.NotificationUsecase
	MailService     service.MailService
	Logger          *slog.Logger
}

// NewReservationService creates a new reservation service instance
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		itemRepo:        params.ItemRepo,
		userRepo:        params.UserRepo,
		trackingRepo:    params.TrackingRepo,
		chatRepo:        params.ChatRepo,
		notifications:   params.Notifications,
		mailService:     params.MailService,
		logger:          params.Logger,
	}
}

// Reserve creates a pending reservation for the caller, notifying the donor.
func (s *reservationService) Reserve(ctx context.Context, uid string, input *usecase.ReserveInput) (*entity.Reservation, error) {
	item, err := s.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	if item.Status != entity.ItemStatusAvailable {
		return nil, domainerrors.ErrItemUnavailable
	}
	if item.DonorID == uid {
		return nil, domainerrors.ErrSelfReservation
	}

	requester, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	now := time.Now()
	reservation := &entity.Reservation{
		ItemID:            item.ID,
		ItemName:          item.Name,
		UserID:            requester.UID,
		UserName:          requester.FullName,
		DonorID:           item.DonorID,
		Message:           input.Message,
		RequestedQuantity: quantity,
		Status:            entity.ReservationStatusPending,
		Location:          item.Location,
		Item: entity.ItemSummary{
			Name:        item.Name,
			Category:    item.Category,
			Images:      item.Images,
			PickupTimes: item.PickupTimes,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.notify(ctx, entity.TargetedTo(item.DonorID),
		"New reservation request",
		fmt.Sprintf("%s wants to pick up \"%s\"", requester.FullName, item.Name),
		"reservation_request")

	if donor, err := s.userRepo.FindByUID(ctx, item.DonorID); err == nil {
		if err := s.mailService.SendReservationRequest(ctx, donor.Email, donor.FullName, requester.FullName, item.Name); err != nil {
			s.logger.WarnContext(ctx, "reservation request email failed",
				slog.String("reservation_id", reservation.ID), slog.Any("error", err))
		}
	}

	return reservation, nil
}

// Decide lets the donor approve or decline a pending reservation.
//
// Approval reads the item and writes it back without a transaction, the same
// read-modify-write the rest of the workflow uses. Two concurrent approvals
// on the last unit of a bulk item can both succeed; the store offers no
// cross-document guard and the donor-side UI serializes decisions in
// practice.
func (s *reservationService) Decide(ctx context.Context, donorUID, reservationID string, decision *usecase.ReservationDecision) (*entity.Reservation, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.DonorID != donorUID {
		return nil, domainerrors.ErrForbidden
	}
	if reservation.Status != entity.ReservationStatusPending {
		return nil, domainerrors.ErrInvalidReservationStatus.WithDetails(
			"only pending reservations can be decided")
	}

	switch entity.ReservationStatus(decision.Status) {
	case entity.ReservationStatusApproved:
		return s.approve(ctx, reservation)
	case entity.ReservationStatusDeclined:
		return s.decline(ctx, reservation)
	default:
		return nil, domainerrors.ErrInvalidReservationStatus
	}
}

func (s *reservationService) approve(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	item, err := s.itemRepo.FindByID(ctx, reservation.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	now := time.Now()
	trackingID := util.NewTrackingID(now)

	record := &entity.TrackingRecord{
		TrackingID:    trackingID,
		ReservationID: reservation.ID,
		ItemID:        item.ID,
		DonorID:       reservation.DonorID,
		RequesterID:   reservation.UserID,
		CreatedAt:     now,
	}
	record.Append(entity.TrackingEvent{
		Status:    entity.TrackingRequestSubmitted,
		Timestamp: reservation.CreatedAt,
		Notes:     "Reservation request submitted",
		UpdatedBy: reservation.UserID,
	})
	record.Append(entity.TrackingEvent{
		Status:    entity.TrackingRequestAccepted,
		Timestamp: now,
		Notes:     "Reservation approved by donor",
		UpdatedBy: reservation.DonorID,
	})

	if err := s.trackingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Update(ctx, reservation.ID, map[string]any{
		"status":      string(entity.ReservationStatusApproved),
		"tracking_id": trackingID,
		"updated_at":  now,
	}); err != nil {
		return nil, err
	}
	reservation.Status = entity.ReservationStatusApproved
	reservation.TrackingID = trackingID
	reservation.UpdatedAt = now

	if err := s.settleItemOnApproval(ctx, item, reservation.RequestedQuantity); err != nil {
		return nil, err
	}

	if err := s.declineCompetitors(ctx, reservation); err != nil {
		return nil, err
	}

	s.openChat(ctx, reservation)

	s.notify(ctx, entity.TargetedTo(reservation.UserID),
		"Request approved",
		fmt.Sprintf("Your request for \"%s\" was approved. Tracking ID: %s", reservation.ItemName, trackingID),
		"reservation_approved")

	if requester, err := s.userRepo.FindByUID(ctx, reservation.UserID); err == nil {
		if err := s.mailService.SendReservationConfirmation(ctx, requester.Email, requester.FullName, reservation.ItemName, trackingID); err != nil {
			s.logger.WarnContext(ctx, "reservation confirmation email failed",
				slog.String("reservation_id", reservation.ID), slog.Any("error", err))
		}
	}

	return reservation, nil
}

// settleItemOnApproval adjusts the item after an approval: a bulk item loses
// the requested quantity and becomes donated at zero, a single item becomes
// reserved.
func (s *reservationService) settleItemOnApproval(ctx context.Context, item *entity.Item, requestedQuantity int) error {
	updates := map[string]any{"updated_at": time.Now()}

	if item.IsBulkItem {
		remaining := item.Quantity - requestedQuantity
		if remaining < 0 {
			remaining = 0
		}
		updates["quantity"] = remaining
		if remaining <= 0 {
			updates["status"] = string(entity.ItemStatusDonated)
		}
	} else {
		updates["status"] = string(entity.ItemStatusReserved)
	}

	return s.itemRepo.Update(ctx, item.ID, updates)
}

// declineCompetitors force-declines every other pending reservation on the
// same item, notifying each requester.
func (s *reservationService) declineCompetitors(ctx context.Context, approved *entity.Reservation) error {
	item, err := s.itemRepo.FindByID(ctx, approved.ItemID)
	if err == nil && item.IsBulkItem && item.Quantity > 0 {
		// A bulk item with stock left keeps its other requests alive.
		return nil
	}

	pending, err := s.reservationRepo.List(ctx, repository.ReservationFilter{
		ItemID: approved.ItemID,
		Status: entity.ReservationStatusPending,
	})
	if err != nil {
		return err
	}

	now := time.Now()
	for _, competitor := range pending {
		if competitor.ID == approved.ID {
			continue
		}

		if err := s.reservationRepo.Update(ctx, competitor.ID, map[string]any{
			"status":     string(entity.ReservationStatusDeclined),
			"updated_at": now,
		}); err != nil {
			return err
		}

		s.notify(ctx, entity.TargetedTo(competitor.UserID),
			"Request declined",
			fmt.Sprintf("\"%s\" has been promised to another requester", competitor.ItemName),
			"reservation_declined")
	}

	return nil
}

// openChat creates the conversation for an approved reservation unless one
// already exists for the same item and parties.
func (s *reservationService) openChat(ctx context.Context, reservation *entity.Reservation) {
	_, err := s.chatRepo.FindByParties(ctx, reservation.ItemID, reservation.DonorID, reservation.UserID)
	if err == nil {
		return
	}
	if !errors.Is(err, repository.ErrChatNotFound) {
		s.logger.WarnContext(ctx, "chat lookup failed",
			slog.String("reservation_id", reservation.ID), slog.Any("error", err))

		return
	}

	chat := &entity.Chat{
		ReservationID: reservation.ID,
		ItemID:        reservation.ItemID,
		DonorID:       reservation.DonorID,
		RequesterID:   reservation.UserID,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		s.logger.WarnContext(ctx, "chat creation failed",
			slog.String("reservation_id", reservation.ID), slog.Any("error", err))
	}
}

func (s *reservationService) decline(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	now := time.Now()
	if err := s.reservationRepo.Update(ctx, reservation.ID, map[string]any{
		"status":     string(entity.ReservationStatusDeclined),
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	reservation.Status = entity.ReservationStatusDeclined
	reservation.UpdatedAt = now

	s.notify(ctx, entity.TargetedTo(reservation.UserID),
		"Request declined",
		fmt.Sprintf("Your request for \"%s\" was declined", reservation.ItemName),
		"reservation_declined")

	return reservation, nil
}

// Cancel lets the requester withdraw their reservation.
func (s *reservationService) Cancel(ctx context.Context, uid, reservationID string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != uid {
		return domainerrors.ErrForbidden
	}

	now := time.Now()
	if err := s.reservationRepo.Update(ctx, reservationID, map[string]any{
		"status":       string(entity.ReservationStatusCancelled),
		"cancelled_at": now,
		"updated_at":   now,
	}); err != nil {
		return err
	}

	// An approved single item goes back on the shelf.
	if reservation.Status == entity.ReservationStatusApproved {
		item, err := s.itemRepo.FindByID(ctx, reservation.ItemID)
		if err == nil && !item.IsBulkItem && item.Status == entity.ItemStatusReserved {
			if err := s.itemRepo.Update(ctx, item.ID, map[string]any{
				"status":     string(entity.ItemStatusAvailable),
				"updated_at": now,
			}); err != nil {
				return err
			}
		}
	}

	s.notify(ctx, entity.TargetedTo(reservation.DonorID),
		"Reservation cancelled",
		fmt.Sprintf("%s cancelled their request for \"%s\"", reservation.UserName, reservation.ItemName),
		"reservation_cancelled")

	return nil
}

// Pickup lets the requester confirm collection of an approved item.
func (s *reservationService) Pickup(ctx context.Context, uid, itemID string) (*entity.Reservation, error) {
	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{
		ItemID:      itemID,
		RequesterID: uid,
	})
	if err != nil {
		return nil, err
	}

	var target *entity.Reservation
	for _, reservation := range reservations {
		switch reservation.Status {
		case entity.ReservationStatusPickedUp:
			// Already collected; repeating the call changes nothing.
			return reservation, nil
		case entity.ReservationStatusApproved:
			target = reservation
		}
	}
	if target == nil {
		return nil, domainerrors.ErrReservationNotFound.WithDetails(
			"no approved reservation for this item")
	}

	now := time.Now()
	if err := s.reservationRepo.Update(ctx, target.ID, map[string]any{
		"status":       string(entity.ReservationStatusPickedUp),
		"picked_up_at": now,
		"completed_at": now,
		"updated_at":   now,
	}); err != nil {
		return nil, err
	}
	target.Status = entity.ReservationStatusPickedUp
	target.PickedUpAt = &now
	target.CompletedAt = &now
	target.UpdatedAt = now

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err == nil && item.Status != entity.ItemStatusDonated && !item.IsBulkItem {
		if err := s.itemRepo.Update(ctx, itemID, map[string]any{
			"status":     string(entity.ItemStatusDonated),
			"updated_at": now,
		}); err != nil {
			return nil, err
		}
	}

	if target.TrackingID != "" {
		s.advanceTrackingOnPickup(ctx, target, now)
	}

	s.notify(ctx, entity.TargetedTo(target.DonorID),
		"Item picked up",
		fmt.Sprintf("%s picked up \"%s\"", target.UserName, target.ItemName),
		"pickup_confirmed")

	return target, nil
}

// advanceTrackingOnPickup appends the picked_up event to the reservation's
// tracking record. A missing record is logged, not fatal.
func (s *reservationService) advanceTrackingOnPickup(ctx context.Context, reservation *entity.Reservation, now time.Time) {
	record, err := s.trackingRepo.FindByTrackingID(ctx, reservation.TrackingID)
	if err != nil {
		s.logger.WarnContext(ctx, "tracking record lookup failed on pickup",
			slog.String("tracking_id", reservation.TrackingID), slog.Any("error", err))

		return
	}
	if record.CurrentStatus == entity.TrackingPickedUp || record.CurrentStatus == entity.TrackingCompleted {
		return
	}

	record.Append(entity.TrackingEvent{
		Status:    entity.TrackingPickedUp,
		Timestamp: now,
		Notes:     "Confirmed by requester",
		UpdatedBy: reservation.UserID,
	})

	if err := s.trackingRepo.Update(ctx, reservation.TrackingID, map[string]any{
		"current_status": string(record.CurrentStatus),
		"status_history": record.StatusHistory,
		"updated_at":     now,
	}); err != nil {
		s.logger.WarnContext(ctx, "tracking update failed on pickup",
			slog.String("tracking_id", reservation.TrackingID), slog.Any("error", err))
	}
}

// Get retrieves a reservation with its item; parties only.
func (s *reservationService) Get(ctx context.Context, uid, reservationID string) (*usecase.ReservationDetail, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != uid && reservation.DonorID != uid {
		return nil, domainerrors.ErrForbidden
	}

	detail := &usecase.ReservationDetail{Reservation: reservation}
	if item, err := s.itemRepo.FindByID(ctx, reservation.ItemID); err == nil {
		detail.Item = item
	}

	return detail, nil
}

// ListForRequester returns the caller's reservations.
func (s *reservationService) ListForRequester(ctx context.Context, uid string) ([]*entity.Reservation, error) {
	return s.reservationRepo.List(ctx, repository.ReservationFilter{RequesterID: uid})
}

// ListForDonor returns reservations on the caller's items.
func (s *reservationService) ListForDonor(ctx context.Context, uid string) ([]*entity.Reservation, error) {
	return s.reservationRepo.List(ctx, repository.ReservationFilter{DonorID: uid})
}

// ListPickups returns the caller's completed pickups.
func (s *reservationService) ListPickups(ctx context.Context, uid string) ([]*entity.Reservation, error) {
	return s.reservationRepo.List(ctx, repository.ReservationFilter{
		RequesterID: uid,
		Status:      entity.ReservationStatusPickedUp,
	})
}

// ListForItem returns the reservations on one item; donor only.
func (s *reservationService) ListForItem(ctx context.Context, donorUID, itemID string) ([]*entity.Reservation, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}
	if item.DonorID != donorUID {
		return nil, domainerrors.ErrForbidden
	}

	return s.reservationRepo.List(ctx, repository.ReservationFilter{ItemID: itemID})
}

func (s *reservationService) findReservation(ctx context.Context, id string) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, err
	}

	return reservation, nil
}

// notify publishes a workflow notification and swallows failures.
func (s *reservationService) notify(ctx context.Context, audience entity.Audience, title, message, notificationType string) {
	if _, err := s.notifications.Notify(ctx, audience, title, message, notificationType); err != nil {
		s.logger.WarnContext(ctx, "notification failed",
			slog.String("type", notificationType), slog.Any("error", err))
	}
}
