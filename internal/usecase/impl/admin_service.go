package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
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

const statisticsMonths = 6

type adminService struct {
	userRepo          repository.UserRepository
	itemRepo          repository.ItemRepository
	reservationRepo   repository.ReservationRepository
	engagementRepo    repository.EngagementRepository
	notificationRepo  repository.NotificationRepository
	adminNotification repository.AdminNotificationRepository
	mailService       service.MailService
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	ItemRepo          repository.ItemRepository
	ReservationRepo   repository.ReservationRepository
	EngagementRepo    repository.EngagementRepository
	NotificationRepo  repository.NotificationRepository
	AdminNotification repository.AdminNotificationRepository
	MailService       service.MailService
	Logger            *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:          params.UserRepo,
		itemRepo:          params.ItemRepo,
		reservationRepo:   params.ReservationRepo,
		engagementRepo:    params.EngagementRepo,
		notificationRepo:  params.NotificationRepo,
		adminNotification: params.AdminNotification,
		mailService:       params.MailService,
		logger:            params.Logger,
	}
}

// ListUsers returns one page of the user list.
func (s *adminService) ListUsers(ctx context.Context, query *usecase.AdminUserQuery) (*usecase.AdminUserPage, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := users[:0:0]
	for _, user := range users {
		if query.AccountType != "" && string(user.AccountType) != query.AccountType {
			continue
		}
		if query.Active == "true" && !user.IsActive {
			continue
		}
		if query.Active == "false" && user.IsActive {
			continue
		}
		if query.Search != "" {
			needle := strings.ToLower(query.Search)
			if !strings.Contains(strings.ToLower(user.FullName), needle) &&
				!strings.Contains(strings.ToLower(user.Email), needle) {
				continue
			}
		}
		filtered = append(filtered, user)
	}

	sortUsers(filtered, query.SortBy, query.SortDir)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	return &usecase.AdminUserPage{
		Users:      util.Paginate(filtered, page, limit),
		Total:      len(filtered),
		Page:       page,
		TotalPages: util.TotalPages(len(filtered), limit),
	}, nil
}

// SetUserStatus bans or reinstates a user.
func (s *adminService) SetUserStatus(ctx context.Context, uid string, active bool) (*entity.User, error) {
	if err := s.userRepo.Update(ctx, uid, map[string]any{
		"is_active":  active,
		"updated_at": time.Now(),
	}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user with their items, reservations and likes, then
// sends the deletion email.
func (s *adminService) DeleteUser(ctx context.Context, uid string) error {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	items, err := s.itemRepo.List(ctx, repository.ItemFilter{DonorID: uid})
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.deleteItemCascade(ctx, item.ID); err != nil {
			return err
		}
	}

	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{RequesterID: uid})
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		if err := s.reservationRepo.Delete(ctx, reservation.ID); err != nil {
			return err
		}
	}

	if err := s.engagementRepo.DeleteLikesByUser(ctx, uid); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, uid); err != nil {
		return err
	}

	if err := s.mailService.SendAccountDeletion(ctx, user.Email, user.FullName); err != nil {
		s.logger.WarnContext(ctx, "account deletion email failed",
			slog.String("uid", uid), slog.Any("error", err))
	}

	return nil
}

// UserItems returns one user's donations and reservations.
func (s *adminService) UserItems(ctx context.Context, uid string) (*usecase.AdminUserItems, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	items, err := s.itemRepo.List(ctx, repository.ItemFilter{DonorID: uid})
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{RequesterID: uid})
	if err != nil {
		return nil, err
	}

	return &usecase.AdminUserItems{
		User:          user,
		DonatedItems:  items,
		ReservedItems: reservations,
		TotalDonated:  len(items),
		TotalReserved: len(reservations),
	}, nil
}

// ListItems returns one page of the item list.
func (s *adminService) ListItems(ctx context.Context, query *usecase.AdminItemQuery) (*usecase.AdminItemPage, error) {
	items, err := s.itemRepo.List(ctx, repository.ItemFilter{
		Category: query.Category,
		Status:   entity.ItemStatus(query.Status),
	})
	if err != nil {
		return nil, err
	}

	if query.Search != "" {
		items = filterBySearch(items, query.Search)
	}
	sortItems(items, "created_at", "desc")

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	return &usecase.AdminItemPage{
		Items:      util.Paginate(items, page, limit),
		Total:      len(items),
		Page:       page,
		TotalPages: util.TotalPages(len(items), limit),
	}, nil
}

// GetItem retrieves one item without touching its counters.
func (s *adminService) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update without an ownership check.
func (s *adminService) UpdateItem(ctx context.Context, id string, input *usecase.UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.PickupTimes != nil {
		updates["pickup_times"] = *input.PickupTimes
	}
	if input.ExpiryDate != nil {
		updates["expiry_date"] = *input.ExpiryDate
	}
	if input.Images != nil {
		updates["images"] = *input.Images
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.itemRepo.Update(ctx, item.ID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetItem(ctx, id)
}

// VerifyItem toggles the item's verified badge.
func (s *adminService) VerifyItem(ctx context.Context, id string, verified bool) (*entity.Item, error) {
	if _, err := s.GetItem(ctx, id); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, id, map[string]any{
		"is_verified": verified,
		"updated_at":  time.Now(),
	}); err != nil {
		return nil, err
	}

	return s.GetItem(ctx, id)
}

// DeleteItem removes an item with its reservations and likes.
func (s *adminService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}

	return s.deleteItemCascade(ctx, id)
}

// BulkDeleteItems removes several items, returning how many were deleted.
// Unknown IDs are skipped.
func (s *adminService) BulkDeleteItems(ctx context.Context, input *usecase.BulkDeleteInput) (int, error) {
	deleted := 0
	for _, id := range input.ItemIDs {
		if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				continue
			}

			return deleted, err
		}

		if err := s.deleteItemCascade(ctx, id); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

func (s *adminService) deleteItemCascade(ctx context.Context, itemID string) error {
	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{ItemID: itemID})
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		if err := s.reservationRepo.Delete(ctx, reservation.ID); err != nil {
			return err
		}
	}

	if err := s.engagementRepo.DeleteLikesByItem(ctx, itemID); err != nil {
		return err
	}

	return s.itemRepo.Delete(ctx, itemID)
}

// Statistics computes the dashboard summary.
func (s *adminService) Statistics(ctx context.Context) (*usecase.Statistics, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.List(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{})
	if err != nil {
		return nil, err
	}

	stats := &usecase.Statistics{
		TotalUsers:       len(users),
		UsersByType:      map[string]int{},
		TotalItems:       len(items),
		ItemsByStatus:    map[string]int{},
		ItemsByCategory:  map[string]int{},
		TotalReservation: len(reservations),
	}

	for _, user := range users {
		if user.IsActive {
			stats.ActiveUsers++
		}
		stats.UsersByType[string(user.AccountType)]++
	}

	donations := map[string]int{}
	donorNames := map[string]string{}
	for _, item := range items {
		stats.ItemsByStatus[string(item.Status)]++
		stats.ItemsByCategory[item.Category]++
		donations[item.DonorID]++
		donorNames[item.DonorID] = item.DonorName
	}

	stats.ItemsPerMonth = monthlySeries(items, time.Now())
	stats.TopDonors = topDonors(donations, donorNames, 10)

	return stats, nil
}

// Demand thresholds, as counts of reservations sharing one rounded
// coordinate cell.
const (
	demandHighThreshold   = 10
	demandMediumThreshold = 5
)

// DemandAreas groups reservation locations into 3-decimal coordinate cells
// (roughly 100m) and ranks them by demand. Reservations without a location
// are skipped.
func (s *adminService) DemandAreas(ctx context.Context) ([]*usecase.DemandArea, error) {
	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{})
	if err != nil {
		return nil, err
	}

	cells := map[string]*usecase.DemandArea{}
	for _, reservation := range reservations {
		location := reservation.Location
		if location.Lat == 0 && location.Lng == 0 {
			continue
		}

		lat := math.Round(location.Lat*1000) / 1000
		lng := math.Round(location.Lng*1000) / 1000
		key := fmt.Sprintf("%.3f,%.3f", lat, lng)

		cell, ok := cells[key]
		if !ok {
			cell = &usecase.DemandArea{
				Location: entity.Location{Lat: lat, Lng: lng, Address: location.Address},
			}
			cells[key] = cell
		}
		cell.Count++
	}

	areas := make([]*usecase.DemandArea, 0, len(cells))
	for _, cell := range cells {
		cell.Level, cell.Color = demandLevel(cell.Count)
		areas = append(areas, cell)
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		if areas[i].Location.Lat != areas[j].Location.Lat {
			return areas[i].Location.Lat < areas[j].Location.Lat
		}

		return areas[i].Location.Lng < areas[j].Location.Lng
	})

	return areas, nil
}

func demandLevel(count int) (string, string) {
	switch {
	case count >= demandHighThreshold:
		return "high", "red"
	case count >= demandMediumThreshold:
		return "medium", "orange"
	default:
		return "low", "yellow"
	}
}

// monthlySeries counts items created in each of the trailing months, oldest
// first.
func monthlySeries(items []*entity.Item, now time.Time) []usecase.MonthlyCount {
	counts := map[string]int{}
	for _, item := range items {
		counts[item.CreatedAt.Format("2006-01")]++
	}

	series := make([]usecase.MonthlyCount, 0, statisticsMonths)
	first := now.AddDate(0, -(statisticsMonths - 1), 0)
	for i := 0; i < statisticsMonths; i++ {
		month := first.AddDate(0, i, 0).Format("2006-01")
		series = append(series, usecase.MonthlyCount{Month: month, Count: counts[month]})
	}

	return series
}

func topDonors(donations map[string]int, names map[string]string, limit int) []usecase.DonorRanking {
	rankings := make([]usecase.DonorRanking, 0, len(donations))
	for uid, count := range donations {
		rankings = append(rankings, usecase.DonorRanking{
			UID:       uid,
			Name:      names[uid],
			Donations: count,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Donations != rankings[j].Donations {
			return rankings[i].Donations > rankings[j].Donations
		}

		return rankings[i].UID < rankings[j].UID
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}

	return rankings
}

// SendNotification publishes a notification and records it in the admin
// audit collection.
func (s *adminService) SendNotification(ctx context.Context, adminEmail string, input *usecase.SendNotificationInput) (*entity.AdminNotification, error) {
	audience := entity.TargetedTo(input.TargetUsers...)
	now := time.Now()

	notificationType := input.Type
	if notificationType == "" {
		notificationType = "announcement"
	}

	notification := &entity.Notification{
		Title:     input.Title,
		Message:   input.Message,
		Type:      notificationType,
		Audience:  audience,
		CreatedAt: now,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	record := &entity.AdminNotification{
		NotificationID: notification.ID,
		Title:          input.Title,
		Message:        input.Message,
		Type:           notificationType,
		Audience:       audience,
		SentBy:         adminEmail,
		CreatedAt:      now,
	}
	if err := s.adminNotification.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListNotifications returns the admin audit records, newest first.
func (s *adminService) ListNotifications(ctx context.Context) ([]*entity.AdminNotification, error) {
	return s.adminNotification.FindAll(ctx)
}

// GetNotification returns one audit record with read statistics taken from
// its latest user-facing copy.
func (s *adminService) GetNotification(ctx context.Context, id string) (*usecase.AdminNotificationDetail, error) {
	record, err := s.findAdminNotification(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := usecase.DeliveryStats{Recipients: len(record.Audience.UserIDs())}
	if record.NotificationID != "" {
		notification, err := s.notificationRepo.FindByID(ctx, record.NotificationID)
		switch {
		case err == nil:
			stats.Read = len(notification.ReadBy)
		case errors.Is(err, repository.ErrNotificationNotFound):
			// The user-facing copy may have been deleted independently.
		default:
			return nil, err
		}
	}

	return &usecase.AdminNotificationDetail{
		AdminNotification: record,
		DeliveryStats:     stats,
	}, nil
}

// DeleteNotification removes an audit record and its latest user-facing copy.
func (s *adminService) DeleteNotification(ctx context.Context, id string) error {
	record, err := s.findAdminNotification(ctx, id)
	if err != nil {
		return err
	}

	if record.NotificationID != "" {
		if err := s.notificationRepo.Delete(ctx, record.NotificationID); err != nil {
			s.logger.WarnContext(ctx, "user-facing notification deletion failed",
				slog.String("notification_id", record.NotificationID), slog.Any("error", err))
		}
	}

	return s.adminNotification.Delete(ctx, id)
}

// ResendNotification publishes a fresh user-facing copy of a previously sent
// notification.
func (s *adminService) ResendNotification(ctx context.Context, id string) (*entity.AdminNotification, error) {
	record, err := s.findAdminNotification(ctx, id)
	if err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		Title:     record.Title,
		Message:   record.Message,
		Type:      record.Type,
		Audience:  record.Audience,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	record.NotificationID = notification.ID
	record.ResendCount++
	if err := s.adminNotification.Update(ctx, id, map[string]any{
		"notification_id": record.NotificationID,
		"resend_count":    record.ResendCount,
	}); err != nil {
		return nil, err
	}

	return record, nil
}

// ListReports returns moderation reports, optionally by status.
func (s *adminService) ListReports(ctx context.Context, status string) ([]*entity.Report, error) {
	return s.engagementRepo.ListReports(ctx, entity.ReportStatus(status))
}

// ResolveReport closes a report.
func (s *adminService) ResolveReport(ctx context.Context, id string) (*entity.Report, error) {
	report, err := s.engagementRepo.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, err
	}

	now := time.Now()
	if err := s.engagementRepo.UpdateReport(ctx, id, map[string]any{
		"status":      string(entity.ReportStatusResolved),
		"resolved_at": now,
	}); err != nil {
		return nil, err
	}
	report.Status = entity.ReportStatusResolved
	report.ResolvedAt = &now

	return report, nil
}

func (s *adminService) findAdminNotification(ctx context.Context, id string) (*entity.AdminNotification, error) {
	record, err := s.adminNotification.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	return record, nil
}

func sortUsers(users []*entity.User, sortBy, sortDir string) {
	desc := sortDir == "desc" || (sortDir == "" && sortBy == "")

	less := func(a, b *entity.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch sortBy {
	case "full_name":
		less = func(a, b *entity.User) bool { return a.FullName < b.FullName }
	case "email":
		less = func(a, b *entity.User) bool { return a.Email < b.Email }
	}

	sort.SliceStable(users, func(i, j int) bool {
		if desc {
			return less(users[j], users[i])
		}

		return less(users[i], users[j])
	})
}
