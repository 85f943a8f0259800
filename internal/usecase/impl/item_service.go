package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	"sharecare/internal/domain/service"
	"sharecare/internal/usecase"
	"sharecare/internal/util"
)

const defaultSearchRadiusKM = 10

type itemService struct {
	itemRepo        repository.ItemRepository
	userRepo        repository.UserRepository
	reservationRepo repository.ReservationRepository
	engagementRepo  repository.EngagementRepository
	chats           usecase.ChatUsecase
	notifications   usecase.NotificationUsecase
	blobService     service.BlobService
	mailService     service.MailService
	logger          *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo        repository.ItemRepository
	UserRepo        repository.UserRepository
	ReservationRepo repository.ReservationRepository
	EngagementRepo  repository.EngagementRepository
	Chats           usecase.ChatUsecase
	Notifications   usecase.NotificationUsecase
	BlobService     service.BlobService
	MailService     service.MailService
	Logger          *slog.Logger
}

// NewItemService creates a new item service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:        params.ItemRepo,
		userRepo:        params.UserRepo,
		reservationRepo: params.ReservationRepo,
		engagementRepo:  params.EngagementRepo,
		chats:           params.Chats,
		notifications:   params.Notifications,
		blobService:     params.BlobService,
		mailService:     params.MailService,
		logger:          params.Logger,
	}
}

// List returns one page of the feed with the caller's dashboard counters.
func (s *itemService) List(ctx context.Context, uid string, query *usecase.ItemListQuery) (*usecase.ItemListResult, error) {
	filter := repository.ItemFilter{
		Category: query.Category,
		Status:   entity.ItemStatus(query.Status),
	}

	items, err := s.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query.Search != "" {
		items = filterBySearch(items, query.Search)
	}
	sortItems(items, query.SortBy, query.SortDir)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	result := &usecase.ItemListResult{
		Items:      util.Paginate(items, page, limit),
		Total:      len(items),
		Page:       page,
		TotalPages: util.TotalPages(len(items), limit),
	}

	if uid != "" {
		result.Counters = s.counters(ctx, uid)
	}

	return result, nil
}

// counters assembles the dashboard badge counts. Each count degrades to zero
// on failure; the feed must not break over a badge.
func (s *itemService) counters(ctx context.Context, uid string) *usecase.DashboardCounters {
	counters := &usecase.DashboardCounters{}

	unreadMessages, err := s.chats.UnreadCount(ctx, uid)
	if err != nil {
		s.logger.WarnContext(ctx, "unread message count failed",
			slog.String("uid", uid), slog.Any("error", err))
	} else {
		counters.UnreadMessages = unreadMessages
	}

	unreadNotifications, err := s.notifications.UnreadCount(ctx, uid)
	if err != nil {
		s.logger.WarnContext(ctx, "unread notification count failed",
			slog.String("uid", uid), slog.Any("error", err))
	} else {
		counters.UnreadNotifications = unreadNotifications
	}

	pending, err := s.reservationRepo.List(ctx, repository.ReservationFilter{
		DonorID: uid,
		Status:  entity.ReservationStatusPending,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "pending request count failed",
			slog.String("uid", uid), slog.Any("error", err))
	} else {
		counters.PendingRequests = len(pending)
	}

	return counters
}

// Create posts a donation on behalf of the donor.
func (s *itemService) Create(ctx context.Context, donorUID string, input *usecase.CreateItemInput) (*entity.Item, error) {
	donor, err := s.userRepo.FindByUID(ctx, donorUID)
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
	item := &entity.Item{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		FoodType:    input.FoodType,
		IsBulkItem:  input.IsBulkItem,
		Quantity:    quantity,
		Donor: entity.DonorSnapshot{
			ID:       donor.UID,
			Name:     donor.FullName,
			Type:     string(donor.AccountType),
			Rating:   donor.Rating,
			PhotoURL: donor.PhotoURL,
			Phone:    donor.Phone,
			Email:    donor.Email,
		},
		DonorID:     donor.UID,
		DonorName:   donor.FullName,
		Location:    input.Location,
		PickupTimes: input.PickupTimes,
		ExpiryDate:  input.ExpiryDate,
		IsForSale:   input.IsForSale,
		Price:       input.Price,
		Images:      input.Images,
		Status:      entity.ItemStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if err := s.mailService.SendDonationConfirmation(ctx, donor.Email, donor.FullName, item.Name); err != nil {
		s.logger.WarnContext(ctx, "donation confirmation email failed",
			slog.String("item_id", item.ID), slog.Any("error", err))
	}

	return item, nil
}

// Get retrieves one item and bumps its view counter.
func (s *itemService) Get(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Views++
	if err := s.itemRepo.Update(ctx, id, map[string]any{"views": item.Views}); err != nil {
		s.logger.WarnContext(ctx, "view counter update failed",
			slog.String("item_id", id), slog.Any("error", err))
	}

	return item, nil
}

// Update applies a partial update; only the owner may modify an item.
func (s *itemService) Update(ctx context.Context, uid, id string, input *usecase.UpdateItemInput) (*entity.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.DonorID != uid {
		return nil, domainerrors.ErrForbidden
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
	if input.FoodType != nil {
		updates["food_type"] = *input.FoodType
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.PickupTimes != nil {
		updates["pickup_times"] = *input.PickupTimes
	}
	if input.ExpiryDate != nil {
		updates["expiry_date"] = *input.ExpiryDate
	}
	if input.IsForSale != nil {
		updates["is_for_sale"] = *input.IsForSale
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Images != nil {
		updates["images"] = *input.Images
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.itemRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.findItem(ctx, id)
}

// Delete removes the item with its reservations and likes; owner only.
func (s *itemService) Delete(ctx context.Context, uid, id string) error {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return err
	}
	if item.DonorID != uid {
		return domainerrors.ErrForbidden
	}

	return s.cascadeDelete(ctx, id)
}

// cascadeDelete removes an item's reservations and likes before the item
// itself.
func (s *itemService) cascadeDelete(ctx context.Context, itemID string) error {
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

// AddImages stores uploaded images and appends their URLs to the item.
func (s *itemService) AddImages(ctx context.Context, uid, id string, uploads []usecase.ImageUpload) (*entity.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.DonorID != uid {
		return nil, domainerrors.ErrForbidden
	}

	urls := item.Images
	for _, upload := range uploads {
		if !strings.HasPrefix(upload.ContentType, "image/") {
			return nil, domainerrors.ErrInvalidFileType
		}

		url, err := s.blobService.Put(ctx, upload.Data, upload.Filename, upload.ContentType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store image")
		}
		urls = append(urls, url)
	}

	if err := s.itemRepo.Update(ctx, id, map[string]any{
		"images":     urls,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, err
	}
	item.Images = urls

	return item, nil
}

// Search filters available items by text, category and an optional radius
// around a point.
func (s *itemService) Search(ctx context.Context, query *usecase.ItemSearchQuery) ([]*entity.Item, error) {
	items, err := s.itemRepo.List(ctx, repository.ItemFilter{
		Category: query.Category,
		Status:   entity.ItemStatusAvailable,
	})
	if err != nil {
		return nil, err
	}

	if query.Query != "" {
		items = filterBySearch(items, query.Query)
	}

	if query.Lat != 0 || query.Lng != 0 {
		radius := query.RadiusKM
		if radius <= 0 {
			radius = defaultSearchRadiusKM
		}
		items = filterByRadius(items, query.Lat, query.Lng, radius)
	}

	return items, nil
}

// ListByCategory returns available items in a category.
func (s *itemService) ListByCategory(ctx context.Context, category string) ([]*entity.Item, error) {
	return s.itemRepo.List(ctx, repository.ItemFilter{
		Category: category,
		Status:   entity.ItemStatusAvailable,
	})
}

// Like records a like; a duplicate like is a conflict.
func (s *itemService) Like(ctx context.Context, uid, id string) (*entity.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := s.engagementRepo.HasLike(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, domainerrors.ErrAlreadyLiked
	}

	if err := s.engagementRepo.CreateLike(ctx, &entity.Like{
		ItemID:    id,
		UserID:    uid,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	item.Likes++
	if err := s.itemRepo.Update(ctx, id, map[string]any{"likes": item.Likes}); err != nil {
		return nil, err
	}

	return item, nil
}

// Unlike withdraws a like; withdrawing a missing like is a conflict.
func (s *itemService) Unlike(ctx context.Context, uid, id string) (*entity.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.engagementRepo.DeleteLike(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domainerrors.ErrNotLiked
	}

	if item.Likes > 0 {
		item.Likes--
	}
	if err := s.itemRepo.Update(ctx, id, map[string]any{"likes": item.Likes}); err != nil {
		return nil, err
	}

	return item, nil
}

// Favorite bookmarks an item for the caller.
func (s *itemService) Favorite(ctx context.Context, uid, id string) error {
	if _, err := s.findItem(ctx, id); err != nil {
		return err
	}

	favorited, err := s.engagementRepo.HasFavorite(ctx, id, uid)
	if err != nil {
		return err
	}
	if favorited {
		return domainerrors.ErrAlreadyFavorited
	}

	return s.engagementRepo.CreateFavorite(ctx, &entity.Favorite{
		ItemID:    id,
		UserID:    uid,
		CreatedAt: time.Now(),
	})
}

// Unfavorite removes the caller's bookmark.
func (s *itemService) Unfavorite(ctx context.Context, uid, id string) error {
	deleted, err := s.engagementRepo.DeleteFavorite(ctx, id, uid)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrNotFavorited
	}

	return nil
}

// ListFavorites returns the caller's bookmarked items. Favorites whose item
// has since been deleted are skipped.
func (s *itemService) ListFavorites(ctx context.Context, uid string) ([]*entity.Item, error) {
	favorites, err := s.engagementRepo.ListFavoritesByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.Item, 0, len(favorites))
	for _, favorite := range favorites {
		item, err := s.itemRepo.FindByID(ctx, favorite.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				continue
			}

			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// ListDonations returns the items posted by the caller.
func (s *itemService) ListDonations(ctx context.Context, uid string) ([]*entity.Item, error) {
	return s.itemRepo.List(ctx, repository.ItemFilter{DonorID: uid})
}

// Report files a moderation report against an item.
func (s *itemService) Report(ctx context.Context, uid, id string, input *usecase.ReportItemInput) (*entity.Report, error) {
	if _, err := s.findItem(ctx, id); err != nil {
		return nil, err
	}

	report := &entity.Report{
		ItemID:      id,
		ReporterID:  uid,
		Reason:      input.Reason,
		Description: input.Description,
		Status:      entity.ReportStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.engagementRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *itemService) findItem(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// filterBySearch keeps items whose name or description contains the needle,
// case-insensitively.
func filterBySearch(items []*entity.Item, needle string) []*entity.Item {
	needle = strings.ToLower(needle)

	filtered := items[:0:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// filterByRadius keeps items within radiusKM of the given point.
func filterByRadius(items []*entity.Item, lat, lng, radiusKM float64) []*entity.Item {
	origin := orb.Point{lng, lat}

	filtered := items[:0:0]
	for _, item := range items {
		point := orb.Point{item.Location.Lng, item.Location.Lat}
		if geo.Distance(origin, point) <= radiusKM*1000 {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func sortItems(items []*entity.Item, sortBy, sortDir string) {
	desc := sortDir == "desc" || (sortDir == "" && (sortBy == "" || sortBy == "created_at"))

	less := func(a, b *entity.Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch sortBy {
	case "name":
		less = func(a, b *entity.Item) bool { return a.Name < b.Name }
	case "expiry_date":
		less = func(a, b *entity.Item) bool { return a.ExpiryDate < b.ExpiryDate }
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}

		return less(items[i], items[j])
	})
}
