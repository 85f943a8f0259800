package impl

import (
	"context"
	"log/slog"
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
)

type chatService struct {
	chatRepo    repository.ChatRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	blobService service.BlobService
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	ItemRepo    repository.ItemRepository
	UserRepo    repository.UserRepository
	BlobService service.BlobService
	Logger      *slog.Logger
}

// NewChatService creates a new chat service instance
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:    params.ChatRepo,
		itemRepo:    params.ItemRepo,
		userRepo:    params.UserRepo,
		blobService: params.BlobService,
		logger:      params.Logger,
	}
}

// List returns the caller's conversations with context for each, most
// recently active first.
func (s *chatService) List(ctx context.Context, uid string) ([]*usecase.ChatView, error) {
	chats, err := s.chatRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.ChatView, 0, len(chats))
	for _, chat := range chats {
		view := &usecase.ChatView{Chat: chat}

		if item, err := s.itemRepo.FindByID(ctx, chat.ItemID); err == nil {
			view.Item = item
		}
		if counterparty, err := s.userRepo.FindByUID(ctx, chat.Counterparty(uid)); err == nil {
			view.Counterparty = counterparty
		}

		messages, err := s.chatRepo.ListMessages(ctx, chat.ID)
		if err != nil {
			return nil, err
		}
		for _, message := range messages {
			if message.SenderID != uid && !message.Read {
				view.UnreadCount++
			}
		}

		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Chat.LastMessageAt.After(views[j].Chat.LastMessageAt)
	})

	return views, nil
}

// Messages returns a chat's messages in chronological order; parties only.
func (s *chatService) Messages(ctx context.Context, uid, chatID string) ([]*entity.Message, error) {
	if _, err := s.memberChat(ctx, uid, chatID); err != nil {
		return nil, err
	}

	return s.chatRepo.ListMessages(ctx, chatID)
}

// SendText posts a text message to a chat; parties only.
func (s *chatService) SendText(ctx context.Context, uid, chatID string, input *usecase.SendMessageInput) (*entity.Message, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}

	return s.send(ctx, uid, chatID, text, "")
}

// SendImage stores an uploaded image and posts it as a message.
func (s *chatService) SendImage(ctx context.Context, uid, chatID string, upload *usecase.ImageUpload) (*entity.Message, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domainerrors.ErrInvalidFileType
	}

	if _, err := s.memberChat(ctx, uid, chatID); err != nil {
		return nil, err
	}

	url, err := s.blobService.Put(ctx, upload.Data, upload.Filename, upload.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store chat image")
	}

	return s.send(ctx, uid, chatID, "", url)
}

func (s *chatService) send(ctx context.Context, uid, chatID, text, imageURL string) (*entity.Message, error) {
	chat, err := s.memberChat(ctx, uid, chatID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	message := &entity.Message{
		ChatID:    chat.ID,
		SenderID:  uid,
		Text:      text,
		ImageURL:  imageURL,
		CreatedAt: now,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	preview := text
	if preview == "" {
		preview = "[image]"
	}
	if err := s.chatRepo.Update(ctx, chat.ID, map[string]any{
		"last_message":    preview,
		"last_message_at": now,
	}); err != nil {
		s.logger.WarnContext(ctx, "chat preview update failed",
			slog.String("chat_id", chat.ID), slog.Any("error", err))
	}

	return message, nil
}

// MarkRead marks the counterparty's messages read, returning how many were
// updated.
func (s *chatService) MarkRead(ctx context.Context, uid, chatID string) (int, error) {
	if _, err := s.memberChat(ctx, uid, chatID); err != nil {
		return 0, err
	}

	return s.chatRepo.MarkMessagesRead(ctx, chatID, uid)
}

// UnreadCount counts unread counterparty messages across the caller's chats.
func (s *chatService) UnreadCount(ctx context.Context, uid string) (int, error) {
	return s.chatRepo.CountUnread(ctx, uid)
}

// memberChat loads a chat and checks the caller is one of its parties.
func (s *chatService) memberChat(ctx context.Context, uid, chatID string) (*entity.Chat, error) {
	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, domainerrors.ErrChatNotFound
		}

		return nil, err
	}
	if !chat.HasParty(uid) {
		return nil, domainerrors.ErrForbidden
	}

	return chat, nil
}
