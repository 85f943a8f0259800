package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	mockRepo "sharecare/internal/mocks/repository"
	mockSvc "sharecare/internal/mocks/service"
	"sharecare/internal/usecase"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service     usecase.ChatUsecase
	chatRepo    *mockRepo.MockChatRepository
	itemRepo    *mockRepo.MockItemRepository
	userRepo    *mockRepo.MockUserRepository
	blobService *mockSvc.MockBlobService
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	chatRepo := mockRepo.NewMockChatRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	blobService := mockSvc.NewMockBlobService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewChatService(ChatServiceParams{
		ChatRepo:    chatRepo,
		ItemRepo:    itemRepo,
		UserRepo:    userRepo,
		BlobService: blobService,
		Logger:      logger,
	})

	return chatServiceFixtures{
		service:     service,
		chatRepo:    chatRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		blobService: blobService,
	}
}

func memberChat() *entity.Chat {
	return &entity.Chat{
		ID:          "chat-1",
		ItemID:      "item-1",
		DonorID:     "donor-1",
		RequesterID: "user-1",
		IsActive:    true,
	}
}

func TestChatService_List_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	older := memberChat()
	older.LastMessageAt = time.Now().Add(-time.Hour)
	newer := &entity.Chat{
		ID:            "chat-2",
		ItemID:        "item-2",
		DonorID:       "user-1",
		RequesterID:   "user-3",
		LastMessageAt: time.Now(),
	}

	fx.chatRepo.EXPECT().ListByUser(ctx, "user-1").Return([]*entity.Chat{older, newer}, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-2").Return(&entity.Item{ID: "item-2"}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "donor-1").Return(&entity.User{UID: "donor-1"}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-3").Return(&entity.User{UID: "user-3"}, nil)
	fx.chatRepo.EXPECT().ListMessages(ctx, "chat-1").Return([]*entity.Message{
		{ID: "msg-1", SenderID: "donor-1", Read: false},
		{ID: "msg-2", SenderID: "user-1", Read: false},
	}, nil)
	fx.chatRepo.EXPECT().ListMessages(ctx, "chat-2").Return(nil, nil)

	views, err := fx.service.List(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	// Most recently active first.
	assert.Equal(t, "chat-2", views[0].Chat.ID)
	assert.Equal(t, 1, views[1].UnreadCount)
	assert.Equal(t, "donor-1", views[1].Counterparty.UID)
}

func TestChatService_Messages_NotParty(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindByID(ctx, "chat-1").Return(memberChat(), nil)

	_, err := fx.service.Messages(ctx, "stranger", "chat-1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChatService_SendText_EmptyMessage(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	_, err := fx.service.SendText(ctx, "user-1", "chat-1", &usecase.SendMessageInput{Text: "   "})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestChatService_SendText_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindByID(ctx, "chat-1").Return(memberChat(), nil)
	fx.chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = "msg-1"
		}).
		Return(nil)
	fx.chatRepo.EXPECT().
		Update(ctx, "chat-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, "hello there", updates["last_message"])
		}).
		Return(nil)

	message, err := fx.service.SendText(ctx, "user-1", "chat-1", &usecase.SendMessageInput{Text: " hello there "})

	require.NoError(t, err)
	assert.Equal(t, "hello there", message.Text)
	assert.Equal(t, "user-1", message.SenderID)
}

func TestChatService_SendImage_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	payload := []byte{0xFF, 0xD8}

	fx.chatRepo.EXPECT().FindByID(ctx, "chat-1").Return(memberChat(), nil).Twice()
	fx.blobService.EXPECT().
		Put(ctx, payload, "photo.jpg", "image/jpeg").
		Return("https://cdn.example.com/photo.jpg", nil)
	fx.chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.chatRepo.EXPECT().
		Update(ctx, "chat-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, "[image]", updates["last_message"])
		}).
		Return(nil)

	message, err := fx.service.SendImage(ctx, "user-1", "chat-1", &usecase.ImageUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        payload,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", message.ImageURL)
	assert.Empty(t, message.Text)
}

func TestChatService_SendImage_InvalidType(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	_, err := fx.service.SendImage(ctx, "user-1", "chat-1", &usecase.ImageUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hi"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestChatService_MarkRead_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindByID(ctx, "chat-1").Return(memberChat(), nil)
	fx.chatRepo.EXPECT().MarkMessagesRead(ctx, "chat-1", "user-1").Return(3, nil)

	updated, err := fx.service.MarkRead(ctx, "user-1", "chat-1")

	require.NoError(t, err)
	assert.Equal(t, 3, updated)
}

func TestChatService_UnreadCount_Success(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().CountUnread(ctx, "user-1").Return(7, nil)

	count, err := fx.service.UnreadCount(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
