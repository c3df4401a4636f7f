package messageservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wefund/wefund/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockMessageRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := NewMockUserRepo(ctrl)
	messageRepo := NewMockMessageRepo(ctrl)
	service := New(userRepo, messageRepo)

	return service, userRepo, messageRepo
}

const (
	senderID   = "c7b3d8e0-5e0b-4b0f-8b3a-3b9f4b3d3b3d"
	receiverID = "a1b2c3d4-0000-4000-8000-000000000002"
)

func TestSend(t *testing.T) {
	service, userRepo, messageRepo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		receiverID    string
		content       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful send",
			receiverID: receiverID,
			content:    "Is the cocoa project still open?",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), senderID).Return(&domain.User{ID: senderID, Name: "Ama"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(&domain.User{ID: receiverID, Name: "Kofi"}, nil)
				messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, message *domain.Message) (*domain.Message, error) {
						assert.Equal(t, senderID, message.SenderID)
						assert.Equal(t, receiverID, message.ReceiverID)
						assert.False(t, message.Read)
						return message, nil
					})
			},
		},
		{
			name:          "Blank message rejected",
			receiverID:    receiverID,
			content:       "   ",
			prepareMock:   func() {},
			expectedError: ErrEmptyMessage,
		},
		{
			name:          "Message to self rejected",
			receiverID:    senderID,
			content:       "hello",
			prepareMock:   func() {},
			expectedError: ErrSelfMessage,
		},
		{
			name:       "Unknown recipient",
			receiverID: receiverID,
			content:    "hello",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), senderID).Return(&domain.User{ID: senderID, Name: "Ama"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(nil, nil)
			},
			expectedError: ErrRecipientNotFound,
		},
		{
			name:       "Storage failure",
			receiverID: receiverID,
			content:    "hello",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), senderID).Return(&domain.User{ID: senderID, Name: "Ama"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(&domain.User{ID: receiverID, Name: "Kofi"}, nil)
				messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			sent, err := service.Send(ctx, senderID, tt.receiverID, tt.content)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, sent)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Ama", sent.SenderName)
			assert.Equal(t, "Kofi", sent.ReceiverName)
			assert.Equal(t, "Is the cocoa project still open?", sent.Message.Content)
		})
	}
}

func TestListConversations(t *testing.T) {
	service, userRepo, messageRepo := NewMock(t)
	ctx := context.Background()
	now := time.Now()

	messageRepo.EXPECT().ListLatest(gomock.Any(), senderID).Return([]domain.Message{
		{ID: "m-1", SenderID: receiverID, ReceiverID: senderID, Content: "See you then", SentAt: now},
		{ID: "m-2", SenderID: senderID, ReceiverID: "user-3", Content: "Thanks!", Read: true, SentAt: now.Add(time.Minute)},
	}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(&domain.User{ID: receiverID, Name: "Kofi"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), "user-3").Return(&domain.User{ID: "user-3", Name: "Esi"}, nil)

	conversations, err := service.ListConversations(ctx, senderID)
	assert.NoError(t, err)
	assert.Len(t, conversations, 2)
	// Newest conversation first.
	assert.Equal(t, "Esi", conversations[0].UserName)
	assert.False(t, conversations[0].Unread)
	assert.Equal(t, "Kofi", conversations[1].UserName)
	assert.True(t, conversations[1].Unread)
}

func TestListConversations_OrphanedPartnerSkipped(t *testing.T) {
	service, userRepo, messageRepo := NewMock(t)
	ctx := context.Background()

	messageRepo.EXPECT().ListLatest(gomock.Any(), senderID).Return([]domain.Message{
		{ID: "m-1", SenderID: "ghost", ReceiverID: senderID, Content: "hello?", SentAt: time.Now()},
	}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)

	conversations, err := service.ListConversations(ctx, senderID)
	assert.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestGetDialog(t *testing.T) {
	service, userRepo, messageRepo := NewMock(t)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		expectedLen   int
	}{
		{
			name: "Dialog fetched and marked read",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(&domain.User{ID: receiverID, Name: "Kofi"}, nil)
				messageRepo.EXPECT().FindDialog(gomock.Any(), senderID, receiverID).Return([]domain.Message{
					{ID: "m-1", SenderID: senderID, ReceiverID: receiverID, Content: "Hello", SentAt: now.Add(-time.Hour)},
					{ID: "m-2", SenderID: receiverID, ReceiverID: senderID, Content: "Hi there", SentAt: now},
				}, nil)
				messageRepo.EXPECT().MarkRead(gomock.Any(), receiverID, senderID).Return(nil)
			},
			expectedLen: 2,
		},
		{
			name: "Unknown partner",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), receiverID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			messages, err := service.GetDialog(ctx, senderID, receiverID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, messages, tt.expectedLen)
			assert.Equal(t, "Hello", messages[0].Content)
		})
	}
}
