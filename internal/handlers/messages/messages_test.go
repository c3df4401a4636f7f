package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/messageservice"
	"github.com/wefund/wefund/pkg/auth"
)

const (
	userID    = "c7b3d8e0-5e0b-4b0f-8b3a-3b9f4b3d3b3d"
	partnerID = "a1b2c3d4-0000-4000-8000-000000000002"
)

func NewMock(t *testing.T) (*MessageHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestListConversationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Conversations returned",
			prepareMock: func() {
				service.EXPECT().ListConversations(gomock.Any(), userID).Return([]domain.ConversationSummary{
					{UserID: partnerID, UserName: "Kofi", LastMessage: "See you then", Timestamp: time.Now(), Unread: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListConversations(gomock.Any(), userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.ListConversations(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ConversationDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, "Kofi", body[0].UserName)
				assert.True(t, body[0].Unread)
			}
		})
	}
}

func TestGetDialogHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Dialog returned",
			prepareMock: func() {
				service.EXPECT().GetDialog(gomock.Any(), userID, partnerID).Return([]domain.Message{
					{ID: "m-1", SenderID: userID, ReceiverID: partnerID, Content: "Hello", SentAt: time.Now()},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Partner not found",
			prepareMock: func() {
				service.EXPECT().GetDialog(gomock.Any(), userID, partnerID).Return(nil, messageservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetDialog(gomock.Any(), userID, partnerID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/messages/"+partnerID, nil)
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("id", partnerID)
			ctx := context.WithValue(authCtx(), chi.RouteCtxKey, routeCtx)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetDialog(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MessageDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, "Hello", body[0].Message)
			}
		})
	}
}

func TestSendHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Message sent",
			body: `{"receiverId":"` + partnerID + `","message":"Is the project still open?"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), userID, partnerID, "Is the project still open?").Return(&messageservice.SentMessage{
					Message: &domain.Message{
						ID:         "m-1",
						SenderID:   userID,
						ReceiverID: partnerID,
						Content:    "Is the project still open?",
						SentAt:     now,
					},
					SenderName:   "Ama",
					ReceiverName: "Kofi",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Blank message",
			body: `{"receiverId":"` + partnerID + `","message":"  "}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), userID, partnerID, "  ").Return(nil, messageservice.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Recipient not found",
			body: `{"receiverId":"` + partnerID + `","message":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), userID, partnerID, "hello").Return(nil, messageservice.ErrRecipientNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"receiverId":"` + partnerID + `","message":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), userID, partnerID, "hello").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/messages/send", strings.NewReader(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Send(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.MessageSentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Ama", body.SenderName)
				assert.Equal(t, "Kofi", body.ReceiverName)
				assert.False(t, body.Read)
			}
		})
	}
}
