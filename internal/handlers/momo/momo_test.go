package momo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/walletservice"
	"github.com/wefund/wefund/pkg/auth"
)

const userID = "c7b3d8e0-5e0b-4b0f-8b3a-3b9f4b3d3b3d"

func NewMock(t *testing.T) (*MomoHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending deposit initiated",
			body: `{"provider":"mtn_money","phoneNumber":"+237670000000","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().InitiateMomoDeposit(gomock.Any(), userID, "mtn_money", "+237670000000", decimal.NewFromInt(5000)).
					Return(&domain.Transaction{
						TransactionRef: "WFD20250101120000ABCDEF12",
						Amount:         decimal.NewFromInt(5000),
						Status:         domain.PendingTransactionStatus,
						Date:           time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount below minimum",
			body: `{"provider":"mtn_money","phoneNumber":"+237670000000","amount":50}`,
			prepareMock: func() {
				service.EXPECT().InitiateMomoDeposit(gomock.Any(), userID, "mtn_money", "+237670000000", decimal.NewFromInt(50)).
					Return(nil, walletservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"provider":"mtn_money","phoneNumber":"+237670000000","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().InitiateMomoDeposit(gomock.Any(), userID, "mtn_money", "+237670000000", decimal.NewFromInt(5000)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/mobile-money/deposit", strings.NewReader(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.MomoDepositResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "WFD20250101120000ABCDEF12", body.TransactionRef)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending withdrawal initiated",
			body: `{"provider":"orange_money","phoneNumber":"+237690000000","amount":1000}`,
			prepareMock: func() {
				service.EXPECT().MomoWithdraw(gomock.Any(), userID, "orange_money", "+237690000000", decimal.NewFromInt(1000)).
					Return(&domain.Wallet{WalletBalance: decimal.NewFromInt(500)},
						&domain.Transaction{
							TransactionRef: "WFW20250101120000ABCDEF12",
							Amount:         decimal.NewFromInt(1000),
							Status:         domain.PendingTransactionStatus,
							Date:           time.Now(),
						}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"provider":"orange_money","phoneNumber":"+237690000000","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().MomoWithdraw(gomock.Any(), userID, "orange_money", "+237690000000", decimal.NewFromInt(5000)).
					Return(nil, nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Amount below minimum",
			body: `{"provider":"orange_money","phoneNumber":"+237690000000","amount":100}`,
			prepareMock: func() {
				service.EXPECT().MomoWithdraw(gomock.Any(), userID, "orange_money", "+237690000000", decimal.NewFromInt(100)).
					Return(nil, nil, walletservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/mobile-money/withdraw", strings.NewReader(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetMomoTransactions(gomock.Any(), userID).Return([]domain.Transaction{
		{
			ID:             "tx-1",
			Type:           domain.MomoDepositTransaction,
			Amount:         decimal.NewFromInt(5000),
			Status:         domain.PendingTransactionStatus,
			Provider:       "mtn_money",
			TransactionRef: "WFD20250101120000ABCDEF12",
			Date:           time.Now(),
		},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/mobile-money/transactions", nil)
	r = r.WithContext(authCtx())
	w := httptest.NewRecorder()
	handler.GetTransactions(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.TransactionDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, domain.MomoDepositTransaction, body[0].Type)
}
