package wallet

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

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), userID).Return(&domain.User{
					ID:            userID,
					Name:          "Jean Mbarga",
					Email:         "jean@example.com",
					Role:          domain.UserRole,
					WalletBalance: decimal.NewFromInt(1000),
					CreatedAt:     time.Now(),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.GetProfile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "jean@example.com", body.Email)
				assert.True(t, body.WalletBalance.Equal(decimal.NewFromInt(1000)))
			}
		})
	}
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), userID).Return(&domain.Wallet{
					WalletBalance: decimal.NewFromInt(1000),
					TotalInvested: decimal.NewFromInt(500),
					TotalReturns:  decimal.Zero,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{
				WalletBalance: decimal.NewFromInt(1000),
				TotalInvested: decimal.NewFromInt(500),
				TotalReturns:  decimal.Zero,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/wallet", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.GetWallet(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, tt.expectedBody.WalletBalance.Equal(body.WalletBalance))
				assert.True(t, tt.expectedBody.TotalInvested.Equal(body.TotalInvested))
			}
		})
	}
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
			name: "Successful deposit",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), userID, decimal.NewFromInt(1000)).Return(
					&domain.Wallet{WalletBalance: decimal.NewFromInt(1500)},
					&domain.Transaction{
						ID:     "tx-1",
						Type:   domain.DepositTransaction,
						Amount: decimal.NewFromInt(1000),
						Status: domain.CompletedTransactionStatus,
						Date:   time.Now(),
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
			name: "Invalid amount",
			body: `{"amount":-10}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), userID, decimal.NewFromInt(-10)).
					Return(nil, nil, walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), userID, decimal.NewFromInt(1000)).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/deposit", strings.NewReader(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
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
			name: "Successful withdrawal",
			body: `{"amount":300}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), userID, decimal.NewFromInt(300)).Return(
					&domain.Wallet{WalletBalance: decimal.NewFromInt(700)},
					&domain.Transaction{
						ID:     "tx-2",
						Type:   domain.WithdrawTransaction,
						Amount: decimal.NewFromInt(300),
						Status: domain.CompletedTransactionStatus,
						Date:   time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), userID, decimal.NewFromInt(5000)).
					Return(nil, nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Invalid amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), userID, decimal.NewFromInt(0)).
					Return(nil, nil, walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/withdraw", strings.NewReader(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Transactions returned",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), userID).Return([]domain.Transaction{
					{ID: "tx-1", Type: domain.DepositTransaction, Amount: decimal.NewFromInt(1000), Date: time.Now()},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), userID).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.GetTransactions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
