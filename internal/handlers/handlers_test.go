package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/wefund/wefund/docs"
	adminhandlers "github.com/wefund/wefund/internal/handlers/admin"
	authhandlers "github.com/wefund/wefund/internal/handlers/auth"
	messagehandlers "github.com/wefund/wefund/internal/handlers/messages"
	projecthandlers "github.com/wefund/wefund/internal/handlers/projects"
	"github.com/wefund/wefund/internal/service"
	"github.com/wefund/wefund/internal/service/walletservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		WalletService:  &walletservice.Service{},
		InvestService:  projecthandlers.NewMockInvestService(ctrl),
		ProjectService: projecthandlers.NewMockService(ctrl),
		MessageService: messagehandlers.NewMockService(ctrl),
		AdminService:   adminhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockProjectHandler := NewMockProjectHandler(ctrl)
	mockMomoHandler := NewMockMomoHandler(ctrl)
	mockMessageHandler := NewMockMessageHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().ListProjects(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().GetProject(gomock.Any(), gomock.Any()).AnyTimes()
	mockProjectHandler.EXPECT().Invest(gomock.Any(), gomock.Any()).AnyTimes()
	mockMomoHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockMomoHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockMomoHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().ListConversations(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().GetDialog(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().Send(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CreateProject(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().VerifyProject(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BlockProject(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().VerifyUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BlockUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		WalletHandler:  mockWalletHandler,
		ProjectHandler: mockProjectHandler,
		MomoHandler:    mockMomoHandler,
		MessageHandler: mockMessageHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/user/profile", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"POST", "/api/user/deposit", http.StatusUnauthorized},
		{"POST", "/api/user/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"GET", "/api/projects/", http.StatusUnauthorized},
		{"POST", "/api/projects/p-1/invest", http.StatusUnauthorized},
		{"GET", "/api/messages/", http.StatusUnauthorized},
		{"GET", "/api/messages/u-1", http.StatusUnauthorized},
		{"POST", "/api/messages/send", http.StatusUnauthorized},
		{"POST", "/api/mobile-money/deposit", http.StatusUnauthorized},
		{"POST", "/api/mobile-money/withdraw", http.StatusUnauthorized},
		{"GET", "/api/mobile-money/transactions", http.StatusUnauthorized},
		{"POST", "/api/admin/projects", http.StatusUnauthorized},
		{"POST", "/api/admin/momo/confirm", http.StatusUnauthorized},
		{"GET", "/api/admin/stats", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
