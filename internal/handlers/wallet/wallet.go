package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/walletservice"
	"github.com/wefund/wefund/pkg/auth"
	"github.com/wefund/wefund/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mocks.go -package=wallet

type Service interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func transactionDTO(t *domain.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:             t.ID,
		Type:           t.Type,
		Amount:         t.Amount,
		Status:         t.Status,
		ProjectTitle:   t.ProjectTitle,
		Provider:       t.Provider,
		TransactionRef: t.TransactionRef,
		Date:           t.Date,
	}
}

// GetProfile godoc
//
//	@Summary		Get user profile
//	@Description	Retrieve the authenticated user's account details and wallet totals.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO	"User profile"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/profile [get]
func (h *WalletHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	user, err := h.walletService.GetProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Age:           user.Age,
		Role:          user.Role,
		WalletBalance: user.WalletBalance,
		TotalInvested: user.TotalInvested,
		TotalReturns:  user.TotalReturns,
		Verified:      user.Verified,
		Blocked:       user.Blocked,
		MemberSince:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetWallet godoc
//
//	@Summary		Get current wallet state
//	@Description	Retrieve the wallet balance and aggregate totals for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balance and totals"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		WalletBalance: wallet.WalletBalance,
		TotalInvested: wallet.TotalInvested,
		TotalReturns:  wallet.TotalReturns,
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds into the wallet
//	@Description	Credit the wallet and record a completed deposit transaction.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletTransactionRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.WalletOperationResponseDTO	"Updated balance and transaction"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.WalletTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, transaction, err := h.walletService.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		Message:       "Deposit successful",
		WalletBalance: wallet.WalletBalance,
		Transaction:   transactionDTO(transaction),
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw funds from the wallet
//	@Description	Debit the wallet if the balance covers the amount at commit time.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletTransactionRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WalletOperationResponseDTO	"Updated balance and transaction"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.WalletTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, transaction, err := h.walletService.Withdraw(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		Message:       "Withdrawal successful",
		WalletBalance: wallet.WalletBalance,
		Transaction:   transactionDTO(transaction),
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the full ledger history for the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Transaction history"
//	@Success		204	{object}	utils.Response		"No transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionDTO, len(transactions))
	for i, t := range transactions {
		response[i] = transactionDTO(&t)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
