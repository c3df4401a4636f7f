package momo

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

//go:generate mockgen -source=momo.go -destination=mocks.go -package=momo

type Service interface {
	InitiateMomoDeposit(ctx context.Context, userID, provider, phoneNumber string, amount decimal.Decimal) (*domain.Transaction, error)
	MomoWithdraw(ctx context.Context, userID, provider, phoneNumber string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error)
	GetMomoTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type MomoHandler struct {
	walletService Service
}

func New(walletService Service) *MomoHandler {
	return &MomoHandler{
		walletService: walletService,
	}
}

// Deposit godoc
//
//	@Summary		Initiate a mobile money deposit
//	@Description	Record a pending deposit; the wallet is credited after admin confirmation.
//	@Tags			MobileMoney
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MomoRequestDTO			true	"Deposit request payload"
//	@Success		200		{object}	dto.MomoDepositResponseDTO	"Pending deposit reference"
//	@Failure		400		{object}	utils.Response				"Invalid amount or below minimum"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/mobile-money/deposit [post]
func (h *MomoHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.MomoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.walletService.InitiateMomoDeposit(r.Context(), userID, req.Provider, req.PhoneNumber, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MomoDepositResponseDTO{
		Message:        "Deposit initiated successfully",
		TransactionRef: transaction.TransactionRef,
		Amount:         transaction.Amount,
	})
}

// Withdraw godoc
//
//	@Summary		Initiate a mobile money withdrawal
//	@Description	Debit the wallet and record a pending payout to the given number.
//	@Tags			MobileMoney
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MomoRequestDTO			true	"Withdrawal request payload"
//	@Success		200		{object}	dto.MomoWithdrawResponseDTO	"Pending withdrawal reference"
//	@Failure		400		{object}	utils.Response				"Invalid amount or below minimum"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/mobile-money/withdraw [post]
func (h *MomoHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.MomoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, transaction, err := h.walletService.MomoWithdraw(r.Context(), userID, req.Provider, req.PhoneNumber, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MomoWithdrawResponseDTO{
		Message:        "Withdrawal initiated successfully",
		TransactionRef: transaction.TransactionRef,
		Amount:         transaction.Amount,
		WalletBalance:  wallet.WalletBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get mobile money transactions
//	@Description	List the authenticated user's mobile money deposits and withdrawals.
//	@Tags			MobileMoney
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Mobile money transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/mobile-money/transactions [get]
func (h *MomoHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	transactions, err := h.walletService.GetMomoTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionDTO{
			ID:             t.ID,
			Type:           t.Type,
			Amount:         t.Amount,
			Status:         t.Status,
			Provider:       t.Provider,
			TransactionRef: t.TransactionRef,
			Date:           t.Date,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
