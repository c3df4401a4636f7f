package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletTransactionRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"1000"`
}

type WalletResponseDTO struct {
	WalletBalance decimal.Decimal `json:"walletBalance" example:"1000"`
	TotalInvested decimal.Decimal `json:"totalInvested" example:"500"`
	TotalReturns  decimal.Decimal `json:"totalReturns" example:"0"`
}

type TransactionDTO struct {
	ID             string          `json:"id"`
	Type           string          `json:"type" example:"deposit"`
	Amount         decimal.Decimal `json:"amount" example:"1000"`
	Status         string          `json:"status" example:"completed"`
	ProjectTitle   string          `json:"projectTitle,omitempty"`
	Provider       string          `json:"provider,omitempty"`
	TransactionRef string          `json:"transactionRef,omitempty"`
	Date           time.Time       `json:"date"`
}

type WalletOperationResponseDTO struct {
	Message       string          `json:"message"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	Transaction   TransactionDTO  `json:"transaction"`
}
