package dto

import "github.com/shopspring/decimal"

type ConfirmDepositRequestDTO struct {
	TransactionRef string `json:"transactionRef" validate:"required"`
}

type ConfirmDepositResponseDTO struct {
	Message        string          `json:"message"`
	TransactionRef string          `json:"transactionRef"`
	Amount         decimal.Decimal `json:"amount"`
	UserID         string          `json:"userId"`
}

type BlockRequestDTO struct {
	Blocked bool `json:"blocked"`
}

type UserResponseDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Age           int             `json:"age"`
	Role          string          `json:"role"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	TotalReturns  decimal.Decimal `json:"totalReturns"`
	Verified      bool            `json:"verified"`
	Blocked       bool            `json:"blocked"`
	MemberSince   string          `json:"memberSince"`
}

type StatsResponseDTO struct {
	TotalUsers       int             `json:"totalUsers"`
	VerifiedUsers    int             `json:"verifiedUsers"`
	TotalProjects    int             `json:"totalProjects"`
	ActiveProjects   int             `json:"activeProjects"`
	PendingProjects  int             `json:"pendingProjects"`
	TotalInvestments decimal.Decimal `json:"totalInvestments"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
}
