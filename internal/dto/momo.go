package dto

import "github.com/shopspring/decimal"

type MomoRequestDTO struct {
	Provider    string          `json:"provider" example:"mtn_money"`
	PhoneNumber string          `json:"phoneNumber" example:"+237670000000"`
	Amount      decimal.Decimal `json:"amount" example:"5000"`
}

type MomoDepositResponseDTO struct {
	Message        string          `json:"message"`
	TransactionRef string          `json:"transactionRef"`
	Amount         decimal.Decimal `json:"amount"`
}

type MomoWithdrawResponseDTO struct {
	Message        string          `json:"message"`
	TransactionRef string          `json:"transactionRef"`
	Amount         decimal.Decimal `json:"amount"`
	WalletBalance  decimal.Decimal `json:"walletBalance"`
}
