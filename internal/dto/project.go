package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectResponseDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ROI           float64         `json:"roi" example:"12.5"`
	Duration      string          `json:"duration" example:"12 months"`
	FundingGoal   decimal.Decimal `json:"fundingGoal" example:"5000000"`
	FundedAmount  decimal.Decimal `json:"fundedAmount" example:"1250000"`
	MinInvestment decimal.Decimal `json:"minInvestment" example:"10000"`
	RiskLevel     string          `json:"riskLevel" example:"Medium"`
	Status        string          `json:"status" example:"open"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	Investors     int             `json:"investors"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type InvestRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"10000"`
}

type InvestResponseDTO struct {
	Message       string          `json:"message"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
}

type ProjectCreateRequestDTO struct {
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description"`
	ROI           float64         `json:"roi"`
	Duration      string          `json:"duration"`
	FundingGoal   decimal.Decimal `json:"fundingGoal" validate:"required"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	RiskLevel     string          `json:"riskLevel"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
}
