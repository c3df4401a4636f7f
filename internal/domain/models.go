package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	PasswordHash  string          `db:"password_hash"`
	Age           int             `db:"age"`
	Role          string          `db:"role"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	TotalInvested decimal.Decimal `db:"total_invested"`
	TotalReturns  decimal.Decimal `db:"total_returns"`
	Verified      bool            `db:"verified"`
	Blocked       bool            `db:"blocked"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Project struct {
	ID            string          `db:"id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	ROI           float64         `db:"roi"`
	Duration      string          `db:"duration"`
	FundingGoal   decimal.Decimal `db:"funding_goal"`
	FundedAmount  decimal.Decimal `db:"funded_amount"`
	MinInvestment decimal.Decimal `db:"min_investment"`
	RiskLevel     string          `db:"risk_level"`
	Category      string          `db:"category"`
	Image         string          `db:"image"`
	Status        string          `db:"status"`
	Verified      bool            `db:"verified"`
	Blocked       bool            `db:"blocked"`
	InvestorCount int             `db:"investor_count"`
	CreatedAt     time.Time       `db:"created_at"`
}

// InvestorEntry is one investment event on a project. Entries are append-only;
// a user appears once per investment, not once per project.
type InvestorEntry struct {
	ID         int             `db:"id"`
	ProjectID  string          `db:"project_id"`
	UserID     string          `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	InvestedAt time.Time       `db:"invested_at"`
}

type Transaction struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	Amount         decimal.Decimal `db:"amount"`
	Type           string          `db:"type"`
	Status         string          `db:"status"`
	ProjectID      string          `db:"project_id"`
	ProjectTitle   string          `db:"project_title"`
	Provider       string          `db:"provider"`
	PhoneNumber    string          `db:"phone_number"`
	TransactionRef string          `db:"transaction_ref"`
	ConfirmedBy    string          `db:"confirmed_by"`
	ConfirmedAt    *time.Time      `db:"confirmed_at"`
	Date           time.Time       `db:"date"`
}

type Wallet struct {
	WalletBalance decimal.Decimal
	TotalInvested decimal.Decimal
	TotalReturns  decimal.Decimal
}

// Message is a direct message between two users. Read flips to true when the
// receiver opens the dialog.
type Message struct {
	ID         string    `db:"id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Content    string    `db:"content"`
	Read       bool      `db:"read"`
	SentAt     time.Time `db:"sent_at"`
}

// ConversationSummary is one inbox entry: the partner and the latest message
// exchanged with them.
type ConversationSummary struct {
	UserID      string
	UserName    string
	LastMessage string
	Timestamp   time.Time
	Unread      bool
}
