package domain

import "github.com/shopspring/decimal"

const (
	// PendingProjectStatus проект создан и ждёт проверки администратором;
	PendingProjectStatus string = "pending"
	// UnderReviewProjectStatus проект взят администратором в работу;
	UnderReviewProjectStatus string = "under_review"
	// ApprovedProjectStatus проект одобрен, но ещё не открыт для инвестиций;
	ApprovedProjectStatus string = "approved"
	// OpenProjectStatus проект открыт для инвестиций;
	OpenProjectStatus string = "open"
	// FundedProjectStatus цель сбора достигнута, инвестиции закрыты;
	FundedProjectStatus string = "funded"
	// ClosedProjectStatus проект закрыт;
	ClosedProjectStatus string = "closed"
	// RejectedProjectStatus проект отклонён администратором;
	RejectedProjectStatus string = "rejected"
	// CancelledProjectStatus проект отменён;
	CancelledProjectStatus string = "cancelled"
)

const (
	UserRole  string = "user"
	AdminRole string = "admin"
)

const (
	DepositTransaction          string = "deposit"
	WithdrawTransaction         string = "withdraw"
	InvestmentTransaction       string = "investment"
	MomoDepositTransaction      string = "momo_deposit"
	MobileWithdrawalTransaction string = "mobile_withdrawal"
)

const (
	PendingTransactionStatus   string = "pending"
	CompletedTransactionStatus string = "completed"
	FailedTransactionStatus    string = "failed"
)

// NextStatus is the single source of the funding transition: an open project
// becomes funded the moment its funded amount reaches the goal. Every mutator
// that changes funded_amount must go through it.
func NextStatus(fundedAmount, fundingGoal decimal.Decimal, current string) string {
	if current == OpenProjectStatus && fundedAmount.GreaterThanOrEqual(fundingGoal) {
		return FundedProjectStatus
	}
	return current
}

// Investable reports whether a project accepts new investments.
func Investable(p *Project) bool {
	return p.Status == OpenProjectStatus && !p.Blocked
}
