package investservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/notify"
	"github.com/wefund/wefund/internal/pg"
)

//go:generate mockgen -source=investservice.go -destination=mocks.go -package=investservice

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	ApplyInvestment(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error)
}

type ProjectRepo interface {
	FindByID(ctx context.Context, projectID string) (*domain.Project, error)
	AddFunding(ctx context.Context, projectID string, amount decimal.Decimal) (*domain.Project, error)
	UpdateStatus(ctx context.Context, projectID, status string) error
	AppendInvestor(ctx context.Context, entry *domain.InvestorEntry) error
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

type Notifier interface {
	Notify(event notify.Event)
}

type Service struct {
	userRepo        UserRepo
	projectRepo     ProjectRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	notifier        Notifier
}

func New(userRepo UserRepo, projectRepo ProjectRepo, transactionRepo TransactionRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		userRepo:        userRepo,
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		notifier:        notifier,
	}
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectNotOpen    = errors.New("project is not open for investment")
	ErrBelowMinimum      = errors.New("amount below project minimum investment")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrUserNotFound      = errors.New("user not found")
)

// Invest moves amount from the user's wallet into the project: wallet debit,
// funded amount increment, investor entry and ledger transaction commit
// together or not at all. The final investment that crosses the funding goal
// is accepted in full; the overrun is not clamped.
func (s *Service) Invest(ctx context.Context, userID, projectID string, amount decimal.Decimal) (*domain.Wallet, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if !domain.Investable(project) {
		return nil, ErrProjectNotOpen
	}
	if amount.LessThan(project.MinInvestment) {
		return nil, ErrBelowMinimum
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.WalletBalance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	var wallet *domain.Wallet
	var title string
	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Debit before credit: the wallet guard re-checks the balance at
		// commit time, so the pre-read above is advisory only.
		wallet, err = s.userRepo.ApplyInvestment(ctx, userID, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}

		// The funding increment is unconditional: a concurrent investment that
		// crossed the goal first does not invalidate this one, the overrun is
		// accepted in full.
		funded, err := s.projectRepo.AddFunding(ctx, projectID, amount)
		if err != nil {
			return err
		}
		if funded == nil {
			return ErrProjectNotFound
		}
		title = funded.Title

		next := domain.NextStatus(funded.FundedAmount, funded.FundingGoal, funded.Status)
		if next != funded.Status {
			if err := s.projectRepo.UpdateStatus(ctx, projectID, next); err != nil {
				return err
			}
			zap.L().Info("project reached its funding goal",
				zap.String("project_id", projectID),
				zap.String("status", next))
		}

		if err := s.projectRepo.AppendInvestor(ctx, &domain.InvestorEntry{
			ProjectID:  projectID,
			UserID:     userID,
			Amount:     amount,
			InvestedAt: now,
		}); err != nil {
			return err
		}

		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ID:           uuid.NewString(),
			UserID:       userID,
			Amount:       amount,
			Type:         domain.InvestmentTransaction,
			Status:       domain.CompletedTransactionStatus,
			ProjectID:    projectID,
			ProjectTitle: title,
			Date:         now,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrProjectNotFound) {
			zap.L().Error("investment failed",
				zap.String("user_id", userID),
				zap.String("project_id", projectID),
				zap.Error(err))
		}
		return nil, err
	}

	s.notifier.Notify(notify.Event{
		Type:         notify.InvestmentMade,
		UserID:       userID,
		Amount:       amount,
		ProjectID:    projectID,
		ProjectTitle: title,
	})

	return wallet, nil
}
