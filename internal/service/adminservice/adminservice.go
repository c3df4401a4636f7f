package adminservice

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

//go:generate mockgen -source=adminservice.go -destination=mocks.go -package=adminservice

type UserRepo interface {
	AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (*domain.Wallet, error)
	SetVerified(ctx context.Context, userID string) (*domain.User, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error)
	CountUsers(ctx context.Context) (total, verified int, err error)
}

type ProjectRepo interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	SetVerified(ctx context.Context, projectID string) (*domain.Project, error)
	SetBlocked(ctx context.Context, projectID string, blocked bool) (*domain.Project, error)
	CountProjects(ctx context.Context) (total, active, pending int, err error)
}

type TransactionRepo interface {
	FindByRef(ctx context.Context, ref string) (*domain.Transaction, error)
	ConfirmByRef(ctx context.Context, ref, adminID string, confirmedAt time.Time) (*domain.Transaction, error)
	SumCompletedByType(ctx context.Context, transactionType string) (decimal.Decimal, error)
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
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyCompleted    = errors.New("transaction already completed")
	ErrUserNotFound        = errors.New("user not found")
	ErrProjectNotFound     = errors.New("project not found")
)

type Stats struct {
	TotalUsers       int
	VerifiedUsers    int
	TotalProjects    int
	ActiveProjects   int
	PendingProjects  int
	TotalInvestments decimal.Decimal
	TotalDeposits    decimal.Decimal
}

// ConfirmPendingDeposit completes a pending mobile money deposit and credits
// the wallet by the recorded amount. The completion reuses the original
// transaction row, so confirming twice credits exactly once: the second call
// fails with ErrAlreadyCompleted.
func (s *Service) ConfirmPendingDeposit(ctx context.Context, ref, adminID string) (*domain.Wallet, *domain.Transaction, error) {
	existing, err := s.transactionRepo.FindByRef(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil || existing.Type != domain.MomoDepositTransaction {
		return nil, nil, ErrTransactionNotFound
	}
	if existing.Status != domain.PendingTransactionStatus {
		return nil, nil, ErrAlreadyCompleted
	}

	var wallet *domain.Wallet
	var confirmed *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		confirmed, err = s.transactionRepo.ConfirmByRef(ctx, ref, adminID, time.Now())
		if err != nil {
			return err
		}
		// The status guard lost to a concurrent confirmation.
		if confirmed == nil {
			return ErrAlreadyCompleted
		}
		wallet, err = s.userRepo.AdjustBalance(ctx, confirmed.UserID, confirmed.Amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyCompleted) {
			zap.L().Error("deposit confirmation failed", zap.String("transaction_ref", ref), zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("deposit confirmed",
		zap.String("transaction_ref", ref),
		zap.String("admin_id", adminID),
		zap.String("amount", confirmed.Amount.String()))

	s.notifier.Notify(notify.Event{
		Type:   notify.DepositConfirmed,
		UserID: confirmed.UserID,
		Amount: confirmed.Amount,
	})

	return wallet, confirmed, nil
}

func (s *Service) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	project.ID = uuid.NewString()
	project.Status = domain.PendingProjectStatus
	project.FundedAmount = decimal.Zero

	created, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		zap.L().Error("can't create project", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// VerifyProject approves a reviewed project and opens it for investment.
func (s *Service) VerifyProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.SetVerified(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// BlockProject toggles the investment-disabling flag. Blocking is orthogonal
// to status: a blocked open project stays open but rejects investments.
func (s *Service) BlockProject(ctx context.Context, projectID string, blocked bool) (*domain.Project, error) {
	project, err := s.projectRepo.SetBlocked(ctx, projectID, blocked)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) VerifyUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.SetVerified(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) BlockUser(ctx context.Context, userID string, blocked bool) (*domain.User, error) {
	user, err := s.userRepo.SetBlocked(ctx, userID, blocked)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error
	if stats.TotalUsers, stats.VerifiedUsers, err = s.userRepo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProjects, stats.ActiveProjects, stats.PendingProjects, err = s.projectRepo.CountProjects(ctx); err != nil {
		return nil, err
	}
	if stats.TotalInvestments, err = s.transactionRepo.SumCompletedByType(ctx, domain.InvestmentTransaction); err != nil {
		return nil, err
	}
	// Deposits arrive through two channels: direct wallet deposits and
	// confirmed mobile money deposits. Both count.
	walletDeposits, err := s.transactionRepo.SumCompletedByType(ctx, domain.DepositTransaction)
	if err != nil {
		return nil, err
	}
	momoDeposits, err := s.transactionRepo.SumCompletedByType(ctx, domain.MomoDepositTransaction)
	if err != nil {
		return nil, err
	}
	stats.TotalDeposits = walletDeposits.Add(momoDeposits)
	return stats, nil
}
