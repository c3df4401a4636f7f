package walletservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/pg"
)

//go:generate mockgen -source=walletservice.go -destination=mocks.go -package=walletservice

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	FindMomoByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type Service struct {
	userRepo        UserRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(userRepo UserRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrUserNotFound      = errors.New("user not found")
	ErrBelowMinimum      = errors.New("amount below minimum")
)

var (
	minMomoDeposit    = decimal.NewFromInt(100)
	minMomoWithdrawal = decimal.NewFromInt(500)
)

// Deposit credits the wallet and appends a completed deposit transaction, both
// inside one storage transaction.
func (s *Service) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}

	var wallet *domain.Wallet
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.userRepo.AdjustBalance(ctx, userID, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrUserNotFound
		}
		transaction, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ID:     uuid.NewString(),
			UserID: userID,
			Amount: amount,
			Type:   domain.DepositTransaction,
			Status: domain.CompletedTransactionStatus,
			Date:   time.Now(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("deposit failed", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, err
	}
	return wallet, transaction, nil
}

// Withdraw debits the wallet with a commit-time balance guard. A balance that
// looked sufficient on a prior read can still fail here.
func (s *Service) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}

	var wallet *domain.Wallet
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		wallet, err = s.userRepo.AdjustBalance(ctx, userID, amount.Neg())
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}
		transaction, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ID:     uuid.NewString(),
			UserID: userID,
			Amount: amount,
			Type:   domain.WithdrawTransaction,
			Status: domain.CompletedTransactionStatus,
			Date:   time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("withdrawal failed", zap.String("user_id", userID), zap.Error(err))
		}
		return nil, nil, err
	}
	return wallet, transaction, nil
}

func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.userRepo.GetWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrUserNotFound
	}
	return wallet, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetMomoTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindMomoByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch mobile money transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// InitiateMomoDeposit records a pending mobile money deposit. The wallet is
// credited only when an admin confirms the transfer against the reference.
func (s *Service) InitiateMomoDeposit(ctx context.Context, userID, provider, phoneNumber string, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if amount.LessThan(minMomoDeposit) {
		return nil, ErrBelowMinimum
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	transaction, err := s.transactionRepo.Create(ctx, &domain.Transaction{
		ID:             uuid.NewString(),
		UserID:         userID,
		Amount:         amount,
		Type:           domain.MomoDepositTransaction,
		Status:         domain.PendingTransactionStatus,
		Provider:       provider,
		PhoneNumber:    phoneNumber,
		TransactionRef: newTransactionRef("WFD"),
		Date:           time.Now(),
	})
	if err != nil {
		zap.L().Error("can't record mobile money deposit", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// MomoWithdraw debits the wallet immediately and records a pending
// mobile_withdrawal that is paid out manually.
func (s *Service) MomoWithdraw(ctx context.Context, userID, provider, phoneNumber string, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}
	if amount.LessThan(minMomoWithdrawal) {
		return nil, nil, ErrBelowMinimum
	}

	var wallet *domain.Wallet
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		wallet, err = s.userRepo.AdjustBalance(ctx, userID, amount.Neg())
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}
		transaction, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ID:             uuid.NewString(),
			UserID:         userID,
			Amount:         amount,
			Type:           domain.MobileWithdrawalTransaction,
			Status:         domain.PendingTransactionStatus,
			Provider:       provider,
			PhoneNumber:    phoneNumber,
			TransactionRef: newTransactionRef("WFW"),
			Date:           time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("mobile money withdrawal failed", zap.String("user_id", userID), zap.Error(err))
		}
		return nil, nil, err
	}
	return wallet, transaction, nil
}

func newTransactionRef(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + time.Now().UTC().Format("20060102150405") + suffix
}
