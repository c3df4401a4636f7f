package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = `id, name, email, password_hash, age, role, wallet_balance, total_invested, total_returns, verified, blocked, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Age, &user.Role,
		&user.WalletBalance, &user.TotalInvested, &user.TotalReturns,
		&user.Verified, &user.Blocked, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, age, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Age, user.Role).Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AdjustBalance atomically applies delta to the wallet. The guard rejects any
// update that would drive the balance negative; in that case (nil, nil) is
// returned and no row is touched.
func (repo *Repository) AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance + $1
		WHERE id = $2 AND wallet_balance + $1 >= 0
		RETURNING wallet_balance, total_invested, total_returns
	`
	var wallet domain.Wallet
	err := repo.db.QueryRow(ctx, query, delta, userID).Scan(&wallet.WalletBalance, &wallet.TotalInvested, &wallet.TotalReturns)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't adjust balance", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// ApplyInvestment debits the wallet and bumps total_invested in one guarded
// statement. Returns (nil, nil) when the balance cannot cover the amount.
func (repo *Repository) ApplyInvestment(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance - $1, total_invested = total_invested + $1
		WHERE id = $2 AND wallet_balance - $1 >= 0
		RETURNING wallet_balance, total_invested, total_returns
	`
	var wallet domain.Wallet
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&wallet.WalletBalance, &wallet.TotalInvested, &wallet.TotalReturns)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't apply investment to wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (repo *Repository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT wallet_balance, total_invested, total_returns FROM users WHERE id = $1`
	var wallet domain.Wallet
	err := repo.db.QueryRow(ctx, query, userID).Scan(&wallet.WalletBalance, &wallet.TotalInvested, &wallet.TotalReturns)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (repo *Repository) SetVerified(ctx context.Context, userID string) (*domain.User, error) {
	query := `UPDATE users SET verified = TRUE WHERE id = $1 RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't verify user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetBlocked(ctx context.Context, userID string, blocked bool) (*domain.User, error) {
	query := `UPDATE users SET blocked = $1 WHERE id = $2 RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, blocked, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't block user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) CountUsers(ctx context.Context) (total, verified int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE verified) FROM users`
	if err = repo.db.QueryRow(ctx, query).Scan(&total, &verified); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, 0, err
	}
	return total, verified, nil
}
