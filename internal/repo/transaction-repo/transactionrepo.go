package transactionrepo

import (
	"context"
	"errors"
	"time"

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

const transactionColumns = `id, user_id, amount, type, status, project_id, project_title,
       provider, phone_number, transaction_ref, confirmed_by, confirmed_at, date`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Status, &t.ProjectID, &t.ProjectTitle,
		&t.Provider, &t.PhoneNumber, &t.TransactionRef, &t.ConfirmedBy, &t.ConfirmedAt, &t.Date,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create appends a ledger entry. Entries are immutable after creation except
// for the pending -> completed confirmation handled by ConfirmByRef.
func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, amount, type, status, project_id, project_title,
		                          provider, phone_number, transaction_ref, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Type, transaction.Status,
		transaction.ProjectID, transaction.ProjectTitle, transaction.Provider, transaction.PhoneNumber,
		transaction.TransactionRef, transaction.Date,
	)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindMomoByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND type IN ('momo_deposit', 'mobile_withdrawal')
		ORDER BY date DESC
	`
	return r.findMany(ctx, query, userID)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}

	return transactions, nil
}

func (r *Repository) FindByRef(ctx context.Context, ref string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_ref = $1`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction by ref", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// ConfirmByRef transitions a pending transaction to completed and stamps the
// confirming admin. The status guard makes the call idempotent at the storage
// level: a second confirmation matches no row and returns (nil, nil).
func (r *Repository) ConfirmByRef(ctx context.Context, ref, adminID string, confirmedAt time.Time) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = 'completed', confirmed_by = $2, confirmed_at = $3
		WHERE transaction_ref = $1 AND status = 'pending'
		RETURNING ` + transactionColumns
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, ref, adminID, confirmedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't confirm transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) SumCompletedByType(ctx context.Context, transactionType string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE status = 'completed' AND type = $1`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, transactionType).Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
