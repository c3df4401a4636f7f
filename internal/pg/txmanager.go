package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrConflict is returned after a storage transaction kept aborting on
// serialization or deadlock errors and the retry budget ran out.
var ErrConflict = errors.New("storage transaction conflict")

const txMaxRetries = 3

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn inside a transaction bound to the context. An aborted
// transaction commits nothing; serialization failures and deadlocks are
// retried a bounded number of times before surfacing as ErrConflict.
func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < txMaxRetries; attempt++ {
		err = m.runInTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		zap.L().Warn("retrying aborted transaction", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return ErrConflict
}

func (m *Manager) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
