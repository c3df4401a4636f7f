package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wefund/wefund/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows(user *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "email", "password_hash", "age", "role",
		"wallet_balance", "total_invested", "total_returns",
		"verified", "blocked", "created_at",
	}).AddRow(
		user.ID, user.Name, user.Email, user.PasswordHash, user.Age, user.Role,
		user.WalletBalance, user.TotalInvested, user.TotalReturns,
		user.Verified, user.Blocked, user.CreatedAt,
	)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	user := &domain.User{
		ID:            "user-1",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		PasswordHash:  "hashed",
		Age:           30,
		Role:          domain.UserRole,
		WalletBalance: decimal.NewFromInt(1000),
		TotalInvested: decimal.NewFromInt(500),
		TotalReturns:  decimal.Zero,
		CreatedAt:     now,
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "jane@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("jane@example.com").
					WillReturnRows(userRows(user))
			},
			expectErr: false,
			result:    user,
		},
		{
			name:  "User not found",
			email: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "jane@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("jane@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "User created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("user-1", "Jane Doe", "jane@example.com", "hashed", 30, domain.UserRole).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
			expectErr: false,
		},
		{
			name: "Duplicate email",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("user-1", "Jane Doe", "jane@example.com", "hashed", 30, domain.UserRole).
					WillReturnError(errors.New("unique constraint violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), &domain.User{
				ID:           "user-1",
				Name:         "Jane Doe",
				Email:        "jane@example.com",
				PasswordHash: "hashed",
				Age:          30,
				Role:         domain.UserRole,
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, user.CreatedAt)
			}
		})
	}
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		delta     decimal.Decimal
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:  "Credit applied",
			delta: decimal.NewFromInt(1000),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET wallet_balance = wallet_balance + $1")).
					WithArgs(decimal.NewFromInt(1000), "user-1").
					WillReturnRows(pgxmock.NewRows([]string{"wallet_balance", "total_invested", "total_returns"}).
						AddRow(decimal.NewFromInt(1500), decimal.Zero, decimal.Zero))
			},
			result: &domain.Wallet{
				WalletBalance: decimal.NewFromInt(1500),
				TotalInvested: decimal.Zero,
				TotalReturns:  decimal.Zero,
			},
		},
		{
			name:  "Debit past zero matches no row",
			delta: decimal.NewFromInt(-5000),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET wallet_balance = wallet_balance + $1")).
					WithArgs(decimal.NewFromInt(-5000), "user-1").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			delta: decimal.NewFromInt(1000),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET wallet_balance = wallet_balance + $1")).
					WithArgs(decimal.NewFromInt(1000), "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.AdjustBalance(context.Background(), "user-1", tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, wallet)
			}
		})
	}
}

func TestRepository_ApplyInvestment(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		result    *domain.Wallet
	}{
		{
			name: "Investment debits wallet and bumps total",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("total_invested = total_invested + $1")).
					WithArgs(decimal.NewFromInt(500), "user-1").
					WillReturnRows(pgxmock.NewRows([]string{"wallet_balance", "total_invested", "total_returns"}).
						AddRow(decimal.NewFromInt(500), decimal.NewFromInt(500), decimal.Zero))
			},
			result: &domain.Wallet{
				WalletBalance: decimal.NewFromInt(500),
				TotalInvested: decimal.NewFromInt(500),
				TotalReturns:  decimal.Zero,
			},
		},
		{
			name: "Insufficient balance matches no row",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("total_invested = total_invested + $1")).
					WithArgs(decimal.NewFromInt(500), "user-1").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.ApplyInvestment(context.Background(), "user-1", decimal.NewFromInt(500))
			assert.NoError(t, err)
			assert.Equal(t, tt.result, wallet)
		})
	}
}

func TestRepository_GetWallet(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_balance, total_invested, total_returns FROM users WHERE id = $1")).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_balance", "total_invested", "total_returns"}).
			AddRow(decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.Zero))

	wallet, err := repo.GetWallet(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, &domain.Wallet{
		WalletBalance: decimal.NewFromInt(1000),
		TotalInvested: decimal.NewFromInt(200),
		TotalReturns:  decimal.Zero,
	}, wallet)
}

func TestRepository_SetVerified(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	user := &domain.User{
		ID:            "user-1",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Role:          domain.UserRole,
		WalletBalance: decimal.Zero,
		TotalInvested: decimal.Zero,
		TotalReturns:  decimal.Zero,
		Verified:      true,
		CreatedAt:     now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET verified = TRUE WHERE id = $1")).
		WithArgs("user-1").
		WillReturnRows(userRows(user))

	result, err := repo.SetVerified(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.True(t, result.Verified)
}

func TestRepository_SetBlocked(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	user := &domain.User{
		ID:            "user-1",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Role:          domain.UserRole,
		WalletBalance: decimal.Zero,
		TotalInvested: decimal.Zero,
		TotalReturns:  decimal.Zero,
		Blocked:       true,
		CreatedAt:     now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET blocked = $1 WHERE id = $2")).
		WithArgs(true, "user-1").
		WillReturnRows(userRows(user))

	result, err := repo.SetBlocked(context.Background(), "user-1", true)
	assert.NoError(t, err)
	assert.True(t, result.Blocked)
}

func TestRepository_CountUsers(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(*) FILTER (WHERE verified) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "count"}).AddRow(120, 80))

	total, verified, err := repo.CountUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, total)
	assert.Equal(t, 80, verified)
}
