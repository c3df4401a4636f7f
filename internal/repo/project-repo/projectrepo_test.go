package projectrepo

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
	repo := New(mockDB, nil)
	defer mockDB.Close()

	return repo, mockDB
}

func projectRows(p *domain.Project) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "title", "description", "roi", "duration", "funding_goal", "funded_amount",
		"min_investment", "risk_level", "category", "image", "status", "verified", "blocked",
		"investor_count", "created_at",
	}).AddRow(
		p.ID, p.Title, p.Description, p.ROI, p.Duration, p.FundingGoal, p.FundedAmount,
		p.MinInvestment, p.RiskLevel, p.Category, p.Image, p.Status, p.Verified, p.Blocked,
		p.InvestorCount, p.CreatedAt,
	)
}

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:            "project-1",
		Title:         "Solar Farm",
		Description:   "Community solar installation",
		ROI:           12.5,
		Duration:      "12 months",
		FundingGoal:   decimal.NewFromInt(10000),
		FundedAmount:  decimal.NewFromInt(2000),
		MinInvestment: decimal.NewFromInt(100),
		RiskLevel:     "Medium",
		Category:      "Energy",
		Status:        domain.OpenProjectStatus,
		Verified:      true,
		InvestorCount: 4,
		CreatedAt:     time.Now(),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	project := sampleProject()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs(project.ID, project.Title, project.Description, project.ROI, project.Duration,
			project.FundingGoal, project.MinInvestment, project.RiskLevel, project.Category,
			project.Image, project.Status).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.Create(context.Background(), project)
	assert.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Project found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM projects p WHERE p.id = $1")).
					WithArgs("project-1").
					WillReturnRows(projectRows(sampleProject()))
			},
			found: true,
		},
		{
			name: "Project not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM projects p WHERE p.id = $1")).
					WithArgs("project-1").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM projects p WHERE p.id = $1")).
					WithArgs("project-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			project, err := repo.FindByID(context.Background(), "project-1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "Solar Farm", project.Title)
			} else {
				assert.Nil(t, project)
			}
		})
	}
}

func TestRepository_ListVisible(t *testing.T) {
	repo, mock := NewMock(t)

	first := sampleProject()
	second := sampleProject()
	second.ID = "project-2"
	second.Title = "Cocoa Cooperative"

	rows := projectRows(first).AddRow(
		second.ID, second.Title, second.Description, second.ROI, second.Duration,
		second.FundingGoal, second.FundedAmount, second.MinInvestment, second.RiskLevel,
		second.Category, second.Image, second.Status, second.Verified, second.Blocked,
		second.InvestorCount, second.CreatedAt,
	)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.verified = TRUE AND p.blocked = FALSE AND p.status <> 'pending'")).
		WillReturnRows(rows)

	projects, err := repo.ListVisible(context.Background())
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Cocoa Cooperative", projects[1].Title)
}

func TestRepository_AddFunding(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		result    *domain.Project
	}{
		{
			name: "Funding applied",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET funded_amount = funded_amount + $1")).
					WithArgs(decimal.NewFromInt(500), "project-1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "title", "funding_goal", "funded_amount", "status"}).
						AddRow("project-1", "Solar Farm", decimal.NewFromInt(10000), decimal.NewFromInt(2500), domain.OpenProjectStatus))
			},
			result: &domain.Project{
				ID:           "project-1",
				Title:        "Solar Farm",
				FundingGoal:  decimal.NewFromInt(10000),
				FundedAmount: decimal.NewFromInt(2500),
				Status:       domain.OpenProjectStatus,
			},
		},
		{
			name: "Funding applied after the racing closer flipped status",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET funded_amount = funded_amount + $1")).
					WithArgs(decimal.NewFromInt(500), "project-1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "title", "funding_goal", "funded_amount", "status"}).
						AddRow("project-1", "Solar Farm", decimal.NewFromInt(10000), decimal.NewFromInt(10500), domain.FundedProjectStatus))
			},
			result: &domain.Project{
				ID:           "project-1",
				Title:        "Solar Farm",
				FundingGoal:  decimal.NewFromInt(10000),
				FundedAmount: decimal.NewFromInt(10500),
				Status:       domain.FundedProjectStatus,
			},
		},
		{
			name: "Unknown project matches no row",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET funded_amount = funded_amount + $1")).
					WithArgs(decimal.NewFromInt(500), "project-1").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			project, err := repo.AddFunding(context.Background(), "project-1", decimal.NewFromInt(500))
			assert.NoError(t, err)
			assert.Equal(t, tt.result, project)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET status = $1 WHERE id = $2")).
		WithArgs(domain.FundedProjectStatus, "project-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), "project-1", domain.FundedProjectStatus)
	assert.NoError(t, err)
}

func TestRepository_AppendInvestor(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO project_investors")).
		WithArgs("project-1", "user-1", decimal.NewFromInt(500), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AppendInvestor(context.Background(), &domain.InvestorEntry{
		ProjectID:  "project-1",
		UserID:     "user-1",
		Amount:     decimal.NewFromInt(500),
		InvestedAt: now,
	})
	assert.NoError(t, err)
}

func TestRepository_SetVerified(t *testing.T) {
	repo, mock := NewMock(t)

	project := sampleProject()
	mock.ExpectQuery(regexp.QuoteMeta("SET verified = TRUE, status = 'open'")).
		WithArgs("project-1").
		WillReturnRows(projectRows(project))

	result, err := repo.SetVerified(context.Background(), "project-1")
	assert.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, domain.OpenProjectStatus, result.Status)
}

func TestRepository_SetBlocked(t *testing.T) {
	repo, mock := NewMock(t)

	project := sampleProject()
	project.Blocked = true
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects p SET blocked = $1 WHERE p.id = $2")).
		WithArgs(true, "project-1").
		WillReturnRows(projectRows(project))

	result, err := repo.SetBlocked(context.Background(), "project-1", true)
	assert.NoError(t, err)
	assert.True(t, result.Blocked)
}

func TestRepository_CountProjects(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count", "count", "count"}).AddRow(15, 9, 3))

	total, active, pending, err := repo.CountProjects(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Equal(t, 9, active)
	assert.Equal(t, 3, pending)
}
