package projectrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const projectColumns = `p.id, p.title, p.description, p.roi, p.duration, p.funding_goal, p.funded_amount,
       p.min_investment, p.risk_level, p.category, p.image, p.status, p.verified, p.blocked,
       (SELECT COUNT(*) FROM project_investors i WHERE i.project_id = p.id) AS investor_count,
       p.created_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ROI, &p.Duration, &p.FundingGoal, &p.FundedAmount,
		&p.MinInvestment, &p.RiskLevel, &p.Category, &p.Image, &p.Status, &p.Verified, &p.Blocked,
		&p.InvestorCount, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (id, title, description, roi, duration, funding_goal, min_investment,
		                      risk_level, category, image, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.ROI, project.Duration,
		project.FundingGoal, project.MinInvestment, project.RiskLevel, project.Category,
		project.Image, project.Status,
	).Scan(&project.CreatedAt)
	if err != nil {
		zap.L().Error("can't save project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) FindByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`
	project, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

// ListVisible returns projects shown in the public catalog: verified, not
// blocked and past admin review.
func (r *Repository) ListVisible(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.verified = TRUE AND p.blocked = FALSE AND p.status <> 'pending'
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			zap.L().Error("failed to scan project row", zap.Error(err))
			return nil, err
		}
		projects = append(projects, *project)
	}

	return projects, nil
}

// AddFunding atomically increments funded_amount. The increment is deliberately
// unguarded beyond existence: investability is checked before the transaction,
// and concurrent investments racing past the goal all commit with overrun.
// Returns (nil, nil) if the project is missing. Status is not derived here;
// callers recompute it via domain.NextStatus against the returned snapshot.
func (r *Repository) AddFunding(ctx context.Context, projectID string, amount decimal.Decimal) (*domain.Project, error) {
	query := `
		UPDATE projects
		SET funded_amount = funded_amount + $1
		WHERE id = $2
		RETURNING id, title, funding_goal, funded_amount, status
	`
	var p domain.Project
	err := r.db.QueryRow(ctx, query, amount, projectID).Scan(&p.ID, &p.Title, &p.FundingGoal, &p.FundedAmount, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't add funding", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, projectID, status string) error {
	query := `UPDATE projects SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, projectID); err != nil {
		zap.L().Error("can't update project status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendInvestor(ctx context.Context, entry *domain.InvestorEntry) error {
	query := `
		INSERT INTO project_investors (project_id, user_id, amount, invested_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, entry.ProjectID, entry.UserID, entry.Amount, entry.InvestedAt); err != nil {
		zap.L().Error("can't append investor entry", zap.Error(err))
		return err
	}
	return nil
}

// SetVerified marks the project reviewed and opens it for investment.
func (r *Repository) SetVerified(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `UPDATE projects p SET verified = TRUE, status = 'open' WHERE p.id = $1 RETURNING ` + projectColumns
	project, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't verify project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) SetBlocked(ctx context.Context, projectID string, blocked bool) (*domain.Project, error) {
	query := `UPDATE projects p SET blocked = $1 WHERE p.id = $2 RETURNING ` + projectColumns
	project, err := scanProject(r.db.QueryRow(ctx, query, blocked, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't block project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) CountProjects(ctx context.Context) (total, active, pending int, err error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'open' AND verified),
		       COUNT(*) FILTER (WHERE status = 'pending')
		FROM projects
	`
	if err = r.db.QueryRow(ctx, query).Scan(&total, &active, &pending); err != nil {
		zap.L().Error("can't count projects", zap.Error(err))
		return 0, 0, 0, err
	}
	return total, active, pending, nil
}
