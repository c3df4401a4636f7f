package projectservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
)

//go:generate mockgen -source=projectservice.go -destination=mocks.go -package=projectservice

type Repo interface {
	ListVisible(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, projectID string) (*domain.Project, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrProjectNotFound = errors.New("project not found")

func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.ListVisible(ctx)
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		zap.L().Error("failed to get project", zap.Error(err))
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}
