package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tabrev/internal/domain"
	"tabrev/internal/port"
)

// CreateProjectInput is the DTO for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	CreatedBy   uuid.UUID
}

// ProjectService defines the project management contract.
type ProjectService interface {
	Create(ctx context.Context, input *CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projectRepo port.ProjectRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(projectRepo port.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) Create(ctx context.Context, input *CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.projectRepo.List(ctx, offset, limit)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}
