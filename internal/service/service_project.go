package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type projectService struct {
	repository store.ProjectRepository
	ids        IDGenerator

	logger *logger.Logger
}

func NewProjectService(repository store.ProjectRepository, ids IDGenerator, logger *logger.Logger) ProjectService {
	return &projectService{
		repository: repository,
		ids:        ids,
		logger:     logger,
	}
}

func (s *projectService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	projects, err := s.repository.ListProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

// ListCategories returns the categories in use with "all" always first.
func (s *projectService) ListCategories(ctx context.Context) ([]string, error) {
	used, err := s.repository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	categories := make([]string, 0, len(used)+1)
	categories = append(categories, models.CategoryAll)
	for _, c := range used {
		if c != models.CategoryAll {
			categories = append(categories, c)
		}
	}

	return categories, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	return s.repository.GetProject(ctx, id)
}

func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	project.ID = s.ids.Generate()
	project.Normalize()

	created, err := s.repository.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	logger.FromContext(ctx).Info().Str("id", created.ID).Msg("project created")
	return created, nil
}

// UpdateProject merges update into the stored project. A missing project is
// reported before anything is written.
func (s *projectService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	current, err := s.repository.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	updated, err := s.repository.UpdateProject(ctx, update.Apply(current))
	if err != nil {
		return models.Project{}, fmt.Errorf("error updating project: %w", err)
	}

	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.repository.GetProject(ctx, id); err != nil {
		return err
	}

	return s.repository.DeleteProject(ctx, id)
}
