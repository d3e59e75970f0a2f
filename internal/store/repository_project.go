package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertProjectQuery(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error inserting project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return created, nil
}

func (r *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectProjectQuery(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Str("id", id).Msg("error selecting project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}

	return project, nil
}

// ListProjects returns projects newest first. An empty result is a non-nil
// empty slice.
func (r *projectRepository) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectProjectsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error selecting projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projects = append(projects, project)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// ListCategories returns the distinct category values used by any project.
func (r *projectRepository) ListCategories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListCategories").Msg("error selecting categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateProjectQuery(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Str("id", project.ID).Msg("error updating project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return updated, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	query, args, err := deleteByIDQuery(models.Project{}.TableName(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrProjectNotFound)
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Tags, &p.Categories,
		&p.Github, &p.Demo, &p.Featured, &p.Order, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
