package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type skillRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSkillRepository(db *DB, logger *logger.Logger) SkillRepository {
	logger.Debug().Msg("creating skill repository")
	return &skillRepository{
		db:     db,
		logger: logger,
	}
}

func (r *skillRepository) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertSkillQuery(skill)
	if err != nil {
		return models.Skill{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSkill(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.CreateSkill").Msg("error inserting skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return created, nil
}

func (r *skillRepository) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSkillQuery(id)
	if err != nil {
		return models.Skill{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	skill, err := scanSkill(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Skill{}, ErrSkillNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.GetSkill").Str("id", id).Msg("error selecting skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}

	return skill, nil
}

func (r *skillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSkillsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error selecting skills")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		skills = append(skills, skill)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return skills, nil
}

func (r *skillRepository) UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateSkillQuery(skill)
	if err != nil {
		return models.Skill{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSkill(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Skill{}, ErrSkillNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.UpdateSkill").Str("id", skill.ID).Msg("error updating skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return updated, nil
}

func (r *skillRepository) DeleteSkill(ctx context.Context, id string) error {
	query, args, err := deleteByIDQuery(models.Skill{}.TableName(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrSkillNotFound)
}

func scanSkill(row rowScanner) (models.Skill, error) {
	var (
		s    models.Skill
		icon string
	)
	if err := row.Scan(&s.ID, &s.Title, &icon, &s.Skills, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return models.Skill{}, err
	}
	s.Icon = models.IconKind(icon)

	return s, nil
}
