package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type skillService struct {
	repository store.SkillRepository
	ids        IDGenerator

	logger *logger.Logger
}

func NewSkillService(repository store.SkillRepository, ids IDGenerator, logger *logger.Logger) SkillService {
	return &skillService{
		repository: repository,
		ids:        ids,
		logger:     logger,
	}
}

func (s *skillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.repository.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	return skills, nil
}

func (s *skillService) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	return s.repository.GetSkill(ctx, id)
}

func (s *skillService) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	skill.ID = s.ids.Generate()
	skill.Normalize()

	created, err := s.repository.CreateSkill(ctx, skill)
	if err != nil {
		return models.Skill{}, fmt.Errorf("error creating skill: %w", err)
	}

	logger.FromContext(ctx).Info().Str("id", created.ID).Msg("skill created")
	return created, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error) {
	current, err := s.repository.GetSkill(ctx, id)
	if err != nil {
		return models.Skill{}, err
	}

	updated, err := s.repository.UpdateSkill(ctx, update.Apply(current))
	if err != nil {
		return models.Skill{}, fmt.Errorf("error updating skill: %w", err)
	}

	return updated, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id string) error {
	if _, err := s.repository.GetSkill(ctx, id); err != nil {
		return err
	}

	return s.repository.DeleteSkill(ctx, id)
}
