package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"golang.org/x/sync/errgroup"
)

type portfolioService struct {
	users     store.UserRepository
	projects  store.ProjectRepository
	skills    store.SkillRepository
	timelines store.TimelineRepository

	logger *logger.Logger
}

func NewPortfolioService(storages *store.Storages, logger *logger.Logger) PortfolioService {
	return &portfolioService{
		users:     storages.UserRepository,
		projects:  storages.ProjectRepository,
		skills:    storages.SkillRepository,
		timelines: storages.TimelineRepository,
		logger:    logger,
	}
}

// GetPortfolioData loads the landing page aggregate with four concurrent
// queries. The first failure cancels the rest. A missing owner is not an
// error: OwnerData is then nil.
func (s *portfolioService) GetPortfolioData(ctx context.Context) (models.PortfolioData, error) {
	var data models.PortfolioData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := s.projects.ListProjects(gctx, models.ProjectFilter{})
		if err != nil {
			return fmt.Errorf("error loading projects: %w", err)
		}
		data.Projects = projects
		return nil
	})

	g.Go(func() error {
		skills, err := s.skills.ListSkills(gctx)
		if err != nil {
			return fmt.Errorf("error loading skills: %w", err)
		}
		data.Skills = skills
		return nil
	})

	g.Go(func() error {
		events, err := s.timelines.ListEvents(gctx)
		if err != nil {
			return fmt.Errorf("error loading timeline: %w", err)
		}
		data.TimelineEvents = events
		return nil
	})

	g.Go(func() error {
		owner, err := s.users.FindOwner(gctx)
		if errors.Is(err, store.ErrOwnerNotFound) {
			logger.FromContext(ctx).Warn().Msg("portfolio requested before an admin was provisioned")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error loading owner: %w", err)
		}
		ownerData := owner.Owner()
		data.OwnerData = &ownerData
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.PortfolioData{}, err
	}

	return data, nil
}

// UpdateOwner applies update to the admin profile. Credentials and role are
// never changed here.
func (s *portfolioService) UpdateOwner(ctx context.Context, update models.OwnerUpdate) (models.Owner, error) {
	owner, err := s.users.FindOwner(ctx)
	if err != nil {
		return models.Owner{}, err
	}

	update.Normalize()
	updated, err := s.users.UpdateProfile(ctx, owner.ID, update)
	if err != nil {
		return models.Owner{}, fmt.Errorf("error updating owner: %w", err)
	}

	return updated.Owner(), nil
}
