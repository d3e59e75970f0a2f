package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type timelineService struct {
	repository store.TimelineRepository
	ids        IDGenerator

	logger *logger.Logger
}

func NewTimelineService(repository store.TimelineRepository, ids IDGenerator, logger *logger.Logger) TimelineService {
	return &timelineService{
		repository: repository,
		ids:        ids,
		logger:     logger,
	}
}

// ListEvents returns the timeline, most recent year first.
func (s *timelineService) ListEvents(ctx context.Context) ([]models.TimelineEvent, error) {
	events, err := s.repository.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing timeline events: %w", err)
	}
	return events, nil
}

func (s *timelineService) CreateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
	event.ID = s.ids.Generate()
	event.Normalize()

	created, err := s.repository.CreateEvent(ctx, event)
	if err != nil {
		return models.TimelineEvent{}, fmt.Errorf("error creating timeline event: %w", err)
	}

	return created, nil
}

func (s *timelineService) UpdateEvent(ctx context.Context, id string, update models.TimelineUpdate) (models.TimelineEvent, error) {
	current, err := s.repository.GetEvent(ctx, id)
	if err != nil {
		return models.TimelineEvent{}, err
	}

	updated, err := s.repository.UpdateEvent(ctx, update.Apply(current))
	if err != nil {
		return models.TimelineEvent{}, fmt.Errorf("error updating timeline event: %w", err)
	}

	return updated, nil
}

func (s *timelineService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.repository.GetEvent(ctx, id); err != nil {
		return err
	}

	return s.repository.DeleteEvent(ctx, id)
}
