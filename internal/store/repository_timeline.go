package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type timelineRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTimelineRepository(db *DB, logger *logger.Logger) TimelineRepository {
	logger.Debug().Msg("creating timeline repository")
	return &timelineRepository{
		db:     db,
		logger: logger,
	}
}

func (r *timelineRepository) CreateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertEventQuery(event)
	if err != nil {
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.CreateEvent").Msg("error inserting timeline event")
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return created, nil
}

func (r *timelineRepository) GetEvent(ctx context.Context, id string) (models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEventQuery(id)
	if err != nil {
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TimelineEvent{}, ErrTimelineNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.GetEvent").Str("id", id).Msg("error selecting timeline event")
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}

	return event, nil
}

// ListEvents sorts on the year text, newest first. Free-form values such as
// "2020 - Present" compare lexically.
func (r *timelineRepository) ListEvents(ctx context.Context) ([]models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEventsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.ListEvents").Msg("error selecting timeline events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.TimelineEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *timelineRepository) UpdateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateEventQuery(event)
	if err != nil {
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TimelineEvent{}, ErrTimelineNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.UpdateEvent").Str("id", event.ID).Msg("error updating timeline event")
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return updated, nil
}

func (r *timelineRepository) DeleteEvent(ctx context.Context, id string) error {
	query, args, err := deleteByIDQuery(models.TimelineEvent{}.TableName(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrTimelineNotFound)
}

func scanEvent(row rowScanner) (models.TimelineEvent, error) {
	var e models.TimelineEvent
	err := row.Scan(&e.ID, &e.Year, &e.Title, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
