package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertContactQuery(contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return created, nil
}

func (r *contactRepository) GetContact(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectContactQuery(id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Str("id", id).Msg("error selecting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}

	return contact, nil
}

// ListContacts returns one page of messages, newest first, together with the
// total number of messages matching the filter. filter must already carry
// its defaults.
func (r *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := countContactsQuery(filter)
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error counting contacts")
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := selectContactsQuery(filter)
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error selecting contacts")
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return models.ContactPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return models.ContactPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.ContactPage{
		Contacts: contacts,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// SetRead stores the given read flag and returns the updated message.
func (r *contactRepository) SetRead(ctx context.Context, id string, read bool) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := setContactReadQuery(id, read)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SetRead").Str("id", id).Msg("error updating read flag")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return contact, nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, id string) error {
	query, args, err := deleteByIDQuery(models.Contact{}.TableName(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrContactNotFound)
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read, &c.Replied, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
