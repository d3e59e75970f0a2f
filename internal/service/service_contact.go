package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type contactService struct {
	repository store.ContactRepository
	notifier   adapter.Notifier
	ids        IDGenerator

	logger *logger.Logger
}

func NewContactService(repository store.ContactRepository, notifier adapter.Notifier, ids IDGenerator, logger *logger.Logger) ContactService {
	if notifier == nil {
		notifier = adapter.NewNopNotifier()
	}

	return &contactService{
		repository: repository,
		notifier:   notifier,
		ids:        ids,
		logger:     logger,
	}
}

// SubmitContact stores the message unread. The owner notification is best
// effort: its failure is logged and the stored message is still returned.
func (s *contactService) SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact.ID = s.ids.Generate()
	contact.Normalize()
	contact.Read = false
	contact.Replied = false

	created, err := s.repository.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error storing contact: %w", err)
	}

	if err = s.notifier.ContactReceived(ctx, created); err != nil {
		log.Warn().Err(err).Str("id", created.ID).Msg("contact notification failed")
	}

	return created, nil
}

func (s *contactService) ListContacts(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error) {
	page, err := s.repository.ListContacts(ctx, filter.WithDefaults())
	if err != nil {
		return models.ContactPage{}, fmt.Errorf("error listing contacts: %w", err)
	}
	return page, nil
}

func (s *contactService) OpenContact(ctx context.Context, id string) (models.Contact, error) {
	contact, err := s.repository.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	if contact.Read {
		return contact, nil
	}

	return s.repository.SetRead(ctx, id, true)
}

func (s *contactService) SetRead(ctx context.Context, id string, read bool) (models.Contact, error) {
	return s.repository.SetRead(ctx, id, read)
}

func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	if _, err := s.repository.GetContact(ctx, id); err != nil {
		return err
	}

	return s.repository.DeleteContact(ctx, id)
}
