package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/crypto"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// GeneratedPasswordLength is the length of passwords chosen for the operator.
const GeneratedPasswordLength = 20

type adminService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	ids    IDGenerator

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) AdminService {
	return &adminService{
		users:  users,
		hasher: hasher,
		ids:    ids,
		logger: logger,
	}
}

// ProvisionAdmin creates the administrator or, with the operator's consent,
// refreshes the profile of the one that already uses seed.Email.
//
// An empty seed.Password makes the service generate one, returned in
// ProvisionOutcome.GeneratedPassword. The password of an existing
// administrator is never changed.
func (s *adminService) ProvisionAdmin(ctx context.Context, seed models.AdminSeed, confirm ConfirmFunc) (models.ProvisionOutcome, error) {
	log := logger.FromContext(ctx)

	seed.Normalize()
	if seed.Email == "" {
		return models.ProvisionOutcome{}, ErrAdminEmailRequired
	}

	existing, err := s.users.FindUserByEmail(ctx, seed.Email)
	switch {
	case err == nil:
		return s.refresh(ctx, existing, seed, confirm)
	case !errors.Is(err, store.ErrUserNotFound):
		return models.ProvisionOutcome{}, fmt.Errorf("error looking up admin: %w", err)
	}

	var outcome models.ProvisionOutcome

	password := seed.Password
	if password == "" {
		if password, err = s.hasher.GeneratePassword(GeneratedPasswordLength); err != nil {
			return models.ProvisionOutcome{}, fmt.Errorf("error generating admin password: %w", err)
		}
		outcome.GeneratedPassword = password
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.ProvisionOutcome{}, fmt.Errorf("error hashing admin password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, seed.NewUser(s.ids.Generate(), hash))
	if err != nil {
		return models.ProvisionOutcome{}, fmt.Errorf("error creating admin: %w", err)
	}
	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("admin user created")

	outcome.Created = true
	outcome.User = created
	return outcome, nil
}

func (s *adminService) refresh(ctx context.Context, existing models.User, seed models.AdminSeed, confirm ConfirmFunc) (models.ProvisionOutcome, error) {
	log := logger.FromContext(ctx)

	if confirm == nil {
		return models.ProvisionOutcome{User: existing}, nil
	}

	ok, err := confirm(ctx, existing)
	if err != nil {
		return models.ProvisionOutcome{}, fmt.Errorf("error confirming profile update: %w", err)
	}
	if !ok {
		log.Info().Str("id", existing.ID).Msg("admin user left unchanged")
		return models.ProvisionOutcome{User: existing}, nil
	}

	updated, err := s.users.UpdateProfile(ctx, existing.ID, seed.ProfileUpdate())
	if err != nil {
		return models.ProvisionOutcome{}, fmt.Errorf("error updating admin profile: %w", err)
	}
	log.Info().Str("id", updated.ID).Msg("admin profile updated")

	return models.ProvisionOutcome{Updated: true, User: updated}, nil
}
