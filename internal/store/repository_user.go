package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database failures carry the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a user and returns the row as stored, including the
// server-assigned timestamps.
//
// A unique_violation on email is reported as [*DuplicateKeyError].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email}, ErrUserNotFound)
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id}, ErrUserNotFound)
}

func (r *userRepository) FindOwner(ctx context.Context) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindOwner", sq.Eq{"role": string(models.RoleAdmin)}, ErrOwnerNotFound)
}

// UpdateProfile writes the non-nil fields of update. Credentials and role are
// never touched.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, update models.OwnerUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateProfileQuery(id, update)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Str("id", id).Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	return updated, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query, args, err := updateLastLoginQuery(id, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, r.db, query, args, ErrUserNotFound)
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Sqlizer, notFound error) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, notFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, translateError(err))
	}

	return user, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u    models.User
		role string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role,
		&u.Description, &u.FooterDescription, &u.Title, &u.Location, &u.LocationLink,
		&u.Instagram, &u.Linkedin, &u.Github, &u.About,
		&u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	u.Role = models.Role(role)

	return u, nil
}

// execAffectingOne runs a statement that must touch at least one row and
// reports notFound otherwise.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "execAffectingOne").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, translateError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
