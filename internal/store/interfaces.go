//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
)

// UserRepository persists accounts and the owner profile kept on the admin row.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// FindOwner returns the first user holding the admin role.
	FindOwner(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.OwnerUpdate) (models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	ListCategories(ctx context.Context) ([]string, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type SkillRepository interface {
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	GetSkill(ctx context.Context, id string) (models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}

type TimelineRepository interface {
	CreateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error)
	GetEvent(ctx context.Context, id string) (models.TimelineEvent, error)
	// ListEvents returns events ordered by year, newest first.
	ListEvents(ctx context.Context) ([]models.TimelineEvent, error)
	UpdateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error)
	SetRead(ctx context.Context, id string, read bool) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}
