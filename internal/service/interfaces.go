package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

type AuthService interface {
	// Login verifies credentials and records the login time. Unknown email
	// and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetPrincipal(ctx context.Context, userID string) (models.Principal, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type SkillService interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetSkill(ctx context.Context, id string) (models.Skill, error)
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}

type TimelineService interface {
	ListEvents(ctx context.Context) ([]models.TimelineEvent, error)
	CreateEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error)
	UpdateEvent(ctx context.Context, id string, update models.TimelineUpdate) (models.TimelineEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

type ContactService interface {
	// SubmitContact stores a visitor message and notifies the owner.
	SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) (models.ContactPage, error)
	// OpenContact returns the message and marks it read.
	OpenContact(ctx context.Context, id string) (models.Contact, error)
	SetRead(ctx context.Context, id string, read bool) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type PortfolioService interface {
	GetPortfolioData(ctx context.Context) (models.PortfolioData, error)
	UpdateOwner(ctx context.Context, update models.OwnerUpdate) (models.Owner, error)
}

type AdminService interface {
	// ProvisionAdmin creates the administrator described by seed. When one
	// already exists, confirm decides whether its profile is refreshed.
	ProvisionAdmin(ctx context.Context, seed models.AdminSeed, confirm ConfirmFunc) (models.ProvisionOutcome, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}

// ConfirmFunc asks the operator whether to overwrite the profile of an
// existing administrator.
type ConfirmFunc func(ctx context.Context, existing models.User) (bool, error)
