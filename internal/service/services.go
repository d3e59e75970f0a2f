package service

import (
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/crypto"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

type Services struct {
	AuthService      AuthService
	ProjectService   ProjectService
	SkillService     SkillService
	TimelineService  TimelineService
	ContactService   ContactService
	PortfolioService PortfolioService
	AppInfoService   AppInfoService
}

// Dependencies bundles what the services need besides configuration.
type Dependencies struct {
	Storages  *store.Storages
	Notifier  adapter.Notifier
	Hasher    crypto.PasswordHasher
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()

	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(deps.Storages.UserRepository, deps.Hasher, cfg.App, logger),
		ProjectService:   NewProjectService(deps.Storages.ProjectRepository, ids, logger),
		SkillService:     NewSkillService(deps.Storages.SkillRepository, ids, logger),
		TimelineService:  NewTimelineService(deps.Storages.TimelineRepository, ids, logger),
		ContactService:   NewContactService(deps.Storages.ContactRepository, deps.Notifier, ids, logger),
		PortfolioService: NewPortfolioService(deps.Storages, logger),
		AppInfoService:   appInfo,
	}, nil
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
