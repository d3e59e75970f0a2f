package store

import "github.com/MKhiriev/go-portfolio/internal/logger"

// Storages groups every repository built on a single [DB].
type Storages struct {
	UserRepository     UserRepository
	ProjectRepository  ProjectRepository
	SkillRepository    SkillRepository
	TimelineRepository TimelineRepository
	ContactRepository  ContactRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ProjectRepository:  NewProjectRepository(db, logger),
		SkillRepository:    NewSkillRepository(db, logger),
		TimelineRepository: NewTimelineRepository(db, logger),
		ContactRepository:  NewContactRepository(db, logger),
	}
}
