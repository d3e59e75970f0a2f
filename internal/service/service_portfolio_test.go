package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type portfolioMocks struct {
	users     *mock.MockUserRepository
	projects  *mock.MockProjectRepository
	skills    *mock.MockSkillRepository
	timelines *mock.MockTimelineRepository
}

func newTestPortfolioSvc(t *testing.T) (PortfolioService, portfolioMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := portfolioMocks{
		users:     mock.NewMockUserRepository(ctrl),
		projects:  mock.NewMockProjectRepository(ctrl),
		skills:    mock.NewMockSkillRepository(ctrl),
		timelines: mock.NewMockTimelineRepository(ctrl),
	}
	storages := &store.Storages{
		UserRepository:     m.users,
		ProjectRepository:  m.projects,
		SkillRepository:    m.skills,
		TimelineRepository: m.timelines,
	}

	return NewPortfolioService(storages, logger.Nop()), m
}

func TestPortfolioService_GetPortfolioData(t *testing.T) {
	svc, m := newTestPortfolioSvc(t)

	m.projects.EXPECT().ListProjects(gomock.Any(), models.ProjectFilter{}).Return([]models.Project{{ID: "p-1"}}, nil)
	m.skills.EXPECT().ListSkills(gomock.Any()).Return([]models.Skill{{ID: "s-1"}}, nil)
	m.timelines.EXPECT().ListEvents(gomock.Any()).Return([]models.TimelineEvent{{ID: "t-1"}}, nil)
	m.users.EXPECT().FindOwner(gomock.Any()).Return(models.User{
		ID: "u-1", Name: "Jane", Email: "jane@example.com", PasswordHash: "hash", Role: models.RoleAdmin, Title: "Engineer",
	}, nil)

	data, err := svc.GetPortfolioData(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Projects, 1)
	assert.Len(t, data.Skills, 1)
	assert.Len(t, data.TimelineEvents, 1)
	require.NotNil(t, data.OwnerData)
	assert.Equal(t, "Jane", data.OwnerData.Name)
	assert.Equal(t, "Engineer", data.OwnerData.Title)
}

func TestPortfolioService_GetPortfolioData_NoOwner(t *testing.T) {
	svc, m := newTestPortfolioSvc(t)

	m.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return([]models.Project{}, nil)
	m.skills.EXPECT().ListSkills(gomock.Any()).Return([]models.Skill{}, nil)
	m.timelines.EXPECT().ListEvents(gomock.Any()).Return([]models.TimelineEvent{}, nil)
	m.users.EXPECT().FindOwner(gomock.Any()).Return(models.User{}, store.ErrOwnerNotFound)

	data, err := svc.GetPortfolioData(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data.OwnerData)
	assert.NotNil(t, data.Projects)
}

func TestPortfolioService_GetPortfolioData_FailsOnAnyQuery(t *testing.T) {
	svc, m := newTestPortfolioSvc(t)

	m.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return([]models.Project{}, nil).AnyTimes()
	m.skills.EXPECT().ListSkills(gomock.Any()).Return(nil, store.ErrExecutingQuery).AnyTimes()
	m.timelines.EXPECT().ListEvents(gomock.Any()).Return([]models.TimelineEvent{}, nil).AnyTimes()
	m.users.EXPECT().FindOwner(gomock.Any()).Return(models.User{}, nil).AnyTimes()

	_, err := svc.GetPortfolioData(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestPortfolioService_UpdateOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the admin profile", func(t *testing.T) {
		svc, m := newTestPortfolioSvc(t)

		m.users.EXPECT().FindOwner(ctx).Return(models.User{ID: "u-1", Name: "Jane"}, nil)
		m.users.EXPECT().UpdateProfile(ctx, "u-1", models.OwnerUpdate{Title: ptr("Staff engineer")}).
			Return(models.User{ID: "u-1", Name: "Jane", Title: "Staff engineer", PasswordHash: "hash"}, nil)

		owner, err := svc.UpdateOwner(ctx, models.OwnerUpdate{Title: ptr("  Staff engineer ")})
		require.NoError(t, err)
		assert.Equal(t, "Staff engineer", owner.Title)
		assert.Equal(t, "Jane", owner.Name)
	})

	t.Run("no admin", func(t *testing.T) {
		svc, m := newTestPortfolioSvc(t)
		m.users.EXPECT().FindOwner(ctx).Return(models.User{}, store.ErrOwnerNotFound)

		_, err := svc.UpdateOwner(ctx, models.OwnerUpdate{})
		assert.ErrorIs(t, err, store.ErrOwnerNotFound)
	})
}
