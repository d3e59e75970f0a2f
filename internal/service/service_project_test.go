package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedID always hands out the same identifier.
type fixedID string

func (f fixedID) Generate() string { return string(f) }

func ptr[T any](v T) *T { return &v }

func TestProjectService_ListCategories(t *testing.T) {
	tests := []struct {
		name string
		used []string
		want []string
	}{
		{"no projects", nil, []string{"all"}},
		{"all comes first", []string{"cli", "web"}, []string{"all", "cli", "web"}},
		{"stored all is not repeated", []string{"ai_ml", "all", "mobile"}, []string{"all", "ai_ml", "mobile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockProjectRepository(ctrl)
			repo.EXPECT().ListCategories(gomock.Any()).Return(tt.used, nil)

			svc := NewProjectService(repo, fixedID("p-1"), logger.Nop())
			got, err := svc.ListCategories(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectService_ListCategories_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	repo.EXPECT().ListCategories(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := NewProjectService(repo, fixedID("p-1"), logger.Nop()).ListCategories(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProjectService_ListProjects_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	filter := models.ProjectFilter{Category: "web", FeaturedOnly: true, Search: "go", Limit: 3}

	repo.EXPECT().ListProjects(gomock.Any(), filter).Return([]models.Project{{ID: "p-1"}}, nil)

	got, err := NewProjectService(repo, fixedID("x"), logger.Nop()).ListProjects(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProjectService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)

	repo.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Project) (models.Project, error) {
			assert.Equal(t, "p-new", p.ID)
			assert.Equal(t, "Portfolio", p.Title)
			assert.Equal(t, models.DefaultProjectImage, p.Image)
			assert.Equal(t, models.StringList{"go", "react"}, p.Tags)
			return p, nil
		})

	svc := NewProjectService(repo, fixedID("p-new"), logger.Nop())
	created, err := svc.CreateProject(context.Background(), models.Project{
		ID:    "client-chosen",
		Title: "  Portfolio ",
		Tags:  models.StringList{" go", "react "},
	})

	require.NoError(t, err)
	assert.Equal(t, "p-new", created.ID)
}

func TestProjectService_UpdateProject(t *testing.T) {
	ctx := context.Background()
	stored := models.Project{ID: "p-1", Title: "Old", Description: "Keep me", Image: "https://img", Featured: false}

	t.Run("merges provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockProjectRepository(ctrl)

		repo.EXPECT().GetProject(ctx, "p-1").Return(stored, nil)
		repo.EXPECT().UpdateProject(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Project) (models.Project, error) {
				assert.Equal(t, "New", p.Title)
				assert.Equal(t, "Keep me", p.Description)
				assert.True(t, p.Featured)
				return p, nil
			})

		svc := NewProjectService(repo, fixedID("x"), logger.Nop())
		updated, err := svc.UpdateProject(ctx, "p-1", models.ProjectUpdate{Title: ptr("New"), Featured: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
	})

	t.Run("missing project is not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockProjectRepository(ctrl)

		repo.EXPECT().GetProject(ctx, "p-404").Return(models.Project{}, store.ErrProjectNotFound)

		svc := NewProjectService(repo, fixedID("x"), logger.Nop())
		_, err := svc.UpdateProject(ctx, "p-404", models.ProjectUpdate{Title: ptr("New")})
		assert.ErrorIs(t, err, store.ErrProjectNotFound)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(repo *mock.MockProjectRepository)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(repo *mock.MockProjectRepository) {
				repo.EXPECT().GetProject(ctx, "p-1").Return(models.Project{ID: "p-1"}, nil)
				repo.EXPECT().DeleteProject(ctx, "p-1").Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(repo *mock.MockProjectRepository) {
				repo.EXPECT().GetProject(ctx, "p-1").Return(models.Project{}, store.ErrProjectNotFound)
			},
			wantErr: store.ErrProjectNotFound,
		},
		{
			name: "malformed id",
			setup: func(repo *mock.MockProjectRepository) {
				repo.EXPECT().GetProject(ctx, "p-1").Return(models.Project{}, store.ErrMalformedID)
			},
			wantErr: store.ErrMalformedID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockProjectRepository(ctrl)
			tt.setup(repo)

			err := NewProjectService(repo, fixedID("x"), logger.Nop()).DeleteProject(ctx, "p-1")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}
