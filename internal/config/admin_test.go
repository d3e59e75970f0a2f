package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdminConfig(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/portfolio")
	t.Setenv("ADMIN_EMAIL", "jane@example.com")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := GetAdminConfig(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Equal(t, "jane@example.com", cfg.Admin.Email)
	assert.Equal(t, "Portfolio Owner", cfg.Admin.Name)
}

func TestValidateAdmin(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"sign key not needed", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, nil},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"blank email", func(c *StructuredConfig) { c.Admin.Email = "  " }, ErrInvalidAdminConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validateAdmin()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdmin_Seed(t *testing.T) {
	admin := Admin{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "s3cret-pass",
		Title:    "Go engineer",
		Github:   "https://github.com/jane",
		Linkedin: "   ",
	}

	seed := admin.Seed()

	assert.Equal(t, "Jane", seed.Name)
	assert.Equal(t, "jane@example.com", seed.Email)
	assert.Equal(t, "s3cret-pass", seed.Password)
	require.NotNil(t, seed.Profile.Title)
	assert.Equal(t, "Go engineer", *seed.Profile.Title)
	require.NotNil(t, seed.Profile.Github)
	assert.Equal(t, "https://github.com/jane", *seed.Profile.Github)
	assert.Nil(t, seed.Profile.Linkedin)
	assert.Nil(t, seed.Profile.About)
	assert.Nil(t, seed.Profile.Name)
}
