package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

// GetAdminConfig loads the configuration of the admin provisioning tool from
// the same sources as [GetStructuredConfig]. Token and listener settings are
// not required.
func GetAdminConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		buildWith((*StructuredConfig).validateAdmin)
}

func (cfg *StructuredConfig) validateAdmin() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if strings.TrimSpace(cfg.Admin.Email) == "" {
		return fmt.Errorf("%w: admin email is required", ErrInvalidAdminConfigs)
	}
	return nil
}

// Seed converts the configured account into a provisioning request. Blank
// profile values are left out so they never clear stored ones.
func (a Admin) Seed() models.AdminSeed {
	optional := func(s string) *string {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return &s
	}

	return models.AdminSeed{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Profile: models.OwnerUpdate{
			Description:       optional(a.Description),
			FooterDescription: optional(a.FooterDescription),
			Title:             optional(a.Title),
			Location:          optional(a.Location),
			LocationLink:      optional(a.LocationLink),
			Instagram:         optional(a.Instagram),
			Linkedin:          optional(a.Linkedin),
			Github:            optional(a.Github),
			About:             optional(a.About),
		},
	}
}
