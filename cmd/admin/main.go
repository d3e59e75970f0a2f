// Command admin provisions the administrator account of the portfolio API.
//
// The account comes from the ADMIN_* settings. When no password is
// configured the operator is asked for one on a terminal; an empty answer,
// or running without a terminal, generates it. An existing administrator is
// only updated after the operator confirms.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/crypto"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/tui"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())

	log := logger.NewLogger("admin")
	cfg, err := config.GetAdminConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.Environment)

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	prompter := tui.New(log)
	admins := service.NewAdminService(
		store.NewUserRepository(db, log),
		crypto.NewPasswordHasher(0),
		utils.NewUUIDGenerator(),
		log,
	)

	if err = provision(ctx, admins, prompter, cfg.Admin.Seed()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			fmt.Println("Aborted.")
			return
		}
		log.Err(err).Msg("error provisioning admin")
		os.Exit(1)
	}
}

func provision(ctx context.Context, admins service.AdminService, prompter *tui.Prompter, seed models.AdminSeed) error {
	if seed.Password == "" && prompter.Interactive() {
		password, err := prompter.Password(ctx)
		if err != nil {
			return err
		}
		seed.Password = password
	}

	outcome, err := admins.ProvisionAdmin(ctx, seed, prompter.Confirm)
	if err != nil {
		return err
	}

	return prompter.Report(outcome)
}
