package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// production hides stack traces from error responses.
	production bool

	cors    corsPolicy
	limiter *ipRateLimiter

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validator:  validators.NewRuleValidator(),
		production: cfg.App.IsProduction(),
		cors:       newCORSPolicy(cfg.Server.AllowedOrigins()),
		limiter:    newIPRateLimiter(cfg.Server.ContactRatePerMinute),
		cfg:        cfg.Server,
		logger:     logger,
	}
}

// respond writes resp with the given status. A failed write is only logged:
// the status line is already on the wire.
func respond(w http.ResponseWriter, r *http.Request, resp any, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
