// Package grpc exposes the standard gRPC health checking protocol for the
// portfolio API, so that orchestrators can probe the process without going
// through the REST surface.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported for the REST API.
const ServiceName = "portfolio.v1.API"

// probeTimeout bounds a single dependency probe.
const probeTimeout = 3 * time.Second

// Pinger is a backing dependency whose reachability decides the serving
// status, typically the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows the pinger. Without a pinger
// the API is always reported as serving until Shutdown.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. pinger may be nil.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the dependency once and publishes the result. It returns the
// published status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	if h.pinger == nil {
		return healthpb.HealthCheckResponse_SERVING
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Watch probes every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	if h.pinger == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown reports every service as not serving. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
