package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "v1.2.3-beta+build.42", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	build := models.NewAppBuildInfo("1.4.0", "2026-03-01", "abc1234")
	svc, err := NewAppInfoService(config.App{Version: "1.4.0", Environment: "production"}, build, logger.Nop())
	require.NoError(t, err)

	moscow := time.FixedZone("MSK", 3*60*60)
	svc.(*appInfoService).now = func() time.Time { return time.Date(2026, 3, 2, 15, 4, 5, 0, moscow) }

	assert.Equal(t, models.HealthStatus{
		Timestamp:   "2026-03-02T12:04:05Z",
		Environment: "production",
		Version:     "1.4.0",
		BuildDate:   "2026-03-01",
		BuildCommit: "abc1234",
	}, svc.Health(context.Background()))
}

func TestHealth_WithoutBuildInfo(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "dev"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	status := svc.Health(context.Background())
	assert.Equal(t, models.NotAvailable, status.BuildDate)
	assert.Equal(t, models.NotAvailable, status.BuildCommit)

	_, err = time.Parse(time.RFC3339, status.Timestamp)
	assert.NoError(t, err)
}
