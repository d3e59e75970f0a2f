package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/handler"
	myGRPC "github.com/MKhiriev/go-portfolio/internal/handler/grpc"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	transports []transport

	health        *myGRPC.Handler
	probeInterval time.Duration

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		probeInterval:   cfg.HealthProbeInterval,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg))
		s.health = handlers.GRPC
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// bind every listener before serving so a taken port fails fast
	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			for _, bound := range s.transports[:i] {
				err = multierr.Append(err, bound.close())
			}
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(func() error {
			s.logger.Info().Str("address", t.addr()).Msgf("launching %s server", t.name())
			return t.serve()
		})
	}

	if s.health != nil {
		g.Go(func() error {
			s.health.Watch(gctx, s.probeInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down servers...")
		return s.shutdown()
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// shutdown stops every transport and combines their errors.
func (s *server) shutdown() error {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.health != nil {
		s.health.Shutdown()
	}

	var err error
	for _, t := range s.transports {
		err = multierr.Append(err, t.shutdown(ctx))
	}
	return err
}
