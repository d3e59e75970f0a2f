package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-portfolio/internal/config"
	myGRPC "github.com/MKhiriev/go-portfolio/internal/handler/grpc"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address string

	server   *grpc.Server
	listener net.Listener
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) listen() error {
	if g.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC on %s: %w", g.address, err)
	}
	g.listener = listener

	return nil
}

func (g *grpcServer) addr() string {
	if g.listener == nil {
		return g.address
	}
	return g.listener.Addr().String()
}

func (g *grpcServer) close() error {
	if g.listener == nil {
		return nil
	}
	return g.listener.Close()
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown waits for pending RPCs and forces the stop when ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
