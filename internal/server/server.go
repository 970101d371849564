package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/handler/http"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler *http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(cfg.RequestTimeout), cfg.HTTPAddress, logger),
		logger:     logger,
	}, nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer close(stopped)
		return s.httpServer.RunServer()
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			s.Shutdown()
		case <-stopped:
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server shutdown gracefully")

	return err
}
