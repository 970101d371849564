package http

import (
	"context"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/service"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	store     Pinger
	metrics   *metrics.Metrics
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, store Pinger, m *metrics.Metrics, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		store:     store,
		metrics:   m,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
