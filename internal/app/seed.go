package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/gnap-bootstrap/internal/cache"
	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/seed"
	"github.com/MKhiriev/gnap-bootstrap/internal/service"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// MetricsJob is the Pushgateway job name of seed runs.
const MetricsJob = "gnap_seed"

// Seeder runs a single bootstrap. The constructor fields are replaceable
// in tests.
type Seeder struct {
	cfg    *config.SeedConfig
	logger *logger.Logger
	stdout io.Writer
	stderr io.Writer

	openStore func(context.Context, config.Storage, *logger.Logger) (store.DocumentStore, error)
	openCache func(context.Context, config.Cache, *logger.Logger) (cache.Cache, error)
}

func NewSeeder(cfg *config.SeedConfig, log *logger.Logger, stdout, stderr io.Writer) *Seeder {
	return &Seeder{
		cfg:       cfg,
		logger:    log,
		stdout:    stdout,
		stderr:    stderr,
		openStore: store.NewDocumentStore,
		openCache: cache.New,
	}
}

// Run performs the bootstrap and returns the process exit code. Failures
// are printed to stderr as "error: <cause>".
func (s *Seeder) Run(ctx context.Context) int {
	report, err := s.run(ctx)
	if err != nil {
		fmt.Fprintf(s.stderr, "error: %v\n", err)
		return ExitCode(err)
	}

	s.printReport(report)
	return ExitOK
}

func (s *Seeder) run(ctx context.Context) (models.LoadReport, error) {
	ctx = s.logger.WithContext(ctx)

	bundle, err := seed.ReadSeed(ctx, seed.Files{
		Config:   s.cfg.Seed.ConfigPath,
		Clients:  s.cfg.Seed.ClientsPath,
		Accounts: s.cfg.Seed.AccountsPath,
	})
	if err != nil {
		if isInvalidInput(err) {
			return models.LoadReport{}, &service.LoadError{Kind: service.ErrValidationFailed, Err: err}
		}
		return models.LoadReport{}, err
	}

	var documentStore store.DocumentStore
	if !s.cfg.Seed.DryRun {
		documentStore, err = s.openStore(ctx, s.cfg.Storage, s.logger)
		if err != nil {
			return models.LoadReport{}, &service.LoadError{Kind: service.ErrStoreUnavailable, Err: err}
		}
		defer func() {
			if closeErr := documentStore.Close(); closeErr != nil {
				s.logger.Warn().Err(closeErr).Msg("error closing document store")
			}
		}()
	}

	configCache := s.configCache(ctx)
	if configCache != nil {
		defer configCache.Close()
	}

	m := metrics.New()
	loader := service.NewLoaderService(documentStore, configCache, m, s.logger)

	mode := models.SaveInsert
	if s.cfg.Seed.Upsert {
		mode = models.SaveUpsert
	}

	loadCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout())
	report, loadErr := loader.Load(loadCtx, bundle, service.LoadOptions{Mode: mode, DryRun: s.cfg.Seed.DryRun})
	cancel()

	if err = m.Push(s.cfg.Seed.MetricsPushURL, MetricsJob); err != nil {
		s.logger.Warn().Err(err).Str("url", s.cfg.Seed.MetricsPushURL).Msg("failed to push seed metrics")
	}

	return report, loadErr
}

// configCache connects to the discovery cache so a successful run can
// invalidate the served document. Only a shared (Redis) cache is worth
// opening; an unreachable one is skipped.
func (s *Seeder) configCache(ctx context.Context) cache.Cache {
	if s.cfg.Seed.DryRun || s.cfg.Cache.RedisAddr == "" {
		return nil
	}

	c, err := s.openCache(ctx, s.cfg.Cache, s.logger)
	if err != nil {
		s.logger.Warn().Err(err).Msg("config cache unavailable, cached discovery documents expire on their own")
		return nil
	}
	return c
}

func (s *Seeder) printReport(report models.LoadReport) {
	if report.DryRun {
		fmt.Fprintf(s.stdout, "dry run %s: seed is valid (%d clients, %d accounts), nothing written\n",
			report.RunID, report.Clients, report.Accounts)
		return
	}

	fmt.Fprintf(s.stdout, "seed run %s (%s): service_config v%d, %d clients, %d accounts in %s\n",
		report.RunID, report.Mode, report.ConfigVersion, report.Clients, report.Accounts, report.Duration)
}

func isInvalidInput(err error) bool {
	return errors.Is(err, seed.ErrDecoding) ||
		errors.Is(err, seed.ErrUnsupportedFormat) ||
		errors.Is(err, seed.ErrEmptyLegacyConfig)
}
