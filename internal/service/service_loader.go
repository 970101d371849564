package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/cache"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/internal/utils"
	"github.com/MKhiriev/gnap-bootstrap/internal/validators"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// IDGenerator produces seed run identifiers.
type IDGenerator interface {
	Generate() string
}

type loaderService struct {
	store     store.DocumentStore
	cache     cache.Cache
	validator *validators.SeedValidator
	ids       IDGenerator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewLoaderService builds the registry loader. documentStore may be nil
// for validation-only runs; c may be nil when no cache is configured.
func NewLoaderService(documentStore store.DocumentStore, c cache.Cache, m *metrics.Metrics, log *logger.Logger) LoaderService {
	return &loaderService{
		store:     documentStore,
		cache:     c,
		validator: validators.NewSeedValidator(),
		ids:       utils.NewUUIDGenerator(),
		metrics:   m,
		logger:    log,
	}
}

// Load validates the whole seed first and writes it only when every
// document passed. A failed run leaves the store untouched.
func (l *loaderService) Load(ctx context.Context, seed models.Seed, opts LoadOptions) (models.LoadReport, error) {
	start := time.Now()
	runID := l.ids.Generate()
	log := l.logger.WithRunID(runID)
	ctx = log.WithContext(ctx)

	report := models.LoadReport{
		RunID:    runID,
		Mode:     opts.Mode,
		DryRun:   opts.DryRun,
		Clients:  len(seed.Clients),
		Accounts: len(seed.Accounts),
	}

	log.Info().
		Str("mode", opts.Mode.String()).
		Bool("dry_run", opts.DryRun).
		Int("clients", report.Clients).
		Int("accounts", report.Accounts).
		Msg("seed run started")

	if err := l.validate(ctx, seed); err != nil {
		log.Err(err).Str("func", "loaderService.Load").Msg("seed rejected")
		return models.LoadReport{}, l.fail(start, &LoadError{Kind: ErrValidationFailed, Err: err})
	}

	if opts.DryRun {
		report.Duration = time.Since(start)
		l.metrics.ObserveSeedRun(metrics.ResultDryRun, report.Duration)
		log.Info().Dur("duration", report.Duration).Msg("dry run finished, nothing written")
		return report, nil
	}

	if l.store == nil {
		return models.LoadReport{}, l.fail(start, &LoadError{Kind: ErrStoreUnavailable, Err: errors.New("no document store configured")})
	}

	result, err := l.store.SaveSeed(ctx, seed, store.SaveOptions{Mode: opts.Mode, RunID: runID})
	if err != nil {
		loadErr := storeLoadError(err)
		log.Err(err).Str("func", "loaderService.Load").Msg("seed was not written")
		return models.LoadReport{}, l.fail(start, loadErr)
	}

	l.invalidate(ctx)

	report.ConfigVersion = result.ConfigVersion
	report.Clients = result.Clients
	report.Accounts = result.Accounts
	report.Duration = time.Since(start)

	l.metrics.ObserveSeedRun(metrics.ResultSuccess, report.Duration)
	l.metrics.AddRecordsWritten(seed.Config.CollectionName(), 1)
	l.metrics.AddRecordsWritten(models.Client{}.CollectionName(), result.Clients)
	l.metrics.AddRecordsWritten(models.Account{}.CollectionName(), result.Accounts)

	log.Info().
		Int64("config_version", report.ConfigVersion).
		Dur("duration", report.Duration).
		Msg("seed run finished")

	return report, nil
}

func (l *loaderService) validate(ctx context.Context, seed models.Seed) error {
	var errs []error
	if _, err := validators.ValidateConfig(seed.Config); err != nil {
		errs = append(errs, fmt.Errorf("service config: %w", err))
	}
	if err := l.validator.ValidateClients(ctx, seed.Clients); err != nil {
		errs = append(errs, fmt.Errorf("clients: %w", err))
	}
	if err := l.validator.ValidateAccounts(ctx, seed.Accounts); err != nil {
		errs = append(errs, fmt.Errorf("accounts: %w", err))
	}
	return errors.Join(errs...)
}

// invalidate drops the cached discovery document so readers pick up the
// new one. A cache failure does not fail the run; the entry expires anyway.
func (l *loaderService) invalidate(ctx context.Context) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx, cache.KeyServiceConfig); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to invalidate cached service config")
	}
}

func (l *loaderService) fail(start time.Time, err *LoadError) error {
	result := metrics.ResultError
	switch {
	case errors.Is(err.Kind, ErrValidationFailed):
		result = metrics.ResultInvalid
	case errors.Is(err.Kind, ErrDuplicateKey):
		result = metrics.ResultDuplicate
	case errors.Is(err.Kind, ErrStoreUnavailable):
		result = metrics.ResultStoreDown
	}
	l.metrics.ObserveSeedRun(result, time.Since(start))
	return err
}

func storeLoadError(err error) *LoadError {
	var dup *store.DuplicateKeyError
	switch {
	case errors.As(err, &dup):
		return &LoadError{Kind: ErrDuplicateKey, Collection: dup.Collection, ID: dup.ID, Err: err}
	case errors.Is(err, store.ErrDuplicateKey):
		return &LoadError{Kind: ErrDuplicateKey, Err: err}
	default:
		return &LoadError{Kind: ErrStoreUnavailable, Err: err}
	}
}
