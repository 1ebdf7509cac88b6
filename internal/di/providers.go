package di

import (
	"fmt"

	"SwapDesk/internal/domain/models"
	"SwapDesk/internal/handler/api"
	"SwapDesk/internal/loader"
	"SwapDesk/internal/resample"
	"SwapDesk/internal/schedule"
	"SwapDesk/internal/usecase"
	pkgcache "SwapDesk/pkg/cache"
	"SwapDesk/pkg/config"
	applogger "SwapDesk/pkg/logger"
	"SwapDesk/pkg/metrics"
	"SwapDesk/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}

	l, err := applogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache creates the quote memoization cache: in-memory, layered over
// Redis when enabled.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(
			pkgcache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize),
		), nil
	}

	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(redisCache,
		pkgcache.WithMemoryMaxSize(cfg.Cache.Memory.MaxSize),
	), nil
}

// ProvideRateSeries loads the historical index series. Any failure here is a
// fatal startup error; the service has nothing to serve without the series.
func ProvideRateSeries(cfg *config.Config) (models.RateSeries, error) {
	tenors := make([]models.Tenor, 0, len(cfg.Data.Tenors))
	for _, t := range cfg.Data.Tenors {
		tenors = append(tenors, models.Tenor(t))
	}

	series, err := loader.LoadFile(loader.Config{
		Path:       cfg.Data.Path,
		DateLayout: cfg.Data.DateLayout,
		Tenors:     tenors,
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// ProvideQuoter derives the quarterly series and anchor set once and builds
// the quoter over them.
func ProvideQuoter(
	cfg *config.Config,
	series models.RateSeries,
	c pkgcache.Service,
	m *metrics.Recorder,
	l *applogger.Logger,
) *usecase.SwapQuoter {
	tenors := make([]models.Tenor, 0, len(cfg.Data.Tenors))
	for _, t := range cfg.Data.Tenors {
		tenors = append(tenors, models.Tenor(t))
	}

	quarterly := resample.Quarterly(series, tenors)

	exclude := cfg.Schedule.ExcludeTrailing
	if exclude == 0 {
		exclude = schedule.DefaultExcludeTrailing
	}
	anchors := schedule.ValidAnchors(quarterly, exclude)

	m.RecordSeriesSize(len(series), len(quarterly))
	l.Info("rate series ready",
		applogger.Int("observations", len(series)),
		applogger.Int("quarters", len(quarterly)),
		applogger.Int("anchors", len(anchors)),
	)

	return usecase.NewSwapQuoter(
		quarterly,
		anchors,
		models.Tenor(cfg.Data.FloatingTenor),
		c,
		cfg.Cache.TTL,
		m,
		l,
	)
}

// ProvideHandler creates the API handler.
func ProvideHandler(l *applogger.Logger, quoter *usecase.SwapQuoter) *api.QuotesHandler {
	return api.NewQuotesHandler(l, quoter)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.QuotesHandler, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, l)
}
