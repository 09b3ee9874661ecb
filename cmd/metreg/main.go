// Package main is the entry point for the metreg registry server. It wires
// all dependencies together and starts the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"metreg/internal/calendar"
	"metreg/internal/config"
	"metreg/internal/metrics"
	"metreg/internal/observability"
	"metreg/internal/prefs"
	"metreg/internal/schema"
	"metreg/internal/source"
	"metreg/internal/transport"
	"metreg/internal/view"
	"metreg/model"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc1234"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	instruments := observability.InitMetrics(prometheus.DefaultRegisterer)

	// Preference store.
	store, storeCloser, err := buildPrefsStore(ctx, cfg.Prefs, logger)
	if err != nil {
		logger.Error("preference store initialization failed", zap.Error(err))
		return 1
	}

	// Engine: schema, projector, aggregators.
	schemaReg := schema.NewRegistry()
	projector := view.NewProjector(schemaReg)
	aggregator := metrics.NewAggregator(projector)
	planCalendar := calendar.NewAggregator()

	prefsMgr := prefs.NewManager(store, schemaReg, logger)

	// Restore persisted preferences; failure falls back to defaults.
	loadCtx, loadCancel := context.WithTimeout(ctx, 5*time.Second)
	columns, filters := prefsMgr.Load(loadCtx)
	loadCancel()
	if columns != nil || filters != nil {
		projector.Restore(columns, filters)
		logger.Info("preferences restored",
			zap.Int("columns", len(columns)),
			zap.Int("filters", len(filters)),
		)
	}

	// Persist preference changes without blocking the mutating call.
	projector.OnStateChange(func(state model.ViewState) {
		go func() {
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := prefsMgr.Save(saveCtx, state); err != nil {
				logger.Warn("preference save failed", zap.Error(err))
			}
		}()
	})

	projector.Subscribe(func() {
		stats := projector.Stats()
		instruments.RecomputeTotal.Inc()
		instruments.RecordsTotal.Set(float64(stats.Total))
		instruments.RecordsFiltered.Set(float64(stats.Filtered))
	})

	// Record source.
	client := source.NewClient(cfg.Source)
	refresh := func(ctx context.Context) {
		records, err := client.Records(ctx)
		if err != nil {
			instruments.SourceRefreshTotal.WithLabelValues("error").Inc()
			logger.Error("record refresh failed", zap.Error(err))
			return
		}
		archive, err := client.Archive(ctx)
		if err != nil {
			instruments.SourceRefreshTotal.WithLabelValues("error").Inc()
			logger.Error("archive refresh failed", zap.Error(err))
			return
		}
		projector.SetSource(records)
		planCalendar.SetSource(records)
		aggregator.SetArchive(archive)
		instruments.SourceRefreshTotal.WithLabelValues("ok").Inc()
		logger.Info("source refreshed",
			zap.Int("records", len(records)),
			zap.Int("archive", len(archive)),
		)
	}
	refresh(ctx)

	bgCtx, bgCancel := context.WithCancel(ctx)
	defer bgCancel()
	go runSourceRefresher(bgCtx, refresh, cfg.Source.RefreshInterval)

	// HTTP server.
	router := transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		Logger:         logger,
		Secret:         []byte(os.Getenv(cfg.Identity.SecretEnv)),
		Schema:         schemaReg,
		Projector:      projector,
		Metrics:        aggregator,
		Calendar:       planCalendar,
		MetricsHandler: observability.Handler(),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      instruments.MetricsMiddleware(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("server started",
		zap.Int("port", cfg.Server.Port),
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("source", cfg.Source.BaseURL),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown initiated")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		return 1
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	bgCancel()
	if storeCloser != nil {
		storeCloser()
	}

	logger.Info("shutdown complete")
	return 0
}

// buildPrefsStore creates the preference store based on config.
func buildPrefsStore(ctx context.Context, cfg config.PrefsConfig, logger *zap.Logger) (prefs.Store, func(), error) {
	switch cfg.Driver {
	case "memory", "":
		logger.Info("using in-memory preference store")
		return prefs.NewMemoryStore(), nil, nil
	case "redis":
		addr := os.Getenv(cfg.AddrEnv)
		if addr == "" {
			logger.Warn("redis address not configured, using in-memory preference store")
			return prefs.NewMemoryStore(), nil, nil
		}
		client := redis.NewClient(&redis.Options{Addr: addr, DB: cfg.DB})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("prefs store: ping: %w", err)
		}
		return prefs.NewRedisStore(client), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported preference store driver: %q", cfg.Driver)
	}
}

// runSourceRefresher periodically re-reads the record collections.
func runSourceRefresher(ctx context.Context, refresh func(context.Context), interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh(ctx)
		}
	}
}
