package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dayanaadylkhanova/codetime-charts/internal/adapter/source"
	"github.com/dayanaadylkhanova/codetime-charts/internal/adapter/store/memory"
	"github.com/dayanaadylkhanova/codetime-charts/internal/adapter/store/postgres"
	redisstore "github.com/dayanaadylkhanova/codetime-charts/internal/adapter/store/redis"
	http_server "github.com/dayanaadylkhanova/codetime-charts/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/dayanaadylkhanova/codetime-charts/internal/metrics"
	"github.com/dayanaadylkhanova/codetime-charts/internal/service"
	"github.com/dayanaadylkhanova/codetime-charts/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store      service.ChartStore
	closeStore func()
	aggregator *service.Aggregator
	refresher  *service.Refresher
	server     *http_server.Server
}

func New(cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store
	st, closeStore, err := NewStore(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}

	// 2) Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 3) Aggregator
	agg := NewAggregator(cfg, log, st, m)

	// 4) Optional refresher
	var ref *service.Refresher
	if cfg.RefreshEvery > 0 {
		mode, err := entity.ParseMode(cfg.RefreshMode)
		if err != nil {
			closeStore()
			return nil, fmt.Errorf("REFRESH_MODE: %w", err)
		}
		req := entity.AggregationRequest{Identifier: cfg.RefreshIdentifier, Mode: mode}
		ref = service.NewRefresher(log, agg, req, cfg.RefreshEvery)
	}

	// 5) HTTP server (ports: AggregationRunner + ChartReader)
	srv := http_server.NewServer(log, cfg.ListenAddr, agg, st, reg)

	return &App{
		cfg:        cfg,
		info:       info,
		log:        log,
		store:      st,
		closeStore: closeStore,
		aggregator: agg,
		refresher:  ref,
		server:     srv,
	}, nil
}

// NewStore opens the configured chart store. The returned func releases it.
func NewStore(ctx context.Context, cfg config.Config, log *zap.Logger) (service.ChartStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		st, err := postgres.New(cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		if err := st.Init(ctx); err != nil {
			st.Close()
			return nil, nil, err
		}
		return st, st.Close, nil
	case config.BackendRedis:
		client, err := redisstore.NewClient(redisstore.Config{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		st := redisstore.New(client, log)
		return st, func() { _ = st.Close() }, nil
	default:
		st := memory.New()
		st.Subscribe(func(f entity.Field) { log.Debug("store updated", zap.String("field", string(f))) })
		return st, func() {}, nil
	}
}

// NewAggregator wires the source client and store into the pipeline.
func NewAggregator(cfg config.Config, log *zap.Logger, st service.ChartWriter, m *metrics.Metrics) *service.Aggregator {
	src := source.New(log, source.Options{
		GitHubAPI:      cfg.GitHubAPIURL,
		GitHubToken:    cfg.GitHubToken,
		FilePrefix:     cfg.GistFilePrefix,
		WakaTimeAPI:    cfg.WakaTimeAPIURL,
		WakaTimeAPIKey: cfg.WakaTimeAPIKey,
		Concurrency:    cfg.FetchConcurrency,
		Timeout:        cfg.HTTPTimeout,
	})
	return service.NewAggregator(log, src, st, cfg.MaxBuckets, m)
}

func (a *App) Run(ctx context.Context) error {
	// Start background refresher
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.refresher != nil {
		go a.refresher.Run(bgCtx)
	}

	// Start HTTP
	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		// graceful
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server", zap.Error(err))
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown: background work ends before the store closes.
	cancel()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if err := a.server.Shutdown(shutdownCtx); err != nil && runErr == ErrAppShutdownNormal {
		a.log.Warn("http shutdown", zap.Error(err))
		runErr = ErrAppShutdownWithError
	}
	if a.refresher != nil {
		a.refresher.Stop(shutdownCtx)
	}
	a.closeStore()

	return runErr
}
