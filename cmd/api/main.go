package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"paseos-lugo/internal/adapters/auth/oauth"
	"paseos-lugo/internal/adapters/backend"
	"paseos-lugo/internal/adapters/mailrelay"
	"paseos-lugo/internal/adapters/storage/memory"
	pg "paseos-lugo/internal/adapters/storage/postgres"
	rstore "paseos-lugo/internal/adapters/storage/redis"
	"paseos-lugo/internal/config"
	"paseos-lugo/internal/domain/payment"
	"paseos-lugo/internal/domain/tracking"
	"paseos-lugo/internal/observability"
	"paseos-lugo/internal/platform/clock"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/platform/task"
	"paseos-lugo/internal/ports/clientstate"
	"paseos-lugo/internal/router"
)

const (
	sweepEvery  = 10 * time.Minute
	sessionIdle = 2 * time.Hour
)

func main() {
	cfg, err := config.LoadFile(os.Getenv("CONFIG_FILE"))
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "paseos-web",
	})
	defer func() { _ = log.Sync() }()
	if err != nil {
		log.Warn("config file not loaded", map[string]any{"err": err})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, purge, closeState, err := openState(ctx, cfg, log)
	if err != nil {
		log.Error("client state unavailable", map[string]any{"driver": cfg.StateDriver, "err": err})
		os.Exit(1)
	}
	defer closeState()

	api, err := backend.New(backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.HTTPTimeout,
		Observe: observability.ObserveBackend,
	})
	if err != nil {
		log.Error("invalid backend url", map[string]any{"err": err})
		os.Exit(1)
	}
	relay, err := mailrelay.New(cfg.MailRelayURL, cfg.HTTPTimeout, log)
	if err != nil {
		log.Error("invalid mail relay url", map[string]any{"err": err})
		os.Exit(1)
	}
	provider := oauth.NewProvider(cfg.OAuthURL)

	sessions := router.NewSessions(api, state, provider, log)
	payments := task.NewRegistry()
	trackers := task.NewRegistry()

	// Limpieza periódica: stores inactivos y estado vencido.
	sweeper := task.Every(ctx, clock.Real{}, sweepEvery, func(ctx context.Context) {
		n := sessions.Sweep(sessionIdle)
		purged, err := purge(ctx)
		if err != nil {
			log.Warn("client state purge failed", map[string]any{"err": err})
		}
		if n > 0 || purged > 0 {
			log.Debug("sweep", map[string]any{"sessions": n, "state_rows": purged})
		}
	})
	defer sweeper.Stop()

	handler := router.NewRouter(router.Options{
		Backend:         api,
		OAuth:           provider,
		Relay:           relay,
		Logger:          log,
		State:           state,
		Sessions:        sessions,
		VisitorSecret:   cfg.VisitorSecret,
		SecureCookies:   strings.HasPrefix(cfg.PublicOrigin, "https://"),
		Origin:          cfg.PublicOrigin,
		DraftTTL:        cfg.DraftTTL,
		DefaultLanguage: cfg.DefaultLanguage,
		Payment: payment.Options{
			Interval:    cfg.PaymentPollInterval,
			MaxAttempts: cfg.PaymentMaxAttempts,
			Registry:    payments,
		},
		Tracking: tracking.Options{
			Interval: cfg.WalkPollInterval,
			Registry: trackers,
		},
	})

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		// Sin WriteTimeout: /pago-exitoso hace long-poll y los WebSocket viven mucho.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.ServerPort, "backend": cfg.BackendURL, "state": cfg.StateDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			stop()
		}
	}()

	<-ctx.Done()

	// Primero se cortan pollers y trackers para que los handlers en curso terminen.
	payments.StopAll()
	trackers.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}

type purgeFunc func(ctx context.Context) (int64, error)

// openState elige el backend del estado de cliente según STATE_DRIVER.
func openState(ctx context.Context, cfg config.Config, log logger.Logger) (clientstate.Store, purgeFunc, func(), error) {
	switch cfg.StateDriver {
	case "", "memory":
		st := memory.NewClientState()
		return st, func(context.Context) (int64, error) { return int64(st.Purge()), nil }, func() {}, nil

	case "redis":
		rdb := rstore.Connect(cfg.RedisAddr, cfg.RedisPassword)
		if rdb == nil {
			return nil, nil, nil, errors.New("REDIS_ADDR required")
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		// Redis expira las claves solo.
		noop := func(context.Context) (int64, error) { return 0, nil }
		return rstore.NewClientState(rdb), noop, func() { _ = rdb.Close() }, nil

	case "postgres":
		pool, err := pg.Open(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres: %w", err)
		}
		repo := pg.NewClientStateRepo(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		log.Info("client state on postgres", nil)
		return repo, repo.Purge, pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STATE_DRIVER %q", cfg.StateDriver)
	}
}
