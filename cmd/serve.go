package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	httpctx "github.com/Om-mac/multiple-shop-analysis/internal/api/http/context"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/handler"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/router"
	httpServer "github.com/Om-mac/multiple-shop-analysis/internal/api/http/server"
	"github.com/Om-mac/multiple-shop-analysis/internal/config"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/metrics"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
	"github.com/Om-mac/multiple-shop-analysis/internal/repository/redis"
	"github.com/Om-mac/multiple-shop-analysis/internal/repository/sqldb"
	"github.com/Om-mac/multiple-shop-analysis/internal/server"
	"github.com/Om-mac/multiple-shop-analysis/internal/service"
	"github.com/Om-mac/multiple-shop-analysis/internal/telemetry"
	"github.com/Om-mac/multiple-shop-analysis/internal/token"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger = logger.With("service", cfg.Tracing.ServiceName)

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Init(cfg.Tracing, buildVersion)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	db, err := sqldb.NewConnection(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()
	logger.Info("storage ready", "driver", db.Driver())

	sessionStore, closeSessions, err := newSessionStore(ctx, cfg, db, logger)
	if err != nil {
		logger.Fatal("failed to initialize session store", "error", err)
	}
	defer closeSessions()

	m := metrics.New()
	tokenManager := token.NewJWT(cfg.Session.Secret)

	authService := service.NewAuth(
		sqldb.NewUserRepository(db),
		sessionStore,
		tokenManager,
		cfg.Session.TTL,
		logger,
		service.WithAuthRecorder(m),
	)
	salesService := service.NewSales(sqldb.NewSaleRepository(db), location, logger,
		service.WithSalesRecorder(m),
	)

	r := router.New(router.Dependencies{
		AuthService:    authService,
		Authenticator:  authService,
		SalesService:   salesService,
		Pinger:         db,
		Metrics:        m,
		ContextManager: httpctx.NewManager(),
	}, handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure || cfg.HTTP.EnableHTTPS,
	}, cfg.Tracing.ServiceName, logger)

	engine, err := r.Register()
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	srv := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var (
		wg       sync.WaitGroup
		startErr error
	)
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			startErr = fmt.Errorf("failed to start server: %w", err)
			cancel()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	if cmd.Context().Err() != nil {
		logger.Info("received interruption signal, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("error during tracer shutdown", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return startErr
}

func newSessionStore(ctx context.Context, cfg *config.Config, db *sqldb.Connection, logger *logger.Logger) (model.SessionStore, func(), error) {
	if cfg.Session.Backend != "redis" {
		return sqldb.NewSessionRepository(db), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
	}

	logger.Info("sessions are stored in redis", "address", cfg.Redis.Addr)
	return redis.NewSessionRepository(client), func() { _ = client.Close() }, nil
}
