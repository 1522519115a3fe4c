package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-rest/internal/auth"
	"github.com/rogerio-castellano/inventory-rest/internal/config"
	"github.com/rogerio-castellano/inventory-rest/internal/db"
	api "github.com/rogerio-castellano/inventory-rest/internal/http"
	rl "github.com/rogerio-castellano/inventory-rest/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-rest/internal/logger"
	"github.com/rogerio-castellano/inventory-rest/internal/redissvc"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
)

// @title Inventory REST API
// @version 1.0
// @description CRUD API for products (JSON) and records (XML).
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", os.Getenv("INVENTORY_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "inventory-rest:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.ServiceName, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{
		Metrics: api.NewMetrics(),
		Logger:  log,

		TrustProxyHeaders: cfg.HTTP.TrustProxyHeaders,
	}

	switch cfg.Storage.Products {
	case config.StoragePostgres:
		database, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer database.Close()
		if err := db.Migrate(ctx, database); err != nil {
			return err
		}
		deps.Products = repo.NewPostgresProductInventory(database)
	default:
		deps.Products = repo.NewInMemoryProductInventory()
	}

	switch cfg.Storage.Records {
	case config.StorageRedis:
		rdb, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		deps.Records = repo.NewRedisRecordInventory(rdb)
	default:
		deps.Records = repo.NewInMemoryRecordInventory()
	}

	if cfg.Auth.Enabled() {
		users, err := repo.NewUserRepositoryFromHashes(cfg.Auth.Users)
		if err != nil {
			return err
		}
		deps.Users = users
		deps.Issuer = auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	}

	if cfg.RateLimit.RPS > 0 {
		deps.Limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go deps.Limiter.StartVisitorCleanupLoop(ctx, time.Minute)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("products_storage", cfg.Storage.Products),
			zap.String("records_storage", cfg.Storage.Records),
			zap.Bool("auth", cfg.Auth.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}
