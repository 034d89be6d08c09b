// @title        Shipping Rates API
// @version      1.0
// @description  Courier price quotes and shipment submission checks.
// @BasePath     /
//
// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        Authorization
// @description                 "Bearer " followed by ADMIN_TOKEN.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/buy2send/shipping-rates/internal/api"
	"github.com/buy2send/shipping-rates/internal/api/handler"
	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/ports"
	"github.com/buy2send/shipping-rates/internal/core/service"
	"github.com/buy2send/shipping-rates/internal/core/validation"
	"github.com/buy2send/shipping-rates/internal/infrastructure/config"
	"github.com/buy2send/shipping-rates/internal/infrastructure/db/mongo"
	"github.com/buy2send/shipping-rates/internal/infrastructure/db/postgres"
	"github.com/buy2send/shipping-rates/internal/infrastructure/db/redis"
	"github.com/buy2send/shipping-rates/internal/infrastructure/queue"
	"github.com/buy2send/shipping-rates/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction(), Env: cfg.Env})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	opts := domain.CatalogOptions{
		VolumetricCurrencyID: cfg.Catalog.VolumetricCurrencyID,
		BaseCurrency:         cfg.Catalog.BaseCurrency,
	}

	repo, closeRepo, err := openCatalog(ctx, cfg, opts, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	readiness := []handler.Dependency{{Name: cfg.Catalog.Backend, Pinger: repo}}

	var cache ports.CatalogCache
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:        cfg.Redis.Addr,
		Username:    cfg.Redis.Username,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		TLS:         cfg.Redis.TLS,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		readiness = append(readiness, handler.Dependency{Name: "redis", Optional: true})
	} else {
		defer rdb.Close()
		c := redis.NewCatalogCache(rdb, "")
		cache = c
		readiness = append(readiness, handler.Dependency{Name: "redis", Pinger: c, Optional: true})
	}

	catalog := service.NewCatalogService(repo, cache, cfg.Catalog.CacheTTL, logger.Component("catalog"))
	quotes := service.NewQuoteService(catalog, logger.Component("quotes"))
	shipments := service.NewShipmentService(validation.New(), quotes, logger.Component("shipments"))

	// Workers outlive the signal context so in-flight batches finish during
	// srv.Shutdown; they are stopped once the server has drained.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher := queue.NewDispatcher(0, quotes, logger.Component("batch"))
	dispatcher.Start(workerCtx)

	if _, err := catalog.Snapshot(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog warm-up failed, will retry on first request")
	}

	e := api.NewRouter(api.Dependencies{
		Quotes:     quotes,
		Batcher:    dispatcher,
		Shipments:  shipments,
		Readiness:  readiness,
		AdminToken: cfg.AdminToken,
		Log:        logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("catalog_backend", cfg.Catalog.Backend).
			Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openCatalog connects the configured catalog store and returns a repository
// with its close function.
func openCatalog(ctx context.Context, cfg *config.Config, opts domain.CatalogOptions, log zerolog.Logger) (ports.CatalogRepository, func(), error) {
	switch cfg.Catalog.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewCatalogRepository(pool, opts)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("catalog backend: postgres")
		return repo, pool.Close, nil

	default:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:                    cfg.Mongo.URI,
			Database:               cfg.Mongo.Database,
			AppName:                cfg.Mongo.AppName,
			MaxPoolSize:            cfg.Mongo.MaxPoolSize,
			ConnectTimeout:         cfg.Mongo.ConnectTimeout,
			ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongo.NewCatalogRepository(db, opts)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure catalog indexes")
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("catalog backend: mongo")
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}
}
