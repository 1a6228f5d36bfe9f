package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"contractdraft-backend/clauses"
	"contractdraft-backend/config"
	"contractdraft-backend/handlers"
	"contractdraft-backend/repository"
	"contractdraft-backend/service"
	"contractdraft-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg.Catalog.Path, logger)
	if err != nil {
		logger.Fatal("Failed to load clause catalog", zap.Error(err))
	}
	selector := clauses.NewLiveSelector(catalog)

	// Initialize contract store
	contractRepo, closeStore, err := openContractStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to initialize contract store", zap.Error(err))
	}
	defer closeStore()

	// Initialize document archive
	archive, err := storage.NewStorage(cfg.StorageConfig())
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	logger.Info("Storage initialized", zap.String("type", cfg.Storage.Type))

	// Initialize services
	generator := service.NewContractGenerator(
		service.GeneratorWithSelector(selector),
		service.GeneratorWithLogger(logger.Named("generator")),
	)

	contractService := service.NewContractService(
		service.WithContractRepository(contractRepo),
		service.WithGenerator(generator),
		service.WithStorage(archive),
		service.WithLogger(logger.Named("contracts")),
	)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(selector, logger.Named("catalog"))
	contractHandler := handlers.NewContractHandler(contractService)
	documentHandler := handlers.NewDocumentHandler(contractService)

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger(logger.Named("http")))
	handlers.RegisterRoutes(r, catalogHandler, contractHandler, documentHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port), zap.Int("clauses", catalog.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Catalog.Path != "" {
		watcher := clauses.NewCatalogWatcher(cfg.Catalog.Path, selector, logger.Named("catalog"))
		g.Go(func() error {
			if err := watcher.Run(gctx); err != nil {
				// Serving continues on the loaded catalog.
				logger.Warn("Catalog watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadCatalog returns the built-in Korean catalog unless a YAML catalog is configured
func loadCatalog(path string, logger *zap.Logger) (*clauses.Catalog, error) {
	catalog := clauses.DefaultCatalog()
	if path != "" {
		var err error
		catalog, err = clauses.LoadCatalogFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded clause catalog", zap.String("path", path), zap.Int("clauses", catalog.Len()))
	}

	for _, warning := range catalog.Check() {
		logger.Warn("Clause catalog problem", zap.String("warning", warning))
	}
	return catalog, nil
}

// openContractStore returns the configured repository and a function that
// releases it
func openContractStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (service.ContractRepository, func(), error) {
	switch cfg.ResolvedDriver() {
	case config.DriverPostgres:
		db, err := initPostgres(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Postgres connection established")
		return repository.NewContractRepository(db), db.Close, nil

	case config.DriverSQLite:
		db, err := repository.OpenSQLite(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("SQLite store opened", zap.String("path", cfg.URL))
		return repository.NewSQLiteContractRepository(db), func() { db.Close() }, nil

	default:
		logger.Warn("No database configured, contracts are kept in memory")
		return repository.NewMemoryContractRepository(), func() {}, nil
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
