package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/jobs"
	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/middleware"
	"github.com/anonto42/reelshare/backend/internal/repositories"
	"github.com/anonto42/reelshare/backend/internal/router"
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/anonto42/reelshare/backend/pkg/config"
	"github.com/anonto42/reelshare/backend/pkg/firebase"
	"github.com/anonto42/reelshare/backend/pkg/logger"
	"github.com/anonto42/reelshare/backend/pkg/storage"
	"github.com/anonto42/reelshare/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Identity and capabilities
	authz, identity, err := setupAuth(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize auth", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	st := store.New(authz, store.WithLogger(zl.Named("store")))

	// Initialize database connections
	db, err := config.InitDB(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	snapshotRepo, err := setupSnapshots(cfg, db)
	if err != nil {
		zl.Fatal("failed to initialize snapshot repository", zap.Error(err))
	}

	media, err := setupMedia(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize media store", zap.Error(err))
	}

	var wg sync.WaitGroup
	if snapshotRepo != nil {
		snapshotter := jobs.NewSnapshotter(st, snapshotRepo, m, zl.Named("snapshot"), cfg.SnapshotInterval)
		if err := snapshotter.Load(ctx); err != nil {
			zl.Fatal("failed to load snapshot", zap.Error(err))
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshotter.Run(ctx)
		}()
	}

	aggregator := jobs.NewTrendingAggregator(st, m, zl.Named("trending"), cfg.TrendingInterval, cfg.TrendingLimit)
	wg.Add(1)
	go func() {
		defer wg.Done()
		aggregator.Run(ctx)
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, zl)
	router.SetupRoutes(e, router.Dependencies{
		Store:      st,
		Authorizer: authz,
		Media:      media,
		Metrics:    m,
		Gatherer:   reg,
		Identity:   identity,
		Logger:     zl,
	})

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port), zap.String("auth_mode", cfg.AuthMode))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	wg.Wait()
}

func setupAuth(ctx context.Context, cfg *config.Config, zl *zap.Logger) (auth.Authorizer, echo.MiddlewareFunc, error) {
	if cfg.AuthMode == config.AuthModeFirebase {
		app, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, nil, err
		}
		zl.Info("firebase app and auth client initialized")
		return auth.NewFirebaseAuthorizer(app.AuthClient, zl.Named("authz")), middleware.FirebaseAuthMiddleware(app.AuthClient), nil
	}
	return auth.NewStaticAuthorizer(cfg.AdminIDs...), middleware.JWTAuthMiddleware(cfg.JWTSecret), nil
}

func setupSnapshots(cfg *config.Config, db *config.DB) (repositories.SnapshotRepository, error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotPostgres:
		repo := repositories.NewPostgresSnapshotRepository(db.Postgres)
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		return repo, nil
	case config.SnapshotMongo:
		return repositories.NewMongoSnapshotRepository(db.Mongo.Database(cfg.MongoDatabase)), nil
	}
	return nil, nil
}

func setupMedia(ctx context.Context, cfg *config.Config, zl *zap.Logger) (storage.MediaStore, error) {
	switch cfg.MediaBackend {
	case config.MediaS3:
		return storage.NewS3Client(cfg.S3Region, cfg.S3Bucket)
	case config.MediaGCS:
		return storage.NewGCSClient(ctx, cfg.GCSBucketName, cfg.GCSCredentialsFile)
	}
	return storage.NewLocalStorage(cfg.LocalStoragePath, zl.Named("media"))
}
