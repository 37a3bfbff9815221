package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/cache"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// @title Fitness Tracker API
// @version 1.0
// @description Exercise catalog, workout recording, calorie tracking, per-exercise progress and BMI.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	log := logging.New(logging.LoggerSetupParams{
		LogFileName:   cfg.Logging.FileName,
		LogToStdout:   cfg.Logging.ToStdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
	})
	log.Info("starting fitness tracker server...")

	if err := run(cfg, log); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	log.Info("server exiting")
}

// run wires the server and blocks until an interrupt signal. Resources
// opened here are released before it returns, on error paths too.
func run(cfg config.Config, log *logrus.Logger) error {
	// --- Repositories ---
	repos, err := newRepositories(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize repositories: %w", err)
	}
	defer repos.close()

	cacheTTLSeconds := int(cfg.Catalog.CacheTTL.Seconds())
	exerciseRepo := cache.NewExerciseRepository(repos.exercises, cfg.Catalog.CacheSizeMB, cacheTTLSeconds, log)

	if cfg.Catalog.SeedPath != "" {
		importer := catalog.NewImporter(repos.exercises, log, false, exerciseRepo)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		stats, err := importer.ImportFile(ctx, cfg.Catalog.SeedPath)
		cancel()
		if err != nil {
			return fmt.Errorf("seed exercise catalog from %s: %w", cfg.Catalog.SeedPath, err)
		}
		log.Infof("catalog seeded: %d exercises", stats.Upserted)
	}

	// --- Image lookup ---
	imageLookup, err := newImageLookup(cfg, exerciseRepo.ImageBaseURL(), log)
	if err != nil {
		return fmt.Errorf("initialize image lookup: %w", err)
	}

	// --- Metrics & Services ---
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager("fitness", "tracker", promRegistry)

	saveDataService := service.NewSaveDataService(repos.saveData, metricsManager, log)
	bmiService := service.NewBMIService(repos.bmi)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, api.Dependencies{
		ExerciseRepo:    exerciseRepo,
		ImageLookup:     imageLookup,
		WorkoutRepo:     repos.workouts,
		SaveDataService: saveDataService,
		BMIService:      bmiService,
		Metrics:         metricsManager,
		Gatherer:        promRegistry,
		Log:             log,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen and serve: %w", err)
	case <-quit:
	}
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	return nil
}

func newImageLookup(cfg config.Config, imageBaseURL string, log logrus.FieldLogger) (repository.ImageLookupRepository, error) {
	if !cfg.S3.Enabled {
		log.Infof("catalog images resolve against %s", imageBaseURL)
		return storage.NewBaseURLImageLookup(imageBaseURL), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3, log)
	if err != nil {
		return nil, err
	}

	expiry := cfg.S3.URLExpiry
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return storage.NewObjectImageLookup(fileStorage, cfg.S3.ImagePrefix, expiry), nil
}
