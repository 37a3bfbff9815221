package main

import (
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	seedPath := flag.String("path", "", "path to the catalog seed file, .json or .yaml (required)")
	dryRun := flag.Bool("dry-run", false, "decode and validate the seed without writing to the database")
	flag.Parse()

	if *seedPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: catalog-import -config . -path exercises.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.Logging.Level,
	})

	templates, err := catalog.LoadFile(*seedPath)
	if err != nil {
		log.Fatalf("failed to load catalog seed: %v", err)
	}
	log.Infof("decoded %d exercises from %s", len(templates), *seedPath)

	if *dryRun {
		log.Info("DRY RUN mode, no data will be written to the database")
		return
	}
	if cfg.Storage.Backend != config.BackendMongo {
		log.Fatalf("catalog import needs the mongo backend, configured: %s", cfg.Storage.Backend)
	}

	stats, err := importTemplates(cfg, log, templates)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Infof("import complete: %d decoded, %d upserted", stats.Decoded, stats.Upserted)
}

func importTemplates(cfg config.Config, log logrus.FieldLogger, templates []domain.ExerciseTemplate) (*catalog.Stats, error) {
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect mongodb")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	mongo.EnsureIndexes(ctx, appDB, log)

	imp := catalog.NewImporter(mongo.NewMongoExerciseRepository(appDB, cfg.Catalog.ImageBaseURL), log, false)
	return imp.Import(ctx, templates)
}
