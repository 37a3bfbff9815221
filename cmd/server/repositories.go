package main

import (
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type catalogStore interface {
	repository.ExerciseRepository
	repository.CatalogWriter
}

type repositories struct {
	exercises catalogStore
	workouts  repository.WorkoutRepository
	saveData  repository.SaveDataRepository
	bmi       repository.BMIRepository
	close     func()
}

func newRepositories(cfg config.Config, log logrus.FieldLogger) (*repositories, error) {
	if cfg.Storage.Backend == config.BackendMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return &repositories{
			exercises: memory.NewExerciseRepository(cfg.Catalog.ImageBaseURL),
			workouts:  memory.NewWorkoutRepository(),
			saveData:  memory.NewSaveDataRepository(),
			bmi:       memory.NewBMIRepository(),
			close:     func() {},
		}, nil
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("database connection established: %s", cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	mongo.EnsureIndexes(ctx, appDB, log)

	return &repositories{
		exercises: mongo.NewMongoExerciseRepository(appDB, cfg.Catalog.ImageBaseURL),
		workouts:  mongo.NewMongoWorkoutRepository(appDB),
		saveData:  mongo.NewMongoSaveDataRepository(appDB),
		bmi:       mongo.NewMongoBMIRepository(appDB),
		close: func() {
			log.Info("disconnecting mongodb...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.WithError(err).Error("failed to disconnect mongodb")
			}
		},
	}, nil
}
