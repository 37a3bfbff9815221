// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) *mongoWorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// RecordWorkout inserts a completed workout. Workouts are write-once, so an
// existing id is reported as a write failure like any other insert error.
func (r *mongoWorkoutRepository) RecordWorkout(ctx context.Context, record domain.WorkoutRecord) (*domain.WorkoutRecord, error) {
	if record.ID == "" {
		return nil, fmt.Errorf("%w: workout id is required", repository.ErrWriteFailed)
	}
	if record.Exercises == nil {
		record.Exercises = []domain.ExerciseRecord{}
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: workout [%s] already recorded", repository.ErrWriteFailed, record.ID)
		}
		return nil, fmt.Errorf("%w: %w", repository.ErrWriteFailed, err)
	}
	return &record, nil
}

// ListWorkouts returns all workouts, newest first.
func (r *mongoWorkoutRepository) ListWorkouts(ctx context.Context) ([]domain.WorkoutRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.WorkoutRecord{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exercises.exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
