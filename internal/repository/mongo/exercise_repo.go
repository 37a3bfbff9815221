package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository and
// repository.CatalogWriter. Template ids are stored as _id.
type mongoExerciseRepository struct {
	collection   *mongo.Collection
	imageBaseURL string
}

// NewMongoExerciseRepository creates a catalog repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database, imageBaseURL string) *mongoExerciseRepository {
	return &mongoExerciseRepository{
		collection:   db.Collection(exerciseCollectionName),
		imageBaseURL: imageBaseURL,
	}
}

// FetchExercises returns the whole catalog in import order.
func (r *mongoExerciseRepository) FetchExercises(ctx context.Context) ([]domain.ExerciseTemplate, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	templates := []domain.ExerciseTemplate{}
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}

// FetchExercise retrieves a single template by its id.
func (r *mongoExerciseRepository) FetchExercise(ctx context.Context, id string) (*domain.ExerciseTemplate, error) {
	var tmpl domain.ExerciseTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tmpl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

func (r *mongoExerciseRepository) ImageBaseURL() string {
	return r.imageBaseURL
}

// UpsertTemplates writes the templates in one bulk operation. Known ids are
// replaced and keep their catalog position. New ids are appended after the
// current last position, in seed order.
func (r *mongoExerciseRepository) UpsertTemplates(ctx context.Context, templates []domain.ExerciseTemplate) (int, error) {
	if len(templates) == 0 {
		return 0, nil
	}

	base, err := r.nextPosition(ctx)
	if err != nil {
		return 0, err
	}

	models := make([]mongo.WriteModel, 0, len(templates))
	for i, tmpl := range templates {
		if tmpl.ID == "" {
			return 0, repository.ErrInvalidRecord
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": tmpl.ID}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"name":                tmpl.Name,
					"tags":                tmpl.Tags,
					"caloriesCoefficient": tmpl.CaloriesCoefficient,
					"images":              tmpl.ImageNames,
					"bodyweightOnly":      tmpl.BodyweightOnly,
				},
				"$setOnInsert": bson.M{"position": base + i},
			}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("bulk upsert exercises: %w", err)
	}
	return int(result.UpsertedCount + result.MatchedCount), nil
}

func (r *mongoExerciseRepository) nextPosition(ctx context.Context) (int, error) {
	findOptions := options.FindOne().
		SetSort(bson.D{{Key: "position", Value: -1}}).
		SetProjection(bson.M{"position": 1})

	var last struct {
		Position int `bson:"position"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, findOptions).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("find last catalog position: %w", err)
	}
	return last.Position + 1, nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}},
			Options: options.Index().SetName("exercise_text_search"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
