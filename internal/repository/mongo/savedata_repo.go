package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const saveDataCollectionName = "save_data"

// mongoSaveDataRepository implements repository.SaveDataRepository.
// The exercise name is the document _id, so the "one record per exercise"
// rule is enforced by the primary key.
type mongoSaveDataRepository struct {
	collection *mongo.Collection
}

// NewMongoSaveDataRepository creates a new save-data repository backed by MongoDB.
func NewMongoSaveDataRepository(db *mongo.Database) *mongoSaveDataRepository {
	return &mongoSaveDataRepository{
		collection: db.Collection(saveDataCollectionName),
	}
}

// Create inserts a new record, failing with ErrDuplicate if one exists.
func (r *mongoSaveDataRepository) Create(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error) {
	if record.ExerciseName == "" {
		return nil, repository.ErrInvalidRecord
	}
	record = normalize(record)

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &record, nil
}

// Update replaces the sets of an existing record.
func (r *mongoSaveDataRepository) Update(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error) {
	record = normalize(record)

	filter := bson.M{"_id": record.ExerciseName}
	update := bson.M{
		"$set": bson.M{
			"sets":      record.Sets,
			"updatedAt": record.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

// Read retrieves the record for one exercise.
func (r *mongoSaveDataRepository) Read(ctx context.Context, exerciseName string) (*domain.SaveDataRecord, error) {
	var record domain.SaveDataRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": exerciseName}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ReadAll retrieves every record, sorted by exercise name.
func (r *mongoSaveDataRepository) ReadAll(ctx context.Context) ([]domain.SaveDataRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.SaveDataRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert creates or replaces the record with a single conditional write, so
// two concurrent callers can never both insert.
func (r *mongoSaveDataRepository) Upsert(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, bool, error) {
	if record.ExerciseName == "" {
		return nil, false, repository.ErrInvalidRecord
	}
	record = normalize(record)

	filter := bson.M{"_id": record.ExerciseName}
	update := bson.M{
		"$set": bson.M{
			"sets":      record.Sets,
			"updatedAt": record.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// Two upserts racing on a missing _id can make one of them hit the
		// key; the retry is then a plain update.
		if mongo.IsDuplicateKeyError(err) {
			updated, err := r.Update(ctx, record)
			return updated, false, err
		}
		return nil, false, err
	}
	return &record, result.UpsertedCount == 1, nil
}

// Append pushes sets onto the record's history with an upserting update,
// then reads the resulting document back.
func (r *mongoSaveDataRepository) Append(ctx context.Context, exerciseName string, sets []domain.Rep) (*domain.SaveDataRecord, bool, error) {
	if exerciseName == "" {
		return nil, false, repository.ErrInvalidRecord
	}
	if sets == nil {
		sets = []domain.Rep{}
	}

	filter := bson.M{"_id": exerciseName}
	update := bson.M{
		"$push": bson.M{"sets": bson.M{"$each": sets}},
		"$set":  bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, false, err
		}
		// lost an insert race, the document exists now
		if result, err = r.collection.UpdateOne(ctx, filter, update); err != nil {
			return nil, false, err
		}
	}

	record, err := r.Read(ctx, exerciseName)
	if err != nil {
		return nil, false, err
	}
	return record, result.UpsertedCount == 1, nil
}

func normalize(record domain.SaveDataRecord) domain.SaveDataRecord {
	record = record.Clone()
	if record.Sets == nil {
		record.Sets = []domain.Rep{}
	}
	record.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	return record
}

// EnsureSaveDataIndexes creates necessary indexes for the save data collection.
func EnsureSaveDataIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
