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

const (
	profileCollectionName = "profile"
	currentBMIDocumentID  = "bmi"
)

// mongoBMIRepository keeps the single current BMI profile as one document.
type mongoBMIRepository struct {
	collection *mongo.Collection
}

func NewMongoBMIRepository(db *mongo.Database) *mongoBMIRepository {
	return &mongoBMIRepository{
		collection: db.Collection(profileCollectionName),
	}
}

func (r *mongoBMIRepository) GetBMI(ctx context.Context) (*domain.BMI, error) {
	var bmi domain.BMI
	err := r.collection.FindOne(ctx, bson.M{"_id": currentBMIDocumentID}).Decode(&bmi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &bmi, nil
}

func (r *mongoBMIRepository) SaveBMI(ctx context.Context, bmi domain.BMI) (*domain.BMI, error) {
	bmi.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	update := bson.M{
		"$set": bson.M{
			"weight":     bmi.Weight,
			"height":     bmi.Height,
			"weightUnit": bmi.WeightUnit,
			"heightUnit": bmi.HeightUnit,
			"updatedAt":  bmi.UpdatedAt,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": currentBMIDocumentID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &bmi, nil
}
