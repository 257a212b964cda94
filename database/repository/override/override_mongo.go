package overrideRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOverrideRepo implements OverrideRepository using MongoDB.
type MongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo constructs a new instance of MongoOverrideRepo.
func NewMongoOverrideRepo() OverrideRepository {
	return &MongoOverrideRepo{coll: database.DB().Collection("date_overrides")}
}

func (repo *MongoOverrideRepo) Upsert(ctx context.Context, override *models.DateOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": override.ProviderID, "date": override.Date}
	// Full replacement: a nil Start/End must clear any previously stored
	// window, not merge with it.
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, override, opts); err != nil {
		return fmt.Errorf("error upserting date override for provider %s on %s: %w",
			override.ProviderID, override.Date, err)
	}
	return nil
}

func (repo *MongoOverrideRepo) UpsertMany(ctx context.Context, overrides []models.DateOverride) error {
	if len(overrides) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(overrides))
	for i := range overrides {
		ov := overrides[i]
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"providerId": ov.ProviderID, "date": ov.Date}).
			SetReplacement(ov).
			SetUpsert(true))
	}
	if _, err := repo.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("error bulk upserting date overrides: %w", err)
	}
	return nil
}

func (repo *MongoOverrideRepo) GetByProviderDate(ctx context.Context, providerID, date string) (*models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var override models.DateOverride
	filter := bson.M{"providerId": providerID, "date": date}
	if err := repo.coll.FindOne(ctx, filter).Decode(&override); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching date override: %w", err)
	}
	return &override, nil
}

func (repo *MongoOverrideRepo) ListRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": fromDate, "$lte": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing date overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.DateOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("error decoding date overrides: %w", err)
	}
	return overrides, nil
}

func (repo *MongoOverrideRepo) Delete(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"providerId": providerID, "date": date}); err != nil {
		return fmt.Errorf("error deleting date override for %s on %s: %w", providerID, date, err)
	}
	return nil
}
