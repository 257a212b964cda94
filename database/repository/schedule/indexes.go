package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the weekly schedule indexes. The unique compound
// index is what guarantees at most one record per (providerId, dayOfWeek).
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("weekly_schedules")
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create weekly schedule indexes: %w", err)
	}
	return nil
}
