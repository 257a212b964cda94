package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	return &MongoScheduleRepo{coll: database.DB().Collection("weekly_schedules")}
}

func (repo *MongoScheduleRepo) Upsert(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"providerId": schedule.ProviderID, "dayOfWeek": schedule.DayOfWeek}
	update := bson.M{"$set": schedule}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting weekly schedule for provider %s day %d: %w",
			schedule.ProviderID, schedule.DayOfWeek, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetByProviderDay(ctx context.Context, providerID string, dayOfWeek int) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	filter := bson.M{"providerId": providerID, "dayOfWeek": dayOfWeek}
	if err := repo.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching weekly schedule: %w", err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) ListByProvider(ctx context.Context, providerID string) ([]models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing weekly schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WeeklySchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding weekly schedules: %w", err)
	}
	return schedules, nil
}
