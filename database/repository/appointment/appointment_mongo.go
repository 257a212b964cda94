package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{coll: database.DB().Collection("appointments")}
}

// occupyingFilter matches pending/confirmed appointments overlapping
// [start,end) for a provider on a date. Overlap is the half-open test:
// existing.start < end AND existing.end > start.
func occupyingFilter(providerID, date string, start, end int) bson.M {
	return bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
}

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": appointmentID}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) ListOccupying(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
	}
	return repo.list(ctx, filter, bson.D{{Key: "start", Value: 1}})
}

func (repo *MongoAppointmentRepo) ListByProviderDate(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID, "date": date}
	return repo.list(ctx, filter, bson.D{{Key: "start", Value: 1}})
}

func (repo *MongoAppointmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	return repo.list(ctx, filter, bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
}

func (repo *MongoAppointmentRepo) ListUpcomingByProvider(ctx context.Context, providerID, fromDate string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": fromDate},
		"status":     bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
	}
	return repo.list(ctx, filter, bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": appointmentID}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s status: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", appointmentID)
	}
	return nil
}
