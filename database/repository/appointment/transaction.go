package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree performs the overlap check and the insert inside a single
// multi-document transaction. The booking service additionally serializes
// attempts per provider, but the transaction is what makes the check-then-
// insert safe across instances: two concurrent writers for the same interval
// cannot both observe a free slot and commit.
func (repo *MongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := occupyingFilter(appt.ProviderID, appt.Date, appt.Start, appt.End)
		n, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		appt.CreatedAt = time.Now()
		appt.UpdatedAt = appt.CreatedAt
		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.HasErrorLabel("TransientTransactionError") {
			return ErrTxnConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
