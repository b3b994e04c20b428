package appointments

import (
	"context"
	"errors"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activeSlotIndexName = "practitioner_start_active_unique"

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

var _ contracts.AppointmentRepository = (*AppointmentMongoRepository)(nil)

// EnsureIndexes creates the unique partial index that makes two active
// appointments for the same practitioner and start time impossible.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "practitionerId", Value: 1},
				{Key: "startTime", Value: 1},
			},
			Options: options.Index().
				SetName(activeSlotIndexName).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "startTime", Value: -1}},
			Options: options.Index().SetName("patient_start"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoCreateIndex(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotTaken(err, appointment.PractitionerID, appointment.StartTime.Format(time.RFC3339))
		}
		return exceptions.ErrMongoInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return r.findOne(ctx, bson.M{"_id": appointmentID})
}

func (r *AppointmentMongoRepository) FindActiveAt(ctx context.Context, practitionerID string, startTime time.Time) (*models.Appointment, error) {
	return r.findOne(ctx, bson.M{
		"practitionerId": practitionerID,
		"startTime":      startTime,
		"active":         true,
	})
}

func (r *AppointmentMongoRepository) ListActiveBetween(ctx context.Context, practitionerID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"active":         true,
		"startTime":      bson.M{"$gte": from, "$lt": to},
	}
	return r.find(ctx, filter)
}

func (r *AppointmentMongoRepository) ListByPractitioner(ctx context.Context, practitionerID string, status constvars.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"practitionerId": practitionerID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointment *models.Appointment) error {
	update := bson.M{"$set": bson.M{
		"status":       appointment.Status,
		"active":       appointment.Active,
		"cancelReason": appointment.CancelReason,
		"updatedAt":    appointment.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointment.ID}, update)
	if err != nil {
		return exceptions.ErrMongoUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil, appointment.ID)
	}
	return nil
}

func (r *AppointmentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDecodeDocument(err)
	}
	return appointments, nil
}
