package slot

import (
	"context"
	"errors"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) *AvailabilityMongoRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilityWindows),
	}
}

var _ contracts.AvailabilityRepository = (*AvailabilityMongoRepository)(nil)

func (r *AvailabilityMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "practitionerId", Value: 1},
			{Key: "dayOfWeek", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("practitioner_day_active"),
	})
	if err != nil {
		return exceptions.ErrMongoCreateIndex(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) ListByPractitioner(ctx context.Context, practitionerID string) ([]models.AvailabilityWindow, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	return r.find(ctx, bson.M{"practitionerId": practitionerID}, opts)
}

func (r *AvailabilityMongoRepository) ListActiveByDay(ctx context.Context, practitionerID string, dayOfWeek int) ([]models.AvailabilityWindow, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"dayOfWeek":      dayOfWeek,
		"isActive":       true,
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (r *AvailabilityMongoRepository) FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error) {
	var window models.AvailabilityWindow
	err := r.Collection.FindOne(ctx, bson.M{"_id": windowID}).Decode(&window)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &window, nil
}

func (r *AvailabilityMongoRepository) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	if _, err := r.Collection.InsertOne(ctx, window); err != nil {
		return exceptions.ErrMongoInsertDocument(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) Update(ctx context.Context, window *models.AvailabilityWindow) error {
	update := bson.M{"$set": bson.M{
		"dayOfWeek":     window.DayOfWeek,
		"startTime":     window.StartTime,
		"endTime":       window.EndTime,
		"isActive":      window.IsActive,
		"effectiveFrom": window.EffectiveFrom,
		"effectiveTo":   window.EffectiveTo,
		"updatedAt":     window.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": window.ID}, update)
	if err != nil {
		return exceptions.ErrMongoUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrWindowNotFound(nil, window.ID)
	}
	return nil
}

func (r *AvailabilityMongoRepository) Delete(ctx context.Context, windowID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": windowID})
	if err != nil {
		return exceptions.ErrMongoDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrWindowNotFound(nil, windowID)
	}
	return nil
}

func (r *AvailabilityMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.AvailabilityWindow, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	windows := []models.AvailabilityWindow{}
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, exceptions.ErrMongoDecodeDocument(err)
	}
	return windows, nil
}
