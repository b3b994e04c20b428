package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) *UserMongoRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

var _ contracts.UserRepository = (*UserMongoRepository)(nil)

func (r *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoCreateIndex(err)
	}
	return nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFindDocument(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"password": 0})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, exceptions.ErrMongoDecodeDocument(err)
	}
	return users, int(total), nil
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &user, nil
}
