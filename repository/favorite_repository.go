package repository

import (
	"context"

	"rannafy-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.Favorite, error)
	FindByMealAndUser(ctx context.Context, mealID primitive.ObjectID, userEmail string) (*models.Favorite, error)
}

type mongoFavoriteRepo struct {
	collection *mongo.Collection
}

func NewMongoFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &mongoFavoriteRepo{collection: db.Collection("favorites")}
}

func (r *mongoFavoriteRepo) Create(ctx context.Context, favorite *models.Favorite) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, favorite)
}

func (r *mongoFavoriteRepo) FindAll(ctx context.Context) ([]models.Favorite, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *mongoFavoriteRepo) FindByMealAndUser(ctx context.Context, mealID primitive.ObjectID, userEmail string) (*models.Favorite, error) {
	var favorite models.Favorite
	filter := bson.M{"mealId": mealID, "userEmail": userEmail}
	if err := r.collection.FindOne(ctx, filter).Decode(&favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}
