package repository

import (
	"context"

	"rannafy-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*mongo.InsertOneResult, error)
	FindByMealID(ctx context.Context, mealID primitive.ObjectID) ([]models.Review, error)
}

type mongoReviewRepo struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{collection: db.Collection("mealsReviews")}
}

func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, review)
}

func (r *mongoReviewRepo) FindByMealID(ctx context.Context, mealID primitive.ObjectID) ([]models.Review, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"mealId": mealID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
