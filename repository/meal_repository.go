package repository

import (
	"context"

	"rannafy-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MealRepository interface {
	Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Meal, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
}

type mongoMealRepo struct {
	collection *mongo.Collection
}

func NewMongoMealRepository(db *mongo.Database) MealRepository {
	return &mongoMealRepo{collection: db.Collection("meals")}
}

func (r *mongoMealRepo) Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Meal, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mongoMealRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	var meal models.Meal
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meal); err != nil {
		return nil, err
	}
	return &meal, nil
}
