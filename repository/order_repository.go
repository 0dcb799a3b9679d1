package repository

import (
	"context"

	"rannafy-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository defines the data access surface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter bson.M) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*mongo.UpdateResult, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type mongoOrderRepo struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepo{collection: db.Collection("orders")}
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, order)
}

func (r *mongoOrderRepo) Find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "orderTime", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
}

// MarkPaid flips the order's payment status to "paid". The order status
// itself is owned by the accept/deliver flow and stays untouched.
func (r *mongoOrderRepo) MarkPaid(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"paymentStatus": models.PaymentStatusPaid}},
	)
}
