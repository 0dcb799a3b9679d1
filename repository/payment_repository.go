package repository

import (
	"context"

	"rannafy-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository defines the data access surface for the payment ledger.
// FindByTransactionID returns mongo.ErrNoDocuments when no entry exists.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (*mongo.InsertOneResult, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
}

type mongoPaymentRepo struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{collection: db.Collection("payments")}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, payment)
}

func (r *mongoPaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoPaymentRepo) FindAll(ctx context.Context) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
