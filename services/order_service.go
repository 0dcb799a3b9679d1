package services

import (
	"context"
	stderrors "errors"
	"time"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// OrderService owns the order lifecycle: placement and status transitions.
type OrderService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// PlaceOrder inserts a new order as pending/pending with the server clock.
func (s *OrderService) PlaceOrder(ctx context.Context, order *models.Order) (*mongo.InsertOneResult, error) {
	order.OrderStatus = models.OrderStatusPending
	order.PaymentStatus = models.PaymentStatusPending
	order.OrderTime = time.Now().UTC()

	res, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return res, nil
}

// ListOrders returns orders optionally filtered by buyer, meal or chef.
func (s *OrderService) ListOrders(ctx context.Context, buyerEmail, mealID, chefEmail string) ([]models.Order, error) {
	filter := bson.M{}
	if buyerEmail != "" {
		filter["userEmail"] = buyerEmail
	}
	if mealID != "" {
		oid, err := primitive.ObjectIDFromHex(mealID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		filter["mealId"] = oid
	}
	if chefEmail != "" {
		filter["chefEmail"] = chefEmail
	}
	return s.orders.Find(ctx, filter)
}

func (s *OrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return order, nil
}

// UpdateStatus applies the fixed transition table:
//
//	accepted  -> orderStatus=accepted,  paymentStatus=payment
//	cancelled -> orderStatus=cancelled, paymentStatus=cancelled
//	delivered -> orderStatus=delivered  (paymentStatus untouched)
//
// Any other target leaves the order untouched but still reports success.
// Whether that leniency is intentional is an open product question; the
// behavior is kept as-is rather than silently tightened.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := bson.M{}
	switch status {
	case models.OrderStatusAccepted:
		updates["orderStatus"] = models.OrderStatusAccepted
		updates["paymentStatus"] = models.PaymentStatusPayment
	case models.OrderStatusCancelled:
		updates["orderStatus"] = models.OrderStatusCancelled
		updates["paymentStatus"] = models.PaymentStatusCancelled
	case models.OrderStatusDelivered:
		updates["orderStatus"] = models.OrderStatusDelivered
	}

	if len(updates) == 0 {
		s.logger.Warn("Ignoring unrecognized order status",
			zap.String("order_id", id.Hex()),
			zap.String("status", status),
		)
		return nil
	}

	if _, err := s.orders.UpdateByID(ctx, id, updates); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
