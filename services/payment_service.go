package services

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	apperrors "rannafy-server/errors"
	"rannafy-server/models"
	"rannafy-server/repository"

	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultCurrency = "usd"

// PaymentService owns checkout-session initiation and the payment
// confirmation (reconciliation) flow.
type PaymentService struct {
	gateway     CheckoutGateway
	payments    repository.PaymentRepository
	orders      repository.OrderRepository
	client      *mongo.Client // nil skips the transaction wrapper (tests)
	frontendURL string
	logger      *zap.Logger
}

func NewPaymentService(
	gateway CheckoutGateway,
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	client *mongo.Client,
	frontendURL string,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		payments:    payments,
		orders:      orders,
		client:      client,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

type CheckoutRequest struct {
	Price     float64 `json:"price" binding:"required,gt=0"`
	MealName  string  `json:"mealName" binding:"required"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
	OrderID   string  `json:"orderId" binding:"required"`
}

// CreateCheckoutSession requests a hosted checkout page from the processor
// and returns its redirect URL. Nothing is written locally: the session is
// ephemeral and unverified until confirmation retrieves it back.
func (s *PaymentService) CreateCheckoutSession(req *CheckoutRequest) (string, error) {
	if req.Price <= 0 {
		return "", apperrors.ErrCheckoutFailed
	}

	amountCents := int64(math.Round(req.Price * 100))

	sess, err := s.gateway.CreateCheckoutSession(CheckoutSessionInput{
		AmountCents: amountCents,
		Currency:    defaultCurrency,
		MealName:    req.MealName,
		UserEmail:   req.UserEmail,
		OrderID:     req.OrderID,
		SuccessURL:  s.frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.frontendURL + "/payment-cancelled",
	})
	if err != nil {
		s.logger.Error("Failed to create checkout session",
			zap.String("order_id", req.OrderID),
			zap.Error(err),
		)
		return "", apperrors.Wrap(apperrors.ErrCheckoutFailed, err)
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("order_id", req.OrderID),
		zap.Int64("amount_cents", amountCents),
	)
	return sess.URL, nil
}

// ConfirmResult is the outcome of a confirmation attempt. Success=false with
// no error means the session exists but has not been paid yet.
type ConfirmResult struct {
	Success          bool            `json:"success"`
	AlreadyProcessed bool            `json:"-"`
	Message          string          `json:"message,omitempty"`
	Payment          *models.Payment `json:"payment,omitempty"`
}

// ConfirmPayment reconciles a completed checkout session against local state.
// The retrieved session is the source of truth; the processor's payment
// intent id is the idempotency key, so replayed confirmations return the
// existing ledger entry instead of double-processing.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	if sessionID == "" {
		return nil, apperrors.ErrMissingParameter
	}

	sess, err := s.gateway.RetrieveSession(sessionID)
	if err != nil {
		s.logger.Error("Failed to retrieve checkout session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrPaymentFailed, err)
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return &ConfirmResult{Success: false, Message: "payment not completed"}, nil
	}

	if sess.PaymentIntent == nil || sess.PaymentIntent.ID == "" {
		s.logger.Error("Paid session has no payment intent", zap.String("session_id", sessionID))
		return nil, apperrors.ErrPaymentFailed
	}
	transactionID := sess.PaymentIntent.ID

	existing, err := s.payments.FindByTransactionID(ctx, transactionID)
	if err == nil {
		s.logger.Info("Skipping duplicate payment confirmation",
			zap.String("transaction_id", transactionID),
			zap.String("payment_id", existing.ID.Hex()),
		)
		return &ConfirmResult{
			Success:          true,
			AlreadyProcessed: true,
			Message:          "already processed",
			Payment:          existing,
		}, nil
	}
	if !stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.Wrap(apperrors.ErrPaymentFailed, err)
	}

	orderID, err := primitive.ObjectIDFromHex(sess.Metadata["orderId"])
	if err != nil {
		s.logger.Error("Checkout session carries no usable order reference",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrPaymentFailed, err)
	}

	payment := &models.Payment{
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      string(sess.Currency),
		UserEmail:     customerEmail(sess),
		OrderID:       orderID,
		MealName:      sess.Metadata["mealName"],
		TransactionID: transactionID,
		Status:        string(sess.PaymentStatus),
		PaidAt:        time.Now().UTC(),
	}

	// Order update and ledger insert commit together or not at all.
	err = s.runInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.orders.MarkPaid(txCtx, orderID); err != nil {
			return err
		}
		res, err := s.payments.Create(txCtx, payment)
		if err != nil {
			return err
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			payment.ID = oid
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Payment reconciliation failed",
			zap.String("transaction_id", transactionID),
			zap.String("order_id", orderID.Hex()),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrPaymentFailed, err)
	}

	s.logger.Info("Payment recorded",
		zap.String("transaction_id", transactionID),
		zap.String("order_id", orderID.Hex()),
		zap.Float64("amount", payment.Amount),
	)
	return &ConfirmResult{Success: true, Payment: payment}, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.payments.FindAll(ctx)
}

func (s *PaymentService) runInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.client == nil {
		return fn(ctx)
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func customerEmail(sess *stripe.CheckoutSession) string {
	if sess.CustomerEmail != "" {
		return sess.CustomerEmail
	}
	if sess.CustomerDetails != nil {
		return sess.CustomerDetails.Email
	}
	return ""
}
