package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rannafy-server/models"
	"rannafy-server/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// --- Shared test doubles ---

type fakeGateway struct {
	sessions  map[string]*stripe.CheckoutSession
	createErr error
}

func (f *fakeGateway) CreateCheckoutSession(in services.CheckoutSessionInput) (*stripe.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/pay/cs_test_1"}, nil
}

func (f *fakeGateway) RetrieveSession(id string) (*stripe.CheckoutSession, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, stderrors.New("no such session")
	}
	return sess, nil
}

type stubPaymentRepo struct {
	byTransaction map[string]*models.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{byTransaction: make(map[string]*models.Payment)}
}

func (m *stubPaymentRepo) Create(_ context.Context, payment *models.Payment) (*mongo.InsertOneResult, error) {
	m.byTransaction[payment.TransactionID] = payment
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *stubPaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*models.Payment, error) {
	p, ok := m.byTransaction[transactionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (m *stubPaymentRepo) FindAll(_ context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	for _, p := range m.byTransaction {
		payments = append(payments, *p)
	}
	return payments, nil
}

type stubOrderRepo struct {
	orders map[primitive.ObjectID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (m *stubOrderRepo) Create(_ context.Context, order *models.Order) (*mongo.InsertOneResult, error) {
	id := primitive.NewObjectID()
	order.ID = id
	m.orders[id] = order
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (m *stubOrderRepo) Find(_ context.Context, _ bson.M) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (m *stubOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return o, nil
}

func (m *stubOrderRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates bson.M) (*mongo.UpdateResult, error) {
	o, ok := m.orders[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if v, ok := updates["orderStatus"]; ok {
		o.OrderStatus = v.(string)
	}
	if v, ok := updates["paymentStatus"]; ok {
		o.PaymentStatus = v.(string)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *stubOrderRepo) MarkPaid(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	if o, ok := m.orders[id]; ok {
		o.PaymentStatus = models.PaymentStatusPaid
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func newPaymentRouter(gw *fakeGateway, payments *stubPaymentRepo, orders *stubOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewPaymentService(gw, payments, orders, nil, "http://localhost:5173", zap.NewNop())
	pc := NewPaymentController(svc, zap.NewNop())

	r := gin.New()
	r.POST("/create-checkout-session", pc.CreateCheckoutSession)
	r.PATCH("/payment-success", pc.PaymentSuccess)
	r.GET("/payments", pc.GetPayments)
	return r
}

// --- Tests ---

func TestCreateCheckoutSessionEndpoint(t *testing.T) {
	router := newPaymentRouter(&fakeGateway{}, newStubPaymentRepo(), newStubOrderRepo())

	body, _ := json.Marshal(gin.H{
		"price":     12.5,
		"mealName":  "Beef Tehari",
		"userEmail": "buyer@example.com",
		"orderId":   primitive.NewObjectID().Hex(),
	})
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", resp["url"])
}

func TestCreateCheckoutSessionEndpoint_MissingPrice(t *testing.T) {
	router := newPaymentRouter(&fakeGateway{}, newStubPaymentRepo(), newStubOrderRepo())

	body, _ := json.Marshal(gin.H{
		"mealName":  "Beef Tehari",
		"userEmail": "buyer@example.com",
		"orderId":   primitive.NewObjectID().Hex(),
	})
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCheckoutSessionEndpoint_ProcessorFailure(t *testing.T) {
	router := newPaymentRouter(&fakeGateway{createErr: stderrors.New("stripe is down")}, newStubPaymentRepo(), newStubOrderRepo())

	body, _ := json.Marshal(gin.H{
		"price":     12.5,
		"mealName":  "Beef Tehari",
		"userEmail": "buyer@example.com",
		"orderId":   primitive.NewObjectID().Hex(),
	})
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checkout session failed", resp["error"])
}

func TestPaymentSuccess_MissingSessionID(t *testing.T) {
	router := newPaymentRouter(&fakeGateway{}, newStubPaymentRepo(), newStubOrderRepo())

	req := httptest.NewRequest(http.MethodPatch, "/payment-success", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentSuccess_ConfirmsAndReplays(t *testing.T) {
	orders := newStubOrderRepo()
	order := &models.Order{PaymentStatus: models.PaymentStatusPayment}
	_, err := orders.Create(context.Background(), order)
	require.NoError(t, err)

	gw := &fakeGateway{sessions: map[string]*stripe.CheckoutSession{
		"cs_test_1": {
			ID:            "cs_test_1",
			PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
			PaymentIntent: &stripe.PaymentIntent{ID: "tx_1"},
			AmountTotal:   1250,
			Currency:      stripe.CurrencyUSD,
			CustomerEmail: "buyer@example.com",
			Metadata:      map[string]string{"orderId": order.ID.Hex(), "mealName": "Beef Tehari"},
		},
	}}
	payments := newStubPaymentRepo()
	router := newPaymentRouter(gw, payments, orders)

	req := httptest.NewRequest(http.MethodPatch, "/payment-success?session_id=cs_test_1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Payment *models.Payment `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, 12.5, resp.Payment.Amount)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)

	// Replaying the confirmation reports the existing record.
	req = httptest.NewRequest(http.MethodPatch, "/payment-success?session_id=cs_test_1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "already processed", resp.Message)
	assert.Len(t, payments.byTransaction, 1)
}

func TestGetPayments(t *testing.T) {
	payments := newStubPaymentRepo()
	payments.byTransaction["tx_1"] = &models.Payment{
		TransactionID: "tx_1",
		Amount:        12.5,
		Currency:      "usd",
	}
	router := newPaymentRouter(&fakeGateway{}, payments, newStubOrderRepo())

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "tx_1", resp[0].TransactionID)
}
