package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// CheckoutSessionInput carries everything the processor needs for one
// hosted checkout page. The order id rides along as opaque metadata and
// comes back on retrieval.
type CheckoutSessionInput struct {
	AmountCents int64
	Currency    string
	MealName    string
	UserEmail   string
	OrderID     string
	SuccessURL  string
	CancelURL   string
}

// CheckoutGateway abstracts the hosted-checkout operations of the payment
// processor so the reconciliation flow can be tested against a fake.
type CheckoutGateway interface {
	CreateCheckoutSession(in CheckoutSessionInput) (*stripe.CheckoutSession, error)
	RetrieveSession(id string) (*stripe.CheckoutSession, error)
}

type StripeService struct{}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{}
}

func (s *StripeService) CreateCheckoutSession(in CheckoutSessionInput) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(in.UserEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.MealName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.AddMetadata("orderId", in.OrderID)
	params.AddMetadata("mealName", in.MealName)

	return session.New(params)
}

// RetrieveSession fetches the session back from Stripe with the payment
// intent expanded; the session is the source of truth for amount and status.
func (s *StripeService) RetrieveSession(id string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("payment_intent")
	return session.Get(id, params)
}
