package billing

import (
	"math"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// AmountToCents converts a stored decimal amount to the integer cents Stripe
// expects. Rounds rather than truncates: 19.99 EUR is 1999 cents, not 1998.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// StripeService wraps the handful of Stripe calls the site needs. The
// identifiers it returns are what the repository stores; webhook processing
// happens elsewhere.
type StripeService struct{}

func NewStripeService(apiKey string) *StripeService {
	stripe.Key = apiKey
	return &StripeService{}
}

func (s *StripeService) CreateCustomer(email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}

	c, err := customer.New(params)
	if err != nil {
		return "", err
	}

	return c.ID, nil
}

// CreatePaymentIntent opens a card payment for the given amount in cents and
// returns the intent whose ID gets stored on the payment row.
func (s *StripeService) CreatePaymentIntent(amount int64, currency string, customerID *string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		PaymentMethodTypes: []*string{
			stripe.String("card"),
		},
	}
	if customerID != nil {
		params.Customer = stripe.String(*customerID)
	}

	return paymentintent.New(params)
}
