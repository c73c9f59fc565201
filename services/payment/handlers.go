package payment

import (
	"context"
	"math"
	"strings"

	"motorover/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// stripeHandler charges a card through Stripe PaymentIntents. The API key is
// set once in main from configuration.
func stripeHandler(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "inr"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	transactionID := pi.ID
	if pi.LatestCharge != nil {
		transactionID = pi.LatestCharge.ID
	}

	return &models.PaymentResult{
		Success:       true,
		PaymentID:     pi.ID,
		TransactionID: transactionID,
	}, nil
}

// razorpayHandler records a Razorpay payment. Gateway integration is pending;
// this returns a simulated approval with gateway-shaped identifiers.
func razorpayHandler(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	return &models.PaymentResult{
		Success:       true,
		PaymentID:     "razorpay-" + uuid.New().String(),
		TransactionID: "pay_" + uuid.New().String(),
	}, nil
}

// upiHandler records a direct UPI transfer. Gateway integration is pending;
// this returns a simulated approval with gateway-shaped identifiers.
func upiHandler(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	return &models.PaymentResult{
		Success:       true,
		PaymentID:     "upi-" + uuid.New().String(),
		TransactionID: "upi_" + uuid.New().String(),
	}, nil
}
