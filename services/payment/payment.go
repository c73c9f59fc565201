// Package payment dispatches booking payments to a gateway handler and
// normalizes every outcome into a single models.PaymentResult contract.
package payment

import (
	"context"
	"fmt"
	"time"

	"motorover/models"

	"go.uber.org/zap"
)

// Handler processes a payment against one concrete gateway.
type Handler func(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error)

// InvalidMethodReason is returned for method tags outside the dispatch table.
const InvalidMethodReason = "Invalid payment method"

// defaultTimeout bounds a single gateway call.
const defaultTimeout = 30 * time.Second

// Adapter routes payment requests by method tag. Unknown tags fail without
// touching any gateway; handler errors and panics are converted to failures.
type Adapter struct {
	logger   *zap.Logger
	handlers map[string]Handler
	timeout  time.Duration
}

// NewAdapter returns an adapter with the stock gateway handlers registered.
func NewAdapter(logger *zap.Logger) *Adapter {
	a := &Adapter{
		logger:   logger,
		handlers: make(map[string]Handler),
		timeout:  defaultTimeout,
	}
	a.Register("stripe", stripeHandler)
	a.Register("razorpay", razorpayHandler)
	a.Register("upi", upiHandler)
	return a
}

// Register adds or replaces the handler for a method tag.
func (a *Adapter) Register(method string, h Handler) {
	a.handlers[method] = h
}

// Pay executes the payment and always returns a normalized result.
func (a *Adapter) Pay(ctx context.Context, req models.PaymentRequest) models.PaymentResult {
	handler, ok := a.handlers[req.Method]
	if !ok {
		a.logger.Warn("payment: unknown method", zap.String("method", req.Method))
		return models.PaymentResult{Success: false, Reason: InvalidMethodReason}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	result, err := a.callHandler(ctx, handler, req)
	if err != nil {
		a.logger.Warn("payment: handler failed",
			zap.String("method", req.Method),
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		return models.PaymentResult{Success: false, Reason: err.Error()}
	}

	a.logger.Info("payment: succeeded",
		zap.String("method", req.Method),
		zap.String("paymentId", result.PaymentID))
	return *result
}

// callHandler shields the adapter from handler panics, converting them into
// ordinary errors so a misbehaving gateway client cannot take down a request.
func (a *Adapter) callHandler(ctx context.Context, handler Handler, req models.PaymentRequest) (result *models.PaymentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("payment handler panic: %v", r)
		}
	}()
	result, err = handler(ctx, req)
	if err == nil && result == nil {
		err = fmt.Errorf("payment handler returned no result")
	}
	return result, err
}
