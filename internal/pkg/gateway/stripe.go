package gateway

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

type stripeGateway struct {
	client        *stripe.Client
	webhookSecret string
}

func NewStripe(cfg *config.StripeConfig) Gateway {
	return &stripeGateway{
		client:        stripe.NewClient(cfg.SecretKey),
		webhookSecret: cfg.WebhookSecret,
	}
}

func (s *stripeGateway) Name() string {
	return ProviderStripe
}

// zero-decimal currencies are charged in whole units, everything else in cents
var zeroDecimalCurrencies = map[string]bool{"jpy": true, "krw": true, "vnd": true}

func minorUnits(amount float64, currency string) int64 {
	d := decimal.NewFromFloat(amount)
	if !zeroDecimalCurrencies[strings.ToLower(currency)] {
		d = d.Mul(decimal.NewFromInt(100))
	}
	return d.Round(0).IntPart()
}

func (s *stripeGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:       stripe.Int64(minorUnits(req.Amount, req.Currency)),
		Currency:     stripe.String(strings.ToLower(req.Currency)),
		Description:  stripe.String(req.ItemName),
		ReceiptEmail: stripe.String(req.CustomerEmail),
		Metadata: map[string]string{
			"order_id": req.OrderID,
		},
	}

	switch req.Method {
	case MethodCreditCard:
		params.PaymentMethodTypes = stripe.StringSlice([]string{"card"})
	case MethodQris, MethodBankTransfer:
		return ChargeResult{}, errors.BadRequest(fmt.Sprintf("payment method %s is not supported by stripe", req.Method))
	}
	params.SetIdempotencyKey(req.OrderID)

	intent, err := s.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return ChargeResult{}, errors.ExternalError(fmt.Sprintf("error create stripe payment intent: %v", err))
	}

	result := ChargeResult{
		OrderID:     intent.ID,
		PaymentCode: intent.ClientSecret,
		Raw: map[string]interface{}{
			"payment_intent": intent.ID,
			"status":         string(intent.Status),
			"order_id":       req.OrderID,
		},
	}
	if req.ExpiresIn > 0 {
		expiry := time.Now().Add(req.ExpiresIn).UTC()
		result.ExpiryTime = &expiry
	}

	return result, nil
}

func (s *stripeGateway) Status(ctx context.Context, orderID string) (Notification, error) {
	intent, err := s.client.V1PaymentIntents.Retrieve(ctx, orderID, nil)
	if err != nil {
		var stripeErr *stripe.Error
		if stderrors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return Notification{}, errors.NotFound(fmt.Sprintf("stripe payment intent %s not found", orderID))
		}
		return Notification{}, errors.ExternalError(fmt.Sprintf("error retrieve stripe payment intent: %v", err))
	}

	return Notification{
		OrderID: intent.ID,
		Status:  mapIntentStatus(intent.Status),
		Metadata: map[string]interface{}{
			"payment_intent": intent.ID,
			"status":         string(intent.Status),
		},
	}, nil
}

func (s *stripeGateway) Cancel(ctx context.Context, orderID string) error {
	_, err := s.client.V1PaymentIntents.Cancel(ctx, orderID, nil)
	if err != nil {
		return errors.ExternalError(fmt.Sprintf("error cancel stripe payment intent: %v", err))
	}
	return nil
}

func (s *stripeGateway) ParseNotification(body []byte, header http.Header) (Notification, error) {
	event, err := webhook.ConstructEventWithOptions(body, header.Get("Stripe-Signature"), s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return Notification{}, errors.UnauthorizedError(fmt.Sprintf("invalid stripe signature: %v", err))
	}

	var status string
	switch event.Type {
	case "payment_intent.succeeded":
		status = StatusSettled
	case "payment_intent.payment_failed":
		status = StatusFailed
	case "payment_intent.canceled":
		status = StatusExpired
	case "payment_intent.processing", "payment_intent.created", "payment_intent.requires_action":
		status = StatusPending
	default:
		return Notification{}, errors.Inconsistency(fmt.Sprintf("unsupported stripe event %s", event.Type))
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return Notification{}, errors.BadRequest(fmt.Sprintf("error parse payment intent: %v", err))
	}

	return Notification{
		OrderID: intent.ID,
		Status:  status,
		Metadata: map[string]interface{}{
			"event_id":       event.ID,
			"event_type":     string(event.Type),
			"payment_intent": intent.ID,
		},
	}, nil
}

func mapIntentStatus(status stripe.PaymentIntentStatus) string {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusSettled
	case stripe.PaymentIntentStatusCanceled:
		return StatusExpired
	}
	return StatusPending
}
