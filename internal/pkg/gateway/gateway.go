package gateway

import (
	"camera-rental-service/config"
	"context"
	"fmt"
	"net/http"
	"time"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	ProviderMidtrans = "midtrans"
	ProviderStripe   = "stripe"

	MethodBankTransfer = "BANK_TRANSFER"
	MethodQris         = "QRIS"
	MethodCreditCard   = "CREDIT_CARD"

	StatusPending = "PENDING"
	StatusSettled = "SETTLED"
	StatusExpired = "EXPIRED"
	StatusFailed  = "FAILED"
)

type ChargeRequest struct {
	OrderID       string
	Amount        float64
	Currency      string
	Method        string
	CustomerName  string
	CustomerEmail string
	ItemName      string
	ExpiresIn     time.Duration
}

type ChargeResult struct {
	OrderID     string
	PaymentCode string
	PaymentURL  string
	ExpiryTime  *time.Time
	Raw         map[string]interface{}
}

// Notification is a gateway status report already mapped to payment statuses.
type Notification struct {
	OrderID  string
	Status   string
	Metadata map[string]interface{}
}

type Gateway interface {
	Name() string
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	Status(ctx context.Context, orderID string) (Notification, error)
	Cancel(ctx context.Context, orderID string) error
	// ParseNotification verifies and decodes an inbound webhook body.
	ParseNotification(body []byte, header http.Header) (Notification, error)
}

func New(cfg *config.GatewayConfig, httpClient *circuit.HTTPClient) (Gateway, error) {
	switch cfg.Provider {
	case ProviderMidtrans:
		return NewMidtrans(&cfg.Midtrans, httpClient), nil
	case ProviderStripe:
		return NewStripe(&cfg.Stripe), nil
	}
	return nil, fmt.Errorf("unknown payment gateway %q", cfg.Provider)
}
