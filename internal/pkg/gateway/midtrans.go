package gateway

import (
	"bytes"
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// midtrans reports times in WIB
var midtransLocation = time.FixedZone("WIB", 7*60*60)

const midtransTimeFormat = "2006-01-02 15:04:05"

type midtrans struct {
	cfg        *config.MidtransConfig
	httpClient *circuit.HTTPClient
}

func NewMidtrans(cfg *config.MidtransConfig, httpClient *circuit.HTTPClient) Gateway {
	return &midtrans{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (m *midtrans) Name() string {
	return ProviderMidtrans
}

func grossAmount(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(0).IntPart()
}

func (m *midtrans) chargeBody(req ChargeRequest) map[string]interface{} {
	body := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     req.OrderID,
			"gross_amount": grossAmount(req.Amount),
		},
		"customer_details": map[string]interface{}{
			"first_name": req.CustomerName,
			"email":      req.CustomerEmail,
		},
		"item_details": []map[string]interface{}{
			{
				"id":       req.OrderID,
				"price":    grossAmount(req.Amount),
				"quantity": 1,
				"name":     req.ItemName,
			},
		},
	}

	if req.ExpiresIn > 0 {
		body["custom_expiry"] = map[string]interface{}{
			"expiry_duration": int64(req.ExpiresIn / time.Minute),
			"unit":            "minute",
		}
	}

	switch req.Method {
	case MethodBankTransfer:
		body["payment_type"] = "bank_transfer"
		body["bank_transfer"] = map[string]interface{}{"bank": m.cfg.Bank}
	case MethodQris:
		body["payment_type"] = "qris"
	case MethodCreditCard:
		// card data never reaches this service, snap hosts the form
		body["enabled_payments"] = []string{"credit_card"}
		body["credit_card"] = map[string]interface{}{"secure": true}
		if req.ExpiresIn > 0 {
			delete(body, "custom_expiry")
			body["expiry"] = map[string]interface{}{
				"duration": int64(req.ExpiresIn / time.Minute),
				"unit":     "minute",
			}
		}
	}

	return body
}

func (m *midtrans) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	url := fmt.Sprintf("%s/v2/charge", strings.TrimRight(m.cfg.BaseURL, "/"))
	if req.Method == MethodCreditCard {
		url = m.cfg.SnapURL
	}

	resp, err := m.do(ctx, http.MethodPost, url, m.chargeBody(req))
	if err != nil {
		return ChargeResult{}, err
	}

	result := ChargeResult{
		OrderID: req.OrderID,
		Raw:     toMap(resp),
	}

	if req.Method == MethodCreditCard {
		if !resp.Get("token").Exists() {
			return ChargeResult{}, errors.ExternalError(fmt.Sprintf("midtrans snap rejected: %s", resp.Get("error_messages").String()))
		}
		result.PaymentCode = resp.Get("token").String()
		result.PaymentURL = resp.Get("redirect_url").String()
		if req.ExpiresIn > 0 {
			expiry := time.Now().Add(req.ExpiresIn).UTC()
			result.ExpiryTime = &expiry
		}
		return result, nil
	}

	if code := resp.Get("status_code").String(); code != "200" && code != "201" {
		return ChargeResult{}, errors.ExternalError(fmt.Sprintf("midtrans charge rejected: %s %s", code, resp.Get("status_message").String()))
	}

	switch req.Method {
	case MethodBankTransfer:
		result.PaymentCode = resp.Get("va_numbers.0.va_number").String()
		if result.PaymentCode == "" {
			result.PaymentCode = resp.Get("permata_va_number").String()
		}
	case MethodQris:
		result.PaymentCode = resp.Get("qr_string").String()
		result.PaymentURL = resp.Get(`actions.#(name=="generate-qr-code").url`).String()
	}

	if expiry, ok := parseMidtransTime(resp.Get("expiry_time").String()); ok {
		result.ExpiryTime = &expiry
	}

	return result, nil
}

func (m *midtrans) Status(ctx context.Context, orderID string) (Notification, error) {
	url := fmt.Sprintf("%s/v2/%s/status", strings.TrimRight(m.cfg.BaseURL, "/"), orderID)
	resp, err := m.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Notification{}, err
	}

	if resp.Get("status_code").String() == "404" {
		return Notification{}, errors.NotFound(fmt.Sprintf("midtrans order %s not found", orderID))
	}

	status, err := mapMidtransStatus(resp.Get("transaction_status").String(), resp.Get("fraud_status").String())
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		OrderID:  orderID,
		Status:   status,
		Metadata: toMap(resp),
	}, nil
}

func (m *midtrans) Cancel(ctx context.Context, orderID string) error {
	url := fmt.Sprintf("%s/v2/%s/cancel", strings.TrimRight(m.cfg.BaseURL, "/"), orderID)
	resp, err := m.do(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	switch resp.Get("status_code").String() {
	case "200", "412":
		// 412: already in a final state at midtrans
		return nil
	case "404":
		return errors.NotFound(fmt.Sprintf("midtrans order %s not found", orderID))
	}
	return errors.ExternalError(fmt.Sprintf("midtrans cancel rejected: %s", resp.Get("status_message").String()))
}

func (m *midtrans) ParseNotification(body []byte, header http.Header) (Notification, error) {
	if !gjson.ValidBytes(body) {
		return Notification{}, errors.BadRequest("invalid notification body")
	}

	n := gjson.ParseBytes(body)
	orderID := n.Get("order_id").String()
	if orderID == "" {
		return Notification{}, errors.BadRequest("notification without order_id")
	}

	expected := Signature(orderID, n.Get("status_code").String(), n.Get("gross_amount").String(), m.cfg.ServerKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.Get("signature_key").String())) != 1 {
		return Notification{}, errors.UnauthorizedError("invalid notification signature")
	}

	// the signature is valid, so an unmapped status is acknowledged rather than redelivered
	status, err := mapMidtransStatus(n.Get("transaction_status").String(), n.Get("fraud_status").String())
	if err != nil {
		return Notification{}, errors.Inconsistency(err.Error())
	}

	return Notification{
		OrderID:  orderID,
		Status:   status,
		Metadata: toMap(n),
	}, nil
}

// Signature is sha512(order_id+status_code+gross_amount+server_key) in hex.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func mapMidtransStatus(transactionStatus, fraudStatus string) (string, error) {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return StatusPending, nil
		case "deny":
			return StatusFailed, nil
		}
		return StatusSettled, nil
	case "settlement":
		return StatusSettled, nil
	case "pending", "authorize":
		return StatusPending, nil
	case "expire":
		return StatusExpired, nil
	case "deny", "cancel", "failure":
		return StatusFailed, nil
	}
	return "", errors.BadRequest(fmt.Sprintf("unsupported transaction status %q", transactionStatus))
}

func parseMidtransTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(midtransTimeFormat, s, midtransLocation)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func (m *midtrans) do(ctx context.Context, method, url string, payload interface{}) (gjson.Result, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return gjson.Result{}, errors.InternalServerError(fmt.Sprintf("error marshal midtrans request: %v", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return gjson.Result{}, errors.InternalServerError(fmt.Sprintf("error build midtrans request: %v", err))
	}
	req.SetBasicAuth(m.cfg.ServerKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, errors.ExternalError(fmt.Sprintf("error call midtrans: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.ExternalError(fmt.Sprintf("error read midtrans response: %v", err))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return gjson.Result{}, errors.ExternalError(fmt.Sprintf("midtrans responded %d", resp.StatusCode))
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, errors.ExternalError("midtrans responded with invalid json")
	}

	return gjson.ParseBytes(raw), nil
}

func toMap(r gjson.Result) map[string]interface{} {
	if m, ok := r.Value().(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
