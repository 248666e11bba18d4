package usecases

import (
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/module/booking/models/request"
	"camera-rental-service/internal/module/booking/models/response"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/gateway"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.elastic.co/apm"
)

const (
	OutcomeApplied      = "applied"
	OutcomeNoop         = "noop"
	OutcomeNotFound     = "not_found"
	OutcomeInconsistent = "inconsistent"
	OutcomeFailed       = "failed"

	orderIDPrefix = "CR-"
)

type transition struct {
	payment bool
	booking bool
}

// applyPaymentStatus moves p to next and derives the booking status from it.
// It never touches a terminal payment.
func applyPaymentStatus(b *entity.Booking, p *entity.Payment, next entity.PaymentStatus) (transition, error) {
	if p.Status == next {
		return transition{}, nil
	}
	if p.Status.IsTerminal() {
		return transition{}, errors.Inconsistency(fmt.Sprintf("payment is already %s, refusing %s", p.Status, next))
	}

	switch next {
	case entity.PaymentSettled:
		if b.Status == entity.BookingCancelled {
			return transition{}, errors.Inconsistency("payment settled for a cancelled booking")
		}
		p.Status = next
		if b.Status == entity.BookingPending {
			b.Status = entity.BookingPaid
			return transition{payment: true, booking: true}, nil
		}
		return transition{payment: true}, nil

	case entity.PaymentExpired, entity.PaymentFailed:
		p.Status = next
		if b.Status.IsTerminal() {
			return transition{payment: true}, nil
		}
		b.Status = entity.BookingCancelled
		return transition{payment: true, booking: true}, nil
	}

	return transition{}, errors.BadRequest(fmt.Sprintf("unsupported payment status %q", next))
}

func (u *usecase) CreatePayment(ctx context.Context, actor request.Actor, payload *request.CreatePayment) (response.Payment, error) {
	span, ctx := apm.StartSpan(ctx, "CreatePayment", "usecase")
	defer span.End()

	bookingID, err := parseID(payload.BookingID, "booking id")
	if err != nil {
		return response.Payment{}, err
	}
	method := entity.PaymentMethod(payload.PaymentMethod)
	if !method.IsValid() {
		return response.Payment{}, errors.BadRequest("unsupported payment method")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Payment{}, err
	}
	if booking.ID == uuid.Nil {
		return response.Payment{}, errors.NotFound("booking not found")
	}
	if !actor.CanAccess(booking.UserID) {
		return response.Payment{}, errors.Forbidden("you are not allowed to pay for this booking")
	}
	if booking.Status != entity.BookingPending {
		return response.Payment{}, errors.Conflict("booking is not awaiting payment")
	}

	existing, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return response.Payment{}, err
	}
	if existing.ID != uuid.Nil {
		return response.Payment{}, errors.Conflict("payment already exists for booking")
	}

	customer, err := u.repo.FindUserByID(ctx, booking.UserID)
	if err != nil {
		return response.Payment{}, err
	}
	camera, err := u.repo.FindCameraByID(ctx, booking.CameraID)
	if err != nil {
		return response.Payment{}, err
	}
	itemName := camera.Name
	if itemName == "" {
		itemName = "Camera rental"
	}

	now := time.Now().UTC()
	orderID := orderIDPrefix + uuid.NewString()
	payment := entity.Payment{
		ID:              uuid.New(),
		BookingID:       bookingID,
		PaymentMethod:   method,
		Amount:          booking.TotalPrice,
		Status:          entity.PaymentPending,
		GatewayOrderID:  sql.NullString{String: orderID, Valid: true},
		GatewayMetadata: entity.Metadata{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// the booking row stays locked across the charge so cancel and reconcile wait for it;
	// the charge is bounded by the breaker client timeout
	var charged string
	payment, err = u.repo.CreatePaymentTx(ctx, payment, func(b entity.Booking, p *entity.Payment) error {
		if b.Status != entity.BookingPending {
			return errors.Conflict("booking is not awaiting payment")
		}

		result, err := u.charge(ctx, gateway.ChargeRequest{
			OrderID:       orderID,
			Amount:        b.TotalPrice,
			Currency:      u.cfg.Gateway.Currency,
			Method:        string(method),
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			ItemName:      fmt.Sprintf("%s (%d days)", itemName, b.Duration),
			ExpiresIn:     u.cfg.Gateway.PaymentTTL,
		})
		if err != nil {
			return err
		}

		if result.OrderID != "" {
			p.GatewayOrderID = sql.NullString{String: result.OrderID, Valid: true}
		}
		charged = p.GatewayOrderID.String
		p.PaymentCode = nullString(result.PaymentCode)
		p.PaymentURL = nullString(result.PaymentURL)

		expiry := now.Add(u.cfg.Gateway.PaymentTTL)
		if result.ExpiryTime != nil {
			expiry = *result.ExpiryTime
		}
		p.ExpiryTime = sql.NullTime{Time: expiry.UTC(), Valid: true}

		p.GatewayMetadata = entity.Metadata{}
		for k, v := range result.Raw {
			p.GatewayMetadata[k] = v
		}
		return nil
	})
	if err != nil {
		u.log.Error(ctx, "error create payment", err)
		if charged != "" {
			// no local row references the order, so void it at the gateway
			if cerr := u.gateway.Cancel(ctx, charged); cerr != nil {
				u.log.Warn(ctx, fmt.Sprintf("error cancel orphaned gateway order %s", charged), cerr)
			}
		}
		return response.Payment{}, err
	}
	u.metrics.PaymentsCreated.WithLabelValues(string(method)).Inc()

	payment = u.scheduleStatusCheck(ctx, payment)

	return toPaymentResponse(payment), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (u *usecase) charge(ctx context.Context, req gateway.ChargeRequest) (gateway.ChargeResult, error) {
	timer := prometheus.NewTimer(u.metrics.GatewayDuration.WithLabelValues("charge"))
	defer timer.ObserveDuration()

	result, err := u.gateway.Charge(ctx, req)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error charge order %s", req.OrderID), err)
		switch errors.KindOf(err) {
		case errors.KindExternal, errors.KindValidation:
			return gateway.ChargeResult{}, err
		}
		return gateway.ChargeResult{}, errors.ExternalError("payment gateway unavailable")
	}
	return result, nil
}

// scheduleStatusCheck enqueues the gateway poll for after the payment window.
// Webhooks stay the primary path, so failures here are only logged.
func (u *usecase) scheduleStatusCheck(ctx context.Context, payment entity.Payment) entity.Payment {
	if !payment.ExpiryTime.Valid {
		return payment
	}

	payload, err := json.Marshal(request.PaymentExpiration{
		BookingID: payment.BookingID.String(),
		OrderID:   payment.GatewayOrderID.String,
	})
	if err != nil {
		u.log.Error(ctx, "error marshal payment expiration payload", err)
		return payment
	}

	taskID, err := u.repo.SetTaskScheduler(ctx, payment.ExpiryTime.Time.Add(u.cfg.Gateway.ExpiryGrace), payload)
	if err != nil {
		u.log.Warn(ctx, "error schedule payment status check", err)
		return payment
	}
	if err := u.repo.SetPaymentTaskID(ctx, payment.ID, taskID); err != nil {
		u.log.Warn(ctx, "error save payment task id", err)
		return payment
	}

	payment.TaskID = sql.NullString{String: taskID, Valid: true}
	return payment
}

func (u *usecase) GetPayment(ctx context.Context, actor request.Actor, bookingID string) (response.Payment, error) {
	id, err := parseID(bookingID, "booking id")
	if err != nil {
		return response.Payment{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Payment{}, err
	}
	if booking.ID == uuid.Nil {
		return response.Payment{}, errors.NotFound("booking not found")
	}
	if !actor.CanAccess(booking.UserID) {
		return response.Payment{}, errors.Forbidden("you are not allowed to access this payment")
	}

	payment, err := u.repo.FindPaymentByBookingID(ctx, id)
	if err != nil {
		return response.Payment{}, err
	}
	if payment.ID == uuid.Nil {
		return response.Payment{}, errors.NotFound("payment not found")
	}

	return toPaymentResponse(payment), nil
}

func (u *usecase) HandleNotification(ctx context.Context, provider string, body []byte, header http.Header) (response.Reconciliation, error) {
	span, ctx := apm.StartSpan(ctx, "HandleNotification", "usecase")
	defer span.End()

	if !strings.EqualFold(provider, u.gateway.Name()) {
		return response.Reconciliation{}, errors.BadRequest(fmt.Sprintf("unsupported payment provider %q", provider))
	}

	notification, err := u.gateway.ParseNotification(body, header)
	if err != nil {
		u.log.Warn(ctx, "error parse payment notification", err)
		return response.Reconciliation{}, err
	}

	return u.Reconcile(ctx, notification.OrderID, notification.Status, notification.Metadata)
}

func (u *usecase) Reconcile(ctx context.Context, orderID string, status string, metadata map[string]interface{}) (response.Reconciliation, error) {
	span, ctx := apm.StartSpan(ctx, "Reconcile", "usecase")
	defer span.End()

	next := entity.PaymentStatus(strings.ToUpper(status))
	if orderID == "" || !next.IsValid() {
		return response.Reconciliation{OrderID: orderID}, errors.BadRequest("invalid payment notification")
	}

	return u.reconcile(ctx, orderID, next, metadata, true)
}

func (u *usecase) reconcile(ctx context.Context, orderID string, next entity.PaymentStatus, metadata map[string]interface{}, dropTask bool) (response.Reconciliation, error) {
	var t transition
	booking, payment, err := u.repo.ReconcilePaymentTx(ctx, orderID, func(b *entity.Booking, p *entity.Payment) error {
		var aerr error
		t, aerr = applyPaymentStatus(b, p, next)
		if aerr != nil || !t.payment {
			return aerr
		}
		if p.GatewayMetadata == nil {
			p.GatewayMetadata = entity.Metadata{}
		}
		for k, v := range metadata {
			p.GatewayMetadata[k] = v
		}
		return nil
	})
	if err != nil {
		outcome := OutcomeFailed
		switch errors.KindOf(err) {
		case errors.KindNotFound:
			outcome = OutcomeNotFound
		case errors.KindInconsistency:
			outcome = OutcomeInconsistent
		}
		u.metrics.ReconcileOutcomes.WithLabelValues(outcome).Inc()
		u.log.Warn(ctx, fmt.Sprintf("reconcile order %s to %s: %s", orderID, next, outcome), err)
		return response.Reconciliation{OrderID: orderID, Outcome: outcome}, err
	}

	return response.Reconciliation{OrderID: orderID, Outcome: u.afterTransition(ctx, booking, payment, t, dropTask)}, nil
}

func (u *usecase) afterTransition(ctx context.Context, b entity.Booking, p entity.Payment, t transition, dropTask bool) string {
	if !t.payment {
		u.metrics.ReconcileOutcomes.WithLabelValues(OutcomeNoop).Inc()
		return OutcomeNoop
	}

	u.metrics.ReconcileOutcomes.WithLabelValues(OutcomeApplied).Inc()
	if dropTask {
		u.deleteTask(ctx, p)
	}
	if t.booking {
		u.publishStatus(ctx, b)
	}
	return OutcomeApplied
}

// SetPaymentExpired runs after the payment window: it asks the gateway for the final
// status and expires the payment when the gateway still reports it pending.
func (u *usecase) SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error {
	span, ctx := apm.StartSpan(ctx, "SetPaymentExpired", "usecase")
	defer span.End()

	bookingID, err := parseID(payload.BookingID, "booking id")
	if err != nil {
		return err
	}

	payment, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	if payment.ID == uuid.Nil || payment.Status.IsTerminal() {
		return nil
	}

	orderID := payment.GatewayOrderID.String
	now := time.Now().UTC()

	next := entity.PaymentExpired
	metadata := map[string]interface{}{}
	notification, err := u.status(ctx, orderID)
	switch {
	case err != nil && !payment.IsStale(now):
		// asynq retries with backoff
		return err
	case err != nil:
		u.log.Warn(ctx, fmt.Sprintf("error fetch status of order %s, expiring it", orderID), err)
	case notification.Status != string(entity.PaymentPending):
		next = entity.PaymentStatus(notification.Status)
		metadata = notification.Metadata
	case !payment.IsStale(now):
		return nil
	}

	_, err = u.reconcile(ctx, orderID, next, metadata, false)
	if errors.Is(err, errors.KindNotFound) || errors.Is(err, errors.KindInconsistency) {
		return nil
	}
	return err
}

func (u *usecase) status(ctx context.Context, orderID string) (gateway.Notification, error) {
	timer := prometheus.NewTimer(u.metrics.GatewayDuration.WithLabelValues("status"))
	defer timer.ObserveDuration()

	return u.gateway.Status(ctx, orderID)
}

// SweepStalePayments expires PENDING payments whose window passed without a callback.
func (u *usecase) SweepStalePayments(ctx context.Context) (int, error) {
	span, ctx := apm.StartSpan(ctx, "SweepStalePayments", "usecase")
	defer span.End()

	now := time.Now().UTC()
	payments, err := u.repo.FindStalePendingPayments(ctx, now, u.cfg.Booking.SweepLimit)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, stale := range payments {
		var t transition
		booking, payment, err := u.repo.UpdateBookingTx(ctx, stale.BookingID, func(b *entity.Booking, p *entity.Payment) error {
			// settled between the select and the lock
			if !p.IsStale(now) {
				return nil
			}
			var aerr error
			t, aerr = applyPaymentStatus(b, p, entity.PaymentExpired)
			return aerr
		})
		if err != nil {
			u.log.Error(ctx, fmt.Sprintf("error expire payment %s", stale.ID), err)
			continue
		}
		if u.afterTransition(ctx, booking, payment, t, true) == OutcomeApplied {
			swept++
		}
	}

	u.metrics.StalePaymentsSwept.Add(float64(swept))
	return swept, nil
}
