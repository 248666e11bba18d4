package usecases

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/module/booking/models/request"
	"camera-rental-service/internal/module/booking/models/response"
	"camera-rental-service/internal/module/booking/repositories"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/gateway"
	"camera-rental-service/internal/pkg/helpers"
	"camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/messagestream"
	"camera-rental-service/internal/pkg/metrics"
	"context"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	gateway   gateway.Gateway
	metrics   *metrics.Metrics
	cfg       *config.Config
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, actor request.Actor, payload *request.CreateBooking) (response.Booking, error)
	CancelBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error)
	RefundBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error)
	CompleteBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error)
	GetBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error)
	ShowBookings(ctx context.Context, actor request.Actor) ([]response.Booking, error)
	ListCameraBookings(ctx context.Context, cameraID string) ([]response.Booking, error)
	CheckAvailability(ctx context.Context, payload *request.Availability) (response.Availability, error)
	CreatePayment(ctx context.Context, actor request.Actor, payload *request.CreatePayment) (response.Payment, error)
	GetPayment(ctx context.Context, actor request.Actor, bookingID string) (response.Payment, error)
	HandleNotification(ctx context.Context, provider string, body []byte, header http.Header) (response.Reconciliation, error)
	Reconcile(ctx context.Context, orderID string, status string, metadata map[string]interface{}) (response.Reconciliation, error)
	// scheduler
	SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error
	SweepStalePayments(ctx context.Context) (int, error)
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, gw gateway.Gateway, m *metrics.Metrics, cfg *config.Config) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		gateway:   gw,
		metrics:   m,
		cfg:       cfg,
	}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.BadRequest("invalid " + field)
	}
	return id, nil
}

// publishStatus announces b's current status. Failures are logged, never returned:
// the state change is already committed.
func (u *usecase) publishStatus(ctx context.Context, b entity.Booking) {
	u.metrics.BookingTransitions.WithLabelValues(string(b.Status)).Inc()

	customer, err := u.repo.FindUserByID(ctx, b.UserID)
	if err != nil {
		u.log.Warn(ctx, "error find booking owner for status event", err)
	}
	camera, err := u.repo.FindCameraByID(ctx, b.CameraID)
	if err != nil {
		u.log.Warn(ctx, "error find camera for status event", err)
	}

	event := request.BookingStatusChanged{
		BookingID:  b.ID.String(),
		CameraID:   b.CameraID.String(),
		CameraName: camera.Name,
		UserName:   customer.Name,
		UserEmail:  customer.Email,
		Status:     string(b.Status),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
	}
	if err := messagestream.Publish(u.publisher, messagestream.TopicBookingStatusChanged, event); err != nil {
		u.log.Error(ctx, "error publish booking status changed", err)
	}
}

func (u *usecase) deleteTask(ctx context.Context, p entity.Payment) {
	if !p.TaskID.Valid || p.TaskID.String == "" {
		return
	}
	if err := u.repo.DeleteTaskScheduler(ctx, p.TaskID.String); err != nil {
		u.log.Warn(ctx, "error delete payment status task", err)
	}
}

func toBookingResponse(b entity.Booking, p *entity.Payment) response.Booking {
	resp := response.Booking{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		CameraID:   b.CameraID.String(),
		StartDate:  b.StartDate.UTC().Format(helpers.DateFormat),
		EndDate:    b.EndDate.UTC().Format(helpers.DateFormat),
		Duration:   b.Duration,
		Purpose:    b.Purpose,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
	if p != nil && p.ID != uuid.Nil {
		payment := toPaymentResponse(*p)
		resp.Payment = &payment
	}
	return resp
}

func toPaymentResponse(p entity.Payment) response.Payment {
	resp := response.Payment{
		ID:             p.ID.String(),
		BookingID:      p.BookingID.String(),
		PaymentMethod:  string(p.PaymentMethod),
		Amount:         p.Amount,
		Status:         string(p.Status),
		GatewayOrderID: p.GatewayOrderID.String,
		PaymentCode:    p.PaymentCode.String,
		PaymentURL:     p.PaymentURL.String,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.ExpiryTime.Valid {
		resp.ExpiryTime = p.ExpiryTime.Time.Format(time.RFC3339)
	}
	return resp
}
