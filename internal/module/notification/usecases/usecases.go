package usecases

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/notification/models/request"
	"camera-rental-service/internal/pkg/helpers"
	"camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/mailer"
	"camera-rental-service/internal/pkg/metrics"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

const (
	kindOtp           = "otp"
	kindBookingStatus = "booking_status"
)

var statusSubjects = map[string]string{
	"PENDING":   "Booking received, waiting for payment",
	"PAID":      "Payment received, your booking is confirmed",
	"CANCELLED": "Your booking was cancelled",
	"COMPLETED": "Rental completed, thank you",
}

type usecase struct {
	mailer  mailer.Mailer
	log     log.Logger
	metrics *metrics.Metrics
	cfg     *config.Config
}

type Usecase interface {
	SendOtp(ctx context.Context, payload *request.OtpIssued) error
	SendBookingStatus(ctx context.Context, payload *request.BookingStatusChanged) error
}

func New(m mailer.Mailer, log log.Logger, mt *metrics.Metrics, cfg *config.Config) Usecase {
	return &usecase{
		mailer:  m,
		log:     log,
		metrics: mt,
		cfg:     cfg,
	}
}

func greeting(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", name)
}

func (u *usecase) SendOtp(ctx context.Context, payload *request.OtpIssued) error {
	span, ctx := apm.StartSpan(ctx, "SendOtp", "usecase")
	defer span.End()

	body := fmt.Sprintf("%s\n\nYour %s verification code is %s.\nIt expires at %s UTC. Do not share it with anyone.\n",
		greeting(payload.Name), u.cfg.App.Name, payload.Code, payload.ExpiresAt.UTC().Format("2006-01-02 15:04"))

	err := u.mailer.Send(ctx, mailer.Message{
		To:      payload.Email,
		Subject: "Your verification code",
		Body:    body,
	})
	if err != nil {
		u.log.Error(ctx, "error send otp email", err)
		return err
	}

	u.metrics.NotificationsSent.WithLabelValues(kindOtp).Inc()
	return nil
}

func (u *usecase) SendBookingStatus(ctx context.Context, payload *request.BookingStatusChanged) error {
	span, ctx := apm.StartSpan(ctx, "SendBookingStatus", "usecase")
	defer span.End()

	subject, ok := statusSubjects[payload.Status]
	if !ok {
		u.log.Warn(ctx, "skip notification for unknown booking status "+payload.Status)
		return nil
	}

	camera := payload.CameraName
	if camera == "" {
		camera = payload.CameraID
	}
	body := fmt.Sprintf("%s\n\nBooking %s for %s (%s to %s) is now %s.\nTotal: %s\n",
		greeting(payload.UserName),
		payload.BookingID,
		camera,
		payload.StartDate.UTC().Format(helpers.DateFormat),
		payload.EndDate.UTC().Add(-time.Nanosecond).Format(helpers.DateFormat),
		payload.Status,
		decimal.NewFromFloat(payload.TotalPrice).StringFixed(2),
	)

	err := u.mailer.Send(ctx, mailer.Message{
		To:      payload.UserEmail,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		u.log.Error(ctx, "error send booking status email", err)
		return err
	}

	u.metrics.NotificationsSent.WithLabelValues(kindBookingStatus).Inc()
	return nil
}
