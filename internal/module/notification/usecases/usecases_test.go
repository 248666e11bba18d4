package usecases_test

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/notification/models/request"
	"camera-rental-service/internal/module/notification/usecases"
	"camera-rental-service/internal/pkg/errors"
	log_internal "camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/mailer"
	mailermocks "camera-rental-service/internal/pkg/mailer/mocks"
	"camera-rental-service/internal/pkg/metrics"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc         usecases.Usecase
	mailerMock *mailermocks.Mailer
	mt         *metrics.Metrics
	ctx        = context.Background()
)

func setup() {
	mailerMock = &mailermocks.Mailer{}
	mt = metrics.NewMetrics(prometheus.NewRegistry())
	cfg := &config.Config{App: config.AppConfig{Name: "camera-rental-service"}}
	uc = usecases.New(mailerMock, log_internal.New(log_internal.Setup()), mt, cfg)
}

func TestSendOtp(t *testing.T) {
	setup()

	expires := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	mailerMock.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
		return m.To == "rina@example.com" && strings.Contains(m.Body, "482913") && strings.Contains(m.Body, "2026-03-01 10:05")
	})).Return(nil).Once()

	err := uc.SendOtp(ctx, &request.OtpIssued{Name: "Rina", Email: "rina@example.com", Code: "482913", ExpiresAt: expires})

	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(mt.NotificationsSent.WithLabelValues("otp")))
	mailerMock.AssertExpectations(t)
}

func TestSendBookingStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	payload := request.BookingStatusChanged{
		BookingID:  "b-1",
		CameraName: "X-T5",
		UserName:   "Rina",
		UserEmail:  "rina@example.com",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		TotalPrice: 300000,
	}

	t.Run("paid", func(t *testing.T) {
		setup()
		p := payload
		p.Status = "PAID"
		mailerMock.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
			return m.Subject == "Payment received, your booking is confirmed" &&
				strings.Contains(m.Body, "2026-03-01 to 2026-03-02") &&
				strings.Contains(m.Body, "300000.00")
		})).Return(nil).Once()

		assert.NoError(t, uc.SendBookingStatus(ctx, &p))
		assert.Equal(t, float64(1), testutil.ToFloat64(mt.NotificationsSent.WithLabelValues("booking_status")))
	})

	t.Run("unknown status is skipped", func(t *testing.T) {
		setup()
		p := payload
		p.Status = "REFUNDED"

		assert.NoError(t, uc.SendBookingStatus(ctx, &p))
		mailerMock.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("smtp down", func(t *testing.T) {
		setup()
		p := payload
		p.Status = "CANCELLED"
		mailerMock.On("Send", mock.Anything, mock.Anything).Return(errors.ExternalError("error send mail: dial tcp")).Once()

		err := uc.SendBookingStatus(ctx, &p)

		assert.True(t, errors.IsRetryable(err))
		assert.Equal(t, float64(0), testutil.ToFloat64(mt.NotificationsSent.WithLabelValues("booking_status")))
	})
}
