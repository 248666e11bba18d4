package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	BookingsCreated    prometheus.Counter
	BookingConflicts   prometheus.Counter
	BookingTransitions *prometheus.CounterVec
	PaymentsCreated    *prometheus.CounterVec
	ReconcileOutcomes  *prometheus.CounterVec
	GatewayDuration    *prometheus.HistogramVec
	OtpIssued          prometheus.Counter
	OtpVerifications   *prometheus.CounterVec
	NotificationsSent  *prometheus.CounterVec
	StalePaymentsSwept prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "camera_rental_bookings_created_total",
			Help: "Total number of bookings created",
		}),

		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "camera_rental_booking_conflicts_total",
			Help: "Total number of bookings rejected for overlapping dates",
		}),

		BookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camera_rental_booking_transitions_total",
			Help: "Booking status transitions by target status",
		}, []string{"status"}),

		PaymentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camera_rental_payments_created_total",
			Help: "Payments created by method",
		}, []string{"method"}),

		ReconcileOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camera_rental_reconcile_outcomes_total",
			Help: "Gateway reconciliation outcomes",
		}, []string{"outcome"}),

		GatewayDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "camera_rental_gateway_request_duration_seconds",
			Help:    "Duration of payment gateway calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		OtpIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "camera_rental_otp_issued_total",
			Help: "Total number of OTP codes issued",
		}),

		OtpVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camera_rental_otp_verifications_total",
			Help: "OTP verification results",
		}, []string{"result"}),

		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camera_rental_notifications_sent_total",
			Help: "Emails sent by kind",
		}, []string{"kind"}),

		StalePaymentsSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "camera_rental_stale_payments_swept_total",
			Help: "Pending payments expired by the periodic sweep",
		}),
	}
}

// Handler exposes the default gatherer on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
