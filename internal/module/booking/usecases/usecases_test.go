package usecases_test

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/booking/mocks"
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/module/booking/models/request"
	"camera-rental-service/internal/module/booking/usecases"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/gateway"
	gwmocks "camera-rental-service/internal/pkg/gateway/mocks"
	"camera-rental-service/internal/pkg/helpers"
	log_internal "camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/messagestream"
	"camera-rental-service/internal/pkg/metrics"
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc        usecases.Usecase
	repo      *memoryRepo
	gwMock    *gwmocks.Gateway
	publisher *capturePublisher
	cfgTest   *config.Config
	ctx       = context.Background()
)

func setup() {
	repo = newMemoryRepo()
	gwMock = new(gwmocks.Gateway)
	gwMock.On("Name").Return(gateway.ProviderMidtrans).Maybe()
	publisher = newCapturePublisher()
	cfgTest = &config.Config{
		Gateway: config.GatewayConfig{Provider: gateway.ProviderMidtrans, PaymentTTL: 24 * time.Hour, ExpiryGrace: 5 * time.Minute, Currency: "IDR"},
		Booking: config.BookingConfig{HoldTTL: 30 * time.Minute, LockTTL: time.Second, SweepLimit: 100},
	}
	uc = usecases.New(repo, log_internal.New(log_internal.Setup()), publisher, gwMock, metrics.NewMetrics(prometheus.NewRegistry()), cfgTest)
}

func teardown() {
	uc = nil
	repo = nil
	gwMock = nil
	publisher = nil
}

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(helpers.DateFormat)
}

func actorOf(c entity.Customer) request.Actor {
	return request.Actor{UserID: c.ID, Email: c.Email, Role: c.Role}
}

// chargeOK echoes the merchant order id like the midtrans core api does.
func chargeOK(code string) func(context.Context, gateway.ChargeRequest) (gateway.ChargeResult, error) {
	return func(_ context.Context, req gateway.ChargeRequest) (gateway.ChargeResult, error) {
		exp := time.Now().Add(req.ExpiresIn).UTC()
		return gateway.ChargeResult{
			OrderID:     req.OrderID,
			PaymentCode: code,
			ExpiryTime:  &exp,
			Raw:         map[string]interface{}{"transaction_status": "pending"},
		}, nil
	}
}

func TestBookingLifecycle(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Sony A7 III", "100000", true)
	user := repo.addUser("Rina", "rina@example.com", "USER")
	actor := actorOf(user)

	t.Run("create booking prices by days", func(t *testing.T) {
		resp, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 3, Purpose: "wedding"})

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, float64(300000), resp.TotalPrice)
		assert.Equal(t, day(1), resp.StartDate)
		assert.Equal(t, day(4), resp.EndDate)
		assert.Equal(t, 1, publisher.count(messagestream.TopicBookingStatusChanged))
	})

	bookings, err := uc.ShowBookings(ctx, actor)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	bookingID := bookings[0].ID

	var orderID string
	t.Run("create payment", func(t *testing.T) {
		gwMock.On("Charge", mock.Anything, mock.MatchedBy(func(req gateway.ChargeRequest) bool {
			return req.Amount == 300000 && req.Method == gateway.MethodBankTransfer && req.CustomerEmail == "rina@example.com"
		})).Return(chargeOK("8808123456")).Once()

		resp, err := uc.CreatePayment(ctx, actor, &request.CreatePayment{BookingID: bookingID, PaymentMethod: "BANK_TRANSFER"})

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, float64(300000), resp.Amount)
		assert.Equal(t, "8808123456", resp.PaymentCode)
		assert.Contains(t, resp.GatewayOrderID, "CR-")
		assert.NotEmpty(t, resp.ExpiryTime)
		orderID = resp.GatewayOrderID

		stored := repo.payment(uuid.MustParse(bookingID))
		assert.True(t, stored.TaskID.Valid)
	})

	t.Run("second payment is a conflict", func(t *testing.T) {
		_, err := uc.CreatePayment(ctx, actor, &request.CreatePayment{BookingID: bookingID, PaymentMethod: "QRIS"})

		assert.True(t, errors.Is(err, errors.KindConflict))
	})

	t.Run("settlement marks the booking paid", func(t *testing.T) {
		resp, err := uc.Reconcile(ctx, orderID, "SETTLED", map[string]interface{}{"transaction_status": "settlement"})

		require.NoError(t, err)
		assert.Equal(t, usecases.OutcomeApplied, resp.Outcome)
		assert.Equal(t, entity.BookingPaid, repo.booking(uuid.MustParse(bookingID)).Status)
		assert.Equal(t, entity.PaymentSettled, repo.payment(uuid.MustParse(bookingID)).Status)
		assert.Len(t, repo.deleted, 1)
	})

	t.Run("duplicate settlement is a noop", func(t *testing.T) {
		before := repo.booking(uuid.MustParse(bookingID))
		events := publisher.count(messagestream.TopicBookingStatusChanged)

		resp, err := uc.Reconcile(ctx, orderID, "SETTLED", nil)

		require.NoError(t, err)
		assert.Equal(t, usecases.OutcomeNoop, resp.Outcome)
		assert.Equal(t, before, repo.booking(uuid.MustParse(bookingID)))
		assert.Equal(t, events, publisher.count(messagestream.TopicBookingStatusChanged))
	})

	t.Run("expiry after settlement is an inconsistency", func(t *testing.T) {
		_, err := uc.Reconcile(ctx, orderID, "EXPIRED", nil)

		assert.True(t, errors.Is(err, errors.KindInconsistency))
		assert.Equal(t, entity.BookingPaid, repo.booking(uuid.MustParse(bookingID)).Status)
		assert.Equal(t, entity.PaymentSettled, repo.payment(uuid.MustParse(bookingID)).Status)
	})

	t.Run("paid booking cannot be cancelled by the owner", func(t *testing.T) {
		_, err := uc.CancelBooking(ctx, actor, bookingID)

		assert.Equal(t, errors.Conflict("paid booking requires refund"), err)
	})

	t.Run("complete requires admin", func(t *testing.T) {
		_, err := uc.CompleteBooking(ctx, actor, bookingID)

		assert.True(t, errors.Is(err, errors.KindForbidden))
	})

	t.Run("admin completes a paid booking", func(t *testing.T) {
		admin := actorOf(repo.addUser("Admin", "admin@example.com", "ADMIN"))

		resp, err := uc.CompleteBooking(ctx, admin, bookingID)
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Status)

		_, err = uc.RefundBooking(ctx, admin, bookingID)
		assert.True(t, errors.Is(err, errors.KindConflict))
	})

	t.Run("unknown order id", func(t *testing.T) {
		resp, err := uc.Reconcile(ctx, "CR-unknown", "SETTLED", nil)

		assert.True(t, errors.Is(err, errors.KindNotFound))
		assert.Equal(t, usecases.OutcomeNotFound, resp.Outcome)
	})
}

func TestCreateBookingOverlap(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Fujifilm X-T4", "150000", true)
	other := repo.addCamera("Fujifilm X-T5", "200000", true)
	actor := actorOf(repo.addUser("Budi", "budi@example.com", "USER"))

	_, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(2), Duration: 3})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		cameraID uuid.UUID
		date     string
		duration int
		conflict bool
	}{
		{"same range", camera.ID, day(2), 3, true},
		{"starts inside", camera.ID, day(4), 2, true},
		{"ends inside", camera.ID, day(1), 2, true},
		{"covers", camera.ID, day(1), 10, true},
		{"back to back after", camera.ID, day(5), 1, false},
		{"back to back before", camera.ID, day(1), 1, false},
		{"other camera same dates", other.ID, day(2), 3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: tc.cameraID.String(), Date: tc.date, Duration: tc.duration})
			if tc.conflict {
				assert.Equal(t, errors.Conflict("camera unavailable for requested dates"), err)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("availability follows the same rule", func(t *testing.T) {
		resp, err := uc.CheckAvailability(ctx, &request.Availability{CameraID: camera.ID.String(), Date: day(3), Duration: 1})
		require.NoError(t, err)
		assert.False(t, resp.Available)

		resp, err = uc.CheckAvailability(ctx, &request.Availability{CameraID: camera.ID.String(), Date: day(20), Duration: 1})
		require.NoError(t, err)
		assert.True(t, resp.Available)
	})
}

func TestCreateBookingValidation(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Canon R6", "100000", true)
	hidden := repo.addCamera("Canon R5", "100000", false)
	broken := repo.addCamera("Canon R8", "call us", true)
	actor := actorOf(repo.addUser("Sari", "sari@example.com", "USER"))

	testCases := []struct {
		name    string
		payload request.CreateBooking
		kind    errors.Kind
	}{
		{"zero duration", request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 0}, errors.KindValidation},
		{"past date", request.CreateBooking{CameraID: camera.ID.String(), Date: day(-1), Duration: 1}, errors.KindValidation},
		{"bad date", request.CreateBooking{CameraID: camera.ID.String(), Date: "tomorrow", Duration: 1}, errors.KindValidation},
		{"bad camera id", request.CreateBooking{CameraID: "x", Date: day(1), Duration: 1}, errors.KindValidation},
		{"unknown camera", request.CreateBooking{CameraID: uuid.NewString(), Date: day(1), Duration: 1}, errors.KindNotFound},
		{"unavailable camera", request.CreateBooking{CameraID: hidden.ID.String(), Date: day(1), Duration: 1}, errors.KindValidation},
		{"non numeric price", request.CreateBooking{CameraID: broken.ID.String(), Date: day(1), Duration: 1}, errors.KindValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateBooking(ctx, actor, &tc.payload)
			assert.Equal(t, tc.kind, errors.KindOf(err))
		})
	}

	t.Run("today is allowed", func(t *testing.T) {
		_, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(0), Duration: 1})
		assert.NoError(t, err)
	})
}

func TestExpiredPaymentFreesTheRange(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Nikon Z6", "120000", true)
	actor := actorOf(repo.addUser("Dewi", "dewi@example.com", "USER"))

	first, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(3), Duration: 2})
	require.NoError(t, err)

	gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
	payment, err := uc.CreatePayment(ctx, actor, &request.CreatePayment{BookingID: first.ID, PaymentMethod: "QRIS"})
	require.NoError(t, err)

	_, err = uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(3), Duration: 2})
	require.Equal(t, errors.Conflict("camera unavailable for requested dates"), err)

	resp, err := uc.Reconcile(ctx, payment.GatewayOrderID, "EXPIRED", nil)
	require.NoError(t, err)
	assert.Equal(t, usecases.OutcomeApplied, resp.Outcome)
	assert.Equal(t, entity.BookingCancelled, repo.booking(uuid.MustParse(first.ID)).Status)

	_, err = uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(3), Duration: 2})
	assert.NoError(t, err)
}

func TestStaleHoldIsReleasedOnNextBooking(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Leica Q2", "500000", true)
	actor := actorOf(repo.addUser("Tono", "tono@example.com", "USER"))

	first, err := uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(5), Duration: 1})
	require.NoError(t, err)

	gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
	_, err = uc.CreatePayment(ctx, actor, &request.CreatePayment{BookingID: first.ID, PaymentMethod: "BANK_TRANSFER"})
	require.NoError(t, err)

	// gateway window passed without a callback
	p := repo.payment(uuid.MustParse(first.ID))
	p.ExpiryTime = sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true}
	repo.setPayment(p)

	_, err = uc.CreateBooking(ctx, actor, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(5), Duration: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, repo.booking(uuid.MustParse(first.ID)).Status)
	assert.Equal(t, entity.PaymentExpired, repo.payment(uuid.MustParse(first.ID)).Status)
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Sony ZV-E10", "80000", true)
	owner := actorOf(repo.addUser("Ayu", "ayu@example.com", "USER"))
	stranger := actorOf(repo.addUser("Eko", "eko@example.com", "USER"))

	booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 2})
	require.NoError(t, err)

	gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("8808")).Once()
	payment, err := uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "BANK_TRANSFER"})
	require.NoError(t, err)

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := uc.CancelBooking(ctx, stranger, booking.ID)
		assert.True(t, errors.Is(err, errors.KindForbidden))
	})

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		gwMock.On("Cancel", mock.Anything, payment.GatewayOrderID).Return(nil).Once()

		resp, err := uc.CancelBooking(ctx, owner, booking.ID)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.Equal(t, entity.PaymentFailed, repo.payment(uuid.MustParse(booking.ID)).Status)
		gwMock.AssertCalled(t, "Cancel", mock.Anything, payment.GatewayOrderID)
	})

	t.Run("second cancel is a noop", func(t *testing.T) {
		before := repo.booking(uuid.MustParse(booking.ID))
		events := publisher.count(messagestream.TopicBookingStatusChanged)

		resp, err := uc.CancelBooking(ctx, owner, booking.ID)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.Equal(t, before.UpdatedAt, repo.booking(uuid.MustParse(booking.ID)).UpdatedAt)
		assert.Equal(t, events, publisher.count(messagestream.TopicBookingStatusChanged))
	})

	t.Run("late settlement is an inconsistency", func(t *testing.T) {
		_, err := uc.Reconcile(ctx, payment.GatewayOrderID, "SETTLED", nil)

		assert.True(t, errors.Is(err, errors.KindInconsistency))
		assert.Equal(t, entity.BookingCancelled, repo.booking(uuid.MustParse(booking.ID)).Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := uc.CancelBooking(ctx, owner, uuid.NewString())
		assert.True(t, errors.Is(err, errors.KindNotFound))
	})
}

func TestRefundBooking(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("GoPro 12", "50000", true)
	owner := actorOf(repo.addUser("Lia", "lia@example.com", "USER"))
	admin := actorOf(repo.addUser("Admin", "root@example.com", "ADMIN"))

	booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 1})
	require.NoError(t, err)

	_, err = uc.RefundBooking(ctx, admin, booking.ID)
	assert.Equal(t, errors.Conflict("only paid bookings can be refunded"), err)

	gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
	payment, err := uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "CREDIT_CARD"})
	require.NoError(t, err)
	_, err = uc.Reconcile(ctx, payment.GatewayOrderID, "SETTLED", nil)
	require.NoError(t, err)

	resp, err := uc.RefundBooking(ctx, admin, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, "SETTLED", resp.Payment.Status)

	resp, err = uc.RefundBooking(ctx, admin, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestCreatePaymentGatewayFailure(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("DJI Pocket 3", "90000", true)
	owner := actorOf(repo.addUser("Rudi", "rudi@example.com", "USER"))
	booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 1})
	require.NoError(t, err)

	gwMock.On("Charge", mock.Anything, mock.Anything).Return(gateway.ChargeResult{}, errors.ExternalError("midtrans responded 503")).Once()

	_, err = uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "BANK_TRANSFER"})

	assert.True(t, errors.Is(err, errors.KindExternal))
	assert.Equal(t, uuid.Nil, repo.payment(uuid.MustParse(booking.ID)).ID)

	t.Run("retry succeeds", func(t *testing.T) {
		gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("1234")).Once()

		resp, err := uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "BANK_TRANSFER"})

		require.NoError(t, err)
		assert.Equal(t, "1234", resp.PaymentCode)
	})

	t.Run("gateway charge without a stored row is cancelled", func(t *testing.T) {
		second, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(5), Duration: 1})
		require.NoError(t, err)

		var orderID string
		gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("5678")).Once()
		gwMock.On("Cancel", mock.Anything, mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
			orderID = args.String(1)
		}).Return(nil).Once()
		repo.commitErr = errors.InternalServerError("error committing transaction")
		defer func() { repo.commitErr = nil }()

		_, err = uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: second.ID, PaymentMethod: "QRIS"})

		assert.Equal(t, errors.InternalServerError("error committing transaction"), err)
		assert.Equal(t, uuid.Nil, repo.payment(uuid.MustParse(second.ID)).ID)
		assert.NotEmpty(t, orderID)
		gwMock.AssertCalled(t, "Cancel", mock.Anything, orderID)
	})

	t.Run("other users cannot pay", func(t *testing.T) {
		stranger := actorOf(repo.addUser("X", "x@example.com", "USER"))
		_, err := uc.GetPayment(ctx, stranger, booking.ID)
		assert.True(t, errors.Is(err, errors.KindForbidden))
	})
}

func TestSetPaymentExpired(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Sony FX3", "400000", true)
	owner := actorOf(repo.addUser("Putri", "putri@example.com", "USER"))

	newPayment := func(date string) (string, string) {
		booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: date, Duration: 1})
		require.NoError(t, err)
		gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
		payment, err := uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "QRIS"})
		require.NoError(t, err)
		return booking.ID, payment.GatewayOrderID
	}

	t.Run("gateway still pending after the window", func(t *testing.T) {
		bookingID, orderID := newPayment(day(1))
		p := repo.payment(uuid.MustParse(bookingID))
		p.ExpiryTime = sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true}
		repo.setPayment(p)
		gwMock.On("Status", mock.Anything, orderID).Return(gateway.Notification{OrderID: orderID, Status: gateway.StatusPending}, nil).Once()

		err := uc.SetPaymentExpired(ctx, &request.PaymentExpiration{BookingID: bookingID, OrderID: orderID})

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentExpired, repo.payment(uuid.MustParse(bookingID)).Status)
		assert.Equal(t, entity.BookingCancelled, repo.booking(uuid.MustParse(bookingID)).Status)
	})

	t.Run("gateway settled", func(t *testing.T) {
		bookingID, orderID := newPayment(day(3))
		gwMock.On("Status", mock.Anything, orderID).Return(gateway.Notification{OrderID: orderID, Status: gateway.StatusSettled}, nil).Once()

		err := uc.SetPaymentExpired(ctx, &request.PaymentExpiration{BookingID: bookingID, OrderID: orderID})

		require.NoError(t, err)
		assert.Equal(t, entity.BookingPaid, repo.booking(uuid.MustParse(bookingID)).Status)
	})

	t.Run("gateway down inside the window is retried", func(t *testing.T) {
		bookingID, orderID := newPayment(day(5))
		gwMock.On("Status", mock.Anything, orderID).Return(gateway.Notification{}, errors.ExternalError("timeout")).Once()

		err := uc.SetPaymentExpired(ctx, &request.PaymentExpiration{BookingID: bookingID, OrderID: orderID})

		assert.Error(t, err)
		assert.Equal(t, entity.PaymentPending, repo.payment(uuid.MustParse(bookingID)).Status)
	})

	t.Run("terminal payment is left alone", func(t *testing.T) {
		bookingID, orderID := newPayment(day(7))
		_, err := uc.Reconcile(ctx, orderID, "SETTLED", nil)
		require.NoError(t, err)

		err = uc.SetPaymentExpired(ctx, &request.PaymentExpiration{BookingID: bookingID, OrderID: orderID})

		assert.NoError(t, err)
		gwMock.AssertNotCalled(t, "Status", mock.Anything, orderID)
	})
}

func TestSweepStalePayments(t *testing.T) {
	setup()
	defer teardown()

	camera := repo.addCamera("Canon G7X", "70000", true)
	owner := actorOf(repo.addUser("Nina", "nina@example.com", "USER"))

	booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(2), Duration: 1})
	require.NoError(t, err)
	gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
	_, err = uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "QRIS"})
	require.NoError(t, err)

	swept, err := uc.SweepStalePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, swept)

	p := repo.payment(uuid.MustParse(booking.ID))
	p.ExpiryTime = sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}
	repo.setPayment(p)

	swept, err = uc.SweepStalePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, entity.PaymentExpired, repo.payment(uuid.MustParse(booking.ID)).Status)
	assert.Equal(t, entity.BookingCancelled, repo.booking(uuid.MustParse(booking.ID)).Status)
}

func TestHandleNotification(t *testing.T) {
	setup()
	defer teardown()

	t.Run("unknown provider", func(t *testing.T) {
		_, err := uc.HandleNotification(ctx, "paypal", []byte(`{}`), http.Header{})
		assert.True(t, errors.Is(err, errors.KindValidation))
	})

	t.Run("bad signature", func(t *testing.T) {
		gwMock.On("ParseNotification", []byte(`{"bad":true}`), mock.Anything).Return(gateway.Notification{}, errors.UnauthorizedError("invalid notification signature")).Once()

		_, err := uc.HandleNotification(ctx, "midtrans", []byte(`{"bad":true}`), http.Header{})

		assert.True(t, errors.Is(err, errors.KindUnauthorized))
	})

	t.Run("verified notification is reconciled", func(t *testing.T) {
		camera := repo.addCamera("Ricoh GR III", "110000", true)
		owner := actorOf(repo.addUser("Adi", "adi@example.com", "USER"))
		booking, err := uc.CreateBooking(ctx, owner, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 1})
		require.NoError(t, err)
		gwMock.On("Charge", mock.Anything, mock.Anything).Return(chargeOK("")).Once()
		payment, err := uc.CreatePayment(ctx, owner, &request.CreatePayment{BookingID: booking.ID, PaymentMethod: "BANK_TRANSFER"})
		require.NoError(t, err)

		body := []byte(`{"order_id":"` + payment.GatewayOrderID + `"}`)
		gwMock.On("ParseNotification", body, mock.Anything).Return(gateway.Notification{OrderID: payment.GatewayOrderID, Status: gateway.StatusSettled}, nil).Once()

		resp, err := uc.HandleNotification(ctx, "midtrans", body, http.Header{})

		require.NoError(t, err)
		assert.Equal(t, usecases.OutcomeApplied, resp.Outcome)
		assert.Equal(t, entity.BookingPaid, repo.booking(uuid.MustParse(booking.ID)).Status)
	})
}

func TestShowBookingsStoreError(t *testing.T) {
	repoMock := new(mocks.Repositories)
	ucMock := usecases.New(repoMock, log_internal.New(log_internal.Setup()), newCapturePublisher(), new(gwmocks.Gateway), metrics.NewMetrics(prometheus.NewRegistry()), &config.Config{})
	actor := request.Actor{UserID: uuid.New()}

	repoMock.On("FindBookingsByUserID", ctx, actor.UserID).Return(nil, errors.InternalServerError("error find bookings by user id"))

	resp, err := ucMock.ShowBookings(ctx, actor)

	assert.Nil(t, resp)
	assert.Equal(t, errors.InternalServerError("error find bookings by user id"), err)
	repoMock.AssertExpectations(t)
}

func TestCreateBookingInsertConflict(t *testing.T) {
	repoMock := new(mocks.Repositories)
	ucMock := usecases.New(repoMock, log_internal.New(log_internal.Setup()), newCapturePublisher(), new(gwmocks.Gateway), metrics.NewMetrics(prometheus.NewRegistry()), &config.Config{})
	camera := entity.Camera{ID: uuid.New(), Name: "Sony A7C", Price: "100000", Available: true}

	repoMock.On("FindCameraByID", mock.Anything, camera.ID).Return(camera, nil)
	repoMock.On("LockCamera", mock.Anything, camera.ID).Return(nil, errors.InternalServerError("redis down"))
	repoMock.On("InsertBooking", mock.Anything, mock.MatchedBy(func(b entity.Booking) bool {
		return b.TotalPrice == 200000 && b.Status == entity.BookingPending && b.EndDate.Sub(b.StartDate) == 48*time.Hour
	}), mock.Anything).Return(nil, errors.Conflict("camera unavailable for requested dates"))

	_, err := ucMock.CreateBooking(ctx, request.Actor{UserID: uuid.New()}, &request.CreateBooking{CameraID: camera.ID.String(), Date: day(1), Duration: 2})

	assert.Equal(t, errors.Conflict("camera unavailable for requested dates"), err)
	repoMock.AssertExpectations(t)
}
