package usecases

import (
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/module/booking/models/request"
	"camera-rental-service/internal/module/booking/models/response"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

// rentalPeriod validates date and duration and returns the half-open interval [start, end).
func rentalPeriod(date string, duration int, now time.Time) (time.Time, time.Time, error) {
	if duration <= 0 {
		return time.Time{}, time.Time{}, errors.BadRequest("duration must be greater than zero")
	}
	start, err := helpers.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("invalid date")
	}
	if start.Before(helpers.StartOfDay(now)) {
		return time.Time{}, time.Time{}, errors.BadRequest("date must not be in the past")
	}
	return start, start.AddDate(0, 0, duration), nil
}

// totalPrice multiplies the per-day camera price by the rental days.
func totalPrice(price string, duration int) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || !d.IsPositive() {
		return 0, errors.BadRequest("camera price is not a valid amount")
	}
	return d.Mul(decimal.NewFromInt(int64(duration))).Round(2).InexactFloat64(), nil
}

func (u *usecase) CreateBooking(ctx context.Context, actor request.Actor, payload *request.CreateBooking) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "CreateBooking", "usecase")
	defer span.End()

	cameraID, err := parseID(payload.CameraID, "camera id")
	if err != nil {
		return response.Booking{}, err
	}

	now := time.Now().UTC()
	start, end, err := rentalPeriod(payload.Date, payload.Duration, now)
	if err != nil {
		return response.Booking{}, err
	}

	camera, err := u.repo.FindCameraByID(ctx, cameraID)
	if err != nil {
		return response.Booking{}, err
	}
	if camera.ID == uuid.Nil {
		return response.Booking{}, errors.NotFound("camera not found")
	}
	if !camera.Available {
		return response.Booking{}, errors.BadRequest("camera is not available")
	}

	total, err := totalPrice(camera.Price, payload.Duration)
	if err != nil {
		return response.Booking{}, err
	}

	// advisory, InsertBooking re-checks under the camera row lock
	release, err := u.repo.LockCamera(ctx, cameraID)
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error lock camera %s, continuing without it", cameraID), err)
	}
	if release != nil {
		defer release()
	}

	booking := entity.Booking{
		ID:         uuid.New(),
		UserID:     actor.UserID,
		CameraID:   cameraID,
		StartDate:  start,
		EndDate:    end,
		Duration:   payload.Duration,
		Purpose:    payload.Purpose,
		Status:     entity.BookingPending,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	released, err := u.repo.InsertBooking(ctx, booking, now.Add(-u.cfg.Booking.HoldTTL))
	if err != nil {
		if errors.Is(err, errors.KindConflict) {
			u.metrics.BookingConflicts.Inc()
		}
		u.log.Error(ctx, "error insert booking", err)
		return response.Booking{}, err
	}
	u.metrics.BookingsCreated.Inc()

	for _, id := range released {
		stale, err := u.repo.FindBookingByID(ctx, id)
		if err != nil || stale.ID == uuid.Nil {
			continue
		}
		u.publishStatus(ctx, stale)
	}
	u.publishStatus(ctx, booking)

	return toBookingResponse(booking, nil), nil
}

func (u *usecase) CancelBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "CancelBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking id")
	if err != nil {
		return response.Booking{}, err
	}

	var changed bool
	var failedPayment entity.Payment
	booking, payment, err := u.repo.UpdateBookingTx(ctx, id, func(b *entity.Booking, p *entity.Payment) error {
		if !actor.CanAccess(b.UserID) {
			return errors.Forbidden("you are not allowed to cancel this booking")
		}

		switch b.Status {
		case entity.BookingCancelled:
			return nil
		case entity.BookingCompleted:
			return errors.Conflict("booking already completed")
		case entity.BookingPaid:
			return errors.Conflict("paid booking requires refund")
		}

		b.Status = entity.BookingCancelled
		changed = true

		// a late settlement for this payment must surface as an inconsistency
		if p.ID != uuid.Nil && p.Status == entity.PaymentPending {
			p.Status = entity.PaymentFailed
			failedPayment = *p
		}
		return nil
	})
	if err != nil {
		u.log.Error(ctx, "error cancel booking", err)
		return response.Booking{}, err
	}

	if changed {
		u.publishStatus(ctx, booking)
	}
	if failedPayment.ID != uuid.Nil {
		u.deleteTask(ctx, failedPayment)
		if err := u.gateway.Cancel(ctx, failedPayment.GatewayOrderID.String); err != nil {
			u.log.Warn(ctx, fmt.Sprintf("error cancel gateway order %s", failedPayment.GatewayOrderID.String), err)
		}
	}

	return toBookingResponse(booking, &payment), nil
}

func (u *usecase) RefundBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "RefundBooking", "usecase")
	defer span.End()

	return u.adminTransition(ctx, actor, bookingID, func(b *entity.Booking) (bool, error) {
		switch b.Status {
		case entity.BookingCancelled:
			return false, nil
		case entity.BookingPaid:
			// payment stays SETTLED, money goes back outside the service
			b.Status = entity.BookingCancelled
			return true, nil
		}
		return false, errors.Conflict("only paid bookings can be refunded")
	})
}

func (u *usecase) CompleteBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "CompleteBooking", "usecase")
	defer span.End()

	return u.adminTransition(ctx, actor, bookingID, func(b *entity.Booking) (bool, error) {
		switch b.Status {
		case entity.BookingCompleted:
			return false, nil
		case entity.BookingPaid:
			b.Status = entity.BookingCompleted
			return true, nil
		}
		return false, errors.Conflict("booking must be paid before completion")
	})
}

func (u *usecase) adminTransition(ctx context.Context, actor request.Actor, bookingID string, transition func(b *entity.Booking) (bool, error)) (response.Booking, error) {
	if !actor.IsAdmin() {
		return response.Booking{}, errors.Forbidden("admin role required")
	}

	id, err := parseID(bookingID, "booking id")
	if err != nil {
		return response.Booking{}, err
	}

	var changed bool
	booking, payment, err := u.repo.UpdateBookingTx(ctx, id, func(b *entity.Booking, p *entity.Payment) error {
		var terr error
		changed, terr = transition(b)
		return terr
	})
	if err != nil {
		u.log.Error(ctx, "error update booking status", err)
		return response.Booking{}, err
	}

	if changed {
		u.publishStatus(ctx, booking)
	}

	return toBookingResponse(booking, &payment), nil
}

func (u *usecase) GetBooking(ctx context.Context, actor request.Actor, bookingID string) (response.Booking, error) {
	id, err := parseID(bookingID, "booking id")
	if err != nil {
		return response.Booking{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	if booking.ID == uuid.Nil {
		return response.Booking{}, errors.NotFound("booking not found")
	}
	if !actor.CanAccess(booking.UserID) {
		return response.Booking{}, errors.Forbidden("you are not allowed to access this booking")
	}

	payment, err := u.repo.FindPaymentByBookingID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}

	return toBookingResponse(booking, &payment), nil
}

func (u *usecase) ShowBookings(ctx context.Context, actor request.Actor) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b, nil))
	}
	return resp, nil
}

func (u *usecase) ListCameraBookings(ctx context.Context, cameraID string) ([]response.Booking, error) {
	id, err := parseID(cameraID, "camera id")
	if err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsByCameraID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b, nil))
	}
	return resp, nil
}

// CheckAvailability is read only: stale holds still count until the next booking or sweep releases them.
func (u *usecase) CheckAvailability(ctx context.Context, payload *request.Availability) (response.Availability, error) {
	cameraID, err := parseID(payload.CameraID, "camera id")
	if err != nil {
		return response.Availability{}, err
	}

	start, end, err := rentalPeriod(payload.Date, payload.Duration, time.Now().UTC())
	if err != nil {
		return response.Availability{}, err
	}

	camera, err := u.repo.FindCameraByID(ctx, cameraID)
	if err != nil {
		return response.Availability{}, err
	}
	if camera.ID == uuid.Nil {
		return response.Availability{}, errors.NotFound("camera not found")
	}

	resp := response.Availability{
		CameraID:  cameraID.String(),
		StartDate: start.Format(helpers.DateFormat),
		EndDate:   end.Format(helpers.DateFormat),
	}
	if !camera.Available {
		return resp, nil
	}

	count, err := u.repo.CountOverlappingBookings(ctx, cameraID, start, end)
	if err != nil {
		return response.Availability{}, err
	}
	resp.Available = count == 0

	return resp, nil
}
