package repositories

import (
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/pkg/database"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/redis"
	"camera-rental-service/internal/pkg/scheduler"
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	bookingColumns = `id, user_id, camera_id, start_date, end_date, duration, purpose, status, total_price, created_at, updated_at`
	paymentColumns = `id, booking_id, payment_method, amount, status, gateway_order_id, payment_code, payment_url, expiry_time, gateway_metadata, task_id, created_at, updated_at`

	msgCameraUnavailable = "camera unavailable for requested dates"
)

type repositories struct {
	db        *sqlx.DB
	log       log.Logger
	locker    redis.Locker
	lockTTL   time.Duration
	client    *asynq.Client
	inspector *asynq.Inspector
}

type Repositories interface {
	// redis
	LockCamera(ctx context.Context, cameraID uuid.UUID) (func(), error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// db
	FindCameraByID(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (entity.Customer, error)
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error)
	FindBookingsByCameraID(ctx context.Context, cameraID uuid.UUID) ([]entity.Booking, error)
	CountOverlappingBookings(ctx context.Context, cameraID uuid.UUID, start, end time.Time) (int, error)
	FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error)
	FindPaymentByOrderID(ctx context.Context, orderID string) (entity.Payment, error)
	FindStalePendingPayments(ctx context.Context, now time.Time, limit int) ([]entity.Payment, error)
	SetPaymentTaskID(ctx context.Context, paymentID uuid.UUID, taskID string) error
	InsertBooking(ctx context.Context, booking entity.Booking, holdCutoff time.Time) ([]uuid.UUID, error)
	UpdateBookingTx(ctx context.Context, bookingID uuid.UUID, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error)
	ReconcilePaymentTx(ctx context.Context, orderID string, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error)
	CreatePaymentTx(ctx context.Context, payment entity.Payment, fn func(b entity.Booking, p *entity.Payment) error) (entity.Payment, error)
}

func New(db *sqlx.DB, log log.Logger, locker redis.Locker, lockTTL time.Duration, client *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:        db,
		log:       log,
		locker:    locker,
		lockTTL:   lockTTL,
		client:    client,
		inspector: inspector,
	}
}

// LockCamera implements Repositories.
func (r *repositories) LockCamera(ctx context.Context, cameraID uuid.UUID) (func(), error) {
	if r.locker == nil {
		return func() {}, nil
	}
	return r.locker.Lock(ctx, "lock:camera:"+cameraID.String(), r.lockTTL)
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeCheckPaymentStatus, payload)
	info, err := r.client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.Queue(scheduler.QueueDefault), asynq.MaxRetry(10))
	if err != nil {
		r.log.Error(ctx, "error enqueue payment status task", err)
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	err := r.inspector.DeleteTask(scheduler.QueueDefault, taskID)
	if err != nil && !stderrors.Is(err, asynq.ErrTaskNotFound) && !stderrors.Is(err, asynq.ErrQueueNotFound) {
		r.log.Error(ctx, "error delete payment status task", err)
		return errors.InternalServerError("error delete task scheduler")
	}
	return nil
}

// FindCameraByID implements Repositories.
func (r *repositories) FindCameraByID(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error) {
	var camera entity.Camera
	err := r.db.GetContext(ctx, &camera, `SELECT id, name, price, available FROM cameras WHERE id = $1`, cameraID)
	if err == sql.ErrNoRows {
		return entity.Camera{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find camera by id", err)
		return entity.Camera{}, errors.InternalServerError("error find camera by id")
	}
	return camera, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, userID uuid.UUID) (entity.Customer, error) {
	var customer entity.Customer
	err := r.db.GetContext(ctx, &customer, `SELECT id, name, email, role FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.Customer{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find user by id", err)
		return entity.Customer{}, errors.InternalServerError("error find user by id")
	}
	return customer, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Error(ctx, "error find bookings by user id", err)
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindBookingsByCameraID implements Repositories.
func (r *repositories) FindBookingsByCameraID(ctx context.Context, cameraID uuid.UUID) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, `SELECT `+bookingColumns+` FROM bookings WHERE camera_id = $1 ORDER BY start_date`, cameraID)
	if err != nil {
		r.log.Error(ctx, "error find bookings by camera id", err)
		return nil, errors.InternalServerError("error find bookings by camera id")
	}
	return bookings, nil
}

// CountOverlappingBookings implements Repositories.
func (r *repositories) CountOverlappingBookings(ctx context.Context, cameraID uuid.UUID, start, end time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, countOverlapQuery, cameraID, start, end)
	if err != nil {
		r.log.Error(ctx, "error count overlapping bookings", err)
		return 0, errors.InternalServerError("error count overlapping bookings")
	}
	return count, nil
}

// FindPaymentByBookingID implements Repositories.
func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error) {
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by booking id", err)
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

// FindPaymentByOrderID implements Repositories.
func (r *repositories) FindPaymentByOrderID(ctx context.Context, orderID string) (entity.Payment, error) {
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE gateway_order_id = $1`, orderID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by order id", err)
		return entity.Payment{}, errors.InternalServerError("error find payment by order id")
	}
	return payment, nil
}

// FindStalePendingPayments implements Repositories.
func (r *repositories) FindStalePendingPayments(ctx context.Context, now time.Time, limit int) ([]entity.Payment, error) {
	payments := []entity.Payment{}
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE status = 'PENDING' AND expiry_time <= $1 ORDER BY expiry_time LIMIT $2`,
		now, limit)
	if err != nil {
		r.log.Error(ctx, "error find stale pending payments", err)
		return nil, errors.InternalServerError("error find stale pending payments")
	}
	return payments, nil
}

// SetPaymentTaskID implements Repositories.
func (r *repositories) SetPaymentTaskID(ctx context.Context, paymentID uuid.UUID, taskID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE payments SET task_id = $1 WHERE id = $2`, taskID, paymentID)
	if err != nil {
		r.log.Error(ctx, "error set payment task id", err)
		return errors.InternalServerError("error set payment task id")
	}
	return nil
}

const (
	countOverlapQuery = `SELECT COUNT(1) FROM bookings WHERE camera_id = $1 AND status IN ('PENDING', 'PAID') AND start_date < $3 AND end_date > $2`

	// releases holds whose gateway window passed, and holds that never got a payment
	expireStaleHoldsQuery = `UPDATE bookings b SET status = 'CANCELLED', updated_at = $2
		WHERE b.camera_id = $1 AND b.status = 'PENDING' AND (
			EXISTS (SELECT 1 FROM payments p WHERE p.booking_id = b.id AND p.status = 'PENDING' AND p.expiry_time <= $2)
			OR (b.created_at < $3 AND NOT EXISTS (SELECT 1 FROM payments p WHERE p.booking_id = b.id))
		)
		RETURNING b.id`

	expireStalePaymentsQuery = `UPDATE payments SET status = 'EXPIRED', updated_at = $2 WHERE booking_id = ANY($1) AND status = 'PENDING'`

	insertBookingQuery = `INSERT INTO bookings (id, user_id, camera_id, start_date, end_date, duration, purpose, status, total_price, created_at, updated_at)
		VALUES (:id, :user_id, :camera_id, :start_date, :end_date, :duration, :purpose, :status, :total_price, :created_at, :updated_at)`

	insertPaymentQuery = `INSERT INTO payments (id, booking_id, payment_method, amount, status, gateway_order_id, gateway_metadata, created_at, updated_at)
		VALUES (:id, :booking_id, :payment_method, :amount, :status, :gateway_order_id, :gateway_metadata, :created_at, :updated_at)`

	updateGatewayQuery = `UPDATE payments SET gateway_order_id = :gateway_order_id, payment_code = :payment_code, payment_url = :payment_url,
		expiry_time = :expiry_time, gateway_metadata = :gateway_metadata, updated_at = :updated_at
		WHERE id = :id`
)

// InsertBooking implements Repositories. It returns the ids of holds released on the way.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking, holdCutoff time.Time) ([]uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return nil, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var cameraID uuid.UUID
	err = tx.GetContext(ctx, &cameraID, `SELECT id FROM cameras WHERE id = $1 FOR UPDATE`, booking.CameraID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("camera not found")
	}
	if err != nil {
		r.log.Error(ctx, "error locking camera", err)
		return nil, errors.InternalServerError("error locking camera")
	}

	released := []uuid.UUID{}
	err = tx.SelectContext(ctx, &released, expireStaleHoldsQuery, booking.CameraID, booking.CreatedAt, holdCutoff)
	if err != nil {
		r.log.Error(ctx, "error release stale bookings", err)
		return nil, errors.InternalServerError("error release stale bookings")
	}

	if len(released) > 0 {
		ids := make([]string, len(released))
		for i, id := range released {
			ids[i] = id.String()
		}
		if _, err = tx.ExecContext(ctx, expireStalePaymentsQuery, pq.Array(ids), booking.CreatedAt); err != nil {
			r.log.Error(ctx, "error expire stale payments", err)
			return nil, errors.InternalServerError("error expire stale payments")
		}
	}

	var overlapping int
	err = tx.GetContext(ctx, &overlapping, countOverlapQuery, booking.CameraID, booking.StartDate, booking.EndDate)
	if err != nil {
		r.log.Error(ctx, "error count overlapping bookings", err)
		return nil, errors.InternalServerError("error count overlapping bookings")
	}
	if overlapping > 0 {
		return nil, errors.Conflict(msgCameraUnavailable)
	}

	if _, err = tx.NamedExecContext(ctx, insertBookingQuery, booking); err != nil {
		if database.IsExclusionViolation(err) {
			return nil, errors.Conflict(msgCameraUnavailable)
		}
		if database.IsForeignKeyViolation(err) {
			return nil, errors.NotFound("user or camera not found")
		}
		r.log.Error(ctx, "error insert booking", err)
		return nil, errors.InternalServerError("error insert booking")
	}

	if err = tx.Commit(); err != nil {
		if database.IsExclusionViolation(err) {
			return nil, errors.Conflict(msgCameraUnavailable)
		}
		r.log.Error(ctx, "error committing transaction", err)
		return nil, errors.InternalServerError("error committing transaction")
	}

	return released, nil
}

// UpdateBookingTx implements Repositories. fn sees the locked booking and its payment
// (zero value when none exists); only changed statuses are written.
func (r *repositories) UpdateBookingTx(ctx context.Context, bookingID uuid.UUID, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	booking, payment, err := r.apply(ctx, tx, bookingID, fn)
	if err != nil {
		return entity.Booking{}, entity.Payment{}, err
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return booking, payment, nil
}

// ReconcilePaymentTx implements Repositories. Rows are locked booking first, like UpdateBookingTx.
func (r *repositories) ReconcilePaymentTx(ctx context.Context, orderID string, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var bookingID uuid.UUID
	err = tx.GetContext(ctx, &bookingID, `SELECT booking_id FROM payments WHERE gateway_order_id = $1`, orderID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, entity.Payment{}, errors.NotFound(fmt.Sprintf("payment %s not found", orderID))
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by order id", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error find payment by order id")
	}

	booking, payment, err := r.apply(ctx, tx, bookingID, fn)
	if err != nil {
		return entity.Booking{}, entity.Payment{}, err
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return booking, payment, nil
}

func (r *repositories) apply(ctx context.Context, tx *sqlx.Tx, bookingID uuid.UUID, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	var booking entity.Booking
	err := tx.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, entity.Payment{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error locking booking", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error locking booking")
	}

	var payment entity.Payment
	err = tx.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1 FOR UPDATE`, bookingID)
	if err != nil && err != sql.ErrNoRows {
		r.log.Error(ctx, "error locking payment", err)
		return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error locking payment")
	}

	bookingStatus, paymentStatus := booking.Status, payment.Status
	if err = fn(&booking, &payment); err != nil {
		return entity.Booking{}, entity.Payment{}, err
	}

	if booking.Status != bookingStatus && !bookingStatus.CanTransitionTo(booking.Status) {
		return entity.Booking{}, entity.Payment{}, errors.Conflict(fmt.Sprintf("booking cannot move from %s to %s", bookingStatus, booking.Status))
	}
	if payment.ID != uuid.Nil && payment.Status != paymentStatus && !paymentStatus.CanTransitionTo(payment.Status) {
		return entity.Booking{}, entity.Payment{}, errors.Conflict(fmt.Sprintf("payment cannot move from %s to %s", paymentStatus, payment.Status))
	}

	now := time.Now().UTC()
	if booking.Status != bookingStatus {
		booking.UpdatedAt = now
		_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`, booking.Status, now, booking.ID)
		if err != nil {
			if database.IsExclusionViolation(err) {
				return entity.Booking{}, entity.Payment{}, errors.Conflict(msgCameraUnavailable)
			}
			r.log.Error(ctx, "error update booking status", err)
			return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error update booking status")
		}
	}

	if payment.ID != uuid.Nil && payment.Status != paymentStatus {
		payment.UpdatedAt = now
		_, err = tx.ExecContext(ctx, `UPDATE payments SET status = $1, gateway_metadata = $2, updated_at = $3 WHERE id = $4`,
			payment.Status, payment.GatewayMetadata, now, payment.ID)
		if err != nil {
			r.log.Error(ctx, "error update payment status", err)
			return entity.Booking{}, entity.Payment{}, errors.InternalServerError("error update payment status")
		}
	}

	return booking, payment, nil
}

// CreatePaymentTx implements Repositories. The row is inserted before fn runs so the
// booking_id unique key rejects a concurrent duplicate; an error from fn rolls it back.
// The booking row lock is held while fn calls the gateway.
func (r *repositories) CreatePaymentTx(ctx context.Context, payment entity.Payment, fn func(b entity.Booking, p *entity.Payment) error) (entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Payment{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var booking entity.Booking
	err = tx.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, payment.BookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error locking booking", err)
		return entity.Payment{}, errors.InternalServerError("error locking booking")
	}

	if _, err = tx.NamedExecContext(ctx, insertPaymentQuery, payment); err != nil {
		if database.IsUniqueViolation(err) {
			return entity.Payment{}, errors.Conflict("payment already exists for booking")
		}
		r.log.Error(ctx, "error insert payment", err)
		return entity.Payment{}, errors.InternalServerError("error insert payment")
	}

	if err = fn(booking, &payment); err != nil {
		return entity.Payment{}, err
	}

	payment.UpdatedAt = time.Now().UTC()
	if _, err = tx.NamedExecContext(ctx, updateGatewayQuery, payment); err != nil {
		if database.IsUniqueViolation(err) {
			return entity.Payment{}, errors.Conflict("gateway order id already used")
		}
		r.log.Error(ctx, "error update payment gateway data", err)
		return entity.Payment{}, errors.InternalServerError("error update payment gateway data")
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return payment, nil
}
