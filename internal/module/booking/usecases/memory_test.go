package usecases_test

import (
	"camera-rental-service/internal/module/booking/models/entity"
	"camera-rental-service/internal/module/booking/repositories"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// memoryRepo keeps the booking tables in maps and applies the same rules as the sql store.
type memoryRepo struct {
	mu       sync.Mutex
	cameras  map[uuid.UUID]entity.Camera
	users    map[uuid.UUID]entity.Customer
	bookings map[uuid.UUID]entity.Booking
	payments map[uuid.UUID]entity.Payment
	tasks    map[string][]byte
	deleted  []string
	taskSeq  int
	// commitErr fails CreatePaymentTx after fn succeeded
	commitErr error
}

var _ repositories.Repositories = (*memoryRepo)(nil)

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		cameras:  map[uuid.UUID]entity.Camera{},
		users:    map[uuid.UUID]entity.Customer{},
		bookings: map[uuid.UUID]entity.Booking{},
		payments: map[uuid.UUID]entity.Payment{},
		tasks:    map[string][]byte{},
	}
}

func (m *memoryRepo) addCamera(name, price string, available bool) entity.Camera {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := entity.Camera{ID: uuid.New(), Name: name, Price: price, Available: available}
	m.cameras[c.ID] = c
	return c
}

func (m *memoryRepo) addUser(name, email, role string) entity.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := entity.Customer{ID: uuid.New(), Name: name, Email: email, Role: role}
	m.users[c.ID] = c
	return c
}

func (m *memoryRepo) booking(id uuid.UUID) entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[id]
}

func (m *memoryRepo) payment(bookingID uuid.UUID) entity.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payments[bookingID]
}

func (m *memoryRepo) setPayment(p entity.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[p.BookingID] = p
}

func (m *memoryRepo) LockCamera(ctx context.Context, cameraID uuid.UUID) (func(), error) {
	return func() {}, nil
}

func (m *memoryRepo) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.taskSeq++
	id := fmt.Sprintf("task-%d", m.taskSeq)
	m.tasks[id] = payload
	return id, nil
}

func (m *memoryRepo) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, taskID)
	m.deleted = append(m.deleted, taskID)
	return nil
}

func (m *memoryRepo) FindCameraByID(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cameras[cameraID], nil
}

func (m *memoryRepo) FindUserByID(ctx context.Context, userID uuid.UUID) (entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID], nil
}

func (m *memoryRepo) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	return m.booking(bookingID), nil
}

func (m *memoryRepo) FindBookingsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	return m.filter(func(b entity.Booking) bool { return b.UserID == userID }), nil
}

func (m *memoryRepo) FindBookingsByCameraID(ctx context.Context, cameraID uuid.UUID) ([]entity.Booking, error) {
	return m.filter(func(b entity.Booking) bool { return b.CameraID == cameraID }), nil
}

func (m *memoryRepo) filter(keep func(b entity.Booking) bool) []entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Booking{}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}

func (m *memoryRepo) CountOverlappingBookings(ctx context.Context, cameraID uuid.UUID, start, end time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overlapping(cameraID, start, end), nil
}

func (m *memoryRepo) overlapping(cameraID uuid.UUID, start, end time.Time) int {
	count := 0
	for _, b := range m.bookings {
		occupies := b.Status == entity.BookingPending || b.Status == entity.BookingPaid
		if b.CameraID == cameraID && occupies && b.StartDate.Before(end) && b.EndDate.After(start) {
			count++
		}
	}
	return count
}

func (m *memoryRepo) FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error) {
	return m.payment(bookingID), nil
}

func (m *memoryRepo) FindPaymentByOrderID(ctx context.Context, orderID string) (entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.GatewayOrderID.String == orderID {
			return p, nil
		}
	}
	return entity.Payment{}, nil
}

func (m *memoryRepo) FindStalePendingPayments(ctx context.Context, now time.Time, limit int) ([]entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Payment{}
	for _, p := range m.payments {
		if p.IsStale(now) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) SetPaymentTaskID(ctx context.Context, paymentID uuid.UUID, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.payments {
		if p.ID == paymentID {
			p.TaskID.String, p.TaskID.Valid = taskID, true
			m.payments[k] = p
		}
	}
	return nil
}

func (m *memoryRepo) InsertBooking(ctx context.Context, booking entity.Booking, holdCutoff time.Time) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cameras[booking.CameraID]; !ok {
		return nil, errors.NotFound("camera not found")
	}

	released := []uuid.UUID{}
	for id, b := range m.bookings {
		if b.CameraID != booking.CameraID || b.Status != entity.BookingPending {
			continue
		}
		p, paid := m.payments[id]
		staleHold := !paid && b.CreatedAt.Before(holdCutoff)
		if !staleHold && !(paid && p.IsStale(booking.CreatedAt)) {
			continue
		}
		b.Status = entity.BookingCancelled
		b.UpdatedAt = booking.CreatedAt
		m.bookings[id] = b
		if paid {
			p.Status = entity.PaymentExpired
			m.payments[id] = p
		}
		released = append(released, id)
	}

	if m.overlapping(booking.CameraID, booking.StartDate, booking.EndDate) > 0 {
		return nil, errors.Conflict("camera unavailable for requested dates")
	}

	m.bookings[booking.ID] = booking
	return released, nil
}

func (m *memoryRepo) UpdateBookingTx(ctx context.Context, bookingID uuid.UUID, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apply(bookingID, fn)
}

func (m *memoryRepo) ReconcilePaymentTx(ctx context.Context, orderID string, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for bookingID, p := range m.payments {
		if p.GatewayOrderID.String == orderID {
			return m.apply(bookingID, fn)
		}
	}
	return entity.Booking{}, entity.Payment{}, errors.NotFound(fmt.Sprintf("payment %s not found", orderID))
}

func (m *memoryRepo) apply(bookingID uuid.UUID, fn func(b *entity.Booking, p *entity.Payment) error) (entity.Booking, entity.Payment, error) {
	b, ok := m.bookings[bookingID]
	if !ok {
		return entity.Booking{}, entity.Payment{}, errors.NotFound("booking not found")
	}
	p := m.payments[bookingID]
	bookingStatus, paymentStatus := b.Status, p.Status

	if err := fn(&b, &p); err != nil {
		return entity.Booking{}, entity.Payment{}, err
	}

	if b.Status != bookingStatus && !bookingStatus.CanTransitionTo(b.Status) {
		return entity.Booking{}, entity.Payment{}, errors.Conflict(fmt.Sprintf("booking cannot move from %s to %s", bookingStatus, b.Status))
	}
	if p.ID != uuid.Nil && p.Status != paymentStatus && !paymentStatus.CanTransitionTo(p.Status) {
		return entity.Booking{}, entity.Payment{}, errors.Conflict(fmt.Sprintf("payment cannot move from %s to %s", paymentStatus, p.Status))
	}

	now := time.Now().UTC()
	if b.Status != bookingStatus {
		b.UpdatedAt = now
		m.bookings[bookingID] = b
	}
	if p.ID != uuid.Nil && p.Status != paymentStatus {
		p.UpdatedAt = now
		m.payments[bookingID] = p
	}
	return m.bookings[bookingID], m.payments[bookingID], nil
}

func (m *memoryRepo) CreatePaymentTx(ctx context.Context, payment entity.Payment, fn func(b entity.Booking, p *entity.Payment) error) (entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[payment.BookingID]
	if !ok {
		return entity.Payment{}, errors.NotFound("booking not found")
	}
	if _, exists := m.payments[payment.BookingID]; exists {
		return entity.Payment{}, errors.Conflict("payment already exists for booking")
	}
	if err := fn(b, &payment); err != nil {
		return entity.Payment{}, err
	}
	if m.commitErr != nil {
		return entity.Payment{}, m.commitErr
	}
	m.payments[payment.BookingID] = payment
	return payment, nil
}

type capturePublisher struct {
	mu       sync.Mutex
	messages map[string][]*message.Message
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{messages: map[string][]*message.Message{}}
}

// Publish implements message.Publisher.
func (c *capturePublisher) Publish(topic string, messages ...*message.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages[topic] = append(c.messages[topic], messages...)
	return nil
}

// Close implements message.Publisher.
func (c *capturePublisher) Close() error {
	return nil
}

func (c *capturePublisher) count(topic string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages[topic])
}
