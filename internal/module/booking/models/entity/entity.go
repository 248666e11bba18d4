package entity

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingPaid      BookingStatus = "PAID"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// IsTerminal reports CANCELLED and COMPLETED.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending: {BookingPaid, BookingCancelled},
	BookingPaid:    {BookingCompleted, BookingCancelled},
}

// CanTransitionTo guards every booking status write.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSettled PaymentStatus = "SETTLED"
	PaymentExpired PaymentStatus = "EXPIRED"
	PaymentFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentSettled || s == PaymentExpired || s == PaymentFailed
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentSettled, PaymentExpired, PaymentFailed},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSettled, PaymentExpired, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodQris         PaymentMethod = "QRIS"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodBankTransfer, MethodQris, MethodCreditCard:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID     `db:"id"`
	UserID     uuid.UUID     `db:"user_id"`
	CameraID   uuid.UUID     `db:"camera_id"`
	StartDate  time.Time     `db:"start_date"`
	EndDate    time.Time     `db:"end_date"`
	Duration   int           `db:"duration"`
	Purpose    string        `db:"purpose"`
	Status     BookingStatus `db:"status"`
	TotalPrice float64       `db:"total_price"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type Payment struct {
	ID              uuid.UUID      `db:"id"`
	BookingID       uuid.UUID      `db:"booking_id"`
	PaymentMethod   PaymentMethod  `db:"payment_method"`
	Amount          float64        `db:"amount"`
	Status          PaymentStatus  `db:"status"`
	GatewayOrderID  sql.NullString `db:"gateway_order_id"`
	PaymentCode     sql.NullString `db:"payment_code"`
	PaymentURL      sql.NullString `db:"payment_url"`
	ExpiryTime      sql.NullTime   `db:"expiry_time"`
	GatewayMetadata Metadata       `db:"gateway_metadata"`
	TaskID          sql.NullString `db:"task_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// IsStale reports a PENDING payment whose gateway window has passed.
func (p Payment) IsStale(now time.Time) bool {
	return p.Status == PaymentPending && p.ExpiryTime.Valid && !now.Before(p.ExpiryTime.Time)
}

// Camera is the booking engine's read model of a catalog camera.
type Camera struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	Available bool      `db:"available"`
}

// Customer is the booking engine's read model of a user.
type Customer struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
	Role  string    `db:"role"`
}

type Metadata map[string]interface{}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
	out := Metadata{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*m = out
	return nil
}
