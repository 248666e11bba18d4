package request

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "ADMIN"

// Actor is the authenticated caller resolved by the token middleware.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess reports whether the actor owns the resource or is an admin.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.UserID != uuid.Nil && a.UserID == ownerID)
}

type CreateBooking struct {
	CameraID string `json:"camera_id" validate:"required,uuid"`
	Date     string `json:"date" validate:"required,date"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Purpose  string `json:"purpose" validate:"max=500"`
}

type Availability struct {
	CameraID string `query:"camera_id" validate:"required,uuid"`
	Date     string `query:"date" validate:"required,date"`
	Duration int    `query:"duration" validate:"required,gt=0"`
}

type CreatePayment struct {
	BookingID     string `json:"booking_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=BANK_TRANSFER QRIS CREDIT_CARD"`
}

// PaymentExpiration is the payload of the delayed payment status check.
type PaymentExpiration struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	OrderID   string `json:"order_id" validate:"required"`
}

// BookingStatusChanged is published on every booking status change.
type BookingStatusChanged struct {
	BookingID  string    `json:"booking_id"`
	CameraID   string    `json:"camera_id"`
	CameraName string    `json:"camera_name"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
}
