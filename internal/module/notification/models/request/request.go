package request

import "time"

// OtpIssued is consumed from the otp_issued topic.
type OtpIssued struct {
	Name      string    `json:"name"`
	Email     string    `json:"email" validate:"required,email"`
	Code      string    `json:"code" validate:"required"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BookingStatusChanged is consumed from the booking_status_changed topic.
type BookingStatusChanged struct {
	BookingID  string    `json:"booking_id" validate:"required"`
	CameraID   string    `json:"camera_id"`
	CameraName string    `json:"camera_name"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email" validate:"required,email"`
	Status     string    `json:"status" validate:"required"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
}

type PoisonedQueue struct {
	TopicTarget string `json:"topic_target"`
	ErrorMsg    string `json:"error_msg"`
	Payload     []byte `json:"payload"`
}
