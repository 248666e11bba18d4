package request

import "time"

type Register struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"omitempty,e164"`
}

type IssueOtp struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtp struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric"`
}

// OtpIssued is published for the notification consumer, which mails the plain code.
type OtpIssued struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
