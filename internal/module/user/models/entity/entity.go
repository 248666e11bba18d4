package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID              uuid.UUID      `db:"id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	Role            string         `db:"role"`
	Image           sql.NullString `db:"image"`
	Phone           sql.NullString `db:"phone"`
	Otp             sql.NullString `db:"otp"`
	OtpExpiry       sql.NullTime   `db:"otp_expiry"`
	EmailVerifiedAt sql.NullTime   `db:"email_verified_at"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasOtp reports whether a code is stored, live or not.
func (u User) HasOtp() bool {
	return u.Otp.Valid && u.Otp.String != "" && u.OtpExpiry.Valid
}

// OtpExpired reports a stored code whose expiry is not after now.
func (u User) OtpExpired(now time.Time) bool {
	return u.HasOtp() && !now.Before(u.OtpExpiry.Time)
}
