package repositories

import (
	"camera-rental-service/internal/module/user/models/entity"
	"camera-rental-service/internal/pkg/database"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/log"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const userColumns = `id, name, email, role, image, phone, otp, otp_expiry, email_verified_at, created_at, updated_at`

type repositories struct {
	db    *sqlx.DB
	log   log.Logger
	redis *redis.Client
}

type Repositories interface {
	// redis
	ThrottleOtp(ctx context.Context, email string, interval time.Duration) (bool, error)
	ReleaseOtpThrottle(ctx context.Context, email string) error
	IncrOtpAttempts(ctx context.Context, userID uuid.UUID, ttl time.Duration) (int64, error)
	ResetOtpAttempts(ctx context.Context, userID uuid.UUID) error
	// db
	InsertUser(ctx context.Context, user entity.User) error
	FindUserByID(ctx context.Context, userID uuid.UUID) (entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	SetOtp(ctx context.Context, userID uuid.UUID, hash string, expiry time.Time) error
	ClearOtp(ctx context.Context, userID uuid.UUID) error
	MarkEmailVerified(ctx context.Context, userID uuid.UUID, otp string, at time.Time) (bool, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
	UpdateImage(ctx context.Context, userID uuid.UUID, image string) error
	ClearExpiredOtps(ctx context.Context, now time.Time) (int64, error)
}

func New(db *sqlx.DB, log log.Logger, redis *redis.Client) Repositories {
	return &repositories{
		db:    db,
		log:   log,
		redis: redis,
	}
}

func throttleKey(email string) string {
	return "otp:throttle:" + strings.ToLower(email)
}

func attemptsKey(userID uuid.UUID) string {
	return "otp:attempts:" + userID.String()
}

// ThrottleOtp implements Repositories. It returns false while a previous code for email is still inside interval.
func (r *repositories) ThrottleOtp(ctx context.Context, email string, interval time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, throttleKey(email), time.Now().Unix(), interval).Result()
	if err != nil {
		r.log.Error(ctx, "error set otp throttle", err)
		return false, errors.InternalServerError("error set otp throttle")
	}
	return ok, nil
}

// ReleaseOtpThrottle implements Repositories.
func (r *repositories) ReleaseOtpThrottle(ctx context.Context, email string) error {
	if err := r.redis.Del(ctx, throttleKey(email)).Err(); err != nil {
		r.log.Error(ctx, "error release otp throttle", err)
		return errors.InternalServerError("error release otp throttle")
	}
	return nil
}

// IncrOtpAttempts implements Repositories.
func (r *repositories) IncrOtpAttempts(ctx context.Context, userID uuid.UUID, ttl time.Duration) (int64, error) {
	pipe := r.redis.TxPipeline()
	incr := pipe.Incr(ctx, attemptsKey(userID))
	pipe.Expire(ctx, attemptsKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Error(ctx, "error increment otp attempts", err)
		return 0, errors.InternalServerError("error increment otp attempts")
	}
	return incr.Val(), nil
}

// ResetOtpAttempts implements Repositories.
func (r *repositories) ResetOtpAttempts(ctx context.Context, userID uuid.UUID) error {
	if err := r.redis.Del(ctx, attemptsKey(userID)).Err(); err != nil {
		r.log.Error(ctx, "error reset otp attempts", err)
		return errors.InternalServerError("error reset otp attempts")
	}
	return nil
}

// InsertUser implements Repositories.
func (r *repositories) InsertUser(ctx context.Context, user entity.User) error {
	query := `INSERT INTO users (id, name, email, role, phone, created_at, updated_at)
		VALUES (:id, :name, :email, :role, :phone, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("email already registered")
		}
		r.log.Error(ctx, "error insert user", err)
		return errors.InternalServerError("error insert user")
	}
	return nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.User{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find user by id", err)
		return entity.User{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}

// FindUserByEmail implements Repositories. Emails compare case-insensitively, like the unique index.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	if err == sql.ErrNoRows {
		return entity.User{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find user by email", err)
		return entity.User{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

func (r *repositories) exec(ctx context.Context, op string, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error(ctx, "error "+op, err)
		return errors.InternalServerError("error " + op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error "+op, err)
		return errors.InternalServerError("error " + op)
	}
	if n == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

// SetOtp implements Repositories. The new hash replaces any previous code.
func (r *repositories) SetOtp(ctx context.Context, userID uuid.UUID, hash string, expiry time.Time) error {
	return r.exec(ctx, "set otp", `UPDATE users SET otp = $1, otp_expiry = $2, updated_at = $3 WHERE id = $4`, hash, expiry, time.Now().UTC(), userID)
}

// ClearOtp implements Repositories.
func (r *repositories) ClearOtp(ctx context.Context, userID uuid.UUID) error {
	return r.exec(ctx, "clear otp", `UPDATE users SET otp = NULL, otp_expiry = NULL, updated_at = $1 WHERE id = $2`, time.Now().UTC(), userID)
}

// MarkEmailVerified implements Repositories. It consumes otp only while it is still the stored,
// unexpired code; false means another request already used or replaced it.
func (r *repositories) MarkEmailVerified(ctx context.Context, userID uuid.UUID, otp string, at time.Time) (bool, error) {
	query := `UPDATE users SET otp = NULL, otp_expiry = NULL, email_verified_at = COALESCE(email_verified_at, $1), updated_at = $1
		WHERE id = $2 AND otp = $3 AND otp_expiry > $1`
	res, err := r.db.ExecContext(ctx, query, at, userID, otp)
	if err != nil {
		r.log.Error(ctx, "error mark email verified", err)
		return false, errors.InternalServerError("error mark email verified")
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error mark email verified", err)
		return false, errors.InternalServerError("error mark email verified")
	}
	return n == 1, nil
}

// UpdateRole implements Repositories.
func (r *repositories) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	return r.exec(ctx, "update role", `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`, role, time.Now().UTC(), userID)
}

// UpdateImage implements Repositories.
func (r *repositories) UpdateImage(ctx context.Context, userID uuid.UUID, image string) error {
	return r.exec(ctx, "update image", `UPDATE users SET image = $1, updated_at = $2 WHERE id = $3`, image, time.Now().UTC(), userID)
}

// ClearExpiredOtps implements Repositories.
func (r *repositories) ClearExpiredOtps(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET otp = NULL, otp_expiry = NULL WHERE otp_expiry IS NOT NULL AND otp_expiry <= $1`, now)
	if err != nil {
		r.log.Error(ctx, "error clear expired otps", err)
		return 0, errors.InternalServerError("error clear expired otps")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.InternalServerError(fmt.Sprintf("error clear expired otps: %v", err))
	}
	return n, nil
}
