package usecases

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/user/models/entity"
	"camera-rental-service/internal/module/user/models/request"
	"camera-rental-service/internal/module/user/models/response"
	"camera-rental-service/internal/module/user/repositories"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/messagestream"
	"camera-rental-service/internal/pkg/metrics"
	"camera-rental-service/internal/pkg/storage"
	"camera-rental-service/internal/pkg/token"
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"mime/multipart"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.elastic.co/apm"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgOtpIncorrect = "otp code incorrect"
	msgOtpExpired   = "otp code expired"

	defaultOtpLength = 6
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	token     *token.Manager
	storage   storage.Storage
	metrics   *metrics.Metrics
	cfg       *config.Config
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.User, error)
	IssueOtp(ctx context.Context, payload *request.IssueOtp) (response.Otp, error)
	VerifyOtp(ctx context.Context, payload *request.VerifyOtp) (response.Login, error)
	ElevateRole(ctx context.Context, actorRole string, userID string) (response.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error)
	UploadImage(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (response.User, error)
	// scheduler
	ClearExpiredOtps(ctx context.Context) (int64, error)
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, tm *token.Manager, st storage.Storage, m *metrics.Metrics, cfg *config.Config) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		token:     tm,
		storage:   st,
		metrics:   m,
		cfg:       cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOtp returns a zero padded numeric code of the given length.
func generateOtp(length int) (string, error) {
	if length <= 0 {
		length = defaultOtpLength
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

func toUserResponse(u entity.User) response.User {
	return response.User{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Image:         u.Image.String,
		Phone:         u.Phone.String,
		EmailVerified: u.EmailVerifiedAt.Valid,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.User, error) {
	now := time.Now().UTC()
	user := entity.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(payload.Name),
		Email:     normalizeEmail(payload.Email),
		Role:      entity.RoleUser,
		Phone:     sql.NullString{String: payload.Phone, Valid: payload.Phone != ""},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.InsertUser(ctx, user); err != nil {
		u.log.Error(ctx, "error register user", err)
		return response.User{}, err
	}

	return toUserResponse(user), nil
}

func (u *usecase) IssueOtp(ctx context.Context, payload *request.IssueOtp) (response.Otp, error) {
	span, ctx := apm.StartSpan(ctx, "IssueOtp", "usecase")
	defer span.End()

	email := normalizeEmail(payload.Email)
	user, err := u.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return response.Otp{}, err
	}
	if user.ID == uuid.Nil {
		return response.Otp{}, errors.NotFound("user not found")
	}

	allowed, err := u.repo.ThrottleOtp(ctx, email, u.cfg.Otp.ResendInterval)
	if err != nil {
		return response.Otp{}, err
	}
	if !allowed {
		return response.Otp{}, errors.Conflict("otp already sent, retry later")
	}

	// a failed issue must not lock the caller out for the resend interval
	fail := func(err error) (response.Otp, error) {
		if rerr := u.repo.ReleaseOtpThrottle(ctx, email); rerr != nil {
			u.log.Warn(ctx, "error release otp throttle", rerr)
		}
		return response.Otp{}, err
	}

	code, err := generateOtp(u.cfg.Otp.Length)
	if err != nil {
		u.log.Error(ctx, "error generate otp", err)
		return fail(errors.InternalServerError("error generate otp"))
	}

	cost := u.cfg.Otp.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		u.log.Error(ctx, "error hash otp", err)
		return fail(errors.InternalServerError("error hash otp"))
	}

	expiry := time.Now().UTC().Add(u.cfg.Otp.TTL)
	if err := u.repo.SetOtp(ctx, user.ID, string(hash), expiry); err != nil {
		return fail(err)
	}
	if err := u.repo.ResetOtpAttempts(ctx, user.ID); err != nil {
		u.log.Warn(ctx, "error reset otp attempts", err)
	}

	event := request.OtpIssued{Name: user.Name, Email: user.Email, Code: code, ExpiresAt: expiry}
	if err := messagestream.Publish(u.publisher, messagestream.TopicOtpIssued, event); err != nil {
		u.log.Error(ctx, "error publish otp issued", err)
		return fail(errors.ExternalError("error dispatch otp"))
	}
	u.metrics.OtpIssued.Inc()

	return response.Otp{Email: user.Email, ExpiresAt: expiry.Format(time.RFC3339)}, nil
}

func (u *usecase) VerifyOtp(ctx context.Context, payload *request.VerifyOtp) (response.Login, error) {
	span, ctx := apm.StartSpan(ctx, "VerifyOtp", "usecase")
	defer span.End()

	user, err := u.repo.FindUserByEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		return response.Login{}, err
	}

	now := time.Now().UTC()
	switch {
	case user.ID == uuid.Nil, !user.HasOtp():
		u.metrics.OtpVerifications.WithLabelValues("incorrect").Inc()
		return response.Login{}, errors.BadRequest(msgOtpIncorrect)

	case user.OtpExpired(now):
		if err := u.repo.ClearOtp(ctx, user.ID); err != nil {
			u.log.Warn(ctx, "error clear expired otp", err)
		}
		u.metrics.OtpVerifications.WithLabelValues("expired").Inc()
		return response.Login{}, errors.BadRequest(msgOtpExpired)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Otp.String), []byte(payload.Code)); err != nil {
		u.metrics.OtpVerifications.WithLabelValues("incorrect").Inc()
		u.burnAttempt(ctx, user, now)
		return response.Login{}, errors.BadRequest(msgOtpIncorrect)
	}

	consumed, err := u.repo.MarkEmailVerified(ctx, user.ID, user.Otp.String, now)
	if err != nil {
		return response.Login{}, err
	}
	if !consumed {
		u.metrics.OtpVerifications.WithLabelValues("incorrect").Inc()
		return response.Login{}, errors.BadRequest(msgOtpIncorrect)
	}
	if err := u.repo.ResetOtpAttempts(ctx, user.ID); err != nil {
		u.log.Warn(ctx, "error reset otp attempts", err)
	}
	user.EmailVerifiedAt = sql.NullTime{Time: now, Valid: true}

	access, err := u.token.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		u.log.Error(ctx, "error issue access token", err)
		return response.Login{}, errors.InternalServerError("error issue access token")
	}
	u.metrics.OtpVerifications.WithLabelValues("verified").Inc()

	return response.Login{
		User:        toUserResponse(user),
		AccessToken: access.Token,
		ExpiresAt:   access.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// burnAttempt counts a wrong code and drops the otp once MaxAttempts is reached.
func (u *usecase) burnAttempt(ctx context.Context, user entity.User, now time.Time) {
	if u.cfg.Otp.MaxAttempts <= 0 {
		return
	}
	attempts, err := u.repo.IncrOtpAttempts(ctx, user.ID, user.OtpExpiry.Time.Sub(now))
	if err != nil {
		u.log.Warn(ctx, "error count otp attempt", err)
		return
	}
	if attempts < u.cfg.Otp.MaxAttempts {
		return
	}
	if err := u.repo.ClearOtp(ctx, user.ID); err != nil {
		u.log.Warn(ctx, "error clear otp after max attempts", err)
	}
	if err := u.repo.ResetOtpAttempts(ctx, user.ID); err != nil {
		u.log.Warn(ctx, "error reset otp attempts", err)
	}
}

func (u *usecase) ElevateRole(ctx context.Context, actorRole string, userID string) (response.User, error) {
	if actorRole != entity.RoleAdmin {
		return response.User{}, errors.Forbidden("admin role required")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return response.User{}, errors.BadRequest("invalid user id")
	}

	user, err := u.repo.FindUserByID(ctx, id)
	if err != nil {
		return response.User{}, err
	}
	if user.ID == uuid.Nil {
		return response.User{}, errors.NotFound("user not found")
	}
	if user.IsAdmin() {
		return toUserResponse(user), nil
	}

	if err := u.repo.UpdateRole(ctx, id, entity.RoleAdmin); err != nil {
		u.log.Error(ctx, "error elevate role", err)
		return response.User{}, err
	}
	user.Role = entity.RoleAdmin

	return toUserResponse(user), nil
}

func (u *usecase) GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	if user.ID == uuid.Nil {
		return response.User{}, errors.NotFound("user not found")
	}
	return toUserResponse(user), nil
}

func (u *usecase) UploadImage(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (response.User, error) {
	if err := storage.Validate(fh, u.cfg.Storage.MaxSize); err != nil {
		return response.User{}, err
	}

	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	if user.ID == uuid.Nil {
		return response.User{}, errors.NotFound("user not found")
	}

	file, err := u.storage.Save(ctx, "users", fh)
	if err != nil {
		u.log.Error(ctx, "error save profile image", err)
		return response.User{}, err
	}

	if err := u.repo.UpdateImage(ctx, userID, file.URL); err != nil {
		if derr := u.storage.Delete(ctx, file.Path); derr != nil {
			u.log.Warn(ctx, "error delete orphan profile image", derr)
		}
		return response.User{}, err
	}
	user.Image = sql.NullString{String: file.URL, Valid: true}

	return toUserResponse(user), nil
}

func (u *usecase) ClearExpiredOtps(ctx context.Context) (int64, error) {
	n, err := u.repo.ClearExpiredOtps(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.log.Info(ctx, fmt.Sprintf("cleared %d expired otp codes", n))
	}
	return n, nil
}
