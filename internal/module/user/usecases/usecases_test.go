package usecases_test

import (
	"bytes"
	"camera-rental-service/config"
	"camera-rental-service/internal/module/user/mocks"
	"camera-rental-service/internal/module/user/models/entity"
	"camera-rental-service/internal/module/user/models/request"
	"camera-rental-service/internal/module/user/usecases"
	"camera-rental-service/internal/pkg/errors"
	log_internal "camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/messagestream"
	"camera-rental-service/internal/pkg/metrics"
	"camera-rental-service/internal/pkg/storage"
	storagemocks "camera-rental-service/internal/pkg/storage/mocks"
	"camera-rental-service/internal/pkg/token"
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	storageMock *storagemocks.Storage
	publisher   *capturePublisher
	tokens      *token.Manager
	ctx         = context.Background()
)

type capturePublisher struct {
	messages map[string][]*message.Message
	err      error
}

// Publish implements message.Publisher.
func (c *capturePublisher) Publish(topic string, messages ...*message.Message) error {
	if c.err != nil {
		return c.err
	}
	c.messages[topic] = append(c.messages[topic], messages...)
	return nil
}

// Close implements message.Publisher.
func (c *capturePublisher) Close() error {
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	storageMock = new(storagemocks.Storage)
	publisher = &capturePublisher{messages: map[string][]*message.Message{}}
	tokens = token.NewManager(&config.JwtConfig{Secret: "secret", TTL: time.Hour, Issuer: "camera-rental-service"})
	cfg := &config.Config{
		Otp:     config.OtpConfig{TTL: 5 * time.Minute, Length: 6, ResendInterval: time.Minute, BcryptCost: bcrypt.MinCost, MaxAttempts: 3},
		Storage: config.StorageConfig{MaxSize: 1024},
	}
	uc = usecases.New(repoMock, log_internal.New(log_internal.Setup()), publisher, tokens, storageMock, metrics.NewMetrics(prometheus.NewRegistry()), cfg)
}

func teardown() {
	uc = nil
	repoMock = nil
	storageMock = nil
	publisher = nil
}

func hashed(t *testing.T, code string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		repoMock.On("InsertUser", ctx, mock.MatchedBy(func(u entity.User) bool {
			return u.Email == "rina@example.com" && u.Role == entity.RoleUser && u.Phone.String == "+628123"
		})).Return(nil).Once()

		resp, err := uc.Register(ctx, &request.Register{Name: " Rina ", Email: "Rina@Example.com", Phone: "+628123"})

		require.NoError(t, err)
		assert.Equal(t, "Rina", resp.Name)
		assert.Equal(t, "USER", resp.Role)
		assert.False(t, resp.EmailVerified)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repoMock.On("InsertUser", ctx, mock.Anything).Return(errors.Conflict("email already registered")).Once()

		_, err := uc.Register(ctx, &request.Register{Name: "Rina", Email: "rina@example.com"})

		assert.Equal(t, errors.Conflict("email already registered"), err)
	})
}

func TestIssueOtp(t *testing.T) {
	setup()
	defer teardown()

	user := entity.User{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Role: entity.RoleUser}

	t.Run("unknown email", func(t *testing.T) {
		repoMock.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(entity.User{}, nil).Once()

		_, err := uc.IssueOtp(ctx, &request.IssueOtp{Email: "nobody@example.com"})

		assert.Equal(t, errors.NotFound("user not found"), err)
	})

	t.Run("throttled", func(t *testing.T) {
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("ThrottleOtp", mock.Anything, user.Email, time.Minute).Return(false, nil).Once()

		_, err := uc.IssueOtp(ctx, &request.IssueOtp{Email: user.Email})

		assert.Equal(t, errors.Conflict("otp already sent, retry later"), err)
	})

	t.Run("stores a hash and publishes the code", func(t *testing.T) {
		var storedHash string
		var storedExpiry time.Time
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("ThrottleOtp", mock.Anything, user.Email, time.Minute).Return(true, nil).Once()
		repoMock.On("SetOtp", mock.Anything, user.ID, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			storedHash = args.String(2)
			storedExpiry = args.Get(3).(time.Time)
		}).Return(nil).Once()
		repoMock.On("ResetOtpAttempts", mock.Anything, user.ID).Return(nil).Once()

		resp, err := uc.IssueOtp(ctx, &request.IssueOtp{Email: "RINA@example.com"})
		require.NoError(t, err)
		assert.Equal(t, user.Email, resp.Email)

		require.Len(t, publisher.messages[messagestream.TopicOtpIssued], 1)
		var event request.OtpIssued
		require.NoError(t, json.Unmarshal(publisher.messages[messagestream.TopicOtpIssued][0].Payload, &event))
		assert.Len(t, event.Code, 6)
		assert.Equal(t, user.Email, event.Email)

		assert.NotEqual(t, event.Code, storedHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(event.Code)))
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), storedExpiry, 5*time.Second)
	})

	t.Run("publisher down", func(t *testing.T) {
		publisher.err = fmt.Errorf("amqp closed")
		defer func() { publisher.err = nil }()
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("ThrottleOtp", mock.Anything, user.Email, time.Minute).Return(true, nil).Once()
		repoMock.On("SetOtp", mock.Anything, user.ID, mock.Anything, mock.Anything).Return(nil).Once()
		repoMock.On("ResetOtpAttempts", mock.Anything, user.ID).Return(nil).Once()
		repoMock.On("ReleaseOtpThrottle", mock.Anything, user.Email).Return(nil).Once()

		_, err := uc.IssueOtp(ctx, &request.IssueOtp{Email: user.Email})

		assert.True(t, errors.Is(err, errors.KindExternal))
		repoMock.AssertCalled(t, "ReleaseOtpThrottle", mock.Anything, user.Email)
	})

	t.Run("store failure releases the throttle", func(t *testing.T) {
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("ThrottleOtp", mock.Anything, user.Email, time.Minute).Return(true, nil).Once()
		repoMock.On("SetOtp", mock.Anything, user.ID, mock.Anything, mock.Anything).Return(errors.InternalServerError("error set otp")).Once()
		repoMock.On("ReleaseOtpThrottle", mock.Anything, user.Email).Return(nil).Once()

		_, err := uc.IssueOtp(ctx, &request.IssueOtp{Email: user.Email})

		assert.Equal(t, errors.InternalServerError("error set otp"), err)
		repoMock.AssertNumberOfCalls(t, "ReleaseOtpThrottle", 2)
	})
}

func TestVerifyOtp(t *testing.T) {
	setup()
	defer teardown()

	withOtp := func(code string, expiry time.Time) entity.User {
		return entity.User{
			ID:        uuid.New(),
			Name:      "Rina",
			Email:     "rina@example.com",
			Role:      entity.RoleUser,
			Otp:       sql.NullString{String: hashed(t, code), Valid: true},
			OtpExpiry: sql.NullTime{Time: expiry, Valid: true},
		}
	}

	t.Run("correct code issues a token", func(t *testing.T) {
		user := withOtp("123456", time.Now().Add(time.Minute))
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("MarkEmailVerified", mock.Anything, user.ID, user.Otp.String, mock.Anything).Return(true, nil).Once()
		repoMock.On("ResetOtpAttempts", mock.Anything, user.ID).Return(nil).Once()

		resp, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "123456"})

		require.NoError(t, err)
		assert.True(t, resp.User.EmailVerified)
		claims, err := tokens.Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, "USER", claims.Role)
	})

	t.Run("code already consumed by a concurrent verify", func(t *testing.T) {
		user := withOtp("123456", time.Now().Add(time.Minute))
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("MarkEmailVerified", mock.Anything, user.ID, user.Otp.String, mock.Anything).Return(false, nil).Once()

		resp, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "123456"})

		assert.Equal(t, errors.BadRequest("otp code incorrect"), err)
		assert.Empty(t, resp.AccessToken)
	})

	t.Run("expired code", func(t *testing.T) {
		user := withOtp("123456", time.Now().Add(-time.Second))
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("ClearOtp", mock.Anything, user.ID).Return(nil).Once()

		_, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "123456"})

		assert.Equal(t, errors.BadRequest("otp code expired"), err)
		repoMock.AssertCalled(t, "ClearOtp", mock.Anything, user.ID)
	})

	t.Run("wrong code", func(t *testing.T) {
		user := withOtp("123456", time.Now().Add(time.Minute))
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("IncrOtpAttempts", mock.Anything, user.ID, mock.Anything).Return(int64(1), nil).Once()

		_, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "654321"})

		assert.Equal(t, errors.BadRequest("otp code incorrect"), err)
		repoMock.AssertNotCalled(t, "ClearOtp", mock.Anything, user.ID)
	})

	t.Run("wrong code at the attempt limit drops the otp", func(t *testing.T) {
		user := withOtp("123456", time.Now().Add(time.Minute))
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		repoMock.On("IncrOtpAttempts", mock.Anything, user.ID, mock.Anything).Return(int64(3), nil).Once()
		repoMock.On("ClearOtp", mock.Anything, user.ID).Return(nil).Once()
		repoMock.On("ResetOtpAttempts", mock.Anything, user.ID).Return(nil).Once()

		_, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "000000"})

		assert.Equal(t, errors.BadRequest("otp code incorrect"), err)
		repoMock.AssertCalled(t, "ClearOtp", mock.Anything, user.ID)
	})

	t.Run("no live code", func(t *testing.T) {
		user := entity.User{ID: uuid.New(), Email: "plain@example.com", Role: entity.RoleUser}
		repoMock.On("FindUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		_, err := uc.VerifyOtp(ctx, &request.VerifyOtp{Email: user.Email, Code: "123456"})

		assert.Equal(t, errors.BadRequest("otp code incorrect"), err)
	})
}

func TestElevateRole(t *testing.T) {
	setup()
	defer teardown()

	user := entity.User{ID: uuid.New(), Name: "Budi", Email: "budi@example.com", Role: entity.RoleUser}

	t.Run("not admin", func(t *testing.T) {
		_, err := uc.ElevateRole(ctx, entity.RoleUser, user.ID.String())
		assert.Equal(t, errors.Forbidden("admin role required"), err)
	})

	t.Run("unknown user", func(t *testing.T) {
		id := uuid.New()
		repoMock.On("FindUserByID", ctx, id).Return(entity.User{}, nil).Once()

		_, err := uc.ElevateRole(ctx, entity.RoleAdmin, id.String())
		assert.Equal(t, errors.NotFound("user not found"), err)
	})

	t.Run("success", func(t *testing.T) {
		repoMock.On("FindUserByID", ctx, user.ID).Return(user, nil).Once()
		repoMock.On("UpdateRole", ctx, user.ID, entity.RoleAdmin).Return(nil).Once()

		resp, err := uc.ElevateRole(ctx, entity.RoleAdmin, user.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.Role)
	})

	t.Run("already admin", func(t *testing.T) {
		admin := user
		admin.Role = entity.RoleAdmin
		repoMock.On("FindUserByID", ctx, admin.ID).Return(admin, nil).Once()

		resp, err := uc.ElevateRole(ctx, entity.RoleAdmin, admin.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.Role)
		repoMock.AssertNumberOfCalls(t, "UpdateRole", 1)
	})
}

func imageHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xff}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(int64(size) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestUploadImage(t *testing.T) {
	setup()
	defer teardown()

	user := entity.User{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Role: entity.RoleUser}

	t.Run("rejects non images", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, user.ID, imageHeader(t, "cv.pdf", "application/pdf", 10))
		assert.True(t, errors.Is(err, errors.KindValidation))
	})

	t.Run("rejects large files", func(t *testing.T) {
		_, err := uc.UploadImage(ctx, user.ID, imageHeader(t, "me.png", "image/png", 2048))
		assert.True(t, errors.Is(err, errors.KindValidation))
	})

	t.Run("saves and stores the url", func(t *testing.T) {
		fh := imageHeader(t, "me.png", "image/png", 100)
		repoMock.On("FindUserByID", ctx, user.ID).Return(user, nil).Once()
		storageMock.On("Save", ctx, "users", fh).Return(storage.File{Name: "1-me-abc.png", Path: "users/1-me-abc.png", URL: "/uploads/users/1-me-abc.png"}, nil).Once()
		repoMock.On("UpdateImage", ctx, user.ID, "/uploads/users/1-me-abc.png").Return(nil).Once()

		resp, err := uc.UploadImage(ctx, user.ID, fh)

		require.NoError(t, err)
		assert.Equal(t, "/uploads/users/1-me-abc.png", resp.Image)
	})

	t.Run("row update failure removes the file", func(t *testing.T) {
		fh := imageHeader(t, "me.png", "image/png", 100)
		repoMock.On("FindUserByID", ctx, user.ID).Return(user, nil).Once()
		storageMock.On("Save", ctx, "users", fh).Return(storage.File{Path: "users/2-me.png", URL: "/uploads/users/2-me.png"}, nil).Once()
		repoMock.On("UpdateImage", ctx, user.ID, "/uploads/users/2-me.png").Return(errors.InternalServerError("error update image")).Once()
		storageMock.On("Delete", ctx, "users/2-me.png").Return(nil).Once()

		_, err := uc.UploadImage(ctx, user.ID, fh)

		assert.Equal(t, errors.InternalServerError("error update image"), err)
		storageMock.AssertExpectations(t)
	})
}

func TestClearExpiredOtps(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("ClearExpiredOtps", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()

	n, err := uc.ClearExpiredOtps(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
