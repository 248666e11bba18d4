package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"camera-rental-service/internal/module/user/models/entity"
	"camera-rental-service/internal/module/user/repositories"
	"camera-rental-service/internal/pkg/errors"
	log_internal "camera-rental-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
	ctx  = context.Background()

	userCols = []string{"id", "name", "email", "role", "image", "phone", "otp", "otp_expiry", "email_verified_at", "created_at", "updated_at"}
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.New(log_internal.Setup()), nil)
}

func teardown() {
	dbx.Close()
}

func TestInsertUser(t *testing.T) {
	setup()
	defer teardown()

	user := entity.User{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Role: entity.RoleUser, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	query := regexp.QuoteMeta("INSERT INTO users (id, name, email, role, phone, created_at, updated_at)")

	testCases := []struct {
		name          string
		mockFn        func()
		expectedError error
	}{
		{
			name: "success",
			mockFn: func() {
				mock.ExpectExec(query).WillReturnResult(sqlxmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email",
			mockFn: func() {
				mock.ExpectExec(query).WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
			},
			expectedError: errors.Conflict("email already registered"),
		},
		{
			name: "database error",
			mockFn: func() {
				mock.ExpectExec(query).WillReturnError(sql.ErrConnDone)
			},
			expectedError: errors.InternalServerError("error insert user"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockFn()

			err := repo.InsertUser(ctx, user)

			assert.Equal(t, tc.expectedError, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByEmail(t *testing.T) {
	setup()
	defer teardown()

	id := uuid.New()
	now := time.Now().UTC()
	query := regexp.QuoteMeta("FROM users WHERE LOWER(email) = LOWER($1)")

	t.Run("found", func(t *testing.T) {
		rows := sqlxmock.NewRows(userCols).AddRow(id, "Rina", "rina@example.com", "USER", nil, "+628123", "hash", now, nil, now, now)
		mock.ExpectQuery(query).WithArgs("RINA@example.com").WillReturnRows(rows)

		user, err := repo.FindUserByEmail(ctx, "RINA@example.com")

		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "+628123", user.Phone.String)
		assert.False(t, user.Image.Valid)
		assert.True(t, user.HasOtp())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(sql.ErrNoRows)

		user, err := repo.FindUserByEmail(ctx, "nobody@example.com")

		assert.NoError(t, err)
		assert.Equal(t, uuid.Nil, user.ID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOtp(t *testing.T) {
	setup()
	defer teardown()

	id := uuid.New()
	expiry := time.Now().Add(5 * time.Minute)
	query := regexp.QuoteMeta("UPDATE users SET otp = $1, otp_expiry = $2, updated_at = $3 WHERE id = $4")

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("hash", expiry, sqlxmock.AnyArg(), id).WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.SetOtp(ctx, id, "hash", expiry))
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("hash", expiry, sqlxmock.AnyArg(), id).WillReturnResult(sqlxmock.NewResult(0, 0))

		assert.Equal(t, errors.NotFound("user not found"), repo.SetOtp(ctx, id, "hash", expiry))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEmailVerified(t *testing.T) {
	setup()
	defer teardown()

	id := uuid.New()
	at := time.Now().UTC()
	query := regexp.QuoteMeta(`UPDATE users SET otp = NULL, otp_expiry = NULL, email_verified_at = COALESCE(email_verified_at, $1), updated_at = $1
		WHERE id = $2 AND otp = $3 AND otp_expiry > $1`)

	t.Run("consumes the stored code", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(at, id, "hash").WillReturnResult(sqlxmock.NewResult(0, 1))

		consumed, err := repo.MarkEmailVerified(ctx, id, "hash", at)

		assert.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("code already consumed", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(at, id, "hash").WillReturnResult(sqlxmock.NewResult(0, 0))

		consumed, err := repo.MarkEmailVerified(ctx, id, "hash", at)

		assert.NoError(t, err)
		assert.False(t, consumed)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(at, id, "hash").WillReturnError(sql.ErrConnDone)

		_, err := repo.MarkEmailVerified(ctx, id, "hash", at)

		assert.Equal(t, errors.InternalServerError("error mark email verified"), err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRole(t *testing.T) {
	setup()
	defer teardown()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("ADMIN", sqlxmock.AnyArg(), id).
		WillReturnError(sql.ErrConnDone)

	assert.Equal(t, errors.InternalServerError("error update role"), repo.UpdateRole(ctx, id, "ADMIN"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearExpiredOtps(t *testing.T) {
	setup()
	defer teardown()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET otp = NULL, otp_expiry = NULL WHERE otp_expiry IS NOT NULL AND otp_expiry <= $1")).
		WithArgs(now).
		WillReturnResult(sqlxmock.NewResult(0, 4))

	n, err := repo.ClearExpiredOtps(ctx, now)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
