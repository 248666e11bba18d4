package helpers_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	log_internal "camera-rental-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespError(t *testing.T) {
	logMock := log_internal.Setup()

	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody helpers.Response
	}{
		{
			name:         "custom conflict",
			err:          errors.Conflict("camera unavailable for requested dates"),
			expectedCode: fiber.StatusConflict,
			expectedBody: helpers.Response{Message: "camera unavailable for requested dates", Code: "CONFLICT"},
		},
		{
			name:         "plain error",
			err:          io.ErrUnexpectedEOF,
			expectedCode: fiber.StatusInternalServerError,
			expectedBody: helpers.Response{Message: "internal server error", Code: "INTERNAL_ERROR"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return helpers.RespError(c, logMock, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			var body helpers.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestRespSuccess(t *testing.T) {
	logMock := log_internal.Setup()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, logMock, map[string]string{"id": "1"}, "ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "1"}, body["data"])
}

func TestParseDate(t *testing.T) {
	d, err := helpers.ParseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = helpers.ParseDate("2024-06-01T10:00:00+07:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC), d)

	_, err = helpers.ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	got := helpers.StartOfDay(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDurationCalculation(t *testing.T) {
	assert.Equal(t, time.Duration(0), helpers.DurationCalculation(time.Now().Add(-time.Hour)))
	assert.Greater(t, helpers.DurationCalculation(time.Now().Add(time.Hour)), 59*time.Minute)
}
