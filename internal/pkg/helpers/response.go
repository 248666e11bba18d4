package helpers

import (
	stderrors "errors"
	"fmt"

	"camera-rental-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespWithStatus(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespWithStatus(ctx, log, fiber.StatusCreated, data, message)
}

func RespWithStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Debug(fmt.Sprintf("response %d: %s", status, message))
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError writes a CustomError with its own status code; anything else becomes a 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	var ce *errors.CustomError
	if stderrors.As(err, &ce) {
		return ctx.Status(ce.HttpCode).JSON(Response{
			Message: ce.Message,
			Code:    string(ce.Kind),
		})
	}

	log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unhandled error: %v", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(Response{
		Message: "internal server error",
		Code:    string(errors.KindInternal),
	})
}
