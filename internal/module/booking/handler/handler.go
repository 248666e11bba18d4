package handler

import (
	"camera-rental-service/internal/module/booking/models/request"
	"camera-rental-service/internal/module/booking/usecases"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func actorFrom(ctx *fiber.Ctx) request.Actor {
	userID, _ := ctx.Locals("user_id").(uuid.UUID)
	email, _ := ctx.Locals("email_user").(string)
	role, _ := ctx.Locals("role").(string)
	return request.Actor{UserID: userID, Email: email, Role: role}
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), actorFrom(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking, please continue to payment")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CancelBooking(ctx.UserContext(), actorFrom(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel booking")
}

func (h *BookingHandler) RefundBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.RefundBooking(ctx.UserContext(), actorFrom(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error refund booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success refund booking")
}

func (h *BookingHandler) CompleteBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CompleteBooking(ctx.UserContext(), actorFrom(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success complete booking")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBooking(ctx.UserContext(), actorFrom(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), actorFrom(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ListCameraBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListCameraBookings(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list camera bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list camera bookings")
}

func (h *BookingHandler) CheckAvailability(ctx *fiber.Ctx) error {
	var req request.Availability
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CheckAvailability(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check availability")
}

func (h *BookingHandler) CreatePayment(ctx *fiber.Ctx) error {
	var req request.CreatePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreatePayment(ctx.UserContext(), actorFrom(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create payment")
}

func (h *BookingHandler) GetPayment(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetPayment(ctx.UserContext(), actorFrom(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get payment")
}

// PaymentNotification acknowledges anything the gateway must not retry: unknown orders
// and callbacks that contradict a terminal state. Transient failures answer 500.
func (h *BookingHandler) PaymentNotification(ctx *fiber.Ctx) error {
	header := http.Header{}
	ctx.Request().Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})

	resp, err := h.Usecase.HandleNotification(ctx.UserContext(), ctx.Params("provider"), ctx.Body(), header)
	if err == nil {
		return helpers.RespSuccess(ctx, h.Log, resp, "notification processed")
	}

	switch errors.KindOf(err) {
	case errors.KindNotFound, errors.KindInconsistency:
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("payment notification acknowledged: %v", err))
		return helpers.RespSuccess(ctx, h.Log, resp, "notification acknowledged")
	case errors.KindValidation, errors.KindUnauthorized, errors.KindForbidden:
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error invalid payment notification: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error process payment notification: %v", err))
	return helpers.RespError(ctx, h.Log, errors.InternalServerError("error process payment notification"))
}

func (h *BookingHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.SetPaymentExpired(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}
