package handler

import (
	"camera-rental-service/internal/module/notification/models/request"
	"camera-rental-service/internal/module/notification/usecases"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/messagestream"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Publish   message.Publisher
	Usecase   usecases.Usecase
}

// poison parks a message that can never succeed and acks the original.
func (h *NotificationHandler) poison(msg *message.Message, topic string, cause error) error {
	err := messagestream.Publish(h.Publish, messagestream.TopicPoisoned, request.PoisonedQueue{
		TopicTarget: topic,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	})
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		return err
	}
	return nil
}

// decode unmarshals and validates the payload; the error is never worth a retry.
func (h *NotificationHandler) decode(msg *message.Message, v interface{}) error {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("error unmarshal message: %w", err)
	}
	if err := h.Validator.Struct(v); err != nil {
		return fmt.Errorf("error validate message: %w", err)
	}
	return nil
}

// settle turns a usecase error into the router outcome: nil acks, an error retries.
func (h *NotificationHandler) settle(msg *message.Message, topic string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsRetryable(err) {
		h.Log.Ctx(msg.Context()).Warn(fmt.Sprintf("retry %s message %s: %v", topic, msg.UUID, err))
		return err
	}
	h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("drop %s message %s: %v", topic, msg.UUID, err))
	return h.poison(msg, topic, err)
}

func (h *NotificationHandler) ConsumeOtpIssued(msg *message.Message) error {
	var req request.OtpIssued
	if err := h.decode(msg, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(err.Error())
		return h.poison(msg, messagestream.TopicOtpIssued, err)
	}

	return h.settle(msg, messagestream.TopicOtpIssued, h.Usecase.SendOtp(msg.Context(), &req))
}

func (h *NotificationHandler) ConsumeBookingStatusChanged(msg *message.Message) error {
	var req request.BookingStatusChanged
	if err := h.decode(msg, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(err.Error())
		return h.poison(msg, messagestream.TopicBookingStatusChanged, err)
	}

	return h.settle(msg, messagestream.TopicBookingStatusChanged, h.Usecase.SendBookingStatus(msg.Context(), &req))
}
