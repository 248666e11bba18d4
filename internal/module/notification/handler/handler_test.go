package handler_test

import (
	"camera-rental-service/internal/module/notification/handler"
	"camera-rental-service/internal/module/notification/mocks"
	"camera-rental-service/internal/module/notification/models/request"
	"camera-rental-service/internal/pkg/errors"
	log_internal "camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/messagestream"
	validator_internal "camera-rental-service/internal/pkg/validator"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	messages map[string][]*message.Message
}

// Publish implements message.Publisher.
func (c *capturePublisher) Publish(topic string, messages ...*message.Message) error {
	c.messages[topic] = append(c.messages[topic], messages...)
	return nil
}

// Close implements message.Publisher.
func (c *capturePublisher) Close() error {
	return nil
}

var (
	h         *handler.NotificationHandler
	ucm       *mocks.Usecase
	publisher *capturePublisher
)

func setup() {
	ucm = &mocks.Usecase{}
	publisher = &capturePublisher{messages: map[string][]*message.Message{}}
	h = &handler.NotificationHandler{
		Log:       log_internal.Setup(),
		Validator: validator_internal.New(),
		Publish:   publisher,
		Usecase:   ucm,
	}
}

func newMessage(t *testing.T, payload interface{}) *message.Message {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), raw)
}

func TestConsumeOtpIssued(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		setup()
		ucm.On("SendOtp", mock.Anything, mock.MatchedBy(func(r *request.OtpIssued) bool { return r.Code == "123456" })).Return(nil).Once()

		err := h.ConsumeOtpIssued(newMessage(t, request.OtpIssued{Email: "rina@example.com", Code: "123456"}))

		assert.NoError(t, err)
		assert.Empty(t, publisher.messages[messagestream.TopicPoisoned])
	})

	t.Run("malformed payload is poisoned", func(t *testing.T) {
		setup()

		err := h.ConsumeOtpIssued(message.NewMessage(watermill.NewUUID(), []byte("{")))

		assert.NoError(t, err)
		require.Len(t, publisher.messages[messagestream.TopicPoisoned], 1)
		var parked request.PoisonedQueue
		require.NoError(t, json.Unmarshal(publisher.messages[messagestream.TopicPoisoned][0].Payload, &parked))
		assert.Equal(t, messagestream.TopicOtpIssued, parked.TopicTarget)
		ucm.AssertNotCalled(t, "SendOtp", mock.Anything, mock.Anything)
	})

	t.Run("missing email is poisoned", func(t *testing.T) {
		setup()

		err := h.ConsumeOtpIssued(newMessage(t, request.OtpIssued{Code: "123456"}))

		assert.NoError(t, err)
		assert.Len(t, publisher.messages[messagestream.TopicPoisoned], 1)
	})

	t.Run("smtp down is retried", func(t *testing.T) {
		setup()
		ucm.On("SendOtp", mock.Anything, mock.Anything).Return(errors.ExternalError("error send mail")).Once()

		err := h.ConsumeOtpIssued(newMessage(t, request.OtpIssued{Email: "rina@example.com", Code: "123456"}))

		assert.Error(t, err)
		assert.Empty(t, publisher.messages[messagestream.TopicPoisoned])
	})
}

func TestConsumeBookingStatusChanged(t *testing.T) {
	payload := request.BookingStatusChanged{BookingID: "b-1", UserEmail: "rina@example.com", Status: "PAID"}

	t.Run("sent", func(t *testing.T) {
		setup()
		ucm.On("SendBookingStatus", mock.Anything, &payload).Return(nil).Once()

		assert.NoError(t, h.ConsumeBookingStatusChanged(newMessage(t, payload)))
		ucm.AssertExpectations(t)
	})

	t.Run("bad recipient is dropped", func(t *testing.T) {
		setup()
		ucm.On("SendBookingStatus", mock.Anything, mock.Anything).Return(errors.BadRequest("error set to address")).Once()

		err := h.ConsumeBookingStatusChanged(newMessage(t, payload))

		assert.NoError(t, err)
		assert.Len(t, publisher.messages[messagestream.TopicPoisoned], 1)
	})
}
