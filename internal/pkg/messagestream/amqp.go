package messagestream

import (
	"camera-rental-service/config"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	TopicBookingStatusChanged = "booking_status_changed"
	TopicOtpIssued            = "otp_issued"
	TopicPoisoned             = "poisoned_queue"
)

type Ampq struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Ampq{
		cfg:    amqp.NewDurableQueueConfig(uri),
		logger: NewLoggerAdapter(),
	}
}

func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Ampq) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

// Publish marshals payload as JSON and publishes it on topic.
func Publish(publisher message.Publisher, topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshal %s payload: %w", topic, err)
	}
	return publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), body))
}
