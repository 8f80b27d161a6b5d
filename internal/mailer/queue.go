package mailer

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/test309-web/job-platform/internal/config"
	"github.com/test309-web/job-platform/internal/domain"
)

// QueueName is the durable queue shared by the API (publisher) and the mail
// worker (consumer).
const QueueName = "email_queue"

type Queue struct {
	cfg     *config.Config
	channel *amqp.Channel
}

// NewQueue declares the durable queue on the given channel and returns a
// publisher bound to it.
func NewQueue(cfg *config.Config, channel *amqp.Channel) (*Queue, error) {
	if _, err := channel.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, err
	}

	return &Queue{
		cfg:     cfg,
		channel: channel,
	}, nil
}

func (q *Queue) Publish(ctx context.Context, message domain.MailMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(q.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return q.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
