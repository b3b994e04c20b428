package publisher

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel channel
	Log     *zap.Logger
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queues ...string) (contracts.EventPublisher, error) {
	ch, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range queues {
		_, err := ch.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
	}

	return newPublisher(ch, logger), nil
}

func newPublisher(ch channel, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: ch,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		Priority:      0,
		Headers:       headers,
		CorrelationId: requestID,
	}

	err = p.Channel.PublishWithContext(ctx, "", queueName, false, false, message)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}

	p.Log.Debug("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
	)
	return nil
}
