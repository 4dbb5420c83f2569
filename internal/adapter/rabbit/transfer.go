package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/metrics"
	"github.com/dauletm/pickup-share/pkg/rabbit"
)

const (
	TransferExchange = "transfer_topic"

	KeyPassengerCreated = "passenger.created"
	KeyTransferCreated  = "transfer.created"
	KeyTransferRedeemed = "transfer.redeemed"
)

// TransferBroker publishes share/import lifecycle events. Publishing is
// best-effort: the HTTP request that triggered the event never fails because
// the broker is down.
type TransferBroker struct {
	client   *rabbit.RabbitMQ
	exchange string

	l logger.Logger
}

func NewTransferBroker(client *rabbit.RabbitMQ, log logger.Logger) *TransferBroker {
	return &TransferBroker{
		client:   client,
		exchange: TransferExchange,

		l: log,
	}
}

func (b *TransferBroker) PublishPassengerCreated(ctx context.Context, msg models.PassengerCreatedMessage) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_passenger_created")
	return b.publish(ctx, KeyPassengerCreated, msg)
}

func (b *TransferBroker) PublishTransferCreated(ctx context.Context, msg models.TransferCreatedMessage) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_transfer_created")
	return b.publish(ctx, KeyTransferCreated, msg)
}

func (b *TransferBroker) PublishTransferRedeemed(ctx context.Context, msg models.TransferRedeemedMessage) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_transfer_redeemed")
	return b.publish(ctx, KeyTransferRedeemed, msg)
}

func (b *TransferBroker) publish(ctx context.Context, key string, msg any) (err error) {
	defer func() { metrics.RecordPublish("pickup-share", b.exchange, err) }()

	if err := b.client.EnsureConnection(ctx); err != nil {
		b.l.Error(ctx, "ensure connection failed", err)
		return wrap.Error(ctx, err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to marshal message: %w", err))
	}

	if err := retry(3, time.Second, func() error {
		return b.client.Channel.PublishWithContext(
			ctx,
			b.exchange, // exchange
			key,        // routing key
			false,      // mandatory
			false,      // immediate
			amqp091.Publishing{
				ContentType: "application/json",
				Body:        body,
				Timestamp:   time.Now(),
			},
		)
	}); err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to publish %s: %w", key, err))
	}

	return nil
}
