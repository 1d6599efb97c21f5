package rabbit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"storefront-service/internal/model"
)

const orderPlacedExchange = "order_placed"

// Publisher announces placed orders on a fanout exchange so downstream
// services (fulfilment, notifications) can react.
type Publisher struct {
	ch *amqp091.Channel
}

func NewPublisher(ch *amqp091.Channel) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		orderPlacedExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

type orderPlacedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		OrderID    string `json:"orderId"`
		Number     string `json:"number"`
		UserID     string `json:"userId"`
		TotalCents int64  `json:"totalCents"`
		Items      []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"items"`
	} `json:"message"`
}

func (p *Publisher) OrderPlaced(ctx context.Context, o *model.Order) error {
	var msg orderPlacedMessage
	msg.CorrelationID = uuid.NewString()
	msg.Exchange = orderPlacedExchange
	msg.Message.OrderID = o.ID.Hex()
	msg.Message.Number = o.Number
	msg.Message.UserID = o.UserID.Hex()
	msg.Message.TotalCents = o.TotalCents
	for _, it := range o.Items {
		msg.Message.Items = append(msg.Message.Items, struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}{ProductID: it.ProductID.Hex(), Quantity: it.Quantity})
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx,
		orderPlacedExchange,
		"", // fanout ignores routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
