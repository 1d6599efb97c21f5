package rabbit

import (
	"context"
	"encoding/json"
	"log"

	"storefront-service/internal/dto"
	"storefront-service/internal/service"
)

// PaymentConsumer applies gateway-originated payment confirmations to orders.
type PaymentConsumer struct {
	Service *service.OrderService
}

func NewPaymentConsumer(s *service.OrderService) *PaymentConsumer {
	return &PaymentConsumer{Service: s}
}

type paymentConfirmedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		OrderID       string `json:"orderId"`
		PaymentResult struct {
			ID           string `json:"id"`
			Status       string `json:"status"`
			EmailAddress string `json:"email_address"`
		} `json:"paymentResult"`
	} `json:"message"`
}

func (c *PaymentConsumer) Handle(msg []byte) error {
	log.Println("[Rabbit] event received: payment_confirmed")

	var event paymentConfirmedMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Println("error parsing message:", err)
		return err
	}

	_, err := c.Service.MarkPaid(
		context.Background(),
		event.Message.OrderID,
		dto.PaymentResultDTO{
			ID:           event.Message.PaymentResult.ID,
			Status:       event.Message.PaymentResult.Status,
			EmailAddress: event.Message.PaymentResult.EmailAddress,
		},
	)
	if err != nil {
		log.Println("error marking order paid:", err)
		return err
	}

	log.Println("payment recorded for order:", event.Message.OrderID)
	return nil
}
