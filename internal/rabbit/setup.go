// setup.go
package rabbit

import (
	"log"

	"github.com/rabbitmq/amqp091-go"

	"storefront-service/internal/service"
)

const paymentConfirmedExchange = "payment_confirmed"

func SetupConsumers(ch *amqp091.Channel, svc *service.OrderService) {
	consumer := NewPaymentConsumer(svc)

	// 1. Declare the queue
	q, err := ch.QueueDeclare(
		"storefront_payment_confirmations",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("error declaring queue:", err)
		return
	}

	// 2. Bind to the fanout exchange
	err = ch.ExchangeDeclare(
		paymentConfirmedExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("error declaring exchange:", err)
		return
	}
	err = ch.QueueBind(
		q.Name,
		"", // fanout ignores routing key
		paymentConfirmedExchange,
		false,
		nil,
	)
	if err != nil {
		log.Println("error binding exchange:", err)
		return
	}

	// 3. Consume
	msgs, err := ch.Consume(
		q.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("error consuming queue:", err)
		return
	}

	go func() {
		for m := range msgs {
			consumer.Handle(m.Body)
		}
	}()

	log.Println("subscribed to exchange payment_confirmed (fanout)")
}
