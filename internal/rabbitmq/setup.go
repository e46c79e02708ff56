package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// AuditExchange — exchange для событий аудита панели.
const AuditExchange = "admin.audit"

// AuditQueue — очередь, из которой внешний воркер доставляет события в чат.
const AuditQueue = "admin.audit.events"

// AuditRoutingKey — ключ маршрутизации событий аудита.
const AuditRoutingKey = "audit"

// SetupChannel открывает канал и объявляет exchange и очередь аудита.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		AuditExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		AuditQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.QueueBind(AuditQueue, AuditRoutingKey, AuditExchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}
