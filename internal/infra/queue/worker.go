package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/santoscleaning/website-api/pkg/logger"
	"github.com/santoscleaning/website-api/pkg/metrics"
)

// NotificationSender delivers a notification to the office. The mail
// package implements it; anything else (SMS, chat) could too.
type NotificationSender interface {
	SendNotification(payload NotificationPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
	Log     logger.Logger
}

func NewWorker(ch *amqp.Channel, sender NotificationSender, log logger.Logger) *Worker {
	return &Worker{Channel: ch, Sender: sender, Log: log}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatal("failed to register queue consumer", "error", err)
	}

	w.Log.Info("notification worker waiting on queue", "queue", queueName)

	for d := range msgs {
		var payload NotificationPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Error("malformed notification, rejecting", "error", err)
			// No requeue: a malformed message stays malformed.
			d.Nack(false, false)
			continue
		}

		if err := w.Sender.SendNotification(payload); err != nil {
			w.Log.Error("notification delivery failed", "kind", payload.Kind, "error", err)
			metrics.RecordNotificationError()
			d.Nack(false, false)
			continue
		}

		w.Log.Info("notification delivered", "kind", payload.Kind, "name", payload.Name)
		d.Ack(false)
	}
}
