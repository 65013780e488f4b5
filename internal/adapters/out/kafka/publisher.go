// Package kafka announces order events on a Kafka topic. Each event becomes
// one JSON message keyed by order id, so all events of an order land on the
// same partition in the order they happened.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is the JSON body written for every event.
type Message struct {
	EventID    kernel.UUID  `json:"eventId"`
	Type       string       `json:"type"`
	OrderID    kernel.UUID  `json:"orderId"`
	OccurredAt time.Time    `json:"occurredAt"`
	ResellerID *kernel.UUID `json:"resellerId,omitempty"`
	CustomerID *kernel.UUID `json:"customerId,omitempty"`
	StatusID   *kernel.UUID `json:"statusId,omitempty"`
	ItemCount  int          `json:"itemCount,omitempty"`
	FromStatus *kernel.UUID `json:"fromStatusId,omitempty"`
	ToStatus   *kernel.UUID `json:"toStatusId,omitempty"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on a kafka-go Writer.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewPublisher writes to topic on the comma separated brokers.
func NewPublisher(brokersCSV string, topic string, logger *slog.Logger) *Publisher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return newPublisher(&kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
	}, logger)
}

func newPublisher(w messageWriter, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{writer: w, logger: logger.With("component", "kafka_publisher")}
}

func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		body, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.Name(), err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:     []byte(e.OrderID().String()),
			Value:   body,
			Time:    e.OccurredAt(),
			Headers: []kafkago.Header{{Key: "event-type", Value: []byte(e.Name())}},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write order events: %w", err)
	}

	p.logger.DebugContext(ctx, "order events published", "count", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e order.Event) Message {
	m := Message{
		EventID:    kernel.NewUUID(),
		Type:       e.Name(),
		OrderID:    e.OrderID(),
		OccurredAt: e.OccurredAt().UTC(),
	}

	switch ev := e.(type) {
	case order.CreatedEvent:
		reseller, customer, st := ev.ResellerID(), ev.CustomerID(), ev.StatusID()
		m.ResellerID, m.CustomerID, m.StatusID = &reseller, &customer, &st
		m.ItemCount = ev.ItemCount()
	case order.StatusChangedEvent:
		from, to := ev.FromStatusID(), ev.ToStatusID()
		m.FromStatus, m.ToStatus = &from, &to
	}
	return m
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...order.Event) error { return nil }

func (NopPublisher) Close() error { return nil }
