package messaging

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is the payload published after an order commits.
type OrderPlacedEvent struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	LineCount  int             `json:"line_count"`
	PlacedAt   time.Time       `json:"placed_at"`
}

// OrderEventProducer publishes order events to Kafka. A nil writer
// disables publishing, which lets the service run without a broker.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(broker, topic string) *OrderEventProducer {
	if broker == "" {
		return &OrderEventProducer{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	if p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

func (p *OrderEventProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
