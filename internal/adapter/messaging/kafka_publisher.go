package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	EventOrderPlaced   = "order.placed"
	EventStatusChanged = "order.status_changed"
)

// OrderEvent is the message value published for every order lifecycle change.
type OrderEvent struct {
	Type           string `json:"type"`
	OrderID        string `json:"order_id"`
	RefNumber      string `json:"ref_number"`
	CustomerName   string `json:"customer_name"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
	TotalPrice     string `json:"total_price"`
	Version        int64  `json:"version"`
	ItemCount      int    `json:"item_count"`
	OccurredAt     int64  `json:"occurred_at"`
}

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaOrderPublisher publishes order events keyed by order id, so every
// event of one order lands on the same partition in order.
type KafkaOrderPublisher struct {
	writer kafkaMessageWriter
	now    func() time.Time
}

var _ interfaces.IOrderEventPublisher = (*KafkaOrderPublisher)(nil)

// writerBatchTimeout bounds how long a synchronous publish waits for a batch
// to fill. kafka.Writer defaults to 1s, which every request would pay.
const writerBatchTimeout = 10 * time.Millisecond

// NewKafkaOrderPublisher accepts a comma-separated broker list.
func NewKafkaOrderPublisher(brokers, topic string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{writer: newKafkaWriter(brokers, topic), now: time.Now}
}

func newKafkaWriter(brokers, topic string) *kafka.Writer {
	var addrs []string
	for _, a := range strings.Split(brokers, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: writerBatchTimeout,
	}
}

// NewKafkaOrderPublisherWith is only for tests to inject a fake writer.
func NewKafkaOrderPublisherWith(w kafkaMessageWriter) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{writer: w, now: time.Now}
}

func (p *KafkaOrderPublisher) Close() error {
	if w, ok := p.writer.(*kafka.Writer); ok {
		return w.Close()
	}
	return nil
}

func (p *KafkaOrderPublisher) PublishOrderPlaced(ctx context.Context, o entities.Order) error {
	return p.publish(ctx, p.event(EventOrderPlaced, o, ""))
}

func (p *KafkaOrderPublisher) PublishStatusChanged(ctx context.Context, o entities.Order, from entities.OrderStatus) error {
	return p.publish(ctx, p.event(EventStatusChanged, o, from))
}

func (p *KafkaOrderPublisher) event(kind string, o entities.Order, from entities.OrderStatus) OrderEvent {
	return OrderEvent{
		Type:           kind,
		OrderID:        o.ID,
		RefNumber:      o.RefNumber,
		CustomerName:   o.CustomerName,
		Status:         string(o.Status),
		PreviousStatus: string(from),
		TotalPrice:     o.TotalPrice.StringFixed(2),
		Version:        o.Version,
		ItemCount:      len(o.Items),
		OccurredAt:     p.now().UnixMilli(),
	}
}

func (p *KafkaOrderPublisher) publish(ctx context.Context, ev OrderEvent) error {
	b, err := json.Marshal(&ev)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	msg := kafka.Message{
		Key:     []byte(ev.OrderID),
		Value:   b,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(ev.Type)}},
	}
	for k, v := range carrier {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return p.writer.WriteMessages(ctx, msg)
}
