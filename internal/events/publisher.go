// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/metrics"
	"github.com/sbilibin2017/library-service/internal/models"
)

const (
	publishTimeout = 5 * time.Second
	batchTimeout   = 10 * time.Millisecond
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher sends domain events. A nil writer disables publishing.
type Publisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewPublisher creates a Publisher.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// Publish builds the event and sends it. Callers publish only committed
// changes, so failures are logged, never returned.
func (p *Publisher) Publish(ctx context.Context, eventType string, userID, bookID, entityID int64) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: p.now().Unix(),
		UserID:    userID,
		BookID:    bookID,
		EntityID:  entityID,
	}
	p.send(ctx, event)
}

func (p *Publisher) send(ctx context.Context, event models.Event) {
	log := logger.FromContext(ctx)

	if p.writer == nil {
		log.Debugw("Kafka writer not configured, skipping event", "event_id", event.EventID, "type", event.Type)
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, "skipped").Inc()
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal event", "event_id", event.EventID, "error", err)
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, "error").Inc()
		return
	}

	// keyed by book so that the events of one book stay ordered
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, "error").Inc()
		return
	}

	log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "book_id", event.BookID)
	metrics.EventsPublishedTotal.WithLabelValues(event.Type, "ok").Inc()
}

// NewKafkaWriter returns a writer for the given brokers and topic, or nil
// when no brokers are configured.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           batchTimeout, // kafka-go otherwise waits up to 1s to fill a batch
	}
}
