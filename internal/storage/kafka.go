package storage

import (
	"context"
	"encoding/json"

	"food-console/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaAuditPublisher emits operator actions for downstream consumers.
type KafkaAuditPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaAuditPublisher(writer *kafka.Writer) *KafkaAuditPublisher {
	return &KafkaAuditPublisher{Writer: writer}
}

func (p *KafkaAuditPublisher) PublishEvent(ctx context.Context, event domain.AuditEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Resource + ":" + event.ResourceID),
		Value: payload,
	})
}
