package event

import (
	"Endpoint_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, e MonitoringEvent) error
}

type kafkaPublisher struct {
	kafka infra.KafkaWriter
}

// Publish keys messages by endpoint id so one endpoint's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, e MonitoringEvent) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("KafkaPublisher.Publish: %w", err)
	}
	err = p.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.EndpointID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("KafkaPublisher.Publish: %w", err)
	}
	return nil
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{
		kafka: writer,
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, MonitoringEvent) error {
	return nil
}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
