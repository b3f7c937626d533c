// Package repository implements the outbound adapters: report publishing
// and the report cache.
package repository

import (
	"context"

	"rugcheck/internal/domain/models"
	"rugcheck/pkg/kafka"
	"rugcheck/pkg/logger"
)

// KafkaReportPublisher pushes finished reports to a Kafka topic, keyed by
// chain:address so per-token ordering is preserved.
type KafkaReportPublisher struct {
	producer *kafka.Producer
	topic    string
	log      *logger.Logger
}

func NewKafkaReportPublisher(producer *kafka.Producer, topic string, log *logger.Logger) *KafkaReportPublisher {
	return &KafkaReportPublisher{producer: producer, topic: topic, log: log}
}

func (p *KafkaReportPublisher) Publish(ctx context.Context, r *models.ScanReport) error {
	key := []byte(r.Chain + ":" + r.Address)
	if err := p.producer.Publish(ctx, p.topic, key, r); err != nil {
		p.log.Error("report publish failed",
			logger.String("chain", r.Chain),
			logger.String("address", r.Address),
			logger.Error(err))
		return err
	}
	return nil
}

func (p *KafkaReportPublisher) Close() error {
	return p.producer.Close()
}

// NopReportPublisher is used when Kafka is disabled.
type NopReportPublisher struct{}

func (NopReportPublisher) Publish(context.Context, *models.ScanReport) error { return nil }
func (NopReportPublisher) Close() error                                      { return nil }
