package repository

import (
	"context"
	"time"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
	pkgkafka "InsightFlow/pkg/kafka"
)

// KafkaPublisher pushes store lifecycle events to Kafka. Refresh events
// are keyed by domain and analysis events by topic so consumers see each
// stream in order.
type KafkaPublisher struct {
	producer      *pkgkafka.Producer
	refreshTopic  string
	analysisTopic string
}

func NewKafkaPublisher(producer *pkgkafka.Producer, refreshTopic, analysisTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer:      producer,
		refreshTopic:  refreshTopic,
		analysisTopic: analysisTopic,
	}
}

func (p *KafkaPublisher) PublishRefresh(ctx context.Context, rec domrepo.RefreshRecord) error {
	return p.producer.Publish(ctx, p.refreshTopic, []byte(rec.Domain), map[string]interface{}{
		"id":          rec.ID,
		"domain":      string(rec.Domain),
		"source":      string(rec.Source),
		"duration_ms": float64(rec.Duration.Microseconds()) / 1000.0,
		"fetched_at":  rec.FetchedAt.UTC().Format(time.RFC3339Nano),
	})
}

func (p *KafkaPublisher) PublishAnalysis(ctx context.Context, topic models.Topic, outcome string) error {
	return p.producer.Publish(ctx, p.analysisTopic, []byte(topic), map[string]interface{}{
		"topic":   string(topic),
		"outcome": outcome,
		"at":      time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
