package repository

import (
	"context"
	"time"

	"InsightFlow/internal/domain/models"
)

// RefreshRecord is one audited store refresh.
type RefreshRecord struct {
	ID        string
	Domain    models.Domain
	Source    models.Source
	Duration  time.Duration
	FetchedAt time.Time
}

// SnapshotAudit persists and reads back the refresh trail.
type SnapshotAudit interface {
	Record(ctx context.Context, rec RefreshRecord) error
	Recent(ctx context.Context, limit int) ([]RefreshRecord, error)
	Health(ctx context.Context) error
	Close() error
}

// EventPublisher pushes lifecycle events to the message bus.
type EventPublisher interface {
	PublishRefresh(ctx context.Context, rec RefreshRecord) error
	PublishAnalysis(ctx context.Context, topic models.Topic, outcome string) error
	Close() error
}

// AnalysisCache stores finished analyses under their daily keys.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*models.AnalysisResult, bool, error)
	Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration) error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordRefresh(domain models.Domain, source models.Source)
	RecordAnalysis(topic models.Topic, outcome string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
