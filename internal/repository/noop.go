package repository

import (
	"context"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
)

// NoopAudit satisfies SnapshotAudit when ClickHouse is disabled.
type NoopAudit struct{}

func (NoopAudit) Record(context.Context, domrepo.RefreshRecord) error { return nil }
func (NoopAudit) Recent(context.Context, int) ([]domrepo.RefreshRecord, error) {
	return []domrepo.RefreshRecord{}, nil
}
func (NoopAudit) Health(context.Context) error { return nil }
func (NoopAudit) Close() error                 { return nil }

// NoopPublisher satisfies EventPublisher when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishRefresh(context.Context, domrepo.RefreshRecord) error { return nil }
func (NoopPublisher) PublishAnalysis(context.Context, models.Topic, string) error { return nil }
func (NoopPublisher) Close() error                                                { return nil }
