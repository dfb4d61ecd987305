package middleware

import (
	"context"
	"time"

	"InsightFlow/internal/domain/models"
)

// StatusBridge adapts store status callbacks onto the event pipeline.
type StatusBridge struct {
	pipe *EventPipeline
}

func NewStatusBridge(pipe *EventPipeline) *StatusBridge {
	return &StatusBridge{pipe: pipe}
}

func (b *StatusBridge) StatusChanged(domain models.Domain, status models.Status) {
	_ = b.pipe.Process(context.Background(), models.StoreEvent{
		Kind:   models.EventStatus,
		Domain: domain,
		Status: status,
		At:     time.Now().UTC(),
	})
}
