package usecase

import (
	"context"
	"fmt"

	"InsightFlow/pkg/logger"
	"InsightFlow/pkg/queue"
)

// RefreshPayload is the queue message body for a manual store refresh.
type RefreshPayload struct {
	Domain      string `json:"domain"`
	RequestedBy string `json:"requested_by,omitempty"`
}

// RefreshJob consumes manual refresh requests off the queue so bursts
// of UI refresh clicks drain at worker pace instead of fanning out.
type RefreshJob struct {
	registry *Registry
	log      *logger.Logger
}

// NewRefreshJob builds the refresh queue job.
func NewRefreshJob(registry *Registry, log *logger.Logger) *RefreshJob {
	return &RefreshJob{registry: registry, log: log}
}

// Name returns the job identifier.
func (j *RefreshJob) Name() string { return "store_refresh" }

// Type returns the message type the job consumes.
func (j *RefreshJob) Type() string { return "store.refresh" }

// Handle refreshes the requested store.
func (j *RefreshJob) Handle(ctx context.Context, payload interface{}) error {
	p, err := queue.ParsePayload[RefreshPayload](payload)
	if err != nil {
		return fmt.Errorf("parse refresh payload: %w", err)
	}

	store, err := j.registry.Get(p.Domain)
	if err != nil {
		return err
	}

	source := store.Refresh(ctx)
	j.log.Info("queued refresh handled",
		logger.String("domain", p.Domain),
		logger.String("source", string(source)),
	)
	return nil
}
