// Package usecase holds the dashboard's store engine: one store per
// market domain, each owning its snapshot, its fallback path, and the
// cache-gated board analysis for its topic.
package usecase

import (
	"context"
	"sync"
	"time"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/domain/repository"
	"InsightFlow/pkg/logger"

	"github.com/google/uuid"
)

// FetchFunc loads the live snapshot for a domain. It returns an
// explicit error; the store decides what happens on failure.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// MockFunc synthesizes a complete substitute snapshot. It cannot fail.
type MockFunc[T any] func() T

// StatusListener observes store status transitions.
type StatusListener interface {
	StatusChanged(domain models.Domain, status models.Status)
}

// Projection is the type-erased read view served over HTTP.
type Projection struct {
	Domain        models.Domain       `json:"domain"`
	Status        models.Status       `json:"status"`
	Source        models.Source       `json:"source,omitempty"`
	Snapshot      interface{}         `json:"snapshot,omitempty"`
	LastRefreshed *time.Time          `json:"last_refreshed,omitempty"`
	Analysis      models.AnalysisView `json:"analysis"`
}

// DomainStore is the store surface the handlers and the refresher see.
type DomainStore interface {
	Domain() models.Domain
	Refresh(ctx context.Context) models.Source
	RequestAnalysis(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error)
	Projection() Projection
}

// Store keeps one domain's snapshot and analysis state. All mutations
// happen under mu; fetch and analysis requests carry fencing sequence
// numbers so a stale response can never overwrite a newer one.
type Store[T any] struct {
	domain models.Domain
	topic  models.Topic
	fetch  FetchFunc[T]
	mock   MockFunc[T]
	gate   *Gate

	log      *logger.Logger
	metrics  repository.Metrics
	audit    repository.SnapshotAudit
	events   repository.EventPublisher
	listener StatusListener
	clock    func() time.Time

	mu            sync.Mutex
	fetchSeq      uint64
	status        models.Status
	source        models.Source
	snapshot      *T
	lastRefreshed time.Time

	analysis analysisState
}

type analysisState struct {
	seq          uint64
	status       models.Status
	currentAgent *string
	errorMessage string
	result       *models.AnalysisResult
}

// StoreOption configures a Store.
type StoreOption[T any] func(*Store[T])

// WithClock overrides the store's time source.
func WithClock[T any](now func() time.Time) StoreOption[T] {
	return func(s *Store[T]) { s.clock = now }
}

// WithListener registers a status transition observer.
func WithListener[T any](l StatusListener) StoreOption[T] {
	return func(s *Store[T]) { s.listener = l }
}

// StoreDeps bundles the cross-cutting collaborators every store shares.
type StoreDeps struct {
	Log     *logger.Logger
	Metrics repository.Metrics
	Audit   repository.SnapshotAudit
	Events  repository.EventPublisher
}

// NewStore builds a domain store.
func NewStore[T any](
	domain models.Domain,
	topic models.Topic,
	deps StoreDeps,
	fetch FetchFunc[T],
	mock MockFunc[T],
	gate *Gate,
	opts ...StoreOption[T],
) *Store[T] {
	s := &Store[T]{
		domain:  domain,
		topic:   topic,
		fetch:   fetch,
		mock:    mock,
		gate:    gate,
		log:     deps.Log,
		metrics: deps.Metrics,
		audit:   deps.Audit,
		events:  deps.Events,
		clock:   time.Now,
		status:  models.StatusIdle,
		analysis: analysisState{
			status: models.StatusIdle,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Domain returns the store's domain.
func (s *Store[T]) Domain() models.Domain { return s.domain }

// Refresh re-fetches the snapshot. On any fetch failure the mock
// generator produces a complete substitute, so Refresh always ends in
// done with a full snapshot. The returned source tells which path won.
func (s *Store[T]) Refresh(ctx context.Context) models.Source {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.setStatusLocked(models.StatusLoading)
	s.mu.Unlock()

	started := s.clock()
	snapshot, err := s.fetch(ctx)
	source := models.SourceLive
	if err != nil {
		s.log.Warn("fetch failed, falling back to mock",
			logger.String("domain", string(s.domain)),
			logger.Error(err),
		)
		s.metrics.RecordError("fetch_" + string(s.domain))
		snapshot = s.mock()
		source = models.SourceFallback
	}
	elapsed := s.clock().Sub(started)

	s.mu.Lock()
	if seq != s.fetchSeq {
		// A newer refresh was issued while this one was in flight.
		s.mu.Unlock()
		s.log.Debug("discarding superseded refresh",
			logger.String("domain", string(s.domain)),
			logger.Uint64("seq", seq),
		)
		return source
	}
	s.snapshot = &snapshot
	s.source = source
	s.lastRefreshed = s.clock()
	fetchedAt := s.lastRefreshed
	s.setStatusLocked(models.StatusDone)
	s.mu.Unlock()

	s.metrics.RecordRefresh(s.domain, source)
	s.metrics.RecordLatency("refresh", elapsed.Seconds())

	rec := repository.RefreshRecord{
		ID:        uuid.NewString(),
		Domain:    s.domain,
		Source:    source,
		Duration:  elapsed,
		FetchedAt: fetchedAt,
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		s.log.Warn("refresh audit write failed", logger.Error(err))
	}
	if err := s.events.PublishRefresh(ctx, rec); err != nil {
		s.log.Warn("refresh event publish failed", logger.Error(err))
	}
	return source
}

// Snapshot returns the current snapshot, if one has been loaded.
func (s *Store[T]) Snapshot() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		var zero T
		return zero, false
	}
	return *s.snapshot, true
}

// Projection builds the read-only view for the UI.
func (s *Store[T]) Projection() Projection {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Projection{
		Domain: s.domain,
		Status: s.status,
		Source: s.source,
		Analysis: models.AnalysisView{
			Status:       s.analysis.status,
			CurrentAgent: s.analysis.currentAgent,
			ErrorMessage: s.analysis.errorMessage,
			Result:       s.analysis.result,
		},
	}
	if s.snapshot != nil {
		p.Snapshot = *s.snapshot
	}
	if !s.lastRefreshed.IsZero() {
		t := s.lastRefreshed
		p.LastRefreshed = &t
	}
	return p
}

func (s *Store[T]) setStatusLocked(status models.Status) {
	if s.status == status {
		return
	}
	s.status = status
	if s.listener != nil {
		go s.listener.StatusChanged(s.domain, status)
	}
}
