package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
)

type recordingSink struct {
	mu     sync.Mutex
	events []models.StoreEvent
	fail   bool
}

func (s *recordingSink) Deliver(_ context.Context, e models.StoreEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

type countMetrics struct {
	mu     sync.Mutex
	errors map[string]int
}

func (m *countMetrics) RecordRefresh(models.Domain, models.Source) {}
func (m *countMetrics) RecordAnalysis(models.Topic, string)        {}
func (m *countMetrics) RecordLatency(string, float64)              {}
func (m *countMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors == nil {
		m.errors = make(map[string]int)
	}
	m.errors[kind]++
}

func (m *countMetrics) errCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[kind]
}

func statusEvent(domain models.Domain) models.StoreEvent {
	return models.StoreEvent{
		Kind:   models.EventStatus,
		Domain: domain,
		Status: models.StatusLoading,
		At:     time.Now().UTC(),
	}
}

func TestPipelineDeliversValidEvents(t *testing.T) {
	sink := &recordingSink{}
	p := NewEventPipeline(sink, &countMetrics{})

	require.NoError(t, p.Process(context.Background(), statusEvent(models.DomainFX)))
	require.Equal(t, 1, sink.count())
}

func TestPipelineRejectsMalformedEvents(t *testing.T) {
	sink := &recordingSink{}
	m := &countMetrics{}
	p := NewEventPipeline(sink, m)

	require.Error(t, p.Process(context.Background(), models.StoreEvent{At: time.Now()}))
	require.Error(t, p.Process(context.Background(), models.StoreEvent{Kind: models.EventStatus, Domain: models.DomainFX}))
	require.Zero(t, sink.count())
	require.Equal(t, 2, m.errCount("pipeline_validate"))
}

func TestPipelineThrottlesPerDomain(t *testing.T) {
	sink := &recordingSink{}
	p := NewEventPipeline(sink, &countMetrics{}, WithMaxRPS(1))

	require.NoError(t, p.Process(context.Background(), statusEvent(models.DomainFX)))
	require.NoError(t, p.Process(context.Background(), statusEvent(models.DomainFX)))
	// a different domain has its own budget
	require.NoError(t, p.Process(context.Background(), statusEvent(models.DomainBonds)))
	require.Equal(t, 2, sink.count())
}

func TestPipelineBuffersWhenSinkIsDown(t *testing.T) {
	sink := &recordingSink{fail: true}
	m := &countMetrics{}
	p := NewEventPipeline(sink, m, WithBufferSize(10))
	p.Start(context.Background())
	defer p.Stop()

	require.Error(t, p.Process(context.Background(), statusEvent(models.DomainFX)))

	sink.mu.Lock()
	sink.fail = false
	sink.mu.Unlock()

	require.Eventually(t, func() bool { return sink.count() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestStatusBridgeForwardsTransitions(t *testing.T) {
	sink := &recordingSink{}
	p := NewEventPipeline(sink, &countMetrics{})
	bridge := NewStatusBridge(p)

	bridge.StatusChanged(models.DomainStocks, models.StatusAnalyzing)

	require.Equal(t, 1, sink.count())
	sink.mu.Lock()
	defer sink.mu.Unlock()
	e := sink.events[0]
	require.Equal(t, models.EventStatus, e.Kind)
	require.Equal(t, models.DomainStocks, e.Domain)
	require.Equal(t, models.StatusAnalyzing, e.Status)
	require.False(t, e.At.IsZero())
}
