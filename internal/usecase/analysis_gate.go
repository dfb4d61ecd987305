package usecase

import (
	"context"
	"fmt"
	"time"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/domain/repository"
	"InsightFlow/pkg/logger"
	"InsightFlow/pkg/util"
)

// AnalysisBackend is the slice of the upstream API the gate needs.
type AnalysisBackend interface {
	CachedAnalysis(ctx context.Context, topic models.Topic, language repository.Language, extra string) (models.CachedAnalysis, error)
	Analyze(ctx context.Context, topic models.Topic, payload interface{}) (*models.AnalysisResult, error)
}

// AnalysisRequest asks a store for a board analysis.
type AnalysisRequest struct {
	Language repository.Language
	// Extra scopes the daily cache key: FX pair, country code, or
	// article id. Empty for single-cache topics.
	Extra string
	// Payload is the domain context body for the upstream POST.
	Payload interface{}
}

// Gate is the shared analysis machinery: the daily cache in front of
// the upstream probe in front of the expensive POST.
type Gate struct {
	backend       AnalysisBackend
	cache         repository.AnalysisCache
	metrics       repository.Metrics
	events        repository.EventPublisher
	log           *logger.Logger
	agentInterval time.Duration
	clock         func() time.Time
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithAgentInterval sets the persona cycling period.
func WithAgentInterval(d time.Duration) GateOption {
	return func(g *Gate) { g.agentInterval = d }
}

// WithGateClock overrides the gate's time source.
func WithGateClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.clock = now }
}

// NewGate builds the analysis gate.
func NewGate(
	backend AnalysisBackend,
	cache repository.AnalysisCache,
	metrics repository.Metrics,
	events repository.EventPublisher,
	log *logger.Logger,
	opts ...GateOption,
) *Gate {
	g := &Gate{
		backend:       backend,
		cache:         cache,
		metrics:       metrics,
		events:        events,
		log:           log,
		agentInterval: 2 * time.Second,
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// cacheKey builds the daily key: topic_lang[_extra]_YYYY-MM-DD.
func (g *Gate) cacheKey(topic models.Topic, req AnalysisRequest) string {
	day := util.DayStamp(g.clock())
	if req.Extra != "" {
		return fmt.Sprintf("%s_%s_%s_%s", topic, req.Language, req.Extra, day)
	}
	return fmt.Sprintf("%s_%s_%s", topic, req.Language, day)
}

func (g *Gate) storeLocal(ctx context.Context, key string, result *models.AnalysisResult) {
	ttl := util.EndOfDay(g.clock()).Sub(g.clock())
	if err := g.cache.Set(ctx, key, result, ttl); err != nil {
		g.log.Warn("analysis cache write failed", logger.String("key", key), logger.Error(err))
	}
}

// RequestAnalysis runs the cache gate for this store's topic:
//  1. local daily cache
//  2. upstream cached probe (GET)
//  3. fresh analysis (POST) with persona cycling while in flight
//
// A failure at step 2 or 3 leaves the store in error but keeps any
// previously displayed result. Responses are fenced: only the newest
// outstanding request may mutate the store.
func (s *Store[T]) RequestAnalysis(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error) {
	if req.Language == "" {
		req.Language = repository.DefaultLanguage()
	}

	s.mu.Lock()
	s.analysis.seq++
	seq := s.analysis.seq
	s.analysis.status = models.StatusAnalyzing
	s.analysis.errorMessage = ""
	s.mu.Unlock()

	g := s.gate
	key := g.cacheKey(s.topic, req)

	if result, ok, err := g.cache.Get(ctx, key); err != nil {
		g.log.Warn("analysis cache read failed", logger.String("key", key), logger.Error(err))
	} else if ok {
		s.adoptAnalysis(ctx, seq, result, "cache_hit")
		return result, nil
	}

	probe, err := g.backend.CachedAnalysis(ctx, s.topic, req.Language, req.Extra)
	if err != nil {
		s.failAnalysis(ctx, seq, err)
		return nil, err
	}
	if probe.Cached && probe.Result != nil {
		g.storeLocal(ctx, key, probe.Result)
		s.adoptAnalysis(ctx, seq, probe.Result, "cache_hit")
		return probe.Result, nil
	}

	started := g.clock()
	stop := s.startAgentCycle(seq)
	result, err := g.backend.Analyze(ctx, s.topic, req.Payload)
	stop()
	if err != nil {
		s.failAnalysis(ctx, seq, err)
		return nil, err
	}
	g.metrics.RecordLatency("analysis", g.clock().Sub(started).Seconds())

	g.storeLocal(ctx, key, result)
	s.adoptAnalysis(ctx, seq, result, "generated")
	return result, nil
}

// startAgentCycle walks the topic's persona seating order on a fixed
// interval so the UI can show who is "speaking". Pure presentation;
// the upstream runs all personas regardless.
func (s *Store[T]) startAgentCycle(seq uint64) (stop func()) {
	personas := models.PersonaOrder(s.topic)
	s.setCurrentAgent(seq, &personas[0])

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(s.gate.agentInterval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				i = (i + 1) % len(personas)
				s.setCurrentAgent(seq, &personas[i])
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

func (s *Store[T]) setCurrentAgent(seq uint64, agent *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.analysis.seq {
		return
	}
	s.analysis.currentAgent = agent
}

func (s *Store[T]) adoptAnalysis(ctx context.Context, seq uint64, result *models.AnalysisResult, outcome string) {
	s.gate.metrics.RecordAnalysis(s.topic, outcome)
	if err := s.gate.events.PublishAnalysis(ctx, s.topic, outcome); err != nil {
		s.gate.log.Warn("analysis event publish failed", logger.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.analysis.seq {
		s.gate.log.Debug("discarding superseded analysis",
			logger.String("topic", string(s.topic)),
			logger.Uint64("seq", seq),
		)
		return
	}
	s.analysis.result = result
	s.analysis.status = models.StatusDone
	s.analysis.currentAgent = nil
	s.analysis.errorMessage = ""
}

// failAnalysis marks the store errored but never clears a previously
// displayed result: stale-but-available beats blank.
func (s *Store[T]) failAnalysis(ctx context.Context, seq uint64, cause error) {
	s.gate.metrics.RecordAnalysis(s.topic, "error")
	s.gate.metrics.RecordError("analysis_" + string(s.topic))
	if err := s.gate.events.PublishAnalysis(ctx, s.topic, "error"); err != nil {
		s.gate.log.Warn("analysis event publish failed", logger.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.analysis.seq {
		return
	}
	s.analysis.status = models.StatusError
	s.analysis.errorMessage = cause.Error()
	s.analysis.currentAgent = nil
}
