package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/domain/repository"
	"InsightFlow/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordRefresh(models.Domain, models.Source) {}
func (nopMetrics) RecordAnalysis(models.Topic, string)        {}
func (nopMetrics) RecordError(string)                         {}
func (nopMetrics) RecordLatency(string, float64)              {}

type nopAudit struct{}

func (nopAudit) Record(context.Context, repository.RefreshRecord) error { return nil }
func (nopAudit) Recent(context.Context, int) ([]repository.RefreshRecord, error) {
	return nil, nil
}
func (nopAudit) Health(context.Context) error { return nil }
func (nopAudit) Close() error                 { return nil }

type nopEvents struct{}

func (nopEvents) PublishRefresh(context.Context, repository.RefreshRecord) error { return nil }
func (nopEvents) PublishAnalysis(context.Context, models.Topic, string) error    { return nil }
func (nopEvents) Close() error                                                   { return nil }

type memCache struct {
	mu sync.Mutex
	m  map[string]*models.AnalysisResult
}

func newMemCache() *memCache {
	return &memCache{m: make(map[string]*models.AnalysisResult)}
}

func (c *memCache) Get(_ context.Context, key string) (*models.AnalysisResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.m[key]
	return r, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, result *models.AnalysisResult, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = result
	return nil
}

type fakeAnalysisBackend struct {
	mu         sync.Mutex
	probeResp  models.CachedAnalysis
	probeErr   error
	probeCount int

	analyzeResp  *models.AnalysisResult
	analyzeErr   error
	analyzeCount int
	analyzeGate  chan struct{}
}

func (f *fakeAnalysisBackend) CachedAnalysis(context.Context, models.Topic, repository.Language, string) (models.CachedAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probeCount++
	return f.probeResp, f.probeErr
}

func (f *fakeAnalysisBackend) Analyze(context.Context, models.Topic, interface{}) (*models.AnalysisResult, error) {
	f.mu.Lock()
	f.analyzeCount++
	gate := f.analyzeGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyzeResp, f.analyzeErr
}

func (f *fakeAnalysisBackend) counts() (probes, posts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probeCount, f.analyzeCount
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return log
}

func testDeps(t *testing.T) StoreDeps {
	return StoreDeps{
		Log:     testLogger(t),
		Metrics: nopMetrics{},
		Audit:   nopAudit{},
		Events:  nopEvents{},
	}
}

func testGate(t *testing.T, backend AnalysisBackend, cache repository.AnalysisCache) *Gate {
	return NewGate(backend, cache, nopMetrics{}, nopEvents{}, testLogger(t),
		WithAgentInterval(5*time.Millisecond))
}

func boardResult(synthesis string) *models.AnalysisResult {
	r := &models.AnalysisResult{
		Perspectives: []models.Perspective{
			{Persona: "kostolany", Analysis: "a"},
			{Persona: "buffett", Analysis: "b"},
			{Persona: "munger", Analysis: "c"},
			{Persona: "dalio", Analysis: "d"},
		},
		Synthesis: synthesis,
	}
	return r
}

func TestRefreshFallsBackOnFetchFailure(t *testing.T) {
	backend := &fakeAnalysisBackend{}
	store := NewStore(models.DomainFX, models.TopicFX, testDeps(t),
		func(ctx context.Context) (models.FXMarket, error) {
			return models.FXMarket{}, errors.New("connection refused")
		},
		func() models.FXMarket {
			return models.FXMarket{RiskSentiment: "risk_on", MajorPairs: make([]models.FXPair, 5)}
		},
		testGate(t, backend, newMemCache()),
	)

	source := store.Refresh(context.Background())
	require.Equal(t, models.SourceFallback, source)

	p := store.Projection()
	require.Equal(t, models.StatusDone, p.Status)
	require.Equal(t, models.SourceFallback, p.Source)
	require.NotNil(t, p.Snapshot)

	snap, ok := store.Snapshot()
	require.True(t, ok)
	require.Len(t, snap.MajorPairs, 5)
}

func TestRefreshUsesLiveDataOnSuccess(t *testing.T) {
	backend := &fakeAnalysisBackend{}
	store := NewStore(models.DomainFX, models.TopicFX, testDeps(t),
		func(ctx context.Context) (models.FXMarket, error) {
			return models.FXMarket{RiskSentiment: "risk_off"}, nil
		},
		func() models.FXMarket { return models.FXMarket{} },
		testGate(t, backend, newMemCache()),
	)

	source := store.Refresh(context.Background())
	require.Equal(t, models.SourceLive, source)

	snap, ok := store.Snapshot()
	require.True(t, ok)
	require.Equal(t, "risk_off", snap.RiskSentiment)
}

func TestRefreshFencingDiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	backend := &fakeAnalysisBackend{}
	store := NewStore(models.DomainStocks, models.TopicStocks, testDeps(t),
		func(ctx context.Context) (models.StockMarket, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				<-release
				return models.StockMarket{VIX: models.VIX{Value: 99}}, nil
			}
			return models.StockMarket{VIX: models.VIX{Value: 18}}, nil
		},
		func() models.StockMarket { return models.StockMarket{} },
		testGate(t, backend, newMemCache()),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Refresh(context.Background())
	}()

	// Wait for the first fetch to be in flight before superseding it.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	store.Refresh(context.Background())
	close(release)
	wg.Wait()

	snap, ok := store.Snapshot()
	require.True(t, ok)
	require.Equal(t, 18.0, snap.VIX.Value, "stale first response must not overwrite the newer one")
	require.Equal(t, models.StatusDone, store.Projection().Status)
}

func TestAnalysisCacheShortCircuitSkipsPost(t *testing.T) {
	cached := boardResult("cached synthesis")
	backend := &fakeAnalysisBackend{
		probeResp: models.CachedAnalysis{Cached: true, Result: cached},
	}
	store := NewStore(models.DomainBonds, models.TopicBonds, testDeps(t),
		func(ctx context.Context) (models.BondMarket, error) { return models.BondMarket{}, nil },
		func() models.BondMarket { return models.BondMarket{} },
		testGate(t, backend, newMemCache()),
	)

	result, err := store.RequestAnalysis(context.Background(), AnalysisRequest{Language: repository.LangKorean})
	require.NoError(t, err)
	require.Equal(t, "cached synthesis", result.Synthesis)

	probes, posts := backend.counts()
	require.Equal(t, 1, probes)
	require.Zero(t, posts, "cache hit must not trigger a POST")

	view := store.Projection().Analysis
	require.Equal(t, models.StatusDone, view.Status)
	require.Nil(t, view.CurrentAgent)
	require.Equal(t, cached, view.Result)
}

func TestAnalysisCacheMissGeneratesThenServesLocally(t *testing.T) {
	generated := boardResult("fresh synthesis")
	backend := &fakeAnalysisBackend{
		probeResp:   models.CachedAnalysis{Cached: false},
		analyzeResp: generated,
	}
	store := NewStore(models.DomainBonds, models.TopicBonds, testDeps(t),
		func(ctx context.Context) (models.BondMarket, error) { return models.BondMarket{}, nil },
		func() models.BondMarket { return models.BondMarket{} },
		testGate(t, backend, newMemCache()),
	)

	result, err := store.RequestAnalysis(context.Background(), AnalysisRequest{Language: repository.LangKorean})
	require.NoError(t, err)
	require.Equal(t, "fresh synthesis", result.Synthesis)

	probes, posts := backend.counts()
	require.Equal(t, 1, probes)
	require.Equal(t, 1, posts)

	view := store.Projection().Analysis
	require.Equal(t, models.StatusDone, view.Status)
	require.Nil(t, view.CurrentAgent, "agent must be cleared once done")

	// Same-day repeat is served from the local daily cache.
	_, err = store.RequestAnalysis(context.Background(), AnalysisRequest{Language: repository.LangKorean})
	require.NoError(t, err)
	probes, posts = backend.counts()
	require.Equal(t, 1, probes, "local cache hit must skip the upstream probe")
	require.Equal(t, 1, posts)
}

func TestAnalysisFailureRetainsPriorResult(t *testing.T) {
	first := boardResult("yesterday's take")
	backend := &fakeAnalysisBackend{
		probeResp:   models.CachedAnalysis{Cached: false},
		analyzeResp: first,
	}
	store := NewStore(models.DomainBonds, models.TopicBonds, testDeps(t),
		func(ctx context.Context) (models.BondMarket, error) { return models.BondMarket{}, nil },
		func() models.BondMarket { return models.BondMarket{} },
		testGate(t, backend, newMemCache()),
	)

	_, err := store.RequestAnalysis(context.Background(), AnalysisRequest{Language: repository.LangKorean})
	require.NoError(t, err)

	backend.mu.Lock()
	backend.analyzeErr = errors.New("upstream exploded")
	backend.analyzeResp = nil
	backend.mu.Unlock()

	// Different cache key so the gate walks the full path again.
	_, err = store.RequestAnalysis(context.Background(), AnalysisRequest{
		Language: repository.LangEnglish,
	})
	require.Error(t, err)

	view := store.Projection().Analysis
	require.Equal(t, models.StatusError, view.Status)
	require.Contains(t, view.ErrorMessage, "upstream exploded")
	require.NotNil(t, view.Result, "a failed analysis must not clear the previous result")
	require.Equal(t, "yesterday's take", view.Result.Synthesis)
	require.Nil(t, view.CurrentAgent)
}

func TestAnalysisShowsCyclingAgentWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	backend := &fakeAnalysisBackend{
		probeResp:   models.CachedAnalysis{Cached: false},
		analyzeResp: boardResult("done"),
		analyzeGate: gate,
	}
	store := NewStore(models.DomainWhale, models.TopicWhale, testDeps(t),
		func(ctx context.Context) (models.WhaleRadar, error) { return models.WhaleRadar{}, nil },
		func() models.WhaleRadar { return models.WhaleRadar{} },
		testGate(t, backend, newMemCache()),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := store.RequestAnalysis(context.Background(), AnalysisRequest{Language: repository.LangKorean})
		require.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		view := store.Projection().Analysis
		return view.Status == models.StatusAnalyzing && view.CurrentAgent != nil
	}, time.Second, time.Millisecond)

	view := store.Projection().Analysis
	require.Contains(t, models.PersonaOrder(models.TopicWhale), *view.CurrentAgent)

	close(gate)
	wg.Wait()

	view = store.Projection().Analysis
	require.Equal(t, models.StatusDone, view.Status)
	require.Nil(t, view.CurrentAgent)
}
