package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/mockdata"
	"InsightFlow/pkg/cache"
)

// fakeBackend serves canned snapshots, or fails everything when down.
type fakeBackend struct {
	fakeAnalysisBackend

	mu          sync.Mutex
	down        bool
	countryCode string
	whaleCalls  int
}

func (f *fakeBackend) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errors.New("upstream unavailable")
	}
	return nil
}

func (f *fakeBackend) BondYields(context.Context) (models.BondYields, error) {
	if err := f.err(); err != nil {
		return models.BondYields{}, err
	}
	return models.BondYields{
		CurrentCurve: models.YieldCurve{Data: []models.YieldPoint{
			{Maturity: "2Y", Yield: 4.85},
			{Maturity: "10Y", Yield: 4.55},
		}},
	}, nil
}

func (f *fakeBackend) GlobalBonds(context.Context) (models.GlobalBondData, error) {
	if err := f.err(); err != nil {
		return models.GlobalBondData{}, err
	}
	return models.GlobalBondData{USYield10Y: 4.40}, nil
}

func (f *fakeBackend) FX(context.Context) (models.FXMarket, error) {
	if err := f.err(); err != nil {
		return models.FXMarket{}, err
	}
	return models.FXMarket{RiskSentiment: "neutral"}, nil
}

func (f *fakeBackend) Stocks(context.Context) (models.StockMarket, error) {
	if err := f.err(); err != nil {
		return models.StockMarket{}, err
	}
	return models.StockMarket{}, nil
}

func (f *fakeBackend) Policy(context.Context) (models.PolicyData, error) {
	if err := f.err(); err != nil {
		return models.PolicyData{}, err
	}
	return models.PolicyData{}, nil
}

func (f *fakeBackend) Country(_ context.Context, code string) (models.CountryData, error) {
	if err := f.err(); err != nil {
		return models.CountryData{}, err
	}
	f.mu.Lock()
	f.countryCode = code
	f.mu.Unlock()
	return models.CountryData{Profile: models.CountryProfile{Code: code}}, nil
}

func (f *fakeBackend) Economy(context.Context) (models.EconomyData, error) {
	if err := f.err(); err != nil {
		return models.EconomyData{}, err
	}
	return models.EconomyData{}, nil
}

func (f *fakeBackend) History(context.Context, models.MarketConditions) (models.HistoricalParallels, error) {
	if err := f.err(); err != nil {
		return models.HistoricalParallels{}, err
	}
	return models.HistoricalParallels{}, nil
}

func (f *fakeBackend) WhaleRadar(context.Context, []string) (models.WhaleRadar, error) {
	if err := f.err(); err != nil {
		return models.WhaleRadar{}, err
	}
	f.mu.Lock()
	f.whaleCalls++
	f.mu.Unlock()
	return models.WhaleRadar{AIContext: "live radar"}, nil
}

func (f *fakeBackend) Insights(context.Context) (models.InsightFeed, error) {
	if err := f.err(); err != nil {
		return models.InsightFeed{}, err
	}
	return models.InsightFeed{}, nil
}

func testRegistry(t *testing.T, backend *fakeBackend, cfg RegistryConfig) *Registry {
	t.Helper()
	return NewRegistry(backend, mockdata.New(mockdata.WithSeed(7)),
		testGate(t, backend, newMemCache()), testDeps(t),
		cache.NewMemoryCache(), cfg, nil)
}

func TestRegistryServesEveryDomain(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{}, RegistryConfig{})

	require.Len(t, reg.All(), len(models.AllDomains()))
	for _, d := range models.AllDomains() {
		store, err := reg.Get(string(d))
		require.NoError(t, err)
		require.Equal(t, d, store.Domain())
	}

	_, err := reg.Get("crypto")
	require.Error(t, err)
}

func TestRegistryFallsBackAcrossAllDomains(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{down: true}, RegistryConfig{})

	for _, store := range reg.All() {
		source := store.Refresh(context.Background())
		require.Equal(t, models.SourceFallback, source, string(store.Domain()))

		p := store.Projection()
		require.Equal(t, models.StatusDone, p.Status, string(store.Domain()))
		require.NotNil(t, p.Snapshot, string(store.Domain()))
	}
}

func TestBondsRefreshJoinsCurveAndGlobalFeeds(t *testing.T) {
	reg := testRegistry(t, &fakeBackend{}, RegistryConfig{})

	store, err := reg.Get("bonds")
	require.NoError(t, err)
	require.Equal(t, models.SourceLive, store.Refresh(context.Background()))

	snap := store.Projection().Snapshot.(models.BondMarket)
	require.Equal(t, 4.55, snap.Global.USYield10Y, "curve 10Y point overrides the global feed")
	require.NotNil(t, snap.SpreadBps)
	require.InDelta(t, -30.0, *snap.SpreadBps, 0.001)
	require.Equal(t, "INVERTED", snap.CurveState)
}

func TestCountrySelectSwitchesScannerTarget(t *testing.T) {
	backend := &fakeBackend{}
	reg := testRegistry(t, backend, RegistryConfig{DefaultCountry: "us"})

	country := reg.Country()
	require.Equal(t, "US", country.Code())

	require.Equal(t, models.SourceLive, country.Select(context.Background(), "kr"))
	require.Equal(t, "KR", country.Code())

	backend.mu.Lock()
	require.Equal(t, "KR", backend.countryCode)
	backend.mu.Unlock()

	snap, ok := country.Snapshot()
	require.True(t, ok)
	require.Equal(t, "KR", snap.Profile.Code)
}

func TestWhaleRefreshServesRadarFromCacheWithinTTL(t *testing.T) {
	backend := &fakeBackend{}
	reg := testRegistry(t, backend, RegistryConfig{
		WhaleSymbols:  []string{"nvda", "AAPL"},
		RadarCacheTTL: time.Minute,
	})

	store, err := reg.Get("whale")
	require.NoError(t, err)

	require.Equal(t, models.SourceLive, store.Refresh(context.Background()))
	require.Equal(t, models.SourceLive, store.Refresh(context.Background()))

	backend.mu.Lock()
	require.Equal(t, 1, backend.whaleCalls, "second refresh inside the TTL must hit the cache")
	backend.mu.Unlock()
}

func TestRadarCacheKeyNormalizesSymbols(t *testing.T) {
	require.Equal(t, "whale:radar:all", radarCacheKey(nil))
	require.Equal(t, radarCacheKey([]string{"nvda", "aapl"}), radarCacheKey([]string{"AAPL", "NVDA"}))
}
