package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/market"
	"InsightFlow/pkg/cache"
	"InsightFlow/pkg/logger"
)

// Backend is the full upstream surface the registry wires stores to.
type Backend interface {
	AnalysisBackend

	BondYields(ctx context.Context) (models.BondYields, error)
	GlobalBonds(ctx context.Context) (models.GlobalBondData, error)
	FX(ctx context.Context) (models.FXMarket, error)
	Stocks(ctx context.Context) (models.StockMarket, error)
	Policy(ctx context.Context) (models.PolicyData, error)
	Country(ctx context.Context, code string) (models.CountryData, error)
	Economy(ctx context.Context) (models.EconomyData, error)
	History(ctx context.Context, cond models.MarketConditions) (models.HistoricalParallels, error)
	WhaleRadar(ctx context.Context, symbols []string) (models.WhaleRadar, error)
	Insights(ctx context.Context) (models.InsightFeed, error)
}

// MockSource generates complete fallback snapshots per domain.
type MockSource interface {
	Bonds() models.BondMarket
	FX() models.FXMarket
	Stocks() models.StockMarket
	Policy() models.PolicyData
	Country(code string) (models.CountryData, bool)
	Economy() models.EconomyData
	History() models.HistoricalParallels
	Whale(symbols []string) models.WhaleRadar
	Insights() models.InsightFeed
}

// RegistryConfig carries the per-domain knobs the stores need.
type RegistryConfig struct {
	DefaultCountry string
	WhaleSymbols   []string
	RadarCacheTTL  time.Duration
}

// Registry owns the nine domain stores and serves them by name.
type Registry struct {
	stores  map[models.Domain]DomainStore
	country *CountryStore
}

// CountryStore is the country scanner: one snapshot at a time, keyed
// by the currently selected country code.
type CountryStore struct {
	*Store[models.CountryData]

	mu   sync.Mutex
	code string
}

// Select switches the scanner to a country and refreshes it.
func (c *CountryStore) Select(ctx context.Context, code string) models.Source {
	c.mu.Lock()
	c.code = strings.ToUpper(code)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Code returns the currently selected country code.
func (c *CountryStore) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// defaultConditions are the parallel finder's inputs when no live
// market read is available to derive them from.
var defaultConditions = models.MarketConditions{
	CAPE:         30.0,
	Rate:         4.5,
	Inflation:    3.0,
	Unemployment: 4.0,
	YieldSpread:  0.0,
}

// NewRegistry wires one store per domain against the backend, the mock
// generator, and the shared gate.
func NewRegistry(
	backend Backend,
	mocks MockSource,
	gate *Gate,
	deps StoreDeps,
	radarCache cache.Service,
	cfg RegistryConfig,
	listener StatusListener,
) *Registry {
	if cfg.DefaultCountry == "" {
		cfg.DefaultCountry = "US"
	}
	if cfg.RadarCacheTTL <= 0 {
		cfg.RadarCacheTTL = 5 * time.Minute
	}

	r := &Registry{stores: make(map[models.Domain]DomainStore)}

	bondsFetch := func(ctx context.Context) (models.BondMarket, error) {
		var (
			wg     sync.WaitGroup
			yields models.BondYields
			global models.GlobalBondData
			yErr   error
			gErr   error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			yields, yErr = backend.BondYields(ctx)
		}()
		go func() {
			defer wg.Done()
			global, gErr = backend.GlobalBonds(ctx)
		}()
		wg.Wait()
		if yErr != nil {
			return models.BondMarket{}, yErr
		}
		if gErr != nil {
			return models.BondMarket{}, gErr
		}

		snap := models.BondMarket{Yields: yields, Global: global}
		if p, ok := yields.CurrentCurve.Point("10Y"); ok {
			// The two feeds join on the 10Y maturity; the curve wins.
			snap.Global.USYield10Y = p.Yield
		}
		if bps, state, ok := market.CurveSpread(yields.CurrentCurve); ok {
			snap.SpreadBps = &bps
			snap.CurveState = string(state)
		}
		return snap, nil
	}

	whaleFetch := func(ctx context.Context) (models.WhaleRadar, error) {
		key := radarCacheKey(cfg.WhaleSymbols)
		var cached models.WhaleRadar
		if err := radarCache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			deps.Log.Warn("radar cache read failed", logger.Error(err))
		}

		radar, err := backend.WhaleRadar(ctx, cfg.WhaleSymbols)
		if err != nil {
			return models.WhaleRadar{}, err
		}
		if err := radarCache.Set(ctx, key, radar, cfg.RadarCacheTTL); err != nil {
			deps.Log.Warn("radar cache write failed", logger.Error(err))
		}
		return radar, nil
	}

	r.country = &CountryStore{code: strings.ToUpper(cfg.DefaultCountry)}
	countryFetch := func(ctx context.Context) (models.CountryData, error) {
		return backend.Country(ctx, r.country.Code())
	}
	countryMock := func() models.CountryData {
		if snap, ok := mocks.Country(r.country.Code()); ok {
			return snap
		}
		snap, _ := mocks.Country(cfg.DefaultCountry)
		return snap
	}

	register := func(store DomainStore) {
		r.stores[store.Domain()] = store
	}

	register(NewStore(models.DomainBonds, models.TopicBonds, deps, bondsFetch, mocks.Bonds, gate, WithListener[models.BondMarket](listener)))
	register(NewStore(models.DomainFX, models.TopicFX, deps, backend.FX, mocks.FX, gate, WithListener[models.FXMarket](listener)))
	register(NewStore(models.DomainStocks, models.TopicStocks, deps, backend.Stocks, mocks.Stocks, gate, WithListener[models.StockMarket](listener)))
	register(NewStore(models.DomainPolicy, models.TopicPolicy, deps, backend.Policy, mocks.Policy, gate, WithListener[models.PolicyData](listener)))
	register(NewStore(models.DomainEconomy, models.TopicEconomy, deps, backend.Economy, mocks.Economy, gate, WithListener[models.EconomyData](listener)))
	register(NewStore(models.DomainHistory, models.TopicHistory, deps,
		func(ctx context.Context) (models.HistoricalParallels, error) {
			return backend.History(ctx, defaultConditions)
		},
		mocks.History, gate, WithListener[models.HistoricalParallels](listener)))
	register(NewStore(models.DomainWhale, models.TopicWhale, deps, whaleFetch,
		func() models.WhaleRadar { return mocks.Whale(cfg.WhaleSymbols) },
		gate, WithListener[models.WhaleRadar](listener)))
	register(NewStore(models.DomainInsights, models.TopicInsight, deps, backend.Insights, mocks.Insights, gate, WithListener[models.InsightFeed](listener)))

	r.country.Store = NewStore(models.DomainCountry, models.TopicCountry, deps, countryFetch, countryMock, gate, WithListener[models.CountryData](listener))
	register(r.country)

	return r
}

// Get returns the store for a domain name.
func (r *Registry) Get(name string) (DomainStore, error) {
	store, ok := r.stores[models.Domain(name)]
	if !ok {
		return nil, fmt.Errorf("unknown domain '%s'", name)
	}
	return store, nil
}

// Country returns the country scanner store.
func (r *Registry) Country() *CountryStore { return r.country }

// All returns every registered store in display order.
func (r *Registry) All() []DomainStore {
	out := make([]DomainStore, 0, len(r.stores))
	for _, d := range models.AllDomains() {
		if store, ok := r.stores[d]; ok {
			out = append(out, store)
		}
	}
	return out
}

func radarCacheKey(symbols []string) string {
	if len(symbols) == 0 {
		return cache.GenerateKey("whale:radar", "all")
	}
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	for i := range sorted {
		sorted[i] = strings.ToUpper(sorted[i])
	}
	sort.Strings(sorted)
	return cache.GenerateKey("whale:radar", strings.Join(sorted, "_"))
}
