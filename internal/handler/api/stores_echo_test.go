package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
	internalrepo "InsightFlow/internal/repository"
	"InsightFlow/internal/mockdata"
	svccache "InsightFlow/internal/service/cache"
	"InsightFlow/internal/service/ratelimit"
	"InsightFlow/internal/usecase"
	pkgcache "InsightFlow/pkg/cache"
	"InsightFlow/pkg/logger"
)

// downBackend has no live upstream; every fetch fails and the analysis
// probe serves a canned cached result.
type downBackend struct {
	cached *models.AnalysisResult
}

var errDown = errors.New("upstream unavailable")

func (b *downBackend) BondYields(context.Context) (models.BondYields, error) {
	return models.BondYields{}, errDown
}
func (b *downBackend) GlobalBonds(context.Context) (models.GlobalBondData, error) {
	return models.GlobalBondData{}, errDown
}
func (b *downBackend) FX(context.Context) (models.FXMarket, error) {
	return models.FXMarket{}, errDown
}
func (b *downBackend) Stocks(context.Context) (models.StockMarket, error) {
	return models.StockMarket{}, errDown
}
func (b *downBackend) Policy(context.Context) (models.PolicyData, error) {
	return models.PolicyData{}, errDown
}
func (b *downBackend) Country(context.Context, string) (models.CountryData, error) {
	return models.CountryData{}, errDown
}
func (b *downBackend) Economy(context.Context) (models.EconomyData, error) {
	return models.EconomyData{}, errDown
}
func (b *downBackend) History(context.Context, models.MarketConditions) (models.HistoricalParallels, error) {
	return models.HistoricalParallels{}, errDown
}
func (b *downBackend) WhaleRadar(context.Context, []string) (models.WhaleRadar, error) {
	return models.WhaleRadar{}, errDown
}
func (b *downBackend) Insights(context.Context) (models.InsightFeed, error) {
	return models.InsightFeed{}, errDown
}
func (b *downBackend) CachedAnalysis(context.Context, models.Topic, domrepo.Language, string) (models.CachedAnalysis, error) {
	if b.cached == nil {
		return models.CachedAnalysis{}, errDown
	}
	return models.CachedAnalysis{Cached: true, Result: b.cached}, nil
}
func (b *downBackend) Analyze(context.Context, models.Topic, interface{}) (*models.AnalysisResult, error) {
	return nil, errDown
}

func testHandler(t *testing.T) *StoresEchoHandler {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	backend := &downBackend{
		cached: &models.AnalysisResult{
			Perspectives: []models.Perspective{{Persona: "kostolany", Analysis: "patience"}},
			Synthesis:    "wait it out",
		},
	}
	deps := usecase.StoreDeps{
		Log:     log,
		Metrics: noMetrics{},
		Audit:   internalrepo.NoopAudit{},
		Events:  internalrepo.NoopPublisher{},
	}
	gate := usecase.NewGate(backend, internalrepo.NewAnalysisCache(svccache.NewMemoryBytes()),
		noMetrics{}, internalrepo.NoopPublisher{}, log)
	registry := usecase.NewRegistry(backend, mockdata.New(mockdata.WithSeed(3)), gate, deps,
		pkgcache.NewMemoryCache(), usecase.RegistryConfig{}, nil)

	return NewStoresEchoHandler(log, registry, internalrepo.NoopAudit{}, ratelimit.New())
}

type noMetrics struct{}

func (noMetrics) RecordRefresh(models.Domain, models.Source) {}
func (noMetrics) RecordAnalysis(models.Topic, string)        {}
func (noMetrics) RecordError(string)                         {}
func (noMetrics) RecordLatency(string, float64)              {}

func doRequest(h *StoresEchoHandler, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRefreshThenProjectionServesFallbackSnapshot(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/fx/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"source":"fallback"`)
	require.Contains(t, rec.Body.String(), `"status":"done"`)

	rec = doRequest(h, http.MethodGet, "/api/fx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "majorPairs")
}

func TestProjectionUnknownDomain(t *testing.T) {
	h := testHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/crypto", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeServesCachedDebate(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/analyze/bonds", `{"language":"ko"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "wait it out")

	rec = doRequest(h, http.MethodGet, "/api/analyze/bonds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"done"`)
}

func TestAnalyzeRejectsUnknownLanguage(t *testing.T) {
	h := testHandler(t)
	rec := doRequest(h, http.MethodPost, "/api/analyze/bonds", `{"language":"fr"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRateLimited(t *testing.T) {
	h := testHandler(t)

	var last int
	for i := 0; i < 8; i++ {
		rec := doRequest(h, http.MethodPost, "/api/analyze/stocks", `{"language":"ko"}`)
		last = rec.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}

func TestSelectCountryValidatesCode(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/country/kr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"KR"`)

	rec = doRequest(h, http.MethodGet, "/api/country/usa", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentRefreshesEmptyTrail(t *testing.T) {
	h := testHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/system/refreshes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":0`)
}
