package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/domain/repository"
)

func TestClientFetchesDomainSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/bonds/yields":
			json.NewEncoder(w).Encode(models.BondYields{
				CurrentCurve: models.YieldCurve{
					Date: "2025-06-02",
					Data: []models.YieldPoint{{Maturity: "10Y", Yield: 4.55, Date: "2025-06-02"}},
				},
			})
		case "/api/fx/data":
			json.NewEncoder(w).Encode(models.FXMarket{RiskSentiment: "risk_off"})
		case "/api/country/KR":
			json.NewEncoder(w).Encode(models.CountryData{OverallGrade: "B+", OverallScore: 72})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	yields, err := c.BondYields(ctx)
	require.NoError(t, err)
	require.Equal(t, "2025-06-02", yields.CurrentCurve.Date)

	fx, err := c.FX(ctx)
	require.NoError(t, err)
	require.Equal(t, "risk_off", fx.RiskSentiment)

	country, err := c.Country(ctx, "kr")
	require.NoError(t, err)
	require.Equal(t, 72, country.OverallScore)
}

func TestClientSurfacesUpstreamFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Stocks(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "/api/stocks/global")
}

func TestCachedAnalysisNormalizesLegacyPayload(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analyze/bonds/cached", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"cached":true,"result":{
			"kostolany_response":"k","buffett_response":"b",
			"munger_response":"m","dalio_response":"d","synthesis":"s"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.CachedAnalysis(context.Background(), models.TopicBonds, repository.LangKorean, "")
	require.NoError(t, err)
	require.True(t, out.Cached)
	require.Contains(t, gotQuery, "language=ko")

	require.NotNil(t, out.Result)
	require.Len(t, out.Result.Perspectives, 4)
	require.Equal(t, "kostolany", out.Result.Perspectives[0].Persona)
	require.Equal(t, "s", out.Result.Synthesis)
}

func TestCachedAnalysisPairScopedQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "USD/JPY", r.URL.Query().Get("selected_pair"))
		w.Write([]byte(`{"cached":false,"result":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.CachedAnalysis(context.Background(), models.TopicFX, repository.LangEnglish, "USD/JPY")
	require.NoError(t, err)
	require.False(t, out.Cached)
	require.Nil(t, out.Result)
}

func TestAnalyzePostsContextAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze/whale", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ko", body["language"])

		w.Write([]byte(`{"spy_response":"watching","soros_response":"reflexivity",
			"buffett_response":"patience","burry_response":"contrarian","synthesis":"mixed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.Analyze(context.Background(), models.TopicWhale, map[string]interface{}{"language": "ko"})
	require.NoError(t, err)
	require.Len(t, result.Perspectives, 4)
	require.Equal(t, "spy", result.Perspectives[0].Persona)
	require.Equal(t, "burry", result.Perspectives[3].Persona)
}
