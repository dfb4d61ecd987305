// Package upstream is the typed client for the Insight-Flow REST
// backend that feeds every dashboard store.
package upstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"InsightFlow/internal/domain/models"
	"InsightFlow/internal/domain/repository"
	xhttp "InsightFlow/pkg/http"
)

// Client wraps the backend's JSON API. All methods issue exactly one
// request and surface transport, status, and decode failures as errors
// for the caller to branch on.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client = xhttp.NewClient(xhttp.WithTimeout(timeout))
	}
}

// NewClient builds an upstream client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  xhttp.NewClient(xhttp.WithTimeout(15 * time.Second)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest interface{}) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + path,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// BondYields fetches the Treasury curve pair.
func (c *Client) BondYields(ctx context.Context) (models.BondYields, error) {
	var out models.BondYields
	err := c.getJSON(ctx, "/api/bonds/yields", nil, &out)
	return out, err
}

// GlobalBonds fetches the cross-country 10Y table and flow edges.
func (c *Client) GlobalBonds(ctx context.Context) (models.GlobalBondData, error) {
	var out models.GlobalBondData
	err := c.getJSON(ctx, "/api/bonds/global", nil, &out)
	return out, err
}

// FX fetches the currency snapshot.
func (c *Client) FX(ctx context.Context) (models.FXMarket, error) {
	var out models.FXMarket
	err := c.getJSON(ctx, "/api/fx/data", nil, &out)
	return out, err
}

// Stocks fetches the global equities snapshot.
func (c *Client) Stocks(ctx context.Context) (models.StockMarket, error) {
	var out models.StockMarket
	err := c.getJSON(ctx, "/api/stocks/global", nil, &out)
	return out, err
}

// Policy fetches the central-bank snapshot.
func (c *Client) Policy(ctx context.Context) (models.PolicyData, error) {
	var out models.PolicyData
	err := c.getJSON(ctx, "/api/policy/global", nil, &out)
	return out, err
}

// Country fetches one country profile.
func (c *Client) Country(ctx context.Context, code string) (models.CountryData, error) {
	var out models.CountryData
	err := c.getJSON(ctx, "/api/country/"+strings.ToUpper(code), nil, &out)
	return out, err
}

// Economy fetches commodities, PMI, CPI, and the release calendar.
func (c *Client) Economy(ctx context.Context) (models.EconomyData, error) {
	var out models.EconomyData
	err := c.getJSON(ctx, "/api/economy/data", nil, &out)
	return out, err
}

// History fetches the historical parallels for the given conditions.
func (c *Client) History(ctx context.Context, cond models.MarketConditions) (models.HistoricalParallels, error) {
	query := map[string][]string{
		"cape":         {fmt.Sprintf("%g", cond.CAPE)},
		"rate":         {fmt.Sprintf("%g", cond.Rate)},
		"inflation":    {fmt.Sprintf("%g", cond.Inflation)},
		"unemployment": {fmt.Sprintf("%g", cond.Unemployment)},
		"yield_spread": {fmt.Sprintf("%g", cond.YieldSpread)},
	}
	var out models.HistoricalParallels
	err := c.getJSON(ctx, "/api/history/parallel", query, &out)
	return out, err
}

// WhaleRadar fetches the smart-money radar, optionally scoped to symbols.
func (c *Client) WhaleRadar(ctx context.Context, symbols []string) (models.WhaleRadar, error) {
	var query map[string][]string
	if len(symbols) > 0 {
		query = map[string][]string{"symbols": {strings.Join(symbols, ",")}}
	}
	var out models.WhaleRadar
	err := c.getJSON(ctx, "/api/whale/radar", query, &out)
	return out, err
}

// Insights fetches the institutional article feed.
func (c *Client) Insights(ctx context.Context) (models.InsightFeed, error) {
	var out models.InsightFeed
	err := c.getJSON(ctx, "/api/insights/list", nil, &out)
	return out, err
}

// CachedAnalysis probes the backend's daily analysis cache for a topic.
// A cached=false reply is not an error.
func (c *Client) CachedAnalysis(ctx context.Context, topic models.Topic, language repository.Language, extra string) (models.CachedAnalysis, error) {
	query := map[string][]string{"language": {string(language)}}
	switch topic {
	case models.TopicFX:
		if extra != "" {
			query["selected_pair"] = []string{extra}
		}
	case models.TopicInsight:
		if extra != "" {
			query["article_id"] = []string{extra}
		}
	}
	var out models.CachedAnalysis
	err := c.getJSON(ctx, fmt.Sprintf("/api/analyze/%s/cached", topic), query, &out)
	if err != nil {
		return models.CachedAnalysis{}, err
	}
	if out.Result != nil {
		out.Result.Normalize()
	}
	return out, nil
}

// Analyze runs a fresh board analysis for a topic. The payload carries
// the domain context the personas debate over.
func (c *Client) Analyze(ctx context.Context, topic models.Topic, payload interface{}) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	if err := c.postJSON(ctx, fmt.Sprintf("/api/analyze/%s", topic), payload, &out); err != nil {
		return nil, err
	}
	out.Normalize()
	return &out, nil
}
