package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"InsightFlow/internal/domain/models"
	svccache "InsightFlow/internal/service/cache"
)

const analysisKeyPrefix = "insightflow:analysis:"

// AnalysisCache stores finished analyses as JSON under their daily keys.
// The backing store decides locality: Redis in multi-node deployments,
// in-process memory otherwise.
type AnalysisCache struct {
	store svccache.BytesCache
}

func NewAnalysisCache(store svccache.BytesCache) *AnalysisCache {
	return &AnalysisCache{store: store}
}

func (c *AnalysisCache) Get(ctx context.Context, key string) (*models.AnalysisResult, bool, error) {
	b, ok, err := c.store.GetBytes(analysisKeyPrefix + key)
	if err != nil {
		return nil, false, fmt.Errorf("analysis cache get: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, false, fmt.Errorf("analysis cache decode: %w", err)
	}
	return &result, true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("analysis cache encode: %w", err)
	}
	if err := c.store.SetBytes(analysisKeyPrefix+key, b, ttl); err != nil {
		return fmt.Errorf("analysis cache set: %w", err)
	}
	return nil
}
