package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
	svccache "InsightFlow/internal/service/cache"
)

func TestAnalysisCacheRoundTrip(t *testing.T) {
	c := NewAnalysisCache(svccache.NewMemoryBytes())
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "bonds_ko_2025-06-02")
	require.NoError(t, err)
	require.False(t, ok)

	stored := &models.AnalysisResult{
		Perspectives: []models.Perspective{{Persona: "kostolany", Analysis: "liquidity first"}},
		Synthesis:    "hold duration",
	}
	require.NoError(t, c.Set(ctx, "bonds_ko_2025-06-02", stored, time.Minute))

	got, ok, err := c.Get(ctx, "bonds_ko_2025-06-02")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, stored, got)
}

func TestAnalysisCacheExpires(t *testing.T) {
	c := NewAnalysisCache(svccache.NewMemoryBytes())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "fx_ko_2025-06-02", &models.AnalysisResult{Synthesis: "s"}, time.Nanosecond))
	time.Sleep(2 * time.Millisecond)

	_, ok, err := c.Get(ctx, "fx_ko_2025-06-02")
	require.NoError(t, err)
	require.False(t, ok)
}
