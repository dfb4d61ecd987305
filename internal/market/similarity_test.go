package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
)

func TestSimilarityIdenticalConditions(t *testing.T) {
	c := models.MarketConditions{CAPE: 30, Rate: 4.5, Inflation: 3, Unemployment: 4, YieldSpread: -0.3}
	require.Equal(t, 100.0, Similarity(c, c))
}

func TestSimilarityOrdersByCloseness(t *testing.T) {
	current := models.MarketConditions{CAPE: 30, Rate: 4.5, Inflation: 3, Unemployment: 4, YieldSpread: -0.3}
	near := models.MarketConditions{CAPE: 31, Rate: 4.3, Inflation: 3.2, Unemployment: 4.1, YieldSpread: -0.2}
	far := models.MarketConditions{CAPE: 8, Rate: 15, Inflation: 13, Unemployment: 20, YieldSpread: 3}

	require.Greater(t, Similarity(current, near), Similarity(current, far))
}

func TestRankParallels(t *testing.T) {
	current := models.MarketConditions{CAPE: 30, Rate: 4.5, Inflation: 3, Unemployment: 4, YieldSpread: -0.3}
	eras := []Era{
		{Year: 1929, PeriodName: "Pre-crash peak", Conditions: models.MarketConditions{CAPE: 32, Rate: 4.2, Inflation: 0.6, Unemployment: 3.2, YieldSpread: 0.5}},
		{Year: 1981, PeriodName: "Volcker squeeze", Conditions: models.MarketConditions{CAPE: 8, Rate: 15.8, Inflation: 10.3, Unemployment: 7.6, YieldSpread: -1.7}},
		{Year: 2000, PeriodName: "Dot-com top", Conditions: models.MarketConditions{CAPE: 43, Rate: 6.0, Inflation: 3.4, Unemployment: 4.0, YieldSpread: -0.5}},
	}

	got := RankParallels(current, eras, 2)
	require.Len(t, got, 2)
	require.GreaterOrEqual(t, got[0].Similarity, got[1].Similarity)
	require.NotEqual(t, 1981, got[0].Year, "the Volcker era is the clear outlier")
}
