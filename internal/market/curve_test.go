package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
)

func TestSpreadBps(t *testing.T) {
	t.Run("inverted curve", func(t *testing.T) {
		bps := SpreadBps(4.00, 4.20)
		require.InDelta(t, -20.0, bps, 1e-9)
		require.Equal(t, CurveInverted, ClassifyCurve(bps))
	})

	t.Run("normal at the flattening threshold", func(t *testing.T) {
		bps := SpreadBps(4.50, 4.00)
		require.InDelta(t, 50.0, bps, 1e-9)
		require.Equal(t, CurveNormal, ClassifyCurve(bps))
	})

	t.Run("flattening below threshold", func(t *testing.T) {
		require.Equal(t, CurveFlattening, ClassifyCurve(49.99))
		require.Equal(t, CurveFlattening, ClassifyCurve(0))
	})
}

func TestCurveSpread(t *testing.T) {
	curve := models.YieldCurve{
		Date: "2025-03-07",
		Data: []models.YieldPoint{
			{Maturity: "2Y", Yield: 4.85},
			{Maturity: "10Y", Yield: 4.55},
		},
	}

	bps, state, ok := CurveSpread(curve)
	require.True(t, ok)
	require.InDelta(t, -30.0, bps, 1e-9)
	require.Equal(t, CurveInverted, state)
}

func TestCurveSpreadMissingMaturity(t *testing.T) {
	curve := models.YieldCurve{
		Data: []models.YieldPoint{{Maturity: "10Y", Yield: 4.55}},
	}
	_, _, ok := CurveSpread(curve)
	require.False(t, ok)
}
