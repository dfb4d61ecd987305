package market

import (
	"github.com/shopspring/decimal"

	"InsightFlow/internal/domain/models"
)

// CurveState classifies the 10Y-2Y spread.
type CurveState string

const (
	CurveInverted   CurveState = "INVERTED"
	CurveFlattening CurveState = "FLATTENING"
	CurveNormal     CurveState = "NORMAL"
)

// FlatteningThresholdBps separates a flattening curve from a normal one.
const FlatteningThresholdBps = 50

var hundred = decimal.NewFromInt(100)

// SpreadBps returns (y10 - y2) in basis points. Computed in decimal so that
// boundary inputs like 4.00/4.20 land exactly on -20 instead of a float
// neighbour.
func SpreadBps(y10, y2 float64) float64 {
	bps := decimal.NewFromFloat(y10).Sub(decimal.NewFromFloat(y2)).Mul(hundred)
	f, _ := bps.Float64()
	return f
}

// ClassifyCurve maps a spread in bps to its curve state.
func ClassifyCurve(bps float64) CurveState {
	switch {
	case bps < 0:
		return CurveInverted
	case bps < FlatteningThresholdBps:
		return CurveFlattening
	default:
		return CurveNormal
	}
}

// CurveSpread reads the 2Y and 10Y points off a curve. ok is false when
// either maturity is missing; callers render that as N/A rather than fail.
func CurveSpread(curve models.YieldCurve) (bps float64, state CurveState, ok bool) {
	p10, ok10 := curve.Point("10Y")
	p2, ok2 := curve.Point("2Y")
	if !ok10 || !ok2 {
		return 0, "", false
	}
	bps = SpreadBps(p10.Yield, p2.Yield)
	return bps, ClassifyCurve(bps), true
}
