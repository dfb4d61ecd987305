package mockdata

import "InsightFlow/internal/domain/models"

var fxPairs = []struct {
	pair    string
	base    float64
	span    float64
	chSpan  float64
	high24H float64
	low24H  float64
}{
	{"USD/JPY", 154.5, 2, 1.5, 155.2, 153.8},
	{"EUR/USD", 1.085, 0.01, 1, 1.092, 1.082},
	{"GBP/USD", 1.27, 0.01, 1, 1.278, 1.265},
	{"USD/CNY", 7.24, 0.02, 0.5, 7.26, 7.22},
	{"USD/KRW", 1380, 20, 1, 1395, 1370},
}

// FX builds the currency snapshot. Capital flow direction follows the
// dollar: a strong DXY pulls volume toward USD legs and flips the risk
// sentiment to risk-off.
func (g *Generator) FX() models.FXMarket {
	ts := g.now().Format("2006-01-02T15:04:05")

	dxy := round2(104.5 + g.jit(2))
	strong := dxy > 104
	trend := "neutral"
	switch {
	case dxy > 105:
		trend = "strong"
	case dxy < 103:
		trend = "weak"
	}

	pairs := make([]models.FXPair, 0, len(fxPairs))
	for _, p := range fxPairs {
		pairs = append(pairs, models.FXPair{
			Pair:      p.pair,
			Rate:      round4(p.base + g.jit(p.span)),
			Change24H: round2(g.jit(p.chSpan)),
			High24H:   p.high24H,
			Low24H:    p.low24H,
			Timestamp: ts,
		})
	}

	sentiment := "risk_on"
	if strong {
		sentiment = "risk_off"
	}

	return models.FXMarket{
		DollarIndex: models.DollarIndex{
			Value:     dxy,
			Change24H: round2(g.jit(1.5)),
			Trend:     trend,
		},
		MajorPairs:    pairs,
		CapitalFlows:  capitalFlows(strong),
		RiskSentiment: sentiment,
		LastUpdated:   ts,
	}
}

func capitalFlows(strongDollar bool) []models.CapitalFlow {
	pickVol := func(strong, weak float64) float64 {
		if strongDollar {
			return strong
		}
		return weak
	}
	swingType := "risk_on"
	if strongDollar {
		swingType = "risk_off"
	}
	return []models.CapitalFlow{
		{From: "USA", To: "Japan", Volume: pickVol(0.3, 0.6), FlowType: swingType},
		{From: "EU", To: "USA", Volume: pickVol(0.7, 0.4), FlowType: swingType},
		{From: "USA", To: "China", Volume: 0.4, FlowType: "risk_on"},
		{From: "Japan", To: "USA", Volume: pickVol(0.5, 0.3), FlowType: "risk_off"},
		{From: "USA", To: "Korea", Volume: 0.35, FlowType: "risk_on"},
	}
}
