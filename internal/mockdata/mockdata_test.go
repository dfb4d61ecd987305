package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/market"
)

func testGenerator(seed int64) *Generator {
	fixed := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	return New(WithSeed(seed), WithClock(func() time.Time { return fixed }))
}

func TestBondsShape(t *testing.T) {
	g := testGenerator(1)
	snap := g.Bonds()

	require.Len(t, snap.Yields.CurrentCurve.Data, 11)
	require.Len(t, snap.Yields.PreviousCurve.Data, 11)
	require.Len(t, snap.Global.GlobalBonds, 8)
	require.Len(t, snap.Global.BondFlows, 6)

	require.NotNil(t, snap.SpreadBps)
	require.Contains(t, []string{"INVERTED", "FLATTENING", "NORMAL"}, snap.CurveState)

	for _, b := range snap.Global.GlobalBonds {
		if b.CountryCode == "US" {
			require.Zero(t, b.SpreadVsUS)
			require.Equal(t, snap.Global.USYield10Y, b.Yield10Y)
		}
		require.Contains(t, []string{"up", "down", "flat"}, b.Trend)
	}

	t.Run("previous curve sits below current", func(t *testing.T) {
		for i, p := range snap.Yields.CurrentCurve.Data {
			prev := snap.Yields.PreviousCurve.Data[i]
			require.Equal(t, p.Maturity, prev.Maturity)
			require.InDelta(t, p.Yield-0.15, prev.Yield, 1e-9)
		}
	})
}

func TestBondsStructureStableAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		snap := testGenerator(seed).Bonds()
		require.Len(t, snap.Yields.CurrentCurve.Data, 11, "seed %d", seed)
		require.Len(t, snap.Global.GlobalBonds, 8, "seed %d", seed)
		require.Len(t, snap.Global.BondFlows, 6, "seed %d", seed)
		require.NotNil(t, snap.SpreadBps, "seed %d", seed)
	}
}

func TestFXShape(t *testing.T) {
	g := testGenerator(2)
	snap := g.FX()

	require.Len(t, snap.MajorPairs, 5)
	require.Len(t, snap.CapitalFlows, 5)
	require.Contains(t, []string{"strong", "weak", "neutral"}, snap.DollarIndex.Trend)

	if snap.DollarIndex.Value > 104 {
		require.Equal(t, "risk_off", snap.RiskSentiment)
	} else {
		require.Equal(t, "risk_on", snap.RiskSentiment)
	}

	pairs := map[string]bool{}
	for _, p := range snap.MajorPairs {
		pairs[p.Pair] = true
	}
	for _, want := range []string{"USD/JPY", "EUR/USD", "GBP/USD", "USD/CNY", "USD/KRW"} {
		require.True(t, pairs[want], "missing pair %s", want)
	}
}

func TestStocksShape(t *testing.T) {
	g := testGenerator(3)
	snap := g.Stocks()

	require.Len(t, snap.GlobalIndices, 8)
	require.Len(t, snap.Sectors, 11)
	require.Len(t, snap.EquityFlows, 3)

	level, _ := market.VIXLevel(snap.VIX.Value)
	require.Equal(t, level, snap.VIX.Level)
	require.NotEmpty(t, snap.VIX.Description)
	require.GreaterOrEqual(t, snap.VIX.Value, 15.0)
	require.LessOrEqual(t, snap.VIX.Value, 35.0)

	t.Run("flows follow US performance", func(t *testing.T) {
		usSum, usCount := 0.0, 0
		for _, idx := range snap.GlobalIndices {
			if idx.Region == "US" {
				usSum += idx.Change
				usCount++
			}
		}
		require.Equal(t, 3, usCount)
		first := snap.EquityFlows[0]
		if usSum/float64(usCount) > 0 {
			require.Equal(t, "US", first.ToRegion)
			require.Equal(t, "risk_on", first.FlowType)
		} else {
			require.Equal(t, "US", first.FromRegion)
			require.Equal(t, "risk_off", first.FlowType)
		}
	})
}

func TestPolicyShape(t *testing.T) {
	g := testGenerator(4)
	snap := g.Policy()

	require.Len(t, snap.CentralBanks, 12)
	require.NotEmpty(t, snap.UpcomingMeetings)

	for _, b := range snap.CentralBanks {
		require.InDelta(t, b.CurrentRate-b.InflationRate, b.RealRate, 0.011, "bank %s", b.Code)
	}

	t.Run("meetings sorted by proximity", func(t *testing.T) {
		for i := 1; i < len(snap.UpcomingMeetings); i++ {
			require.LessOrEqual(t, snap.UpcomingMeetings[i-1].DaysUntil, snap.UpcomingMeetings[i].DaysUntil)
		}
	})

	t.Run("cutting banks expected to cut", func(t *testing.T) {
		byBank := map[string]string{}
		for _, b := range snap.CentralBanks {
			byBank[b.Bank] = b.Status
		}
		for _, m := range snap.UpcomingMeetings {
			if byBank[m.Bank] == "cutting" {
				require.Equal(t, "cut", m.ExpectedAction)
				require.Equal(t, 70, m.MarketProbability)
			}
		}
	})
}

func TestCountry(t *testing.T) {
	g := testGenerator(5)

	snap, ok := g.Country("kr")
	require.True(t, ok)
	require.Equal(t, "KR", snap.Profile.Code)
	require.Equal(t, "USD/KRW", snap.FX.Pair)
	require.Equal(t, market.Grade(snap.OverallScore), snap.OverallGrade)
	require.Equal(t, market.CompositeScore(snap.Metrics), snap.OverallScore)
	require.Equal(t, snap.Bond.Spread < 0, snap.Bond.IsInverted)

	for name, v := range map[string]float64{
		"currencyPower":   snap.Metrics.CurrencyPower,
		"marketSentiment": snap.Metrics.MarketSentiment,
		"creditRisk":      snap.Metrics.CreditRisk,
		"liquidity":       snap.Metrics.Liquidity,
		"inflation":       snap.Metrics.Inflation,
		"growth":          snap.Metrics.Growth,
	} {
		require.GreaterOrEqual(t, v, 0.0, name)
		require.LessOrEqual(t, v, 100.0, name)
	}

	_, ok = g.Country("ZZ")
	require.False(t, ok)

	t.Run("US profile has no vs-US spread", func(t *testing.T) {
		us, ok := g.Country("US")
		require.True(t, ok)
		require.Zero(t, us.Bond.VsUSSpread)
	})
}

func TestEconomyShape(t *testing.T) {
	g := testGenerator(6)
	snap := g.Economy()

	require.Len(t, snap.PMIData, 6)
	require.Len(t, snap.CPIData, 6)
	require.Len(t, snap.UpcomingEvents, 6)

	require.Contains(t, []string{"goldilocks", "risk_off", "risk_on", "mixed"}, snap.Commodities.OverallSignal)
	require.NotEmpty(t, snap.Commodities.Interpretation)

	for _, c := range []struct {
		name      string
		change1M  float64
		threshold float64
		signal    string
	}{
		{"oil", snap.Commodities.Oil.Change1M, 5, snap.Commodities.Oil.Signal},
		{"gold", snap.Commodities.Gold.Change1M, 3, snap.Commodities.Gold.Signal},
		{"copper", snap.Commodities.Copper.Change1M, 5, snap.Commodities.Copper.Signal},
	} {
		require.Equal(t, signalFor(c.change1M, c.threshold), c.signal, c.name)
	}

	for _, p := range snap.PMIData {
		require.Equal(t, p.Value > 50, p.IsExpansion, p.CountryCode)
	}
	for _, c := range snap.CPIData {
		require.Equal(t, c.Value > c.TargetRate, c.IsAboveTarget, c.CountryCode)
	}

	t.Run("calendar is ordered and ids are stable", func(t *testing.T) {
		for i, e := range snap.UpcomingEvents {
			require.Equal(t, "event-"+string(rune('0'+i)), e.ID)
			require.NotNil(t, e.Forecast)
			require.NotNil(t, e.Previous)
		}
		for i := 1; i < len(snap.UpcomingEvents); i++ {
			require.Less(t, snap.UpcomingEvents[i-1].Date, snap.UpcomingEvents[i].Date)
		}
	})
}

func TestHistoryShape(t *testing.T) {
	g := testGenerator(7)
	snap := g.History()

	require.Len(t, snap.Matches, 5)
	require.NotEmpty(t, snap.HistoricalContext)
	require.NotZero(t, snap.CurrentConditions.CAPE)

	for i := 1; i < len(snap.Matches); i++ {
		require.GreaterOrEqual(t, snap.Matches[i-1].Similarity, snap.Matches[i].Similarity)
	}
}

func TestWhaleShape(t *testing.T) {
	g := testGenerator(8)
	snap := g.Whale(nil)

	require.Len(t, snap.Alerts, len(insiderSeeds))
	require.Equal(t, len(snap.Alerts), snap.Summary.TotalSignals)
	require.Equal(t, snap.Summary.Bullish+snap.Summary.Bearish, snap.Summary.TotalSignals)
	require.NotEmpty(t, snap.AIContext)
	require.LessOrEqual(t, len(snap.Blips), 20)

	for _, b := range snap.Blips {
		require.GreaterOrEqual(t, b.Angle, 0.0)
		require.Less(t, b.Angle, 360.0)
		require.GreaterOrEqual(t, b.Distance, 0.4)
		require.LessOrEqual(t, b.Distance, 1.0)
		switch b.Signal {
		case "bullish":
			require.Equal(t, "#10b981", b.Color)
		case "bearish":
			require.Equal(t, "#ef4444", b.Color)
		default:
			require.Equal(t, "#f59e0b", b.Color)
		}
	}

	t.Run("symbol filter narrows alerts", func(t *testing.T) {
		filtered := g.Whale([]string{"nvda", "TSLA"})
		require.Len(t, filtered.Alerts, 2)
		for _, a := range filtered.Alerts {
			require.Contains(t, []string{"NVDA", "TSLA"}, a.Symbol)
		}
	})
}

func TestInsightsShape(t *testing.T) {
	g := testGenerator(9)
	snap := g.Insights()

	require.Len(t, snap.Articles, 8)
	require.Equal(t, 8, snap.Count)
	require.Equal(t, "mock001", snap.Articles[0].ID)
	for _, a := range snap.Articles {
		require.NotEmpty(t, a.Source)
		require.NotEmpty(t, a.Title)
		require.NotEmpty(t, a.Summary)
	}
}

func TestBiasForConditions(t *testing.T) {
	cases := []struct {
		name     string
		vix, rsi float64
		change1M float64
		want     string
	}{
		{"high vix wins", 32, 80, 10, "Loss Aversion"},
		{"overheated rsi", 20, 75, 0, "Confirmation Bias"},
		{"calm vix", 11, 0, 0, "Overconfidence"},
		{"moderate gains", 20, 0, 8, "Disposition Effect"},
		{"strong trend", 20, 0, -12, "Recency Bias"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bias := BiasForConditions(tc.vix, tc.rsi, tc.change1M)
			require.NotNil(t, bias)
			require.Equal(t, tc.want, bias.Name)
		})
	}

	require.Nil(t, BiasForConditions(20, 50, 1))
}

func TestRepeatedGenerationKeepsShape(t *testing.T) {
	g := testGenerator(10)
	for i := 0; i < 5; i++ {
		require.Len(t, g.Bonds().Global.GlobalBonds, 8)
		require.Len(t, g.FX().MajorPairs, 5)
		require.Len(t, g.Stocks().Sectors, 11)
		require.Len(t, g.Policy().CentralBanks, 12)
		require.Len(t, g.Economy().UpcomingEvents, 6)
		require.Len(t, g.History().Matches, 5)
		require.Len(t, g.Insights().Articles, 8)
	}
}
