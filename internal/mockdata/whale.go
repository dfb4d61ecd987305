package mockdata

import (
	"fmt"
	"sort"
	"strings"

	"InsightFlow/internal/domain/models"
)

type insiderSeed struct {
	symbol, company, reporter, title string

	isBuy    bool
	value    float64
	daysAgo  int
}

// Representative SEC Form 4 activity shown when the tracker upstream
// is unavailable.
var insiderSeeds = []insiderSeed{
	{"AAPL", "Apple Inc.", "Tim Cook", "CEO", false, 9275000, 1},
	{"NVDA", "NVIDIA Corporation", "Jensen Huang", "CEO", false, 54500000, 2},
	{"META", "Meta Platforms Inc.", "Mark Zuckerberg", "CEO", true, 14375000, 3},
	{"TSLA", "Tesla Inc.", "Robyn Denholm", "Chairman", true, 2125000, 4},
	{"JPM", "JPMorgan Chase & Co.", "Jamie Dimon", "CEO", true, 2450000, 5},
	{"MSFT", "Microsoft Corporation", "Satya Nadella", "CEO", false, 14700000, 2},
	{"GOOGL", "Alphabet Inc.", "Sundar Pichai", "CEO", false, 3700000, 3},
	{"AMZN", "Amazon.com Inc.", "Andy Jassy", "CEO", false, 6200000, 4},
}

var magnitudeStrength = map[string]float64{
	"massive":     1.0,
	"large":       0.8,
	"significant": 0.6,
	"moderate":    0.4,
}

// Whale builds the smart-money radar snapshot. When symbols is empty
// the full seed set is used.
func (g *Generator) Whale(symbols []string) models.WhaleRadar {
	now := g.now()

	want := map[string]bool{}
	for _, s := range symbols {
		want[strings.ToUpper(strings.TrimSpace(s))] = true
	}

	alerts := make([]models.WhaleAlert, 0, len(insiderSeeds))
	for _, seed := range insiderSeeds {
		if len(want) > 0 && !want[seed.symbol] {
			continue
		}

		signal, verb := "bearish", "sold"
		if seed.isBuy {
			signal, verb = "bullish", "bought"
		}
		magnitude := magnitudeFor(seed.value)
		alerts = append(alerts, models.WhaleAlert{
			AlertType:   "insider",
			Symbol:      seed.symbol,
			Headline:    fmt.Sprintf("%s %s $%.0f of %s", seed.reporter, verb, seed.value, seed.symbol),
			Description: fmt.Sprintf("%s at %s", seed.title, seed.company),
			Signal:      signal,
			Magnitude:   magnitude,
			Timestamp:   now.AddDate(0, 0, -seed.daysAgo).Format("2006-01-02"),
			Source:      "SEC Form 4",
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp > alerts[j].Timestamp
	})

	bullish, bearish := 0, 0
	for _, a := range alerts {
		switch a.Signal {
		case "bullish":
			bullish++
		case "bearish":
			bearish++
		}
	}
	sentiment := "neutral"
	if bullish > bearish {
		sentiment = "bullish"
	} else if bearish > bullish {
		sentiment = "bearish"
	}

	clusters := make([]models.WhaleAlert, 0)
	for _, a := range alerts {
		if a.AlertType == "cluster" {
			clusters = append(clusters, a)
		}
	}

	return models.WhaleRadar{
		Timestamp: now.Format("2006-01-02T15:04:05"),
		Summary: models.RadarSummary{
			TotalSignals: len(alerts),
			Bullish:      bullish,
			Bearish:      bearish,
			Sentiment:    sentiment,
		},
		Alerts:    alerts,
		Clusters:  clusters,
		Blips:     radarBlips(alerts),
		AIContext: aiContext(now.Format("2006-01-02T15:04:05"), alerts, bullish, bearish),
	}
}

func magnitudeFor(value float64) string {
	switch {
	case value >= 10_000_000:
		return "massive"
	case value >= 1_000_000:
		return "large"
	case value >= 100_000:
		return "significant"
	default:
		return "moderate"
	}
}

// radarBlips spreads alerts evenly around the sonar circle. Bigger
// moves land closer to the center and glow stronger.
func radarBlips(alerts []models.WhaleAlert) []models.RadarBlip {
	const maxBlips = 20
	n := len(alerts)
	if n > maxBlips {
		n = maxBlips
	}
	if n == 0 {
		return []models.RadarBlip{}
	}

	blips := make([]models.RadarBlip, 0, n)
	for i, a := range alerts[:n] {
		strength, ok := magnitudeStrength[a.Magnitude]
		if !ok {
			strength = 0.5
		}

		color := "#f59e0b"
		switch a.Signal {
		case "bullish":
			color = "#10b981"
		case "bearish":
			color = "#ef4444"
		}

		blips = append(blips, models.RadarBlip{
			Symbol:    a.Symbol,
			Angle:     float64(i) * 360 / float64(n),
			Distance:  1.0 - strength*0.6,
			Strength:  strength,
			Label:     a.Headline,
			Color:     color,
			Type:      a.AlertType,
			Signal:    a.Signal,
			Timestamp: a.Timestamp,
		})
	}
	return blips
}

func aiContext(scanTime string, alerts []models.WhaleAlert, bullish, bearish int) string {
	if len(alerts) == 0 {
		return "No significant whale activity detected recently."
	}

	var b strings.Builder
	b.WriteString("=== WHALE RADAR - SMART MONEY ACTIVITY ===\n")
	fmt.Fprintf(&b, "Scan Time: %s\n\n", scanTime)
	fmt.Fprintf(&b, "Signal Summary: %d bullish, %d bearish\n\n", bullish, bearish)
	b.WriteString("Key Alerts:\n")
	for i, a := range alerts {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "  [%s] %s\n", a.Symbol, a.Headline)
	}
	b.WriteString("\n=== END WHALE RADAR ===")
	return b.String()
}
