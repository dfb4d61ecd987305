package mockdata

import (
	"fmt"
	"time"

	"InsightFlow/internal/domain/models"
)

var articleSeeds = []struct {
	source, title, url, summary string
	age                         time.Duration
}{
	{"IMF Blog", "Global Economic Outlook: Navigating Uncertainty", "https://www.imf.org/en/Blogs/example",
		"The global economy faces a complex mix of challenges including persistent inflation in some regions, shifting monetary policies, and geopolitical tensions. Growth projections remain cautious amid evolving risks.", 2 * time.Hour},
	{"Fed St. Louis", "Understanding the Current Yield Curve Dynamics", "https://www.stlouisfed.org/on-the-economy/example",
		"The yield curve has been sending mixed signals about the economic outlook. This article examines what the current spread tells us about investor expectations and potential recession indicators.", 5 * time.Hour},
	{"BIS", "Central Bank Digital Currencies: Progress and Challenges", "https://www.bis.org/publ/example",
		"Central banks worldwide are actively exploring CBDCs. This bulletin examines the latest developments and potential implications for the global financial system, payments infrastructure, and monetary policy.", 8 * time.Hour},
	{"ECB Blog", "Inflation Persistence in the Euro Area: A Deep Dive", "https://www.ecb.europa.eu/press/blog/example",
		"While headline inflation has moderated, core inflation remains sticky in the euro area. This analysis explores the drivers of inflation persistence and implications for monetary policy normalization.", 12 * time.Hour},
	{"World Bank", "Emerging Markets: Resilience Amid Global Headwinds", "https://blogs.worldbank.org/example",
		"Despite challenging global conditions, many emerging markets have shown remarkable resilience. This post examines the factors contributing to their performance and risks that remain on the horizon.", 18 * time.Hour},
	{"IMF Blog", "The Great Fiscal Challenge: Managing Public Debt", "https://www.imf.org/en/Blogs/example2",
		"Government debt levels have surged globally following pandemic-era fiscal support. This article discusses strategies for fiscal consolidation while maintaining growth and social protection.", 24 * time.Hour},
	{"Fed St. Louis", "Labor Market Dynamics: What the Data Tells Us", "https://www.stlouisfed.org/on-the-economy/example2",
		"The US labor market continues to show strength despite rate hikes. This analysis examines job openings, wage growth, and participation trends to assess labor market tightness.", 30 * time.Hour},
	{"BIS", "Global Banking Sector: Stress Tests and Resilience", "https://www.bis.org/publ/example2",
		"Following recent banking sector turbulence, this report assesses the health of global banks through stress test results and capital adequacy metrics. Overall, the system remains resilient.", 48 * time.Hour},
}

// Insights builds the institutional reading-list snapshot. The optional
// bias warning is keyed off a jittered VIX so the contrarian banner
// still appears under the same conditions as with live data.
func (g *Generator) Insights() models.InsightFeed {
	now := g.now()

	articles := make([]models.Article, 0, len(articleSeeds))
	for i, seed := range articleSeeds {
		articles = append(articles, models.Article{
			ID:          fmt.Sprintf("mock%03d", i+1),
			Source:      seed.source,
			Title:       seed.title,
			URL:         seed.url,
			Summary:     seed.summary,
			PublishedAt: now.Add(-seed.age).Format("2006-01-02T15:04:05"),
		})
	}

	vix := 15 + g.r.Float64()*20
	return models.InsightFeed{
		Articles:  articles,
		Count:     len(articles),
		FetchedAt: now.Format("2006-01-02T15:04:05"),
		Bias:      BiasForConditions(vix, 0, 0),
	}
}

// BiasForConditions picks the behavioral-bias warning matching current
// market conditions, or nil when none applies.
func BiasForConditions(vix, rsi, marketChange1M float64) *models.BehavioralBias {
	switch {
	case vix > 30:
		return &models.BehavioralBias{
			Name:        "Loss Aversion",
			Description: "High fear makes losses loom larger than gains. Panic selling locks in damage that patience would repair.",
			Severity:    "high_fear",
		}
	case rsi > 70:
		return &models.BehavioralBias{
			Name:        "Confirmation Bias",
			Description: "In overheated markets, investors seek only the evidence that supports staying in. Read the bear case on purpose.",
			Severity:    "market_overheated",
		}
	case vix != 0 && vix < 15:
		return &models.BehavioralBias{
			Name:        "Overconfidence",
			Description: "Calm markets breed certainty. Low volatility is when position sizes quietly grow past what the plan allows.",
			Severity:    "low_volatility",
		}
	case marketChange1M >= 5 && marketChange1M <= 15:
		return &models.BehavioralBias{
			Name:        "Disposition Effect",
			Description: "Moderate gains tempt early profit-taking while losers are held. Review exits against the plan, not the P&L.",
			Severity:    "moderate_gains",
		}
	case marketChange1M > 8 || marketChange1M < -8:
		return &models.BehavioralBias{
			Name:        "Recency Bias",
			Description: "A strong recent trend feels permanent. Extrapolating the last month is how tops and bottoms get bought.",
			Severity:    "trending_market",
		}
	default:
		return nil
	}
}
