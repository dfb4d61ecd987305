package market

import "InsightFlow/internal/domain/models"

// gradeBands maps lower-inclusive score cutoffs to letter grades, best first.
var gradeBands = []struct {
	cutoff int
	grade  string
}{
	{90, "A+"},
	{85, "A"},
	{80, "A-"},
	{75, "B+"},
	{70, "B"},
	{65, "B-"},
	{60, "C+"},
	{55, "C"},
	{50, "C-"},
	{45, "D+"},
	{40, "D"},
}

// Grade maps a 0-100 composite score to its letter grade.
func Grade(score int) string {
	for _, b := range gradeBands {
		if score >= b.cutoff {
			return b.grade
		}
	}
	return "F"
}

// Metric weights for the country composite score.
const (
	weightCurrencyPower   = 0.15
	weightMarketSentiment = 0.20
	weightCreditRisk      = 0.20
	weightLiquidity       = 0.15
	weightInflation       = 0.15
	weightGrowth          = 0.15
)

// CompositeScore folds the six 0-100 metric axes into one weighted score.
func CompositeScore(m models.EconomicMetrics) int {
	score := m.CurrencyPower*weightCurrencyPower +
		m.MarketSentiment*weightMarketSentiment +
		m.CreditRisk*weightCreditRisk +
		m.Liquidity*weightLiquidity +
		m.Inflation*weightInflation +
		m.Growth*weightGrowth
	return int(score + 0.5)
}
