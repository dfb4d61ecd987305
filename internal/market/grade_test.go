package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"InsightFlow/internal/domain/models"
)

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "A+"}, {90, "A+"},
		{89, "A"}, {85, "A"},
		{84, "A-"}, {80, "A-"},
		{79, "B+"}, {75, "B+"},
		{74, "B"}, {70, "B"},
		{69, "B-"}, {65, "B-"},
		{64, "C+"}, {60, "C+"},
		{59, "C"}, {55, "C"},
		{54, "C-"}, {50, "C-"},
		{49, "D+"}, {45, "D+"},
		{44, "D"}, {40, "D"},
		{39, "F"}, {0, "F"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Grade(c.score), "score %d", c.score)
	}
}

func TestGradeCoversEveryScore(t *testing.T) {
	// No gaps: every score from 0 to 100 maps to exactly one grade.
	for s := 0; s <= 100; s++ {
		require.NotEmpty(t, Grade(s), "score %d has no grade", s)
	}
}

func TestCompositeScore(t *testing.T) {
	m := models.EconomicMetrics{
		CurrencyPower:   80,
		MarketSentiment: 80,
		CreditRisk:      80,
		Liquidity:       80,
		Inflation:       80,
		Growth:          80,
	}
	// Uniform 80s must compose to exactly 80 and grade A-.
	require.Equal(t, 80, CompositeScore(m))
	require.Equal(t, "A-", Grade(CompositeScore(m)))
}
