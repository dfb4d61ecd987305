package market

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"InsightFlow/internal/domain/models"
)

// indicatorRanges bound each axis of the conditions vector before the
// distance is taken, so a 10% rate move and a 10-point CAPE move weigh
// comparably. Order matches MarketConditions: CAPE, rate, inflation,
// unemployment, yield spread.
var indicatorRanges = [5][2]float64{
	{5, 45},
	{0, 20},
	{-5, 15},
	{2, 25},
	{-3, 4},
}

func conditionsVector(c models.MarketConditions) []float64 {
	return []float64{c.CAPE, c.Rate, c.Inflation, c.Unemployment, c.YieldSpread}
}

// Similarity scores how closely two sets of market conditions match,
// 0-100. Range-normalized Euclidean distance, inverted to a percentage.
func Similarity(current, historical models.MarketConditions) float64 {
	cur := conditionsVector(current)
	hist := conditionsVector(historical)

	diffs := make([]float64, len(cur))
	for i := range cur {
		span := indicatorRanges[i][1] - indicatorRanges[i][0]
		d := (cur[i] - hist[i]) / span
		diffs[i] = d * d
	}

	sumSq, err := stats.Sum(diffs)
	if err != nil {
		return 0
	}
	distance := math.Sqrt(sumSq / float64(len(diffs)))

	sim := (1 - distance) * 100
	if sim < 0 {
		sim = 0
	}
	return math.Round(sim*10) / 10
}

// Era is one reference period the parallel finder scores against.
type Era struct {
	Year            int
	PeriodName      string
	Conditions      models.MarketConditions
	ForwardReturn1Y float64
	ForwardReturn3Y float64
	ForwardReturn5Y float64
	Description     string
}

// RankParallels scores every era against the current conditions and
// returns the topN best matches, highest similarity first.
func RankParallels(current models.MarketConditions, eras []Era, topN int) []models.HistoricalMatch {
	matches := make([]models.HistoricalMatch, 0, len(eras))
	for _, era := range eras {
		matches = append(matches, models.HistoricalMatch{
			Year:            era.Year,
			PeriodName:      era.PeriodName,
			Similarity:      Similarity(current, era.Conditions),
			CAPE:            era.Conditions.CAPE,
			InterestRate:    era.Conditions.Rate,
			Inflation:       era.Conditions.Inflation,
			ForwardReturn1Y: era.ForwardReturn1Y,
			ForwardReturn3Y: era.ForwardReturn3Y,
			ForwardReturn5Y: era.ForwardReturn5Y,
			Description:     era.Description,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}
