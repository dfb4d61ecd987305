package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLegacyBoardPayload(t *testing.T) {
	raw := `{
		"kostolany_response": "liquidity drives everything",
		"buffett_response": "price is what you pay",
		"munger_response": "invert, always invert",
		"dalio_response": "cash is trash",
		"synthesis": "the board is split"
	}`
	var r AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	r.Normalize()

	require.Len(t, r.Perspectives, 4)
	require.Equal(t, []string{"kostolany", "buffett", "munger", "dalio"}, personas(r))
	require.Equal(t, "the board is split", r.Synthesis)
	require.Empty(t, r.BuffettResponse)
}

func TestNormalizeLegacyWhalePayload(t *testing.T) {
	var r AnalysisResult
	r.SpyResponse = "unusual options flow"
	r.SorosResponse = "reflexivity at work"
	r.BuffettResponse = "be greedy when others are fearful"
	r.BurryResponse = "I see a bubble"

	r.Normalize()

	require.Equal(t, []string{"spy", "soros", "buffett", "burry"}, personas(r))
}

func TestNormalizeKeepsPerspectivesForm(t *testing.T) {
	r := AnalysisResult{
		Perspectives: []Perspective{{Persona: "historian", Analysis: "rhymes with 1987"}},
		Synthesis:    "caution",
		// stray legacy field from a mixed payload
		HistorianResponse: "ignored",
	}

	r.Normalize()

	require.Len(t, r.Perspectives, 1)
	require.Equal(t, "rhymes with 1987", r.Perspectives[0].Analysis)
	require.Empty(t, r.HistorianResponse)
}

func TestNormalizeIdempotent(t *testing.T) {
	var r AnalysisResult
	r.HistorianResponse = "tightening cycles end badly"
	r.Normalize()
	first := append([]Perspective(nil), r.Perspectives...)
	r.Normalize()
	require.Equal(t, first, r.Perspectives)
}

func TestPersonaOrderPerTopic(t *testing.T) {
	require.Equal(t, []string{"kostolany", "buffett", "munger", "dalio"}, PersonaOrder(TopicEconomy))
	require.Equal(t, []string{"spy", "soros", "buffett", "burry"}, PersonaOrder(TopicWhale))
	require.Equal(t, []string{"historian"}, PersonaOrder(TopicHistory))
	require.Equal(t, []string{"translator"}, PersonaOrder(TopicInsight))
}

func personas(r AnalysisResult) []string {
	out := make([]string, 0, len(r.Perspectives))
	for _, p := range r.Perspectives {
		out = append(out, p.Persona)
	}
	return out
}
