package models

// Topic identifies an analysis subject on the upstream AI backend.
type Topic string

const (
	TopicBonds   Topic = "bonds"
	TopicFX      Topic = "fx"
	TopicStocks  Topic = "stocks"
	TopicPolicy  Topic = "policy"
	TopicCountry Topic = "country"
	TopicEconomy Topic = "economy"
	TopicHistory Topic = "history"
	TopicWhale   Topic = "whale"
	TopicInsight Topic = "insight"
)

// Perspective is one persona's contribution to a debate.
type Perspective struct {
	Persona  string `json:"persona"`
	Analysis string `json:"analysis"`
}

// AnalysisResult carries a finished AI debate. The upstream speaks two
// dialects: older endpoints return one named field per persona, newer ones
// return a perspectives array. Both decode into this struct; Normalize
// folds the named fields into Perspectives so everything past the client
// boundary sees a single canonical form.
type AnalysisResult struct {
	Perspectives []Perspective `json:"perspectives,omitempty"`
	Synthesis    string        `json:"synthesis"`

	// Legacy named persona fields, cleared by Normalize.
	KostolanyResponse  string `json:"kostolany_response,omitempty"`
	BuffettResponse    string `json:"buffett_response,omitempty"`
	MungerResponse     string `json:"munger_response,omitempty"`
	DalioResponse      string `json:"dalio_response,omitempty"`
	SpyResponse        string `json:"spy_response,omitempty"`
	SorosResponse      string `json:"soros_response,omitempty"`
	BurryResponse      string `json:"burry_response,omitempty"`
	HistorianResponse  string `json:"historian_response,omitempty"`
	TranslatorResponse string `json:"translator_response,omitempty"`

	ArticleID string `json:"article_id,omitempty"`
}

func (r *AnalysisResult) legacyField(persona string) *string {
	switch persona {
	case "kostolany":
		return &r.KostolanyResponse
	case "buffett":
		return &r.BuffettResponse
	case "munger":
		return &r.MungerResponse
	case "dalio":
		return &r.DalioResponse
	case "spy":
		return &r.SpyResponse
	case "soros":
		return &r.SorosResponse
	case "burry":
		return &r.BurryResponse
	case "historian":
		return &r.HistorianResponse
	case "translator":
		return &r.TranslatorResponse
	}
	return nil
}

// legacyOrder picks the persona set matching the populated fields, so a
// whale payload keeps its own seating order. Buffett appears on two boards,
// so his field alone never decides the set.
func (r *AnalysisResult) legacyOrder() []string {
	switch {
	case r.SpyResponse != "" || r.SorosResponse != "" || r.BurryResponse != "":
		return PersonaOrder(TopicWhale)
	case r.HistorianResponse != "":
		return PersonaOrder(TopicHistory)
	case r.TranslatorResponse != "":
		return PersonaOrder(TopicInsight)
	default:
		return PersonaOrder(TopicBonds)
	}
}

// Normalize converts a legacy named-field payload into the perspectives
// form. A payload that already carries perspectives is left as-is apart
// from clearing any stray legacy fields. Safe to call repeatedly.
func (r *AnalysisResult) Normalize() {
	if r == nil {
		return
	}
	if len(r.Perspectives) == 0 {
		for _, persona := range r.legacyOrder() {
			if f := r.legacyField(persona); f != nil && *f != "" {
				r.Perspectives = append(r.Perspectives, Perspective{Persona: persona, Analysis: *f})
			}
		}
	}
	for _, persona := range []string{"kostolany", "buffett", "munger", "dalio", "spy", "soros", "burry", "historian", "translator"} {
		if f := r.legacyField(persona); f != nil {
			*f = ""
		}
	}
}

// PersonaOrder returns the fixed speaking order cycled through while an
// analysis for the topic is in flight.
func PersonaOrder(t Topic) []string {
	switch t {
	case TopicWhale:
		return []string{"spy", "soros", "buffett", "burry"}
	case TopicHistory:
		return []string{"historian"}
	case TopicInsight:
		return []string{"translator"}
	default:
		return []string{"kostolany", "buffett", "munger", "dalio"}
	}
}

// CachedAnalysis is the upstream daily-cache probe response.
type CachedAnalysis struct {
	Cached bool            `json:"cached"`
	Result *AnalysisResult `json:"result"`
}

// AnalysisView is the read-only projection handed to the UI.
type AnalysisView struct {
	Status       Status          `json:"status"`
	CurrentAgent *string         `json:"current_agent,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Result       *AnalysisResult `json:"result,omitempty"`
}
