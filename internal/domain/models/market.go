package models

// Source tells where a snapshot's data came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Status is the UI-facing lifecycle state of a store.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusAnalyzing Status = "analyzing"
	StatusError     Status = "error"
	StatusDone      Status = "done"
)

// Domain identifies a dashboard data store.
type Domain string

const (
	DomainBonds    Domain = "bonds"
	DomainFX       Domain = "fx"
	DomainStocks   Domain = "stocks"
	DomainPolicy   Domain = "policy"
	DomainCountry  Domain = "country"
	DomainEconomy  Domain = "economy"
	DomainHistory  Domain = "history"
	DomainWhale    Domain = "whale"
	DomainInsights Domain = "insights"
)

// AllDomains lists every registered store domain in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainBonds, DomainFX, DomainStocks, DomainPolicy, DomainCountry,
		DomainEconomy, DomainHistory, DomainWhale, DomainInsights,
	}
}

// IsValidDomain reports whether s names a registered domain.
func IsValidDomain(s string) bool {
	for _, d := range AllDomains() {
		if string(d) == s {
			return true
		}
	}
	return false
}
