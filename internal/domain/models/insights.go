package models

// Article is one piece fetched from an institutional source.
type Article struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"published_at"`
}

// BehavioralBias is a contrarian warning derived from market conditions.
type BehavioralBias struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// InsightFeed is the institutional insights snapshot.
type InsightFeed struct {
	Articles  []Article       `json:"articles"`
	Count     int             `json:"count"`
	FetchedAt string          `json:"fetched_at"`
	Bias      *BehavioralBias `json:"bias,omitempty"`
}
