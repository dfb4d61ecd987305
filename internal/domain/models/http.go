package models

// Requests for the gateway HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	Language string                 `json:"language" default:"ko" validate:"oneof=ko en zh ja"`
	Extra    string                 `json:"extra,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

type CountryRequest struct {
	Code string `param:"code" json:"code" validate:"required,len=2,alpha"`
}

type WhaleRadarRequest struct {
	Symbols string `query:"symbols" json:"symbols"`
}

type RefreshLogRequest struct {
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=500"`
}
