package googleads

import "github.com/vfg2006/ads-performance-api/internal/domain"

// SearchResult é uma linha retornada pelo googleAds:search. Os contadores
// inteiros chegam como strings e o custo em micros
type SearchResult struct {
	Metrics  searchMetrics  `json:"metrics"`
	Segments searchSegments `json:"segments"`
}

type searchMetrics struct {
	CostMicros       string  `json:"costMicros"`
	Clicks           string  `json:"clicks"`
	Impressions      string  `json:"impressions"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type searchSegments struct {
	Date string `json:"date"`
}

func (r *SearchResult) Platform() domain.Platform {
	return domain.PlatformGoogleAds
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}
