package tiktok

import "github.com/vfg2006/ads-performance-api/internal/domain"

// ReportRow é uma linha do relatório integrado. Todos os valores numéricos
// chegam como strings
type ReportRow struct {
	Dimensions reportDimensions `json:"dimensions"`
	Metrics    reportMetrics    `json:"metrics"`
}

type reportDimensions struct {
	StatTimeDay string `json:"stat_time_day"`
}

type reportMetrics struct {
	Spend              string `json:"spend"`
	Clicks             string `json:"clicks"`
	Impressions        string `json:"impressions"`
	Conversion         string `json:"conversion"`
	TotalPurchaseValue string `json:"total_purchase_value"`
}

func (r *ReportRow) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// reportResponse é o envelope padrão da Business API
type reportResponse struct {
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	RequestID string     `json:"request_id"`
	Data      reportData `json:"data"`
}

type reportData struct {
	List []ReportRow `json:"list"`
}
