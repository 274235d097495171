package domain

import (
	"time"

	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

// Platform identifica uma plataforma de anúncios integrada
type Platform string

const (
	PlatformMeta      Platform = "meta"
	PlatformGoogleAds Platform = "google_ads"
	PlatformTikTok    Platform = "tiktok"

	// SourceAggregated é o source do registro combinado de todas as plataformas
	SourceAggregated = "aggregated"
)

// Period define a granularidade da coleta de métricas
type Period string

const (
	PeriodHourly Period = "hourly"
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// IsValid verifica se o período informado é suportado
func (p Period) IsValid() bool {
	switch p {
	case PeriodHourly, PeriodDaily, PeriodWeekly:
		return true
	}
	return false
}

// DateRange representa o intervalo de datas de uma consulta às plataformas
type DateRange struct {
	Since time.Time
	Until time.Time
}

// RangeForPeriod calcula o intervalo de datas coberto por um período,
// terminando no dia de referência
func RangeForPeriod(period Period, ref time.Time) DateRange {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	switch period {
	case PeriodWeekly:
		return DateRange{Since: day.AddDate(0, 0, -6), Until: day}
	default:
		// hourly e daily cobrem o dia corrente; a granularidade intra-dia
		// fica a cargo da plataforma
		return DateRange{Since: day, Until: day}
	}
}

// NormalizedMetric é o registro numérico unificado entre plataformas.
// As razões derivadas (CTR, CPC, CPA, CAC, ROAS) são sempre recalculadas
// a partir dos contadores, nunca copiadas da plataforma de origem.
type NormalizedMetric struct {
	Spend       float64 `json:"spend"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
	CAC         float64 `json:"cac"`
	ROAS        float64 `json:"roas"`
}

// WithDerivedRatios recalcula as razões derivadas a partir dos contadores
// do próprio registro, com proteção contra denominador zero
func (m NormalizedMetric) WithDerivedRatios() NormalizedMetric {
	m.CTR = 0
	m.CPC = 0
	m.CPA = 0
	m.CAC = 0
	m.ROAS = 0

	if m.Impressions > 0 {
		m.CTR = float64(m.Clicks) / float64(m.Impressions)
	}
	if m.Clicks > 0 {
		m.CPC = m.Spend / float64(m.Clicks)
	}
	if m.Conversions > 0 {
		m.CPA = m.Spend / float64(m.Conversions)
		m.CAC = m.CPA
	}
	if m.Spend > 0 {
		m.ROAS = float64(m.Conversions) * 100 / m.Spend
	}

	m.Spend = utils.RoundWithTwoDecimalPlace(m.Spend)
	m.Revenue = utils.RoundWithTwoDecimalPlace(m.Revenue)

	return m
}

// PerformanceMetric é a unidade persistida no cache e devolvida aos
// consumidores. Imutável depois de criada: cada ciclo de coleta cria
// registros novos, nunca altera os antigos.
type PerformanceMetric struct {
	ID          string           `json:"id"`
	BrandID     string           `json:"brand_id"`
	Source      string           `json:"source"`
	CollectedAt time.Time        `json:"collected_at"`
	Period      Period           `json:"period"`
	Data        NormalizedMetric `json:"data"`
}
