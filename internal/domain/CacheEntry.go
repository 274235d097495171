package domain

import "time"

// CacheEntry é a entrada de cache de métricas de uma marca para um dia de
// calendário. Criada/sobrescrita pelo orquestrador após um ciclo de coleta
// bem-sucedido; escritas concorrentes são last-writer-wins, aceitável porque
// a entrada é dado derivado e reconstruível, não fonte de verdade.
type CacheEntry struct {
	BrandID   string               `json:"brand_id"`
	Date      time.Time            `json:"date"`
	Metrics   []*PerformanceMetric `json:"metrics"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Age retorna a idade da entrada em relação ao instante informado
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.UpdatedAt)
}
