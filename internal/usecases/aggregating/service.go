package aggregating

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// Aggregate soma os contadores de cada plataforma e produz um registro por
// plataforma mais o registro combinado de todas elas. As razões derivadas
// são sempre recalculadas sobre os contadores somados: somar razões ou tirar
// média delas distorce plataformas com volumes desiguais.
//
// A saída é determinística: plataformas em ordem alfabética, registro
// combinado por último. Plataformas sem registros não entram na saída
func Aggregate(
	brandID string,
	period domain.Period,
	byPlatform map[domain.Platform][]domain.NormalizedMetric,
	collectedAt time.Time,
) []*domain.PerformanceMetric {
	platforms := make([]domain.Platform, 0, len(byPlatform))
	for platform, records := range byPlatform {
		if len(records) == 0 {
			continue
		}
		platforms = append(platforms, platform)
	}

	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i] < platforms[j]
	})

	if len(platforms) == 0 {
		return []*domain.PerformanceMetric{}
	}

	metrics := make([]*domain.PerformanceMetric, 0, len(platforms)+1)

	var blended domain.NormalizedMetric
	for _, platform := range platforms {
		summed := sumCounters(byPlatform[platform])
		blended = addCounters(blended, summed)

		metrics = append(metrics, &domain.PerformanceMetric{
			ID:          uuid.NewString(),
			BrandID:     brandID,
			Source:      string(platform),
			CollectedAt: collectedAt,
			Period:      period,
			Data:        summed.WithDerivedRatios(),
		})
	}

	metrics = append(metrics, &domain.PerformanceMetric{
		ID:          uuid.NewString(),
		BrandID:     brandID,
		Source:      domain.SourceAggregated,
		CollectedAt: collectedAt,
		Period:      period,
		Data:        blended.WithDerivedRatios(),
	})

	return metrics
}

func sumCounters(records []domain.NormalizedMetric) domain.NormalizedMetric {
	var total domain.NormalizedMetric
	for _, record := range records {
		total = addCounters(total, record)
	}
	return total
}

// addCounters soma apenas os contadores brutos. As razões derivadas ficam
// zeradas até o WithDerivedRatios final
func addCounters(a, b domain.NormalizedMetric) domain.NormalizedMetric {
	return domain.NormalizedMetric{
		Spend:       a.Spend + b.Spend,
		Clicks:      a.Clicks + b.Clicks,
		Impressions: a.Impressions + b.Impressions,
		Conversions: a.Conversions + b.Conversions,
		Revenue:     a.Revenue + b.Revenue,
	}
}
