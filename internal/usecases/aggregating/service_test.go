package aggregating_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/aggregating"
)

var collectedAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestAggregate(t *testing.T) {
	t.Run("deve somar contadores por plataforma e produzir o registro combinado", func(t *testing.T) {
		byPlatform := map[domain.Platform][]domain.NormalizedMetric{
			domain.PlatformMeta: {
				{Spend: 100, Clicks: 50, Impressions: 10000, Conversions: 4, Revenue: 400},
				{Spend: 50, Clicks: 30, Impressions: 5000, Conversions: 2, Revenue: 150},
			},
			domain.PlatformGoogleAds: {
				{Spend: 200, Clicks: 100, Impressions: 20000, Conversions: 10, Revenue: 900},
			},
		}

		metrics := aggregating.Aggregate("brand-1", domain.PeriodDaily, byPlatform, collectedAt)
		require.Len(t, metrics, 3)

		// Ordem alfabética de plataforma, combinado por último
		assert.Equal(t, string(domain.PlatformGoogleAds), metrics[0].Source)
		assert.Equal(t, string(domain.PlatformMeta), metrics[1].Source)
		assert.Equal(t, domain.SourceAggregated, metrics[2].Source)

		meta := metrics[1].Data
		assert.Equal(t, 150.0, meta.Spend)
		assert.Equal(t, 80, meta.Clicks)
		assert.Equal(t, 15000, meta.Impressions)
		assert.Equal(t, 6, meta.Conversions)
		assert.Equal(t, 550.0, meta.Revenue)

		blended := metrics[2].Data
		assert.Equal(t, 350.0, blended.Spend)
		assert.Equal(t, 180, blended.Clicks)
		assert.Equal(t, 35000, blended.Impressions)
		assert.Equal(t, 16, blended.Conversions)
		assert.Equal(t, 1300.0, blended.Revenue)

		for _, metric := range metrics {
			assert.NotEmpty(t, metric.ID)
			assert.Equal(t, "brand-1", metric.BrandID)
			assert.Equal(t, domain.PeriodDaily, metric.Period)
			assert.Equal(t, collectedAt, metric.CollectedAt)
		}
	})

	t.Run("deve recalcular as razões sobre os contadores somados e nunca tirar média", func(t *testing.T) {
		// Plataformas com volumes muito desiguais: a média dos CTRs (0.5 e
		// 0.01) daria 0.255, mas a razão sobre os contadores somados é outra
		byPlatform := map[domain.Platform][]domain.NormalizedMetric{
			domain.PlatformMeta: {
				{Spend: 10, Clicks: 5, Impressions: 10, Conversions: 1},
			},
			domain.PlatformTikTok: {
				{Spend: 1000, Clicks: 100, Impressions: 10000, Conversions: 50},
			},
		}

		metrics := aggregating.Aggregate("brand-1", domain.PeriodDaily, byPlatform, collectedAt)
		require.Len(t, metrics, 3)

		blended := metrics[2].Data
		assert.InDelta(t, 105.0/10010.0, blended.CTR, 1e-9)
		assert.InDelta(t, 1010.0/105.0, blended.CPC, 1e-9)
		assert.InDelta(t, 1010.0/51.0, blended.CPA, 1e-9)
		assert.Equal(t, blended.CPA, blended.CAC)
		assert.InDelta(t, 51.0*100/1010.0, blended.ROAS, 1e-9)
	})

	t.Run("deve zerar razões com denominador zero", func(t *testing.T) {
		byPlatform := map[domain.Platform][]domain.NormalizedMetric{
			domain.PlatformMeta: {
				{Spend: 0, Clicks: 0, Impressions: 0, Conversions: 0},
			},
		}

		metrics := aggregating.Aggregate("brand-1", domain.PeriodDaily, byPlatform, collectedAt)
		require.Len(t, metrics, 2)

		blended := metrics[1].Data
		assert.Zero(t, blended.CTR)
		assert.Zero(t, blended.CPC)
		assert.Zero(t, blended.CPA)
		assert.Zero(t, blended.CAC)
		assert.Zero(t, blended.ROAS)
	})

	t.Run("deve ignorar plataformas sem registros", func(t *testing.T) {
		byPlatform := map[domain.Platform][]domain.NormalizedMetric{
			domain.PlatformMeta:   {{Spend: 10, Clicks: 1, Impressions: 100}},
			domain.PlatformTikTok: {},
		}

		metrics := aggregating.Aggregate("brand-1", domain.PeriodWeekly, byPlatform, collectedAt)
		require.Len(t, metrics, 2)
		assert.Equal(t, string(domain.PlatformMeta), metrics[0].Source)
		assert.Equal(t, domain.SourceAggregated, metrics[1].Source)
	})

	t.Run("deve retornar vazio quando nenhuma plataforma tem registros", func(t *testing.T) {
		metrics := aggregating.Aggregate("brand-1", domain.PeriodDaily, map[domain.Platform][]domain.NormalizedMetric{}, collectedAt)
		assert.Empty(t, metrics)
	})
}
