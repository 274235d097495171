package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

func TestNormalizedMetric_WithDerivedRatios(t *testing.T) {
	t.Run("deve calcular as razões a partir dos contadores", func(t *testing.T) {
		metric := domain.NormalizedMetric{
			Spend:       100,
			Clicks:      50,
			Impressions: 10000,
			Conversions: 4,
			Revenue:     400,
		}.WithDerivedRatios()

		assert.InDelta(t, 0.005, metric.CTR, 1e-9)
		assert.InDelta(t, 2.0, metric.CPC, 1e-9)
		assert.InDelta(t, 25.0, metric.CPA, 1e-9)
		assert.Equal(t, metric.CPA, metric.CAC)
		assert.InDelta(t, 4.0, metric.ROAS, 1e-9)
	})

	t.Run("deve zerar razões com denominador zero", func(t *testing.T) {
		metric := domain.NormalizedMetric{Spend: 0, Clicks: 0, Impressions: 0, Conversions: 0}.WithDerivedRatios()

		assert.Zero(t, metric.CTR)
		assert.Zero(t, metric.CPC)
		assert.Zero(t, metric.CPA)
		assert.Zero(t, metric.CAC)
		assert.Zero(t, metric.ROAS)
	})

	t.Run("deve descartar razões vindas da origem e recalcular", func(t *testing.T) {
		metric := domain.NormalizedMetric{
			Spend:       10,
			Clicks:      2,
			Impressions: 100,
			CTR:         0.99, // valor da plataforma, deve ser ignorado
			CPC:         123,
		}.WithDerivedRatios()

		assert.InDelta(t, 0.02, metric.CTR, 1e-9)
		assert.InDelta(t, 5.0, metric.CPC, 1e-9)
	})

	t.Run("deve arredondar apenas valores monetários", func(t *testing.T) {
		metric := domain.NormalizedMetric{
			Spend:       10.006,
			Clicks:      3,
			Impressions: 1000,
			Revenue:     99.999,
		}.WithDerivedRatios()

		assert.Equal(t, 10.01, metric.Spend)
		assert.Equal(t, 100.0, metric.Revenue)
	})
}

func TestPeriod_IsValid(t *testing.T) {
	assert.True(t, domain.PeriodHourly.IsValid())
	assert.True(t, domain.PeriodDaily.IsValid())
	assert.True(t, domain.PeriodWeekly.IsValid())
	assert.False(t, domain.Period("monthly").IsValid())
	assert.False(t, domain.Period("").IsValid())
}

func TestRangeForPeriod(t *testing.T) {
	ref := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("hourly e daily cobrem o dia corrente", func(t *testing.T) {
		for _, period := range []domain.Period{domain.PeriodHourly, domain.PeriodDaily} {
			rng := domain.RangeForPeriod(period, ref)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), rng.Since)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), rng.Until)
		}
	})

	t.Run("weekly cobre os sete dias terminando no dia de referência", func(t *testing.T) {
		rng := domain.RangeForPeriod(domain.PeriodWeekly, ref)
		assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), rng.Since)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), rng.Until)
	})
}

func TestCredential_ExpiresWithin(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("deve renovar quando a expiração cai dentro da janela", func(t *testing.T) {
		cred := domain.Credential{ExpiresAt: now.Add(10 * time.Minute).UnixMilli()}
		assert.True(t, cred.ExpiresWithin(30*time.Minute, now))
	})

	t.Run("não deve renovar quando a expiração está longe", func(t *testing.T) {
		cred := domain.Credential{ExpiresAt: now.Add(2 * time.Hour).UnixMilli()}
		assert.False(t, cred.ExpiresWithin(30*time.Minute, now))
	})

	t.Run("não deve renovar quando a expiração é desconhecida", func(t *testing.T) {
		cred := domain.Credential{ExpiresAt: 0}
		assert.False(t, cred.ExpiresWithin(30*time.Minute, now))
	})
}
