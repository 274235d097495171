package googleads_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

func newTestAdapter(baseURL string) *googleads.Adapter {
	cfg := &config.Config{}
	cfg.GoogleAds.URL = baseURL
	cfg.GoogleAds.DeveloperToken = "dev-token"
	cfg.Sync.FetchTimeoutSeconds = 5

	return googleads.NewAdapter(cfg)
}

func testCredential() *domain.Credential {
	return &domain.Credential{
		BrandID:     "brand-1",
		Platform:    domain.PlatformGoogleAds,
		AccessToken: "token-abc",
		ProviderMetadata: map[string]string{
			"customer_id": "9876543210",
		},
	}
}

func testRange() domain.DateRange {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{Since: day, Until: day}
}

func TestAdapter_FetchMetrics(t *testing.T) {
	t.Run("deve buscar e decodificar os resultados da consulta", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, "/customers/9876543210/googleAds:search")
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			assert.Equal(t, "dev-token", r.Header.Get("developer-token"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"results": [
					{
						"segments": {"date": "2025-03-10"},
						"metrics": {
							"costMicros": "150750000",
							"clicks": "320",
							"impressions": "10000",
							"conversions": 12.0,
							"conversionsValue": 890.5
						}
					}
				]
			}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)

		records, err := adapter.FetchMetrics(context.Background(), testCredential(), testRange())
		require.NoError(t, err)
		require.Len(t, records, 1)

		result, ok := records[0].(*googleads.SearchResult)
		require.True(t, ok)
		assert.Equal(t, domain.PlatformGoogleAds, result.Platform())
	})

	t.Run("deve retornar ErrUnauthorized no status 401", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"code": 401, "status": "UNAUTHENTICATED"}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)

		records, err := adapter.FetchMetrics(context.Background(), testCredential(), testRange())
		assert.Nil(t, records)
		assert.ErrorIs(t, err, integrator.ErrUnauthorized)
	})

	t.Run("deve retornar ErrProviderFetchFailed em erro do servidor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)

		_, err := adapter.FetchMetrics(context.Background(), testCredential(), testRange())
		assert.ErrorIs(t, err, integrator.ErrProviderFetchFailed)
	})

	t.Run("deve falhar quando a credencial não tem customer_id", func(t *testing.T) {
		adapter := newTestAdapter("http://localhost")
		cred := testCredential()
		cred.ProviderMetadata = nil

		_, err := adapter.FetchMetrics(context.Background(), cred, testRange())
		assert.ErrorIs(t, err, integrator.ErrProviderFetchFailed)
	})
}

func TestAdapter_Normalize(t *testing.T) {
	adapter := newTestAdapter("http://localhost")

	t.Run("deve converter custo em micros para a unidade monetária", func(t *testing.T) {
		raw := &googleads.SearchResult{}
		raw.Metrics.CostMicros = "150750000"
		raw.Metrics.Clicks = "320"
		raw.Metrics.Impressions = "10000"
		raw.Metrics.Conversions = 12.0
		raw.Metrics.ConversionsValue = 890.5

		metric := adapter.Normalize(raw)

		assert.InDelta(t, 150.75, metric.Spend, 1e-9)
		assert.Equal(t, 320, metric.Clicks)
		assert.Equal(t, 10000, metric.Impressions)
		assert.Equal(t, 12, metric.Conversions)
		assert.InDelta(t, 890.5, metric.Revenue, 1e-9)
		assert.InDelta(t, 0.032, metric.CTR, 1e-9)
	})

	t.Run("deve zerar campos ausentes", func(t *testing.T) {
		metric := adapter.Normalize(&googleads.SearchResult{})
		assert.Equal(t, domain.NormalizedMetric{}, metric)
	})

	t.Run("deve retornar métrica zerada para registro de outra plataforma", func(t *testing.T) {
		metric := adapter.Normalize(foreignRecord{})
		assert.Equal(t, domain.NormalizedMetric{}, metric)
	})
}

type foreignRecord struct{}

func (foreignRecord) Platform() domain.Platform { return domain.PlatformMeta }
