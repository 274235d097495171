package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/ads-performance-api/infrastructure/integrator/mocks"
	repomocks "github.com/vfg2006/ads-performance-api/infrastructure/repository/mocks"
	vaultmocks "github.com/vfg2006/ads-performance-api/infrastructure/vault/mocks"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/tokening"
	tokeningmocks "github.com/vfg2006/ads-performance-api/internal/usecases/tokening/mocks"
	gomock "go.uber.org/mock/gomock"
)

var (
	fixedNow   = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today      = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday  = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	dailyRange = domain.RangeForPeriod(domain.PeriodDaily, fixedNow)
)

type fixture struct {
	registry  *integrator.Registry
	store     *vaultmocks.MockCredentialStore
	tokens    *tokeningmocks.MockManager
	cacheRepo *repomocks.MockMetricCacheRepository
	svc       *service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Sync.CacheTTLMinutes = 15
	cfg.Sync.FetchTimeoutSeconds = 5
	cfg.Sync.RefreshBufferMinutes = 30

	f := &fixture{
		registry:  integrator.NewRegistry(),
		store:     vaultmocks.NewMockCredentialStore(ctrl),
		tokens:    tokeningmocks.NewMockManager(ctrl),
		cacheRepo: repomocks.NewMockMetricCacheRepository(ctrl),
	}

	f.svc = &service{
		cfg:       cfg,
		registry:  f.registry,
		store:     f.store,
		tokens:    f.tokens,
		cacheRepo: f.cacheRepo,
		now:       func() time.Time { return fixedNow },
	}

	return f
}

func (f *fixture) registerAdapter(t *testing.T, platform domain.Platform) *integratormocks.MockAdapter {
	ctrl := gomock.NewController(t)
	adapter := integratormocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Platform().Return(platform).AnyTimes()
	require.NoError(t, f.registry.Register(adapter))
	return adapter
}

// expectCachePersist aguarda a escrita assíncrona do cache antes do teste
// terminar
func (f *fixture) expectCachePersist(t *testing.T) <-chan *domain.CacheEntry {
	persisted := make(chan *domain.CacheEntry, 1)
	f.cacheRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.CacheEntry) error {
			persisted <- entry
			close(persisted)
			return nil
		})
	t.Cleanup(func() {
		select {
		case <-persisted:
		case <-time.After(2 * time.Second):
			t.Error("persistência assíncrona do cache não aconteceu")
		}
	})
	return persisted
}

func credFor(platform domain.Platform) *domain.Credential {
	return &domain.Credential{
		BrandID:     "brand-1",
		Platform:    platform,
		AccessToken: "token-" + string(platform),
	}
}

type rawStub struct {
	platform domain.Platform
}

func (r rawStub) Platform() domain.Platform { return r.platform }

func TestService_SyncBrandMetrics_CacheFresco(t *testing.T) {
	t.Run("deve servir o cache do dia dentro da janela de frescor sem coletar", func(t *testing.T) {
		f := newFixture(t)

		entry := &domain.CacheEntry{
			BrandID:   "brand-1",
			Date:      today,
			Metrics:   []*domain.PerformanceMetric{{ID: "m-1", BrandID: "brand-1"}},
			UpdatedAt: fixedNow.Add(-5 * time.Minute),
		}

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(entry, nil)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.Empty(t, result.Warning)
		assert.Equal(t, entry.Metrics, result.Metrics)
	})

	t.Run("deve ignorar o cache fresco quando ForceFresh está ligado", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		entry := &domain.CacheEntry{
			BrandID:   "brand-1",
			Date:      today,
			Metrics:   []*domain.PerformanceMetric{{ID: "cached"}},
			UpdatedAt: fixedNow.Add(-1 * time.Minute),
		}

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(entry, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta)}, nil)
		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)

		raw := rawStub{platform: domain.PlatformMeta}
		adapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{raw}, nil)
		adapter.EXPECT().
			Normalize(raw).
			Return(domain.NormalizedMetric{Spend: 10, Clicks: 5, Impressions: 100})

		f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily, ForceFresh: true})
		require.NoError(t, err)
		assert.False(t, result.Cached)
		require.Len(t, result.Metrics, 2)
		assert.Equal(t, string(domain.PlatformMeta), result.Metrics[0].Source)
		assert.Equal(t, domain.SourceAggregated, result.Metrics[1].Source)
	})
}

func TestService_SyncBrandMetrics_ColetaAoVivo(t *testing.T) {
	t.Run("deve coletar de todas as plataformas e persistir o cache", func(t *testing.T) {
		f := newFixture(t)
		metaAdapter := f.registerAdapter(t, domain.PlatformMeta)
		tiktokAdapter := f.registerAdapter(t, domain.PlatformTikTok)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta), credFor(domain.PlatformTikTok)}, nil)

		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)
		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformTikTok).
			Return(credFor(domain.PlatformTikTok), nil)

		metaRaw := rawStub{platform: domain.PlatformMeta}
		metaAdapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{metaRaw}, nil)
		metaAdapter.EXPECT().
			Normalize(metaRaw).
			Return(domain.NormalizedMetric{Spend: 100, Clicks: 50, Impressions: 10000, Conversions: 4})

		tiktokRaw := rawStub{platform: domain.PlatformTikTok}
		tiktokAdapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{tiktokRaw}, nil)
		tiktokAdapter.EXPECT().
			Normalize(tiktokRaw).
			Return(domain.NormalizedMetric{Spend: 200, Clicks: 80, Impressions: 20000, Conversions: 6})

		persisted := f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.False(t, result.Cached)
		assert.Empty(t, result.Warning)
		require.Len(t, result.Metrics, 3)

		blended := result.Metrics[2]
		assert.Equal(t, domain.SourceAggregated, blended.Source)
		assert.Equal(t, 300.0, blended.Data.Spend)
		assert.Equal(t, 130, blended.Data.Clicks)
		assert.Equal(t, 30000, blended.Data.Impressions)
		assert.Equal(t, 10, blended.Data.Conversions)

		entry := <-persisted
		assert.Equal(t, "brand-1", entry.BrandID)
		assert.Equal(t, today, entry.Date)
		assert.Equal(t, result.Metrics, entry.Metrics)
	})

	t.Run("deve isolar a falha de uma plataforma e avisar sobre coleta parcial", func(t *testing.T) {
		f := newFixture(t)
		metaAdapter := f.registerAdapter(t, domain.PlatformMeta)
		f.registerAdapter(t, domain.PlatformGoogleAds)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta), credFor(domain.PlatformGoogleAds)}, nil)

		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)
		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformGoogleAds).
			Return(nil, tokening.ErrCredentialUnavailable)

		metaRaw := rawStub{platform: domain.PlatformMeta}
		metaAdapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{metaRaw}, nil)
		metaAdapter.EXPECT().
			Normalize(metaRaw).
			Return(domain.NormalizedMetric{Spend: 100, Clicks: 50, Impressions: 10000})

		f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.Contains(t, result.Warning, "google_ads")
		require.Len(t, result.Metrics, 2)
	})

	t.Run("deve renovar o token exatamente uma vez quando a plataforma rejeita e repetir a busca", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta)}, nil)

		staleCred := credFor(domain.PlatformMeta)
		freshCred := &domain.Credential{BrandID: "brand-1", Platform: domain.PlatformMeta, AccessToken: "renewed"}

		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(staleCred, nil)
		f.tokens.EXPECT().
			ForceRefresh(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(freshCred, nil).
			Times(1)

		raw := rawStub{platform: domain.PlatformMeta}
		gomock.InOrder(
			adapter.EXPECT().
				FetchMetrics(gomock.Any(), staleCred, dailyRange).
				Return(nil, integrator.ErrUnauthorized),
			adapter.EXPECT().
				FetchMetrics(gomock.Any(), freshCred, dailyRange).
				Return([]integrator.RawRecord{raw}, nil),
		)
		adapter.EXPECT().
			Normalize(raw).
			Return(domain.NormalizedMetric{Spend: 10, Clicks: 2, Impressions: 50})

		f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.Empty(t, result.Warning)
		require.Len(t, result.Metrics, 2)
	})

	t.Run("não deve repetir a busca quando a renovação reativa falha", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", yesterday).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta)}, nil)

		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)
		f.tokens.EXPECT().
			ForceRefresh(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(nil, tokening.ErrTokenRefreshFailed).
			Times(1)

		adapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return(nil, integrator.ErrUnauthorized).
			Times(1)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNoDataAvailable)
	})

	t.Run("deve ignorar credenciais de plataformas sem adaptador registrado", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta), credFor(domain.Platform("unknown_ads"))}, nil)

		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)

		raw := rawStub{platform: domain.PlatformMeta}
		adapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{raw}, nil)
		adapter.EXPECT().
			Normalize(raw).
			Return(domain.NormalizedMetric{Spend: 1, Clicks: 1, Impressions: 1})

		f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.Empty(t, result.Warning)
	})
}

func TestService_SyncBrandMetrics_Fallback(t *testing.T) {
	t.Run("deve cair para o cache requentado do dia quando todas as plataformas falham", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		staleEntry := &domain.CacheEntry{
			BrandID:   "brand-1",
			Date:      today,
			Metrics:   []*domain.PerformanceMetric{{ID: "stale"}},
			UpdatedAt: fixedNow.Add(-3 * time.Hour),
		}

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(staleEntry, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta)}, nil)
		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)
		adapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return(nil, integrator.ErrProviderFetchFailed)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.NotEmpty(t, result.Warning)
		assert.Equal(t, staleEntry.Metrics, result.Metrics)
	})

	t.Run("deve cair para o cache do dia anterior quando não há coleta de hoje", func(t *testing.T) {
		f := newFixture(t)

		previousEntry := &domain.CacheEntry{
			BrandID:   "brand-1",
			Date:      yesterday,
			Metrics:   []*domain.PerformanceMetric{{ID: "previous"}},
			UpdatedAt: fixedNow.Add(-20 * time.Hour),
		}

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", yesterday).
			Return(previousEntry, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{}, nil)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.Contains(t, result.Warning, "dia anterior")
		assert.Equal(t, previousEntry.Metrics, result.Metrics)
	})

	t.Run("deve retornar ErrNoDataAvailable quando não há coleta nem cache", func(t *testing.T) {
		f := newFixture(t)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, nil)
		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", yesterday).
			Return(nil, nil)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return(nil, nil)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNoDataAvailable)
	})

	t.Run("deve seguir para a coleta quando a leitura do cache falha", func(t *testing.T) {
		f := newFixture(t)
		adapter := f.registerAdapter(t, domain.PlatformMeta)

		f.cacheRepo.EXPECT().
			GetByBrandAndDate(gomock.Any(), "brand-1", today).
			Return(nil, assert.AnError)
		f.store.EXPECT().
			ListByBrand(gomock.Any(), "brand-1").
			Return([]*domain.Credential{credFor(domain.PlatformMeta)}, nil)
		f.tokens.EXPECT().
			EnsureFreshToken(gomock.Any(), "brand-1", domain.PlatformMeta).
			Return(credFor(domain.PlatformMeta), nil)

		raw := rawStub{platform: domain.PlatformMeta}
		adapter.EXPECT().
			FetchMetrics(gomock.Any(), gomock.Any(), dailyRange).
			Return([]integrator.RawRecord{raw}, nil)
		adapter.EXPECT().
			Normalize(raw).
			Return(domain.NormalizedMetric{Spend: 5, Clicks: 1, Impressions: 10})

		f.expectCachePersist(t)

		result, err := f.svc.SyncBrandMetrics(context.Background(), "brand-1", Options{Period: domain.PeriodDaily})
		require.NoError(t, err)
		assert.False(t, result.Cached)
	})
}
