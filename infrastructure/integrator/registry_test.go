package integrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

type stubAdapter struct {
	platform domain.Platform
}

func (a *stubAdapter) Platform() domain.Platform { return a.platform }

func (a *stubAdapter) FetchMetrics(_ context.Context, _ *domain.Credential, _ domain.DateRange) ([]integrator.RawRecord, error) {
	return nil, nil
}

func (a *stubAdapter) Normalize(_ integrator.RawRecord) domain.NormalizedMetric {
	return domain.NormalizedMetric{}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("deve registrar e recuperar um adaptador", func(t *testing.T) {
		registry := integrator.NewRegistry()
		adapter := &stubAdapter{platform: domain.PlatformMeta}

		err := registry.Register(adapter)
		require.NoError(t, err)

		got, err := registry.Get(domain.PlatformMeta)
		require.NoError(t, err)
		assert.Equal(t, adapter, got)
	})

	t.Run("deve rejeitar registro duplicado da mesma plataforma", func(t *testing.T) {
		registry := integrator.NewRegistry()

		err := registry.Register(&stubAdapter{platform: domain.PlatformTikTok})
		require.NoError(t, err)

		err = registry.Register(&stubAdapter{platform: domain.PlatformTikTok})
		assert.ErrorIs(t, err, integrator.ErrAdapterAlreadyRegistered)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("deve retornar erro quando a plataforma não tem adaptador", func(t *testing.T) {
		registry := integrator.NewRegistry()

		got, err := registry.Get(domain.PlatformGoogleAds)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, integrator.ErrAdapterNotFound)
	})
}

func TestRegistry_Platforms(t *testing.T) {
	t.Run("deve listar todas as plataformas registradas", func(t *testing.T) {
		registry := integrator.NewRegistry()
		require.NoError(t, registry.Register(&stubAdapter{platform: domain.PlatformMeta}))
		require.NoError(t, registry.Register(&stubAdapter{platform: domain.PlatformGoogleAds}))

		platforms := registry.Platforms()
		assert.ElementsMatch(t, []domain.Platform{domain.PlatformMeta, domain.PlatformGoogleAds}, platforms)
	})
}
