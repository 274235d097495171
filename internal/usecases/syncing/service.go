package syncing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/infrastructure/vault"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-performance-api/internal/usecases/tokening"
	"github.com/vfg2006/ads-performance-api/pkg/log"
)

// Options parametriza um ciclo de sincronização
type Options struct {
	Period domain.Period

	// ForceFresh pula o cache fresco e força a coleta ao vivo
	ForceFresh bool
}

// Result é a resposta de um ciclo de sincronização. Warning descreve
// degradações (coleta parcial, dado requentado do cache)
type Result struct {
	Metrics []*domain.PerformanceMetric
	Cached  bool
	Warning string
}

// Orchestrator coordena a coleta de métricas de todas as plataformas de uma
// marca, com cache e degradação progressiva
type Orchestrator interface {
	SyncBrandMetrics(ctx context.Context, brandID string, opts Options) (*Result, error)
}

type service struct {
	cfg       *config.Config
	registry  *integrator.Registry
	store     vault.CredentialStore
	tokens    tokening.Manager
	cacheRepo repository.MetricCacheRepository

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	registry *integrator.Registry,
	store vault.CredentialStore,
	tokens tokening.Manager,
	cacheRepo repository.MetricCacheRepository,
) Orchestrator {
	return &service{
		cfg:       cfg,
		registry:  registry,
		store:     store,
		tokens:    tokens,
		cacheRepo: cacheRepo,
		now:       time.Now,
	}
}

// platformResult é o desfecho do pipeline de uma plataforma
type platformResult struct {
	platform domain.Platform
	metrics  []domain.NormalizedMetric
	err      error
}

// SyncBrandMetrics resolve as métricas da marca em camadas:
//  1. cache do dia dentro da janela de frescor
//  2. coleta ao vivo em todas as plataformas, em paralelo
//  3. cache do dia fora da janela de frescor, com aviso
//  4. cache do dia anterior, com aviso mais forte
//  5. sem dado nenhum: erro
func (s *service) SyncBrandMetrics(ctx context.Context, brandID string, opts Options) (*Result, error) {
	if !opts.Period.IsValid() {
		opts.Period = domain.PeriodDaily
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	logger := log.ForContext(ctx).WithFields(map[string]interface{}{
		"brand_id": brandID,
		"period":   opts.Period,
	})

	// Camada 1: cache fresco do dia. A leitura acontece mesmo com
	// ForceFresh, porque o cache do dia é também a camada 3 de fallback
	todayEntry, err := s.cacheRepo.GetByBrandAndDate(ctx, brandID, today)
	if err != nil {
		logger.WithError(err).Warn("Falha ao ler o cache de métricas, seguindo para coleta ao vivo")
		todayEntry = nil
	}

	if !opts.ForceFresh && todayEntry != nil && todayEntry.Age(now) <= s.cfg.Sync.CacheTTL() {
		return &Result{Metrics: todayEntry.Metrics, Cached: true}, nil
	}

	// Camada 2: coleta ao vivo, uma goroutine por plataforma
	byPlatform, failed := s.fetchAllPlatforms(ctx, brandID, opts.Period, now)

	if len(byPlatform) > 0 {
		metrics := aggregating.Aggregate(brandID, opts.Period, byPlatform, now)

		s.persistCacheAsync(brandID, today, metrics, now)

		result := &Result{Metrics: metrics}
		if len(failed) > 0 {
			result.Warning = partialWarning(failed)
		}

		return result, nil
	}

	logger.WithError(ErrAllProvidersUnavailable).Warn("Nenhuma plataforma respondeu, caindo para o cache")

	// Camada 3: cache do dia, requentado
	if todayEntry != nil {
		return &Result{
			Metrics: todayEntry.Metrics,
			Cached:  true,
			Warning: fmt.Sprintf("Dados do cache de %s: as plataformas de anúncios estão indisponíveis", todayEntry.UpdatedAt.Format("15:04")),
		}, nil
	}

	// Camada 4: cache do dia anterior
	yesterday := today.AddDate(0, 0, -1)
	previousEntry, err := s.cacheRepo.GetByBrandAndDate(ctx, brandID, yesterday)
	if err != nil {
		logger.WithError(err).Warn("Falha ao ler o cache do dia anterior")
		previousEntry = nil
	}

	if previousEntry != nil {
		return &Result{
			Metrics: previousEntry.Metrics,
			Cached:  true,
			Warning: "Dados do dia anterior: as plataformas de anúncios estão indisponíveis e não há coleta de hoje",
		}, nil
	}

	// Camada 5: nada a servir
	return nil, ErrNoDataAvailable
}

// fetchAllPlatforms roda o pipeline de cada plataforma configurada da marca
// em paralelo. A falha de uma plataforma não derruba as demais
func (s *service) fetchAllPlatforms(
	ctx context.Context,
	brandID string,
	period domain.Period,
	now time.Time,
) (map[domain.Platform][]domain.NormalizedMetric, []domain.Platform) {
	creds, err := s.store.ListByBrand(ctx, brandID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("brand_id", brandID).
			Error("Falha ao listar credenciais da marca")
		return nil, nil
	}

	rng := domain.RangeForPeriod(period, now)

	results := make(chan platformResult, len(creds))
	var launched int

	for _, cred := range creds {
		adapter, err := s.registry.Get(cred.Platform)
		if err != nil {
			log.ForContext(ctx).WithFields(map[string]interface{}{
				"brand_id": brandID,
				"platform": cred.Platform,
			}).Warn("Credencial configurada para plataforma sem adaptador registrado")
			continue
		}

		launched++
		go func(platform domain.Platform) {
			metrics, err := s.fetchPlatform(ctx, brandID, platform, adapter, rng)
			results <- platformResult{platform: platform, metrics: metrics, err: err}
		}(cred.Platform)
	}

	byPlatform := make(map[domain.Platform][]domain.NormalizedMetric)
	var failed []domain.Platform

	for i := 0; i < launched; i++ {
		result := <-results
		if result.err != nil {
			log.ForContext(ctx).WithError(result.err).WithFields(map[string]interface{}{
				"brand_id": brandID,
				"platform": result.platform,
			}).Error("Falha na coleta da plataforma")
			failed = append(failed, result.platform)
			continue
		}
		byPlatform[result.platform] = result.metrics
	}

	return byPlatform, failed
}

// fetchPlatform é o pipeline de uma plataforma: token fresco, busca, e
// normalização. Quando a plataforma rejeita o token, há exatamente uma
// renovação reativa seguida de uma única nova tentativa
func (s *service) fetchPlatform(
	ctx context.Context,
	brandID string,
	platform domain.Platform,
	adapter integrator.Adapter,
	rng domain.DateRange,
) ([]domain.NormalizedMetric, error) {
	cred, err := s.tokens.EnsureFreshToken(ctx, brandID, platform)
	if err != nil {
		return nil, err
	}

	raw, err := adapter.FetchMetrics(ctx, cred, rng)
	if err != nil {
		if !errors.Is(err, integrator.ErrUnauthorized) {
			return nil, err
		}

		cred, err = s.tokens.ForceRefresh(ctx, brandID, platform)
		if err != nil {
			return nil, err
		}

		raw, err = adapter.FetchMetrics(ctx, cred, rng)
		if err != nil {
			return nil, err
		}
	}

	metrics := make([]domain.NormalizedMetric, 0, len(raw))
	for _, record := range raw {
		metrics = append(metrics, adapter.Normalize(record))
	}

	return metrics, nil
}

// persistCacheAsync grava o resultado no cache sem bloquear a resposta.
// Escritas concorrentes do mesmo dia se resolvem por última escrita vence
func (s *service) persistCacheAsync(brandID string, date time.Time, metrics []*domain.PerformanceMetric, now time.Time) {
	entry := &domain.CacheEntry{
		BrandID:   brandID,
		Date:      date,
		Metrics:   metrics,
		UpdatedAt: now,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.cacheRepo.SaveOrUpdate(ctx, entry); err != nil {
			log.L.WithError(err).WithField("brand_id", brandID).
				Error("Falha ao persistir o cache de métricas")
		}
	}()
}

func partialWarning(failed []domain.Platform) string {
	names := make([]string, 0, len(failed))
	for _, platform := range failed {
		names = append(names, string(platform))
	}
	sort.Strings(names)

	return fmt.Sprintf("Coleta parcial: sem dados de %s", strings.Join(names, ", "))
}
