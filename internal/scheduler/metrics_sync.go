package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/syncing"
)

// MetricsSyncConfig representa a configuração do avaliador agendado de
// sincronização de métricas
type MetricsSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// MetricsSyncService agenda e executa a sincronização de métricas de todas
// as marcas ativas, mantendo o cache aquecido entre consultas do dashboard
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	brandRepo           repository.BrandRepository
	orchestrator        syncing.Orchestrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMetricsSyncService(
	brandRepo repository.BrandRepository,
	orchestrator syncing.Orchestrator,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule:      appConfig.MetricsSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &MetricsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		brandRepo:    brandRepo,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBrands(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllBrands sincroniza as métricas de todas as marcas ativas. Execuções
// sobrepostas são descartadas
func (s *MetricsSyncService) syncAllBrands(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de métricas para todas as marcas ativas")

	brands, err := s.brandRepo.ListByStatus(ctx, domain.BrandStatusActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar marcas ativas para sincronização de métricas")
		return
	}

	if len(brands) == 0 {
		logrus.Info("Nenhuma marca ativa encontrada para sincronização de métricas")
		return
	}

	// Semáforo para limitar marcas processadas em paralelo
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, brand := range brands {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(b *domain.Brand) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncBrand(ctx, b)
		}(brand)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"brands":   len(brands),
	}).Info("Sincronização de métricas concluída")
}

// syncBrand aquece o cache de uma marca forçando a coleta ao vivo
func (s *MetricsSyncService) syncBrand(ctx context.Context, brand *domain.Brand) {
	logger := logrus.WithFields(logrus.Fields{
		"brand_id":   brand.ID,
		"brand_name": brand.Name,
	})

	logger.Info("Sincronizando métricas da marca")

	result, err := s.orchestrator.SyncBrandMetrics(ctx, brand.ID, syncing.Options{
		Period:     domain.PeriodDaily,
		ForceFresh: true,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao sincronizar métricas da marca")
		return
	}

	if result.Warning != "" {
		logger.WithField("warning", result.Warning).Warn("Sincronização da marca concluída com degradação")
		return
	}

	logger.WithField("metrics", len(result.Metrics)).Info("Métricas da marca sincronizadas com sucesso")
}

// TriggerManualSync inicia manualmente uma sincronização de métricas
func (s *MetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.syncAllBrands(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
