package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/infrastructure/vault"
	"github.com/vfg2006/ads-performance-api/internal/api"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/scheduler"
	"github.com/vfg2006/ads-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-performance-api/internal/usecases/tokening"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	brandRepo := repository.NewBrandRepository(pgConn)
	metricCacheRepo := repository.NewMetricCacheRepository(pgConn)
	credentialStore := vault.NewPostgresStore(pgConn)

	authenticator := authenticating.NewService(cfg)

	tokenManager := tokening.NewService(cfg, credentialStore)

	registry := integrator.NewRegistry()
	for _, adapter := range []integrator.Adapter{
		meta.NewAdapter(cfg),
		googleads.NewAdapter(cfg),
		tiktok.NewAdapter(cfg),
	} {
		if err := registry.Register(adapter); err != nil {
			logrus.WithError(err).WithField("platform", adapter.Platform()).
				Fatal("Erro ao registrar adaptador de plataforma")
		}
	}

	orchestrator := syncing.NewService(cfg, registry, credentialStore, tokenManager, metricCacheRepo)

	metricsSyncService := scheduler.NewMetricsSyncService(brandRepo, orchestrator, cfg)

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		orchestrator,
		brandRepo,
		authenticator,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
