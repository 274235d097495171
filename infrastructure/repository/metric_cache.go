package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

const metricCacheTable = "metric_cache mc"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MetricCacheRepository interface {
	// GetByBrandAndDate lê a entrada de cache de uma marca em um dia.
	// Retorna (nil, nil) quando não há entrada
	GetByBrandAndDate(ctx context.Context, brandID string, date time.Time) (*domain.CacheEntry, error)

	// SaveOrUpdate grava a entrada de cache da marca no dia. Em caso de
	// conflito a última escrita vence
	SaveOrUpdate(ctx context.Context, entry *domain.CacheEntry) error
}

type metricCacheRepository struct {
	conn *postgres.Connection
}

func NewMetricCacheRepository(conn *postgres.Connection) MetricCacheRepository {
	return &metricCacheRepository{conn: conn}
}

func (r *metricCacheRepository) GetByBrandAndDate(ctx context.Context, brandID string, date time.Time) (*domain.CacheEntry, error) {
	query, args, err := squirrel.
		Select("mc.brand_id, mc.date, mc.metrics, mc.updated_at").
		From(metricCacheTable).
		Where(squirrel.Eq{"mc.brand_id": brandID, "mc.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	entry := &domain.CacheEntry{}
	var metricsJSON []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&entry.BrandID,
		&entry.Date,
		&metricsJSON,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar cache de métricas")
	}

	if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar JSON de métricas")
	}

	return entry, nil
}

func (r *metricCacheRepository) SaveOrUpdate(ctx context.Context, entry *domain.CacheEntry) error {
	metricsJSON, err := json.Marshal(entry.Metrics)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar métricas para JSON")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID da entrada de cache")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("metric_cache").
		Columns("id", "brand_id", "date", "metrics", "updated_at").
		Values(
			id,
			entry.BrandID,
			entry.Date.Format(time.DateOnly),
			metricsJSON,
			entry.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (brand_id, date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao persistir cache de métricas")
	}

	return nil
}
