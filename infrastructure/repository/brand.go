package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

const brandsTable = "brands b"

type BrandRepository interface {
	// GetByID busca uma marca pelo identificador. Retorna (nil, nil) quando
	// a marca não existe
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)

	// ListByStatus lista as marcas com o status informado, ordenadas por nome
	ListByStatus(ctx context.Context, status domain.BrandStatus) ([]*domain.Brand, error)
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{conn: conn}
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.status, b.created_at, b.updated_at").
		From(brandsTable).
		Where(squirrel.Eq{"b.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	brand := &domain.Brand{}
	var status string

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&brand.ID,
		&brand.Name,
		&status,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar marca")
	}

	brand.Status = domain.BrandStatus(status)

	return brand, nil
}

func (r *brandRepository) ListByStatus(ctx context.Context, status domain.BrandStatus) ([]*domain.Brand, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.status, b.created_at, b.updated_at").
		From(brandsTable).
		Where(squirrel.Eq{"b.status": string(status)}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand := &domain.Brand{}
		var rowStatus string

		if err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&rowStatus,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear marcas")
		}

		brand.Status = domain.BrandStatus(rowStatus)
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return brands, nil
}
