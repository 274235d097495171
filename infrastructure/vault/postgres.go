package vault

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

const integrationCredentialsTable = "integration_credentials ic"

type postgresStore struct {
	conn *postgres.Connection
}

// NewPostgresStore cria um CredentialStore sobre o Postgres
func NewPostgresStore(conn *postgres.Connection) CredentialStore {
	return &postgresStore{conn: conn}
}

func (s *postgresStore) GetCredential(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("ic.brand_id, ic.platform, ic.access_token, ic.refresh_token, ic.expires_at_ms, ic.provider_metadata").
		From(integrationCredentialsTable).
		Where(squirrel.Eq{"ic.brand_id": brandID, "ic.platform": string(platform)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := s.conn.QueryRowContext(ctx, query, args...)
	cred, err := scanCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCredentialNotFound
		}
		return nil, errors.Wrap(err, "erro ao escanear credencial")
	}

	return cred, nil
}

func (s *postgresStore) SaveCredential(ctx context.Context, cred *domain.Credential) error {
	var metadataJSON []byte
	var err error

	if cred.ProviderMetadata != nil {
		metadataJSON, err = json.Marshal(cred.ProviderMetadata)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar provider_metadata para JSON")
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID da integração")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("integration_credentials").
		Columns("id", "brand_id", "platform", "access_token", "refresh_token", "expires_at_ms", "provider_metadata").
		Values(
			id,
			cred.BrandID,
			string(cred.Platform),
			cred.AccessToken,
			cred.RefreshToken,
			cred.ExpiresAt,
			metadataJSON,
		).
		Suffix(`
			ON CONFLICT (brand_id, platform) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at_ms = EXCLUDED.expires_at_ms,
				provider_metadata = EXCLUDED.provider_metadata,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao persistir credencial")
	}

	return nil
}

func (s *postgresStore) ListByBrand(ctx context.Context, brandID string) ([]*domain.Credential, error) {
	query, args, err := squirrel.
		Select("ic.brand_id, ic.platform, ic.access_token, ic.refresh_token, ic.expires_at_ms, ic.provider_metadata").
		From(integrationCredentialsTable).
		Where(squirrel.Eq{"ic.brand_id": brandID}).
		OrderBy("ic.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	creds := make([]*domain.Credential, 0)
	for rows.Next() {
		cred, err := scanCredentialRows(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear credenciais")
		}
		creds = append(creds, cred)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return creds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (*domain.Credential, error) {
	cred := &domain.Credential{}
	var platform string
	var refreshToken sql.NullString
	var expiresAt sql.NullInt64
	var metadataJSON []byte

	err := row.Scan(
		&cred.BrandID,
		&platform,
		&cred.AccessToken,
		&refreshToken,
		&expiresAt,
		&metadataJSON,
	)
	if err != nil {
		return nil, err
	}

	cred.Platform = domain.Platform(platform)
	cred.RefreshToken = refreshToken.String
	cred.ExpiresAt = expiresAt.Int64

	if metadataJSON != nil {
		metadata := make(map[string]string)
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar JSON de provider_metadata")
		}
		cred.ProviderMetadata = metadata
	}

	return cred, nil
}

func scanCredentialRows(rows *sql.Rows) (*domain.Credential, error) {
	return scanCredential(rows)
}
