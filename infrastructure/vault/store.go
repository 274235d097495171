package vault

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// ErrCredentialNotFound indica que não existe integração configurada para a
// marca e plataforma informadas
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore é o cofre de credenciais das integrações de anúncios.
// A criptografia em repouso é responsabilidade do cofre, não deste núcleo:
// as colunas de token são tratadas como texto opaco.
type CredentialStore interface {
	// GetCredential lê a credencial de uma marca em uma plataforma
	GetCredential(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error)

	// SaveCredential persiste uma credencial, inclusive a regravação de
	// tokens renovados
	SaveCredential(ctx context.Context, cred *domain.Credential) error

	// ListByBrand lista as credenciais de todas as plataformas configuradas
	// para uma marca
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Credential, error)
}
