package domain

import "time"

// Credential representa a credencial de acesso de uma marca em uma
// plataforma de anúncios. O cofre de credenciais é o dono do registro;
// o gerenciador de tokens lê e pode regravá-lo após um refresh.
type Credential struct {
	BrandID      string   `json:"brand_id"`
	Platform     Platform `json:"platform"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	// ExpiresAt em epoch millis; 0 indica expiração desconhecida
	ExpiresAt        int64             `json:"expires_at_ms,omitempty"`
	ProviderMetadata map[string]string `json:"provider_metadata,omitempty"`
}

// ExpiresWithin verifica se a credencial expira dentro da janela informada.
// Credenciais sem expiração conhecida nunca são consideradas expirando.
func (c *Credential) ExpiresWithin(buffer time.Duration, now time.Time) bool {
	if c.ExpiresAt == 0 {
		return false
	}

	expiresAt := time.UnixMilli(c.ExpiresAt)
	return now.After(expiresAt.Add(-buffer))
}

// Metadata retorna um valor de metadado da plataforma, ou vazio se ausente
func (c *Credential) Metadata(key string) string {
	if c.ProviderMetadata == nil {
		return ""
	}
	return c.ProviderMetadata[key]
}
