package tokening

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/vault"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/pkg/log"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manager gerencia o ciclo de vida dos tokens de acesso das integrações
type Manager interface {
	// EnsureFreshToken retorna a credencial da marca na plataforma,
	// renovando o token proativamente quando está perto de expirar
	EnsureFreshToken(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error)

	// ForceRefresh renova o token incondicionalmente. Usado quando a
	// plataforma rejeita um token que parecia válido
	ForceRefresh(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error)
}

type service struct {
	cfg   *config.Config
	store vault.CredentialStore

	// Serializa renovações para não disparar duas trocas do mesmo token
	refreshMutex sync.Mutex

	httpClient *http.Client
	now        func() time.Time
}

func NewService(cfg *config.Config, store vault.CredentialStore) Manager {
	return &service{
		cfg:   cfg,
		store: store,
		httpClient: &http.Client{
			Timeout: cfg.Sync.FetchTimeout(),
		},
		now: time.Now,
	}
}

func (s *service) EnsureFreshToken(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error) {
	cred, err := s.store.GetCredential(ctx, brandID, platform)
	if err != nil {
		if errors.Is(err, vault.ErrCredentialNotFound) {
			return nil, ErrCredentialUnavailable
		}
		return nil, errors.Wrap(err, "erro ao buscar credencial no cofre")
	}

	if cred.ExpiresWithin(s.cfg.Sync.RefreshBuffer(), s.now()) {
		return s.refresh(ctx, cred)
	}

	return cred, nil
}

func (s *service) ForceRefresh(ctx context.Context, brandID string, platform domain.Platform) (*domain.Credential, error) {
	cred, err := s.store.GetCredential(ctx, brandID, platform)
	if err != nil {
		if errors.Is(err, vault.ErrCredentialNotFound) {
			return nil, ErrCredentialUnavailable
		}
		return nil, errors.Wrap(err, "erro ao buscar credencial no cofre")
	}

	return s.refresh(ctx, cred)
}

// refresh troca o token atual por um novo na plataforma e regrava a
// credencial no cofre. A regravação é best-effort: uma falha de escrita não
// invalida o token recém-obtido
func (s *service) refresh(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	logger := log.ForContext(ctx).WithFields(map[string]interface{}{
		"brand_id": cred.BrandID,
		"platform": cred.Platform,
	})

	var refreshed *domain.Credential
	var err error

	switch cred.Platform {
	case domain.PlatformMeta:
		refreshed, err = s.exchangeMetaToken(ctx, cred)
	case domain.PlatformGoogleAds:
		refreshed, err = s.refreshOAuthToken(ctx, cred, s.cfg.GoogleAds.TokenURL, s.cfg.GoogleAds.ClientID, s.cfg.GoogleAds.ClientSecret)
	case domain.PlatformTikTok:
		refreshed, err = s.refreshOAuthToken(ctx, cred, s.cfg.TikTok.TokenURL, s.cfg.TikTok.AppID, s.cfg.TikTok.AppSecret)
	default:
		return nil, errors.Wrapf(ErrTokenRefreshFailed, "plataforma desconhecida %s", cred.Platform)
	}

	if err != nil {
		logger.WithError(err).Error("Falha ao renovar o token da integração")
		return nil, err
	}

	if saveErr := s.store.SaveCredential(ctx, refreshed); saveErr != nil {
		logger.WithError(saveErr).Warn("Falha ao regravar a credencial renovada no cofre")
	}

	logger.Info("Token da integração renovado com sucesso")

	return refreshed, nil
}

// exchangeMetaToken troca o token atual por um de longa duração via
// fb_exchange_token. O Meta não emite refresh token: a troca usa o próprio
// token de acesso
func (s *service) exchangeMetaToken(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", s.cfg.Meta.AppID)
	params.Add("client_secret", s.cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", cred.AccessToken)

	endpoint := s.cfg.Meta.TokenURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrTokenRefreshFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ErrTokenRefreshFailed, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrTokenRefreshFailed, "status HTTP %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return nil, errors.Wrap(ErrTokenRefreshFailed, "erro ao decodificar JSON do token")
	}

	if tokenResponse.AccessToken == "" {
		return nil, errors.Wrap(ErrTokenRefreshFailed, "resposta sem access_token")
	}

	updated := *cred
	updated.AccessToken = tokenResponse.AccessToken
	if tokenResponse.ExpiresIn > 0 {
		updated.ExpiresAt = s.now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second).UnixMilli()
	}

	return &updated, nil
}

// refreshOAuthToken renova o token via grant refresh_token padrão do OAuth2
func (s *service) refreshOAuthToken(ctx context.Context, cred *domain.Credential, tokenURL, clientID, clientSecret string) (*domain.Credential, error) {
	if cred.RefreshToken == "" {
		return nil, errors.Wrap(ErrTokenRefreshFailed, "credencial sem refresh token, requer reautorização manual")
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	oauthCtx := context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := conf.TokenSource(oauthCtx, &oauth2.Token{RefreshToken: cred.RefreshToken}).Token()
	if err != nil {
		return nil, errors.Wrap(ErrTokenRefreshFailed, err.Error())
	}

	updated := *cred
	updated.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		updated.RefreshToken = token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		updated.ExpiresAt = token.Expiry.UnixMilli()
	}

	return &updated, nil
}
