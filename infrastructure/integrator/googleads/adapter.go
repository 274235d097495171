package googleads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/integrator"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/pkg/log"
	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const searchQueryTemplate = `
	SELECT
		segments.date,
		metrics.cost_micros,
		metrics.clicks,
		metrics.impressions,
		metrics.conversions,
		metrics.conversions_value
	FROM customer
	WHERE segments.date BETWEEN '%s' AND '%s'
`

type Adapter struct {
	cfg    config.GoogleAds
	client *http.Client
}

func NewAdapter(cfg *config.Config) *Adapter {
	return &Adapter{
		cfg: cfg.GoogleAds,
		client: &http.Client{
			Timeout: cfg.Sync.FetchTimeout(),
		},
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformGoogleAds
}

// FetchMetrics executa uma busca GAQL de métricas diárias do cliente da
// credencial
func (a *Adapter) FetchMetrics(ctx context.Context, cred *domain.Credential, rng domain.DateRange) ([]integrator.RawRecord, error) {
	customerID := cred.Metadata("customer_id")
	if customerID == "" {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "credencial sem customer_id nos metadados")
	}

	query := fmt.Sprintf(
		searchQueryTemplate,
		rng.Since.Format(time.DateOnly),
		rng.Until.Format(time.DateOnly),
	)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta GAQL")
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", a.cfg.URL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	req.Header.Set("developer-token", a.cfg.DeveloperToken)
	if loginCustomerID := cred.Metadata("login_customer_id"); loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("platform", domain.PlatformGoogleAds).
			Error("Erro ao fazer a requisição de métricas")
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.Wrap(integrator.ErrUnauthorized, "Google Ads rejeitou o token de acesso")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(integrator.ErrProviderFetchFailed, "status HTTP inesperado %d", resp.StatusCode)
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao decodificar JSON de métricas")
	}

	records := make([]integrator.RawRecord, 0, len(response.Results))
	for i := range response.Results {
		records = append(records, &response.Results[i])
	}

	return records, nil
}

// Normalize converte um resultado GAQL no formato normalizado. O custo chega
// em micros e é convertido para a unidade monetária
func (a *Adapter) Normalize(raw integrator.RawRecord) domain.NormalizedMetric {
	result, ok := raw.(*SearchResult)
	if !ok {
		return domain.NormalizedMetric{}
	}

	metric := domain.NormalizedMetric{
		Spend:       float64(utils.ParseIntOrZero(result.Metrics.CostMicros)) / 1e6,
		Clicks:      utils.ParseIntOrZero(result.Metrics.Clicks),
		Impressions: utils.ParseIntOrZero(result.Metrics.Impressions),
		Conversions: int(result.Metrics.Conversions),
		Revenue:     result.Metrics.ConversionsValue,
	}

	return metric.WithDerivedRatios()
}
