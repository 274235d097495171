package meta

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
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

const insightFields = "spend,clicks,impressions,actions,action_values"

// Tipos de ação contabilizados como conversão
var conversionActionTypes = map[string]bool{
	"purchase":                             true,
	"offsite_conversion.fb_pixel_purchase": true,
	"lead":                                 true,
	"onsite_conversion.purchase":           true,
}

type Adapter struct {
	cfg    config.Meta
	client *http.Client
}

func NewAdapter(cfg *config.Config) *Adapter {
	return &Adapter{
		cfg: cfg.Meta,
		client: &http.Client{
			Timeout: cfg.Sync.FetchTimeout(),
		},
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformMeta
}

// FetchMetrics busca os insights diários da conta de anúncios da credencial
// na Graph API
func (a *Adapter) FetchMetrics(ctx context.Context, cred *domain.Credential, rng domain.DateRange) ([]integrator.RawRecord, error) {
	accountID := cred.Metadata("account_id")
	if accountID == "" {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "credencial sem account_id nos metadados")
	}

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		rng.Since.Format(time.DateOnly),
		rng.Until.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", "account")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("access_token", cred.AccessToken)

	endpoint := fmt.Sprintf("%s/act_%s/insights?%s", a.cfg.URL, accountID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("platform", domain.PlatformMeta).
			Error("Erro ao fazer a requisição de insights")
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, a.responseError(resp.StatusCode, body)
	}

	var response insightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao decodificar JSON de insights")
	}

	records := make([]integrator.RawRecord, 0, len(response.Data))
	for i := range response.Data {
		records = append(records, &response.Data[i])
	}

	return records, nil
}

// Normalize converte um insight da Graph API no formato normalizado. Campos
// ausentes ou mal formados viram zero
func (a *Adapter) Normalize(raw integrator.RawRecord) domain.NormalizedMetric {
	insight, ok := raw.(*InsightRecord)
	if !ok {
		return domain.NormalizedMetric{}
	}

	metric := domain.NormalizedMetric{
		Spend:       utils.ParseFloatOrZero(insight.Spend),
		Clicks:      utils.ParseIntOrZero(insight.Clicks),
		Impressions: utils.ParseIntOrZero(insight.Impressions),
	}

	for _, action := range insight.Actions {
		if conversionActionTypes[action.ActionType] {
			metric.Conversions += utils.ParseIntOrZero(action.Value)
		}
	}

	for _, action := range insight.ActionValues {
		if conversionActionTypes[action.ActionType] {
			metric.Revenue += utils.ParseFloatOrZero(action.Value)
		}
	}

	return metric.WithDerivedRatios()
}

func (a *Adapter) responseError(statusCode int, body []byte) error {
	var errResponse errorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil {
		if statusCode == http.StatusUnauthorized || errResponse.isTokenInvalid() {
			return errors.Wrap(integrator.ErrUnauthorized, errResponse.Error.Message)
		}
		if errResponse.Error.Message != "" {
			return errors.Wrap(integrator.ErrProviderFetchFailed, errResponse.Error.Message)
		}
	}

	if statusCode == http.StatusUnauthorized {
		return integrator.ErrUnauthorized
	}

	return errors.Wrapf(integrator.ErrProviderFetchFailed, "status HTTP inesperado %d", statusCode)
}
