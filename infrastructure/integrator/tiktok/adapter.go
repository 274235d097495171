package tiktok

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

// Códigos de erro de autenticação da Business API.
// 40105: access token incorreto ou revogado. 40001: token ausente ou expirado
const (
	codeOK            = 0
	codeTokenInvalid  = 40105
	codeAuthFailed    = 40001
	reportMetricNames = `["spend","clicks","impressions","conversion","total_complete_payment","total_purchase_value"]`
)

type Adapter struct {
	cfg    config.TikTok
	client *http.Client
}

func NewAdapter(cfg *config.Config) *Adapter {
	return &Adapter{
		cfg: cfg.TikTok,
		client: &http.Client{
			Timeout: cfg.Sync.FetchTimeout(),
		},
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// FetchMetrics busca o relatório integrado de desempenho do anunciante da
// credencial. A Business API sinaliza erro pelo campo code do envelope,
// mesmo com status HTTP 200
func (a *Adapter) FetchMetrics(ctx context.Context, cred *domain.Credential, rng domain.DateRange) ([]integrator.RawRecord, error) {
	advertiserID := cred.Metadata("advertiser_id")
	if advertiserID == "" {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "credencial sem advertiser_id nos metadados")
	}

	params := url.Values{}
	params.Add("advertiser_id", advertiserID)
	params.Add("report_type", "BASIC")
	params.Add("data_level", "AUCTION_ADVERTISER")
	params.Add("dimensions", `["stat_time_day"]`)
	params.Add("metrics", reportMetricNames)
	params.Add("start_date", rng.Since.Format(time.DateOnly))
	params.Add("end_date", rng.Until.Format(time.DateOnly))

	endpoint := fmt.Sprintf("%s/report/integrated/get/?%s", a.cfg.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Access-Token", cred.AccessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("platform", domain.PlatformTikTok).
			Error("Erro ao fazer a requisição do relatório")
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.Wrap(integrator.ErrUnauthorized, "TikTok rejeitou o token de acesso")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(integrator.ErrProviderFetchFailed, "status HTTP inesperado %d", resp.StatusCode)
	}

	var response reportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(integrator.ErrProviderFetchFailed, "erro ao decodificar JSON do relatório")
	}

	if response.Code != codeOK {
		if response.Code == codeTokenInvalid || response.Code == codeAuthFailed {
			return nil, errors.Wrap(integrator.ErrUnauthorized, response.Message)
		}
		return nil, errors.Wrapf(integrator.ErrProviderFetchFailed, "code %d: %s", response.Code, response.Message)
	}

	records := make([]integrator.RawRecord, 0, len(response.Data.List))
	for i := range response.Data.List {
		records = append(records, &response.Data.List[i])
	}

	return records, nil
}

// Normalize converte uma linha do relatório no formato normalizado. Campos
// ausentes ou mal formados viram zero
func (a *Adapter) Normalize(raw integrator.RawRecord) domain.NormalizedMetric {
	row, ok := raw.(*ReportRow)
	if !ok {
		return domain.NormalizedMetric{}
	}

	metric := domain.NormalizedMetric{
		Spend:       utils.ParseFloatOrZero(row.Metrics.Spend),
		Clicks:      utils.ParseIntOrZero(row.Metrics.Clicks),
		Impressions: utils.ParseIntOrZero(row.Metrics.Impressions),
		Conversions: utils.ParseIntOrZero(row.Metrics.Conversion),
		Revenue:     utils.ParseFloatOrZero(row.Metrics.TotalPurchaseValue),
	}

	return metric.WithDerivedRatios()
}
