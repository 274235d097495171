package meta

import "github.com/vfg2006/ads-performance-api/internal/domain"

// InsightRecord é um insight diário de conta retornado pela Graph API. Os
// valores numéricos chegam como strings
type InsightRecord struct {
	AccountID    string        `json:"account_id"`
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
	Spend        string        `json:"spend"`
	Clicks       string        `json:"clicks"`
	Impressions  string        `json:"impressions"`
	Actions      []ActionEntry `json:"actions"`
	ActionValues []ActionEntry `json:"action_values"`
}

type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

func (r *InsightRecord) Platform() domain.Platform {
	return domain.PlatformMeta
}

type insightsResponse struct {
	Data []InsightRecord `json:"data"`
}

// errorResponse representa a estrutura de erro da API do Meta
type errorResponse struct {
	Error errorDetails `json:"error"`
}

type errorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// isTokenInvalid verifica se o erro é de token expirado ou revogado.
// O código 190 representa "token expirado" nas respostas da API do Meta.
// Subcódigos relacionados a problemas de token: 460, 463, 467
func (e *errorResponse) isTokenInvalid() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
