package integrator

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

var (
	// ErrUnauthorized indica que a plataforma rejeitou o token de acesso
	ErrUnauthorized = errors.New("provider rejected the access token")

	// ErrProviderFetchFailed indica falha de rede ou resposta inválida da
	// plataforma
	ErrProviderFetchFailed = errors.New("provider fetch failed")
)

// RawRecord é um registro bruto retornado por uma plataforma de anúncios,
// antes da normalização. Cada adaptador define o próprio formato
type RawRecord interface {
	Platform() domain.Platform
}

// Adapter traduz a API de uma plataforma de anúncios para o formato
// normalizado do sistema
type Adapter interface {
	// Platform identifica a plataforma atendida pelo adaptador
	Platform() domain.Platform

	// FetchMetrics busca os registros brutos de desempenho da conta da
	// credencial dentro do intervalo de datas
	FetchMetrics(ctx context.Context, cred *domain.Credential, rng domain.DateRange) ([]RawRecord, error)

	// Normalize converte um registro bruto no formato normalizado. É total:
	// campos ausentes viram zero e nunca há erro
	Normalize(raw RawRecord) domain.NormalizedMetric
}
