package syncing

import "errors"

var (
	// ErrAllProvidersUnavailable indica que nenhuma plataforma respondeu com
	// sucesso no ciclo de coleta
	ErrAllProvidersUnavailable = errors.New("all providers unavailable")

	// ErrNoDataAvailable indica que não há dado nenhum para servir: coleta
	// falhou e não existe cache do dia nem do dia anterior
	ErrNoDataAvailable = errors.New("no data available")
)
