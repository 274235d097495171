package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-performance-api/pkg/log"
)

// BrandMetricsResponse é o corpo de resposta da consulta de métricas
type BrandMetricsResponse struct {
	BrandID string                      `json:"brand_id"`
	Period  domain.Period               `json:"period"`
	Cached  bool                        `json:"cached"`
	Warning string                      `json:"warning,omitempty"`
	Metrics []*domain.PerformanceMetric `json:"metrics"`
}

// GetBrandMetrics serve as métricas de desempenho consolidadas de uma marca
func GetBrandMetrics(orchestrator syncing.Orchestrator, brandRepo repository.BrandRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("brand_id", brandID).Info("metrics: consultando métricas da marca")

		brand, err := brandRepo.GetByID(r.Context(), brandID)
		if err != nil {
			logger.WithError(err).WithField("brand_id", brandID).Error("metrics: falha ao buscar a marca")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar a marca", nil)
			return
		}
		if brand == nil {
			apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "Marca não encontrada", nil)
			return
		}

		period := domain.Period(r.URL.Query().Get("period"))
		if period == "" {
			period = domain.PeriodDaily
		}
		if !period.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido. Valores aceitos: hourly, daily, weekly", nil)
			return
		}

		forceFresh, _ := strconv.ParseBool(r.URL.Query().Get("force_fresh"))

		result, err := orchestrator.SyncBrandMetrics(r.Context(), brandID, syncing.Options{
			Period:     period,
			ForceFresh: forceFresh,
		})
		if err != nil {
			if errors.Is(err, syncing.ErrNoDataAvailable) {
				// Nunca responde 200 com corpo vazio: sem dado é indisponibilidade
				apiErrors.WriteError(w, apiErrors.ErrMetricsUnavailable, "Métricas temporariamente indisponíveis para esta marca", nil)
				return
			}

			logger.WithError(err).WithField("brand_id", brandID).Error("metrics: falha na sincronização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar métricas", nil)
			return
		}

		if result.Warning != "" {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"warning":  result.Warning,
			}).Warn("metrics: resposta degradada")
		}

		response := BrandMetricsResponse{
			BrandID: brandID,
			Period:  period,
			Cached:  result.Cached,
			Warning: result.Warning,
			Metrics: result.Metrics,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).WithField("brand_id", brandID).Error("metrics: falha ao serializar a resposta")
		}
	})
}
