package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/dashboard"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

func GetOverview(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		overview, err := service.GetOverview(r.Context(), organizationID, r.URL.Query().Get("period"))
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	})
}

func GetAttribution(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		model, err := domain.ParseAttributionModel(r.URL.Query().Get("model"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), domain.AttributionModels)
			return
		}

		report, err := service.GetAttribution(r.Context(), organizationID, model)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetCampaigns(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.CampaignFilter{
			Status:     domain.CampaignStatus(strings.ToLower(query.Get("status"))),
			SortBy:     domain.CampaignSortField(strings.ToLower(query.Get("sort"))),
			Descending: strings.EqualFold(query.Get("order"), "desc"),
		}

		list, err := service.GetCampaigns(r.Context(), organizationID, filter)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	})
}

func GetBudget(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("clientId")

		summary, err := service.GetBudget(r.Context(), clientID)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// RefreshDashboard descarta o cache dos painéis; sem key limpa tudo
func RefreshDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed := service.Refresh(r.Context(), r.URL.Query().Get("key"))
		writeJSON(w, http.StatusOK, map[string]any{"removed": removed})
	})
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("dashboard: request failed")

	switch {
	case errors.Is(err, dashboard.ErrOrganizationRequired), errors.Is(err, dashboard.ErrClientRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, dashboard.ErrInvalidPeriod), errors.Is(err, dashboard.ErrInvalidSort), errors.Is(err, dashboard.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, dashboard.ErrOverviewNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum dado de analytics para a organização", nil)
	case errors.Is(err, domain.ErrInvalidPayload):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPayload, "Resposta do backend fora do formato esperado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível carregar os dados do painel", nil)
	}
}
