package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
	"github.com/vfg2006/wedsync-venue-api/pkg/middleware"
)

// SaveIncident grava um relato na fila offline do local
func SaveIncident(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		venueID := httprouter.ParamsFromContext(r.Context()).ByName("venueId")

		var report domain.IncidentReport
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if report.ReportedBy == "" {
			if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
				report.ReportedBy = claims.UserID
			}
		}

		queue, err := manager.Queue(r.Context(), venueID)
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		saved, err := queue.SaveOfflineIncident(r.Context(), report)
		if err != nil {
			// O relato fica na fila em memória mesmo com falha de persistência
			if errors.Is(err, incident.ErrPersist) && saved.ID != "" {
				writeJSON(w, http.StatusAccepted, map[string]any{
					"incident": saved,
					"warning":  "Relato mantido em memória; falha ao gravar no armazenamento local",
				})
				return
			}
			writeIncidentError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	})
}

// ListIncidents retorna a fila do local com o resumo de pendências
func ListIncidents(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		venueID := httprouter.ParamsFromContext(r.Context()).ByName("venueId")

		queue, err := manager.Queue(r.Context(), venueID)
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.IncidentListResponse{
			Status:    queue.Status(),
			Incidents: queue.List(),
		})
	})
}

// SyncIncidents é o "Sincronizar agora": executa um ciclo e devolve o resultado
func SyncIncidents(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		venueID := httprouter.ParamsFromContext(r.Context()).ByName("venueId")

		queue, err := manager.Queue(r.Context(), venueID)
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		result, err := queue.Sync(r.Context(), domain.SyncTriggerManual)
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		if result.Skipped {
			apiErrors.WriteError(w, apiErrors.ErrIncidentSyncActive, "Sincronização já em andamento", result)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"result": result,
			"status": queue.Status(),
		})
	})
}

// ClearIncidents remove todos os relatos da fila do local
func ClearIncidents(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		venueID := httprouter.ParamsFromContext(r.Context()).ByName("venueId")

		queue, err := manager.Queue(r.Context(), venueID)
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		removed, err := queue.Clear(r.Context())
		if err != nil {
			writeIncidentError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"removed": removed})
	})
}

func writeIncidentError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("incidents: request failed")

	var incidentErr *incident.IncidentError
	if errors.As(err, &incidentErr) {
		apiErrors.WriteError(w, incidentErr.Code, incidentErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, incident.ErrVenueIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do local é obrigatório", nil)
	case errors.Is(err, incident.ErrCorruptQueue):
		apiErrors.WriteError(w, apiErrors.ErrIncidentPersist, "Fila local corrompida", nil)
	case errors.Is(err, incident.ErrLoad), errors.Is(err, incident.ErrPersist):
		apiErrors.WriteError(w, apiErrors.ErrIncidentPersist, "Erro no armazenamento local da fila", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a fila de incidentes", nil)
	}
}
