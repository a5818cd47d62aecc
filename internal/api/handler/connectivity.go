package handler

import (
	"net/http"

	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

type connectivityRequest struct {
	Online *bool `json:"online"`
}

// SetConnectivity recebe o evento online/offline do dispositivo. A volta da
// conexão dispara a sincronização das filas em background.
func SetConnectivity(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req connectivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.Online == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo online é obrigatório", nil)
			return
		}

		log.ForContext(r.Context()).WithField("online", *req.Online).Info("connectivity: device event received")

		manager.SetOnline(r.Context(), *req.Online)

		writeJSON(w, http.StatusAccepted, map[string]any{
			"online": manager.Online(),
			"queues": manager.Statuses(),
		})
	})
}

// GetConnectivity retorna o estado de conexão e o resumo das filas carregadas
func GetConnectivity(manager *incident.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"online":     manager.Online(),
			"is_syncing": manager.IsSyncing(),
			"queues":     manager.Statuses(),
		})
	})
}
