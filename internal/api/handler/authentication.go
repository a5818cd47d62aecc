package handler

import (
	"net/http"

	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/middleware"
)

// GetMe retorna as claims do usuário autenticado
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"user_id":         claims.UserID,
			"organization_id": claims.OrganizationID,
			"email":           claims.Email,
			"role":            claims.Role,
		})
	})
}
