package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

// organizationFromRequest retorna a organização do usuário autenticado
func organizationFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.OrganizationID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário sem organização no token", nil)
		return "", false
	}
	return claims.OrganizationID, true
}
