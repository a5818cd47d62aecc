package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/widget"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
)

func ListWidgets(catalog *widget.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		widgets, err := catalog.List(domain.WidgetFilter{
			Category: query.Get("category"),
			Search:   query.Get("search"),
			Plan:     domain.Plan(query.Get("plan")),
		})
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"widgets":    widgets,
			"categories": catalog.Categories(),
		})
	})
}

func GetWidget(catalog *widget.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		definition, err := catalog.Get(id)
		if err != nil {
			if errors.Is(err, widget.ErrWidgetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Widget não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar widget", nil)
			return
		}

		writeJSON(w, http.StatusOK, definition)
	})
}
