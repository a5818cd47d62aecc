package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/seating"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/gesture"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

type seatingResponse struct {
	*domain.SeatingLayout
	Viewport  *gesture.Viewport       `json:"viewport,omitempty"`
	Projected []domain.ProjectedTable `json:"projected,omitempty"`
	Hit       *domain.SeatingTable    `json:"hit,omitempty"`
}

type assignRequest struct {
	TableID string `json:"table_id"`
}

// GetSeating retorna o mapa de mesas. Com width e height na query, as mesas
// também vêm projetadas na tela; sem scale o mapa é enquadrado na tela.
// tap_x e tap_y identificam a mesa tocada no viewport.
func GetSeating(service seating.Seater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eventID := httprouter.ParamsFromContext(r.Context()).ByName("eventId")

		layout, err := service.GetLayout(r.Context(), eventID)
		if err != nil {
			writeSeatingError(w, r, err)
			return
		}

		response := seatingResponse{SeatingLayout: layout}

		screen, viewport, ok, err := viewportFromQuery(r, layout)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if ok {
			response.Viewport = &viewport
			response.Projected = seating.Project(layout, viewport, screen)

			if tap, ok := tapFromQuery(r); ok {
				if table, found := seating.TableAt(layout, viewport, tap); found {
					response.Hit = table
				}
			}
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func viewportFromQuery(r *http.Request, layout *domain.SeatingLayout) (gesture.Rect, gesture.Viewport, bool, error) {
	query := r.URL.Query()
	if query.Get("width") == "" || query.Get("height") == "" {
		return gesture.Rect{}, gesture.Viewport{}, false, nil
	}

	values := map[string]float64{}
	for _, name := range []string{"width", "height", "scale", "offset_x", "offset_y", "padding"} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return gesture.Rect{}, gesture.Viewport{}, false, errors.New("parâmetro numérico inválido: " + name)
		}
		values[name] = v
	}

	screen := gesture.Rect{Width: values["width"], Height: values["height"]}
	viewport := gesture.NewViewport()

	if _, hasScale := values["scale"]; !hasScale {
		return screen, viewport.Fit(seating.Bounds(layout), screen, values["padding"]), true, nil
	}

	viewport.Scale = values["scale"]
	viewport.OffsetX = values["offset_x"]
	viewport.OffsetY = values["offset_y"]

	return screen, viewport.Normalize(), true, nil
}

func tapFromQuery(r *http.Request) (gesture.Point, bool) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("tap_x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("tap_y"), 64)
	if errX != nil || errY != nil {
		return gesture.Point{}, false
	}
	return gesture.Point{X: x, Y: y}, true
}

func AssignGuest(service seating.Seater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req assignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}
		if req.TableID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "table_id é obrigatório", nil)
			return
		}

		layout, err := service.Assign(r.Context(), params.ByName("eventId"), params.ByName("guestId"), req.TableID)
		if err != nil {
			writeSeatingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, layout)
	})
}

func UnassignGuest(service seating.Seater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		layout, err := service.Unassign(r.Context(), params.ByName("eventId"), params.ByName("guestId"))
		if err != nil {
			writeSeatingError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, layout)
	})
}

func writeSeatingError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("seating: request failed")

	switch {
	case errors.Is(err, seating.ErrEventIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, seating.ErrGuestNotFound), errors.Is(err, seating.ErrTableNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSeatingNotFound, err.Error(), nil)
	case errors.Is(err, seating.ErrTableFull):
		apiErrors.WriteError(w, apiErrors.ErrSeatingTableFull, err.Error(), nil)
	case errors.Is(err, seating.ErrGuestDeclined):
		apiErrors.WriteError(w, apiErrors.ErrSeatingGuestBlocked, err.Error(), nil)
	case errors.Is(err, seating.ErrPersist):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível salvar a alteração; o mapa foi restaurado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o mapa de mesas", nil)
	}
}
