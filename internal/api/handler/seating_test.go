package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/seating"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/seating/mocks"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func layoutFixture() *domain.SeatingLayout {
	return &domain.SeatingLayout{
		EventID: "e1",
		Tables: []domain.SeatingTable{
			{ID: "t1", EventID: "e1", Name: "Mesa 1", Shape: domain.TableShapeRound, Capacity: 2, X: 0, Y: 0, Width: 100, Height: 100, GuestIDs: []string{"g1"}},
			{ID: "t2", EventID: "e1", Name: "Mesa 2", Shape: domain.TableShapeRectangle, Capacity: 4, X: 300, Y: 0, Width: 100, Height: 50, GuestIDs: []string{}},
		},
		Guests: []domain.Guest{{ID: "g1", EventID: "e1", Name: "Ana"}},
	}
}

func TestGetSeating(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantStatus    int
		wantProjected int
		wantScale     float64
	}{
		{name: "sem viewport", query: "", wantStatus: http.StatusOK},
		{name: "enquadra o mapa na tela", query: "?width=800&height=200", wantStatus: http.StatusOK, wantProjected: 2, wantScale: 2},
		{name: "viewport explícito", query: "?width=800&height=600&scale=0.5&offset_x=10", wantStatus: http.StatusOK, wantProjected: 2, wantScale: 0.5},
		{name: "parâmetro inválido", query: "?width=800&height=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSeater(ctrl)
			service.EXPECT().GetLayout(gomock.Any(), "e1").Return(layoutFixture(), nil)

			rec := serve(t, Seating(service), staffClaims, http.MethodGet, "/v1/events/e1/seating"+tt.query, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				EventID  string `json:"event_id"`
				Viewport *struct {
					Scale float64 `json:"scale"`
				} `json:"viewport"`
				Projected []domain.ProjectedTable `json:"projected"`
			}
			decodeBody(t, rec, &body)

			assert.Equal(t, "e1", body.EventID)
			assert.Len(t, body.Projected, tt.wantProjected)
			if tt.wantProjected == 0 {
				assert.Nil(t, body.Viewport)
				return
			}
			require.NotNil(t, body.Viewport)
			assert.InDelta(t, tt.wantScale, body.Viewport.Scale, 0.001)
			assert.Equal(t, 1, body.Projected[0].Occupied)
		})
	}
}

func TestGetSeating_Tap(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeater(ctrl)
	service.EXPECT().GetLayout(gomock.Any(), "e1").Return(layoutFixture(), nil).Times(2)

	// Escala 1 sem deslocamento: tela e salão coincidem
	query := "?width=800&height=600&scale=1"

	rec := serve(t, Seating(service), staffClaims, http.MethodGet, "/v1/events/e1/seating"+query+"&tap_x=350&tap_y=25", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Hit *domain.SeatingTable `json:"hit"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Hit)
	assert.Equal(t, "t2", body.Hit.ID)

	// Canto da mesa redonda fica fora da elipse
	rec = serve(t, Seating(service), staffClaims, http.MethodGet, "/v1/events/e1/seating"+query+"&tap_x=2&tap_y=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body.Hit = nil
	decodeBody(t, rec, &body)
	assert.Nil(t, body.Hit)
}

func TestAssignGuest(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "aloca convidado", body: assignRequest{TableID: "t2"}, wantStatus: http.StatusOK},
		{name: "mesa lotada", body: assignRequest{TableID: "t1"}, err: fmt.Errorf("%w: t1", seating.ErrTableFull), wantStatus: http.StatusConflict, wantCode: apiErrors.ErrSeatingTableFull},
		{name: "convidado recusou", body: assignRequest{TableID: "t2"}, err: seating.ErrGuestDeclined, wantStatus: http.StatusUnprocessableEntity, wantCode: apiErrors.ErrSeatingGuestBlocked},
		{name: "mesa inexistente", body: assignRequest{TableID: "t9"}, err: seating.ErrTableNotFound, wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrSeatingNotFound},
		{name: "falha ao salvar", body: assignRequest{TableID: "t2"}, err: seating.ErrPersist, wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSeater(ctrl)

			tableID := tt.body.(assignRequest).TableID
			if tt.err != nil {
				service.EXPECT().Assign(gomock.Any(), "e1", "g1", tableID).Return(nil, tt.err)
			} else {
				service.EXPECT().Assign(gomock.Any(), "e1", "g1", tableID).Return(layoutFixture(), nil)
			}

			rec := serve(t, Seating(service), adminClaims, http.MethodPut, "/v1/events/e1/seating/guests/g1", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestAssignGuest_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeater(ctrl)
	routes := Seating(service)

	rec := serve(t, routes, adminClaims, http.MethodPut, "/v1/events/e1/seating/guests/g1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))

	rec = serve(t, routes, staffClaims, http.MethodPut, "/v1/events/e1/seating/guests/g1", assignRequest{TableID: "t2"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnassignGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeater(ctrl)

	service.EXPECT().Unassign(gomock.Any(), "e1", "g1").Return(layoutFixture(), nil)
	service.EXPECT().Unassign(gomock.Any(), "e1", "g9").Return(nil, seating.ErrGuestNotFound)

	rec := serve(t, Seating(service), adminClaims, http.MethodDelete, "/v1/events/e1/seating/guests/g1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, Seating(service), adminClaims, http.MethodDelete, "/v1/events/e1/seating/guests/g9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
