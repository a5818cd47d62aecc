package seating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/repository/mocks"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/realtime"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func tablesFixture() []*domain.SeatingTable {
	return []*domain.SeatingTable{
		{ID: "t1", EventID: "e1", Name: "Mesa 1", Shape: domain.TableShapeRound, Capacity: 2, X: 0, Y: 0, Width: 100, Height: 100},
		{ID: "t2", EventID: "e1", Name: "Mesa 2", Shape: domain.TableShapeRectangle, Capacity: 1, X: 200, Y: 0, Width: 100, Height: 50},
	}
}

func guestsFixture() []*domain.Guest {
	return []*domain.Guest{
		{ID: "g1", EventID: "e1", Name: "Ana", RSVPStatus: domain.RSVPAccepted, TableID: strPtr("t1")},
		{ID: "g2", EventID: "e1", Name: "Bruno", RSVPStatus: domain.RSVPAccepted},
		{ID: "g3", EventID: "e1", Name: "Carla", RSVPStatus: domain.RSVPDeclined},
		{ID: "g4", EventID: "e1", Name: "Diego", RSVPStatus: domain.RSVPMaybe, TableID: strPtr("t2")},
		{ID: "g5", EventID: "e1", Name: "Eva", RSVPStatus: domain.RSVPPending, TableID: strPtr("removida")},
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockSeatingRepository) {
	t.Helper()
	log.SetupTestLogger()

	repo := mocks.NewMockSeatingRepository(gomock.NewController(t))
	return NewService(repo), repo
}

func expectFetch(repo *mocks.MockSeatingRepository, times int) {
	repo.EXPECT().ListTables(gomock.Any(), "e1").DoAndReturn(func(context.Context, string) ([]*domain.SeatingTable, error) {
		return tablesFixture(), nil
	}).Times(times)
	repo.EXPECT().ListGuests(gomock.Any(), "e1").DoAndReturn(func(context.Context, string) ([]*domain.Guest, error) {
		return guestsFixture(), nil
	}).Times(times)
}

func TestService_GetLayout(t *testing.T) {
	service, repo := newTestService(t)
	expectFetch(repo, 1)

	layout, err := service.GetLayout(context.Background(), "e1")
	require.NoError(t, err)

	require.Len(t, layout.Tables, 2)
	assert.Equal(t, []string{"g1"}, layout.Tables[0].GuestIDs)
	assert.Equal(t, []string{"g4"}, layout.Tables[1].GuestIDs)
	assert.Equal(t, 1, layout.Tables[0].Available())

	// Convidado em mesa inexistente fica sem mesa
	g5 := layout.Guests[layout.GuestIndex("g5")]
	assert.Nil(t, g5.TableID)
	assert.Len(t, layout.Unassigned(), 3)
}

func TestService_GetLayoutErrors(t *testing.T) {
	t.Run("evento ausente", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.GetLayout(context.Background(), " ")
		assert.ErrorIs(t, err, ErrEventIDRequired)
	})

	t.Run("falha ao buscar convidados", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().ListTables(gomock.Any(), "e1").Return(tablesFixture(), nil)
		repo.EXPECT().ListGuests(gomock.Any(), "e1").Return(nil, errors.New("timeout"))

		_, err := service.GetLayout(context.Background(), "e1")
		assert.Error(t, err)
	})
}

func TestService_Assign(t *testing.T) {
	tests := []struct {
		name    string
		guestID string
		tableID string
		wantErr error
		persist bool
	}{
		{name: "convidado sem mesa", guestID: "g2", tableID: "t1", persist: true},
		{name: "troca para mesa lotada", guestID: "g1", tableID: "t2", wantErr: ErrTableFull},
		{name: "mesa lotada", guestID: "g2", tableID: "t2", wantErr: ErrTableFull},
		{name: "convite recusado", guestID: "g3", tableID: "t1", wantErr: ErrGuestDeclined},
		{name: "convidado inexistente", guestID: "gx", tableID: "t1", wantErr: ErrGuestNotFound},
		{name: "mesa inexistente", guestID: "g2", tableID: "tx", wantErr: ErrTableNotFound},
		{name: "mesma mesa", guestID: "g1", tableID: "t1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			expectFetch(repo, 1)
			if tt.persist {
				repo.EXPECT().UpdateGuestTable(gomock.Any(), "e1", tt.guestID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, tableID *string) error {
						assert.Equal(t, tt.tableID, *tableID)
						return nil
					})
			}

			layout, err := service.Assign(context.Background(), "e1", tt.guestID, tt.tableID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			table := layout.Tables[layout.TableIndex(tt.tableID)]
			assert.True(t, table.HasGuest(tt.guestID))
			assert.Equal(t, tt.tableID, *layout.Guests[layout.GuestIndex(tt.guestID)].TableID)
		})
	}
}

func TestService_AssignMovesBetweenTables(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)
	expectFetch(repo, 1)

	repo.EXPECT().UpdateGuestTable(gomock.Any(), "e1", "g4", nil).Return(nil)
	repo.EXPECT().UpdateGuestTable(gomock.Any(), "e1", "g1", gomock.Any()).Return(nil)

	_, err := service.Unassign(ctx, "e1", "g4")
	require.NoError(t, err)

	layout, err := service.Assign(ctx, "e1", "g1", "t2")
	require.NoError(t, err)

	assert.Empty(t, layout.Tables[0].GuestIDs)
	assert.Equal(t, []string{"g1"}, layout.Tables[1].GuestIDs)
}

func TestService_AssignRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)
	expectFetch(repo, 1)

	repo.EXPECT().UpdateGuestTable(gomock.Any(), "e1", "g2", gomock.Any()).Return(errors.New("connection reset"))

	_, err := service.Assign(ctx, "e1", "g2", "t1")
	assert.ErrorIs(t, err, ErrPersist)

	// O layout em memória volta ao estado anterior: a mesa t1 ainda tem um lugar
	repo.EXPECT().UpdateGuestTable(gomock.Any(), "e1", "g2", gomock.Any()).Return(nil)
	layout, err := service.Assign(ctx, "e1", "g2", "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, layout.Tables[0].GuestIDs)
}

func TestService_UnassignGuestWithoutTable(t *testing.T) {
	service, repo := newTestService(t)
	expectFetch(repo, 1)

	layout, err := service.Unassign(context.Background(), "e1", "g2")
	require.NoError(t, err)
	assert.Nil(t, layout.Guests[layout.GuestIndex("g2")].TableID)
}

func TestService_WatchForgetsLayout(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)
	hub := realtime.NewHub()
	expectFetch(repo, 2)

	group := service.Watch(hub)
	defer group.Close()

	_, err := service.Unassign(ctx, "e1", "g2")
	require.NoError(t, err)

	hub.Publish(domain.ChangeEvent{Table: TableGuests, Action: domain.ChangeUpdate, Payload: []byte(`{"event_id":"e1"}`)})

	// Layout descartado: a próxima alteração busca de novo no backend
	_, err = service.Unassign(ctx, "e1", "g2")
	require.NoError(t, err)
}
