package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

// fakeQueryer registra a última instrução enviada por ExecContext
type fakeQueryer struct {
	query    string
	args     []any
	affected int64
	err      error
}

func (f *fakeQueryer) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.query = query
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult{affected: f.affected}, nil
}

func (f *fakeQueryer) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueryer) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func TestSelectQueries(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (string, []any, error)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "mesas do evento",
			build:    listTablesQuery("e1").ToSql,
			wantSQL:  "SELECT st.id, st.event_id, st.name, st.shape, st.capacity, st.position_x, st.position_y, st.width, st.height FROM seating_tables st WHERE st.event_id = $1 ORDER BY st.name ASC",
			wantArgs: []any{"e1"},
		},
		{
			name:     "convidados do evento",
			build:    listGuestsQuery("e1").ToSql,
			wantSQL:  "SELECT id, event_id, name, COALESCE(category, ''), rsvp_status, COALESCE(dietary_restrictions, '{}'), table_id FROM guests WHERE event_id = $1 ORDER BY name ASC",
			wantArgs: []any{"e1"},
		},
		{
			name:     "categorias de orçamento",
			build:    listBudgetCategoriesQuery("c1").ToSql,
			wantSQL:  "SELECT bc.id, bc.client_id, bc.name, bc.allocated_amount, bc.spent_amount, COALESCE(bc.color, '') FROM budget_categories bc WHERE bc.client_id = $1 ORDER BY bc.name ASC",
			wantArgs: []any{"c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUpdateGuestTableQuery(t *testing.T) {
	tableID := "t1"

	tests := []struct {
		name    string
		tableID *string
	}{
		{name: "aloca convidado", tableID: &tableID},
		{name: "remove alocação", tableID: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := updateGuestTableQuery("e1", "g1", tt.tableID).ToSql()
			require.NoError(t, err)
			assert.Equal(t, "UPDATE guests SET table_id = $1, updated_at = NOW() WHERE event_id = $2 AND id = $3", query)
			require.Len(t, args, 3)
			assert.Equal(t, tt.tableID, args[0])
			assert.Equal(t, []any{"e1", "g1"}, args[1:])
		})
	}
}

func TestInsertIncidentQuery(t *testing.T) {
	incident := domain.OfflineIncident{
		ID:         "inc-1",
		VenueID:    "v1",
		Type:       domain.IncidentTypeMedical,
		Severity:   domain.SeverityCritical,
		Title:      "Convidado desmaiou",
		ReportedBy: "staff-1",
		Timestamp:  time.Date(2024, 6, 15, 21, 0, 0, 0, time.UTC),
		RetryCount: 2,
	}

	query, args, err := insertIncidentQuery(incident).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO venue_incidents (id,venue_id,type,severity,title,"))
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)")
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (id) DO NOTHING"))

	require.Len(t, args, 13)
	assert.Equal(t, "inc-1", args[0])
	assert.Nil(t, args[7], "sem coordenadas a latitude vai nula")
	assert.Equal(t, 2, args[12])

	incident.Coordinates = &domain.Coordinates{Lat: -23.55, Lng: -46.63, Accuracy: 12}
	_, args, err = insertIncidentQuery(incident).ToSql()
	require.NoError(t, err)
	assert.Equal(t, -23.55, *args[7].(*float64))
	assert.Equal(t, 12.0, *args[9].(*float64))
}

func TestIncidentRepository_SyncIncident(t *testing.T) {
	log.SetupTestLogger()
	incident := domain.OfflineIncident{ID: "inc-1", VenueID: "v1"}

	tests := []struct {
		name      string
		conn      *fakeQueryer
		wantAck   bool
		wantError string
	}{
		{name: "inserido", conn: &fakeQueryer{affected: 1}, wantAck: true},
		{name: "já existente conta como confirmação", conn: &fakeQueryer{affected: 0}, wantAck: true},
		{name: "local inexistente", conn: &fakeQueryer{err: &pq.Error{Code: "23503"}}, wantError: "local v1 não existe no backend"},
		{name: "falha do banco", conn: &fakeQueryer{err: errors.New("connection reset")}, wantError: "erro ao inserir incidente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acked, err := NewIncidentRepository(tt.conn).SyncIncident(context.Background(), incident)
			assert.Contains(t, tt.conn.query, "ON CONFLICT (id) DO NOTHING")

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.False(t, acked)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAck, acked)
		})
	}
}

func TestSeatingRepository_UpdateGuestTable(t *testing.T) {
	tableID := "t1"

	t.Run("convidado inexistente", func(t *testing.T) {
		conn := &fakeQueryer{affected: 0}
		err := NewSeatingRepository(conn).UpdateGuestTable(context.Background(), "e1", "g1", &tableID)
		assert.ErrorIs(t, err, ErrNoRowsAffected)
	})

	t.Run("atualizado", func(t *testing.T) {
		conn := &fakeQueryer{affected: 1}
		err := NewSeatingRepository(conn).UpdateGuestTable(context.Background(), "e1", "g1", &tableID)
		require.NoError(t, err)
		assert.Equal(t, []any{&tableID, "e1", "g1"}, conn.args)
	})

	t.Run("falha do banco", func(t *testing.T) {
		conn := &fakeQueryer{err: errors.New("connection reset")}
		err := NewSeatingRepository(conn).UpdateGuestTable(context.Background(), "e1", "g1", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "g1")
	})
}

func TestRPCQueries(t *testing.T) {
	assert.Contains(t, getAnalyticsOverviewQuery, "FROM get_analytics_overview($1, $2, $3)")
	assert.Contains(t, getBudgetTotalsQuery, "FROM get_budget_totals($1)")
}
