package repository

//go:generate mockgen -source=seating.go -destination=mocks/mock_seating.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/database/postgres"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const (
	seatingTablesTable = "seating_tables st"
	guestsTable        = "guests"
)

// ErrNoRowsAffected indica que o registro a ser alterado não existe
var ErrNoRowsAffected = errors.New("nenhum registro alterado")

type SeatingRepository interface {
	ListTables(ctx context.Context, eventID string) ([]*domain.SeatingTable, error)
	ListGuests(ctx context.Context, eventID string) ([]*domain.Guest, error)
	// UpdateGuestTable grava a mesa do convidado; tableID nil remove a alocação
	UpdateGuestTable(ctx context.Context, eventID, guestID string, tableID *string) error
}

type seatingRepository struct {
	conn postgres.Queryer
}

func NewSeatingRepository(conn postgres.Queryer) SeatingRepository {
	return &seatingRepository{
		conn: conn,
	}
}

func (r *seatingRepository) ListTables(ctx context.Context, eventID string) ([]*domain.SeatingTable, error) {
	query, args, err := listTablesQuery(eventID).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	tables := make([]*domain.SeatingTable, 0)
	for rows.Next() {
		table := &domain.SeatingTable{GuestIDs: make([]string, 0)}
		if err := rows.Scan(
			&table.ID,
			&table.EventID,
			&table.Name,
			&table.Shape,
			&table.Capacity,
			&table.X,
			&table.Y,
			&table.Width,
			&table.Height,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear mesa")
		}
		tables = append(tables, table)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return tables, nil
}

func (r *seatingRepository) ListGuests(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query, args, err := listGuestsQuery(eventID).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		guest := &domain.Guest{}
		var tableID sql.NullString
		if err := rows.Scan(
			&guest.ID,
			&guest.EventID,
			&guest.Name,
			&guest.Category,
			&guest.RSVPStatus,
			pq.Array(&guest.DietaryRestrictions),
			&tableID,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear convidado")
		}
		if tableID.Valid {
			guest.TableID = &tableID.String
		}
		guests = append(guests, guest)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return guests, nil
}

func (r *seatingRepository) UpdateGuestTable(ctx context.Context, eventID, guestID string, tableID *string) error {
	query, args, err := updateGuestTableQuery(eventID, guestID, tableID).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar mesa do convidado %s", guestID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func listTablesQuery(eventID string) squirrel.SelectBuilder {
	return squirrel.
		Select("st.id, st.event_id, st.name, st.shape, st.capacity, st.position_x, st.position_y, st.width, st.height").
		From(seatingTablesTable).
		Where(squirrel.Eq{"st.event_id": eventID}).
		OrderBy("st.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func listGuestsQuery(eventID string) squirrel.SelectBuilder {
	return squirrel.
		Select("id, event_id, name, COALESCE(category, ''), rsvp_status, COALESCE(dietary_restrictions, '{}'), table_id").
		From(guestsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func updateGuestTableQuery(eventID, guestID string, tableID *string) squirrel.UpdateBuilder {
	return squirrel.
		Update(guestsTable).
		Set("table_id", tableID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": guestID, "event_id": eventID}).
		PlaceholderFormat(squirrel.Dollar)
}
