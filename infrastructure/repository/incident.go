package repository

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/database/postgres"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const venueIncidentsTable = "venue_incidents"

// IncidentRepository grava incidentes sincronizados direto no banco hospedado.
// Usado com INCIDENT_SYNC_TRANSPORT=postgres.
type IncidentRepository interface {
	SyncIncident(ctx context.Context, incident domain.OfflineIncident) (bool, error)
}

type incidentRepository struct {
	conn postgres.Queryer
}

func NewIncidentRepository(conn postgres.Queryer) IncidentRepository {
	return &incidentRepository{
		conn: conn,
	}
}

// SyncIncident insere o incidente. Um ID já existente é tratado como confirmação,
// o que torna o reenvio após uma resposta perdida idempotente.
func (r *incidentRepository) SyncIncident(ctx context.Context, incident domain.OfflineIncident) (bool, error) {
	query, args, err := insertIncidentQuery(incident).ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if postgres.ErrorCode(err) == postgres.ForeignKeyViolation {
			return false, errors.Wrapf(err, "local %s não existe no backend", incident.VenueID)
		}
		return false, errors.Wrap(err, "erro ao inserir incidente")
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		logrus.WithField("incident_id", incident.ID).Info("repository: incident already delivered, treating as acknowledged")
	}

	return true, nil
}

func insertIncidentQuery(incident domain.OfflineIncident) squirrel.InsertBuilder {
	var lat, lng, accuracy *float64
	if incident.Coordinates != nil {
		lat = &incident.Coordinates.Lat
		lng = &incident.Coordinates.Lng
		accuracy = &incident.Coordinates.Accuracy
	}

	return squirrel.
		Insert(venueIncidentsTable).
		Columns(
			"id", "venue_id", "type", "severity", "title", "description", "location",
			"latitude", "longitude", "accuracy", "reported_by", "reported_at", "retry_count",
		).
		Values(
			incident.ID, incident.VenueID, incident.Type, incident.Severity, incident.Title,
			incident.Description, incident.Location, lat, lng, accuracy, incident.ReportedBy,
			incident.Timestamp, incident.RetryCount,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}
