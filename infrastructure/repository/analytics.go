package repository

//go:generate mockgen -source=analytics.go -destination=mocks/mock_analytics.go -package=mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/database/postgres"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const getAnalyticsOverviewQuery = `
SELECT revenue, previous_revenue,
       conversion_rate, previous_conversion_rate,
       viral_coefficient, previous_viral_coefficient,
       active_clients, previous_active_clients
FROM get_analytics_overview($1, $2, $3)`

type AnalyticsRepository interface {
	// GetOverview chama a RPC get_analytics_overview para o intervalo
	GetOverview(ctx context.Context, organizationID string, start, end time.Time) (*domain.AnalyticsOverviewRow, error)
}

type analyticsRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsRepository(conn postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) GetOverview(ctx context.Context, organizationID string, start, end time.Time) (*domain.AnalyticsOverviewRow, error) {
	row := r.conn.QueryRowContext(ctx, getAnalyticsOverviewQuery, organizationID, start, end)

	overview := &domain.AnalyticsOverviewRow{}
	err := row.Scan(
		&overview.Revenue,
		&overview.PreviousRevenue,
		&overview.ConversionRate,
		&overview.PreviousConversionRate,
		&overview.ViralCoefficient,
		&overview.PreviousViralCoefficient,
		&overview.ActiveClients,
		&overview.PreviousActiveClients,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar get_analytics_overview")
	}

	return overview, nil
}
