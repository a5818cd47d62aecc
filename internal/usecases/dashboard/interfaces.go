package dashboard

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

// Dashboarder produz os view models dos painéis de analytics, marketing e orçamento
type Dashboarder interface {
	// GetOverview retorna os cartões de receita, conversão, coeficiente viral e clientes ativos
	GetOverview(ctx context.Context, organizationID, period string) (*domain.DashboardOverview, error)

	// GetAttribution retorna os caminhos de conversão e o total creditado por canal no modelo
	GetAttribution(ctx context.Context, organizationID string, model domain.AttributionModel) (*domain.AttributionReport, error)

	// GetCampaigns retorna as campanhas filtradas, ordenadas e com métricas derivadas
	GetCampaigns(ctx context.Context, organizationID string, filter domain.CampaignFilter) (*domain.CampaignList, error)

	// GetBudget retorna as categorias do orçamento do cliente com os totais
	GetBudget(ctx context.Context, clientID string) (*domain.BudgetSummary, error)

	// Refresh descarta as entradas em cache que começam com key
	Refresh(ctx context.Context, key string) int
}
