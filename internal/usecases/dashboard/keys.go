package dashboard

import "github.com/vfg2006/wedsync-venue-api/internal/domain"

// Prefixos das chaves de cache; Refresh aceita qualquer prefixo destas chaves
const (
	OverviewKeyPrefix    = "overview:"
	AttributionKeyPrefix = "attribution:"
	CampaignsKeyPrefix   = "campaigns:"
	BudgetKeyPrefix      = "budget:"
)

func overviewKey(organizationID, period string) string {
	return OverviewKeyPrefix + organizationID + ":" + period
}

func attributionKey(organizationID string, model domain.AttributionModel) string {
	return AttributionKeyPrefix + organizationID + ":" + string(model)
}

func campaignsKey(organizationID string) string {
	return CampaignsKeyPrefix + organizationID
}

func budgetKey(clientID string) string {
	return BudgetKeyPrefix + clientID
}
