package dashboard

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/realtime"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tabelas do backend cujas alterações invalidam o cache dos painéis
const (
	TableBudgetCategories = "budget_categories"
	TableCampaigns        = "campaigns"
	TableAnalyticsEvents  = "analytics_events"
)

// Watch assina as tabelas que alimentam os painéis e descarta as entradas
// afetadas a cada alteração. O Group retornado deve ser fechado no shutdown.
func (s *Service) Watch(hub *realtime.Hub) *realtime.Group {
	group := &realtime.Group{}

	group.Add(hub.Subscribe(TableBudgetCategories, func(event domain.ChangeEvent) {
		scope := decodeScope(event)
		s.invalidate(event, BudgetKeyPrefix+scope.ClientID)
	}))

	group.Add(hub.Subscribe(TableCampaigns, func(event domain.ChangeEvent) {
		scope := decodeScope(event)
		s.invalidate(event, campaignsKey(scope.OrganizationID), scopedPrefix(AttributionKeyPrefix, scope.OrganizationID))
	}))

	group.Add(hub.Subscribe(TableAnalyticsEvents, func(event domain.ChangeEvent) {
		scope := decodeScope(event)
		s.invalidate(event, scopedPrefix(OverviewKeyPrefix, scope.OrganizationID), scopedPrefix(AttributionKeyPrefix, scope.OrganizationID))
	}))

	return group
}

func (s *Service) invalidate(event domain.ChangeEvent, prefixes ...string) {
	removed := 0
	for _, prefix := range prefixes {
		removed += s.Refresh(context.Background(), prefix)
	}

	logrus.WithFields(logrus.Fields{
		"table":     event.Table,
		"action":    event.Action,
		"record_id": event.RecordID,
		"removed":   removed,
	}).Debug("dashboard: cache invalidated by change event")
}

// scopedPrefix restringe o prefixo à organização; sem organização, vale para todas
func scopedPrefix(prefix, organizationID string) string {
	if organizationID == "" {
		return prefix
	}
	return prefix + organizationID + ":"
}

func decodeScope(event domain.ChangeEvent) domain.ChangeScope {
	var scope domain.ChangeScope
	if len(event.Payload) == 0 {
		return scope
	}

	if err := json.Unmarshal(event.Payload, &scope); err != nil {
		logrus.WithError(err).WithField("table", event.Table).Warn("dashboard: change event without scope, invalidating table")
		return domain.ChangeScope{}
	}

	return scope
}
