package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/realtime"
	"go.uber.org/mock/gomock"
)

func TestService_WatchInvalidatesAffectedEntries(t *testing.T) {
	ctx := context.Background()
	service, m := newTestService(t)
	hub := realtime.NewHub()

	m.budget.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return([]*domain.BudgetCategory{}, nil).Times(3)
	m.budget.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.BudgetTotals{}, nil).Times(3)
	m.marketing.EXPECT().ListCampaigns(gomock.Any(), "org-1").Return(campaignsFixture(), nil).Times(2)

	_, err := service.GetBudget(ctx, "client-1")
	require.NoError(t, err)
	_, err = service.GetBudget(ctx, "client-2")
	require.NoError(t, err)
	_, err = service.GetCampaigns(ctx, "org-1", domain.CampaignFilter{})
	require.NoError(t, err)

	group := service.Watch(hub)

	hub.Publish(domain.ChangeEvent{
		Table:    TableBudgetCategories,
		Action:   domain.ChangeUpdate,
		RecordID: "b1",
		Payload:  []byte(`{"client_id":"client-1"}`),
	})
	hub.Publish(domain.ChangeEvent{
		Table:   TableCampaigns,
		Action:  domain.ChangeInsert,
		Payload: []byte(`{"organization_id":"org-1"}`),
	})

	// client-1 e as campanhas são buscados de novo; client-2 segue no cache
	_, err = service.GetBudget(ctx, "client-1")
	require.NoError(t, err)
	_, err = service.GetBudget(ctx, "client-2")
	require.NoError(t, err)
	_, err = service.GetCampaigns(ctx, "org-1", domain.CampaignFilter{})
	require.NoError(t, err)

	group.Close()
	assert.Equal(t, 0, hub.Subscribers(TableBudgetCategories))
	assert.Equal(t, 0, hub.Subscribers(TableCampaigns))
	assert.Equal(t, 0, hub.Subscribers(TableAnalyticsEvents))

	// Após o Close os eventos não invalidam mais o cache
	hub.Publish(domain.ChangeEvent{Table: TableBudgetCategories, Action: domain.ChangeDelete})
	_, err = service.GetBudget(ctx, "client-1")
	require.NoError(t, err)
}

func TestDecodeScope(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.ChangeScope
	}{
		{name: "sem payload", want: domain.ChangeScope{}},
		{name: "payload inválido", payload: `[1,2`, want: domain.ChangeScope{}},
		{
			name:    "com escopo",
			payload: `{"organization_id":"org-1","client_id":"c1","event_id":"e1","name":"x"}`,
			want:    domain.ChangeScope{OrganizationID: "org-1", ClientID: "c1", EventID: "e1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeScope(domain.ChangeEvent{Table: "campaigns", Payload: []byte(tt.payload)})
			assert.Equal(t, tt.want, got)
		})
	}
}
