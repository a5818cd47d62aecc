package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

// BuildAttributionReport soma, por canal, o crédito que o modelo atribui a cada toque.
// Os percentuais vêm prontos da API; aqui só são convertidos em conversões e receita.
func BuildAttributionReport(organizationID string, model domain.AttributionModel, payload *domain.AttributionPayload) *domain.AttributionReport {
	report := &domain.AttributionReport{
		OrganizationID: organizationID,
		Model:          model,
		Channels:       make([]domain.ChannelAttribution, 0),
		Paths:          make([]domain.AttributionPath, 0),
	}

	if payload == nil {
		return report
	}

	report.Paths = payload.Paths

	byChannel := make(map[string]*domain.ChannelAttribution)
	for _, path := range payload.Paths {
		report.TotalRevenue += path.ConversionValue

		for _, touch := range path.Touchpoints {
			credit := touch.Credits[model] / 100
			if credit == 0 {
				continue
			}

			channel, ok := byChannel[touch.Channel]
			if !ok {
				channel = &domain.ChannelAttribution{Channel: touch.Channel}
				byChannel[touch.Channel] = channel
			}
			channel.Conversions += credit
			channel.Revenue += credit * path.ConversionValue
		}
	}

	for _, channel := range byChannel {
		channel.Share = utils.Percent(channel.Revenue, report.TotalRevenue)
		channel.Conversions = utils.RoundWithTwoDecimalPlace(channel.Conversions)
		channel.Revenue = utils.RoundWithTwoDecimalPlace(channel.Revenue)
		report.Channels = append(report.Channels, *channel)
	}

	sort.Slice(report.Channels, func(i, j int) bool {
		if report.Channels[i].Revenue != report.Channels[j].Revenue {
			return report.Channels[i].Revenue > report.Channels[j].Revenue
		}
		return report.Channels[i].Channel < report.Channels[j].Channel
	})

	report.TotalRevenue = utils.RoundWithTwoDecimalPlace(report.TotalRevenue)

	return report
}

func validSortField(field domain.CampaignSortField) bool {
	switch field {
	case "", domain.CampaignSortName, domain.CampaignSortSpend, domain.CampaignSortRevenue,
		domain.CampaignSortROI, domain.CampaignSortCTR, domain.CampaignSortConversions,
		domain.CampaignSortStartDate:
		return true
	}
	return false
}

// DeriveCampaign calcula CTR, taxa de conversão, ROI e uso do orçamento em porcentagem
func DeriveCampaign(c domain.MarketingCampaign) domain.CampaignView {
	roi := 0.0
	if c.Spend > 0 {
		roi = utils.RoundWithTwoDecimalPlace((c.Revenue - c.Spend) / c.Spend * 100)
	}

	return domain.CampaignView{
		MarketingCampaign: c,
		CTR:               utils.Percent(float64(c.Clicks), float64(c.Impressions)),
		ConversionRate:    utils.Percent(float64(c.Conversions), float64(c.Clicks)),
		ROI:               roi,
		BudgetUsed:        utils.Percent(c.Spend, c.Budget),
	}
}

// BuildCampaignList filtra por status, deriva as métricas e ordena pelo campo do filtro
func BuildCampaignList(organizationID string, campaigns []domain.MarketingCampaign, filter domain.CampaignFilter) *domain.CampaignList {
	list := &domain.CampaignList{
		OrganizationID: organizationID,
		Campaigns:      make([]domain.CampaignView, 0, len(campaigns)),
	}

	for _, c := range campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		list.Campaigns = append(list.Campaigns, DeriveCampaign(c))
		list.TotalSpend += c.Spend
		list.TotalRevenue += c.Revenue
	}

	less := campaignLess(filter.SortBy)
	sort.SliceStable(list.Campaigns, func(i, j int) bool {
		a, b := list.Campaigns[i], list.Campaigns[j]
		// Campanhas sem data de início ficam no fim nas duas direções
		if filter.SortBy == domain.CampaignSortStartDate && (a.StartDate == nil || b.StartDate == nil) {
			return a.StartDate != nil && b.StartDate == nil
		}
		if filter.Descending {
			a, b = b, a
		}
		return less(a, b)
	})

	if list.TotalSpend > 0 {
		list.OverallROI = utils.RoundWithTwoDecimalPlace((list.TotalRevenue - list.TotalSpend) / list.TotalSpend * 100)
	}
	list.TotalSpend = utils.RoundWithTwoDecimalPlace(list.TotalSpend)
	list.TotalRevenue = utils.RoundWithTwoDecimalPlace(list.TotalRevenue)

	return list
}

func campaignLess(field domain.CampaignSortField) func(a, b domain.CampaignView) bool {
	byName := func(a, b domain.CampaignView) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	switch field {
	case domain.CampaignSortSpend:
		return func(a, b domain.CampaignView) bool { return a.Spend < b.Spend }
	case domain.CampaignSortRevenue:
		return func(a, b domain.CampaignView) bool { return a.Revenue < b.Revenue }
	case domain.CampaignSortROI:
		return func(a, b domain.CampaignView) bool { return a.ROI < b.ROI }
	case domain.CampaignSortCTR:
		return func(a, b domain.CampaignView) bool { return a.CTR < b.CTR }
	case domain.CampaignSortConversions:
		return func(a, b domain.CampaignView) bool { return a.Conversions < b.Conversions }
	case domain.CampaignSortStartDate:
		return func(a, b domain.CampaignView) bool {
			if a.StartDate == nil || b.StartDate == nil {
				return a.StartDate != nil && b.StartDate == nil
			}
			return a.StartDate.Before(*b.StartDate)
		}
	default:
		return byName
	}
}

// BuildBudgetSummary deriva saldo, percentual gasto e estouro de cada categoria
func BuildBudgetSummary(clientID string, categories []*domain.BudgetCategory, totals *domain.BudgetTotals) (*domain.BudgetSummary, error) {
	if totals == nil {
		totals = &domain.BudgetTotals{}
	}

	if err := totals.Validate(); err != nil {
		return nil, fmt.Errorf("%w: get_budget_totals: %s", domain.ErrInvalidPayload, err.Error())
	}

	summary := &domain.BudgetSummary{
		ClientID:   clientID,
		Categories: make([]domain.BudgetCategoryView, 0, len(categories)),
		Totals:     *totals,
	}

	for _, category := range categories {
		if category.Allocated < 0 || category.Spent < 0 {
			return nil, fmt.Errorf("%w: budget_categories: valores negativos na categoria %s", domain.ErrInvalidPayload, category.ID)
		}

		view := domain.BudgetCategoryView{
			BudgetCategory: *category,
			Remaining:      utils.RoundWithTwoDecimalPlace(category.Allocated - category.Spent),
			PercentSpent:   utils.Percent(category.Spent, category.Allocated),
			OverBudget:     category.Spent > category.Allocated,
		}
		if view.OverBudget {
			summary.OverBudgetCount++
		}
		summary.Categories = append(summary.Categories, view)
	}

	summary.PercentSpent = utils.Percent(totals.TotalSpent, totals.TotalAllocated)

	return summary, nil
}
