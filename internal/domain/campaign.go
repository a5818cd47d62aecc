package domain

import (
	"fmt"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

var validCampaignStatuses = map[CampaignStatus]bool{
	CampaignStatusDraft:     true,
	CampaignStatusActive:    true,
	CampaignStatusPaused:    true,
	CampaignStatusCompleted: true,
}

func (s CampaignStatus) Valid() bool {
	return validCampaignStatuses[s]
}

// MarketingCampaign é uma campanha como retornada por /api/marketing/campaigns
type MarketingCampaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Channel     string         `json:"channel"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spend       float64        `json:"spend"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	Revenue     float64        `json:"revenue"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
}

// CampaignPayload é a resposta de /api/marketing/campaigns
type CampaignPayload struct {
	Campaigns []MarketingCampaign `json:"campaigns"`
}

func (p *CampaignPayload) Validate() error {
	for i, c := range p.Campaigns {
		if c.ID == "" {
			return fmt.Errorf("campaigns[%d]: id ausente", i)
		}
		if !c.Status.Valid() {
			return fmt.Errorf("campaigns[%d]: status inválido %q", i, c.Status)
		}
		if c.Budget < 0 || c.Spend < 0 || c.Revenue < 0 {
			return fmt.Errorf("campaigns[%d]: valores monetários negativos", i)
		}
		if c.Impressions < 0 || c.Clicks < 0 || c.Conversions < 0 {
			return fmt.Errorf("campaigns[%d]: contadores negativos", i)
		}
		if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
			return fmt.Errorf("campaigns[%d]: end_date anterior a start_date", i)
		}
	}
	return nil
}

// CampaignView é a campanha com as métricas derivadas exibidas na tabela
type CampaignView struct {
	MarketingCampaign
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	ROI            float64 `json:"roi"`
	BudgetUsed     float64 `json:"budget_used"`
}

// CampaignSortField são os campos aceitos na ordenação da listagem
type CampaignSortField string

const (
	CampaignSortName        CampaignSortField = "name"
	CampaignSortSpend       CampaignSortField = "spend"
	CampaignSortRevenue     CampaignSortField = "revenue"
	CampaignSortROI         CampaignSortField = "roi"
	CampaignSortCTR         CampaignSortField = "ctr"
	CampaignSortConversions CampaignSortField = "conversions"
	CampaignSortStartDate   CampaignSortField = "start_date"
)

type CampaignFilter struct {
	Status     CampaignStatus
	SortBy     CampaignSortField
	Descending bool
}

type CampaignList struct {
	OrganizationID string         `json:"organization_id"`
	Campaigns      []CampaignView `json:"campaigns"`
	TotalSpend     float64        `json:"total_spend"`
	TotalRevenue   float64        `json:"total_revenue"`
	OverallROI     float64        `json:"overall_roi"`
}
