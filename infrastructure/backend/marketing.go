package backend

//go:generate mockgen -source=marketing.go -destination=mocks/mock_marketing.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const (
	attributionPath = "/api/marketing/attribution"
	campaignsPath   = "/api/marketing/campaigns"
)

// MarketingClient busca os dados pré-agregados da API de marketing
type MarketingClient interface {
	GetAttribution(ctx context.Context, organizationID string, model domain.AttributionModel) (*domain.AttributionPayload, error)
	ListCampaigns(ctx context.Context, organizationID string) (*domain.CampaignPayload, error)
}

func (c *Client) GetAttribution(ctx context.Context, organizationID string, model domain.AttributionModel) (*domain.AttributionPayload, error) {
	query := url.Values{}
	query.Set("organization_id", organizationID)
	query.Set("model", string(model))

	var payload domain.AttributionPayload
	if _, err := c.do(ctx, http.MethodGet, attributionPath, query, nil, &payload); err != nil {
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidPayload, attributionPath, err.Error())
	}

	return &payload, nil
}

func (c *Client) ListCampaigns(ctx context.Context, organizationID string) (*domain.CampaignPayload, error) {
	query := url.Values{}
	query.Set("organization_id", organizationID)

	var payload domain.CampaignPayload
	if _, err := c.do(ctx, http.MethodGet, campaignsPath, query, nil, &payload); err != nil {
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidPayload, campaignsPath, err.Error())
	}

	return &payload, nil
}
