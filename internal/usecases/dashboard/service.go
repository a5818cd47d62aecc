package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/backend"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/repository"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/cache"
	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

// Service busca os dados no backend, guarda a resposta crua no cache e deriva
// o formato de cada painel. Buscas concorrentes para a mesma chave não são
// canceladas: a última a terminar sobrescreve o cache.
type Service struct {
	analyticsRepository repository.AnalyticsRepository
	budgetRepository    repository.BudgetRepository
	marketingClient     backend.MarketingClient
	cache               *cache.TTL
	now                 func() time.Time
}

// NewService cria o serviço dos painéis
func NewService(
	analyticsRepo repository.AnalyticsRepository,
	budgetRepo repository.BudgetRepository,
	marketingClient backend.MarketingClient,
	cache *cache.TTL,
) *Service {
	return &Service{
		analyticsRepository: analyticsRepo,
		budgetRepository:    budgetRepo,
		marketingClient:     marketingClient,
		cache:               cache,
		now:                 time.Now,
	}
}

func (s *Service) GetOverview(ctx context.Context, organizationID, period string) (*domain.DashboardOverview, error) {
	if strings.TrimSpace(organizationID) == "" {
		return nil, ErrOrganizationRequired
	}

	if period == "" {
		period = "30d"
	}

	key := overviewKey(organizationID, period)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.DashboardOverview), nil
	}

	now := s.now()
	start, end, err := utils.PeriodRange(period, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, err.Error())
	}

	row, err := s.analyticsRepository.GetOverview(ctx, organizationID, start, end)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", organizationID).Error("dashboard: failed to load analytics overview")
		return nil, fmt.Errorf("erro ao buscar visão geral: %w", err)
	}

	if row == nil {
		return nil, ErrOverviewNotFound
	}

	if err := row.Validate(); err != nil {
		return nil, fmt.Errorf("%w: get_analytics_overview: %s", domain.ErrInvalidPayload, err.Error())
	}

	overview := &domain.DashboardOverview{
		OrganizationID: organizationID,
		Period:         period,
		PeriodStart:    start,
		PeriodEnd:      end,
		GeneratedAt:    now,
		Metrics: []domain.MetricSnapshot{
			domain.NewMetricSnapshot("revenue", "Receita", "currency", row.Revenue, row.PreviousRevenue, now),
			domain.NewMetricSnapshot("conversion_rate", "Taxa de conversão", "percent", row.ConversionRate, row.PreviousConversionRate, now),
			domain.NewMetricSnapshot("viral_coefficient", "Coeficiente viral", "ratio", row.ViralCoefficient, row.PreviousViralCoefficient, now),
			domain.NewMetricSnapshot("active_clients", "Clientes ativos", "count", float64(row.ActiveClients), float64(row.PreviousActiveClients), now),
		},
	}

	s.cache.Set(key, overview)

	return overview, nil
}

func (s *Service) GetAttribution(ctx context.Context, organizationID string, model domain.AttributionModel) (*domain.AttributionReport, error) {
	if strings.TrimSpace(organizationID) == "" {
		return nil, ErrOrganizationRequired
	}

	key := attributionKey(organizationID, model)

	var payload *domain.AttributionPayload
	if cached, ok := s.cache.Get(key); ok {
		payload = cached.(*domain.AttributionPayload)
	} else {
		fetched, err := s.marketingClient.GetAttribution(ctx, organizationID, model)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"organization_id": organizationID,
				"model":           model,
			}).Error("dashboard: failed to load attribution paths")
			return nil, fmt.Errorf("erro ao buscar atribuição: %w", err)
		}
		payload = fetched
		s.cache.Set(key, payload)
	}

	return BuildAttributionReport(organizationID, model, payload), nil
}

func (s *Service) GetCampaigns(ctx context.Context, organizationID string, filter domain.CampaignFilter) (*domain.CampaignList, error) {
	if strings.TrimSpace(organizationID) == "" {
		return nil, ErrOrganizationRequired
	}

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, filter.Status)
	}

	if !validSortField(filter.SortBy) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSort, filter.SortBy)
	}

	key := campaignsKey(organizationID)

	var payload *domain.CampaignPayload
	if cached, ok := s.cache.Get(key); ok {
		payload = cached.(*domain.CampaignPayload)
	} else {
		fetched, err := s.marketingClient.ListCampaigns(ctx, organizationID)
		if err != nil {
			logrus.WithError(err).WithField("organization_id", organizationID).Error("dashboard: failed to load campaigns")
			return nil, fmt.Errorf("erro ao buscar campanhas: %w", err)
		}
		payload = fetched
		s.cache.Set(key, payload)
	}

	return BuildCampaignList(organizationID, payload.Campaigns, filter), nil
}

func (s *Service) GetBudget(ctx context.Context, clientID string) (*domain.BudgetSummary, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrClientRequired
	}

	key := budgetKey(clientID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.BudgetSummary), nil
	}

	var (
		categories    []*domain.BudgetCategory
		totals        *domain.BudgetTotals
		categoriesErr error
		totalsErr     error
	)

	// Categorias e totais vêm de consultas independentes
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		categories, categoriesErr = s.budgetRepository.ListCategories(ctx, clientID)
	}()

	go func() {
		defer wg.Done()
		totals, totalsErr = s.budgetRepository.GetTotals(ctx, clientID)
	}()

	wg.Wait()

	if categoriesErr != nil {
		logrus.WithError(categoriesErr).WithField("client_id", clientID).Error("dashboard: failed to load budget categories")
		return nil, fmt.Errorf("erro ao buscar categorias do orçamento: %w", categoriesErr)
	}

	if totalsErr != nil {
		logrus.WithError(totalsErr).WithField("client_id", clientID).Error("dashboard: failed to load budget totals")
		return nil, fmt.Errorf("erro ao buscar totais do orçamento: %w", totalsErr)
	}

	summary, err := BuildBudgetSummary(clientID, categories, totals)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, summary)

	return summary, nil
}

// Refresh descarta as entradas com o prefixo; key vazia limpa o cache inteiro
func (s *Service) Refresh(ctx context.Context, key string) int {
	if key == "" {
		removed := s.cache.Len()
		s.cache.Purge()
		logrus.WithField("removed", removed).Debug("dashboard: cache purged")
		return removed
	}

	removed := s.cache.DeletePrefix(key)
	logrus.WithFields(logrus.Fields{
		"prefix":  key,
		"removed": removed,
	}).Debug("dashboard: cache entries refreshed")

	return removed
}
