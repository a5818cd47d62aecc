package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

// MetricSnapshot é um agregado pontual com a variação em relação ao período anterior
type MetricSnapshot struct {
	Key        string    `json:"key"`
	Label      string    `json:"label"`
	Value      float64   `json:"value"`
	Previous   float64   `json:"previous"`
	Growth     float64   `json:"growth"`
	Unit       string    `json:"unit"`
	CapturedAt time.Time `json:"captured_at"`
}

// NewMetricSnapshot calcula o crescimento percentual; zero quando não há base anterior
func NewMetricSnapshot(key, label, unit string, value, previous float64, capturedAt time.Time) MetricSnapshot {
	return MetricSnapshot{
		Key:        key,
		Label:      label,
		Value:      utils.RoundWithTwoDecimalPlace(value),
		Previous:   utils.RoundWithTwoDecimalPlace(previous),
		Growth:     utils.GrowthPercent(value, previous),
		Unit:       unit,
		CapturedAt: capturedAt,
	}
}

// AnalyticsOverviewRow é a linha retornada pela RPC get_analytics_overview
type AnalyticsOverviewRow struct {
	Revenue                  float64 `json:"revenue"`
	PreviousRevenue          float64 `json:"previous_revenue"`
	ConversionRate           float64 `json:"conversion_rate"`
	PreviousConversionRate   float64 `json:"previous_conversion_rate"`
	ViralCoefficient         float64 `json:"viral_coefficient"`
	PreviousViralCoefficient float64 `json:"previous_viral_coefficient"`
	ActiveClients            int64   `json:"active_clients"`
	PreviousActiveClients    int64   `json:"previous_active_clients"`
}

func (r *AnalyticsOverviewRow) Validate() error {
	values := map[string]float64{
		"revenue":                    r.Revenue,
		"previous_revenue":           r.PreviousRevenue,
		"conversion_rate":            r.ConversionRate,
		"previous_conversion_rate":   r.PreviousConversionRate,
		"viral_coefficient":          r.ViralCoefficient,
		"previous_viral_coefficient": r.PreviousViralCoefficient,
	}
	for field, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s inválido: %v", field, v)
		}
	}

	if r.ConversionRate > 100 || r.PreviousConversionRate > 100 {
		return fmt.Errorf("conversion_rate acima de 100%%")
	}

	if r.ActiveClients < 0 || r.PreviousActiveClients < 0 {
		return fmt.Errorf("active_clients negativo")
	}

	return nil
}

// DashboardOverview são os cartões de resumo do painel de analytics
type DashboardOverview struct {
	OrganizationID string           `json:"organization_id"`
	Period         string           `json:"period"`
	PeriodStart    time.Time        `json:"period_start"`
	PeriodEnd      time.Time        `json:"period_end"`
	Metrics        []MetricSnapshot `json:"metrics"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// Metric retorna o cartão pela chave
func (o *DashboardOverview) Metric(key string) (MetricSnapshot, bool) {
	for _, m := range o.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return MetricSnapshot{}, false
}
