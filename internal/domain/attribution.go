package domain

import (
	"fmt"
	"strings"
	"time"
)

// AttributionModel é o modelo de atribuição calculado pela API de marketing
type AttributionModel string

const (
	AttributionFirstTouch AttributionModel = "first_touch"
	AttributionLastTouch  AttributionModel = "last_touch"
	AttributionLinear     AttributionModel = "linear"
	AttributionTimeDecay  AttributionModel = "time_decay"
	AttributionDataDriven AttributionModel = "data_driven"
)

var AttributionModels = []AttributionModel{
	AttributionFirstTouch,
	AttributionLastTouch,
	AttributionLinear,
	AttributionTimeDecay,
	AttributionDataDriven,
}

// ParseAttributionModel aceita o nome do modelo com hífen ou underscore; vazio é last_touch
func ParseAttributionModel(value string) (AttributionModel, error) {
	normalized := AttributionModel(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_"))
	if normalized == "" {
		return AttributionLastTouch, nil
	}

	for _, model := range AttributionModels {
		if model == normalized {
			return model, nil
		}
	}

	return "", fmt.Errorf("modelo de atribuição desconhecido: %s", value)
}

// TouchPoint é uma interação de marketing no caminho até a conversão.
// Credits traz o percentual de crédito (0-100) que cada modelo atribui ao toque.
type TouchPoint struct {
	Channel     string                       `json:"channel"`
	Campaign    string                       `json:"campaign,omitempty"`
	Interaction string                       `json:"interaction,omitempty"`
	Timestamp   time.Time                    `json:"timestamp"`
	Credits     map[AttributionModel]float64 `json:"credits"`
}

// AttributionPath é a sequência de toques de um cliente que converteu
type AttributionPath struct {
	ID              string       `json:"id"`
	ClientID        string       `json:"client_id"`
	ConversionValue float64      `json:"conversion_value"`
	ConvertedAt     time.Time    `json:"converted_at"`
	Touchpoints     []TouchPoint `json:"touchpoints"`
}

// AttributionPayload é a resposta de /api/marketing/attribution
type AttributionPayload struct {
	Paths []AttributionPath `json:"paths"`
}

func (p *AttributionPayload) Validate() error {
	for i, path := range p.Paths {
		if path.ID == "" {
			return fmt.Errorf("paths[%d]: id ausente", i)
		}
		if path.ConversionValue < 0 {
			return fmt.Errorf("paths[%d]: conversion_value negativo", i)
		}
		if len(path.Touchpoints) == 0 {
			return fmt.Errorf("paths[%d]: caminho sem touchpoints", i)
		}

		for j, touch := range path.Touchpoints {
			if strings.TrimSpace(touch.Channel) == "" {
				return fmt.Errorf("paths[%d].touchpoints[%d]: channel ausente", i, j)
			}
			if j > 0 && touch.Timestamp.Before(path.Touchpoints[j-1].Timestamp) {
				return fmt.Errorf("paths[%d].touchpoints[%d]: fora de ordem cronológica", i, j)
			}
			for model, credit := range touch.Credits {
				if credit < 0 || credit > 100 {
					return fmt.Errorf("paths[%d].touchpoints[%d]: crédito %s fora de [0,100]: %v", i, j, model, credit)
				}
			}
		}
	}

	return nil
}

// ChannelAttribution é o total creditado a um canal no modelo selecionado
type ChannelAttribution struct {
	Channel     string  `json:"channel"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Share       float64 `json:"share"`
}

// AttributionReport é o que o painel de atribuição renderiza
type AttributionReport struct {
	OrganizationID string               `json:"organization_id"`
	Model          AttributionModel     `json:"model"`
	TotalRevenue   float64              `json:"total_revenue"`
	Channels       []ChannelAttribution `json:"channels"`
	Paths          []AttributionPath    `json:"paths"`
}
