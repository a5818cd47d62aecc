package domain

import "strings"

// Plan é o plano de assinatura da organização
type Plan string

const (
	PlanFree         Plan = "free"
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanScale        Plan = "scale"
	PlanEnterprise   Plan = "enterprise"
)

var planRank = map[Plan]int{
	PlanFree:         0,
	PlanStarter:      1,
	PlanProfessional: 2,
	PlanScale:        3,
	PlanEnterprise:   4,
}

func ParsePlan(s string) (Plan, bool) {
	plan := Plan(strings.ToLower(strings.TrimSpace(s)))
	_, ok := planRank[plan]
	return plan, ok
}

// Includes informa se o plano dá acesso a recursos do plano required
func (p Plan) Includes(required Plan) bool {
	have, ok := planRank[p]
	if !ok {
		return false
	}
	need, ok := planRank[required]
	if !ok {
		return false
	}
	return have >= need
}

type WidgetSize string

const (
	WidgetSizeSmall  WidgetSize = "small"
	WidgetSizeMedium WidgetSize = "medium"
	WidgetSizeLarge  WidgetSize = "large"
)

// WidgetDefinition descreve um widget que pode ser adicionado ao painel
type WidgetDefinition struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Category    string     `json:"category" yaml:"category"`
	Description string     `json:"description" yaml:"description"`
	Size        WidgetSize `json:"size" yaml:"size"`
	MinPlan     Plan       `json:"min_plan" yaml:"min_plan"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Popularity  int        `json:"popularity" yaml:"popularity"`
}

type WidgetFilter struct {
	Category string
	Search   string
	Plan     Plan
}
