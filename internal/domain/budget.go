package domain

import "fmt"

// BudgetCategory é uma linha da tabela budget_categories
type BudgetCategory struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"client_id"`
	Name      string  `json:"name"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Color     string  `json:"color,omitempty"`
}

// BudgetTotals é o retorno da RPC get_budget_totals
type BudgetTotals struct {
	TotalAllocated float64 `json:"total_allocated"`
	TotalSpent     float64 `json:"total_spent"`
	TotalRemaining float64 `json:"total_remaining"`
}

func (t *BudgetTotals) Validate() error {
	if t.TotalAllocated < 0 || t.TotalSpent < 0 {
		return fmt.Errorf("totais de orçamento negativos")
	}
	return nil
}

type BudgetCategoryView struct {
	BudgetCategory
	Remaining    float64 `json:"remaining"`
	PercentSpent float64 `json:"percent_spent"`
	OverBudget   bool    `json:"over_budget"`
}

type BudgetSummary struct {
	ClientID        string               `json:"client_id"`
	Categories      []BudgetCategoryView `json:"categories"`
	Totals          BudgetTotals         `json:"totals"`
	PercentSpent    float64              `json:"percent_spent"`
	OverBudgetCount int                  `json:"over_budget_count"`
}
