package repository

//go:generate mockgen -source=budget.go -destination=mocks/mock_budget.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/database/postgres"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const (
	budgetCategoriesTable = "budget_categories bc"

	getBudgetTotalsQuery = `SELECT total_allocated, total_spent, total_remaining FROM get_budget_totals($1)`
)

type BudgetRepository interface {
	ListCategories(ctx context.Context, clientID string) ([]*domain.BudgetCategory, error)
	// GetTotals chama a RPC get_budget_totals
	GetTotals(ctx context.Context, clientID string) (*domain.BudgetTotals, error)
}

type budgetRepository struct {
	conn postgres.Queryer
}

func NewBudgetRepository(conn postgres.Queryer) BudgetRepository {
	return &budgetRepository{
		conn: conn,
	}
}

func (r *budgetRepository) ListCategories(ctx context.Context, clientID string) ([]*domain.BudgetCategory, error) {
	query, args, err := listBudgetCategoriesQuery(clientID).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	categories := make([]*domain.BudgetCategory, 0)
	for rows.Next() {
		category := &domain.BudgetCategory{}
		if err := rows.Scan(
			&category.ID,
			&category.ClientID,
			&category.Name,
			&category.Allocated,
			&category.Spent,
			&category.Color,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear categoria de orçamento")
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return categories, nil
}

func (r *budgetRepository) GetTotals(ctx context.Context, clientID string) (*domain.BudgetTotals, error) {
	totals := &domain.BudgetTotals{}
	err := r.conn.QueryRowContext(ctx, getBudgetTotalsQuery, clientID).Scan(
		&totals.TotalAllocated,
		&totals.TotalSpent,
		&totals.TotalRemaining,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.BudgetTotals{}, nil
		}
		return nil, errors.Wrap(err, "erro ao executar get_budget_totals")
	}

	return totals, nil
}

func listBudgetCategoriesQuery(clientID string) squirrel.SelectBuilder {
	return squirrel.
		Select("bc.id, bc.client_id, bc.name, bc.allocated_amount, bc.spent_amount, COALESCE(bc.color, '')").
		From(budgetCategoriesTable).
		Where(squirrel.Eq{"bc.client_id": clientID}).
		OrderBy("bc.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}
