package processor

import (
	"context"
	"time"

	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// ProfitAndLoss summarizes income against expenses over a period
type ProfitAndLoss struct {
	From              *time.Time           `json:"from,omitempty"`
	To                *time.Time           `json:"to,omitempty"`
	TotalIncome       float64              `json:"totalIncome"`
	TotalExpenses     float64              `json:"totalExpenses"`
	NetProfit         float64              `json:"netProfit"`
	IncomeByCategory  []store.CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []store.CategoryTotal `json:"expenseByCategory"`
}

// RevenueOverview is the month-by-month income and expense series
type RevenueOverview struct {
	From   *time.Time           `json:"from,omitempty"`
	To     *time.Time           `json:"to,omitempty"`
	Months []store.MonthlyTotal `json:"months"`
}

// GetProfitAndLoss computes the owner's P&L over the optional date range.
// Only completed transactions count.
func (p *FinanceProcessor) GetProfitAndLoss(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (ProfitAndLoss, error) {
	if from != nil && to != nil && to.Before(*from) {
		return ProfitAndLoss{}, ErrInvalidDateRange
	}

	income, err := p.store.SumTransactionsByType(ctx, ownerID, store.TransactionTypeIncome, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum income", err)
		return ProfitAndLoss{}, err
	}
	expenses, err := p.store.SumTransactionsByType(ctx, ownerID, store.TransactionTypeExpense, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum expenses", err)
		return ProfitAndLoss{}, err
	}
	incomeByCategory, err := p.store.SumTransactionsByCategory(ctx, ownerID, store.TransactionTypeIncome, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum income by category", err)
		return ProfitAndLoss{}, err
	}
	expenseByCategory, err := p.store.SumTransactionsByCategory(ctx, ownerID, store.TransactionTypeExpense, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum expenses by category", err)
		return ProfitAndLoss{}, err
	}

	return ProfitAndLoss{
		From:              from,
		To:                to,
		TotalIncome:       income,
		TotalExpenses:     expenses,
		NetProfit:         income - expenses,
		IncomeByCategory:  incomeByCategory,
		ExpenseByCategory: expenseByCategory,
	}, nil
}

// ExpenseBreakdown sums the owner's expenses by category over a period
type ExpenseBreakdown struct {
	From       *time.Time            `json:"from,omitempty"`
	To         *time.Time            `json:"to,omitempty"`
	Total      float64               `json:"total"`
	ByCategory []store.CategoryTotal `json:"byCategory"`
}

// GetExpenseBreakdown computes the owner's expense totals per category
// over the optional date range
func (p *FinanceProcessor) GetExpenseBreakdown(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (ExpenseBreakdown, error) {
	if from != nil && to != nil && to.Before(*from) {
		return ExpenseBreakdown{}, ErrInvalidDateRange
	}

	total, err := p.store.SumTransactionsByType(ctx, ownerID, store.TransactionTypeExpense, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum expenses", err)
		return ExpenseBreakdown{}, err
	}
	byCategory, err := p.store.SumTransactionsByCategory(ctx, ownerID, store.TransactionTypeExpense, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum expenses by category", err)
		return ExpenseBreakdown{}, err
	}

	return ExpenseBreakdown{From: from, To: to, Total: total, ByCategory: byCategory}, nil
}

// GetRevenueOverview computes the owner's monthly revenue series over the
// optional date range
func (p *FinanceProcessor) GetRevenueOverview(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (RevenueOverview, error) {
	if from != nil && to != nil && to.Before(*from) {
		return RevenueOverview{}, ErrInvalidDateRange
	}

	months, err := p.store.SumTransactionsByMonth(ctx, ownerID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum transactions by month", err)
		return RevenueOverview{}, err
	}

	return RevenueOverview{From: from, To: to, Months: months}, nil
}
