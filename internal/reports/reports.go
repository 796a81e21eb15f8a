// Package reports derives summary figures from an in-memory expense list.
// Every function is pure and recomputes from the full list on each call;
// callers re-fetch the account document before reporting so results reflect
// the latest persisted state.
package reports

import (
	"sort"

	"github.com/spendwise/expense-backend/internal/domain/models"
)

// BudgetStatus classifies the month's spending against the budgets map.
type BudgetStatus string

const (
	// BudgetUnset means no budget has been configured at all.
	BudgetUnset BudgetStatus = "UNSET"
	// BudgetWithin means the monthly total does not exceed the combined limit.
	BudgetWithin BudgetStatus = "WITHIN"
	// BudgetOver means the monthly total exceeds the combined limit.
	BudgetOver BudgetStatus = "OVER"
)

// Total sums the amount of every expense.
func Total(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// MonthlyTotal sums the amounts of expenses dated within the given month,
// expressed in models.MonthLayout ("2006-01").
func MonthlyTotal(expenses []models.Expense, month string) float64 {
	total := 0.0
	for _, e := range expenses {
		if e.Month() == month {
			total += e.Amount
		}
	}
	return total
}

// CategoryBreakdown sums amounts per category.
func CategoryBreakdown(expenses []models.Expense) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, e := range expenses {
		breakdown[e.Category] += e.Amount
	}
	return breakdown
}

// TopCategory returns the category with the highest summed amount, or the
// empty string when there are no expenses. Ties resolve to the category
// encountered first in stored order, which keeps the result deterministic.
func TopCategory(expenses []models.Expense) string {
	sums := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] += e.Amount
	}

	top := ""
	best := 0.0
	for _, category := range order {
		if top == "" || sums[category] > best {
			top = category
			best = sums[category]
		}
	}
	return top
}

// AggregateBudgetStatus compares the monthly total against the sum of all
// category limits, the rule the original tracker applied. It deliberately does
// not compare per category; BudgetProgress covers that view.
func AggregateBudgetStatus(monthlyTotal float64, budgets map[string]float64) BudgetStatus {
	if len(budgets) == 0 {
		return BudgetUnset
	}

	totalLimit := 0.0
	for _, limit := range budgets {
		totalLimit += limit
	}

	if monthlyTotal > totalLimit {
		return BudgetOver
	}
	return BudgetWithin
}

// CategoryProgress reports one budgeted category's month against its limit.
type CategoryProgress struct {
	Category  string       `json:"category"`
	Limit     float64      `json:"limit"`
	Spent     float64      `json:"spent"`
	Remaining float64      `json:"remaining"`
	Status    BudgetStatus `json:"status"`
}

// BudgetProgress computes spent and remaining for every budgeted category in
// the given month. Remaining never goes negative; overspend shows through the
// OVER status. Rows are sorted by category name.
func BudgetProgress(expenses []models.Expense, month string, budgets map[string]float64) []CategoryProgress {
	spentByCategory := make(map[string]float64)
	for _, e := range expenses {
		if e.Month() == month {
			spentByCategory[e.Category] += e.Amount
		}
	}

	progress := make([]CategoryProgress, 0, len(budgets))
	for category, limit := range budgets {
		spent := spentByCategory[category]
		remaining := limit - spent
		if remaining < 0 {
			remaining = 0
		}
		status := BudgetWithin
		if spent > limit {
			status = BudgetOver
		}
		progress = append(progress, CategoryProgress{
			Category:  category,
			Limit:     limit,
			Spent:     spent,
			Remaining: remaining,
			Status:    status,
		})
	}

	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Category < progress[j].Category
	})

	return progress
}

// MonthTotal is one point of the monthly spending series.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlySeries returns a (month, total) point for every month present,
// ascending by month.
func MonthlySeries(expenses []models.Expense) []MonthTotal {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Month()] += e.Amount
	}

	series := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		series = append(series, MonthTotal{Month: month, Total: total})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}
