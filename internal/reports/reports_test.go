package reports

import (
	"testing"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func expense(date string, category string, amount float64, description string) models.Expense {
	d, _ := time.Parse(models.DateLayout, date)
	return models.Expense{
		Id:          primitive.NewObjectID(),
		Date:        d,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
}

func TestTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
	assert.Equal(t, 0.0, Total([]models.Expense{}))
}

func TestTotalAndBreakdown(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-03-01", "Food", 50, ""),
		expense("2025-03-05", "Food", 30, ""),
		expense("2025-03-07", "Transport", 20, ""),
	}

	assert.Equal(t, 100.0, Total(expenses))
	assert.Equal(t, map[string]float64{"Food": 80, "Transport": 20}, CategoryBreakdown(expenses))
	assert.Equal(t, "Food", TopCategory(expenses))
}

func TestMonthlyTotal(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-03-01", "Food", 50, ""),
		expense("2025-03-31", "Transport", 25, ""),
		expense("2025-04-01", "Food", 10, ""),
	}

	assert.Equal(t, 75.0, MonthlyTotal(expenses, "2025-03"))
	assert.Equal(t, 10.0, MonthlyTotal(expenses, "2025-04"))
	assert.Equal(t, 0.0, MonthlyTotal(expenses, "2025-05"))
}

func TestTopCategoryEmpty(t *testing.T) {
	assert.Equal(t, "", TopCategory(nil))
}

func TestTopCategoryTieBreaksToFirstSeen(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-03-01", "Transport", 40, ""),
		expense("2025-03-02", "Food", 40, ""),
	}

	assert.Equal(t, "Transport", TopCategory(expenses))
}

func TestAggregateBudgetStatus(t *testing.T) {
	assert.Equal(t, BudgetUnset, AggregateBudgetStatus(100, nil))
	assert.Equal(t, BudgetUnset, AggregateBudgetStatus(100, map[string]float64{}))

	budgets := map[string]float64{"Food": 100, "Transport": 50}

	// Compared against the sum of all limits (150), not per category.
	assert.Equal(t, BudgetWithin, AggregateBudgetStatus(120, budgets))
	assert.Equal(t, BudgetWithin, AggregateBudgetStatus(150, budgets))
	assert.Equal(t, BudgetOver, AggregateBudgetStatus(150.01, budgets))
}

func TestBudgetProgress(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-03-02", "Food", 120, ""),
		expense("2025-03-15", "Transport", 20, ""),
		expense("2025-02-20", "Food", 999, "previous month, ignored"),
	}
	budgets := map[string]float64{"Food": 100, "Transport": 50, "Shopping": 80}

	progress := BudgetProgress(expenses, "2025-03", budgets)

	assert.Equal(t, []CategoryProgress{
		{Category: "Food", Limit: 100, Spent: 120, Remaining: 0, Status: BudgetOver},
		{Category: "Shopping", Limit: 80, Spent: 0, Remaining: 80, Status: BudgetWithin},
		{Category: "Transport", Limit: 50, Spent: 20, Remaining: 30, Status: BudgetWithin},
	}, progress)
}

func TestBudgetProgressEmptyBudgets(t *testing.T) {
	progress := BudgetProgress([]models.Expense{expense("2025-03-02", "Food", 10, "")}, "2025-03", nil)
	assert.Empty(t, progress)
}

func TestMonthlySeriesAscending(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-04-10", "Food", 10, ""),
		expense("2025-02-01", "Food", 5, ""),
		expense("2025-02-14", "Shopping", 15, ""),
		expense("2024-12-25", "Entertainment", 30, ""),
	}

	series := MonthlySeries(expenses)

	assert.Equal(t, []MonthTotal{
		{Month: "2024-12", Total: 30},
		{Month: "2025-02", Total: 20},
		{Month: "2025-04", Total: 10},
	}, series)
}

func TestMonthlySeriesEmpty(t *testing.T) {
	assert.Empty(t, MonthlySeries(nil))
}

func TestDeterministicRecomputation(t *testing.T) {
	expenses := []models.Expense{
		expense("2025-03-01", "Food", 50, ""),
		expense("2025-03-05", "Transport", 20, ""),
	}

	assert.Equal(t, Total(expenses), Total(expenses))
	assert.Equal(t, CategoryBreakdown(expenses), CategoryBreakdown(expenses))
	assert.Equal(t, MonthlySeries(expenses), MonthlySeries(expenses))
}
