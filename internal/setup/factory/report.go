package factory

import (
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/budget_repository"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/expense_repository"
	controllers "github.com/spendwise/expense-backend/internal/presentation/controllers/report"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeSummaryController(db *mongo.Database) *controllers.SummaryController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	findBudgets := budget_repository.NewFindBudgetsByUsernameRepository(db)
	return controllers.NewSummaryController(findExpenses, findBudgets)
}

func MakeMonthlySeriesController(db *mongo.Database) *controllers.MonthlySeriesController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	return controllers.NewMonthlySeriesController(findExpenses)
}

func MakeBudgetProgressController(db *mongo.Database) *controllers.BudgetProgressController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	findBudgets := budget_repository.NewFindBudgetsByUsernameRepository(db)
	return controllers.NewBudgetProgressController(findExpenses, findBudgets)
}

func MakeBreakdownChartController(db *mongo.Database) *controllers.BreakdownChartController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	return controllers.NewBreakdownChartController(findExpenses)
}

func MakeMonthlyChartController(db *mongo.Database) *controllers.MonthlyChartController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	return controllers.NewMonthlyChartController(findExpenses)
}
