package factory

import (
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/budget_repository"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/expense_repository"
	controllers "github.com/spendwise/expense-backend/internal/presentation/controllers/budget"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetBudgetsController(db *mongo.Database) *controllers.GetBudgetsController {
	findBudgets := budget_repository.NewFindBudgetsByUsernameRepository(db)
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	return controllers.NewGetBudgetsController(findBudgets, findExpenses)
}

func MakeSetBudgetController(db *mongo.Database) *controllers.SetBudgetController {
	setBudget := budget_repository.NewUpdateBudgetRepository(db)
	return controllers.NewSetBudgetController(setBudget)
}

func MakeClearBudgetController(db *mongo.Database) *controllers.ClearBudgetController {
	clearBudget := budget_repository.NewUpdateBudgetRepository(db)
	return controllers.NewClearBudgetController(clearBudget)
}
