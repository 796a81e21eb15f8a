package factory

import (
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/expense_repository"
	controllers "github.com/spendwise/expense-backend/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetExpensesController(db *mongo.Database) *controllers.GetExpensesController {
	findExpenses := expense_repository.NewFindExpensesByUsernameRepository(db)
	return controllers.NewGetExpensesController(findExpenses)
}

func MakeCreateExpenseController(db *mongo.Database) *controllers.CreateExpenseController {
	createExpense := expense_repository.NewCreateExpenseRepository(db)
	return controllers.NewCreateExpenseController(createExpense)
}

func MakeUpdateExpenseController(db *mongo.Database) *controllers.UpdateExpenseController {
	updateExpense := expense_repository.NewUpdateExpenseRepository(db)
	return controllers.NewUpdateExpenseController(updateExpense)
}

func MakeDeleteExpenseController(db *mongo.Database) *controllers.DeleteExpenseController {
	deleteExpense := expense_repository.NewDeleteExpenseRepository(db)
	return controllers.NewDeleteExpenseController(deleteExpense)
}
