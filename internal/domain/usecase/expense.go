package usecase

import (
	"github.com/spendwise/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindExpensesByUsernameRepository interface {
	Find(username string) ([]models.Expense, error)
}

type CreateExpenseRepository interface {
	Create(username string, expense *models.Expense) (*models.Expense, error)
}

// UpdateExpenseRepository replaces every field of the expense matching the id
// except the id itself. The boolean reports whether a matching entry existed.
type UpdateExpenseRepository interface {
	Update(username string, expenseId primitive.ObjectID, expense *models.Expense) (bool, error)
}

// DeleteExpenseRepository removes the expense matching the id. The boolean
// reports whether an entry was removed.
type DeleteExpenseRepository interface {
	Delete(username string, expenseId primitive.ObjectID) (bool, error)
}
