package expense_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpensesByUsernameRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByUsernameRepository(db *mongo.Database) *FindExpensesByUsernameRepository {
	return &FindExpensesByUsernameRepository{
		Db: db,
	}
}

// Find returns the user's expenses in stored order. The account document is
// re-fetched on every call so reads reflect the latest persisted state.
func (r *FindExpensesByUsernameRepository) Find(username string) ([]models.Expense, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []models.Expense{}, nil
		}
		return nil, err
	}

	if user.Expenses == nil {
		return []models.Expense{}, nil
	}

	return user.Expenses, nil
}
