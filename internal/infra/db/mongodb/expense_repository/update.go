package expense_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

// Update replaces the array element matching the id via the positional
// operator. The id inside the replacement stays the matched one.
func (r *UpdateExpenseRepository) Update(username string, expenseId primitive.ObjectID, expense *models.Expense) (bool, error) {
	collection := r.Db.Collection("users")

	expense.Id = expenseId

	filter := bson.M{
		"username":     username,
		"expenses._id": expenseId,
	}

	update := bson.M{
		"$set": bson.M{
			"expenses.$": expense,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}
