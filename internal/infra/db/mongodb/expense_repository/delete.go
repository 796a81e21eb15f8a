package expense_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

func (r *DeleteExpenseRepository) Delete(username string, expenseId primitive.ObjectID) (bool, error) {
	collection := r.Db.Collection("users")

	update := bson.M{
		"$pull": bson.M{
			"expenses": bson.M{"_id": expenseId},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return false, err
	}

	// $pull matches the account document even when no element is removed;
	// ModifiedCount tells whether the id was actually present.
	return result.ModifiedCount > 0, nil
}
