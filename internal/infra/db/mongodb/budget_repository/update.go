package budget_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateBudgetRepository struct {
	Db *mongo.Database
}

func NewUpdateBudgetRepository(db *mongo.Database) *UpdateBudgetRepository {
	return &UpdateBudgetRepository{
		Db: db,
	}
}

// Set writes a single key of the budgets map so concurrent sets on different
// categories do not clobber each other.
func (r *UpdateBudgetRepository) Set(username string, category string, amount float64) error {
	collection := r.Db.Collection("users")

	update := bson.M{
		"$set": bson.M{
			"budgets." + category: amount,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"username": username}, update)
	return err
}

func (r *UpdateBudgetRepository) Clear(username string, category string) error {
	collection := r.Db.Collection("users")

	update := bson.M{
		"$unset": bson.M{
			"budgets." + category: "",
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"username": username}, update)
	return err
}
