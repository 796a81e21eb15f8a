package budget_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetsByUsernameRepository struct {
	Db *mongo.Database
}

func NewFindBudgetsByUsernameRepository(db *mongo.Database) *FindBudgetsByUsernameRepository {
	return &FindBudgetsByUsernameRepository{
		Db: db,
	}
}

func (r *FindBudgetsByUsernameRepository) Find(username string) (map[string]float64, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return map[string]float64{}, nil
		}
		return nil, err
	}

	if user.Budgets == nil {
		return map[string]float64{}, nil
	}

	return user.Budgets, nil
}
