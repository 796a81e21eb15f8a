package expense_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(username string, expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection("users")

	expense.Id = primitive.NewObjectID()

	update := bson.M{
		"$push": bson.M{
			"expenses": expense,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
