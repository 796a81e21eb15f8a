package user_repository

import (
	"context"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(user *models.User) (*models.User, error) {
	collection := r.Db.Collection("users")

	userToSave := &models.User{
		Id:        primitive.NewObjectID(),
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: time.Now(),
		Expenses:  []models.Expense{},
		Budgets:   map[string]float64{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		return nil, err
	}

	return userToSave, nil
}
