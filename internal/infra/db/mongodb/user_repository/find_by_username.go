package user_repository

import (
	"context"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByUsernameRepository struct {
	Db *mongo.Database
}

func NewFindUserByUsernameRepository(db *mongo.Database) *FindUserByUsernameRepository {
	return &FindUserByUsernameRepository{
		Db: db,
	}
}

func (r *FindUserByUsernameRepository) Find(username string) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
