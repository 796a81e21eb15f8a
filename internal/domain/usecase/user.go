package usecase

import (
	"github.com/spendwise/expense-backend/internal/domain/models"
)

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByUsernameRepository interface {
	Find(username string) (*models.User, error)
}
