package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document stored in the "users" collection. The document
// owns the expense list and the budgets map; username is the lookup key.
type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	Username  string             `json:"username" bson:"username"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	Expenses  []Expense          `json:"expenses" bson:"expenses"`
	Budgets   map[string]float64 `json:"budgets" bson:"budgets"`
}
