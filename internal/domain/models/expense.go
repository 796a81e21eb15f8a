package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar date format accepted on expense input. Dates
// carry no time-of-day semantics.
const DateLayout = "2006-01-02"

// MonthLayout identifies a year+month, e.g. "2025-04".
const MonthLayout = "2006-01"

type Expense struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	Date        time.Time          `json:"date" bson:"date"`
	Category    string             `json:"category" bson:"category"`
	Amount      float64            `json:"amount" bson:"amount"`
	Description string             `json:"description" bson:"description"`
}

// Month returns the expense's year+month in MonthLayout.
func (e *Expense) Month() string {
	return e.Date.Format(MonthLayout)
}

// ExpenseCategories is the fixed category set offered by the client. Writes
// are not restricted to it; documents created before the list settled may
// carry other names.
var ExpenseCategories = []string{
	"Food",
	"Transport",
	"Entertainment",
	"Utilities",
	"Shopping",
	"Healthcare",
	"Education",
	"Other",
}
