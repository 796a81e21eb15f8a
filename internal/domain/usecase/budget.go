package usecase

type FindBudgetsByUsernameRepository interface {
	Find(username string) (map[string]float64, error)
}

type SetBudgetRepository interface {
	Set(username string, category string, amount float64) error
}

// ClearBudgetRepository removes the category's limit. Clearing an absent
// category is a no-op, not an error.
type ClearBudgetRepository interface {
	Clear(username string, category string) error
}
