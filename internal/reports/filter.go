package reports

import (
	"strconv"
	"strings"

	"github.com/spendwise/expense-backend/internal/domain/models"
)

// AllCategories disables the category filter.
const AllCategories = "All"

// Filter narrows the list to expenses matching a case-insensitive substring
// search over category, amount rendered as text and description, plus an
// optional exact category filter. Empty search and an empty or "All" category
// pass everything through. Stored order is preserved.
func Filter(expenses []models.Expense, search string, category string) []models.Expense {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if category != "" && category != AllCategories && e.Category != category {
			continue
		}

		if search != "" {
			amountText := strconv.FormatFloat(e.Amount, 'f', -1, 64)
			if !strings.Contains(strings.ToLower(e.Category), search) &&
				!strings.Contains(amountText, search) &&
				!strings.Contains(strings.ToLower(e.Description), search) {
				continue
			}
		}

		filtered = append(filtered, e)
	}

	return filtered
}
