package expense

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type GetExpensesController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
}

func NewGetExpensesController(findExpenses usecase.FindExpensesByUsernameRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesByUsernameRepository: findExpenses,
	}
}

// Handle returns the user's expenses in stored order, optionally narrowed by
// ?search= (case-insensitive substring) and ?category= (exact match, "All"
// disables).
func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	username := r.Header.Get("Username")

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	filtered := reports.Filter(expenses, r.UrlParams.Get("search"), r.UrlParams.Get("category"))

	return helpers.CreateResponse(filtered, http.StatusOK)
}
