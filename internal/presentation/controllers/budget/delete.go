package budget

import (
	"net/http"
	"strings"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type ClearBudgetController struct {
	ClearBudgetRepository usecase.ClearBudgetRepository
}

func NewClearBudgetController(clearBudget usecase.ClearBudgetRepository) *ClearBudgetController {
	return &ClearBudgetController{
		ClearBudgetRepository: clearBudget,
	}
}

// Handle removes the category's limit. Clearing an absent category succeeds.
func (c *ClearBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	category := r.Req.PathValue("category")
	if category == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "category is required",
		}, http.StatusBadRequest)
	}

	// Dots and dollar signs would turn the budgets map key into a nested
	// field path on write, corrupting the document.
	if strings.ContainsAny(category, ".$") {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid category name",
		}, http.StatusBadRequest)
	}

	username := r.Header.Get("Username")

	if err := c.ClearBudgetRepository.Clear(username, category); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error clearing budget",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
