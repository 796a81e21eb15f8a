package budget

import (
	"net/http"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type GetBudgetsController struct {
	FindBudgetsByUsernameRepository  usecase.FindBudgetsByUsernameRepository
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
}

func NewGetBudgetsController(
	findBudgets usecase.FindBudgetsByUsernameRepository,
	findExpenses usecase.FindExpensesByUsernameRepository,
) *GetBudgetsController {
	return &GetBudgetsController{
		FindBudgetsByUsernameRepository:  findBudgets,
		FindExpensesByUsernameRepository: findExpenses,
	}
}

type GetBudgetsResponse struct {
	Budgets  map[string]float64         `json:"budgets"`
	Progress []reports.CategoryProgress `json:"progress"`
}

// Handle returns the budgets map together with the current month's
// per-category progress rows, the shape the budget table renders.
func (c *GetBudgetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	username := r.Header.Get("Username")

	budgets, err := c.FindBudgetsByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding budgets",
		}, http.StatusInternalServerError)
	}

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	month := time.Now().Format(models.MonthLayout)

	return helpers.CreateResponse(&GetBudgetsResponse{
		Budgets:  budgets,
		Progress: reports.BudgetProgress(expenses, month, budgets),
	}, http.StatusOK)
}
