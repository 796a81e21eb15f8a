package report

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type BudgetProgressController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
	FindBudgetsByUsernameRepository  usecase.FindBudgetsByUsernameRepository
	Validate                         *validator.Validate
}

func NewBudgetProgressController(
	findExpenses usecase.FindExpensesByUsernameRepository,
	findBudgets usecase.FindBudgetsByUsernameRepository,
) *BudgetProgressController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &BudgetProgressController{
		FindExpensesByUsernameRepository: findExpenses,
		FindBudgetsByUsernameRepository:  findBudgets,
		Validate:                         validate,
	}
}

func (c *BudgetProgressController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, errResponse := helpers.GetMonthFilterByQueries(&r.UrlParams, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	username := r.Header.Get("Username")

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	budgets, err := c.FindBudgetsByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding budgets",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(reports.BudgetProgress(expenses, month, budgets), http.StatusOK)
}
