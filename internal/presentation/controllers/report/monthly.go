package report

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type MonthlySeriesController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
}

func NewMonthlySeriesController(findExpenses usecase.FindExpensesByUsernameRepository) *MonthlySeriesController {
	return &MonthlySeriesController{
		FindExpensesByUsernameRepository: findExpenses,
	}
}

func (c *MonthlySeriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	username := r.Header.Get("Username")

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(reports.MonthlySeries(expenses), http.StatusOK)
}
