package report

import (
	"net/http"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type SummaryController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
	FindBudgetsByUsernameRepository  usecase.FindBudgetsByUsernameRepository
}

func NewSummaryController(
	findExpenses usecase.FindExpensesByUsernameRepository,
	findBudgets usecase.FindBudgetsByUsernameRepository,
) *SummaryController {
	return &SummaryController{
		FindExpensesByUsernameRepository: findExpenses,
		FindBudgetsByUsernameRepository:  findBudgets,
	}
}

type SummaryResponse struct {
	Total        float64              `json:"total"`
	Month        string               `json:"month"`
	MonthlyTotal float64              `json:"monthlyTotal"`
	TopCategory  string               `json:"topCategory"`
	BudgetStatus reports.BudgetStatus `json:"budgetStatus"`
	Breakdown    map[string]float64   `json:"breakdown"`
}

// Handle backs the dashboard header cards: all-time total, current-month
// total, top category and the aggregate budget status.
func (c *SummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	month := time.Now().Format(models.MonthLayout)
	monthlyTotal := reports.MonthlyTotal(expenses, month)

	return helpers.CreateResponse(&SummaryResponse{
		Total:        reports.Total(expenses),
		Month:        month,
		MonthlyTotal: monthlyTotal,
		TopCategory:  reports.TopCategory(expenses),
		BudgetStatus: reports.AggregateBudgetStatus(monthlyTotal, budgets),
		Breakdown:    reports.CategoryBreakdown(expenses),
	}, http.StatusOK)
}
