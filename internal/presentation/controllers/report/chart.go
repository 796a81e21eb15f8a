package report

import (
	"net/http"

	"github.com/go-analyze/charts"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/reports"
)

type BreakdownChartController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
}

func NewBreakdownChartController(findExpenses usecase.FindExpensesByUsernameRepository) *BreakdownChartController {
	return &BreakdownChartController{
		FindExpensesByUsernameRepository: findExpenses,
	}
}

// Handle renders the category breakdown as a PNG pie chart.
func (c *BreakdownChartController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	username := r.Header.Get("Username")

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	if len(expenses) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "no expenses to chart",
		}, http.StatusNotFound)
	}

	breakdown := reports.CategoryBreakdown(expenses)

	var values []float64
	var categoryNames []string
	for category, total := range breakdown {
		categoryNames = append(categoryNames, category)
		values = append(values, total)
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Spending by Category",
		}),
		charts.LegendLabelsOptionFunc(categoryNames),
	)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error rendering chart",
		}, http.StatusInternalServerError)
	}

	buf, err := p.Bytes()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error rendering chart",
		}, http.StatusInternalServerError)
	}

	return helpers.CreatePNGResponse(buf, http.StatusOK)
}

type MonthlyChartController struct {
	FindExpensesByUsernameRepository usecase.FindExpensesByUsernameRepository
}

func NewMonthlyChartController(findExpenses usecase.FindExpensesByUsernameRepository) *MonthlyChartController {
	return &MonthlyChartController{
		FindExpensesByUsernameRepository: findExpenses,
	}
}

// Handle renders the monthly spending series as a PNG bar chart.
func (c *MonthlyChartController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	username := r.Header.Get("Username")

	expenses, err := c.FindExpensesByUsernameRepository.Find(username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	series := reports.MonthlySeries(expenses)
	if len(series) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "no expenses to chart",
		}, http.StatusNotFound)
	}

	months := make([]string, 0, len(series))
	totals := make([]float64, 0, len(series))
	for _, point := range series {
		months = append(months, point.Month)
		totals = append(totals, point.Total)
	}

	p, err := charts.BarRender(
		[][]float64{totals},
		charts.XAxisLabelsOptionFunc(months),
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Monthly Spending",
		}),
	)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error rendering chart",
		}, http.StatusInternalServerError)
	}

	buf, err := p.Bytes()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error rendering chart",
		}, http.StatusInternalServerError)
	}

	return helpers.CreatePNGResponse(buf, http.StatusOK)
}
