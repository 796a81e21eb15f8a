package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type CreateExpenseController struct {
	CreateExpenseRepository usecase.CreateExpenseRepository
	Validate                *validator.Validate
}

func NewCreateExpenseController(createExpense usecase.CreateExpenseRepository) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		CreateExpenseRepository: createExpense,
		Validate:                validate,
	}
}

type CreateExpenseBody struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=255"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	date, err := time.Parse(models.DateLayout, body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		}, http.StatusUnprocessableEntity)
	}

	username := r.Header.Get("Username")

	expense, err := c.CreateExpenseRepository.Create(username, &models.Expense{
		Date:        date,
		Category:    body.Category,
		Amount:      body.Amount,
		Description: body.Description,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expense, http.StatusCreated)
}
