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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateExpenseController struct {
	UpdateExpenseRepository usecase.UpdateExpenseRepository
	Validate                *validator.Validate
}

func NewUpdateExpenseController(updateExpense usecase.UpdateExpenseRepository) *UpdateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateExpenseController{
		UpdateExpenseRepository: updateExpense,
		Validate:                validate,
	}
}

type UpdateExpenseBody struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=255"`
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateExpenseBody
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

	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	date, err := time.Parse(models.DateLayout, body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		}, http.StatusUnprocessableEntity)
	}

	username := r.Header.Get("Username")

	expense := &models.Expense{
		Id:          expenseId,
		Date:        date,
		Category:    body.Category,
		Amount:      body.Amount,
		Description: body.Description,
	}

	found, err := c.UpdateExpenseRepository.Update(username, expenseId, expense)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating expense",
		}, http.StatusInternalServerError)
	}

	if !found {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "expense not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
