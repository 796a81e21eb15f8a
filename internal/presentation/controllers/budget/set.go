package budget

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type SetBudgetController struct {
	SetBudgetRepository usecase.SetBudgetRepository
	Validate            *validator.Validate
}

func NewSetBudgetController(setBudget usecase.SetBudgetRepository) *SetBudgetController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &SetBudgetController{
		SetBudgetRepository: setBudget,
		Validate:            validate,
	}
}

type SetBudgetBody struct {
	// Dots and dollar signs would turn the budgets map key into a nested
	// field path on write, corrupting the document.
	Category string  `json:"category" validate:"required,min=1,max=50,excludesall=.$"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// Handle sets the category's monthly limit, replacing any prior value.
func (c *SetBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SetBudgetBody
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

	username := r.Header.Get("Username")

	if err := c.SetBudgetRepository.Set(username, body.Category, body.Amount); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error setting budget",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&body, http.StatusOK)
}
