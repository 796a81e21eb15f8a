package expense

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(deleteExpense usecase.DeleteExpenseRepository) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository: deleteExpense,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	username := r.Header.Get("Username")

	found, err := c.DeleteExpenseRepository.Delete(username, expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting expense",
		}, http.StatusInternalServerError)
	}

	if !found {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "expense not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
