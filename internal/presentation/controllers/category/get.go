package category

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type GetCategoriesController struct{}

func NewGetCategoriesController() *GetCategoriesController {
	return &GetCategoriesController{}
}

func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(models.ExpenseCategories, http.StatusOK)
}
