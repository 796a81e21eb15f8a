package routes

import (
	"net/http"

	controllers "github.com/spendwise/expense-backend/internal/presentation/controllers/category"
	"github.com/spendwise/expense-backend/internal/setup/adapters"
)

func CategoryRoutes(server *http.ServeMux) {
	server.Handle("GET /category", adapters.AdaptRoute(controllers.NewGetCategoriesController()))
}
