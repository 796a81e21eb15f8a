package helpers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type MonthFilterParams struct {
	Month string `json:"month" validate:"omitempty,datetime=2006-01"`
}

// GetMonthFilterByQueries reads an optional ?month=2006-01 query parameter,
// defaulting to the current month.
func GetMonthFilterByQueries(urlQueries *url.Values, validate *validator.Validate) (string, *presentationProtocols.HttpResponse) {
	params := &MonthFilterParams{
		Month: urlQueries.Get("month"),
	}

	err := validate.Struct(params)
	if err != nil {
		return "", CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	if params.Month == "" {
		return time.Now().Format("2006-01"), nil
	}

	return params.Month, nil
}
