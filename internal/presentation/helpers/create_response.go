package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreatePNGResponse wraps raw PNG bytes for the chart endpoints.
func CreatePNGResponse(png []byte, statusCode int) *presentationProtocols.HttpResponse {
	return &presentationProtocols.HttpResponse{
		Body:        io.NopCloser(bytes.NewReader(png)),
		StatusCode:  statusCode,
		ContentType: "image/png",
	}
}
