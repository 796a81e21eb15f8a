package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a controller into an http.HandlerFunc.
func AdaptRoute(controller presentationProtocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequest := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		httpResponse := controller.Handle(httpRequest)

		contentType := httpResponse.ContentType
		if contentType == "" {
			contentType = "application/json"
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(httpResponse.StatusCode)
		io.Copy(w, httpResponse.Body)
		httpResponse.Body.Close()
	}
}
