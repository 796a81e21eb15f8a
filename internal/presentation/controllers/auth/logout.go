package auth

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
)

type LogoutController struct {
	DeleteSessionRepository usecase.DeleteSessionRepository
}

func NewLogoutController(deleteSession usecase.DeleteSessionRepository) *LogoutController {
	return &LogoutController{
		DeleteSessionRepository: deleteSession,
	}
}

// Handle tears the session down; the token dies with the Redis record, so a
// replayed token no longer authenticates.
func (c *LogoutController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	sessionId := r.Header.Get("SessionId")

	if err := c.DeleteSessionRepository.Delete(sessionId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting session",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
