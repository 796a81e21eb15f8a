package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoginController struct {
	FindUserByUsernameRepository usecase.FindUserByUsernameRepository
	CreateSessionRepository      usecase.CreateSessionRepository
	SessionToken                 *utils.SessionTokenUtil
	SessionTTL                   time.Duration
	Validate                     *validator.Validate
}

func NewLoginController(
	findUserByUsername usecase.FindUserByUsernameRepository,
	createSession usecase.CreateSessionRepository,
	sessionTTL time.Duration,
) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		FindUserByUsernameRepository: findUserByUsername,
		CreateSessionRepository:      createSession,
		SessionToken:                 utils.NewSessionTokenUtil(),
		SessionTTL:                   sessionTTL,
		Validate:                     validate,
	}
}

type LoginBody struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
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

	user, err := c.FindUserByUsernameRepository.Find(body.Username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding account",
		}, http.StatusInternalServerError)
	}

	// A missing username is reported distinctly so the client can offer
	// registration instead of a retry.
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "username not found",
		}, http.StatusNotFound)
	}

	if !utils.VerifyPassword(user.Password, body.Password) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "incorrect password",
		}, http.StatusUnauthorized)
	}

	sessionId := primitive.NewObjectID().Hex()
	if err := c.CreateSessionRepository.Create(sessionId, user.Username, c.SessionTTL); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating session",
		}, http.StatusInternalServerError)
	}

	token, err := c.SessionToken.CreateToken(user.Username, sessionId, c.SessionTTL)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating session token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&LoginResponse{
		Token:    token,
		Username: user.Username,
	}, http.StatusOK)
}
