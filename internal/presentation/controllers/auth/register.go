package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-backend/internal/domain/models"
	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/utils"
)

type RegisterController struct {
	CreateUserRepository         usecase.CreateUserRepository
	FindUserByUsernameRepository usecase.FindUserByUsernameRepository
	Validate                     *validator.Validate
}

func NewRegisterController(
	createUser usecase.CreateUserRepository,
	findUserByUsername usecase.FindUserByUsernameRepository,
) *RegisterController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterController{
		CreateUserRepository:         createUser,
		FindUserByUsernameRepository: findUserByUsername,
		Validate:                     validate,
	}
}

type RegisterBody struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RegisterResponse struct {
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
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

	existingUser, err := c.FindUserByUsernameRepository.Find(body.Username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking username",
		}, http.StatusInternalServerError)
	}

	if existingUser != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "username already exists",
		}, http.StatusConflict)
	}

	passwordHash, err := utils.HashPassword(body.Password)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error hashing password",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Username: body.Username,
		Password: passwordHash,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating account",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&RegisterResponse{
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, http.StatusCreated)
}
