package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/spendwise/expense-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) Create(user *models.User) (*models.User, error) {
	saved := &models.User{
		Id:        primitive.NewObjectID(),
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: time.Now(),
		Expenses:  []models.Expense{},
		Budgets:   map[string]float64{},
	}
	s.users[saved.Username] = saved
	return saved, nil
}

func (s *fakeUserStore) Find(username string) (*models.User, error) {
	return s.users[username], nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (s *fakeSessionStore) Create(sessionId string, username string, ttl time.Duration) error {
	s.sessions[sessionId] = username
	return nil
}

func (s *fakeSessionStore) Find(sessionId string) (string, error) {
	return s.sessions[sessionId], nil
}

func (s *fakeSessionStore) Delete(sessionId string) error {
	delete(s.sessions, sessionId)
	return nil
}

func jsonRequest(body string) presentationProtocols.HttpRequest {
	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader(body)),
		Header:    http.Header{},
		UrlParams: url.Values{},
	}
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(out))
}

func TestRegisterCreatesAccount(t *testing.T) {
	users := newFakeUserStore()
	controller := NewRegisterController(users, users)

	response := controller.Handle(jsonRequest(`{"username":"alice","password":"hunter22"}`))

	assert.Equal(t, http.StatusCreated, response.StatusCode)

	user := users.users["alice"]
	require.NotNil(t, user)
	assert.True(t, utils.VerifyPassword(user.Password, "hunter22"))
	assert.Empty(t, user.Expenses)
	assert.Empty(t, user.Budgets)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newFakeUserStore()
	controller := NewRegisterController(users, users)

	first := controller.Handle(jsonRequest(`{"username":"alice","password":"hunter22"}`))
	require.Equal(t, http.StatusCreated, first.StatusCode)
	originalPassword := users.users["alice"].Password

	second := controller.Handle(jsonRequest(`{"username":"alice","password":"different"}`))

	assert.Equal(t, http.StatusConflict, second.StatusCode)

	var body presentationProtocols.ErrorResponse
	decodeBody(t, second, &body)
	assert.Equal(t, "username already exists", body.Error)

	// The first account is untouched.
	assert.Equal(t, originalPassword, users.users["alice"].Password)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	users := newFakeUserStore()
	controller := NewRegisterController(users, users)

	response := controller.Handle(jsonRequest(`{"username":"alice","password":"short"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	assert.Empty(t, users.users)
}

func TestLoginUnknownUsername(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	controller := NewLoginController(users, sessions, time.Hour)

	response := controller.Handle(jsonRequest(`{"username":"ghost","password":"whatever"}`))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	var body presentationProtocols.ErrorResponse
	decodeBody(t, response, &body)
	assert.Equal(t, "username not found", body.Error)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	users := newFakeUserStore()
	sessions := newFakeSessionStore()

	register := NewRegisterController(users, users)
	require.Equal(t, http.StatusCreated,
		register.Handle(jsonRequest(`{"username":"alice","password":"hunter22"}`)).StatusCode)

	controller := NewLoginController(users, sessions, time.Hour)
	response := controller.Handle(jsonRequest(`{"username":"alice","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)

	var body presentationProtocols.ErrorResponse
	decodeBody(t, response, &body)
	assert.Equal(t, "incorrect password", body.Error)
	assert.Empty(t, sessions.sessions)
}

func TestLoginSuccessCreatesSession(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	users := newFakeUserStore()
	sessions := newFakeSessionStore()

	register := NewRegisterController(users, users)
	require.Equal(t, http.StatusCreated,
		register.Handle(jsonRequest(`{"username":"alice","password":"hunter22"}`)).StatusCode)

	controller := NewLoginController(users, sessions, time.Hour)
	response := controller.Handle(jsonRequest(`{"username":"alice","password":"hunter22"}`))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body LoginResponse
	decodeBody(t, response, &body)
	assert.Equal(t, "alice", body.Username)
	require.NotEmpty(t, body.Token)

	claims, err := utils.NewSessionTokenUtil().DecodeToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "alice", sessions.sessions[claims["jti"].(string)])
}

func TestLoginAcceptsLegacySha256Account(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	users := newFakeUserStore()
	sessions := newFakeSessionStore()

	digest := sha256.Sum256([]byte("hunter22"))
	users.users["legacy"] = &models.User{
		Id:       primitive.NewObjectID(),
		Username: "legacy",
		Password: hex.EncodeToString(digest[:]),
	}

	controller := NewLoginController(users, sessions, time.Hour)
	response := controller.Handle(jsonRequest(`{"username":"legacy","password":"hunter22"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.sessions["session-1"] = "alice"

	controller := NewLogoutController(sessions)

	request := jsonRequest("")
	request.Header.Set("SessionId", "session-1")

	response := controller.Handle(request)

	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Empty(t, sessions.sessions)
}
