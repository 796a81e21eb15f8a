package expense

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/spendwise/expense-backend/internal/domain/models"
	presentationProtocols "github.com/spendwise/expense-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeExpenseStore struct {
	expenses map[string][]models.Expense
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: map[string][]models.Expense{}}
}

func (s *fakeExpenseStore) Find(username string) ([]models.Expense, error) {
	expenses, ok := s.expenses[username]
	if !ok {
		return []models.Expense{}, nil
	}
	return expenses, nil
}

func (s *fakeExpenseStore) Create(username string, expense *models.Expense) (*models.Expense, error) {
	expense.Id = primitive.NewObjectID()
	s.expenses[username] = append(s.expenses[username], *expense)
	return expense, nil
}

func (s *fakeExpenseStore) Update(username string, expenseId primitive.ObjectID, expense *models.Expense) (bool, error) {
	for i, existing := range s.expenses[username] {
		if existing.Id == expenseId {
			s.expenses[username][i] = *expense
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeExpenseStore) Delete(username string, expenseId primitive.ObjectID) (bool, error) {
	for i, existing := range s.expenses[username] {
		if existing.Id == expenseId {
			s.expenses[username] = append(s.expenses[username][:i], s.expenses[username][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func makeRequest(body string, username string) presentationProtocols.HttpRequest {
	header := http.Header{}
	header.Set("Username", username)

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader(body)),
		Header:    header,
		UrlParams: url.Values{},
		Req:       httptest.NewRequest(http.MethodGet, "/", nil),
	}
}

func makeRequestWithExpenseId(body string, username string, expenseId string) presentationProtocols.HttpRequest {
	request := makeRequest(body, username)
	request.Req.SetPathValue("expenseId", expenseId)
	return request
}

func seedExpense(store *fakeExpenseStore, username string, date string, category string, amount float64, description string) models.Expense {
	parsed, _ := time.Parse(models.DateLayout, date)
	expense := models.Expense{
		Id:          primitive.NewObjectID(),
		Date:        parsed,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	store.expenses[username] = append(store.expenses[username], expense)
	return expense
}

func TestCreateExpense(t *testing.T) {
	store := newFakeExpenseStore()
	controller := NewCreateExpenseController(store)

	response := controller.Handle(makeRequest(
		`{"date":"2024-01-15","category":"Food","amount":12.5,"description":"lunch"}`, "alice"))

	require.Equal(t, http.StatusCreated, response.StatusCode)
	require.Len(t, store.expenses["alice"], 1)

	saved := store.expenses["alice"][0]
	assert.False(t, saved.Id.IsZero())
	assert.Equal(t, "Food", saved.Category)
	assert.Equal(t, 12.5, saved.Amount)
	assert.Equal(t, "lunch", saved.Description)
	assert.Equal(t, "2024-01-15", saved.Date.Format(models.DateLayout))
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	store := newFakeExpenseStore()
	controller := NewCreateExpenseController(store)

	for _, body := range []string{
		`{"date":"2024-01-15","category":"Food","amount":0}`,
		`{"date":"2024-01-15","category":"Food","amount":-5}`,
	} {
		response := controller.Handle(makeRequest(body, "alice"))
		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	}

	assert.Empty(t, store.expenses["alice"])
}

func TestCreateExpenseRejectsBadDate(t *testing.T) {
	store := newFakeExpenseStore()
	controller := NewCreateExpenseController(store)

	response := controller.Handle(makeRequest(
		`{"date":"15-01-2024","category":"Food","amount":10}`, "alice"))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	assert.Empty(t, store.expenses["alice"])
}

func TestGetExpensesKeepsStoredOrder(t *testing.T) {
	store := newFakeExpenseStore()
	first := seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")
	second := seedExpense(store, "alice", "2024-01-10", "Transport", 20, "bus pass")

	controller := NewGetExpensesController(store)
	response := controller.Handle(makeRequest("", "alice"))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var listed []models.Expense
	require.NoError(t, json.NewDecoder(response.Body).Decode(&listed))
	require.Len(t, listed, 2)
	assert.Equal(t, first.Id, listed[0].Id)
	assert.Equal(t, second.Id, listed[1].Id)
}

func TestGetExpensesAppliesFilters(t *testing.T) {
	store := newFakeExpenseStore()
	seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")
	seedExpense(store, "alice", "2024-01-10", "Transport", 20, "bus pass")
	seedExpense(store, "alice", "2024-02-01", "Food", 30, "restaurant")

	controller := NewGetExpensesController(store)

	request := makeRequest("", "alice")
	request.UrlParams.Set("search", "GROCERIES")
	request.UrlParams.Set("category", "Food")

	response := controller.Handle(request)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var listed []models.Expense
	require.NoError(t, json.NewDecoder(response.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "groceries", listed[0].Description)
}

func TestGetExpensesEmptyAccount(t *testing.T) {
	controller := NewGetExpensesController(newFakeExpenseStore())

	response := controller.Handle(makeRequest("", "alice"))

	require.Equal(t, http.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestUpdateExpenseReplacesFields(t *testing.T) {
	store := newFakeExpenseStore()
	existing := seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")

	controller := NewUpdateExpenseController(store)
	response := controller.Handle(makeRequestWithExpenseId(
		`{"date":"2024-01-16","category":"Shopping","amount":75,"description":"clothes"}`,
		"alice", existing.Id.Hex()))

	require.Equal(t, http.StatusOK, response.StatusCode)

	updated := store.expenses["alice"][0]
	assert.Equal(t, existing.Id, updated.Id)
	assert.Equal(t, "Shopping", updated.Category)
	assert.Equal(t, 75.0, updated.Amount)
	assert.Equal(t, "clothes", updated.Description)
	assert.Equal(t, "2024-01-16", updated.Date.Format(models.DateLayout))
}

func TestUpdateExpenseNotFound(t *testing.T) {
	store := newFakeExpenseStore()
	existing := seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")

	controller := NewUpdateExpenseController(store)
	response := controller.Handle(makeRequestWithExpenseId(
		`{"date":"2024-01-16","category":"Shopping","amount":75}`,
		"alice", primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Equal(t, existing, store.expenses["alice"][0])
}

func TestUpdateExpenseInvalidId(t *testing.T) {
	controller := NewUpdateExpenseController(newFakeExpenseStore())

	response := controller.Handle(makeRequestWithExpenseId(
		`{"date":"2024-01-16","category":"Shopping","amount":75}`, "alice", "not-an-id"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDeleteExpenseRemovesExactlyOne(t *testing.T) {
	store := newFakeExpenseStore()
	first := seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")
	second := seedExpense(store, "alice", "2024-01-10", "Transport", 20, "bus pass")

	controller := NewDeleteExpenseController(store)
	response := controller.Handle(makeRequestWithExpenseId("", "alice", first.Id.Hex()))

	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	require.Len(t, store.expenses["alice"], 1)
	assert.Equal(t, second.Id, store.expenses["alice"][0].Id)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	store := newFakeExpenseStore()
	seedExpense(store, "alice", "2024-01-15", "Food", 50, "groceries")

	controller := NewDeleteExpenseController(store)
	response := controller.Handle(makeRequestWithExpenseId("", "alice", primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Len(t, store.expenses["alice"], 1)
}
