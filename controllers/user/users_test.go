package userControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadirkerem/mongodb-ecommerce-app/cascade"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository/repotest"
	"github.com/nadirkerem/mongodb-ecommerce-app/routes"
)

type fixture struct {
	users    *repotest.FakeUsers
	products *repotest.FakeProducts
	orders   *repotest.FakeOrders
	router   *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		users:    repotest.NewFakeUsers(),
		products: repotest.NewFakeProducts(),
		orders:   repotest.NewFakeOrders(),
	}
	f.router = gin.New()
	routes.SetupRoutes(f.router, routes.Deps{
		Users:    f.users,
		Products: f.products,
		Orders:   f.orders,
		Cascade:  cascade.NewCoordinator(f.users, f.products, f.orders),
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload gin.H
		wantMsg string
	}{
		{"short name", gin.H{"name": "Al", "email": "al@example.com", "password": "secret1"}, "Name must be at least 3 characters long"},
		{"bad email", gin.H{"name": "Alan Turing", "email": "not-an-email", "password": "secret1"}, "Invalid email format"},
		{"short password", gin.H{"name": "Alan Turing", "email": "alan@example.com", "password": "12345"}, "Password must be at least 6 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			w := f.do(t, http.MethodPost, "/api/users", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotEmpty(t, body["errors"])
			assert.Zero(t, f.users.Calls["Create"])
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture()
	f.users.Seed(models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1"})

	w := f.do(t, http.MethodPost, "/api/users", gin.H{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "secret2",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decode(t, w)["message"])
	assert.Zero(t, f.users.Calls["Create"])
}

func TestCreateUserRoundTrip(t *testing.T) {
	f := newFixture()

	created := f.do(t, http.MethodPost, "/api/users", gin.H{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id, ok := decode(t, created)["_id"].(string)
	require.True(t, ok)

	fetched := f.do(t, http.MethodGet, "/api/users/"+id, nil)
	require.Equal(t, http.StatusOK, fetched.Code)
	body := decode(t, fetched)
	assert.Equal(t, "Ada Lovelace", body["name"])
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, id, body["_id"])
}

func TestGetUsersEmptyReportsNotFound(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No users found", decode(t, w)["message"])
}

func TestGetUsersNegativeSkipFallsBackToStart(t *testing.T) {
	f := newFixture()
	f.users.Seed(models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1"})

	w := f.do(t, http.MethodGet, "/api/users?skip=-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture()
	user := f.users.Seed(models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1"})

	t.Run("no fields", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/users/"+user.ID.Hex(), gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "At least one field must be provided", decode(t, w)["message"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		f.users.Seed(models.User{Name: "Grace Hopper", Email: "grace@example.com", Password: "secret1"})
		w := f.do(t, http.MethodPut, "/api/users/"+user.ID.Hex(), gin.H{"email": "grace@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", decode(t, w)["message"])
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/users/"+user.ID.Hex(), gin.H{"email": "ada@example.com"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("partial merge", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/users/"+user.ID.Hex(), gin.H{"name": "Ada King"})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Ada King", body["name"])
		assert.Equal(t, "ada@example.com", body["email"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/users/"+primitive.NewObjectID().Hex(), gin.H{"name": "Nobody Here"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decode(t, w)["message"])
	})
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture()
	user := f.users.Seed(models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1"})
	product := f.products.Seed(models.Product{Name: "Desk Lamp", Price: 10, Description: "A fine description", Category: "Misc"})
	first := f.orders.Seed(models.Order{User: user.ID, Products: []models.OrderItem{{Product: product.ID, Quantity: 1}}, TotalAmount: 10, Status: models.OrderStatusPending})
	second := f.orders.Seed(models.Order{User: user.ID, Products: []models.OrderItem{{Product: product.ID, Quantity: 2}}, TotalAmount: 20, Status: models.OrderStatusShipped})

	w := f.do(t, http.MethodDelete, "/api/users/"+user.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", decode(t, w)["message"])

	// The user's orders no longer resolve individually or by user query.
	for _, order := range []models.Order{first, second} {
		resp := f.do(t, http.MethodGet, "/api/orders/"+order.ID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	}
	byUser := f.do(t, http.MethodGet, "/api/orders/user/"+user.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, byUser.Code)
	assert.Equal(t, "User not found", decode(t, byUser)["message"])
}

func TestDeleteUserTwiceReportsNotFound(t *testing.T) {
	f := newFixture()
	user := f.users.Seed(models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "secret1"})

	first := f.do(t, http.MethodDelete, "/api/users/"+user.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := f.do(t, http.MethodDelete, "/api/users/"+user.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, "User not found", decode(t, second)["message"])
}
