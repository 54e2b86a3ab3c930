package restaurantControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	restaurants *repotest.FakeRestaurants
	boroughs    *repotest.FakeBoroughs
	cuisines    *repotest.FakeCuisines
	router      *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	users := repotest.NewFakeUsers()
	products := repotest.NewFakeProducts()
	orders := repotest.NewFakeOrders()
	f := &fixture{
		restaurants: repotest.NewFakeRestaurants(),
		boroughs:    repotest.NewFakeBoroughs(),
		cuisines:    repotest.NewFakeCuisines(),
	}
	f.router = gin.New()
	routes.SetupRoutes(f.router, routes.Deps{
		Users:       users,
		Products:    products,
		Orders:      orders,
		Restaurants: f.restaurants,
		Boroughs:    f.boroughs,
		Cuisines:    f.cuisines,
		Cascade:     cascade.NewCoordinator(users, products, orders),
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

func sampleAddress() models.Address {
	return models.Address{Building: "1480", Coord: []float64{-73.9557, 40.7720}, Street: "2 Avenue", Zipcode: "10075"}
}

func (f *fixture) seedRestaurant(name string) (models.Restaurant, models.Borough, models.Cuisine) {
	borough := f.boroughs.Seed(models.Borough{Name: "Manhattan"})
	cuisine := f.cuisines.Seed(models.Cuisine{Name: "Italian"})
	restaurant := f.restaurants.Seed(models.Restaurant{
		Address:      sampleAddress(),
		Borough:      borough.ID,
		Cuisine:      cuisine.ID,
		Grades:       []models.Grade{{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Grade: "A", Score: 11}},
		Name:         name,
		RestaurantID: "41704620",
	})
	return restaurant, borough, cuisine
}

func TestGetRestaurantByIDExpandsReferences(t *testing.T) {
	f := newFixture()
	restaurant, borough, cuisine := f.seedRestaurant("Vella")

	w := f.do(t, http.MethodGet, "/api/restaurants/"+restaurant.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Vella", body["name"])

	embeddedBorough, ok := body["borough"].(map[string]any)
	require.True(t, ok, "borough reference should expand to a document")
	assert.Equal(t, borough.Name, embeddedBorough["name"])

	embeddedCuisine, ok := body["cuisine"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, cuisine.Name, embeddedCuisine["name"])
}

func TestGetRestaurantsEmptyReportsNotFound(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/restaurants", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No restaurants found", decode(t, w)["message"])
}

func TestCreateRestaurant(t *testing.T) {
	f := newFixture()
	borough := f.boroughs.Seed(models.Borough{Name: "Brooklyn"})
	cuisine := f.cuisines.Seed(models.Cuisine{Name: "Bakery"})

	t.Run("missing required field", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/restaurants", gin.H{"name": "Morris Park Bake Shop"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, f.restaurants.Calls["Create"])
	})

	t.Run("malformed borough id", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/restaurants", gin.H{
			"address":       sampleAddress(),
			"borough":       "not-a-hex-id",
			"cuisine":       cuisine.ID.Hex(),
			"grades":        []gin.H{{"date": "2024-03-01T00:00:00Z", "grade": "A", "score": 2}},
			"name":          "Morris Park Bake Shop",
			"restaurant_id": "30075445",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid borough id", decode(t, w)["message"])
		assert.Zero(t, f.restaurants.Calls["Create"])
	})

	t.Run("created", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/restaurants", gin.H{
			"address":       sampleAddress(),
			"borough":       borough.ID.Hex(),
			"cuisine":       cuisine.ID.Hex(),
			"grades":        []gin.H{{"date": "2024-03-01T00:00:00Z", "grade": "A", "score": 2}},
			"name":          "Morris Park Bake Shop",
			"restaurant_id": "30075445",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Morris Park Bake Shop", body["name"])
		assert.NotEmpty(t, body["_id"])
	})
}

func TestUpdateRestaurant(t *testing.T) {
	f := newFixture()
	restaurant, _, _ := f.seedRestaurant("Vella")

	t.Run("no fields", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/restaurants/"+restaurant.ID.Hex(), gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "At least one field must be provided", decode(t, w)["message"])
	})

	t.Run("rename", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/restaurants/"+restaurant.ID.Hex(), gin.H{"name": "Vella Uptown"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Vella Uptown", decode(t, w)["name"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w := f.do(t, http.MethodPut, "/api/restaurants/"+primitive.NewObjectID().Hex(), gin.H{"name": "Nobody"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Restaurant not found", decode(t, w)["message"])
	})
}

func TestDeleteRestaurantTwice(t *testing.T) {
	f := newFixture()
	restaurant, _, _ := f.seedRestaurant("Vella")

	first := f.do(t, http.MethodDelete, "/api/restaurants/"+restaurant.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "Restaurant deleted successfully", decode(t, first)["message"])

	second := f.do(t, http.MethodDelete, "/api/restaurants/"+restaurant.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, "Restaurant not found", decode(t, second)["message"])
}
