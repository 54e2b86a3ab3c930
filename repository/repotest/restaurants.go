package repotest

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

type FakeRestaurants struct {
	counters
	restaurants map[string]models.Restaurant
	ids         []string
}

func NewFakeRestaurants() *FakeRestaurants {
	return &FakeRestaurants{restaurants: map[string]models.Restaurant{}}
}

func (f *FakeRestaurants) Seed(restaurant models.Restaurant) models.Restaurant {
	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	id := restaurant.ID.Hex()
	if _, ok := f.restaurants[id]; !ok {
		f.ids = append(f.ids, id)
	}
	f.restaurants[id] = restaurant
	return restaurant
}

func (f *FakeRestaurants) Create(_ context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	f.bump("Create")
	created := f.Seed(*restaurant)
	return &created, nil
}

func (f *FakeRestaurants) FindByID(_ context.Context, id string) (*models.Restaurant, error) {
	f.bump("FindByID")
	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &restaurant, nil
}

func (f *FakeRestaurants) Find(_ context.Context, limit int64) ([]models.Restaurant, error) {
	f.bump("Find")
	restaurants := make([]models.Restaurant, 0, len(f.ids))
	for _, id := range f.ids {
		if restaurant, ok := f.restaurants[id]; ok {
			restaurants = append(restaurants, restaurant)
		}
	}
	return paginate(restaurants, limit, 0), nil
}

func (f *FakeRestaurants) UpdateByID(_ context.Context, id string, update models.RestaurantUpdate) (*models.Restaurant, error) {
	f.bump("UpdateByID")
	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Address != nil {
		restaurant.Address = *update.Address
	}
	if update.Borough != nil {
		oid, err := primitive.ObjectIDFromHex(*update.Borough)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		restaurant.Borough = oid
	}
	if update.Cuisine != nil {
		oid, err := primitive.ObjectIDFromHex(*update.Cuisine)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		restaurant.Cuisine = oid
	}
	if update.Grades != nil {
		restaurant.Grades = *update.Grades
	}
	if update.Name != nil {
		restaurant.Name = *update.Name
	}
	if update.RestaurantID != nil {
		restaurant.RestaurantID = *update.RestaurantID
	}
	f.restaurants[id] = restaurant
	return &restaurant, nil
}

func (f *FakeRestaurants) DeleteByID(_ context.Context, id string) error {
	f.bump("DeleteByID")
	if _, ok := f.restaurants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.restaurants, id)
	return nil
}

// FakeBoroughs and FakeCuisines mirror the read-only lookup collections.

type FakeBoroughs struct {
	counters
	boroughs map[string]models.Borough
}

func NewFakeBoroughs() *FakeBoroughs {
	return &FakeBoroughs{boroughs: map[string]models.Borough{}}
}

func (f *FakeBoroughs) Seed(borough models.Borough) models.Borough {
	if borough.ID.IsZero() {
		borough.ID = primitive.NewObjectID()
	}
	f.boroughs[borough.ID.Hex()] = borough
	return borough
}

func (f *FakeBoroughs) FindByID(_ context.Context, id string) (*models.Borough, error) {
	f.bump("FindByID")
	borough, ok := f.boroughs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &borough, nil
}

type FakeCuisines struct {
	counters
	cuisines map[string]models.Cuisine
}

func NewFakeCuisines() *FakeCuisines {
	return &FakeCuisines{cuisines: map[string]models.Cuisine{}}
}

func (f *FakeCuisines) Seed(cuisine models.Cuisine) models.Cuisine {
	if cuisine.ID.IsZero() {
		cuisine.ID = primitive.NewObjectID()
	}
	f.cuisines[cuisine.ID.Hex()] = cuisine
	return cuisine
}

func (f *FakeCuisines) FindByID(_ context.Context, id string) (*models.Cuisine, error) {
	f.bump("FindByID")
	cuisine, ok := f.cuisines[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &cuisine, nil
}
