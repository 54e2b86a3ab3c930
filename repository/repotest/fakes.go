// Package repotest provides in-memory repository fakes for handler and
// cascade tests. Every method bumps a per-method counter so tests can
// assert which store operations ran, and an optional shared Log records
// cross-repository ordering.
package repotest

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

// Log records operations across fakes in call order.
type Log struct {
	Ops []string
}

func (l *Log) record(op string) {
	if l != nil {
		l.Ops = append(l.Ops, op)
	}
}

type counters struct {
	Calls map[string]int
}

func (c *counters) bump(method string) {
	if c.Calls == nil {
		c.Calls = map[string]int{}
	}
	c.Calls[method]++
}

// TotalCalls sums every recorded method invocation.
func (c *counters) TotalCalls() int {
	total := 0
	for _, n := range c.Calls {
		total += n
	}
	return total
}

// ---- Users ----

type FakeUsers struct {
	counters
	Log   *Log
	users map[string]models.User
	ids   []string
}

func NewFakeUsers() *FakeUsers {
	return &FakeUsers{users: map[string]models.User{}}
}

// Seed stores a user directly, assigning an id when absent.
func (f *FakeUsers) Seed(user models.User) models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	id := user.ID.Hex()
	if _, ok := f.users[id]; !ok {
		f.ids = append(f.ids, id)
	}
	f.users[id] = user
	return user
}

func (f *FakeUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.bump("Create")
	f.Log.record("users.Create")
	created := f.Seed(*user)
	return &created, nil
}

func (f *FakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	f.bump("FindByID")
	f.Log.record("users.FindByID")
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (f *FakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.bump("FindByEmail")
	for _, id := range f.ids {
		if user, ok := f.users[id]; ok && user.Email == email {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeUsers) Find(_ context.Context, opts repository.ListOptions) ([]models.User, error) {
	f.bump("Find")
	return paginate(f.collect(), opts.Limit, opts.Skip), nil
}

func (f *FakeUsers) collect() []models.User {
	users := make([]models.User, 0, len(f.ids))
	for _, id := range f.ids {
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	return users
}

func (f *FakeUsers) UpdateByID(_ context.Context, id string, update models.UserUpdate) (*models.User, error) {
	f.bump("UpdateByID")
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	f.users[id] = user
	return &user, nil
}

func (f *FakeUsers) DeleteByID(_ context.Context, id string) error {
	f.bump("DeleteByID")
	f.Log.record("users.DeleteByID")
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// ---- Products ----

type FakeProducts struct {
	counters
	Log      *Log
	products map[string]models.Product
	ids      []string
}

func NewFakeProducts() *FakeProducts {
	return &FakeProducts{products: map[string]models.Product{}}
}

func (f *FakeProducts) Seed(product models.Product) models.Product {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	id := product.ID.Hex()
	if _, ok := f.products[id]; !ok {
		f.ids = append(f.ids, id)
	}
	f.products[id] = product
	return product
}

func (f *FakeProducts) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	f.bump("Create")
	f.Log.record("products.Create")
	created := f.Seed(*product)
	return &created, nil
}

func (f *FakeProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	f.bump("FindByID")
	f.Log.record("products.FindByID")
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (f *FakeProducts) Find(_ context.Context, opts repository.ListOptions) ([]models.Product, error) {
	f.bump("Find")
	products := make([]models.Product, 0, len(f.ids))
	for _, id := range f.ids {
		if product, ok := f.products[id]; ok {
			products = append(products, product)
		}
	}
	return paginate(products, opts.Limit, opts.Skip), nil
}

func (f *FakeProducts) UpdateByID(_ context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	f.bump("UpdateByID")
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.UserRating != nil {
		product.UserRating = update.UserRating
	}
	f.products[id] = product
	return &product, nil
}

func (f *FakeProducts) DeleteByID(_ context.Context, id string) error {
	f.bump("DeleteByID")
	f.Log.record("products.DeleteByID")
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

// ---- Orders ----

type FakeOrders struct {
	counters
	Log    *Log
	orders map[string]models.Order
	ids    []string
}

func NewFakeOrders() *FakeOrders {
	return &FakeOrders{orders: map[string]models.Order{}}
}

func (f *FakeOrders) Seed(order models.Order) models.Order {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	id := order.ID.Hex()
	if _, ok := f.orders[id]; !ok {
		f.ids = append(f.ids, id)
	}
	f.orders[id] = order
	return order
}

func (f *FakeOrders) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	f.bump("Create")
	f.Log.record("orders.Create")
	created := f.Seed(*order)
	return &created, nil
}

func (f *FakeOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	f.bump("FindByID")
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (f *FakeOrders) Find(_ context.Context, opts repository.ListOptions) ([]models.Order, error) {
	f.bump("Find")
	return paginate(f.collect(func(models.Order) bool { return true }), opts.Limit, opts.Skip), nil
}

func (f *FakeOrders) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	f.bump("FindByUser")
	return f.collect(func(o models.Order) bool { return o.User.Hex() == userID }), nil
}

func (f *FakeOrders) FindByProduct(_ context.Context, productID string) ([]models.Order, error) {
	f.bump("FindByProduct")
	return f.collect(func(o models.Order) bool { return references(o, productID) }), nil
}

func (f *FakeOrders) collect(match func(models.Order) bool) []models.Order {
	var orders []models.Order
	for _, id := range f.ids {
		if order, ok := f.orders[id]; ok && match(order) {
			orders = append(orders, order)
		}
	}
	return orders
}

func references(order models.Order, productID string) bool {
	for _, item := range order.Products {
		if item.Product.Hex() == productID {
			return true
		}
	}
	return false
}

func (f *FakeOrders) UpdateByID(_ context.Context, id string, update models.OrderUpdate) (*models.Order, error) {
	f.bump("UpdateByID")
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.User != nil {
		oid, err := primitive.ObjectIDFromHex(*update.User)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		order.User = oid
	}
	if update.Products != nil {
		items := make([]models.OrderItem, 0, len(*update.Products))
		for _, item := range *update.Products {
			oid, err := primitive.ObjectIDFromHex(item.Product)
			if err != nil {
				return nil, repository.ErrNotFound
			}
			items = append(items, models.OrderItem{Product: oid, Quantity: item.Quantity})
		}
		order.Products = items
	}
	if update.TotalAmount != nil {
		order.TotalAmount = *update.TotalAmount
	}
	if update.Status != nil {
		order.Status = models.OrderStatus(*update.Status)
	}
	f.orders[id] = order
	return &order, nil
}

func (f *FakeOrders) DeleteByID(_ context.Context, id string) error {
	f.bump("DeleteByID")
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *FakeOrders) DeleteByUser(_ context.Context, userID string) (int64, error) {
	f.bump("DeleteByUser")
	f.Log.record("orders.DeleteByUser")
	return f.deleteMatching(func(o models.Order) bool { return o.User.Hex() == userID }), nil
}

func (f *FakeOrders) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	f.bump("DeleteByProduct")
	f.Log.record("orders.DeleteByProduct")
	return f.deleteMatching(func(o models.Order) bool { return references(o, productID) }), nil
}

func (f *FakeOrders) deleteMatching(match func(models.Order) bool) int64 {
	var deleted int64
	for _, id := range f.ids {
		if order, ok := f.orders[id]; ok && match(order) {
			delete(f.orders, id)
			deleted++
		}
	}
	return deleted
}

func paginate[T any](items []T, limit, skip int64) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= int64(len(items)) {
		return nil
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}
