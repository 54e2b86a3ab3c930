// Command populate wipes and reseeds the sample collections with
// cross-linked users, products, orders and the restaurant lookup data.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/config"
	"github.com/nadirkerem/mongodb-ecommerce-app/models"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

var users = []models.User{
	{Name: "Ada Lovelace", Email: "ada@example.com", Password: "analytical"},
	{Name: "Grace Hopper", Email: "grace@example.com", Password: "compiler"},
	{Name: "Alan Turing", Email: "alan@example.com", Password: "enigma1"},
	{Name: "Katherine Johnson", Email: "katherine@example.com", Password: "trajectory"},
}

var rating = func(v float64) *float64 { return &v }

var products = []models.Product{
	{Name: "Mechanical Keyboard", Price: 129.99, Description: "Tenkeyless board with hot-swappable switches", Category: "Electronics", UserRating: rating(4.5)},
	{Name: "Espresso Grinder", Price: 249.0, Description: "Flat-burr grinder with stepless adjustment", Category: "Kitchen", UserRating: rating(4.8)},
	{Name: "Trail Backpack", Price: 89.5, Description: "30L pack with internal frame and rain cover", Category: "Outdoors"},
	{Name: "Desk Lamp", Price: 39.99, Description: "Adjustable arm lamp with warm dimming", Category: "Furniture", UserRating: rating(4.1)},
	{Name: "Yoga Mat", Price: 24.0, Description: "Non-slip mat, six millimetres thick", Category: "Fitness"},
}

var boroughNames = []string{"Manhattan", "Brooklyn", "Queens", "Bronx", "Staten Island"}
var cuisineNames = []string{"Italian", "Turkish", "Japanese", "Mexican", "American"}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.Database)

	for _, name := range []string{"users", "products", "orders", "boroughs", "cuisines", "restaurants"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("❌ Failed to clear %s: %v", name, err)
		}
	}

	userRepo := repository.NewUsers(db)
	productRepo := repository.NewProducts(db)
	orderRepo := repository.NewOrders(db)

	var seededUsers []models.User
	for i := range users {
		created, err := userRepo.Create(ctx, &users[i])
		if err != nil {
			log.Fatalf("❌ Failed to seed user: %v", err)
		}
		seededUsers = append(seededUsers, *created)
	}

	var seededProducts []models.Product
	for i := range products {
		created, err := productRepo.Create(ctx, &products[i])
		if err != nil {
			log.Fatalf("❌ Failed to seed product: %v", err)
		}
		seededProducts = append(seededProducts, *created)
	}

	// Orders reference a random user and one or two random products.
	for i := 0; i < 10; i++ {
		user := seededUsers[rand.Intn(len(seededUsers))]
		items := []models.OrderItem{}
		total := 0.0
		for j := 0; j < 1+rand.Intn(2); j++ {
			product := seededProducts[rand.Intn(len(seededProducts))]
			quantity := 1 + rand.Intn(3)
			items = append(items, models.OrderItem{Product: product.ID, Quantity: quantity})
			total += product.Price * float64(quantity)
		}
		order := models.Order{
			User:        user.ID,
			Products:    items,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now().UTC().Add(-time.Duration(rand.Intn(72)) * time.Hour),
		}
		if _, err := orderRepo.Create(ctx, &order); err != nil {
			log.Fatalf("❌ Failed to seed order: %v", err)
		}
	}

	boroughIDs := seedNames(ctx, db, "boroughs", boroughNames)
	cuisineIDs := seedNames(ctx, db, "cuisines", cuisineNames)

	restaurantRepo := repository.NewRestaurants(db)
	for i := 0; i < 8; i++ {
		restaurant := models.Restaurant{
			Address: models.Address{
				Building: "100",
				Coord:    []float64{-73.98 + rand.Float64(), 40.71 + rand.Float64()},
				Street:   "Main Street",
				Zipcode:  "10001",
			},
			Borough: boroughIDs[rand.Intn(len(boroughIDs))],
			Cuisine: cuisineIDs[rand.Intn(len(cuisineIDs))],
			Grades: []models.Grade{
				{Date: time.Now().UTC().AddDate(0, -rand.Intn(12), 0), Grade: "A", Score: rand.Intn(15)},
			},
			Name:         "Sample Restaurant",
			RestaurantID: uuid.NewString(),
		}
		if _, err := restaurantRepo.Create(ctx, &restaurant); err != nil {
			log.Fatalf("❌ Failed to seed restaurant: %v", err)
		}
	}

	log.Println("✅ Data populated successfully")
}

func seedNames(ctx context.Context, db *mongo.Database, collection string, names []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		result, err := db.Collection(collection).InsertOne(ctx, bson.M{"name": name})
		if err != nil {
			log.Fatalf("❌ Failed to seed %s: %v", collection, err)
		}
		ids = append(ids, result.InsertedID.(primitive.ObjectID))
	}
	return ids
}
