package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadirkerem/mongodb-ecommerce-app/cascade"
	"github.com/nadirkerem/mongodb-ecommerce-app/config"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
	"github.com/nadirkerem/mongodb-ecommerce-app/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	db := initDatabase(cfg)

	users := repository.NewUsers(db)
	products := repository.NewProducts(db)
	orders := repository.NewOrders(db)

	deps := routes.Deps{
		Users:       users,
		Products:    products,
		Orders:      orders,
		Restaurants: repository.NewRestaurants(db),
		Boroughs:    repository.NewBoroughs(db),
		Cuisines:    repository.NewCuisines(db),
		Cascade:     cascade.NewCoordinator(users, products, orders),
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase connects to MongoDB and creates the product indexes.
func initDatabase(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ DB ping failed: %v", err)
	}
	log.Println("✅ Connected to MongoDB")

	db := client.Database(cfg.Database)

	// Ascending price, descending userRating
	_, err = db.Collection("products").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "userRating", Value: -1}}},
	})
	if err != nil {
		log.Fatalf("❌ Index creation failed: %v", err)
	}
	log.Println("✅ Indexes created")

	return db
}
