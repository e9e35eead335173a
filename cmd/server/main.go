package main

import (
	"log"
	"os"

	"kesha-shop/internal/controllers/http"
	"kesha-shop/internal/infra/rabbitmq"
	"kesha-shop/internal/infra/sqlite"
	"kesha-shop/internal/repository/slot"
	"kesha-shop/internal/services"
	"kesha-shop/internal/storage/gormstore"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	db, err := sqlite.NewSQLiteFromEnv()
	if err != nil {
		log.Fatalf("db: open: %v", err)
	}

	store := gormstore.New(db)

	users := slot.NewUserRepository(store)
	products := slot.NewProductRepository(store)
	cart := slot.NewCartRepository(store)
	orders := slot.NewOrderRepository(store)
	session := slot.NewSessionRepository(store)
	settings := slot.NewSettingsRepository(store)

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		pub, err := rabbitmq.NewPublisher(url, "order.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	identity := services.NewIdentityService(users, session, services.AdminCredentials{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", "admin"),
	})
	productSvc := services.NewProductService(products)
	cartSvc := services.NewCartService(cart)
	orderSvc := services.NewOrderService(orders, cart, publisher)
	settingsSvc := services.NewSettingsService(settings)

	var redisClient *redis.Client
	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: host + ":6379",
			DB:   0,
		})
	}

	handler := http.NewHandler(identity, productSvc, cartSvc, orderSvc, settingsSvc, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := getEnv("PORT", "8080")

	log.Printf("Starting kesha-shop on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
