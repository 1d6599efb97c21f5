package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-service/internal/cache"
	"storefront-service/internal/config"
	"storefront-service/internal/controller"
	"storefront-service/internal/middleware"
	"storefront-service/internal/rabbit"
	"storefront-service/internal/repository"
	"storefront-service/internal/service"
	"storefront-service/internal/session"
	"storefront-service/internal/token"
)

func main() {
	cfg := config.Load()

	// MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// RabbitMQ connection
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("error opening RabbitMQ channel: %v", err)
	}
	publisher, err := rabbit.NewPublisher(ch)
	if err != nil {
		log.Fatalf("error declaring order exchange: %v", err)
	}

	// Repositories
	orderRepo := repository.NewMongoOrderRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	wishlistRepo := repository.NewMongoWishlistRepository(db)
	settingsRepo := repository.NewMongoSettingsRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("error creating indexes: %v", err)
	}

	// Shared services
	readCache := cache.New(cfg.CacheSize, cfg.CacheTTL)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	sessions := session.NewClient(cfg.SessionURL)

	authService := service.NewAuthService(userRepo, tokens)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, settingsRepo, publisher)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, readCache)
	cartService := service.NewCartService(cartRepo, productRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo, readCache)

	// Handlers
	authCtl := controller.NewAuthController(authService, cfg.TokenTTL, cfg.IsProduction())
	orderCtl := controller.NewOrderController(orderService)
	catalogCtl := controller.NewCatalogController(catalogService)
	cartCtl := controller.NewCartController(cartService)
	wishlistCtl := controller.NewWishlistController(wishlistService)
	settingsCtl := controller.NewSettingsController(settingsService)

	// Router
	r := gin.Default()

	// Public routes
	r.POST("/auth/register", authCtl.Register)
	r.POST("/auth/login", authCtl.Login)
	r.POST("/auth/oauth", authCtl.OAuth)
	r.POST("/auth/logout", authCtl.Logout)
	r.GET("/products", catalogCtl.ListProducts)
	r.GET("/products/:id", catalogCtl.GetProduct)
	r.GET("/categories", catalogCtl.ListCategories)
	r.GET("/settings", settingsCtl.Get)

	// Protected routes (require a resolved principal)
	auth := r.Group("/")
	auth.Use(middleware.Auth(
		&middleware.SessionResolver{Client: sessions},
		&middleware.TokenResolver{Manager: tokens},
	))

	auth.GET("/auth/me", authCtl.Me)
	auth.GET("/cart", cartCtl.Get)
	auth.POST("/cart/items", cartCtl.AddItem)
	auth.PUT("/cart/items/:productId", cartCtl.UpdateItem)
	auth.DELETE("/cart/items/:productId", cartCtl.RemoveItem)
	auth.DELETE("/cart", cartCtl.Clear)
	auth.POST("/checkout", orderCtl.Checkout)
	auth.GET("/orders/mine", orderCtl.GetMyOrders)
	auth.GET("/orders/:orderId", orderCtl.GetOrder)
	auth.POST("/orders/:orderId/pay", orderCtl.PayOrder)
	auth.GET("/wishlist", wishlistCtl.Get)
	auth.POST("/wishlist/items", wishlistCtl.Add)
	auth.DELETE("/wishlist/items/:productId", wishlistCtl.Remove)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(middleware.AdminOnly())
	admin.GET("/orders", orderCtl.GetAllOrders)
	admin.GET("/orders/status/:status", orderCtl.GetOrdersByStatus)
	admin.PATCH("/orders/:orderId/status", orderCtl.UpdateStatus)
	admin.POST("/products", catalogCtl.CreateProduct)
	admin.PUT("/products/:id", catalogCtl.UpdateProduct)
	admin.DELETE("/products/:id", catalogCtl.DeleteProduct)
	admin.POST("/categories", catalogCtl.CreateCategory)
	admin.PUT("/categories/:id", catalogCtl.UpdateCategory)
	admin.DELETE("/categories/:id", catalogCtl.DeleteCategory)
	admin.PUT("/settings", settingsCtl.Update)

	rabbit.SetupConsumers(ch, orderService)

	log.Printf("Storefront service listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
