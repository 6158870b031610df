package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/products", catalogHandler.Products)
	api.GET("/products/:productID", catalogHandler.Product)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/cart", cartHandler.List)
	userAuth.POST("/cart", cartHandler.Add)
	userAuth.PATCH("/cart/:productID", cartHandler.UpdateQuantity)
	userAuth.DELETE("/cart/:productID", cartHandler.Remove)
	userAuth.POST("/orders", orderHandler.Checkout)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:orderID", orderHandler.Get)
	userAuth.POST("/orders/:orderID/payments", paymentHandler.Create)
	userAuth.POST("/payments/:paymentID/check", paymentHandler.Check)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(cfg.AdminToken))
	admin.POST("/orders/cancel", adminHandler.Cancel)
	admin.POST("/orders/status", adminHandler.UpdateStatus)
	admin.POST("/products/status", adminHandler.UpdateProductStatus)

	return engine
}
