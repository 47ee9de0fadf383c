package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/server/http/handlers"
	"github.com/tsogoo/minimart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	couponHandler := handlers.NewCouponHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/balance", balanceHandler.Summary)
	userAuth.POST("/balance/topup", balanceHandler.TopUp)
	userAuth.POST("/orders", orderHandler.Place)
	userAuth.GET("/orders", orderHandler.List)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.RequireRole(facade, model.RoleAdmin))
	admin.POST("/products", catalogHandler.Add)
	admin.DELETE("/products/:id", catalogHandler.Delete)
	admin.POST("/coupons", couponHandler.Add)
	admin.GET("/coupons", couponHandler.List)

	return engine
}
