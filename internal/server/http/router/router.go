package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/polkiloo/foodorder/internal/server/http/handlers"
	"github.com/polkiloo/foodorder/internal/server/http/middleware"
)

// Params collects router dependencies.
type Params struct {
	fx.In

	Facade   handlers.OrderingFacade
	Logger   *slog.Logger
	Observer middleware.RequestObserver
	Gatherer prometheus.Gatherer
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Observer))
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(p.Facade)
	menuHandler := handlers.NewMenuHandler(p.Facade)
	staffHandler := handlers.NewStaffHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	engine.POST("/place_order", orderHandler.Place)
	engine.GET("/order_confirmation/:number", orderHandler.Confirmation)
	engine.GET("/api/display/orders", orderHandler.Display)
	engine.GET("/api/menu_items", menuHandler.Active)
	engine.POST("/staff/login", staffHandler.Login)
	engine.POST("/staff/logout", staffHandler.Logout)

	staff := engine.Group("")
	staff.Use(middleware.StaffRequired(p.Facade))
	staff.POST("/update_order_status", orderHandler.UpdateStatusForm)
	staff.POST("/orders/:id/status", orderHandler.UpdateStatus)
	staff.GET("/api/orders", orderHandler.Active)
	staff.GET("/order_history", orderHandler.History)

	admin := staff.Group("/admin/menu")
	admin.GET("", menuHandler.All)
	admin.POST("", menuHandler.Create)
	admin.PUT("/:id", menuHandler.Update)
	admin.POST("/:id/toggle", menuHandler.Toggle)
	admin.DELETE("/:id", menuHandler.Delete)

	return engine
}
