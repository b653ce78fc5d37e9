package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/qdryclean/qadmin/internal/server/http/handlers"
	"github.com/qdryclean/qadmin/internal/server/http/middleware"
	"github.com/qdryclean/qadmin/internal/session"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, sessions session.Store, nav *middleware.Navigator, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.ForcedNavigation(nav))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	engine.GET("/login", middleware.RedirectIfAuthenticated(sessions), authHandler.LoginPage)
	engine.POST("/login", middleware.RedirectIfAuthenticated(sessions), authHandler.Login)
	engine.POST("/logout", authHandler.Logout)

	guarded := engine.Group("")
	guarded.Use(middleware.RequireSession(sessions))
	guarded.GET("/dashboard", authHandler.Dashboard)
	guarded.GET("/users", userHandler.List)
	guarded.GET("/orders", orderHandler.List)
	guarded.POST("/orders", orderHandler.Create)
	guarded.POST("/orders/draft", orderHandler.Draft)
	guarded.POST("/orders/search", orderHandler.Search)
	guarded.POST("/orders/page", orderHandler.Page)
	guarded.POST("/orders/refresh", orderHandler.Refresh)
	guarded.POST("/orders/form/open", orderHandler.OpenForm)
	guarded.POST("/orders/form/close", orderHandler.CloseForm)

	return engine
}
