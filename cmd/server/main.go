package main

import (
	"log"
	"net/http"

	_ "classboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"classboard/internal/cache"
	"classboard/internal/config"
	"classboard/internal/gateway"
	"classboard/internal/handler"
	"classboard/internal/router"
	"classboard/internal/service"
	"classboard/internal/session"
)

// @title Classboard API
// @version 1.0
// @description Web front end for the classroom scheduler: teachers create tasks and events, students see a combined calendar and deadline notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	backend := gateway.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize session components
	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	store := session.NewStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(backend, tokens, store)
	itemService := service.NewItemService(backend)
	dashboardService := service.NewDashboardService(backend)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieSecure, cfg.SessionTTL)
	itemHandler := handler.NewItemHandler(itemService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokens,
		store,
		authHandler,
		itemHandler,
		dashboardHandler,
	)

	log.Printf("Using scheduling backend at %s", cfg.BackendBaseURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
