package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"extratime/config"
	"extratime/database"
	"extratime/handlers"
	"extratime/logger"
	"extratime/metrics"
	"extratime/middleware"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogPretty)

	middleware.SetJWTSecret(cfg.JWTSecret)

	if err := database.Init(cfg.DatabaseURL, zl); err != nil {
		zl.Fatal().Err(err).Msg("failed to initialize database")
	}

	authHandler := handlers.NewAuthHandler(cfg, zl)
	overtimeHandler := handlers.NewOvertimeHandler(cfg, zl)
	adminHandler := handlers.NewAdminHandler(cfg, zl)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(zl))
	router.Use(metrics.Instrument)

	// Public routes
	router.Post("/api/login", authHandler.Login)
	router.Get("/api/logout", authHandler.Logout)
	router.Handle("/metrics", promhttp.Handler())

	// Authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/api/me", authHandler.Me)
		r.Get("/api/dashboard", overtimeHandler.Dashboard)
		r.Get("/api/reports", overtimeHandler.PersonalReport)

		r.Get("/api/overtime", overtimeHandler.ListRecords)
		r.Post("/api/overtime", overtimeHandler.CreateRecord)
		r.Put("/api/overtime/{id}", overtimeHandler.UpdateRecord)
		r.Delete("/api/overtime/{id}", overtimeHandler.DeleteRecord)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/api/admin/users", adminHandler.ListUsers)
			r.Post("/api/admin/users", adminHandler.CreateUser)
			r.Put("/api/admin/users/{id}", adminHandler.UpdateUser)
			r.Delete("/api/admin/users/{id}", adminHandler.DeleteUser)
			r.Get("/api/admin/overtime", adminHandler.AllRecords)
			r.Get("/api/admin/reports", adminHandler.AdminReport)
			r.Get("/api/admin/export/csv", adminHandler.ExportCSV)
		})
	})

	zl.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		zl.Fatal().Err(err).Msg("server stopped")
	}
}
