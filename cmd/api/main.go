package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobook-vn/jobook-api/internal/config"
	"github.com/jobook-vn/jobook-api/internal/database"
	"github.com/jobook-vn/jobook-api/internal/handlers"
	"github.com/jobook-vn/jobook-api/internal/middleware"
	"github.com/jobook-vn/jobook-api/internal/models"
	"github.com/jobook-vn/jobook-api/internal/repository"
	"github.com/jobook-vn/jobook-api/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	// Storage: Postgres by default, the seeded in-memory store in demo mode.
	var store *repository.Store
	if cfg.DemoMode {
		log.Info().Msg("demo mode: using seeded in-memory store")
		store = repository.NewMemoryStore()
		if err := repository.Seed(store); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	} else {
		db, err := database.Connect(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		store = repository.NewGormStore(db)
	}

	// Core services.
	insightService := services.NewInsightService(context.Background(), cfg.GeminiAPIKey)
	if insightService.Enabled() {
		log.Info().Msg("AI application summaries enabled")
	}
	authService := services.NewAuthService(store.Users, cfg.JWTSecret)
	applicationService := services.NewApplicationService(store, insightService)
	cvService := services.NewCVService(store)
	employerService := services.NewEmployerService(store, cfg.EnforcePipeline)

	// Handlers.
	authHandler := handlers.NewAuthHandler(authService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	cvHandler := handlers.NewCVHandler(cvService)
	employerHandler := handlers.NewEmployerHandler(employerService)

	// Router and CORS.
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PUT("/auth/profile", authHandler.UpdateProfile)
	}

	seeker := authed.Group("")
	seeker.Use(middleware.RequireRole(models.RoleSeeker))
	{
		seeker.GET("/applications", applicationHandler.List)
		seeker.GET("/applications/stats", applicationHandler.Stats)
		seeker.POST("/posts/:id/apply", applicationHandler.Apply)
		seeker.DELETE("/applications/:id", applicationHandler.Withdraw)
		seeker.PUT("/applications/:id/cv", applicationHandler.SwapCV)
		seeker.PUT("/applications/:id/note", applicationHandler.EditNote)

		seeker.GET("/cvs", cvHandler.List)
		seeker.POST("/cvs", cvHandler.Upload)
		seeker.PUT("/cvs/:id/default", cvHandler.SetDefault)
		seeker.DELETE("/cvs/:id", cvHandler.Delete)
	}

	employer := authed.Group("/employer")
	employer.Use(middleware.RequireRole(models.RoleEmployer))
	{
		employer.GET("/posts", employerHandler.MyPosts)
		employer.POST("/posts", employerHandler.CreatePost)
		employer.GET("/posts/:id", employerHandler.GetPost)
		employer.PUT("/posts/:id", employerHandler.UpdatePost)
		employer.DELETE("/posts/:id", employerHandler.DeletePost)
		employer.GET("/posts/:id/applications", employerHandler.PostApplications)

		employer.GET("/applications", employerHandler.SearchApplications)
		employer.GET("/applications/:id", employerHandler.GetApplication)
		employer.PUT("/applications/:id/status", employerHandler.UpdateStatus)
		employer.PUT("/applications/:id/notes", employerHandler.UpdateNotes)
		employer.GET("/applications/:id/history", employerHandler.StatusHistory)

		employer.GET("/dashboard", employerHandler.Dashboard)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
