package main

import (
	"github.com/gin-gonic/gin"
	"github.com/haojie/dochub-api/internal/cache"
	"github.com/haojie/dochub-api/internal/config"
	"github.com/haojie/dochub-api/internal/database"
	"github.com/haojie/dochub-api/internal/handlers"
	"github.com/haojie/dochub-api/internal/logger"
	"github.com/haojie/dochub-api/internal/middleware"
	"github.com/haojie/dochub-api/internal/repository"
	"github.com/haojie/dochub-api/internal/response"
	"github.com/haojie/dochub-api/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.GinMode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalw("failed to run migrations", "error", err)
	}

	rdb, err := cache.Connect(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}
	defer rdb.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	docRepo := repository.NewDocRepository(db)

	// Services
	verification := services.NewVerificationService(rdb, cfg.VerificationCodeTTL)
	mailer := services.NewMailer(cfg)
	tokens := services.NewTokenService(cfg)
	authService := services.NewAuthService(userRepo, verification, mailer, tokens, cfg.SuperUsers)
	projectService := services.NewProjectService(projectRepo, userRepo)
	docService := services.NewDocService(docRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	docHandler := handlers.NewDocHandler(docService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorw("panic recovered", "error", recovered)
		response.InternalError(c)
		c.Abort()
	}))
	r.NoRoute(response.NoRoute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/email", authHandler.SendEmailCode)
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		project := api.Group("/project")
		project.Use(middleware.RequireAuth(tokens))
		{
			project.GET("/list", projectHandler.List)
			project.POST("/create", projectHandler.Create)
			project.GET("/viewers", projectHandler.ListViewerCandidates)
			project.PUT("/update/viewers/:project_id", projectHandler.UpdateViewers)
		}

		doc := api.Group("/doc")
		doc.Use(middleware.RequireAuth(tokens))
		{
			doc.GET("/list", docHandler.List)
		}
	}

	logger.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("failed to start server", "error", err)
	}
}
