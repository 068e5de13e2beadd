package main

import (
	"log"
	"net/http"
	"os"

	"catalog-api/config"
	"catalog-api/handlers"
	"catalog-api/middleware"
	"catalog-api/repositories"
	"catalog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	modelRepo := repositories.NewModelRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	historyService := services.NewHistoryService(historyRepo)
	defer historyService.Close()
	modelService := services.NewModelService(modelRepo, historyService)
	commentService := services.NewCommentService(commentRepo, modelRepo, contentRepo)
	likeService := services.NewLikeService(likeRepo, modelRepo, contentRepo, historyService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	modelHandler := handlers.NewModelHandler(modelService, commentService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	ageHandler := handlers.NewAgeVerificationHandler()

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Age-Confirmed")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Age verification (public)
		age := v1.Group("/age-verification")
		{
			age.POST("/confirm", ageHandler.ConfirmAge)
			age.GET("/status", ageHandler.GetAgeStatus)
			age.POST("/revoke", ageHandler.RevokeAge)
		}

		// Catalog reads (age-gated, identity optional)
		catalog := v1.Group("/")
		catalog.Use(middleware.AgeVerificationMiddleware(), middleware.OptionalAuthMiddleware())
		{
			catalog.GET("/models", modelHandler.GetModels)
			catalog.GET("/models/:slug", modelHandler.GetModel)
			catalog.GET("/models/:slug/comments", modelHandler.GetModelComments)
			catalog.GET("/contents/:id/comments", commentHandler.GetContentComments)
			catalog.GET("/likes/count", likeHandler.GetLikeCount)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// History
			protected.GET("/history", historyHandler.GetHistory)

			// Comments
			comments := protected.Group("/comments")
			{
				comments.POST("", commentHandler.CreateComment)
				comments.DELETE("/:id", commentHandler.DeleteComment)
				comments.POST("/:id/like", commentHandler.ToggleCommentLike)
			}

			// Likes
			protected.POST("/likes", likeHandler.ToggleLike)

			// Administrative catalog writes
			admin := protected.Group("/models")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("", modelHandler.CreateModel)
				admin.PUT("/:id", modelHandler.UpdateModel)
				admin.DELETE("/:id", modelHandler.DeleteModel)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
