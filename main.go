package main

import (
	"log"
	"net/http"
	"os"

	"blogapi/config"
	"blogapi/handlers"
	"blogapi/helper"
	"blogapi/middleware"
	"blogapi/repositories"
	"blogapi/services"

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
	jwtConfig := config.LoadJWT()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(jwtConfig)
	authService := services.NewAuthService(userRepo, tokenService)
	categoryService := services.NewCategoryService(categoryRepo)
	postService := services.NewPostService(postRepo, categoryRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, httpHelper)

	// Setup router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

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

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.Auth(tokenService))
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Categories
			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			// Posts
			posts := protected.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.GET("", postHandler.GetPosts)
				posts.GET("/:id", postHandler.GetPost)
				posts.PUT("/:id", postHandler.UpdatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
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
