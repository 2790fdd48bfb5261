package main

import (
	"log"
	"time"

	"wewilldo-be/internal/config"
	"wewilldo-be/internal/controllers"
	"wewilldo-be/internal/database"
	"wewilldo-be/internal/jwt"
	"wewilldo-be/internal/middleware"
	"wewilldo-be/internal/password"
	"wewilldo-be/internal/repository"
	"wewilldo-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Initialize password hasher and JWT service
	hasher := password.NewHasher(cfg.BcryptCost)
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	todoService := service.NewTodoService(todoRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	todoController := controllers.NewTodoController(todoService)

	// Create a Gin router
	router := gin.Default()

	// CORS for the frontend origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "WeWillDo API is running!",
		})
	})

	// API routes group
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require JWT authentication
		todos := api.Group("/todos")
		todos.Use(middleware.AuthMiddleware(jwtService))
		{
			todos.GET("", todoController.GetTodos)
			todos.GET("/pending", todoController.GetTodosPending)
			todos.GET("/completed", todoController.GetTodosCompleted)
			todos.POST("", todoController.CreateTodo)
			todos.PUT("/:id", todoController.UpdateTodo)
			todos.DELETE("/:id", todoController.DeleteTodo)
		}
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
