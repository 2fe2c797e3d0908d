package main

import (
	"fmt"
	"log"
	"net/http"

	"pokeboard/backend/internal/auth"
	"pokeboard/backend/internal/config"
	"pokeboard/backend/internal/database"
	"pokeboard/backend/internal/game"
	"pokeboard/backend/internal/handler"
	"pokeboard/backend/internal/hub"
	"pokeboard/backend/internal/pokeapi"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "pokeboard/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Pokeboard API
// @version         1.0
// @description     Turn-based multiplayer board game with procedurally generated creature encounters.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	// Connect to the database
	database.Connect(cfg.DatabaseURL)

	// The session registry, broadcast hub and lookup client are created here
	// and passed down explicitly; they live for the whole process.
	api := pokeapi.New(cfg.PokeAPIBaseURL, cfg.LookupCacheSize, cfg.CacheTTL())
	eventHub := hub.NewHub()
	engine := game.NewEngine(
		game.NewRegistry(),
		game.BoardConfig{
			TotalSpaces:     cfg.BoardTotalSpaces,
			GymLeaderCount:  cfg.BoardGymLeaders,
			EliteFourSpaces: cfg.BoardEliteFour,
			MinLevel:        cfg.WildMinLevel,
			MaxLevel:        cfg.WildMaxLevel,
			LevelSpan:       cfg.WildLevelSpan,
		},
		api,
		game.DefaultSource(),
		eventHub,
	)

	authHandler := handler.NewAuthHandler(api)
	gameHandler := handler.NewGameHandler(engine, eventHub, api)
	adminHandler := handler.NewAdminHandler(api)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.RegisterUser)
			authRoutes.POST("/login", authHandler.LoginUser)
			authRoutes.GET("/starters", authHandler.GetStarters)
		}

		// Session routes (protected)
		sessionRoutes := apiV1.Group("/sessions")
		sessionRoutes.Use(auth.AuthMiddleware())
		{
			sessionRoutes.POST("", gameHandler.CreateSession)
			sessionRoutes.GET("", gameHandler.ListSessions)
			sessionRoutes.GET("/:id", gameHandler.GetSession)
			sessionRoutes.POST("/:id/join", gameHandler.JoinSession)
			sessionRoutes.POST("/:id/leave", gameHandler.LeaveSession)
			sessionRoutes.POST("/:id/roll", gameHandler.Roll)
			sessionRoutes.POST("/:id/battle", gameHandler.ResolveBattle)
		}

		// The push channel authenticates through a query token, so it sits
		// outside the header middleware.
		apiV1.GET("/sessions/:id/ws", gameHandler.ServeWS)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.DELETE("/cache", adminHandler.PurgeLookupCache)
			adminRoutes.DELETE("/cache/:key", adminHandler.InvalidateLookupEntry)
		}
	}

	fmt.Printf("Server is running on %s\n", cfg.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(cfg.ServerAddr))
}
