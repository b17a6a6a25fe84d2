package routes

import (
	"time"

	"Courtside/controllers"
	redisclient "Courtside/services/redis"
	"Courtside/store"
	utils "Courtside/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redisclient.RedisClient) {
	// Stores are built once here and injected; nothing reaches for a
	// global handle.
	lobbies := store.NewGormLobbyStore(db)
	players := store.NewGormPlayerStore(db)
	clubs := store.NewGormClubStore(db)

	lobbyController := &controllers.LobbyController{Lobbies: lobbies, Players: players, Cache: redisClient}
	playerController := &controllers.PlayerController{Players: players}
	clubController := &controllers.ClubController{Clubs: clubs}
	healthController := &controllers.HealthController{
		DB:        db,
		Cache:     redisClient,
		Version:   "1.0",
		StartedAt: time.Now(),
	}

	// utils global
	router.Use(utils.Logger())
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	health := api.Group("/health")
	{
		health.GET("", healthController.GetHealth)
		health.GET("/ready", healthController.GetReadiness)
		health.GET("/live", healthController.GetLiveness)
	}

	lobbiesGroup := api.Group("/lobbies")
	{
		lobbiesGroup.POST("", lobbyController.CreateLobby)
		lobbiesGroup.GET("", lobbyController.ListLobbies)
		lobbiesGroup.GET("/:id", lobbyController.GetLobbyByID)
		lobbiesGroup.GET("/player/:playerId", lobbyController.GetLobbiesByPlayer)
		lobbiesGroup.POST("/:id/join", lobbyController.JoinLobby)
		lobbiesGroup.POST("/:id/leave", lobbyController.LeaveLobby)
		lobbiesGroup.DELETE("/:id", lobbyController.DeleteLobby)
	}

	playersGroup := api.Group("/players")
	{
		playersGroup.POST("", playerController.CreatePlayer)
		playersGroup.GET("", playerController.ListPlayers)
		playersGroup.GET("/:id", playerController.GetPlayer)
		playersGroup.PUT("/:id", playerController.UpdatePlayer)
		playersGroup.DELETE("/:id", playerController.DeletePlayer)
	}

	clubsGroup := api.Group("/clubs")
	{
		clubsGroup.POST("", clubController.CreateClub)
		clubsGroup.GET("", clubController.ListClubs)
		clubsGroup.GET("/:id", clubController.GetClub)
		clubsGroup.PUT("/:id", clubController.UpdateClub)
		clubsGroup.DELETE("/:id", clubController.DeleteClub)
	}
}
