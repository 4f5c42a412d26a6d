package main

import (
	"fmt"
	"log"
	"net/http"

	"batalla/backend/internal/auth"
	"batalla/backend/internal/config"
	"batalla/backend/internal/database"
	"batalla/backend/internal/handler"
	"batalla/backend/internal/notifier"
	"batalla/backend/internal/service"
	"batalla/backend/pkg/token"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "batalla/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Wielka Studencka Batalla API
// @version         1.0
// @description     User accounts, friendships and game invitations for the student game portal.
// @host            localhost:8000
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	db := database.Connect(cfg.DatabaseURL)

	tokens := token.NewService(cfg.JWTSecret)
	users := service.NewUserService(db)
	friends := service.NewFriendshipService(db, users)
	invitations := service.NewInvitationService(db, users, friends)
	resets := service.NewResetService(db, users, mailNotifier(cfg))

	authHandler := handler.NewAuthHandler(users, resets, tokens, cfg)
	userHandler := handler.NewUserHandler(users, friends)
	friendHandler := handler.NewFriendHandler(friends)
	invitationHandler := handler.NewInvitationHandler(invitations)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/verify-token", authHandler.VerifyToken)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/reset-password", authHandler.ResetPassword)

		// Everything below requires a bearer token
		authed := api.Group("")
		authed.Use(auth.AuthMiddleware(tokens, users))
		{
			authed.GET("/me", authHandler.GetMe)
			authed.PUT("/profile", userHandler.UpdateProfile)
			authed.PUT("/avatar", userHandler.UpdateAvatar)
			authed.DELETE("/account", userHandler.DeleteAccount)

			authed.GET("/users/search", userHandler.SearchUsers)

			friendRoutes := authed.Group("/friends")
			{
				friendRoutes.GET("", friendHandler.ListFriends)
				friendRoutes.POST("/request", friendHandler.SendRequest)
				friendRoutes.GET("/requests", friendHandler.ListRequests)
				friendRoutes.POST("/accept/:id", friendHandler.AcceptRequest)
				friendRoutes.POST("/reject/:id", friendHandler.RejectRequest)
				friendRoutes.DELETE("/:id", friendHandler.RemoveFriend)
			}

			invitationRoutes := authed.Group("/game-invitations")
			{
				invitationRoutes.POST("/send", invitationHandler.Send)
				invitationRoutes.GET("/received", invitationHandler.ListReceived)
				invitationRoutes.POST("/accept/:id", invitationHandler.Accept)
				invitationRoutes.POST("/decline/:id", invitationHandler.Decline)
			}
		}
	}

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}

// mailNotifier returns the configured SMTP notifier, or nil so the reset flow
// echoes codes in responses when no mail server is set up.
func mailNotifier(cfg *config.Config) service.Notifier {
	smtp := notifier.NewSMTP(cfg)
	if smtp == nil {
		log.Println("Warning: SMTP not configured, reset codes will be returned in API responses")
		return nil
	}
	return smtp
}
