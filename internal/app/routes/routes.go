package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gradchat/gradchat/internal/app/controllers"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/middleware"
	"github.com/gradchat/gradchat/internal/pkg/metrics"
	"github.com/gradchat/gradchat/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	feedController *controllers.FeedController,
	directoryController *controllers.DirectoryController,
	chatController *controllers.ChatController,
	uploadController *controllers.UploadController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register/junior", authController.RegisterJunior)
		auth.POST("/register/senior", authController.RegisterSenior)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes (own profile only)
		authenticated.GET("/profile", profileController.GetProfile)
		authenticated.PUT("/profile", profileController.UpdateProfile)

		// Feed routes - per-account post and event collections
		authenticated.GET("/accounts/:id/posts", feedController.ListPosts)
		authenticated.GET("/accounts/:id/events", feedController.ListEvents)
		authenticated.POST("/posts", feedController.CreatePost)
		authenticated.POST("/events", feedController.CreateEvent)

		// Live event feed over WebSocket. The auth middleware accepts the token
		// via query parameter here because browser WebSocket clients cannot set
		// an Authorization header.
		authenticated.GET("/events/ws", wsHandler.HandleConnection)

		// Senior directory
		seniors := authenticated.Group("/seniors")
		{
			seniors.GET("", directoryController.ListByRole)
			seniors.GET("/:id", directoryController.GetByID)
		}

		// Mentor chatbot
		authenticated.POST("/chat", chatController.Chat)

		// File uploads
		authenticated.POST("/uploads", uploadController.Upload)
	}

	// Uploaded files are served statically under their stored paths
	router.Static("/uploads", uploadsDir)

	// Prometheus metrics endpoint (public)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
