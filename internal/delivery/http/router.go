package http

import (
	"github.com/JSharma2K/cofounded/internal/delivery/http/handler"
	"github.com/JSharma2K/cofounded/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	matchHandler   *handler.MatchHandler
	reportHandler  *handler.ReportHandler
	wsHandler      *handler.WSHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	reportHandler *handler.ReportHandler,
	wsHandler *handler.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		matchHandler:   matchHandler,
		reportHandler:  reportHandler,
		wsHandler:      wsHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	handler.RegisterValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/code", r.authHandler.SendCode)
			auth.POST("/verify", r.authHandler.VerifyCode)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.DELETE("/account", r.authMiddleware.RequireAuth(), r.authHandler.DeleteAccount)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Onboarding routes
			onboarding := protected.Group("/onboarding")
			{
				onboarding.PUT("/user", r.profileHandler.UpsertUser)
				onboarding.PUT("/profile", r.profileHandler.UpsertProfile)
				onboarding.PUT("/intent", r.profileHandler.UpsertIntent)
				onboarding.GET("/status", r.profileHandler.OnboardingStatus)
			}

			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Feed routes
			protected.GET("/candidates", r.feedHandler.GetCandidates)

			// Swipe routes
			swipe := protected.Group("/swipes")
			{
				swipe.POST("", r.swipeHandler.CreateSwipe)
				swipe.GET("/likes-received", r.swipeHandler.GetLikesReceived)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.GetMatches)
				matches.GET("/:id/messages", r.matchHandler.GetMessages)
				matches.POST("/:id/messages", r.matchHandler.SendMessage)
			}

			// Report routes
			protected.POST("/reports", r.reportHandler.CreateReport)

			// Realtime
			protected.GET("/ws", r.wsHandler.Subscribe)
		}
	}

	return router
}
