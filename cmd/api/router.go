package api

import (
	"net/http"

	authdelivery "insightflo-backend/internal/auth/delivery"
	authUsecase "insightflo-backend/internal/auth/usecase"
	newsDelivery "insightflo-backend/internal/news/delivery"
	newsUsecase "insightflo-backend/internal/news/usecase"
	"insightflo-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// Public paths are checked before protected paths; anything matching neither
// prefix set passes through unauthenticated (the documented fail-open default).
var (
	publicPaths = []string{
		"/api/v1/auth/signup",
		"/api/v1/auth/signin",
		"/api/v1/auth/refresh",
		"/api/v1/news/search",
	}
	protectedPaths = []string{
		"/api/v1/auth/profile",
		"/api/v1/news/personalized",
		"/api/v1/user",
	}
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, newsUc newsUsecase.NewsUsecase, issuer *token.Issuer) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	newsHandler := newsDelivery.NewNewsHandler(newsUc)

	r.Use(authdelivery.AuthGate(issuer, publicPaths, protectedPaths))

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/profile", authHandler.Profile)
		}

		// News routes
		news := api.Group("/news")
		{
			news.GET("/search", newsHandler.Search)
			news.GET("/personalized", newsHandler.Personalized)
		}

		// User keyword routes (protected)
		user := api.Group("/user")
		{
			user.GET("/keywords", newsHandler.GetKeywords)
			user.POST("/keywords", newsHandler.AddKeyword)
			user.DELETE("/keywords/:keyword", newsHandler.DeleteKeyword)
		}
	}
}
