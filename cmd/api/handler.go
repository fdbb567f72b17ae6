package api

import (
	authUsecase "insightflo-backend/internal/auth/usecase"
	newsUsecase "insightflo-backend/internal/news/usecase"
	"insightflo-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	newsUsecase newsUsecase.NewsUsecase
	issuer      *token.Issuer
}

func NewHandler(authUc authUsecase.AuthUsecase, newsUc newsUsecase.NewsUsecase, issuer *token.Issuer) *Handler {
	return &Handler{
		authUsecase: authUc,
		newsUsecase: newsUc,
		issuer:      issuer,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.newsUsecase, h.issuer)

	return r.Run(addr)
}
