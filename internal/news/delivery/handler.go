package delivery

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	authdelivery "insightflo-backend/internal/auth/delivery"
	authdomain "insightflo-backend/internal/auth/domain"
	"insightflo-backend/internal/news/dto"
	"insightflo-backend/internal/news/usecase"
	"insightflo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsUsecase usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
	}
}

// Search returns articles matching a free-text query
// GET /api/v1/news/search?q=...&page=1&limit=20
func (h *NewsHandler) Search(c *gin.Context) {
	page, limit := pagination(c)

	items, total, err := h.newsUsecase.Search(c.Query("q"), limit, (page-1)*limit)
	if err != nil {
		writeInternalError(c, "news search", err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, items, response.NewMeta(page, limit, total))
}

// Personalized returns the authenticated user's scored feed
// GET /api/v1/news/personalized?keywords=a,b&page=1&limit=20
func (h *NewsHandler) Personalized(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	if userID == "" {
		response.Fail(c, http.StatusUnauthorized, string(authdomain.CodeAuthenticationRequired), "authentication required")
		return
	}

	page, limit := pagination(c)

	var keywords []string
	if raw := c.Query("keywords"); raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}

	items, total, err := h.newsUsecase.PersonalizedFeed(userID, keywords, limit, (page-1)*limit)
	if err != nil {
		writeInternalError(c, "personalized feed", err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, items, response.NewMeta(page, limit, total))
}

// GetKeywords lists the authenticated user's interest keywords
// GET /api/v1/user/keywords
func (h *NewsHandler) GetKeywords(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	keywords, err := h.newsUsecase.GetKeywords(userID)
	if err != nil {
		writeInternalError(c, "get keywords", err)
		return
	}

	response.OK(c, http.StatusOK, keywords)
}

// AddKeyword creates or reweights an interest keyword
// POST /api/v1/user/keywords
func (h *NewsHandler) AddKeyword(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.AddKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, string(authdomain.CodeValidationFailed), err.Error())
		return
	}

	if req.Weight == 0 {
		req.Weight = 1
	}
	if req.Weight < 1 || req.Weight > 5 {
		response.Fail(c, http.StatusBadRequest, string(authdomain.CodeValidationFailed), "weight must be between 1 and 5")
		return
	}

	keyword, err := h.newsUsecase.AddKeyword(userID, req.Keyword, req.Weight)
	if err != nil {
		writeInternalError(c, "add keyword", err)
		return
	}

	response.OK(c, http.StatusCreated, keyword)
}

// DeleteKeyword removes an interest keyword
// DELETE /api/v1/user/keywords/:keyword
func (h *NewsHandler) DeleteKeyword(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	if err := h.newsUsecase.RemoveKeyword(userID, c.Param("keyword")); err != nil {
		writeInternalError(c, "delete keyword", err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"deleted": true})
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func writeInternalError(c *gin.Context, op string, err error) {
	slog.Error("news operation failed", "op", op, "path", c.Request.URL.Path, "error", err)
	response.Fail(c, http.StatusInternalServerError, string(authdomain.CodeInternalError), "internal server error")
}
