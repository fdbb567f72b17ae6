package dto

import (
	"insightflo-backend/internal/news/domain"
)

// NewsItem is an article plus the score it earned for the requesting user.
type NewsItem struct {
	*domain.News
	RelevanceScore float64 `json:"relevanceScore"`
}

type AddKeywordRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	Weight  int    `json:"weight"`
}
