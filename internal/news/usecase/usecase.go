package usecase

import (
	"insightflo-backend/internal/news/domain"
	"insightflo-backend/internal/news/dto"
)

// NewsUsecase serves the searchable and personalized news feeds.
type NewsUsecase interface {
	// Search returns articles matching the query with relevance scores,
	// plus the total match count. An empty query returns the recency feed.
	Search(query string, limit, offset int) ([]*dto.NewsItem, int64, error)

	// PersonalizedFeed scores recent articles against the given keywords, or
	// the user's stored keywords when none are given. Without any keywords it
	// falls back to the recency feed with a neutral score.
	PersonalizedFeed(userID string, keywords []string, limit, offset int) ([]*dto.NewsItem, int64, error)

	GetKeywords(userID string) ([]*domain.UserKeyword, error)
	AddKeyword(userID, keyword string, weight int) (*domain.UserKeyword, error)
	RemoveKeyword(userID, keyword string) error
}
