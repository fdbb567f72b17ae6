package repository

import (
	"insightflo-backend/internal/news/domain"
)

// NewsRepository defines the read interface over the article store. Articles
// arrive through the ingestion pipeline, not through this service.
type NewsRepository interface {
	// FindRecent returns up to limit articles ordered by published_at desc.
	// Used as the candidate pool for in-process relevance scoring.
	FindRecent(limit int) ([]*domain.News, error)

	// FindPage returns a recency-ordered page of articles with the total count.
	FindPage(limit, offset int) ([]*domain.News, int64, error)

	// Search returns articles whose title, summary or content contains the
	// query (case-insensitive), recency-ordered, with the total match count.
	Search(query string, limit, offset int) ([]*domain.News, int64, error)
}

// KeywordRepository defines the interface for user interest keywords.
type KeywordRepository interface {
	// FindByUserID returns the user's keywords ordered by weight desc.
	FindByUserID(userID string) ([]*domain.UserKeyword, error)

	// Upsert creates the keyword for the user or updates its weight.
	Upsert(keyword *domain.UserKeyword) error

	// Delete removes one keyword for the user.
	Delete(userID, keyword string) error
}
