package domain

import (
	"time"

	"github.com/lib/pq"
)

// Sentiment is the editorially assigned tone of an article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// News represents a single ingested article.
type News struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Content     string         `json:"content" gorm:"not null"`
	Summary     string         `json:"summary"`
	Sentiment   Sentiment      `json:"sentiment" gorm:"default:neutral"`
	Keywords    pq.StringArray `json:"keywords" gorm:"type:text[]"`
	SourceURL   string         `json:"source_url"`
	PublishedAt time.Time      `json:"published_at" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
}

// UserKeyword is a weighted interest keyword driving the personalized feed.
// Weight runs 1..5; higher weight means stronger interest.
type UserKeyword struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_user_keyword;not null"`
	Keyword   string    `json:"keyword" gorm:"uniqueIndex:idx_user_keyword;not null"`
	Weight    int       `json:"weight" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
}
