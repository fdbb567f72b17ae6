package repository

import (
	"time"

	"insightflo-backend/internal/news/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keywordRepository implements KeywordRepository using GORM
type keywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository creates a new instance of keywordRepository
func NewKeywordRepository(db *gorm.DB) KeywordRepository {
	return &keywordRepository{
		db: db,
	}
}

func (r *keywordRepository) FindByUserID(userID string) ([]*domain.UserKeyword, error) {
	var keywords []*domain.UserKeyword
	err := r.db.Where("user_id = ?", userID).Order("weight DESC").Find(&keywords).Error
	return keywords, err
}

func (r *keywordRepository) Upsert(keyword *domain.UserKeyword) error {
	if keyword.ID == "" {
		keyword.ID = uuid.New().String()
	}
	keyword.CreatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "keyword"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight"}),
	}).Create(keyword).Error
}

func (r *keywordRepository) Delete(userID, keyword string) error {
	return r.db.Where("user_id = ? AND keyword = ?", userID, keyword).Delete(&domain.UserKeyword{}).Error
}
