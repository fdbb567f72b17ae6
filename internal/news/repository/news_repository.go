package repository

import (
	"insightflo-backend/internal/news/domain"

	"gorm.io/gorm"
)

// newsRepository implements NewsRepository using GORM
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of newsRepository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{
		db: db,
	}
}

func (r *newsRepository) FindRecent(limit int) ([]*domain.News, error) {
	var articles []*domain.News
	err := r.db.Order("published_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

func (r *newsRepository) FindPage(limit, offset int) ([]*domain.News, int64, error) {
	var articles []*domain.News
	var total int64

	if err := r.db.Model(&domain.News{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}

func (r *newsRepository) Search(query string, limit, offset int) ([]*domain.News, int64, error) {
	var articles []*domain.News
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&domain.News{}).
		Where("title ILIKE ? OR summary ILIKE ? OR content ILIKE ?", pattern, pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}
