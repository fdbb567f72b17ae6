package usecase

import (
	"sort"
	"strings"

	"insightflo-backend/internal/news/domain"
	"insightflo-backend/internal/news/dto"
	"insightflo-backend/internal/news/repository"
	"insightflo-backend/pkg/relevance"
)

// candidatePoolSize bounds how many recent articles are scored in-process for
// the personalized feed.
const candidatePoolSize = 500

// neutralScore is assigned when no keywords are available to score against.
const neutralScore = 0.5

// newsUsecase implements NewsUsecase interface
type newsUsecase struct {
	newsRepo    repository.NewsRepository
	keywordRepo repository.KeywordRepository
}

// NewNewsUsecase creates a new instance of newsUsecase
func NewNewsUsecase(newsRepo repository.NewsRepository, keywordRepo repository.KeywordRepository) NewsUsecase {
	return &newsUsecase{
		newsRepo:    newsRepo,
		keywordRepo: keywordRepo,
	}
}

func (u *newsUsecase) Search(query string, limit, offset int) ([]*dto.NewsItem, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		articles, total, err := u.newsRepo.FindPage(limit, offset)
		if err != nil {
			return nil, 0, err
		}
		return withNeutralScore(articles), total, nil
	}

	// The store finds substring matches by recency; scoring a bounded pool of
	// them keeps the best match on the first page.
	candidates, total, err := u.newsRepo.Search(query, candidatePoolSize, 0)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.NewsItem, 0, len(candidates))
	for _, article := range candidates {
		items = append(items, &dto.NewsItem{
			News:           article,
			RelevanceScore: relevance.Score(query, article.Title, article.Summary),
		})
	}

	// No substring hits; retry recent articles with typo tolerance.
	if len(items) == 0 {
		recent, err := u.newsRepo.FindRecent(candidatePoolSize)
		if err != nil {
			return nil, 0, err
		}
		for _, article := range recent {
			if !relevance.MatchArticle(query, article.Title, article.Summary, article.Content) {
				continue
			}
			items = append(items, &dto.NewsItem{
				News:           article,
				RelevanceScore: relevance.Score(query, article.Title, article.Summary),
			})
		}
		total = int64(len(items))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RelevanceScore > items[j].RelevanceScore
	})

	return paginate(items, limit, offset), total, nil
}

func (u *newsUsecase) PersonalizedFeed(userID string, keywords []string, limit, offset int) ([]*dto.NewsItem, int64, error) {
	// Explicit keywords override the stored profile.
	weighted := make(map[string]int)
	for _, kw := range keywords {
		if kw = relevance.Normalize(kw); kw != "" {
			weighted[kw] = 1
		}
	}

	if len(weighted) == 0 {
		stored, err := u.keywordRepo.FindByUserID(userID)
		if err != nil {
			return nil, 0, err
		}
		for _, uk := range stored {
			weighted[relevance.Normalize(uk.Keyword)] = uk.Weight
		}
	}

	if len(weighted) == 0 {
		articles, total, err := u.newsRepo.FindPage(limit, offset)
		if err != nil {
			return nil, 0, err
		}
		return withNeutralScore(articles), total, nil
	}

	candidates, err := u.newsRepo.FindRecent(candidatePoolSize)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*dto.NewsItem, 0, len(candidates))
	for _, article := range candidates {
		score := scoreArticle(article, weighted)
		if score > 0 {
			matched = append(matched, &dto.NewsItem{News: article, RelevanceScore: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].RelevanceScore != matched[j].RelevanceScore {
			return matched[i].RelevanceScore > matched[j].RelevanceScore
		}
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})

	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (u *newsUsecase) GetKeywords(userID string) ([]*domain.UserKeyword, error) {
	return u.keywordRepo.FindByUserID(userID)
}

func (u *newsUsecase) AddKeyword(userID, keyword string, weight int) (*domain.UserKeyword, error) {
	uk := &domain.UserKeyword{
		UserID:  userID,
		Keyword: strings.TrimSpace(keyword),
		Weight:  weight,
	}
	if err := u.keywordRepo.Upsert(uk); err != nil {
		return nil, err
	}
	return uk, nil
}

func (u *newsUsecase) RemoveKeyword(userID, keyword string) error {
	return u.keywordRepo.Delete(userID, keyword)
}

// scoreArticle computes the weighted keyword-overlap score. A keyword found in
// the title counts double its weight; a hit in the article's keyword list or
// body counts the plain weight.
func scoreArticle(article *domain.News, weighted map[string]int) float64 {
	titleNorm := relevance.Normalize(article.Title)
	bodyNorm := relevance.Normalize(article.Summary + " " + article.Content)

	tags := make(map[string]bool, len(article.Keywords))
	for _, tag := range article.Keywords {
		tags[relevance.Normalize(tag)] = true
	}

	score := 0.0
	for kw, weight := range weighted {
		switch {
		case strings.Contains(titleNorm, kw):
			score += float64(2 * weight)
		case tags[kw]:
			score += float64(weight)
		case strings.Contains(bodyNorm, kw):
			score += float64(weight)
		}
	}
	return score
}

func paginate(items []*dto.NewsItem, limit, offset int) []*dto.NewsItem {
	if offset >= len(items) {
		return []*dto.NewsItem{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func withNeutralScore(articles []*domain.News) []*dto.NewsItem {
	items := make([]*dto.NewsItem, 0, len(articles))
	for _, article := range articles {
		items = append(items, &dto.NewsItem{News: article, RelevanceScore: neutralScore})
	}
	return items
}
