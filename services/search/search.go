// Package search implements candidate matching over the service catalog:
// semantic ranking when an embedding is available, geo ranking otherwise,
// exact category filtering last.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	serviceRepo "fieldserve/database/repository/service"
	"fieldserve/models"
	"fieldserve/services/embedding"
	"fieldserve/utils"
)

const (
	defaultRadiusKm = 50.0
	defaultLimit    = 20
	maxLimit        = 100
	// semanticMinQuery is the shortest query that triggers embedding.
	// One- and two-character inputs stay on the keyword path.
	semanticMinQuery = 3

	cacheTTL = 2 * time.Minute
)

// SearchService ranks and paginates candidate services for a query.
type SearchService interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error)
	Categories(ctx context.Context) ([]string, error)
}

// DefaultSearchService implements SearchService. Cache may be nil, in
// which case every request hits the repository.
type DefaultSearchService struct {
	ServiceRepo serviceRepo.ServiceRepository
	Embedder    embedding.Provider
	Cache       *redis.Client
	Logger      *zap.Logger
}

// Search runs the staged pipeline and paginates the ranked set. The
// semantic stage is attempted only for queries of three or more
// characters; an empty embedding degrades to keyword and geo ranking.
func (s *DefaultSearchService) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	normalize(&query)

	if cached := s.fromCache(ctx, query); cached != nil {
		return cached, nil
	}

	var vector []float32
	if len(strings.TrimSpace(query.Q)) >= semanticMinQuery {
		vector = s.Embedder.Embed(ctx, query.Q)
	}

	items, err := s.ServiceRepo.Search(ctx, query, vector)
	if err != nil {
		return nil, err
	}

	result := paginate(items, query.Page, query.Limit)
	s.toCache(ctx, query, result)
	return result, nil
}

// Categories returns the distinct categories of active services.
func (s *DefaultSearchService) Categories(ctx context.Context) ([]string, error) {
	return s.ServiceRepo.DistinctCategories(ctx)
}

func normalize(q *models.SearchQuery) {
	q.Q = strings.TrimSpace(q.Q)
	q.Category = strings.TrimSpace(q.Category)
	q.HasGeo = q.Lat != 0 || q.Lng != 0
	if q.RadiusKm <= 0 {
		q.RadiusKm = defaultRadiusKm
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}
}

// paginate slices the fully ranked, filtered set. Pages past the end come
// back empty rather than erroring.
func paginate(items []models.SearchResultItem, page, limit int) *models.SearchResult {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.SearchResult{
		Items:      items[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func cacheKey(q models.SearchQuery) string {
	return fmt.Sprintf("search:%s|%s|%.4f|%.4f|%.0f|%d|%d",
		strings.ToLower(q.Q), strings.ToLower(q.Category), q.Lat, q.Lng, q.RadiusKm, q.Page, q.Limit)
}

func (s *DefaultSearchService) fromCache(ctx context.Context, q models.SearchQuery) *models.SearchResult {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, cacheKey(q)).Result()
	if err != nil {
		return nil
	}
	var result models.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil
	}
	return &result
}

func (s *DefaultSearchService) toCache(ctx context.Context, q models.SearchQuery, result *models.SearchResult) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(q), raw, cacheTTL).Err(); err != nil {
		s.Logger.Debug("search cache write failed", zap.Error(err))
	}
}

// NewDefaultSearchService wires the search service with the shared search
// cache client.
func NewDefaultSearchService(repo serviceRepo.ServiceRepository, embedder embedding.Provider) *DefaultSearchService {
	return &DefaultSearchService{
		ServiceRepo: repo,
		Embedder:    embedder,
		Cache:       utils.GetSearchCacheClient(),
		Logger:      utils.GetLogger(),
	}
}
