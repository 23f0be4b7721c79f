package app

import (
	"context"
	"fmt"
	"time"

	"tonestats/internal/domain"
)

type SatisfactionService struct {
	repo     domain.SatisfactionRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSatisfactionService(r domain.SatisfactionRepository, c domain.Cache, ttl time.Duration) *SatisfactionService {
	return &SatisfactionService{repo: r, cache: c, cacheTTL: ttl}
}

// fetchPlatform dispatches to one of the two platform fetches. Any
// other kind, category kinds included, fails with ErrNotExistKind: the
// caller asked for platform-shaped records and nothing else can produce
// them.
func (s *SatisfactionService) fetchPlatform(ctx context.Context, userID int64, kind domain.Kind) ([]domain.PlatformSatisfaction, error) {
	switch kind {
	case domain.KindPlatformWhole:
		return s.repo.FindWholePlatformSatisfaction(ctx)
	case domain.KindPlatformMine:
		return s.repo.FindMinePlatformSatisfaction(ctx, userID)
	default:
		return nil, domain.ErrNotExistKind
	}
}

func (s *SatisfactionService) fetchCategory(ctx context.Context, userID int64, kind domain.Kind) ([]domain.CategorySatisfaction, error) {
	switch kind {
	case domain.KindCategoryWhole:
		return s.repo.FindWholeCategorySatisfaction(ctx)
	case domain.KindCategoryMine:
		return s.repo.FindMineCategorySatisfaction(ctx, userID)
	default:
		return nil, domain.ErrNotExistKind
	}
}

// GetPlatformSatisfaction returns the preferred tone per company: for
// every company, the tone with the highest event count.
func (s *SatisfactionService) GetPlatformSatisfaction(ctx context.Context, userID int64, kind domain.Kind) ([]domain.PlatformSatisfaction, error) {
	key := cacheKey("platform", kind, userID)
	var cached []domain.PlatformSatisfaction
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	recs, err := s.fetchPlatform(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	top := TopPerGroup(recs)
	_ = s.cache.Set(ctx, key, top, int(s.cacheTTL.Seconds()))
	return top, nil
}

// GetCategorySatisfaction returns the preferred tone per product category.
func (s *SatisfactionService) GetCategorySatisfaction(ctx context.Context, userID int64, kind domain.Kind) ([]domain.CategorySatisfaction, error) {
	key := cacheKey("category", kind, userID)
	var cached []domain.CategorySatisfaction
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	recs, err := s.fetchCategory(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	top := TopPerGroup(recs)
	_ = s.cache.Set(ctx, key, top, int(s.cacheTTL.Seconds()))
	return top, nil
}

// GetPlatformDetail returns the full company x tone matrix for a
// platform kind, zero-filled against the canonical company and tone
// enumerations.
func (s *SatisfactionService) GetPlatformDetail(ctx context.Context, userID int64, kind domain.Kind) ([]domain.PlatformDetail, error) {
	key := cacheKey("detail", kind, userID)
	var cached []domain.PlatformDetail
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	recs, err := s.fetchPlatform(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	companies, err := s.repo.AllCompanies(ctx)
	if err != nil {
		return nil, err
	}
	tones, err := s.repo.AllTones(ctx)
	if err != nil {
		return nil, err
	}

	detail := BuildDetailMatrix(recs, companies, tones)

	// copy before caching so callers can't mutate the cached rows
	_ = s.cache.Set(ctx, key, deepCopyDetails(detail), int(s.cacheTTL.Seconds()))
	return detail, nil
}

// RecordSatisfaction persists one preference event and drops every
// cache key the new count can affect: the whole aggregates plus the
// event owner's mine aggregates.
func (s *SatisfactionService) RecordSatisfaction(ctx context.Context, ev domain.SatisfactionEvent) error {
	if err := s.repo.InsertSatisfaction(ctx, ev); err != nil {
		return err
	}
	s.invalidateUser(ctx, ev.UserID)
	return nil
}

func (s *SatisfactionService) invalidateUser(ctx context.Context, userID int64) {
	_ = s.cache.Del(ctx, cacheKey("platform", domain.KindPlatformWhole, 0))
	_ = s.cache.Del(ctx, cacheKey("category", domain.KindCategoryWhole, 0))
	_ = s.cache.Del(ctx, cacheKey("detail", domain.KindPlatformWhole, 0))
	_ = s.cache.Del(ctx, cacheKey("platform", domain.KindPlatformMine, userID))
	_ = s.cache.Del(ctx, cacheKey("category", domain.KindCategoryMine, userID))
	_ = s.cache.Del(ctx, cacheKey("detail", domain.KindPlatformMine, userID))
}

// cacheKey normalizes whole kinds to user 0 so all users share one entry.
func cacheKey(op string, kind domain.Kind, userID int64) string {
	if !kind.Mine() {
		userID = 0
	}
	return fmt.Sprintf("sat:%s:%s:%d", op, kind, userID)
}

func deepCopyDetails(in []domain.PlatformDetail) []domain.PlatformDetail {
	out := make([]domain.PlatformDetail, len(in))
	for i, d := range in {
		cp := domain.PlatformDetail{Company: d.Company}
		if n := len(d.Tones); n > 0 {
			cp.Tones = make([]domain.ToneCount, n)
			copy(cp.Tones, d.Tones)
		}
		out[i] = cp
	}
	return out
}
