package app

import (
	"context"
	"errors"
	"fmt"

	"tonestats/internal/domain"
)

type IngestionService struct {
	catalog domain.CatalogClient
	repo    domain.SatisfactionRepository
	cache   domain.Cache
}

func NewIngestionService(c domain.CatalogClient, r domain.SatisfactionRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{catalog: c, repo: r, cache: cache}
}

// IngestProduct pulls one product from the catalog API and upserts it
// with its company and tone. Known miss statuses (404/401/403) are
// recorded and end the ingest gracefully; anything else bubbles up.
func (s *IngestionService) IngestProduct(ctx context.Context, id int64) error {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			_ = s.repo.LogMiss(ctx, id, 404, "not found")
			s.invalidateAggregates(ctx)
			return nil
		case errors.Is(err, domain.ErrCatalogDenied):
			_ = s.repo.LogMiss(ctx, id, 403, "inactive")
			s.invalidateAggregates(ctx)
			return nil
		default:
			return err
		}
	}

	prod, err := mapProduct(id, p)
	if err != nil {
		_ = s.repo.LogMiss(ctx, id, 422, err.Error())
		return nil
	}

	// Parents first: company and tone rows satisfy FKs on products.
	companyID, err := s.repo.UpsertCompany(ctx, domain.Company{Name: prod.Company})
	if err != nil {
		return fmt.Errorf("upsert company for product %d: %w", id, err)
	}
	prod.CompanyID = companyID

	if prod.Tone != "" {
		if err := s.repo.UpsertTone(ctx, prod.Tone); err != nil {
			return fmt.Errorf("upsert tone for product %d: %w", id, err)
		}
	}
	if err := s.repo.UpsertProduct(ctx, prod); err != nil {
		return fmt.Errorf("upsert product %d: %w", id, err)
	}

	// A product move between companies or categories changes how its
	// events aggregate, so the shared keys go stale immediately.
	s.invalidateAggregates(ctx)
	return nil
}

// invalidateAggregates drops the shared whole-corpus keys. Per-user
// mine keys are left to expire by TTL.
func (s *IngestionService) invalidateAggregates(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, cacheKey("platform", domain.KindPlatformWhole, 0))
	_ = s.cache.Del(ctx, cacheKey("category", domain.KindCategoryWhole, 0))
	_ = s.cache.Del(ctx, cacheKey("detail", domain.KindPlatformWhole, 0))
}
