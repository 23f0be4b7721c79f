package domain

import "context"

type SatisfactionRepository interface {
	// Write paths
	UpsertCompany(ctx context.Context, c Company) (int64, error)
	UpsertProduct(ctx context.Context, p Product) error
	UpsertTone(ctx context.Context, tone string) error
	InsertSatisfaction(ctx context.Context, ev SatisfactionEvent) error
	LogMiss(ctx context.Context, id int64, status int, reason string) error

	// Read paths: the four pre-aggregated fetches
	FindWholePlatformSatisfaction(ctx context.Context) ([]PlatformSatisfaction, error)
	FindMinePlatformSatisfaction(ctx context.Context, userID int64) ([]PlatformSatisfaction, error)
	FindWholeCategorySatisfaction(ctx context.Context) ([]CategorySatisfaction, error)
	FindMineCategorySatisfaction(ctx context.Context, userID int64) ([]CategorySatisfaction, error)

	// Canonical enumerations for detail zero-fill
	AllCompanies(ctx context.Context) ([]string, error)
	AllTones(ctx context.Context) ([]string, error)
}

type CatalogClient interface {
	ListProductIDs(ctx context.Context) ([]int64, error)
	GetProduct(ctx context.Context, id int64) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
