// Package outbound defines the interfaces for outbound ports (secondary/driven adapters).
// These are the collaborators the optimization engine depends on but does not own.
package outbound

import (
	"context"
	"time"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

// MetricsCalculator is the authoritative recipe-metrics recompute. The
// engine consumes it as an opaque oracle: given a recipe and its full
// ingredient list it must return the five metrics deterministically and
// without side effects.
type MetricsCalculator interface {
	CalculateMetrics(ctx context.Context, recipe *brewing.Recipe, ingredients []brewing.Ingredient) (brewing.RecipeMetrics, error)
}

// StyleCatalog resolves style guides by name or identifier.
type StyleCatalog interface {
	FindByID(ctx context.Context, id string) (*style.Guide, error)
	FindByName(ctx context.Context, name string) (*style.Guide, error)
	List(ctx context.Context) ([]style.Guide, error)
}

// CacheRepository is the byte-level cache the catalog decorator sits on.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
