// Package inbound defines the interfaces for inbound ports (primary/driving adapters).
// These are the use cases the application exposes to HTTP handlers and other callers.
package inbound

import (
	"context"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/optimization"
	"github.com/brewsmith/v1/internal/domain/style"
)

// OptimizerService is the engine's in-process API surface. Every call is
// referentially transparent given the same inputs; only
// CalculateCascadingEffects reaches out to the authoritative recompute.
type OptimizerService interface {
	AnalyzeStyleCompliance(ctx context.Context, metrics brewing.RecipeMetrics, guide style.Guide) (*optimization.StyleCompliance, error)
	GenerateOptimizationTargets(ctx context.Context, compliance optimization.StyleCompliance, guide style.Guide) ([]optimization.Target, error)
	GenerateAdjustmentPlan(ctx context.Context, cmd GeneratePlanCommand) (*optimization.AdjustmentPlan, error)
	CalculateCascadingEffects(ctx context.Context, cmd PreviewChangesCommand) (*optimization.CascadingEffects, error)

	// ResolveStyle looks a style up by name through the catalog, for
	// callers that hold a style name rather than a guide object.
	ResolveStyle(ctx context.Context, name string) (*style.Guide, error)
}

// GeneratePlanCommand carries everything a planning pass needs. When
// Compliance is nil the service computes it from the metrics first.
type GeneratePlanCommand struct {
	Recipe      *brewing.Recipe
	Ingredients []brewing.Ingredient
	Metrics     brewing.RecipeMetrics
	Compliance  *optimization.StyleCompliance
	Style       style.Guide
}

// PreviewChangesCommand carries a proposed change bundle for effect
// prediction before anything is applied.
type PreviewChangesCommand struct {
	Recipe      *brewing.Recipe
	Ingredients []brewing.Ingredient
	Changes     []optimization.IngredientChange
	Metrics     brewing.RecipeMetrics
}
