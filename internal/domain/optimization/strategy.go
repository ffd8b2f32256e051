package optimization

import (
	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

// StrategyResult bundles a strategy with its concrete ingredient edits.
// Generators return nil when they have no safe candidate; callers treat
// that as "skip this phase", never as an error.
type StrategyResult struct {
	Strategy AdjustmentStrategy
	Changes  []IngredientChange
}

// confidenceFor applies the fixed expert confidence rules shared by all
// generators: complex styles and large deviations are low confidence,
// generator-specific smallness checks grant high, everything else is
// medium.
func confidenceFor(chars style.Characteristics, deviation float64, small bool) ConfidenceLevel {
	if chars.Complexity == style.ComplexityComplex || deviation > 0.5 {
		return ConfidenceLow
	}
	if small {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

// clampStep bounds an amount delta's magnitude to [min, max] while
// preserving its sign. Incremental steps mirror real brewing practice:
// never jump straight to the computed target.
func clampStep(delta, min, max float64) float64 {
	sign := 1.0
	if delta < 0 {
		sign = -1
		delta = -delta
	}
	if delta < min {
		delta = min
	}
	if delta > max {
		delta = max
	}
	return sign * delta
}

// largestGrain returns the grain with the biggest normalized amount that
// passes the filter, or nil.
func largestGrain(ingredients []brewing.Ingredient, match func(brewing.Ingredient) bool) *brewing.Ingredient {
	var best *brewing.Ingredient
	var bestAmount float64
	for idx := range ingredients {
		ing := ingredients[idx]
		if ing.Category != brewing.CategoryGrain || !match(ing) {
			continue
		}
		if lbs := ing.AmountInPounds(); best == nil || lbs > bestAmount {
			best = &ingredients[idx]
			bestAmount = lbs
		}
	}
	return best
}
