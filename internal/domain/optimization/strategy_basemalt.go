package optimization

import (
	"fmt"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

const (
	// Incremental base-malt step bounds in pounds.
	minGravityStepLbs = 0.5
	maxGravityStepLbs = 1.0

	// Gaps under 20 gravity points close reliably in one or two steps.
	smallGravityGap = 0.020
)

// GenerateGravityAdjustment proposes an incremental base-malt amount
// change sized toward the target OG. Returns nil when the recipe has no
// grain to adjust or the gap is effectively zero.
func GenerateGravityAdjustment(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	targetOG float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	// Prefer a recognized base-malt family; fall back to the largest
	// grain of any kind.
	grain := largestGrain(ingredients, func(i brewing.Ingredient) bool { return i.IsBaseMalt() })
	if grain == nil {
		grain = largestGrain(ingredients, func(brewing.Ingredient) bool { return true })
	}
	if grain == nil {
		return nil
	}

	gap := targetOG - current.OG
	pointsPerLb := GravityPointsPerPound(*grain, recipe.BatchSize())
	if pointsPerLb <= 0 || gap == 0 {
		return nil
	}

	deltaLbs := clampStep(gap*1000/pointsPerLb, minGravityStepLbs, maxGravityStepLbs)

	currentLbs := grain.AmountInPounds()
	newLbs := currentLbs + deltaLbs
	if newLbs <= 0 {
		return nil
	}

	direction := "Raise"
	if deltaLbs < 0 {
		direction = "Lower"
	}

	estimatedOGShift := deltaLbs * pointsPerLb / 1000

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseBaseGravity,
			TargetMetric:    brewing.MetricOG,
			Approach:        ApproachAmountChange,
			Confidence:      confidenceFor(chars, deviation, absFloat(gap) < smallGravityGap),
			EstimatedImpact: estimatedOGShift,
			Reasoning: fmt.Sprintf(
				"%s original gravity toward %.3f by stepping %s %+.2f lb; remaining gap closes on re-analysis",
				direction, targetOG, grain.Name, deltaLbs),
			CascadingEffects: []brewing.Metric{brewing.MetricABV},
		},
		Changes: []IngredientChange{{
			IngredientID:   grain.ID,
			IngredientName: grain.Name,
			Field:          FieldAmount,
			CurrentValue:   grain.Amount,
			SuggestedValue: brewing.FromPounds(newLbs, grain.Unit),
			Unit:           grain.Unit,
		}},
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
