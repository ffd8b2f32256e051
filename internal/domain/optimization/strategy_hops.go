package optimization

import (
	"fmt"
	"math"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

const (
	// Boil-time bounds for a timing adjustment.
	minBoilMinutes = 10
	maxBoilMinutes = 90

	// Utilization asymptote of the planning curve; gaps that would need
	// more utilization than this cannot be closed by timing alone.
	maxUtilization = 0.26

	smallIBUGap = 5.0
)

// GenerateHopTimingAdjustment proposes moving the primary bittering
// hop's boil time so its utilization closes the IBU gap. Timing changes
// leave every other metric untouched, which makes them the preferred
// tactic for small gaps. Returns nil when no hop exists or the gap is
// out of timing's reach.
func GenerateHopTimingAdjustment(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	targetIBU float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	hop := primaryBitteringHop(ingredients, recipe.BatchSize())
	if hop == nil {
		return nil
	}

	gap := targetIBU - current.IBU
	ounces := hop.AmountInOunces()
	if gap == 0 || ounces <= 0 || hop.AlphaAcid <= 0 {
		return nil
	}

	// Utilization this hop would need to contribute its current IBU
	// plus the gap, then invert the utilization curve for the boil time.
	perOunceFactor := 74.89 * hop.AlphaAcid / recipe.BatchSize()
	neededUtil := HopUtilization(hop.BoilTime) + gap/(perOunceFactor*ounces)
	if neededUtil <= 0 || neededUtil >= maxUtilization {
		return nil
	}
	newBoil := int(math.Round(-math.Log(1-neededUtil/maxUtilization) / 0.04))
	if newBoil < minBoilMinutes || newBoil > maxBoilMinutes || newBoil == hop.BoilTime {
		return nil
	}

	estimatedShift := perOunceFactor * ounces * (HopUtilization(newBoil) - HopUtilization(hop.BoilTime))

	direction := "longer"
	if newBoil < hop.BoilTime {
		direction = "shorter"
	}

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseHopBalance,
			TargetMetric:    brewing.MetricIBU,
			Approach:        ApproachTimingChange,
			Confidence:      confidenceFor(chars, deviation, math.Abs(gap) <= smallIBUGap),
			EstimatedImpact: estimatedShift,
			Reasoning: fmt.Sprintf(
				"Boil %s %s (%d min instead of %d) to shift utilization by roughly %.1f IBU",
				hop.Name, direction, newBoil, hop.BoilTime, estimatedShift),
			CascadingEffects: nil,
		},
		Changes: []IngredientChange{{
			IngredientID:   hop.ID,
			IngredientName: hop.Name,
			Field:          FieldBoilTime,
			CurrentValue:   float64(hop.BoilTime),
			SuggestedValue: float64(newBoil),
		}},
	}
}

// GenerateHopAmountAdjustment proposes an amount change on the
// highest-alpha hop, the fallback for gaps timing cannot close. Returns
// nil when no hop can carry the change.
func GenerateHopAmountAdjustment(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	targetIBU float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	var hop *brewing.Ingredient
	for idx := range ingredients {
		ing := ingredients[idx]
		if ing.Category != brewing.CategoryHop {
			continue
		}
		if hop == nil || ing.AlphaAcid > hop.AlphaAcid {
			hop = &ingredients[idx]
		}
	}
	if hop == nil {
		return nil
	}

	gap := targetIBU - current.IBU
	perOunce := IBUPerOunce(*hop, recipe.BatchSize())
	if gap == 0 || perOunce <= 0 {
		return nil
	}

	newOunces := hop.AmountInOunces() + gap/perOunce
	if newOunces <= 0 {
		return nil
	}

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseHopBalance,
			TargetMetric:    brewing.MetricIBU,
			Approach:        ApproachAmountChange,
			Confidence:      confidenceFor(chars, deviation, math.Abs(gap) <= smallIBUGap),
			EstimatedImpact: gap,
			Reasoning: fmt.Sprintf(
				"Adjust %s (%.1f%% alpha) to %.2f oz to move bitterness toward %.0f IBU",
				hop.Name, hop.AlphaAcid, newOunces, targetIBU),
			CascadingEffects: nil,
		},
		Changes: []IngredientChange{{
			IngredientID:   hop.ID,
			IngredientName: hop.Name,
			Field:          FieldAmount,
			CurrentValue:   hop.Amount,
			SuggestedValue: brewing.FromPounds(newOunces/16, hop.Unit),
			Unit:           hop.Unit,
		}},
	}
}

// primaryBitteringHop is the hop carrying the most modeled IBU; ties to
// the longest boil.
func primaryBitteringHop(ingredients []brewing.Ingredient, batchGal float64) *brewing.Ingredient {
	var best *brewing.Ingredient
	var bestIBU float64
	for idx := range ingredients {
		ing := ingredients[idx]
		if ing.Category != brewing.CategoryHop {
			continue
		}
		contribution := IBUPerOunce(ing, batchGal) * ing.AmountInOunces()
		if best == nil || contribution > bestIBU ||
			(contribution == bestIBU && ing.BoilTime > best.BoilTime) {
			best = &ingredients[idx]
			bestIBU = contribution
		}
	}
	return best
}
