package optimization

import (
	"fmt"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/google/uuid"
)

const (
	// Gaps up to this many SRM suit a gravity-bearing Munich-type
	// addition; beyond it (or when malt flavor is unwelcome) a
	// dehusked roast grain colors without moving gravity.
	munichColorGapLimit = 12.0
	smallColorGap       = 5.0

	maxColorAdditionLbs = 4.0
	minColorAdditionLbs = 0.125 // an eighth of a pound is the smallest worthwhile addition
)

// Color-adjustment grain archetypes. Blackprinz carries almost no
// fermentable extract, so it colors without a gravity cascade.
var (
	munichDark = brewing.Ingredient{
		Name:     "Munich Dark",
		Category: brewing.CategoryGrain,
		Unit:     brewing.UnitPound,
		Color:    20,
		PPG:      34,
	}
	blackprinz = brewing.Ingredient{
		Name:     "Blackprinz",
		Category: brewing.CategoryGrain,
		Unit:     brewing.UnitPound,
		Color:    500,
		PPG:      25,
	}
)

// GenerateColorAdjustmentStrategy proposes a specialty-grain change
// sized toward the target SRM: a new addition to darken, or a
// proportional reduction of the darkest existing specialty grain to
// lighten. Returns nil when there is nothing safe to change.
func GenerateColorAdjustmentStrategy(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	targetSRM float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	gap := targetSRM - current.SRM
	if gap == 0 {
		return nil
	}
	if gap > 0 {
		return darkenStrategy(recipe, gap, chars, deviation)
	}
	return lightenStrategy(recipe, ingredients, current, -gap, chars, deviation)
}

func darkenStrategy(recipe *brewing.Recipe, gap float64, chars style.Characteristics, deviation float64) *StrategyResult {
	grain := munichDark
	cascades := []brewing.Metric{brewing.MetricOG}
	if gap > munichColorGapLimit || chars.IsHopForward {
		// Large corrections, or styles where added malt character would
		// fight the hops, use the near-zero-gravity roast grain.
		grain = blackprinz
		cascades = nil
	}

	srmPerLb := SRMPerPound(grain, recipe.BatchSize())
	if srmPerLb <= 0 {
		return nil
	}
	lbs := gap / srmPerLb
	if lbs < minColorAdditionLbs {
		lbs = minColorAdditionLbs
	}
	if lbs > maxColorAdditionLbs {
		lbs = maxColorAdditionLbs
	}

	addition := grain
	addition.ID = uuid.New()
	addition.Amount = lbs

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseColorBalance,
			TargetMetric:    brewing.MetricSRM,
			Approach:        ApproachNewIngredient,
			Confidence:      confidenceFor(chars, deviation, gap <= smallColorGap),
			EstimatedImpact: lbs * srmPerLb,
			Reasoning: fmt.Sprintf(
				"Add %.2f lb %s to deepen color by roughly %.1f SRM", lbs, grain.Name, lbs*srmPerLb),
			CascadingEffects: cascades,
		},
		Changes: []IngredientChange{{
			IngredientID:    addition.ID,
			IngredientName:  addition.Name,
			Field:           FieldAmount,
			CurrentValue:    0,
			SuggestedValue:  lbs,
			Unit:            brewing.UnitPound,
			IsNewIngredient: true,
			NewIngredient:   &addition,
		}},
	}
}

func lightenStrategy(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	excess float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	// The single darkest specialty grain carries most of the excess.
	var darkest *brewing.Ingredient
	for idx := range ingredients {
		ing := ingredients[idx]
		if ing.Category != brewing.CategoryGrain || ing.IsBaseMalt() {
			continue
		}
		if darkest == nil || ing.Color > darkest.Color {
			darkest = &ingredients[idx]
		}
	}
	if darkest == nil || darkest.Color <= 0 {
		return nil
	}

	contribution := SRMPerPound(*darkest, recipe.BatchSize()) * darkest.AmountInPounds()
	if contribution <= 0 {
		return nil
	}

	// Reduce in proportion to this grain's share of the color excess,
	// never below zero.
	reduction := excess / contribution
	if reduction > 1 {
		reduction = 1
	}
	newLbs := darkest.AmountInPounds() * (1 - reduction)

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseColorBalance,
			TargetMetric:    brewing.MetricSRM,
			Approach:        ApproachAmountChange,
			Confidence:      confidenceFor(chars, deviation, excess <= smallColorGap),
			EstimatedImpact: -contribution * reduction,
			Reasoning: fmt.Sprintf(
				"Cut %s by %.0f%% to shed roughly %.1f SRM of excess color",
				darkest.Name, reduction*100, contribution*reduction),
			CascadingEffects: nil,
		},
		Changes: []IngredientChange{{
			IngredientID:   darkest.ID,
			IngredientName: darkest.Name,
			Field:          FieldAmount,
			CurrentValue:   darkest.Amount,
			SuggestedValue: brewing.FromPounds(newLbs, darkest.Unit),
			Unit:           darkest.Unit,
		}},
	}
}
