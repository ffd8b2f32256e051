package optimization

import (
	"fmt"
	"math"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/google/uuid"
)

// yeastCandidate is one curated swap option.
type yeastCandidate struct {
	name        string
	attenuation float64 // percent
}

// yeastLibrary covers the common attenuation band in ascending order.
var yeastLibrary = []yeastCandidate{
	{"Danstar Windsor", 68},
	{"Fermentis S-04", 71},
	{"Wyeast 1968 London ESB", 69},
	{"Fermentis US-05", 78},
	{"Lallemand Nottingham", 77},
	{"White Labs WLP001", 77},
	{"Lallemand Belle Saison", 85},
}

const (
	// Swaps within a point of the current strain aren't worth the risk.
	minAttenuationShift = 1.0

	smallABVGap = 0.4
)

// GenerateYeastSwapStrategy proposes replacing the recipe's yeast with a
// strain whose attenuation closes the remaining ABV gap without touching
// the grain bill. Returns nil when the recipe has no yeast or no strain
// moves attenuation meaningfully in the right direction.
func GenerateYeastSwapStrategy(
	ingredients []brewing.Ingredient,
	current brewing.RecipeMetrics,
	targetABV float64,
	chars style.Characteristics,
	deviation float64,
) *StrategyResult {
	var yeast *brewing.Ingredient
	for idx := range ingredients {
		if ingredients[idx].Category == brewing.CategoryYeast {
			yeast = &ingredients[idx]
			break
		}
	}
	if yeast == nil || current.OG <= 1 {
		return nil
	}

	// The attenuation that would land the target ABV at the current OG.
	requiredFG := current.OG - targetABV/brewing.ABVFactor
	requiredAttenuation := (current.OG - requiredFG) / (current.OG - 1) * 100

	raising := targetABV > current.ABV
	currentAttenuation := yeast.Attenuation
	if currentAttenuation == 0 {
		currentAttenuation = 75
	}

	best := pickYeast(requiredAttenuation, currentAttenuation, raising)
	if best == nil {
		return nil
	}

	replacement := brewing.Ingredient{
		ID:          uuid.New(),
		Name:        best.name,
		Category:    brewing.CategoryYeast,
		Amount:      yeast.Amount,
		Unit:        yeast.Unit,
		Attenuation: best.attenuation,
	}

	predictedFG := current.OG - (current.OG-1)*best.attenuation/100
	estimatedABVShift := brewing.ABVFromGravity(current.OG, predictedFG) - current.ABV

	direction := "raise"
	if !raising {
		direction = "reduce"
	}

	return &StrategyResult{
		Strategy: AdjustmentStrategy{
			Phase:           PhaseAlcoholContent,
			TargetMetric:    brewing.MetricABV,
			Approach:        ApproachIngredientSwap,
			Confidence:      confidenceFor(chars, deviation, math.Abs(targetABV-current.ABV) <= smallABVGap),
			EstimatedImpact: estimatedABVShift,
			Reasoning: fmt.Sprintf(
				"Swap %s for %s (%.0f%% attenuation) to %s ABV without reworking the grain bill",
				yeast.Name, best.name, best.attenuation, direction),
			CascadingEffects: []brewing.Metric{brewing.MetricFG},
		},
		Changes: []IngredientChange{{
			IngredientID:   yeast.ID,
			IngredientName: yeast.Name,
			Field:          FieldSwap,
			CurrentValue:   currentAttenuation,
			SuggestedValue: best.attenuation,
			NewIngredient:  &replacement,
		}},
	}
}

// pickYeast selects the library strain nearest the required attenuation
// that actually moves attenuation in the needed direction.
func pickYeast(required, current float64, raising bool) *yeastCandidate {
	var best *yeastCandidate
	var bestDistance float64
	for idx := range yeastLibrary {
		c := yeastLibrary[idx]
		if raising && c.attenuation <= current+minAttenuationShift {
			continue
		}
		if !raising && c.attenuation >= current-minAttenuationShift {
			continue
		}
		d := math.Abs(c.attenuation - required)
		if best == nil || d < bestDistance {
			best = &yeastLibrary[idx]
			bestDistance = d
		}
	}
	return best
}
