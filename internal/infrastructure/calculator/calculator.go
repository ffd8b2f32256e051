// Package calculator implements the authoritative recipe metrics
// recompute behind the outbound MetricsCalculator port. It does the full
// per-ingredient math (point contributions, Tinseth utilization, Morey
// color) rather than the engine's linearized impact model.
package calculator

import (
	"context"
	"math"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
	"go.uber.org/zap"
)

const (
	// defaultAttenuation is assumed when the recipe carries no yeast
	// or the yeast has no attenuation figure.
	defaultAttenuation = 75.0

	// Tinseth boil-time utilization shape.
	tinsethBignessBase = 1.65
	tinsethBignessExp  = 0.000125
	tinsethTimeRate    = 0.04
	tinsethMaxUtil     = 4.15

	// AAU (oz x alpha percent) to IBU conversion for gallon batches.
	ibuFactor = 74.89

	// Morey color model coefficients.
	moreyCoefficient = 1.4922
	moreyExponent    = 0.6859
)

// Service computes the five recipe metrics from first principles.
type Service struct {
	logger *zap.Logger
}

// NewService creates the authoritative metrics calculator.
func NewService(logger *zap.Logger) outbound.MetricsCalculator {
	return &Service{logger: logger.Named("metrics-calculator")}
}

// CalculateMetrics computes OG, FG, ABV, IBU and SRM for a recipe's full
// ingredient list. The result is deterministic for identical inputs.
func (s *Service) CalculateMetrics(ctx context.Context, recipe *brewing.Recipe, ingredients []brewing.Ingredient) (brewing.RecipeMetrics, error) {
	if err := ctx.Err(); err != nil {
		return brewing.RecipeMetrics{}, err
	}
	if recipe == nil {
		return brewing.RecipeMetrics{}, errors.NewValidationError("recipe is required")
	}
	if recipe.BatchSize() <= 0 {
		return brewing.RecipeMetrics{}, errors.NewCalculationError("batch size must be positive", nil)
	}

	og := s.originalGravity(recipe, ingredients)
	fg := s.finalGravity(og, ingredients)
	ibu := s.bitterness(recipe, ingredients, og)
	srm := s.color(recipe, ingredients)

	metrics := brewing.RecipeMetrics{
		OG:  og,
		FG:  fg,
		ABV: brewing.ABVFromGravity(og, fg),
		IBU: ibu,
		SRM: srm,
	}
	if !metrics.IsFinite() {
		return brewing.RecipeMetrics{}, errors.NewCalculationError("metrics are not finite", nil)
	}

	s.logger.Debug("Calculated recipe metrics",
		zap.String("recipe", recipe.Name()),
		zap.Float64("og", og),
		zap.Float64("fg", fg),
		zap.Float64("ibu", ibu),
		zap.Float64("srm", srm),
	)
	return metrics, nil
}

// originalGravity sums fermentable point contributions scaled by mash
// efficiency over the batch volume.
func (s *Service) originalGravity(recipe *brewing.Recipe, ingredients []brewing.Ingredient) float64 {
	points := 0.0
	for _, ing := range ingredients {
		if ing.Category != brewing.CategoryGrain || ing.PPG <= 0 {
			continue
		}
		points += ing.PPG * ing.AmountInPounds()
	}
	return 1 + points*recipe.Efficiency()/recipe.BatchSize()/1000
}

// finalGravity applies the yeast's apparent attenuation to the gravity
// points above water.
func (s *Service) finalGravity(og float64, ingredients []brewing.Ingredient) float64 {
	attenuation := defaultAttenuation
	for _, ing := range ingredients {
		if ing.Category == brewing.CategoryYeast && ing.Attenuation > 0 {
			attenuation = ing.Attenuation
			break
		}
	}
	return 1 + (og-1)*(1-attenuation/100)
}

// bitterness computes Tinseth IBUs over all hop additions.
func (s *Service) bitterness(recipe *brewing.Recipe, ingredients []brewing.Ingredient, og float64) float64 {
	ibu := 0.0
	for _, ing := range ingredients {
		if ing.Category != brewing.CategoryHop || ing.AlphaAcid <= 0 || ing.BoilTime <= 0 {
			continue
		}
		util := tinsethUtilization(og, float64(ing.BoilTime))
		ibu += ibuFactor * ing.AmountInOunces() * ing.AlphaAcid * util / recipe.BatchSize()
	}
	return ibu
}

// tinsethUtilization is the bigness factor times the boil time factor.
func tinsethUtilization(og float64, boilMinutes float64) float64 {
	bigness := tinsethBignessBase * math.Pow(tinsethBignessExp, og-1)
	timeFactor := (1 - math.Exp(-tinsethTimeRate*boilMinutes)) / tinsethMaxUtil
	return bigness * timeFactor
}

// color computes malt color units and maps them through the Morey curve.
func (s *Service) color(recipe *brewing.Recipe, ingredients []brewing.Ingredient) float64 {
	mcu := 0.0
	for _, ing := range ingredients {
		if ing.Category != brewing.CategoryGrain || ing.Color <= 0 {
			continue
		}
		mcu += ing.Color * ing.AmountInPounds() / recipe.BatchSize()
	}
	if mcu <= 0 {
		return 0
	}
	return moreyCoefficient * math.Pow(mcu, moreyExponent)
}
