package optimization

import (
	"fmt"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

const (
	// IBU gaps at or under this close cleanly with a timing change,
	// which leaves every other metric untouched.
	timingGapLimit = 10.0

	// Past this many simultaneous phases a single pass rarely
	// converges; the caller should re-analyze after applying.
	convergencePhaseLimit = 3
)

// GeneratePlan walks the fixed four-phase sequence, attempting each
// phase only when its metric is out of compliance and its tactical
// generator has a safe candidate. Phases are emitted in enum order, an
// invariant the caller can rely on: earlier phases cascade into the
// metrics later phases correct.
func GeneratePlan(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	metrics brewing.RecipeMetrics,
	compliance StyleCompliance,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
) AdjustmentPlan {
	plan := AdjustmentPlan{Phases: []IngredientAdjustment{}}

	ogCorrected := false
	for _, phase := range AllPhases() {
		mc, ok := compliance.Metrics[phase.Metric()]
		if !ok || mc.InRange {
			continue
		}

		var result *StrategyResult
		switch phase {
		case PhaseBaseGravity:
			result = planGravityPhase(recipe, ingredients, metrics, guide, chars, prefs, mc)
			ogCorrected = result != nil
		case PhaseColorBalance:
			result = planColorPhase(recipe, ingredients, metrics, guide, chars, prefs, mc)
		case PhaseAlcoholContent:
			result = planAlcoholPhase(recipe, ingredients, metrics, guide, chars, prefs, mc, ogCorrected)
		case PhaseHopBalance:
			result = planHopPhase(recipe, ingredients, metrics, guide, chars, prefs, mc)
		}
		if result == nil {
			continue
		}

		plan.Phases = append(plan.Phases, IngredientAdjustment{
			Strategy:         result.Strategy,
			Changes:          result.Changes,
			ExpectedResults:  EstimateMetrics(recipe, ingredients, result.Changes, metrics),
			ValidationChecks: validationChecksFor(result.Strategy),
		})
		plan.TotalSteps += len(result.Changes)
	}

	plan.Dependencies = derivePhaseDependencies(plan.Phases)
	if len(plan.Phases) > convergencePhaseLimit {
		plan.Warnings = append(plan.Warnings,
			"more than three phases are active; apply the plan and re-analyze rather than expecting one pass to converge")
	}
	plan.EstimatedCompliance = estimateCompliance(compliance, len(plan.Phases))

	return plan
}

func planGravityPhase(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	metrics brewing.RecipeMetrics,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
	mc MetricCompliance,
) *StrategyResult {
	target := targetValue(brewing.MetricOG, guide.OG, chars, guide.ID, prefs)
	return GenerateGravityAdjustment(recipe, ingredients, metrics, target, chars, mc.Deviation)
}

func planColorPhase(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	metrics brewing.RecipeMetrics,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
	mc MetricCompliance,
) *StrategyResult {
	target := targetValue(brewing.MetricSRM, guide.SRM, chars, guide.ID, prefs)
	return GenerateColorAdjustmentStrategy(recipe, ingredients, metrics, target, chars, mc.Deviation)
}

// planAlcoholPhase routes the ABV correction. When the gravity phase is
// already moving OG this cycle, piling on more gravity changes would
// double-count its effect, so the remaining gap goes to a yeast swap
// instead.
func planAlcoholPhase(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	metrics brewing.RecipeMetrics,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
	mc MetricCompliance,
	ogCorrected bool,
) *StrategyResult {
	targetABV := targetValue(brewing.MetricABV, guide.ABV, chars, guide.ID, prefs)

	if ogCorrected {
		return GenerateYeastSwapStrategy(ingredients, metrics, targetABV, chars, mc.Deviation)
	}

	// Gravity route: size a base-malt change for the ABV gap and relabel
	// it as this phase's work.
	targetOG := metrics.OG + (targetABV-metrics.ABV)/brewing.ABVFactor
	result := GenerateGravityAdjustment(recipe, ingredients, metrics, targetOG, chars, mc.Deviation)
	if result == nil {
		return nil
	}
	result.Strategy.Phase = PhaseAlcoholContent
	result.Strategy.TargetMetric = brewing.MetricABV
	result.Strategy.CascadingEffects = []brewing.Metric{brewing.MetricOG, brewing.MetricFG}
	result.Strategy.Reasoning = fmt.Sprintf(
		"Shift base gravity toward %.3f to move ABV toward %.1f%%", targetOG, targetABV)
	return result
}

// planHopPhase prefers a timing change for small gaps and falls back to
// an amount change when timing has no safe candidate or the gap is too
// large for utilization alone.
func planHopPhase(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	metrics brewing.RecipeMetrics,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
	mc MetricCompliance,
) *StrategyResult {
	target := targetValue(brewing.MetricIBU, guide.IBU, chars, guide.ID, prefs)
	gap := target - metrics.IBU

	if gap >= -timingGapLimit && gap <= timingGapLimit {
		if result := GenerateHopTimingAdjustment(recipe, ingredients, metrics, target, chars, mc.Deviation); result != nil {
			return result
		}
	}
	return GenerateHopAmountAdjustment(recipe, ingredients, metrics, target, chars, mc.Deviation)
}

// derivePhaseDependencies notes every pair of phases where an earlier
// phase cascades into a later phase's target metric.
func derivePhaseDependencies(phases []IngredientAdjustment) []string {
	var deps []string
	for i := 0; i < len(phases); i++ {
		for j := i + 1; j < len(phases); j++ {
			for _, cascade := range phases[i].Strategy.CascadingEffects {
				if cascade == phases[j].Strategy.TargetMetric {
					deps = append(deps, fmt.Sprintf(
						"%s adjustments depend on %s changes — complete the %s phase first",
						phases[j].Strategy.TargetMetric,
						phases[i].Strategy.TargetMetric,
						phases[i].Strategy.Phase))
				}
			}
		}
	}
	return deps
}

// estimateCompliance is a coarse optimistic re-score: metrics already in
// range plus metrics this plan attempts, over the five metrics.
func estimateCompliance(compliance StyleCompliance, attemptedPhases int) float64 {
	inRange := 0
	for _, mc := range compliance.Metrics {
		if mc.InRange {
			inRange++
		}
	}
	score := float64(inRange+attemptedPhases) / 5 * 100
	if score > 100 {
		score = 100
	}
	return score
}

func validationChecksFor(s AdjustmentStrategy) []string {
	switch s.Phase {
	case PhaseBaseGravity:
		return []string{"verify pre-boil gravity against the new grain bill before pitching"}
	case PhaseColorBalance:
		return []string{"confirm the color sample after a short test mash"}
	case PhaseAlcoholContent:
		return []string{"check the replacement strain's temperature range against the fermentation plan"}
	case PhaseHopBalance:
		return []string{"re-taste bitterness balance at packaging"}
	default:
		return nil
	}
}
