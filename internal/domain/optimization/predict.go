package optimization

import (
	"math"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/google/uuid"
)

// DefaultBlendPolicy returns the fixed per-metric trust split between
// the authoritative recompute and the fast impact model. Gravity and
// ABV lean on the recompute; color and bitterness lean on the model,
// where its first-order arithmetic tracks reality closely.
func DefaultBlendPolicy() BlendPolicy {
	return BlendPolicy{
		brewing.MetricOG:  {Authoritative: 0.75, Model: 0.25},
		brewing.MetricFG:  {Authoritative: 0.75, Model: 0.25},
		brewing.MetricABV: {Authoritative: 0.80, Model: 0.20},
		brewing.MetricIBU: {Authoritative: 0.35, Model: 0.65},
		brewing.MetricSRM: {Authoritative: 0.30, Model: 0.70},
	}
}

// FilterChanges drops proposals that could corrupt a prediction:
// non-finite values, negative amounts, and swaps or additions missing
// their ingredient data. Filtering is silent; a preview is advisory and
// should never fail on one bad row.
func FilterChanges(changes []IngredientChange) []IngredientChange {
	valid := make([]IngredientChange, 0, len(changes))
	for _, c := range changes {
		if math.IsNaN(c.SuggestedValue) || math.IsInf(c.SuggestedValue, 0) {
			continue
		}
		switch c.Field {
		case FieldAmount:
			if c.SuggestedValue < 0 {
				continue
			}
			if c.IsNewIngredient && c.NewIngredient == nil {
				continue
			}
		case FieldBoilTime:
			if c.SuggestedValue < 0 || c.SuggestedValue > maxBoilMinutes {
				continue
			}
		case FieldSwap:
			if c.NewIngredient == nil {
				continue
			}
		default:
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// EstimateMetrics predicts the combined effect of a change bundle using
// the impact model alone, without the authoritative pipeline. ABV is
// always rederived from the predicted gravities, keeping the three
// gravity-linked metrics internally consistent.
func EstimateMetrics(
	recipe *brewing.Recipe,
	ingredients []brewing.Ingredient,
	changes []IngredientChange,
	current brewing.RecipeMetrics,
) brewing.RecipeMetrics {
	byID := make(map[uuid.UUID]brewing.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	deltas := map[brewing.Metric]float64{}
	batch := recipe.BatchSize()

	for _, c := range FilterChanges(changes) {
		switch c.Field {
		case FieldAmount:
			subject, ok := changeSubject(c, byID)
			if !ok {
				continue
			}
			accumulateAmountDelta(deltas, subject, c, batch)
		case FieldBoilTime:
			hop, ok := byID[c.IngredientID]
			if !ok || hop.Category != brewing.CategoryHop {
				continue
			}
			perOunce := 74.89 * hop.AlphaAcid / batch
			shift := HopUtilization(int(c.SuggestedValue)) - HopUtilization(int(c.CurrentValue))
			deltas[brewing.MetricIBU] += perOunce * hop.AmountInOunces() * shift
		case FieldSwap:
			if c.NewIngredient.Category != brewing.CategoryYeast || current.OG <= 1 {
				continue
			}
			predictedFG := current.OG - (current.OG-1)*c.NewIngredient.Attenuation/100
			deltas[brewing.MetricFG] += predictedFG - current.FG
		}
	}

	applyInteractions(deltas)

	predicted := brewing.RecipeMetrics{
		OG:  current.OG + deltas[brewing.MetricOG],
		FG:  current.FG + deltas[brewing.MetricFG],
		IBU: math.Max(0, current.IBU+deltas[brewing.MetricIBU]),
		SRM: math.Max(0, current.SRM+deltas[brewing.MetricSRM]),
	}
	return predicted.WithDerivedABV()
}

// changeSubject resolves the ingredient a change applies to: an existing
// line item or the payload of a new addition.
func changeSubject(c IngredientChange, byID map[uuid.UUID]brewing.Ingredient) (brewing.Ingredient, bool) {
	if c.IsNewIngredient {
		return *c.NewIngredient, true
	}
	ing, ok := byID[c.IngredientID]
	return ing, ok
}

// accumulateAmountDelta adds an amount change's first-order metric
// impacts: dAmount x impact factor x the ingredient's own scaling.
func accumulateAmountDelta(deltas map[brewing.Metric]float64, subject brewing.Ingredient, c IngredientChange, batchGal float64) {
	unit := c.Unit
	if unit == "" {
		unit = subject.Unit
	}
	switch Classify(subject) {
	case ClassHop:
		deltaOz := brewing.ToOunces(c.SuggestedValue-c.CurrentValue, unit)
		deltas[brewing.MetricIBU] += deltaOz * IBUPerOunce(subject, batchGal)
	case ClassBaseMalt, ClassCrystalGrain, ClassRoastedGrain:
		deltaLbs := brewing.ToPounds(c.SuggestedValue-c.CurrentValue, unit)
		deltas[brewing.MetricOG] += deltaLbs * GravityPointsPerPound(subject, batchGal) / 1000
		deltas[brewing.MetricSRM] += deltaLbs * SRMPerPound(subject, batchGal)
	}
}

// applyInteractions propagates the fixed metric-coupling table over the
// accumulated deltas. ABV is never a secondary here; it is rederived
// from the gravities afterward.
func applyInteractions(deltas map[brewing.Metric]float64) {
	for _, in := range metricInteractions {
		primary := deltas[in.Primary]
		if primary == 0 {
			continue
		}
		switch in.Relation {
		case RelationDirect:
			deltas[in.Secondary] += primary * in.Strength
		case RelationInverse:
			deltas[in.Secondary] -= primary * in.Strength
		case RelationThreshold:
			if math.Abs(primary) > in.Activation {
				deltas[in.Secondary] += math.Copysign(in.Strength, primary)
			}
		}
	}
}

// Blend combines the modeled and authoritative predictions per the
// policy's per-metric weights, then rederives ABV from the blended
// gravities.
func Blend(modeled, authoritative brewing.RecipeMetrics, policy BlendPolicy) brewing.RecipeMetrics {
	blended := brewing.RecipeMetrics{}
	for _, metric := range brewing.AllMetrics() {
		w, ok := policy[metric]
		if !ok {
			w = MetricBlend{Authoritative: 0.5, Model: 0.5}
		}
		value := authoritative.Value(metric)*w.Authoritative + modeled.Value(metric)*w.Model
		blended = blended.WithValue(metric, value)
	}
	return blended.WithDerivedABV()
}

// BuildEffects assembles the preview result with per-metric deltas
// explained against the current metrics.
func BuildEffects(current, predicted brewing.RecipeMetrics, source PredictionSource, policy BlendPolicy) CascadingEffects {
	effects := CascadingEffects{
		PredictedMetrics: predicted,
		Impacts:          make(map[brewing.Metric]MetricChange, 5),
		Source:           source,
	}
	if source == SourceBlended {
		effects.Weights = policy
	}

	for _, metric := range brewing.AllMetrics() {
		cur := current.Value(metric)
		pred := predicted.Value(metric)
		mc := MetricChange{
			Metric:         metric,
			CurrentValue:   cur,
			PredictedValue: pred,
			Change:         pred - cur,
		}
		// Percent change judged on the same scale as deviations:
		// gravity points for OG/FG, raw value otherwise.
		if base := normalized(metric, cur); base != 0 {
			mc.ChangePercent = (normalized(metric, pred) - base) / base * 100
		}
		effects.Impacts[metric] = mc
	}
	return effects
}
