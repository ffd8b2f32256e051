package optimization

import (
	"math"
	"strings"

	"github.com/brewsmith/v1/internal/domain/brewing"
)

// ImpactClass buckets ingredients by how a unit change in their amount
// moves the output metrics.
type ImpactClass string

const (
	ClassBaseMalt     ImpactClass = "base_malt"
	ClassCrystalGrain ImpactClass = "crystal_grain"
	ClassRoastedGrain ImpactClass = "roasted_grain"
	ClassHop          ImpactClass = "hop"
	ClassYeast        ImpactClass = "yeast"
	ClassNeutral      ImpactClass = "neutral"
)

// ImpactFactors describe, per class, the first-order effect of a unit
// amount change in a reference 5-gallon batch, plus which metrics
// cascade from it. Per-ingredient attributes (PPG, color, alpha acid)
// scale the reference factors.
type ImpactFactors struct {
	GravityPointsPerPound float64 // OG points (x1000) per pound at reference PPG
	ReferencePPG          float64
	SRMPerLovibondPound   float64 // SRM per (degree Lovibond x pound)
	Cascades              []brewing.Metric
}

// impactModel is the static lookup at the bottom of the engine. Values
// are first-order planning estimates, deliberately coarser than the
// authoritative calculator.
var impactModel = map[ImpactClass]ImpactFactors{
	ClassBaseMalt: {
		GravityPointsPerPound: 5.3, // 37 ppg x 72% efficiency / 5 gal
		ReferencePPG:          37,
		SRMPerLovibondPound:   0.15,
		Cascades:              []brewing.Metric{brewing.MetricABV, brewing.MetricFG},
	},
	ClassCrystalGrain: {
		GravityPointsPerPound: 4.9, // 34 ppg x 72% / 5 gal
		ReferencePPG:          34,
		SRMPerLovibondPound:   0.15,
		Cascades:              []brewing.Metric{brewing.MetricOG, brewing.MetricABV},
	},
	ClassRoastedGrain: {
		GravityPointsPerPound: 3.6, // 25 ppg x 72% / 5 gal
		ReferencePPG:          25,
		SRMPerLovibondPound:   0.15,
		Cascades:              []brewing.Metric{brewing.MetricOG},
	},
	ClassHop: {
		Cascades: nil, // hop amount and timing touch IBU only
	},
	ClassYeast: {
		Cascades: []brewing.Metric{brewing.MetricFG, brewing.MetricABV},
	},
	ClassNeutral: {},
}

// roastedNames mark grains whose gravity contribution is secondary to
// their color contribution.
var roastedNames = []string{
	"black", "roast", "chocolate", "carafa", "blackprinz", "midnight",
	"patent", "de-bittered",
}

var crystalNames = []string{
	"crystal", "caramel", "cara", "munich", "honey malt", "special b",
	"victory", "biscuit",
}

// Classify maps an ingredient onto the impact model.
func Classify(i brewing.Ingredient) ImpactClass {
	switch i.Category {
	case brewing.CategoryHop:
		return ClassHop
	case brewing.CategoryYeast:
		return ClassYeast
	case brewing.CategoryGrain:
		if i.IsBaseMalt() {
			return ClassBaseMalt
		}
		name := strings.ToLower(i.Name)
		for _, n := range roastedNames {
			if strings.Contains(name, n) {
				return ClassRoastedGrain
			}
		}
		for _, n := range crystalNames {
			if strings.Contains(name, n) {
				return ClassCrystalGrain
			}
		}
		return ClassCrystalGrain
	default:
		return ClassNeutral
	}
}

// GravityPointsPerPound returns the modeled OG contribution (points
// x1000) of one pound of the ingredient in the given batch, scaling the
// reference factor by the ingredient's own PPG when it carries one.
func GravityPointsPerPound(i brewing.Ingredient, batchGal float64) float64 {
	f := impactModel[Classify(i)]
	if f.GravityPointsPerPound == 0 || batchGal <= 0 {
		return 0
	}
	points := f.GravityPointsPerPound * 5 / batchGal
	if i.PPG > 0 && f.ReferencePPG > 0 {
		points *= i.PPG / f.ReferencePPG
	}
	return points
}

// SRMPerPound returns the modeled color contribution of one pound of the
// ingredient in the given batch.
func SRMPerPound(i brewing.Ingredient, batchGal float64) float64 {
	f := impactModel[Classify(i)]
	if f.SRMPerLovibondPound == 0 || batchGal <= 0 || i.Color <= 0 {
		return 0
	}
	return f.SRMPerLovibondPound * i.Color * 5 / batchGal
}

// HopUtilization is a boil-time utilization curve (Tinseth-shaped,
// flattened for planning use in average-strength wort).
func HopUtilization(boilMinutes int) float64 {
	if boilMinutes <= 0 {
		return 0
	}
	return 0.26 * (1 - math.Exp(-0.04*float64(boilMinutes)))
}

// IBUPerOunce returns the modeled bitterness contribution of one ounce
// of the hop at its boil time in the given batch.
func IBUPerOunce(i brewing.Ingredient, batchGal float64) float64 {
	if batchGal <= 0 || i.AlphaAcid <= 0 {
		return 0
	}
	// 74.89 converts AAU (oz x alpha percent) x utilization / gallons to IBU.
	return 74.89 * i.AlphaAcid * HopUtilization(i.BoilTime) / batchGal
}

// InteractionRelation describes how a secondary metric follows a primary.
type InteractionRelation string

const (
	RelationDirect    InteractionRelation = "direct"
	RelationInverse   InteractionRelation = "inverse"
	RelationThreshold InteractionRelation = "threshold"
)

// MetricInteraction is one (primary, secondary) coupling rule. Strength
// is the fraction of the primary delta propagated; threshold relations
// only activate once the primary delta clears Activation.
type MetricInteraction struct {
	Primary    brewing.Metric
	Secondary  brewing.Metric
	Relation   InteractionRelation
	Strength   float64
	Activation float64
}

// metricInteractions couples the gravity-linked metrics. ABV is absent
// as a secondary on purpose: it is always rederived from OG/FG rather
// than nudged.
var metricInteractions = []MetricInteraction{
	// More extract leaves proportionally more residual sugar behind.
	{Primary: brewing.MetricOG, Secondary: brewing.MetricFG, Relation: RelationDirect, Strength: 0.25},
	// Large color corrections drag gravity once the grain bill moves
	// enough to matter.
	{Primary: brewing.MetricSRM, Secondary: brewing.MetricOG, Relation: RelationThreshold, Strength: 0.0004, Activation: 5},
}
