// Package brewing contains the core domain model for homebrew recipes:
// recipes, ingredients, measurement units, and the computed metrics that
// describe a finished beer.
package brewing

import "math"

// ABVFactor converts a gravity drop into alcohol by volume.
// ABV = (OG - FG) * 131.25 is the defining relation between the three
// gravity-linked metrics; any code that changes OG or FG must rederive
// ABV through it.
const ABVFactor = 131.25

// RecipeMetrics holds the five computed metrics for a recipe.
type RecipeMetrics struct {
	OG  float64 `json:"og"`  // original gravity, e.g. 1.056
	FG  float64 `json:"fg"`  // final gravity, e.g. 1.012
	ABV float64 `json:"abv"` // alcohol by volume, percent
	IBU float64 `json:"ibu"` // International Bitterness Units
	SRM float64 `json:"srm"` // Standard Reference Method color
}

// ABVFromGravity derives alcohol by volume from original and final gravity.
func ABVFromGravity(og, fg float64) float64 {
	return (og - fg) * ABVFactor
}

// WithDerivedABV returns a copy of the metrics with ABV recomputed from
// OG and FG, keeping the gravity-linked metrics internally consistent.
func (m RecipeMetrics) WithDerivedABV() RecipeMetrics {
	m.ABV = ABVFromGravity(m.OG, m.FG)
	return m
}

// Value returns the named metric's value.
func (m RecipeMetrics) Value(metric Metric) float64 {
	switch metric {
	case MetricOG:
		return m.OG
	case MetricFG:
		return m.FG
	case MetricABV:
		return m.ABV
	case MetricIBU:
		return m.IBU
	case MetricSRM:
		return m.SRM
	default:
		return 0
	}
}

// WithValue returns a copy of the metrics with the named metric replaced.
func (m RecipeMetrics) WithValue(metric Metric, value float64) RecipeMetrics {
	switch metric {
	case MetricOG:
		m.OG = value
	case MetricFG:
		m.FG = value
	case MetricABV:
		m.ABV = value
	case MetricIBU:
		m.IBU = value
	case MetricSRM:
		m.SRM = value
	}
	return m
}

// IsFinite reports whether every metric holds a finite value.
func (m RecipeMetrics) IsFinite() bool {
	for _, v := range []float64{m.OG, m.FG, m.ABV, m.IBU, m.SRM} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Metric identifies one of the five recipe metrics.
type Metric string

const (
	MetricOG  Metric = "og"
	MetricFG  Metric = "fg"
	MetricABV Metric = "abv"
	MetricIBU Metric = "ibu"
	MetricSRM Metric = "srm"
)

// AllMetrics lists the metrics in their canonical reporting order.
func AllMetrics() []Metric {
	return []Metric{MetricOG, MetricFG, MetricABV, MetricIBU, MetricSRM}
}
