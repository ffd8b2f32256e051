// Package style models beer style guidelines: per-metric acceptable
// ranges plus the descriptive text they are published with, and the
// qualitative characteristics derived from both.
package style

import "github.com/brewsmith/v1/internal/domain/brewing"

// Range is an acceptable band for one metric. A nil bound means the
// style leaves that side unconstrained.
type Range struct {
	Min *float64
	Max *float64
}

// NewRange builds a fully bounded range.
func NewRange(min, max float64) Range {
	return Range{Min: &min, Max: &max}
}

// Defined reports whether the range constrains anything at all.
func (r Range) Defined() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether the value sits inside the range. Unbounded
// sides always pass.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Midpoint returns the center of the range. With a single bound it
// returns that bound; undefined ranges return 0.
func (r Range) Midpoint() float64 {
	switch {
	case r.Min != nil && r.Max != nil:
		return (*r.Min + *r.Max) / 2
	case r.Min != nil:
		return *r.Min
	case r.Max != nil:
		return *r.Max
	default:
		return 0
	}
}

// PointAt returns the value a fraction of the way from Min to Max.
// Falls back to Midpoint when either bound is missing.
func (r Range) PointAt(fraction float64) float64 {
	if r.Min == nil || r.Max == nil {
		return r.Midpoint()
	}
	return *r.Min + (*r.Max-*r.Min)*fraction
}

// Guide is a named beer style with its numeric ranges and the free-text
// descriptions used for characteristic inference.
type Guide struct {
	ID       string // BJCP-style identifier, e.g. "21A"
	Name     string
	Category string

	// Descriptive text, inference input only
	Aroma             string
	Flavor            string
	Appearance        string
	OverallImpression string

	OG  Range
	FG  Range
	ABV Range
	IBU Range
	SRM Range
}

// RangeFor returns the guide's range for the named metric.
func (g Guide) RangeFor(metric brewing.Metric) Range {
	switch metric {
	case brewing.MetricOG:
		return g.OG
	case brewing.MetricFG:
		return g.FG
	case brewing.MetricABV:
		return g.ABV
	case brewing.MetricIBU:
		return g.IBU
	case brewing.MetricSRM:
		return g.SRM
	default:
		return Range{}
	}
}
