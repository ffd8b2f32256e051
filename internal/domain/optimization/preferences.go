package optimization

import "github.com/brewsmith/v1/internal/domain/brewing"

// StylePreference carries expert overrides for one style: absolute
// priority replacements and where in the IBU range the style should aim.
// Structured entries take precedence; styles without an entry fall back
// to the characteristic-inference path.
type StylePreference struct {
	Priorities        map[brewing.Metric]float64
	IBUTargetFraction *float64
}

// Preferences maps style identifiers to their overrides. It is built
// once at startup and injected into the engine; the engine never reads
// ambient state.
type Preferences map[string]StylePreference

// Lookup returns the preference entry for a style, if any.
func (p Preferences) Lookup(styleID string) (StylePreference, bool) {
	if p == nil {
		return StylePreference{}, false
	}
	pref, ok := p[styleID]
	return pref, ok
}

func fraction(f float64) *float64 { return &f }

// DefaultPreferences returns the built-in expert table, keyed by BJCP
// identifier.
func DefaultPreferences() Preferences {
	return Preferences{
		// American IPA: bitterness defines the style, aim high in range.
		"21A": {
			Priorities:        map[brewing.Metric]float64{brewing.MetricIBU: 2.0},
			IBUTargetFraction: fraction(0.7),
		},
		// Double IPA
		"22A": {
			Priorities:        map[brewing.Metric]float64{brewing.MetricIBU: 2.0},
			IBUTargetFraction: fraction(0.75),
		},
		// American Stout: color is non-negotiable.
		"20B": {
			Priorities: map[brewing.Metric]float64{brewing.MetricSRM: 1.8},
		},
		// German Pils: pale and dry, FG discipline matters.
		"5D": {
			Priorities: map[brewing.Metric]float64{
				brewing.MetricSRM: 1.6,
				brewing.MetricFG:  1.5,
			},
			IBUTargetFraction: fraction(0.6),
		},
		// Irish Red: malt balance over bitterness.
		"15A": {
			Priorities:        map[brewing.Metric]float64{brewing.MetricIBU: 0.8},
			IBUTargetFraction: fraction(0.4),
		},
	}
}
