package optimization

import (
	"fmt"
	"sort"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

const (
	// In-range metrics sitting within 10% of a bound are still worth
	// tightening, at a discount.
	boundaryMargin        = 0.1
	nearBoundaryDiscount  = 0.8
	hopForwardIBUFraction = 0.7

	importantDeviation = 0.2
	importantPriority  = 1.2
)

// GenerateTargets turns a compliance report into ranked numeric goals:
// one per out-of-range metric, plus discounted entries for compliant
// metrics that sit close to a boundary. The sort order governs both what
// a brewer sees first and what the planner attempts first within a phase.
func GenerateTargets(compliance StyleCompliance, guide style.Guide, chars style.Characteristics, prefs Preferences) []Target {
	var targets []Target

	for _, metric := range brewing.AllMetrics() {
		mc, ok := compliance.Metrics[metric]
		if !ok {
			continue
		}
		r := guide.RangeFor(metric)
		if !r.Defined() {
			continue
		}

		if !mc.InRange {
			targets = append(targets, Target{
				Metric:       metric,
				CurrentValue: mc.CurrentValue,
				TargetValue:  targetValue(metric, r, chars, guide.ID, prefs),
				Priority:     mc.Priority,
				Impact:       classifyImpact(mc.Deviation, mc.Priority),
				Reasoning:    outOfRangeReasoning(mc, r),
			})
			continue
		}

		if margin, ok := marginToBoundary(mc.CurrentValue, r); ok && margin < boundaryMargin {
			targets = append(targets, Target{
				Metric:       metric,
				CurrentValue: mc.CurrentValue,
				TargetValue:  targetValue(metric, r, chars, guide.ID, prefs),
				Priority:     mc.Priority * nearBoundaryDiscount,
				Impact:       classifyImpact(mc.Deviation, mc.Priority).Demote(),
				Reasoning: fmt.Sprintf("%s is compliant but within %.0f%% of the style boundary",
					metric, margin*100),
			})
		}
	}

	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].Impact != targets[j].Impact {
			return targets[i].Impact > targets[j].Impact
		}
		return targets[i].Priority > targets[j].Priority
	})

	return targets
}

// classifyImpact assigns the urgency tier from deviation and priority.
func classifyImpact(deviation, priority float64) ImpactTier {
	switch {
	case deviation > criticalDeviation && priority > criticalPriority:
		return TierCritical
	case deviation > importantDeviation || priority > importantPriority:
		return TierImportant
	default:
		return TierNiceToHave
	}
}

// targetValue refines the midpoint target with characteristic-aware
// skew: hop-forward styles aim for the upper part of the IBU range
// rather than the middle. Structured per-style fractions win over the
// inferred skew.
func targetValue(metric brewing.Metric, r style.Range, chars style.Characteristics, styleID string, prefs Preferences) float64 {
	if metric == brewing.MetricIBU {
		if pref, ok := prefs.Lookup(styleID); ok && pref.IBUTargetFraction != nil {
			return r.PointAt(*pref.IBUTargetFraction)
		}
		if chars.IsHopForward {
			return r.PointAt(hopForwardIBUFraction)
		}
	}
	return r.Midpoint()
}

// marginToBoundary returns the in-range value's distance to the nearer
// bound as a fraction of the range width. Only meaningful for fully
// bounded ranges.
func marginToBoundary(value float64, r style.Range) (float64, bool) {
	if r.Min == nil || r.Max == nil || *r.Max <= *r.Min {
		return 0, false
	}
	width := *r.Max - *r.Min
	lower := (value - *r.Min) / width
	upper := (*r.Max - value) / width
	if lower < upper {
		return lower, true
	}
	return upper, true
}

func outOfRangeReasoning(mc MetricCompliance, r style.Range) string {
	direction := "above"
	if r.Min != nil && mc.CurrentValue < *r.Min {
		direction = "below"
	}
	return fmt.Sprintf("%s is %.0f%% %s the style range; aim for %s",
		mc.Metric, mc.Deviation*100, direction, formatTarget(mc.Metric, mc.Target))
}
