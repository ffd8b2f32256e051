package optimization

import (
	"fmt"
	"math"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
)

// Scoring constants for the compliance report.
const (
	// A metric more than 50% outside its bound contributes zero to the
	// overall score.
	deviationFloor = 0.5

	// Critical issues need both a large deviation and a style-critical
	// priority; improvement areas only need a noticeable deviation.
	criticalDeviation    = 0.3
	criticalPriority     = 1.5
	improvementDeviation = 0.1

	maxPriority = 2.0

	// Gravity misses are judged against the full 100-point gravity scale,
	// so a 10-point miss is a 10% deviation wherever the bound sits.
	gravityPointScale = 100.0
)

// AnalyzeCompliance compares current metrics against a style's ranges,
// weighting each metric by how much the style cares about it. Metrics
// the style leaves unconstrained are trivially compliant and never block
// optimization.
func AnalyzeCompliance(
	metrics brewing.RecipeMetrics,
	guide style.Guide,
	chars style.Characteristics,
	prefs Preferences,
) StyleCompliance {
	report := StyleCompliance{
		Metrics: make(map[brewing.Metric]MetricCompliance, 5),
	}

	var weightedSum, prioritySum float64
	allInRange := true

	for _, metric := range brewing.AllMetrics() {
		value := metrics.Value(metric)
		mc := analyzeMetric(metric, value, guide.RangeFor(metric))
		mc.Priority = priorityFor(metric, guide.ID, chars, prefs)
		report.Metrics[metric] = mc

		score := 1.0
		if !mc.InRange {
			allInRange = false
			score = math.Max(0, 1-mc.Deviation/deviationFloor)
		}
		weightedSum += score * mc.Priority
		prioritySum += mc.Priority

		if mc.Deviation > criticalDeviation && mc.Priority > criticalPriority {
			report.CriticalIssues = append(report.CriticalIssues,
				fmt.Sprintf("%s is %.0f%% outside the style range", metric, mc.Deviation*100))
		}
		if mc.Deviation > improvementDeviation {
			report.ImprovementAreas = append(report.ImprovementAreas,
				fmt.Sprintf("%s should move toward %s", metric, formatTarget(metric, mc.Target)))
		}
	}

	if allInRange {
		report.OverallScore = 100
	} else if prioritySum > 0 {
		score := int(math.Round(100 * weightedSum / prioritySum))
		// A perfect score is reserved for full compliance; rounding must
		// not promote a hairline miss to 100.
		if score > 99 {
			score = 99
		}
		report.OverallScore = score
	}

	return report
}

// analyzeMetric computes the in/out flag, normalized deviation, and
// midpoint target for one metric. Gravity metrics are normalized to
// points above 1.000 and judged per gravityPointScale so that a
// 10-point miss registers as a 10% deviation.
func analyzeMetric(metric brewing.Metric, value float64, r style.Range) MetricCompliance {
	mc := MetricCompliance{
		Metric:       metric,
		CurrentValue: value,
		InRange:      true,
		Target:       value,
	}
	if !r.Defined() {
		return mc
	}

	mc.Target = r.Midpoint()
	mc.InRange = r.Contains(value)
	if mc.InRange {
		return mc
	}

	norm := normalized(metric, value)
	switch {
	case r.Min != nil && value < *r.Min:
		mc.Deviation = deviationFrom(metric, normalized(metric, *r.Min), norm)
	case r.Max != nil && value > *r.Max:
		mc.Deviation = deviationFrom(metric, normalized(metric, *r.Max), norm)
	}
	return mc
}

// deviationFrom is the normalized distance between an out-of-range value
// and the bound it missed. Gravity metrics use the fixed 100-point
// scale; everything else is relative to the bound itself.
func deviationFrom(metric brewing.Metric, bound, value float64) float64 {
	gap := math.Abs(value - bound)
	switch metric {
	case brewing.MetricOG, brewing.MetricFG:
		return gap / gravityPointScale
	default:
		if bound == 0 {
			return 0
		}
		return gap / math.Abs(bound)
	}
}

// normalized maps a metric value onto the scale deviations are judged
// on. OG and FG become gravity points; everything else is already
// proportional.
func normalized(metric brewing.Metric, value float64) float64 {
	switch metric {
	case brewing.MetricOG, brewing.MetricFG:
		return (value - 1) * 1000
	default:
		return value
	}
}

// priorityFor assigns the style-context weight for a metric: structured
// per-style overrides first, then the fixed characteristic table, then
// the 1.0 baseline.
func priorityFor(metric brewing.Metric, styleID string, chars style.Characteristics, prefs Preferences) float64 {
	if pref, ok := prefs.Lookup(styleID); ok {
		if p, ok := pref.Priorities[metric]; ok && p > 0 {
			return math.Min(p, maxPriority)
		}
	}

	switch metric {
	case brewing.MetricOG, brewing.MetricABV:
		return 1.5
	case brewing.MetricIBU:
		if chars.IsHopForward {
			return 2.0
		}
	case brewing.MetricSRM:
		if chars.IsDark || chars.IsLight {
			return 1.5
		}
	case brewing.MetricFG:
		if chars.IsMaltForward {
			return 1.5
		}
	}
	return 1.0
}

func formatTarget(metric brewing.Metric, target float64) string {
	switch metric {
	case brewing.MetricOG, brewing.MetricFG:
		return fmt.Sprintf("%.3f", target)
	default:
		return fmt.Sprintf("%.1f", target)
	}
}
