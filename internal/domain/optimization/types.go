// Package optimization implements the recipe adjustment planning engine:
// style compliance scoring, optimization target generation, tactical
// adjustment strategies, the hierarchical phase planner, and the
// ingredient-impact model used to predict cascading effects.
//
// Everything in this package is pure computation over immutable value
// objects. The one external call the engine depends on, the
// authoritative metrics recompute, lives behind the outbound
// MetricsCalculator port and is orchestrated by the application layer.
package optimization

import (
	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/google/uuid"
)

// Phase identifies one step of the fixed adjustment sequence. The order
// is an invariant: earlier phases cascade into the metrics later phases
// correct, so plans are always emitted in ascending phase order.
type Phase int

const (
	PhaseBaseGravity Phase = iota + 1
	PhaseColorBalance
	PhaseAlcoholContent
	PhaseHopBalance
)

// String returns the phase's wire name.
func (p Phase) String() string {
	switch p {
	case PhaseBaseGravity:
		return "base_gravity"
	case PhaseColorBalance:
		return "color_balance"
	case PhaseAlcoholContent:
		return "alcohol_content"
	case PhaseHopBalance:
		return "hop_balance"
	default:
		return "unknown"
	}
}

// Metric returns the metric a phase is responsible for.
func (p Phase) Metric() brewing.Metric {
	switch p {
	case PhaseBaseGravity:
		return brewing.MetricOG
	case PhaseColorBalance:
		return brewing.MetricSRM
	case PhaseAlcoholContent:
		return brewing.MetricABV
	case PhaseHopBalance:
		return brewing.MetricIBU
	default:
		return ""
	}
}

// AllPhases lists the phases in planning order.
func AllPhases() []Phase {
	return []Phase{PhaseBaseGravity, PhaseColorBalance, PhaseAlcoholContent, PhaseHopBalance}
}

// ConfidenceLevel grades how sure the engine is that a proposed change
// will land near its estimate. Assignment follows fixed expert rules,
// not a learned model.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Approach names the tactic a strategy takes.
type Approach string

const (
	ApproachAmountChange   Approach = "amount_change"
	ApproachTimingChange   Approach = "timing_change"
	ApproachIngredientSwap Approach = "ingredient_swap"
	ApproachNewIngredient  Approach = "new_ingredient"
)

// ChangeField names the ingredient attribute a change edits.
type ChangeField string

const (
	FieldAmount   ChangeField = "amount"
	FieldBoilTime ChangeField = "boil_time"
	FieldSwap     ChangeField = "ingredient"
)

// IngredientChange is one atomic proposed edit: an amount change, a
// timing change, a swap, or a new ingredient addition. For additions
// IngredientID is uuid.Nil and NewIngredient carries the full data.
type IngredientChange struct {
	IngredientID    uuid.UUID               `json:"ingredient_id"`
	IngredientName  string                  `json:"ingredient_name"`
	Field           ChangeField             `json:"field"`
	CurrentValue    float64                 `json:"current_value"`
	SuggestedValue  float64                 `json:"suggested_value"`
	Unit            brewing.MeasurementUnit `json:"unit,omitempty"`
	IsNewIngredient bool                    `json:"is_new_ingredient,omitempty"`
	NewIngredient   *brewing.Ingredient     `json:"new_ingredient,omitempty"`
}

// AdjustmentStrategy is the "why" behind a set of ingredient changes.
type AdjustmentStrategy struct {
	Phase            Phase            `json:"phase"`
	TargetMetric     brewing.Metric   `json:"target_metric"`
	Approach         Approach         `json:"approach"`
	Confidence       ConfidenceLevel  `json:"confidence"`
	Reasoning        string           `json:"reasoning"`
	EstimatedImpact  float64          `json:"estimated_impact"`
	CascadingEffects []brewing.Metric `json:"cascading_effects"`
}

// IngredientAdjustment is one phase's concrete output.
type IngredientAdjustment struct {
	Strategy         AdjustmentStrategy    `json:"strategy"`
	Changes          []IngredientChange    `json:"changes"`
	ExpectedResults  brewing.RecipeMetrics `json:"expected_results"`
	ValidationChecks []string              `json:"validation_checks,omitempty"`
}

// AdjustmentPlan is the engine's full output for one recipe/style pair.
type AdjustmentPlan struct {
	Phases              []IngredientAdjustment `json:"phases"`
	TotalSteps          int                    `json:"total_steps"`
	EstimatedCompliance float64                `json:"estimated_compliance"`
	Dependencies        []string               `json:"dependencies,omitempty"`
	Warnings            []string               `json:"warnings,omitempty"`
}

// MetricCompliance describes one metric's standing against its style range.
type MetricCompliance struct {
	Metric       brewing.Metric `json:"metric"`
	CurrentValue float64        `json:"current_value"`
	InRange      bool           `json:"in_range"`
	Deviation    float64        `json:"deviation"`
	Target       float64        `json:"target"`
	Priority     float64        `json:"priority"`
}

// StyleCompliance is the full compliance report for a recipe.
type StyleCompliance struct {
	Metrics          map[brewing.Metric]MetricCompliance `json:"metrics"`
	OverallScore     int                                 `json:"overall_score"`
	CriticalIssues   []string                            `json:"critical_issues,omitempty"`
	ImprovementAreas []string                            `json:"improvement_areas,omitempty"`
}

// ImpactTier ranks how urgently a target needs attention. Higher sorts
// first.
type ImpactTier int

const (
	TierNiceToHave ImpactTier = iota + 1
	TierImportant
	TierCritical
)

// String returns the tier's wire name.
func (t ImpactTier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierImportant:
		return "important"
	default:
		return "nice_to_have"
	}
}

// Demote lowers a tier one step, flooring at nice-to-have.
func (t ImpactTier) Demote() ImpactTier {
	if t > TierNiceToHave {
		return t - 1
	}
	return TierNiceToHave
}

// Target is a ranked numeric goal for one metric.
type Target struct {
	Metric       brewing.Metric `json:"metric"`
	CurrentValue float64        `json:"current_value"`
	TargetValue  float64        `json:"target_value"`
	Priority     float64        `json:"priority"`
	Impact       ImpactTier     `json:"impact"`
	Reasoning    string         `json:"reasoning"`
}

// PredictionSource records which branch produced a prediction, making
// the blending policy an inspectable value rather than inline arithmetic.
type PredictionSource string

const (
	SourceModeled       PredictionSource = "modeled"
	SourceAuthoritative PredictionSource = "authoritative"
	SourceBlended       PredictionSource = "blended"
)

// MetricBlend is the trust split between the authoritative recompute and
// the fast impact model for one metric. The two weights sum to 1.
type MetricBlend struct {
	Authoritative float64 `json:"authoritative"`
	Model         float64 `json:"model"`
}

// BlendPolicy assigns a trust split per metric.
type BlendPolicy map[brewing.Metric]MetricBlend

// MetricChange explains one metric's predicted delta.
type MetricChange struct {
	Metric         brewing.Metric `json:"metric"`
	CurrentValue   float64        `json:"current_value"`
	PredictedValue float64        `json:"predicted_value"`
	Change         float64        `json:"change"`
	ChangePercent  float64        `json:"change_percent"`
}

// CascadingEffects is the output of previewing a bundle of edits.
type CascadingEffects struct {
	PredictedMetrics brewing.RecipeMetrics           `json:"predicted_metrics"`
	Impacts          map[brewing.Metric]MetricChange `json:"impacts"`
	Source           PredictionSource                `json:"source"`
	Weights          BlendPolicy                     `json:"weights,omitempty"`
}
