// Package optimizer provides the application layer for the recipe
// adjustment engine. It orchestrates the pure optimization domain,
// resolves styles through the catalog port, and performs the one
// external call the engine depends on: the authoritative metrics
// recompute, with a model-only fallback when it fails.
package optimizer

import (
	"context"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/optimization"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/brewsmith/v1/internal/ports/inbound"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the optimizer use cases.
type Service struct {
	calculator outbound.MetricsCalculator
	catalog    outbound.StyleCatalog
	prefs      optimization.Preferences
	blend      optimization.BlendPolicy
	metrics    *Metrics
	logger     *zap.Logger
}

// NewService creates the optimizer service.
func NewService(
	calculator outbound.MetricsCalculator,
	catalog outbound.StyleCatalog,
	prefs optimization.Preferences,
	metrics *Metrics,
	logger *zap.Logger,
) inbound.OptimizerService {
	if prefs == nil {
		prefs = optimization.DefaultPreferences()
	}
	return &Service{
		calculator: calculator,
		catalog:    catalog,
		prefs:      prefs,
		blend:      optimization.DefaultBlendPolicy(),
		metrics:    metrics,
		logger:     logger.Named("optimizer-service"),
	}
}

// AnalyzeStyleCompliance scores the current metrics against the style's
// ranges with characteristic-aware priorities.
func (s *Service) AnalyzeStyleCompliance(ctx context.Context, metrics brewing.RecipeMetrics, guide style.Guide) (*optimization.StyleCompliance, error) {
	chars := style.AnalyzeCharacteristics(guide)
	compliance := optimization.AnalyzeCompliance(metrics, guide, chars, s.prefs)

	if s.metrics != nil {
		s.metrics.ComplianceAnalyses.Inc()
		s.metrics.ComplianceScores.Observe(float64(compliance.OverallScore))
	}
	s.logger.Debug("Analyzed style compliance",
		zap.String("style", guide.Name),
		zap.Int("overall_score", compliance.OverallScore),
		zap.Int("critical_issues", len(compliance.CriticalIssues)),
	)

	return &compliance, nil
}

// GenerateOptimizationTargets ranks the numeric goals a brewer should
// chase, worst first.
func (s *Service) GenerateOptimizationTargets(ctx context.Context, compliance optimization.StyleCompliance, guide style.Guide) ([]optimization.Target, error) {
	chars := style.AnalyzeCharacteristics(guide)
	targets := optimization.GenerateTargets(compliance, guide, chars, s.prefs)

	s.logger.Debug("Generated optimization targets",
		zap.String("style", guide.Name),
		zap.Int("targets", len(targets)),
	)
	return targets, nil
}

// GenerateAdjustmentPlan runs the four-phase planner. Compliance is
// recomputed when the caller did not supply it.
func (s *Service) GenerateAdjustmentPlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*optimization.AdjustmentPlan, error) {
	if cmd.Recipe == nil {
		return nil, errors.NewValidationError("recipe is required")
	}

	chars := style.AnalyzeCharacteristics(cmd.Style)
	compliance := cmd.Compliance
	if compliance == nil {
		c := optimization.AnalyzeCompliance(cmd.Metrics, cmd.Style, chars, s.prefs)
		compliance = &c
	}

	plan := optimization.GeneratePlan(cmd.Recipe, cmd.Ingredients, cmd.Metrics, *compliance, cmd.Style, chars, s.prefs)

	if s.metrics != nil {
		s.metrics.PlansGenerated.Inc()
	}
	s.logger.Info("Generated adjustment plan",
		zap.String("recipe", cmd.Recipe.Name()),
		zap.String("style", cmd.Style.Name),
		zap.Int("phases", len(plan.Phases)),
		zap.Float64("estimated_compliance", plan.EstimatedCompliance),
	)

	return &plan, nil
}

// CalculateCascadingEffects previews a bundle of edits: the fast impact
// model estimates the combined effect, the authoritative recompute runs
// on the fully applied ingredient list, and the two are blended with
// fixed per-metric trust weights. A recompute failure degrades to the
// model-only prediction; a preview is advisory and never fails outright.
func (s *Service) CalculateCascadingEffects(ctx context.Context, cmd inbound.PreviewChangesCommand) (*optimization.CascadingEffects, error) {
	if cmd.Recipe == nil {
		return nil, errors.NewValidationError("recipe is required")
	}

	changes := optimization.FilterChanges(cmd.Changes)
	modeled := optimization.EstimateMetrics(cmd.Recipe, cmd.Ingredients, changes, cmd.Metrics)

	source := optimization.SourceModeled
	predicted := modeled

	applied := optimization.ApplyChanges(cmd.Ingredients, changes)
	authoritative, err := s.calculator.CalculateMetrics(ctx, cmd.Recipe, applied)
	switch {
	case err != nil:
		if s.metrics != nil {
			s.metrics.RecomputeFallbacks.Inc()
		}
		s.logger.Warn("Authoritative recompute failed, using model-only prediction",
			zap.String("recipe", cmd.Recipe.Name()),
			zap.Error(err),
		)
	case !authoritative.IsFinite():
		if s.metrics != nil {
			s.metrics.RecomputeFallbacks.Inc()
		}
		s.logger.Warn("Authoritative recompute returned non-finite metrics, using model-only prediction",
			zap.String("recipe", cmd.Recipe.Name()),
		)
	default:
		predicted = optimization.Blend(modeled, authoritative, s.blend)
		source = optimization.SourceBlended
	}

	effects := optimization.BuildEffects(cmd.Metrics, predicted, source, s.blend)
	if s.metrics != nil {
		s.metrics.EffectPreviews.WithLabelValues(string(source)).Inc()
	}

	return &effects, nil
}

// ResolveStyle looks up a style guide by name through the catalog.
func (s *Service) ResolveStyle(ctx context.Context, name string) (*style.Guide, error) {
	if name == "" {
		return nil, errors.NewValidationError("style name is required")
	}
	guide, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewStyleNotFoundError(name).WithCause(err)
	}
	return guide, nil
}
