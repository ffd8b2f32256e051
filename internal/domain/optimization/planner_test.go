package optimization

import (
	"testing"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PlannerTestSuite provides a test suite for the hierarchical phase planner
type PlannerTestSuite struct {
	suite.Suite
	recipe *brewing.Recipe
	prefs  Preferences
}

// SetupTest creates a fresh recipe and preference table per test
func (suite *PlannerTestSuite) SetupTest() {
	recipe, err := brewing.NewRecipe("Planner Batch", 5, 6.5, 0.72)
	require.NoError(suite.T(), err)
	suite.recipe = recipe
	suite.prefs = DefaultPreferences()
}

func (suite *PlannerTestSuite) plan(metrics brewing.RecipeMetrics, guide style.Guide) AdjustmentPlan {
	chars := style.AnalyzeCharacteristics(guide)
	compliance := AnalyzeCompliance(metrics, guide, chars, suite.prefs)
	return GeneratePlan(suite.recipe, grainBill(), metrics, compliance, guide, chars, suite.prefs)
}

// TestEmptyPlan tests the fully compliant path
func (suite *PlannerTestSuite) TestEmptyPlan() {
	suite.Run("CompliantRecipe_ShouldYieldEmptyPlan", func() {
		// Act
		plan := suite.plan(inStyleIPAMetrics(), testIPAGuide())

		// Assert
		assert.NotNil(suite.T(), plan.Phases, "phases must marshal as [] rather than null")
		assert.Empty(suite.T(), plan.Phases)
		assert.Zero(suite.T(), plan.TotalSteps)
		assert.Empty(suite.T(), plan.Dependencies)
		assert.Empty(suite.T(), plan.Warnings)
		assert.Equal(suite.T(), 100.0, plan.EstimatedCompliance)
	})
}

// TestHopPhaseRouting tests the timing-first preference
func (suite *PlannerTestSuite) TestHopPhaseRouting() {
	suite.Run("SmallIBUGap_ShouldUseTimingChange", func() {
		// Arrange: IBU 71 against a 61 target is a 10-IBU reduction, the
		// largest gap timing still handles.
		metrics := inStyleIPAMetrics()
		metrics.IBU = 71

		// Act
		plan := suite.plan(metrics, testIPAGuide())

		// Assert
		require.Len(suite.T(), plan.Phases, 1)
		phase := plan.Phases[0]
		assert.Equal(suite.T(), PhaseHopBalance, phase.Strategy.Phase)
		assert.Equal(suite.T(), ApproachTimingChange, phase.Strategy.Approach)
		assert.Equal(suite.T(), 1, plan.TotalSteps)

		require.Len(suite.T(), phase.Changes, 1)
		assert.Equal(suite.T(), FieldBoilTime, phase.Changes[0].Field)
		assert.Equal(suite.T(), 32.0, phase.Changes[0].SuggestedValue)
		assert.NotEmpty(suite.T(), phase.ValidationChecks)
	})

	suite.Run("LargeIBUGap_ShouldFallBackToAmountChange", func() {
		metrics := inStyleIPAMetrics()
		metrics.IBU = 30

		plan := suite.plan(metrics, testIPAGuide())

		require.Len(suite.T(), plan.Phases, 1)
		phase := plan.Phases[0]
		assert.Equal(suite.T(), ApproachAmountChange, phase.Strategy.Approach)
		assert.Equal(suite.T(), FieldAmount, phase.Changes[0].Field)
		assert.Greater(suite.T(), phase.Changes[0].SuggestedValue, phase.Changes[0].CurrentValue)
	})

	suite.Run("RaiseBeyondTimingsReach_ShouldFallBackToAmountChange", func() {
		// Arrange: a 10-IBU raise passes the gap gate, but the one-ounce
		// 60-minute addition cannot source it from boil time, so the
		// phase must land on the amount tactic.
		guide := testIPAGuide()
		guide.IBU = style.NewRange(60, 70)
		metrics := inStyleIPAMetrics()
		metrics.IBU = 57

		// Act
		plan := suite.plan(metrics, guide)

		// Assert
		require.Len(suite.T(), plan.Phases, 1)
		phase := plan.Phases[0]
		assert.Equal(suite.T(), PhaseHopBalance, phase.Strategy.Phase)
		assert.Equal(suite.T(), ApproachAmountChange, phase.Strategy.Approach)
		assert.Equal(suite.T(), FieldAmount, phase.Changes[0].Field)
		assert.Greater(suite.T(), phase.Changes[0].SuggestedValue, phase.Changes[0].CurrentValue)
	})
}

// TestPhaseOrdering tests the enum-order invariant and expected results
func (suite *PlannerTestSuite) TestPhaseOrdering() {
	suite.Run("MultiPhaseplan_ShouldEmitPhasesInAscendingOrder", func() {
		// Arrange: everything out of compliance at once.
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.040, FG: 1.011, ABV: 2.6, IBU: 20, SRM: 20}

		// Act
		plan := suite.plan(metrics, guide)

		// Assert
		require.Len(suite.T(), plan.Phases, 4)
		for i := 1; i < len(plan.Phases); i++ {
			assert.Greater(suite.T(), plan.Phases[i].Strategy.Phase, plan.Phases[i-1].Strategy.Phase)
		}
		assert.Equal(suite.T(), PhaseBaseGravity, plan.Phases[0].Strategy.Phase)
		assert.Equal(suite.T(), PhaseHopBalance, plan.Phases[3].Strategy.Phase)
	})

	suite.Run("EachPhase_ShouldCarryExpectedResults", func() {
		metrics := inStyleIPAMetrics()
		metrics.OG = 1.045

		plan := suite.plan(metrics, testIPAGuide())

		require.NotEmpty(suite.T(), plan.Phases)
		for _, phase := range plan.Phases {
			assert.True(suite.T(), phase.ExpectedResults.IsFinite())
			assert.NotEqual(suite.T(), brewing.RecipeMetrics{}, phase.ExpectedResults)
		}
	})
}

// TestAlcoholPhaseRouting tests the double-count guard
func (suite *PlannerTestSuite) TestAlcoholPhaseRouting() {
	suite.Run("OGAlreadyCorrected_ShouldSwapYeastInstead", func() {
		// Arrange: OG and ABV both low, so the gravity phase runs first
		// and the alcohol phase must not stack more grain on top of it.
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.045, FG: 1.011, ABV: 4.46, IBU: 55, SRM: 8}

		// Act
		plan := suite.plan(metrics, guide)

		// Assert
		require.Len(suite.T(), plan.Phases, 2)
		assert.Equal(suite.T(), PhaseBaseGravity, plan.Phases[0].Strategy.Phase)

		alcohol := plan.Phases[1]
		assert.Equal(suite.T(), PhaseAlcoholContent, alcohol.Strategy.Phase)
		assert.Equal(suite.T(), ApproachIngredientSwap, alcohol.Strategy.Approach)
		assert.Equal(suite.T(), FieldSwap, alcohol.Changes[0].Field)
	})

	suite.Run("OGInRange_ShouldRouteABVThroughGravity", func() {
		// OG compliant but thin: ABV 5.2 sits under the 5.5 floor.
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.057, FG: 1.018, ABV: 5.2, IBU: 55, SRM: 8}

		plan := suite.plan(metrics, guide)

		require.Len(suite.T(), plan.Phases, 1)
		phase := plan.Phases[0]
		assert.Equal(suite.T(), PhaseAlcoholContent, phase.Strategy.Phase)
		assert.Equal(suite.T(), brewing.MetricABV, phase.Strategy.TargetMetric)
		assert.Equal(suite.T(), ApproachAmountChange, phase.Strategy.Approach)
		assert.ElementsMatch(suite.T(),
			[]brewing.Metric{brewing.MetricOG, brewing.MetricFG},
			phase.Strategy.CascadingEffects)
	})
}

// TestDependencies tests cross-phase dependency notes
func (suite *PlannerTestSuite) TestDependencies() {
	suite.Run("GravityCascadeIntoAlcohol_ShouldBeRecorded", func() {
		// Arrange
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.045, FG: 1.011, ABV: 4.46, IBU: 55, SRM: 8}

		// Act
		plan := suite.plan(metrics, guide)

		// Assert
		require.NotEmpty(suite.T(), plan.Dependencies)
		assert.Contains(suite.T(), plan.Dependencies[0], "abv")
		assert.Contains(suite.T(), plan.Dependencies[0], "og")
	})

	suite.Run("SinglePhase_ShouldHaveNoDependencies", func() {
		metrics := inStyleIPAMetrics()
		metrics.IBU = 30

		plan := suite.plan(metrics, testIPAGuide())

		assert.Empty(suite.T(), plan.Dependencies)
	})
}

// TestConvergenceWarning tests the multi-phase warning
func (suite *PlannerTestSuite) TestConvergenceWarning() {
	suite.Run("FourActivePhases_ShouldWarnAboutReanalysis", func() {
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.040, FG: 1.011, ABV: 2.6, IBU: 20, SRM: 20}

		plan := suite.plan(metrics, guide)

		require.Len(suite.T(), plan.Phases, 4)
		require.NotEmpty(suite.T(), plan.Warnings)
		assert.Contains(suite.T(), plan.Warnings[0], "re-analyze")
	})

	suite.Run("TwoActivePhases_ShouldNotWarn", func() {
		guide := testIPAGuide()
		metrics := brewing.RecipeMetrics{OG: 1.045, FG: 1.011, ABV: 4.46, IBU: 55, SRM: 8}

		plan := suite.plan(metrics, guide)

		require.Len(suite.T(), plan.Phases, 2)
		assert.Empty(suite.T(), plan.Warnings)
	})
}

// TestEstimatedCompliance tests the optimistic re-score
func (suite *PlannerTestSuite) TestEstimatedCompliance() {
	suite.Run("InRangePlusAttempted_ShouldScaleOverFiveMetrics", func() {
		// Arrange: three compliant metrics and one attempted phase.
		compliance := StyleCompliance{Metrics: map[brewing.Metric]MetricCompliance{
			brewing.MetricOG:  {InRange: true},
			brewing.MetricFG:  {InRange: true},
			brewing.MetricABV: {InRange: true},
			brewing.MetricIBU: {InRange: false},
			brewing.MetricSRM: {InRange: false},
		}}

		// Act & Assert
		assert.Equal(suite.T(), 80.0, estimateCompliance(compliance, 1))
	})

	suite.Run("Estimate_ShouldCapAtHundred", func() {
		compliance := StyleCompliance{Metrics: map[brewing.Metric]MetricCompliance{
			brewing.MetricOG: {InRange: true},
			brewing.MetricFG: {InRange: true},
		}}

		assert.Equal(suite.T(), 100.0, estimateCompliance(compliance, 4))
	})
}

func TestPlannerTestSuite(t *testing.T) {
	suite.Run(t, new(PlannerTestSuite))
}

// Benchmark tests for the hot analysis paths

func BenchmarkAnalyzeCompliance(b *testing.B) {
	guide := testIPAGuide()
	chars := style.AnalyzeCharacteristics(guide)
	metrics := brewing.RecipeMetrics{OG: 1.045, FG: 1.016, ABV: 3.8, IBU: 25, SRM: 16}
	prefs := DefaultPreferences()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AnalyzeCompliance(metrics, guide, chars, prefs)
	}
}

func BenchmarkGeneratePlan(b *testing.B) {
	recipe, err := brewing.NewRecipe("Bench Batch", 5, 6.5, 0.72)
	if err != nil {
		b.Fatal(err)
	}
	ingredients := grainBill()
	guide := testIPAGuide()
	chars := style.AnalyzeCharacteristics(guide)
	prefs := DefaultPreferences()
	metrics := brewing.RecipeMetrics{OG: 1.040, FG: 1.011, ABV: 2.6, IBU: 20, SRM: 20}
	compliance := AnalyzeCompliance(metrics, guide, chars, prefs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GeneratePlan(recipe, ingredients, metrics, compliance, guide, chars, prefs)
	}
}
