package optimization

import (
	"testing"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ComplianceTestSuite provides a test suite for style compliance analysis
type ComplianceTestSuite struct {
	suite.Suite
	prefs Preferences
}

// SetupSuite initializes the test suite
func (suite *ComplianceTestSuite) SetupSuite() {
	suite.prefs = DefaultPreferences()
}

func testIPAGuide() style.Guide {
	return style.Guide{
		ID:                "21A",
		Name:              "American IPA",
		Aroma:             "Prominent hop aroma with citrus pine and tropical fruit",
		Flavor:            "High hop flavor and bitterness, hoppy and resinous throughout",
		OverallImpression: "A decidedly hoppy and bitter pale ale",
		OG:                style.NewRange(1.056, 1.070),
		FG:                style.NewRange(1.008, 1.014),
		ABV:               style.NewRange(5.5, 7.5),
		IBU:               style.NewRange(40, 70),
		SRM:               style.NewRange(6, 14),
	}
}

func inStyleIPAMetrics() brewing.RecipeMetrics {
	return brewing.RecipeMetrics{
		OG: 1.062, FG: 1.011, ABV: brewing.ABVFromGravity(1.062, 1.011), IBU: 55, SRM: 8,
	}
}

// TestFullCompliance tests the all-in-range path
func (suite *ComplianceTestSuite) TestFullCompliance() {
	suite.Run("AllMetricsInRange_ShouldScoreHundred", func() {
		// Arrange
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)

		// Act
		report := AnalyzeCompliance(inStyleIPAMetrics(), guide, chars, suite.prefs)

		// Assert
		assert.Equal(suite.T(), 100, report.OverallScore)
		assert.Empty(suite.T(), report.CriticalIssues)
		assert.Empty(suite.T(), report.ImprovementAreas)
		for _, metric := range brewing.AllMetrics() {
			mc := report.Metrics[metric]
			assert.True(suite.T(), mc.InRange, "%s should be in range", metric)
			assert.Zero(suite.T(), mc.Deviation)
		}
	})

	suite.Run("Analysis_ShouldBeIdempotent", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()

		first := AnalyzeCompliance(metrics, guide, chars, suite.prefs)
		second := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		assert.Equal(suite.T(), first, second)
	})
}

// TestGravityDeviation tests the gravity-points normalization
func (suite *ComplianceTestSuite) TestGravityDeviation() {
	suite.Run("TenPointsBelowBound_ShouldDeviateTenPercent", func() {
		// Arrange: OG 1.040 against a 1.050-1.056 window is a 10-point
		// miss on the 100-point gravity scale.
		guide := testIPAGuide()
		guide.OG = style.NewRange(1.050, 1.056)
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.OG = 1.040

		// Act
		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		// Assert
		og := report.Metrics[brewing.MetricOG]
		assert.False(suite.T(), og.InRange)
		assert.InDelta(suite.T(), 0.1, og.Deviation, 1e-9)
		assert.InDelta(suite.T(), 1.053, og.Target, 1e-9)
		assert.Less(suite.T(), report.OverallScore, 100)
	})

	suite.Run("AboveGravityMax_ShouldUseSameScale", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.FG = 1.020 // six points over the 1.014 ceiling

		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		fg := report.Metrics[brewing.MetricFG]
		assert.False(suite.T(), fg.InRange)
		assert.InDelta(suite.T(), 0.06, fg.Deviation, 1e-9)
	})

	suite.Run("AboveMax_ShouldDeviateRelativeToMaxBound", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.IBU = 84 // 20% above the 70 bound

		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		ibu := report.Metrics[brewing.MetricIBU]
		assert.False(suite.T(), ibu.InRange)
		assert.InDelta(suite.T(), 0.2, ibu.Deviation, 1e-9)
	})
}

// TestScoring tests the weighted overall score
func (suite *ComplianceTestSuite) TestScoring() {
	suite.Run("Score_ShouldStayWithinBounds", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)

		// A wildly off recipe still scores in [0, 100].
		metrics := brewing.RecipeMetrics{OG: 1.120, FG: 1.040, ABV: 10.5, IBU: 5, SRM: 45}
		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		assert.GreaterOrEqual(suite.T(), report.OverallScore, 0)
		assert.Less(suite.T(), report.OverallScore, 100)
	})

	suite.Run("HundredScore_OnlyWhenEverythingInRange", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.SRM = 15.5 // barely out

		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		assert.Less(suite.T(), report.OverallScore, 100)
	})

	suite.Run("HairlineMiss_ShouldNotRoundUpToHundred", func() {
		// Arrange: a miss so small the weighted average rounds to 100.
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.SRM = 14.001

		// Act
		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		// Assert
		assert.False(suite.T(), report.Metrics[brewing.MetricSRM].InRange)
		assert.Equal(suite.T(), 99, report.OverallScore)
	})

	suite.Run("LargeMissOnPriorityMetric_ShouldRaiseCriticalIssue", func() {
		// Arrange: IBU priority for 21A is 2.0 via the preference table;
		// a 40% miss crosses the critical threshold.
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.IBU = 20 // 50% below the 40 bound

		// Act
		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		// Assert
		require.NotEmpty(suite.T(), report.CriticalIssues)
		assert.Contains(suite.T(), report.CriticalIssues[0], "ibu")
		assert.NotEmpty(suite.T(), report.ImprovementAreas)
	})
}

// TestUnconstrainedMetrics tests ranges a style leaves open
func (suite *ComplianceTestSuite) TestUnconstrainedMetrics() {
	suite.Run("UndefinedRange_ShouldBeTriviallyCompliant", func() {
		// Arrange
		guide := testIPAGuide()
		guide.FG = style.Range{}
		chars := style.AnalyzeCharacteristics(guide)
		metrics := inStyleIPAMetrics()
		metrics.FG = 1.030 // would fail the usual FG window

		// Act
		report := AnalyzeCompliance(metrics, guide, chars, suite.prefs)

		// Assert
		fg := report.Metrics[brewing.MetricFG]
		assert.True(suite.T(), fg.InRange)
		assert.Zero(suite.T(), fg.Deviation)
	})
}

// TestPriorities tests the style-context weighting rules
func (suite *ComplianceTestSuite) TestPriorities() {
	suite.Run("PreferenceTable_ShouldOverrideInference", func() {
		guide := testIPAGuide()
		chars := style.AnalyzeCharacteristics(guide)

		report := AnalyzeCompliance(inStyleIPAMetrics(), guide, chars, suite.prefs)

		assert.Equal(suite.T(), 2.0, report.Metrics[brewing.MetricIBU].Priority)
		assert.Equal(suite.T(), 1.5, report.Metrics[brewing.MetricOG].Priority)
	})

	suite.Run("HopForwardWithoutPreference_ShouldStillBoostIBU", func() {
		guide := testIPAGuide()
		guide.ID = "XX" // no preference entry
		chars := style.AnalyzeCharacteristics(guide)

		report := AnalyzeCompliance(inStyleIPAMetrics(), guide, chars, nil)

		assert.Equal(suite.T(), 2.0, report.Metrics[brewing.MetricIBU].Priority)
	})
}

func TestComplianceTestSuite(t *testing.T) {
	suite.Run(t, new(ComplianceTestSuite))
}
