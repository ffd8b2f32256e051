package optimization

import (
	"testing"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ImpactModelTestSuite provides a test suite for the ingredient impact model
type ImpactModelTestSuite struct {
	suite.Suite
}

// TestClassification tests the ingredient-to-class mapping
func (suite *ImpactModelTestSuite) TestClassification() {
	suite.Run("GrainBill_ShouldClassifyByRole", func() {
		bill := grainBill()

		assert.Equal(suite.T(), ClassBaseMalt, Classify(bill[0]))
		assert.Equal(suite.T(), ClassCrystalGrain, Classify(bill[1]))
		assert.Equal(suite.T(), ClassHop, Classify(bill[2]))
		assert.Equal(suite.T(), ClassYeast, Classify(bill[3]))
	})

	suite.Run("RoastedGrain_ShouldMatchByName", func() {
		roast := brewing.Ingredient{Name: "Blackprinz", Category: brewing.CategoryGrain, Color: 500}
		assert.Equal(suite.T(), ClassRoastedGrain, Classify(roast))
	})

	suite.Run("Adjunct_ShouldBeNeutral", func() {
		sugar := brewing.Ingredient{Name: "Irish Moss", Category: brewing.CategoryOther}
		assert.Equal(suite.T(), ClassNeutral, Classify(sugar))
	})
}

// TestFactorTables tests the static table invariants the planner relies on
func (suite *ImpactModelTestSuite) TestFactorTables() {
	suite.Run("HopClass_ShouldCascadeNowhere", func() {
		assert.Empty(suite.T(), impactModel[ClassHop].Cascades, "hop edits touch IBU only")
	})

	suite.Run("GravityBearingClasses_ShouldCarryReferencePPG", func() {
		for _, class := range []ImpactClass{ClassBaseMalt, ClassCrystalGrain, ClassRoastedGrain} {
			f := impactModel[class]
			assert.Greater(suite.T(), f.GravityPointsPerPound, 0.0, "%s", class)
			assert.Greater(suite.T(), f.ReferencePPG, 0.0, "%s", class)
		}
	})

	suite.Run("Interactions_ShouldNeverNudgeABV", func() {
		// ABV is rederived from OG/FG, never adjusted as a secondary.
		require.NotEmpty(suite.T(), metricInteractions)
		for _, rule := range metricInteractions {
			assert.NotEqual(suite.T(), brewing.MetricABV, rule.Secondary)
		}
	})
}

// TestUnitContributions tests the per-pound and per-ounce estimates
func (suite *ImpactModelTestSuite) TestUnitContributions() {
	suite.Run("BaseMaltAtReferencePPG_ShouldYieldTableFactor", func() {
		base := grainBill()[0] // 37 ppg
		assert.InDelta(suite.T(), 5.3, GravityPointsPerPound(base, 5), 1e-9)
	})

	suite.Run("RoastedGrain_ShouldScaleByColor", func() {
		roast := brewing.Ingredient{Name: "Blackprinz", Category: brewing.CategoryGrain, Color: 500, PPG: 25}
		// 0.15 x 500L x 5/5 gal
		assert.InDelta(suite.T(), 75.0, SRMPerPound(roast, 5), 1e-9)
	})

	suite.Run("Utilization_ShouldSaturateBelowAsymptote", func() {
		assert.Zero(suite.T(), HopUtilization(0))
		assert.Less(suite.T(), HopUtilization(60), HopUtilization(90))
		assert.Less(suite.T(), HopUtilization(240), 0.26)
	})

	suite.Run("SixtyMinuteHop_ShouldYieldKnownIBU", func() {
		hop := grainBill()[2] // 1 oz Columbus, 14% AA, 60 min
		assert.InDelta(suite.T(), 49.57, IBUPerOunce(hop, 5), 0.01)
	})
}

func TestImpactModelTestSuite(t *testing.T) {
	suite.Run(t, new(ImpactModelTestSuite))
}
