package brewing

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MetricsTestSuite provides a test suite for recipe metrics and entities
type MetricsTestSuite struct {
	suite.Suite
}

// TestABVDerivation tests the gravity/alcohol relation
func (suite *MetricsTestSuite) TestABVDerivation() {
	suite.Run("TypicalGravityDrop_ShouldMatchFactor", func() {
		// Arrange & Act
		abv := ABVFromGravity(1.056, 1.012)

		// Assert
		assert.InDelta(suite.T(), 0.044*131.25, abv, 1e-9)
	})

	suite.Run("WithDerivedABV_ShouldOverrideStaleValue", func() {
		// Arrange
		m := RecipeMetrics{OG: 1.060, FG: 1.010, ABV: 99}

		// Act
		m = m.WithDerivedABV()

		// Assert
		assert.InDelta(suite.T(), ABVFromGravity(1.060, 1.010), m.ABV, 1e-9)
	})
}

// TestValueAccessors tests the metric-keyed accessors
func (suite *MetricsTestSuite) TestValueAccessors() {
	// Arrange
	m := RecipeMetrics{OG: 1.050, FG: 1.010, ABV: 5.25, IBU: 40, SRM: 10}

	suite.Run("Value_ShouldReturnEachMetric", func() {
		assert.Equal(suite.T(), 1.050, m.Value(MetricOG))
		assert.Equal(suite.T(), 1.010, m.Value(MetricFG))
		assert.Equal(suite.T(), 5.25, m.Value(MetricABV))
		assert.Equal(suite.T(), 40.0, m.Value(MetricIBU))
		assert.Equal(suite.T(), 10.0, m.Value(MetricSRM))
	})

	suite.Run("WithValue_ShouldNotMutateReceiver", func() {
		// Act
		modified := m.WithValue(MetricIBU, 65)

		// Assert
		assert.Equal(suite.T(), 65.0, modified.IBU)
		assert.Equal(suite.T(), 40.0, m.IBU)
	})

	suite.Run("AllMetrics_ShouldCoverFiveInOrder", func() {
		assert.Equal(suite.T(),
			[]Metric{MetricOG, MetricFG, MetricABV, MetricIBU, MetricSRM},
			AllMetrics())
	})
}

// TestIsFinite tests non-finite detection
func (suite *MetricsTestSuite) TestIsFinite() {
	suite.Run("FiniteMetrics_ShouldPass", func() {
		m := RecipeMetrics{OG: 1.05, FG: 1.01, ABV: 5.2, IBU: 40, SRM: 8}
		assert.True(suite.T(), m.IsFinite())
	})

	suite.Run("NaN_ShouldFail", func() {
		m := RecipeMetrics{OG: math.NaN()}
		assert.False(suite.T(), m.IsFinite())
	})

	suite.Run("Infinity_ShouldFail", func() {
		m := RecipeMetrics{IBU: math.Inf(1)}
		assert.False(suite.T(), m.IsFinite())
	})
}

// TestRecipeCreation tests recipe construction invariants
func (suite *MetricsTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Act
		recipe, err := NewRecipe("West Coast IPA", 5, 6.5, 0.72)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), recipe)
		assert.NotEqual(suite.T(), uuid.Nil, recipe.ID())
		assert.Equal(suite.T(), "West Coast IPA", recipe.Name())
		assert.Equal(suite.T(), 5.0, recipe.BatchSize())
		assert.Equal(suite.T(), 0.72, recipe.Efficiency())
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		recipe, err := NewRecipe("", 5, 6.5, 0.72)
		assert.Nil(suite.T(), recipe)
		assert.ErrorIs(suite.T(), err, ErrRecipeNameRequired)
	})

	suite.Run("ZeroBatchSize_ShouldReturnError", func() {
		recipe, err := NewRecipe("Stout", 0, 6.5, 0.72)
		assert.Nil(suite.T(), recipe)
		assert.ErrorIs(suite.T(), err, ErrInvalidBatchSize)
	})

	suite.Run("EfficiencyAboveOne_ShouldReturnError", func() {
		recipe, err := NewRecipe("Stout", 5, 6.5, 1.2)
		assert.Nil(suite.T(), recipe)
		assert.ErrorIs(suite.T(), err, ErrInvalidEfficiency)
	})
}

// TestIngredientValidation tests ingredient invariants and helpers
func (suite *MetricsTestSuite) TestIngredientValidation() {
	suite.Run("ValidGrain_ShouldPass", func() {
		ing := Ingredient{Name: "2-Row Pale Malt", Category: CategoryGrain, Amount: 10, Unit: UnitPound}
		assert.NoError(suite.T(), ing.Validate())
	})

	suite.Run("NegativeAmount_ShouldFail", func() {
		ing := Ingredient{Name: "Cascade", Category: CategoryHop, Amount: -1, Unit: UnitOunce}
		assert.ErrorIs(suite.T(), ing.Validate(), ErrNegativeAmount)
	})

	suite.Run("UnknownCategory_ShouldFail", func() {
		ing := Ingredient{Name: "Mystery", Category: "mineral", Amount: 1, Unit: UnitGram}
		assert.ErrorIs(suite.T(), ing.Validate(), ErrUnknownCategory)
	})

	suite.Run("BaseMaltDetection_ShouldMatchFamilies", func() {
		assert.True(suite.T(), Ingredient{Name: "Maris Otter", Category: CategoryGrain}.IsBaseMalt())
		assert.True(suite.T(), Ingredient{Name: "German Pilsner Malt", Category: CategoryGrain}.IsBaseMalt())
		assert.False(suite.T(), Ingredient{Name: "Crystal 60", Category: CategoryGrain}.IsBaseMalt())
		assert.False(suite.T(), Ingredient{Name: "Pilsner", Category: CategoryHop}.IsBaseMalt())
	})

	suite.Run("WithAmount_ShouldCopy", func() {
		ing := Ingredient{Name: "2-Row", Category: CategoryGrain, Amount: 10, Unit: UnitPound}
		modified := ing.WithAmount(11)
		assert.Equal(suite.T(), 11.0, modified.Amount)
		assert.Equal(suite.T(), 10.0, ing.Amount)
	})
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
