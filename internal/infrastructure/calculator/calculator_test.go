package calculator

import (
	"context"
	"testing"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
	"github.com/brewsmith/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// CalculatorTestSuite provides a test suite for the authoritative recompute
type CalculatorTestSuite struct {
	suite.Suite
	service outbound.MetricsCalculator
	ctx     context.Context
}

// SetupSuite initializes the calculator once; it is stateless
func (suite *CalculatorTestSuite) SetupSuite() {
	suite.service = NewService(zap.NewNop())
	suite.ctx = context.Background()
}

// TestKnownRecipe tests the full pipeline against hand-computed values
func (suite *CalculatorTestSuite) TestKnownRecipe() {
	suite.Run("SingleMaltPaleAle_ShouldMatchHandCalculation", func() {
		// Arrange: 10 lb of 37 ppg two-row at 72% efficiency into 5
		// gallons is 53.28 gravity points; 75% attenuation leaves a
		// quarter of them; 1 oz of 14% alpha at 60 minutes lands near
		// 47 IBU under Tinseth at that gravity.
		recipe := testutils.NewRecipeBuilder().WithBatchSize(5).WithEfficiency(0.72).Build()
		ingredients := []brewing.Ingredient{
			testutils.BaseMalt(10),
			testutils.BitteringHop(1, 14, 60),
			testutils.AleYeast(75),
		}

		// Act
		metrics, err := suite.service.CalculateMetrics(suite.ctx, recipe, ingredients)

		// Assert
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1.05328, metrics.OG, 1e-5)
		assert.InDelta(suite.T(), 1.01332, metrics.FG, 1e-5)
		assert.InDelta(suite.T(), brewing.ABVFromGravity(metrics.OG, metrics.FG), metrics.ABV, 1e-9)
		assert.InDelta(suite.T(), 46.96, metrics.IBU, 0.05)
		assert.InDelta(suite.T(), 3.86, metrics.SRM, 0.01)
	})

	suite.Run("Determinism_ShouldHoldForIdenticalInputs", func() {
		recipe := testutils.NewRecipeBuilder().Build()
		ingredients := []brewing.Ingredient{
			testutils.BaseMalt(10),
			testutils.CrystalMalt(1, 60),
			testutils.BitteringHop(1, 14, 60),
			testutils.AleYeast(75),
		}

		first, err := suite.service.CalculateMetrics(suite.ctx, recipe, ingredients)
		require.NoError(suite.T(), err)
		second, err := suite.service.CalculateMetrics(suite.ctx, recipe, ingredients)
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), first, second)
	})
}

// TestIngredientFiltering tests which lines contribute to which metric
func (suite *CalculatorTestSuite) TestIngredientFiltering() {
	suite.Run("NoYeast_ShouldAssumeDefaultAttenuation", func() {
		// Arrange
		recipe := testutils.NewRecipeBuilder().Build()
		withYeast := []brewing.Ingredient{testutils.BaseMalt(10), testutils.AleYeast(75)}
		withoutYeast := []brewing.Ingredient{testutils.BaseMalt(10)}

		// Act
		a, err := suite.service.CalculateMetrics(suite.ctx, recipe, withYeast)
		require.NoError(suite.T(), err)
		b, err := suite.service.CalculateMetrics(suite.ctx, recipe, withoutYeast)
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), a.FG, b.FG)
	})

	suite.Run("FlameoutHop_ShouldAddNoBitterness", func() {
		recipe := testutils.NewRecipeBuilder().Build()
		ingredients := []brewing.Ingredient{
			testutils.BaseMalt(10),
			testutils.BitteringHop(2, 12, 0),
		}

		metrics, err := suite.service.CalculateMetrics(suite.ctx, recipe, ingredients)

		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), metrics.IBU)
	})

	suite.Run("EmptyBill_ShouldReturnWater", func() {
		recipe := testutils.NewRecipeBuilder().Build()

		metrics, err := suite.service.CalculateMetrics(suite.ctx, recipe, nil)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1.0, metrics.OG)
		assert.Equal(suite.T(), 1.0, metrics.FG)
		assert.Zero(suite.T(), metrics.ABV)
		assert.Zero(suite.T(), metrics.IBU)
		assert.Zero(suite.T(), metrics.SRM)
	})
}

// TestGuards tests input validation and context handling
func (suite *CalculatorTestSuite) TestGuards() {
	suite.Run("NilRecipe_ShouldReturnValidationError", func() {
		// Act
		_, err := suite.service.CalculateMetrics(suite.ctx, nil, nil)

		// Assert
		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeValidationFailed, errors.GetCode(err))
	})

	suite.Run("CancelledContext_ShouldReturnContextError", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		recipe := testutils.NewRecipeBuilder().Build()

		_, err := suite.service.CalculateMetrics(ctx, recipe, nil)

		assert.ErrorIs(suite.T(), err, context.Canceled)
	})
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}
