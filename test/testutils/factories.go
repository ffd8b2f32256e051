// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	name       string
	batchSize  float64
	boilSize   float64
	efficiency float64
}

// NewRecipeBuilder creates a new recipe builder with sane five-gallon
// defaults.
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		name:       faker.BeerName(),
		batchSize:  5.0,
		boilSize:   6.5,
		efficiency: 0.72,
	}
}

// WithName sets the recipe name
func (rb *RecipeBuilder) WithName(name string) *RecipeBuilder {
	rb.name = name
	return rb
}

// WithBatchSize sets the fermenter volume in gallons
func (rb *RecipeBuilder) WithBatchSize(gallons float64) *RecipeBuilder {
	rb.batchSize = gallons
	return rb
}

// WithEfficiency sets the mash efficiency fraction
func (rb *RecipeBuilder) WithEfficiency(efficiency float64) *RecipeBuilder {
	rb.efficiency = efficiency
	return rb
}

// Build constructs the recipe, panicking on invalid builder state so
// tests fail loudly.
func (rb *RecipeBuilder) Build() *brewing.Recipe {
	recipe, err := brewing.NewRecipe(rb.name, rb.batchSize, rb.boilSize, rb.efficiency)
	if err != nil {
		panic(err)
	}
	return recipe
}

// Ingredient factories for the common bill-of-materials shapes.

// BaseMalt returns a 2-row base malt line.
func BaseMalt(pounds float64) brewing.Ingredient {
	return brewing.Ingredient{
		ID:       uuid.New(),
		Name:     "2-Row Pale Malt",
		Category: brewing.CategoryGrain,
		Amount:   pounds,
		Unit:     brewing.UnitPound,
		Color:    2,
		PPG:      37,
	}
}

// CrystalMalt returns a specialty crystal grain line.
func CrystalMalt(pounds, lovibond float64) brewing.Ingredient {
	return brewing.Ingredient{
		ID:       uuid.New(),
		Name:     "Crystal Malt",
		Category: brewing.CategoryGrain,
		Amount:   pounds,
		Unit:     brewing.UnitPound,
		Color:    lovibond,
		PPG:      34,
	}
}

// RoastedMalt returns a dark roasted grain line.
func RoastedMalt(pounds, lovibond float64) brewing.Ingredient {
	return brewing.Ingredient{
		ID:       uuid.New(),
		Name:     "Roasted Barley",
		Category: brewing.CategoryGrain,
		Amount:   pounds,
		Unit:     brewing.UnitPound,
		Color:    lovibond,
		PPG:      25,
	}
}

// BitteringHop returns a boil hop addition.
func BitteringHop(ounces, alphaAcid float64, boilMinutes int) brewing.Ingredient {
	return brewing.Ingredient{
		ID:        uuid.New(),
		Name:      "Columbus",
		Category:  brewing.CategoryHop,
		Amount:    ounces,
		Unit:      brewing.UnitOunce,
		AlphaAcid: alphaAcid,
		BoilTime:  boilMinutes,
	}
}

// AleYeast returns a yeast line with the given apparent attenuation.
func AleYeast(attenuation float64) brewing.Ingredient {
	return brewing.Ingredient{
		ID:          uuid.New(),
		Name:        "American Ale Yeast",
		Category:    brewing.CategoryYeast,
		Amount:      1,
		Unit:        brewing.UnitPackage,
		Attenuation: attenuation,
	}
}

// StyleBuilder provides a fluent interface for building test style guides
type StyleBuilder struct {
	guide style.Guide
}

// NewStyleBuilder creates a builder seeded with an American IPA shape.
func NewStyleBuilder() *StyleBuilder {
	return &StyleBuilder{
		guide: style.Guide{
			ID:                "21A",
			Name:              "American IPA",
			Category:          "IPA",
			Aroma:             "Prominent hop aroma with citrus, pine and tropical fruit.",
			Flavor:            "High hop flavor and bitterness with a clean, dry malt finish.",
			OverallImpression: "A decidedly hoppy and bitter pale ale.",
			OG:                style.NewRange(1.056, 1.070),
			FG:                style.NewRange(1.008, 1.014),
			ABV:               style.NewRange(5.5, 7.5),
			IBU:               style.NewRange(40, 70),
			SRM:               style.NewRange(6, 14),
		},
	}
}

// WithID sets the style identifier
func (sb *StyleBuilder) WithID(id string) *StyleBuilder {
	sb.guide.ID = id
	return sb
}

// WithName sets the style name
func (sb *StyleBuilder) WithName(name string) *StyleBuilder {
	sb.guide.Name = name
	return sb
}

// WithDescriptions sets the free-text fields used for characteristic inference
func (sb *StyleBuilder) WithDescriptions(aroma, flavor, overall string) *StyleBuilder {
	sb.guide.Aroma = aroma
	sb.guide.Flavor = flavor
	sb.guide.OverallImpression = overall
	return sb
}

// WithOG sets the original gravity range
func (sb *StyleBuilder) WithOG(min, max float64) *StyleBuilder {
	sb.guide.OG = style.NewRange(min, max)
	return sb
}

// WithFG sets the final gravity range
func (sb *StyleBuilder) WithFG(min, max float64) *StyleBuilder {
	sb.guide.FG = style.NewRange(min, max)
	return sb
}

// WithABV sets the alcohol range
func (sb *StyleBuilder) WithABV(min, max float64) *StyleBuilder {
	sb.guide.ABV = style.NewRange(min, max)
	return sb
}

// WithIBU sets the bitterness range
func (sb *StyleBuilder) WithIBU(min, max float64) *StyleBuilder {
	sb.guide.IBU = style.NewRange(min, max)
	return sb
}

// WithSRM sets the color range
func (sb *StyleBuilder) WithSRM(min, max float64) *StyleBuilder {
	sb.guide.SRM = style.NewRange(min, max)
	return sb
}

// Build returns the constructed guide.
func (sb *StyleBuilder) Build() style.Guide {
	return sb.guide
}

// IPAMetricsInStyle returns metrics that sit inside the default IPA ranges.
func IPAMetricsInStyle() brewing.RecipeMetrics {
	return brewing.RecipeMetrics{
		OG:  1.062,
		FG:  1.011,
		ABV: brewing.ABVFromGravity(1.062, 1.011),
		IBU: 55,
		SRM: 8,
	}
}
