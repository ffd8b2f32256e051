package brewing

import (
	"strings"

	"github.com/google/uuid"
)

// IngredientCategory classifies an ingredient by its role in the recipe.
type IngredientCategory string

const (
	CategoryGrain IngredientCategory = "grain"
	CategoryHop   IngredientCategory = "hop"
	CategoryYeast IngredientCategory = "yeast"
	CategoryOther IngredientCategory = "other"
)

// Ingredient is one line item of a recipe's bill of materials.
// It is a value object; proposed adjustments always construct modified
// copies rather than mutating in place.
type Ingredient struct {
	ID       uuid.UUID
	Name     string
	Category IngredientCategory
	Amount   float64
	Unit     MeasurementUnit

	// Fermentable attributes
	Color float64 // degrees Lovibond
	PPG   float64 // gravity points per pound per gallon, e.g. 37 for 2-row

	// Hop attributes
	AlphaAcid float64 // percent
	BoilTime  int     // minutes

	// Yeast attributes
	Attenuation float64 // percent, e.g. 75
}

// Validate checks the ingredient's structural invariants.
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrIngredientNameRequired
	}
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	switch i.Category {
	case CategoryGrain, CategoryHop, CategoryYeast, CategoryOther:
	default:
		return ErrUnknownCategory
	}
	return nil
}

// AmountInPounds returns the ingredient amount normalized to pounds.
func (i Ingredient) AmountInPounds() float64 {
	return ToPounds(i.Amount, i.Unit)
}

// AmountInOunces returns the ingredient amount normalized to ounces.
func (i Ingredient) AmountInOunces() float64 {
	return ToOunces(i.Amount, i.Unit)
}

// WithAmount returns a copy of the ingredient with a new amount.
func (i Ingredient) WithAmount(amount float64) Ingredient {
	i.Amount = amount
	return i
}

// WithBoilTime returns a copy of the ingredient with a new boil time.
func (i Ingredient) WithBoilTime(minutes int) Ingredient {
	i.BoilTime = minutes
	return i
}

// baseMaltFamilies are name fragments that identify a grain as a base
// malt rather than a specialty addition.
var baseMaltFamilies = []string{
	"2-row", "two row", "pale malt", "pilsner", "pilsen", "maris otter",
	"golden promise", "vienna", "pale ale malt", "wheat malt", "lager malt",
}

// IsBaseMalt reports whether the grain reads as a base-malt family member.
// Matching is by curated name fragments; unmatched grains are treated as
// specialty additions.
func (i Ingredient) IsBaseMalt() bool {
	if i.Category != CategoryGrain {
		return false
	}
	name := strings.ToLower(i.Name)
	for _, family := range baseMaltFamilies {
		if strings.Contains(name, family) {
			return true
		}
	}
	return false
}
