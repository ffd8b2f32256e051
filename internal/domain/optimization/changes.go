package optimization

import (
	"github.com/brewsmith/v1/internal/domain/brewing"
)

// ApplyChanges materializes a change bundle into a fresh ingredient
// list for the authoritative recompute. Inputs are never mutated;
// invalid proposals are filtered out rather than applied.
func ApplyChanges(ingredients []brewing.Ingredient, changes []IngredientChange) []brewing.Ingredient {
	applied := make([]brewing.Ingredient, len(ingredients))
	copy(applied, ingredients)

	for _, c := range FilterChanges(changes) {
		switch c.Field {
		case FieldAmount:
			if c.IsNewIngredient {
				addition := *c.NewIngredient
				addition.Amount = c.SuggestedValue
				applied = append(applied, addition)
				continue
			}
			for idx := range applied {
				if applied[idx].ID == c.IngredientID {
					applied[idx] = applied[idx].WithAmount(c.SuggestedValue)
					break
				}
			}
		case FieldBoilTime:
			for idx := range applied {
				if applied[idx].ID == c.IngredientID {
					applied[idx] = applied[idx].WithBoilTime(int(c.SuggestedValue))
					break
				}
			}
		case FieldSwap:
			for idx := range applied {
				if applied[idx].ID == c.IngredientID {
					applied[idx] = *c.NewIngredient
					break
				}
			}
		}
	}
	return applied
}
