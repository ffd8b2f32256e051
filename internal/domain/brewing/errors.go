package brewing

import "errors"

// Domain errors for recipe and ingredient values

var (
	ErrRecipeNameRequired     = errors.New("recipe name is required")
	ErrInvalidBatchSize       = errors.New("batch and boil size must be greater than 0")
	ErrInvalidEfficiency      = errors.New("mash efficiency must be in (0, 1]")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeAmount         = errors.New("ingredient amount cannot be negative")
	ErrUnknownCategory        = errors.New("unknown ingredient category")
)
