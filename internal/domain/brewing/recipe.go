package brewing

import "github.com/google/uuid"

// Recipe is the aggregate the optimization engine analyzes. The engine
// treats it as an immutable snapshot; persistence and editing belong to
// the surrounding application.
type Recipe struct {
	id         uuid.UUID
	name       string
	batchSize  float64 // gallons into the fermenter
	boilSize   float64 // gallons at boil start
	efficiency float64 // mash efficiency as a fraction, e.g. 0.72
}

// NewRecipe creates a recipe snapshot with validation.
func NewRecipe(name string, batchSizeGal, boilSizeGal, efficiency float64) (*Recipe, error) {
	if name == "" {
		return nil, ErrRecipeNameRequired
	}
	if batchSizeGal <= 0 || boilSizeGal <= 0 {
		return nil, ErrInvalidBatchSize
	}
	if efficiency <= 0 || efficiency > 1 {
		return nil, ErrInvalidEfficiency
	}
	return &Recipe{
		id:         uuid.New(),
		name:       name,
		batchSize:  batchSizeGal,
		boilSize:   boilSizeGal,
		efficiency: efficiency,
	}, nil
}

// ID returns the recipe's unique identifier.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name.
func (r *Recipe) Name() string {
	return r.name
}

// BatchSize returns the fermenter volume in gallons.
func (r *Recipe) BatchSize() float64 {
	return r.batchSize
}

// BoilSize returns the boil volume in gallons.
func (r *Recipe) BoilSize() float64 {
	return r.boilSize
}

// Efficiency returns the mash efficiency fraction.
func (r *Recipe) Efficiency() float64 {
	return r.efficiency
}
