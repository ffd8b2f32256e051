package brewing

// MeasurementUnit represents units an ingredient amount can be expressed in.
type MeasurementUnit string

const (
	// Weight units for fermentables
	UnitPound    MeasurementUnit = "lb"
	UnitOunce    MeasurementUnit = "oz"
	UnitGram     MeasurementUnit = "g"
	UnitKilogram MeasurementUnit = "kg"

	// Count units for yeast
	UnitPackage MeasurementUnit = "pkg"
)

const (
	ouncesPerPound = 16.0
	gramsPerPound  = 453.59237
	gramsPerOunce  = gramsPerPound / ouncesPerPound
)

// ToPounds normalizes an amount in the given unit to pounds.
// Count units pass through unchanged.
func ToPounds(amount float64, unit MeasurementUnit) float64 {
	switch unit {
	case UnitOunce:
		return amount / ouncesPerPound
	case UnitGram:
		return amount / gramsPerPound
	case UnitKilogram:
		return amount * 1000 / gramsPerPound
	default:
		return amount
	}
}

// FromPounds converts a normalized pound amount back into the given unit.
// Round-tripping through ToPounds reproduces the original amount within
// floating-point tolerance.
func FromPounds(pounds float64, unit MeasurementUnit) float64 {
	switch unit {
	case UnitOunce:
		return pounds * ouncesPerPound
	case UnitGram:
		return pounds * gramsPerPound
	case UnitKilogram:
		return pounds * gramsPerPound / 1000
	default:
		return pounds
	}
}

// ToOunces normalizes an amount in the given unit to ounces. Hop amounts
// are conventionally worked in ounces.
func ToOunces(amount float64, unit MeasurementUnit) float64 {
	switch unit {
	case UnitPound:
		return amount * ouncesPerPound
	case UnitGram:
		return amount / gramsPerOunce
	case UnitKilogram:
		return amount * 1000 / gramsPerOunce
	default:
		return amount
	}
}
