package emissions

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/feral-file/carbon-engine/internal/domain"
)

const (
	uomTonneKm     = "tonne.km"
	uomPassengerKm = "passenger.km"
)

type dimension int

const (
	dimEnergy dimension = iota + 1
	dimMass
	// dimPerUnit measures never convert into one another
	dimPerUnit
)

type unit struct {
	scale decimal.Decimal
	dim   dimension
}

// units converts a unit to its base (Wh for energy, kg for mass)
var units = map[string]unit{
	"wh":  {decimal.New(1, 0), dimEnergy},
	"kwh": {decimal.New(1, 3), dimEnergy},
	"mwh": {decimal.New(1, 6), dimEnergy},
	"gwh": {decimal.New(1, 9), dimEnergy},
	"twh": {decimal.New(1, 12), dimEnergy},

	"kg":     {decimal.New(1, 0), dimMass},
	"t":      {decimal.New(1, 3), dimMass},
	"ton":    {decimal.New(1, 3), dimMass},
	"tons":   {decimal.New(1, 3), dimMass},
	"tonnes": {decimal.New(1, 3), dimMass},
	"g":      {decimal.New(1, -3), dimMass},
	"kt":     {decimal.New(1, 6), dimMass},
	"mt":     {decimal.New(1, 9), dimMass},
	"gt":     {decimal.New(1, 12), dimMass},
	// petagram, the same mass as a gigatonne
	"pg": {decimal.New(1, 12), dimMass},

	uomPassengerKm:   {decimal.New(1, 0), dimPerUnit},
	uomTonneKm:       {decimal.New(1, 0), dimPerUnit},
	"room per night": {decimal.New(1, 0), dimPerUnit},
}

func lookupUnit(uom string) (unit, bool) {
	u, ok := units[strings.ToLower(strings.TrimSpace(uom))]
	return u, ok
}

// UOMScale returns the scale of a unit, case-insensitively
func UOMScale(uom string) (decimal.Decimal, error) {
	u, ok := lookupUnit(uom)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidUOM, uom)
	}
	return u.scale, nil
}

// sameUOM compares units case-insensitively
func sameUOM(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// compatibleUOM reports whether an amount in a can be expressed in b
func compatibleUOM(a, b string) bool {
	if sameUOM(a, b) {
		return true
	}
	ua, okA := lookupUnit(a)
	ub, okB := lookupUnit(b)
	return okA && okB && ua.dim == ub.dim && ua.dim != dimPerUnit
}

// perUnitUOM returns the unit a factor's co2e is expressed per:
// the denominator of a rate such as "kg/MWh", else the factor's activity unit
func perUnitUOM(co2eUOM, activityUOM string) (mass, per string) {
	if parts := strings.SplitN(co2eUOM, "/", 2); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return co2eUOM, activityUOM
}
