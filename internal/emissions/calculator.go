package emissions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

const defaultEmissionsUOM = "kg"

var hundred = decimal.NewFromInt(100)

// Calculator converts activities into CO2-equivalent emissions
//
//go:generate mockgen -source=calculator.go -destination=../mocks/calculator.go -package=mocks -mock_names=Calculator=MockCalculator
type Calculator interface {
	// Matches reports whether factor belongs to the emissions factor family and agrees,
	// case-insensitively, with every classification field present in activity
	Matches(activity domain.Activity, factor *schema.EmissionsFactor) bool

	// Compute applies factor to activity
	Compute(factor *schema.EmissionsFactor, activity domain.Activity) (*domain.EmissionsResult, error)

	// ComputeUsage applies a grid factor to an electricity usage. The result is in kg.
	ComputeUsage(factor *schema.EmissionsFactor, usage decimal.Decimal, usageUOM string) (*domain.EmissionsResult, error)
}

type calculator struct{}

// NewCalculator creates a calculator
func NewCalculator() Calculator {
	return &calculator{}
}

func (c *calculator) Matches(activity domain.Activity, factor *schema.EmissionsFactor) bool {
	if factor == nil || factor.Class != domain.EmissionsFactorClass {
		return false
	}

	pairs := [][2]string{
		{activity.Scope, factor.Scope},
		{activity.Level1, factor.Level1},
		{activity.Level2, factor.Level2},
		{activity.Level3, factor.Level3},
		{activity.Level4, factor.Level4},
		{activity.Text, factor.Text},
	}
	for _, p := range pairs {
		if p[0] != "" && !strings.EqualFold(p[0], p[1]) {
			return false
		}
	}
	return activity.ActivityUOM == "" || compatibleUOM(activity.ActivityUOM, factor.ActivityUOM)
}

func (c *calculator) Compute(factor *schema.EmissionsFactor, activity domain.Activity) (*domain.EmissionsResult, error) {
	if !c.Matches(activity, factor) {
		return nil, fmt.Errorf("%w: factor does not match the activity", domain.ErrInvalidFactorForActivity)
	}
	if activity.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative activity amount %s", domain.ErrInvalidActivity, activity.Amount)
	}

	co2e, err := co2Equivalent(factor)
	if err != nil {
		return nil, err
	}

	multiplier, err := perUnitMultiplier(factor, activity)
	if err != nil {
		return nil, err
	}

	mass, per := perUnitUOM(factor.CO2EquivalentEmissionsUOM, factor.ActivityUOM)
	if mass != "" {
		if _, err := UOMScale(mass); err != nil {
			return nil, fmt.Errorf("factor %s co2 equivalent emissions unit: %w", factor.UUID, err)
		}
	}

	conversion := decimal.New(1, 0)
	if activity.ActivityUOM != "" && !sameUOM(activity.ActivityUOM, per) {
		activityScale, err := UOMScale(activity.ActivityUOM)
		if err != nil {
			return nil, err
		}
		perScale, err := UOMScale(per)
		if err != nil {
			return nil, err
		}
		conversion = activityScale.Div(perScale)
	}

	uom := mass
	if uom == "" {
		uom = defaultEmissionsUOM
	}

	result := &domain.EmissionsResult{
		Value:        activity.Amount.Mul(conversion).Mul(co2e).Mul(multiplier),
		UOM:          uom,
		Year:         factorYear(factor),
		DivisionType: factor.DivisionType,
		DivisionID:   factor.DivisionID,
		FactorID:     factor.UUID,
	}
	if err := splitRenewables(result, factor, activity.Amount); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *calculator) ComputeUsage(factor *schema.EmissionsFactor, usage decimal.Decimal, usageUOM string) (*domain.EmissionsResult, error) {
	if factor == nil {
		return nil, fmt.Errorf("%w: missing factor", domain.ErrInvalidFactorForActivity)
	}
	if usage.IsNegative() {
		return nil, fmt.Errorf("%w: negative usage %s", domain.ErrInvalidActivity, usage)
	}

	co2e, err := co2Equivalent(factor)
	if err != nil {
		return nil, err
	}

	massUOM, energyUOM := perUnitUOM(factor.CO2EquivalentEmissionsUOM, factor.ActivityUOM)

	massScale, err := UOMScale(massUOM)
	if err != nil {
		return nil, err
	}
	energyScale, err := UOMScale(energyUOM)
	if err != nil {
		return nil, err
	}
	usageScale, err := UOMScale(usageUOM)
	if err != nil {
		return nil, err
	}

	result := &domain.EmissionsResult{
		Value:        co2e.Mul(usage).Mul(usageScale).Div(energyScale).Mul(massScale),
		UOM:          defaultEmissionsUOM,
		Year:         factorYear(factor),
		DivisionType: factor.DivisionType,
		DivisionID:   factor.DivisionID,
		FactorID:     factor.UUID,
	}
	if err := splitRenewables(result, factor, usage); err != nil {
		return nil, err
	}
	return result, nil
}

func co2Equivalent(factor *schema.EmissionsFactor) (decimal.Decimal, error) {
	if strings.TrimSpace(factor.CO2EquivalentEmissions) == "" {
		return decimal.Zero, fmt.Errorf("%w: factor %s has no co2 equivalent emissions", domain.ErrInvalidFactorForActivity, factor.UUID)
	}
	co2e, err := decimal.NewFromString(strings.TrimSpace(factor.CO2EquivalentEmissions))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: factor %s co2 equivalent emissions %q: %w",
			domain.ErrInvalidFactorForActivity, factor.UUID, factor.CO2EquivalentEmissions, err)
	}
	return co2e, nil
}

// perUnitMultiplier returns the shipped tonnes or passengers a per-unit factor needs
func perUnitMultiplier(factor *schema.EmissionsFactor, activity domain.Activity) (decimal.Decimal, error) {
	switch {
	case sameUOM(factor.ActivityUOM, uomTonneKm):
		if activity.TonnesShipped == nil {
			return decimal.Zero, fmt.Errorf("%w: %w: tonne.km needs tonnes shipped",
				domain.ErrInvalidFactorForActivity, domain.ErrInvalidActivity)
		}
		return *activity.TonnesShipped, nil
	case sameUOM(factor.ActivityUOM, uomPassengerKm):
		if activity.Passengers == nil {
			return decimal.Zero, fmt.Errorf("%w: %w: passenger.km needs passengers",
				domain.ErrInvalidFactorForActivity, domain.ErrInvalidActivity)
		}
		return *activity.Passengers, nil
	default:
		return decimal.New(1, 0), nil
	}
}

// splitRenewables reports the renewable share of amount; the emissions value is unaffected
func splitRenewables(result *domain.EmissionsResult, factor *schema.EmissionsFactor, amount decimal.Decimal) error {
	result.RenewableAmount = decimal.Zero
	result.NonRenewableAmount = amount

	if factor.PercentOfRenewables == nil || strings.TrimSpace(*factor.PercentOfRenewables) == "" {
		return nil
	}

	pct, err := decimal.NewFromString(strings.TrimSpace(*factor.PercentOfRenewables))
	if err != nil {
		return fmt.Errorf("%w: factor %s percent of renewables %q: %w",
			domain.ErrInvalidFactorForActivity, factor.UUID, *factor.PercentOfRenewables, err)
	}

	result.RenewableAmount = amount.Mul(pct).Div(hundred)
	result.NonRenewableAmount = amount.Sub(result.RenewableAmount)
	return nil
}

func factorYear(factor *schema.EmissionsFactor) int {
	year, err := strconv.Atoi(strings.TrimSpace(factor.Year))
	if err != nil {
		return 0
	}
	return year
}
