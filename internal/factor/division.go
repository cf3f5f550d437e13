package factor

import (
	"strings"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// DivisionRule derives the grid division for a utility lookup item.
// Derive returns false when the rule does not apply to the item.
type DivisionRule struct {
	Name   string
	Derive func(item *schema.UtilityLookupItem) (domain.Division, bool)
	// Terminal stops the fallback chain once the rule applies
	Terminal bool
}

// Candidate is a division derived by a named rule
type Candidate struct {
	Rule     string
	Division domain.Division
}

// DefaultDivisionRules is evaluated in order. The first applicable rule is the preferred
// division; later applicable rules are fallbacks when it has no factor. A non-US country
// never falls back to the US grid.
var DefaultDivisionRules = []DivisionRule{
	{
		Name: "state",
		Derive: func(item *schema.UtilityLookupItem) (domain.Division, bool) {
			if item.StateProvince == "" {
				return domain.Division{}, false
			}
			return domain.Division{Type: domain.DivisionTypeState, ID: item.StateProvince}, true
		},
	},
	{
		Name: "nerc_region",
		Derive: func(item *schema.UtilityLookupItem) (domain.Division, bool) {
			if !strings.EqualFold(item.DivisionType, domain.DivisionTypeNERCRegion) || item.DivisionID == "" {
				return domain.Division{}, false
			}
			return domain.Division{Type: item.DivisionType, ID: item.DivisionID}, true
		},
	},
	{
		Name: "country",
		Derive: func(item *schema.UtilityLookupItem) (domain.Division, bool) {
			if !strings.EqualFold(item.DivisionType, domain.DivisionTypeCountry) ||
				item.DivisionID == "" ||
				strings.EqualFold(item.DivisionID, domain.DivisionIDUSA) {
				return domain.Division{}, false
			}
			return domain.Division{Type: domain.DivisionTypeCountry, ID: item.DivisionID}, true
		},
		Terminal: true,
	},
	{
		Name: "default",
		Derive: func(item *schema.UtilityLookupItem) (domain.Division, bool) {
			if !isUSUtility(item) {
				return domain.Division{}, false
			}
			return domain.Division{Type: domain.DivisionTypeCountry, ID: domain.DivisionIDUSA}, true
		},
	},
}

func isUSUtility(item *schema.UtilityLookupItem) bool {
	return item.Country == "" ||
		strings.EqualFold(item.Country, domain.DivisionIDUSA) ||
		strings.EqualFold(item.Country, domain.UnitedStates)
}

// DeriveDivisions returns the distinct divisions of every applicable rule in order,
// up to and including the first terminal one
func DeriveDivisions(rules []DivisionRule, item *schema.UtilityLookupItem) []Candidate {
	var candidates []Candidate
	for _, rule := range rules {
		division, ok := rule.Derive(item)
		if !ok {
			continue
		}

		seen := false
		for _, c := range candidates {
			if strings.EqualFold(c.Division.Type, division.Type) && strings.EqualFold(c.Division.ID, division.ID) {
				seen = true
				break
			}
		}
		if !seen {
			candidates = append(candidates, Candidate{Rule: rule.Name, Division: division})
		}

		if rule.Terminal {
			break
		}
	}
	return candidates
}
