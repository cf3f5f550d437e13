package dto

import (
	"fmt"
	"time"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// FactorResponse represents an emissions factor
type FactorResponse struct {
	UUID                      string    `json:"uuid"`
	Type                      string    `json:"type,omitempty"`
	Scope                     string    `json:"scope,omitempty"`
	Level1                    string    `json:"level_1,omitempty"`
	Level2                    string    `json:"level_2,omitempty"`
	Level3                    string    `json:"level_3,omitempty"`
	Level4                    string    `json:"level_4,omitempty"`
	Text                      string    `json:"text,omitempty"`
	Year                      string    `json:"year,omitempty"`
	ActivityUOM               string    `json:"activity_uom"`
	CO2EquivalentEmissions    string    `json:"co2_equivalent_emissions"`
	CO2EquivalentEmissionsUOM string    `json:"co2_equivalent_emissions_uom"`
	PercentOfRenewables       *string   `json:"percent_of_renewables,omitempty"`
	DivisionType              string    `json:"division_type,omitempty"`
	DivisionID                string    `json:"division_id,omitempty"`
	Source                    string    `json:"source,omitempty"`
	SourceYear                string    `json:"source_year,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
}

// MapFactorToDTO maps a stored factor to its response
func MapFactorToDTO(f *schema.EmissionsFactor) *FactorResponse {
	if f == nil {
		return nil
	}
	return &FactorResponse{
		UUID:                      f.UUID,
		Type:                      f.Type,
		Scope:                     f.Scope,
		Level1:                    f.Level1,
		Level2:                    f.Level2,
		Level3:                    f.Level3,
		Level4:                    f.Level4,
		Text:                      f.Text,
		Year:                      f.Year,
		ActivityUOM:               f.ActivityUOM,
		CO2EquivalentEmissions:    f.CO2EquivalentEmissions,
		CO2EquivalentEmissionsUOM: f.CO2EquivalentEmissionsUOM,
		PercentOfRenewables:       f.PercentOfRenewables,
		DivisionType:              f.DivisionType,
		DivisionID:                f.DivisionID,
		Source:                    f.Source,
		SourceYear:                f.SourceYear,
		CreatedAt:                 f.CreatedAt,
	}
}

// FactorListResponse is a list of factors
type FactorListResponse struct {
	Items []FactorResponse `json:"items"`
}

// MapFactorsToDTO maps stored factors to a list response
func MapFactorsToDTO(factors []schema.EmissionsFactor) *FactorListResponse {
	items := make([]FactorResponse, 0, len(factors))
	for i := range factors {
		items = append(items, *MapFactorToDTO(&factors[i]))
	}
	return &FactorListResponse{Items: items}
}

// ResolveFactorsRequest asks for the factors matching query, retried with fallback when none match
type ResolveFactorsRequest struct {
	Query    domain.FactorQuery  `json:"query"`
	Fallback *domain.FactorQuery `json:"fallback,omitempty"`
}

// ComputeEmissionsRequest carries exactly one of an activity or a utility usage
type ComputeEmissionsRequest struct {
	Activity *domain.Activity        `json:"activity,omitempty"`
	Usage    *emissions.UsageRequest `json:"usage,omitempty"`
}

// Validate validates the request
func (r *ComputeEmissionsRequest) Validate() error {
	if (r.Activity == nil) == (r.Usage == nil) {
		return fmt.Errorf("%w: exactly one of activity or usage is required", domain.ErrInvalidActivity)
	}
	return nil
}

// LevelsResponse lists distinct values of one hierarchy level
type LevelsResponse struct {
	Level  int      `json:"level"`
	Values []string `json:"values"`
}

// ValuesResponse is a plain list of lookup values
type ValuesResponse struct {
	Values []string `json:"values"`
}

// UtilityResponse represents a utility lookup item
type UtilityResponse struct {
	UUID          string `json:"uuid"`
	Year          string `json:"year,omitempty"`
	UtilityNumber string `json:"utility_number"`
	UtilityName   string `json:"utility_name"`
	Country       string `json:"country,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	DivisionType  string `json:"division_type,omitempty"`
	DivisionID    string `json:"division_id,omitempty"`
}

// UtilityListResponse is a list of utilities
type UtilityListResponse struct {
	Items []UtilityResponse `json:"items"`
}

// MapUtilitiesToDTO maps utility lookup items to a list response
func MapUtilitiesToDTO(items []schema.UtilityLookupItem) *UtilityListResponse {
	out := make([]UtilityResponse, 0, len(items))
	for _, item := range items {
		out = append(out, UtilityResponse{
			UUID:          item.UUID,
			Year:          item.Year,
			UtilityNumber: item.UtilityNumber,
			UtilityName:   item.UtilityName,
			Country:       item.Country,
			StateProvince: item.StateProvince,
			DivisionType:  item.DivisionType,
			DivisionID:    item.DivisionID,
		})
	}
	return &UtilityListResponse{Items: out}
}
