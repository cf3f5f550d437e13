package schema

import (
	"time"
)

// EmissionsFactor represents the emissions_factors table - coefficients converting one unit of
// activity into CO2-equivalent emissions. Rows are immutable; re-import replaces by classification key.
type EmissionsFactor struct {
	// UUID is the factor identity
	UUID string `gorm:"column:uuid;primaryKey;type:uuid"`
	// Class is the record family identifier used to reject foreign rows
	Class string `gorm:"column:class;not null;type:text"`
	// Type is the import format tag (e.g. "EMISSIONS_FACTOR", "UTILITY_EMISSIONS_FACTOR")
	Type string `gorm:"column:type;type:text"`
	// Scope is the GHG protocol scope ("SCOPE 1", "SCOPE 2", ...)
	Scope string `gorm:"column:scope;type:text;index:idx_emissions_factors_hierarchy,priority:1"`
	// Level1..Level4 is the classification hierarchy from broad to specific
	Level1 string `gorm:"column:level_1;type:text;index:idx_emissions_factors_hierarchy,priority:2;index:idx_emissions_factors_level_1_year,priority:1"`
	Level2 string `gorm:"column:level_2;type:text;index:idx_emissions_factors_hierarchy,priority:3"`
	Level3 string `gorm:"column:level_3;type:text;index:idx_emissions_factors_hierarchy,priority:4"`
	Level4 string `gorm:"column:level_4;type:text"`
	// Text is a free-text qualifier
	Text string `gorm:"column:text;type:text"`
	// Year is the 4 digit data year
	Year string `gorm:"column:year;type:varchar(4);index:idx_emissions_factors_level_1_year,priority:2"`
	// ActivityUOM is the unit one factor applies to
	ActivityUOM string `gorm:"column:activity_uom;type:text"`
	// CO2EquivalentEmissions is kept as text, exactly as imported
	CO2EquivalentEmissions    string `gorm:"column:co2_equivalent_emissions;type:text"`
	CO2EquivalentEmissionsUOM string `gorm:"column:co2_equivalent_emissions_uom;type:text"`
	// PercentOfRenewables is the renewable share of grid electricity, when known
	PercentOfRenewables *string `gorm:"column:percent_of_renewables;type:text"`
	// DivisionType / DivisionID select grid factors (STATE, NERC_REGION, Country)
	DivisionType string `gorm:"column:division_type;type:text;index:idx_emissions_factors_division,priority:1"`
	DivisionID   string `gorm:"column:division_id;type:text;index:idx_emissions_factors_division,priority:2"`
	// Source / SourceYear record provenance
	Source     string `gorm:"column:source;type:text"`
	SourceYear string `gorm:"column:source_year;type:text"`
	// CreatedAt is the timestamp when this factor was imported
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EmissionsFactor model
func (EmissionsFactor) TableName() string {
	return "emissions_factors"
}

// ClassificationKey identifies factors that are the same coefficient modulo year
func (f *EmissionsFactor) ClassificationKey() string {
	return f.Scope + "/" + f.Level1 + "/" + f.Level2 + "/" + f.Level3 + "/" + f.Level4 + "/" + f.Text + "/" + f.ActivityUOM
}
