package schema

import (
	"time"
)

// UtilityLookupItem represents the utility_lookup_items table - maps an electric utility
// to the division used for grid factor lookups
type UtilityLookupItem struct {
	UUID          string    `gorm:"column:uuid;primaryKey;type:uuid"`
	Class         string    `gorm:"column:class;not null;type:text"`
	Key           string    `gorm:"column:key;type:text"`
	Year          string    `gorm:"column:year;type:varchar(4)"`
	UtilityNumber string    `gorm:"column:utility_number;type:text;index"`
	UtilityName   string    `gorm:"column:utility_name;type:text"`
	Country       string    `gorm:"column:country;type:text;index:idx_utility_lookup_items_location,priority:1"`
	StateProvince string    `gorm:"column:state_province;type:text;index:idx_utility_lookup_items_location,priority:2"`
	DivisionType  string    `gorm:"column:division_type;type:text"`
	DivisionID    string    `gorm:"column:division_id;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UtilityLookupItem model
func (UtilityLookupItem) TableName() string {
	return "utility_lookup_items"
}
