package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tracker represents the trackers table - a certificate tracking emissions of a trackee
type Tracker struct {
	TrackerID   int64  `gorm:"column:tracker_id;primaryKey;autoIncrement:false"`
	TokenID     *int64 `gorm:"column:token_id"`
	Trackee     string `gorm:"column:trackee;type:text"`
	IssuedBy    string `gorm:"column:issued_by;type:text"`
	IssuedFrom  string `gorm:"column:issued_from;type:text"`
	Description string `gorm:"column:description;type:text"`
	// TotalIssued / TotalRetired count product tokens issued under this tracker
	TotalIssued  decimal.Decimal `gorm:"column:total_issued;not null;default:0;type:numeric(78,0)"`
	TotalRetired decimal.Decimal `gorm:"column:total_retired;not null;default:0;type:numeric(78,0)"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Tracker model
func (Tracker) TableName() string {
	return "trackers"
}
