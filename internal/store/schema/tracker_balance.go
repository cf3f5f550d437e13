package schema

import (
	"time"
)

// TrackerBalance represents the tracker_balances table - custody status, not quantities
type TrackerBalance struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	IssuedTo  string    `gorm:"column:issued_to;not null;type:text;uniqueIndex:idx_tracker_balances_tracker_holder,priority:2"`
	TrackerID int64     `gorm:"column:tracker_id;not null;uniqueIndex:idx_tracker_balances_tracker_holder,priority:1"`
	Status    string    `gorm:"column:status;not null;default:'NONE';type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Tracker *Tracker `gorm:"foreignKey:TrackerID;references:TrackerID"`
}

// TableName specifies the table name for the TrackerBalance model
func (TrackerBalance) TableName() string {
	return "tracker_balances"
}
