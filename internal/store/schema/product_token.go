package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductToken represents the product_tokens table - product quantities issued against a tracker
type ProductToken struct {
	ProductID  int64           `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	TrackerID  int64           `gorm:"column:tracker_id;not null;index"`
	Auditor    string          `gorm:"column:auditor;type:text"`
	Name       string          `gorm:"column:name;type:text"`
	Unit       string          `gorm:"column:unit;type:text"`
	UnitAmount decimal.Decimal `gorm:"column:unit_amount;type:numeric"`
	Hash       string          `gorm:"column:hash;type:text"`
	// TotalIssued / TotalRetired are mutated only through relative updates
	TotalIssued  decimal.Decimal `gorm:"column:total_issued;not null;default:0;type:numeric(78,0)"`
	TotalRetired decimal.Decimal `gorm:"column:total_retired;not null;default:0;type:numeric(78,0)"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProductToken model
func (ProductToken) TableName() string {
	return "product_tokens"
}
