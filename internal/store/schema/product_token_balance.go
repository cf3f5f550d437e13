package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductTokenBalance represents the product_token_balances table
type ProductTokenBalance struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	IssuedTo    string          `gorm:"column:issued_to;not null;type:text;uniqueIndex:idx_product_token_balances_product_holder,priority:2"`
	ProductID   int64           `gorm:"column:product_id;not null;uniqueIndex:idx_product_token_balances_product_holder,priority:1"`
	Available   decimal.Decimal `gorm:"column:available;not null;default:0;type:numeric(78,0)"`
	Retired     decimal.Decimal `gorm:"column:retired;not null;default:0;type:numeric(78,0)"`
	Transferred decimal.Decimal `gorm:"column:transferred;not null;default:0;type:numeric(78,0)"`
	// Received is the part of Available that arrived by transfer rather than issuance
	Received  decimal.Decimal `gorm:"column:received;not null;default:0;type:numeric(78,0)"`
	CreatedAt time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	ProductToken *ProductToken `gorm:"foreignKey:ProductID;references:ProductID"`
}

// TableName specifies the table name for the ProductTokenBalance model
func (ProductTokenBalance) TableName() string {
	return "product_token_balances"
}
