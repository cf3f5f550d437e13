package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance represents the balances table - per holder quantities of a carbon token
type Balance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IssuedTo is the holder, stored lower case
	IssuedTo string `gorm:"column:issued_to;not null;type:text;uniqueIndex:idx_balances_token_holder,priority:2"`
	// TokenID references the token being held
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex:idx_balances_token_holder,priority:1"`
	// Available, Retired and Transferred never go negative (enforced by check constraints)
	Available   decimal.Decimal `gorm:"column:available;not null;default:0;type:numeric(78,0)"`
	Retired     decimal.Decimal `gorm:"column:retired;not null;default:0;type:numeric(78,0)"`
	Transferred decimal.Decimal `gorm:"column:transferred;not null;default:0;type:numeric(78,0)"`
	// Received is the part of Available that arrived by transfer rather than issuance
	Received  decimal.Decimal `gorm:"column:received;not null;default:0;type:numeric(78,0)"`
	CreatedAt time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token *Token `gorm:"foreignKey:TokenID;references:TokenID"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}

// Total returns available + retired + transferred
func (b *Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Retired).Add(b.Transferred)
}
