package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Token represents the tokens table - a carbon token type and its lifetime counters
type Token struct {
	// TokenID is the on-chain token id
	TokenID int64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// TokenTypeID distinguishes renewable certificates, offsets, audited emissions, ...
	TokenTypeID int        `gorm:"column:token_type_id;not null"`
	IssuedBy    string     `gorm:"column:issued_by;type:text"`
	IssuedFrom  string     `gorm:"column:issued_from;type:text"`
	IssuedTo    string     `gorm:"column:issued_to;type:text"`
	FromDate    *time.Time `gorm:"column:from_date;type:timestamptz"`
	ThruDate    *time.Time `gorm:"column:thru_date;type:timestamptz"`
	Description string     `gorm:"column:description;type:text"`
	// Metadata is the opaque metadata document attached at issuance
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	Scope    string         `gorm:"column:scope;type:text"`
	Type     string         `gorm:"column:type;type:text"`
	// TotalIssued / TotalRetired are mutated only through relative updates
	TotalIssued  decimal.Decimal `gorm:"column:total_issued;not null;default:0;type:numeric(78,0)"`
	TotalRetired decimal.Decimal `gorm:"column:total_retired;not null;default:0;type:numeric(78,0)"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
