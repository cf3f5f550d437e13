package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OutboxKind represents the ledger operation an outbox entry records
type OutboxKind string

const (
	// OutboxKindIssued records an off-chain credit that still needs its on-chain counterpart confirmed
	OutboxKindIssued OutboxKind = "issued"
	// OutboxKindTransferred records a mirrored transfer
	OutboxKindTransferred OutboxKind = "transferred"
	// OutboxKindRetired records a mirrored retirement
	OutboxKindRetired OutboxKind = "retired"
	// OutboxKindTrackerStatus records a custody status change
	OutboxKindTrackerStatus OutboxKind = "tracker_status"
)

// OutboxStatus is the delivery state of an outbox entry
type OutboxStatus string

const (
	// OutboxStatusPending has not been published yet
	OutboxStatusPending OutboxStatus = "pending"
	// OutboxStatusPublished was accepted by the broker
	OutboxStatusPublished OutboxStatus = "published"
	// OutboxStatusReconciled was confirmed by the matching chain event
	OutboxStatusReconciled OutboxStatus = "reconciled"
	// OutboxStatusFailed exhausted its delivery attempts
	OutboxStatusFailed OutboxStatus = "failed"
)

// OutboxEvent represents the ledger_outbox table - ledger mutations awaiting publication or reconciliation
type OutboxEvent struct {
	// ID is a ULID, so ordering by id is ordering by creation time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Kind is the ledger operation recorded
	Kind OutboxKind `gorm:"column:kind;not null;type:text"`
	// AssetKind is token, product or tracker
	AssetKind string `gorm:"column:asset_kind;not null;type:text;index:idx_ledger_outbox_asset,priority:1"`
	// AssetID is the token, product or tracker id
	AssetID int64 `gorm:"column:asset_id;not null;index:idx_ledger_outbox_asset,priority:2"`
	// Holder is the credited or debited holder
	Holder string `gorm:"column:holder;not null;type:text"`
	// Amount is the quantity moved (zero for tracker status changes)
	Amount decimal.Decimal `gorm:"column:amount;not null;default:0;type:numeric(78,0)"`
	// Payload is the canonical JSON body published to the broker
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// DedupeKey is a digest of the canonical payload; used as the broker message id
	DedupeKey string `gorm:"column:dedupe_key;not null;type:text;uniqueIndex"`
	// Status is the delivery state
	Status OutboxStatus `gorm:"column:status;not null;default:'pending';type:text;index"`
	// Attempts counts publish attempts
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastError holds the most recent publish error
	LastError *string    `gorm:"column:last_error;type:text"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	SentAt    *time.Time `gorm:"column:sent_at;type:timestamptz"`
}

// TableName specifies the table name for the OutboxEvent model
func (OutboxEvent) TableName() string {
	return "ledger_outbox"
}
