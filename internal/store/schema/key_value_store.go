package schema

import "time"

// Key prefixes of the bookkeeping rows
const (
	// KeyPrefixLastImport holds the JSON result of the latest import per kind
	KeyPrefixLastImport = "last_import:"
	// KeyPrefixLedgerRequest marks an applied mutation reference
	KeyPrefixLedgerRequest = "ledger_request:"
	// KeyPrefixLedgerEvent marks an applied chain event
	KeyPrefixLedgerEvent = "ledger_event:"
)

// KeyValueStore is a bookkeeping row: import checkpoints and idempotency markers
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the KeyValueStore model
func (KeyValueStore) TableName() string {
	return "key_value_store"
}
