package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/querybuild"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,LookupStore=MockLookupStore,LedgerStore=MockLedgerStore,OutboxStore=MockOutboxStore,KeyValueStore=MockKeyValueStore

// LookupStore persists emissions factors and utility lookup items
type LookupStore interface {
	// FindFactors returns factors matching the query, most recent year first
	FindFactors(ctx context.Context, query domain.FactorQuery) ([]schema.EmissionsFactor, error)
	// LastYearForLevel1 returns the most recent year with any factor under level1, nil if none
	LastYearForLevel1(ctx context.Context, level1 string) (*int, error)
	// GetFactor retrieves a factor by uuid, nil if missing
	GetFactor(ctx context.Context, uuid string) (*schema.EmissionsFactor, error)
	// PutFactor replaces any factor with the same classification key
	PutFactor(ctx context.Context, factor *schema.EmissionsFactor) error
	// CountFactors counts all factors
	CountFactors(ctx context.Context) (int64, error)
	// DistinctLevels lists the distinct values of level_1..level_4 under the query's parents
	DistinctLevels(ctx context.Context, level int, query domain.FactorQuery) ([]string, error)
	// ElectricityCountries lists countries that have grid factors
	ElectricityCountries(ctx context.Context, scope string, fromYear, thruYear *int) ([]string, error)

	// GetUtilityLookupItem retrieves a utility lookup item by uuid, nil if missing
	GetUtilityLookupItem(ctx context.Context, uuid string) (*schema.UtilityLookupItem, error)
	// PutUtilityLookupItem replaces any item with the same identity fields
	PutUtilityLookupItem(ctx context.Context, item *schema.UtilityLookupItem) error
	// CountUtilityLookupItems counts all utility lookup items
	CountUtilityLookupItems(ctx context.Context) (int64, error)
	// ElectricityUSAStates lists the US states with utility data
	ElectricityUSAStates(ctx context.Context) ([]string, error)
	// ElectricityUSAUtilities returns one item per utility of a state, preferring the latest year within range
	ElectricityUSAUtilities(ctx context.Context, state string, fromYear, thruYear *int) ([]schema.UtilityLookupItem, error)
}

// BalanceView is a ledger row joined with its owning asset
type BalanceView struct {
	Kind              domain.AssetKind `gorm:"-" json:"kind"`
	IssuedTo          string           `gorm:"column:issued_to" json:"issued_to"`
	AssetID           int64            `gorm:"column:asset_id" json:"asset_id"`
	Available         decimal.Decimal  `gorm:"column:available" json:"available"`
	Retired           decimal.Decimal  `gorm:"column:retired" json:"retired"`
	Transferred       decimal.Decimal  `gorm:"column:transferred" json:"transferred"`
	Received          decimal.Decimal  `gorm:"column:received" json:"received"`
	Status            string           `gorm:"column:status" json:"status,omitempty"`
	AssetDescription  string           `gorm:"column:asset_description" json:"asset_description,omitempty"`
	AssetTotalIssued  decimal.Decimal  `gorm:"column:asset_total_issued" json:"asset_total_issued"`
	AssetTotalRetired decimal.Decimal  `gorm:"column:asset_total_retired" json:"asset_total_retired"`
	UpdatedAt         time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// AssetTotals are the lifetime counters of an asset
type AssetTotals struct {
	Kind         domain.AssetKind `json:"kind"`
	AssetID      int64            `json:"asset_id"`
	TotalIssued  decimal.Decimal  `json:"total_issued"`
	TotalRetired decimal.Decimal  `json:"total_retired"`
}

// BalanceSums aggregates every holder row of one asset
type BalanceSums struct {
	Holders     int64           `gorm:"column:holders"`
	Available   decimal.Decimal `gorm:"column:available"`
	Retired     decimal.Decimal `gorm:"column:retired"`
	Transferred decimal.Decimal `gorm:"column:transferred"`
	Received    decimal.Decimal `gorm:"column:received"`
}

// LedgerStore holds balances and asset counters. Every mutation is a single relative statement.
type LedgerStore interface {
	// CreditAvailable adds amount to the holder's available balance, creating the row on first credit
	CreditAvailable(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error
	// CreditReceived adds amount to available and received: the receiving side of a transfer
	CreditReceived(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error
	// Transfer moves amount from available to transferred
	Transfer(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error
	// Retire moves amount from available to retired
	Retire(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error
	// SetTrackerStatus sets the holder's custody status for a tracker
	SetTrackerStatus(ctx context.Context, holder string, trackerID int64, status domain.TrackerStatus) error
	// SelectBalance returns the holder's row, nil if the holder never received the asset
	SelectBalance(ctx context.Context, kind domain.AssetKind, holder string, assetID int64) (*BalanceView, error)
	// SelectPaginated lists rows joined with their asset; filter may reference either table
	SelectPaginated(ctx context.Context, kind domain.AssetKind, offset, limit int, filter querybuild.Predicate) ([]BalanceView, error)
	// Count counts rows matching filter
	Count(ctx context.Context, kind domain.AssetKind, filter querybuild.Predicate) (int64, error)
	// SumBalances aggregates all holder rows of an asset
	SumBalances(ctx context.Context, kind domain.AssetKind, assetID int64) (*BalanceSums, error)

	// CreateToken registers a token, ignoring duplicates
	CreateToken(ctx context.Context, token *schema.Token) error
	// CreateProductToken registers a product token, ignoring duplicates
	CreateProductToken(ctx context.Context, product *schema.ProductToken) error
	// CreateTracker registers a tracker, ignoring duplicates
	CreateTracker(ctx context.Context, tracker *schema.Tracker) error
	// GetAssetTotals returns the counters of an asset, nil if missing
	GetAssetTotals(ctx context.Context, kind domain.AssetKind, assetID int64) (*AssetTotals, error)
	// IncrementTotalIssued adds amount to the asset's total issued
	IncrementTotalIssued(ctx context.Context, kind domain.AssetKind, assetID int64, amount decimal.Decimal) error
	// IncrementTotalRetired adds amount to the asset's total retired
	IncrementTotalRetired(ctx context.Context, kind domain.AssetKind, assetID int64, amount decimal.Decimal) error
}

// OutboxStore holds ledger mutations awaiting publication and reconciliation
type OutboxStore interface {
	// EnqueueOutbox stores an entry; an entry with the same dedupe key is ignored
	EnqueueOutbox(ctx context.Context, event *schema.OutboxEvent) error
	// ListPendingOutbox returns the oldest pending entries
	ListPendingOutbox(ctx context.Context, limit int) ([]schema.OutboxEvent, error)
	// MarkOutboxPublished records a successful publish
	MarkOutboxPublished(ctx context.Context, id string, sentAt time.Time) error
	// MarkOutboxAttemptFailed records a failed publish; the entry fails permanently after maxAttempts
	MarkOutboxAttemptFailed(ctx context.Context, id string, cause string, maxAttempts int) error
	// ReconcileOutbox marks the oldest unreconciled matching entry as reconciled.
	// Returns false when no entry matched.
	ReconcileOutbox(ctx context.Context, kind schema.OutboxKind, assetKind domain.AssetKind, assetID int64, holder string, amount decimal.Decimal) (bool, error)
	// CountOutboxByStatus counts entries per status
	CountOutboxByStatus(ctx context.Context) (map[schema.OutboxStatus]int64, error)
}

// KeyValueStore holds bookkeeping values
type KeyValueStore interface {
	// SetKeyValue sets a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, empty if missing
	GetKeyValue(ctx context.Context, key string) (string, error)
	// MarkOnce records key and reports whether it was not recorded before
	MarkOnce(ctx context.Context, key string) (bool, error)
}

// Store defines the interface for database operations
type Store interface {
	LookupStore
	LedgerStore
	OutboxStore
	KeyValueStore

	// WithTx runs fn against a store bound to one database transaction
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
