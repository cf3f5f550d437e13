package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// AssetKind identifies which ledger family an asset belongs to
type AssetKind string

const (
	// AssetKindToken is a carbon token tracked in balances
	AssetKindToken AssetKind = "token"
	// AssetKindProduct is a product token tracked in product_token_balances
	AssetKindProduct AssetKind = "product"
	// AssetKindTracker is a certificate tracker tracked in tracker_balances
	AssetKindTracker AssetKind = "tracker"
)

// IsValidAssetKind checks if an asset kind is known
func IsValidAssetKind(kind AssetKind) bool {
	return kind == AssetKindToken ||
		kind == AssetKindProduct ||
		kind == AssetKindTracker
}

// HasQuantities reports whether balances of this kind carry available/retired/transferred
func (k AssetKind) HasQuantities() bool {
	return k == AssetKindToken || k == AssetKindProduct
}

// TrackerStatus is the custody state a holder has for a tracker
type TrackerStatus string

const (
	TrackerStatusNone        TrackerStatus = "NONE"
	TrackerStatusPending     TrackerStatus = "PENDING"
	TrackerStatusIssued      TrackerStatus = "ISSUED"
	TrackerStatusAudited     TrackerStatus = "AUDITED"
	TrackerStatusRetired     TrackerStatus = "RETIRED"
	TrackerStatusTransferred TrackerStatus = "TRANSFERRED"
)

// IsValidTrackerStatus checks if a tracker status is one of the enumerated states
func IsValidTrackerStatus(status TrackerStatus) bool {
	switch status {
	case TrackerStatusNone,
		TrackerStatusPending,
		TrackerStatusIssued,
		TrackerStatusAudited,
		TrackerStatusRetired,
		TrackerStatusTransferred:
		return true
	}
	return false
}

// Activity describes a real-world action to convert into emissions.
// Empty hierarchy fields are wildcards.
type Activity struct {
	Scope       string          `json:"scope,omitempty"`
	Level1      string          `json:"level_1,omitempty"`
	Level2      string          `json:"level_2,omitempty"`
	Level3      string          `json:"level_3,omitempty"`
	Level4      string          `json:"level_4,omitempty"`
	Text        string          `json:"text,omitempty"`
	Amount      decimal.Decimal `json:"activity"`
	ActivityUOM string          `json:"activity_uom"`
	Year        *int            `json:"year,omitempty"`
	FromYear    *int            `json:"from_year,omitempty"`
	ThruYear    *int            `json:"thru_year,omitempty"`
	// TonnesShipped multiplies tonne.km activities
	TonnesShipped *decimal.Decimal `json:"tonnesShipped,omitempty"`
	// Passengers multiplies passenger.km activities
	Passengers *decimal.Decimal `json:"passengers,omitempty"`
}

// Query returns the factor query that selects factors for the activity
func (a Activity) Query() FactorQuery {
	return FactorQuery{
		Scope:       a.Scope,
		Level1:      a.Level1,
		Level2:      a.Level2,
		Level3:      a.Level3,
		Level4:      a.Level4,
		Text:        a.Text,
		ActivityUOM: a.ActivityUOM,
		Year:        a.Year,
		FromYear:    a.FromYear,
		ThruYear:    a.ThruYear,
	}
}

// FactorQuery selects emissions factors. Empty string fields are omitted from the predicate.
type FactorQuery struct {
	Scope        string `json:"scope,omitempty"`
	Level1       string `json:"level_1,omitempty"`
	Level2       string `json:"level_2,omitempty"`
	Level3       string `json:"level_3,omitempty"`
	Level4       string `json:"level_4,omitempty"`
	Text         string `json:"text,omitempty"`
	ActivityUOM  string `json:"activity_uom,omitempty"`
	DivisionType string `json:"division_type,omitempty"`
	DivisionID   string `json:"division_id,omitempty"`
	Year         *int   `json:"year,omitempty"`
	FromYear     *int   `json:"from_year,omitempty"`
	ThruYear     *int   `json:"thru_year,omitempty"`
}

// HasYearConstraint reports whether the query restricts the year in any way
func (q FactorQuery) HasYearConstraint() bool {
	return q.Year != nil || q.FromYear != nil || q.ThruYear != nil
}

// WithYear returns a copy pinned to a single year, dropping any range
func (q FactorQuery) WithYear(year int) FactorQuery {
	q.Year = &year
	q.FromYear = nil
	q.ThruYear = nil
	return q
}

// Division is a geographic or regulatory grouping for grid factors
type Division struct {
	Type string `json:"division_type"`
	ID   string `json:"division_id"`
}

// EmissionsResult is the outcome of applying a factor to an activity
type EmissionsResult struct {
	Value              decimal.Decimal `json:"value"`
	UOM                string          `json:"uom"`
	Year               int             `json:"year"`
	RenewableAmount    decimal.Decimal `json:"renewable_energy_use_amount"`
	NonRenewableAmount decimal.Decimal `json:"nonrenewable_energy_use_amount"`
	DivisionType       string          `json:"division_type,omitempty"`
	DivisionID         string          `json:"division_id,omitempty"`
	FactorID           string          `json:"factor_id"`
}

// LedgerEventType is the ledger operation a mirrored chain event maps to
type LedgerEventType string

const (
	LedgerEventIssue         LedgerEventType = "issue"
	LedgerEventTransfer      LedgerEventType = "transfer"
	LedgerEventRetire        LedgerEventType = "retire"
	LedgerEventTrackerStatus LedgerEventType = "tracker_status"
)

// LedgerEvent is a normalized chain event mirrored into the off-chain ledger.
// This is the format consumed from NATS.
type LedgerEvent struct {
	AssetKind   AssetKind     `json:"asset_kind"`
	AssetID     int64         `json:"asset_id"`
	FromAddress string        `json:"from_address"`
	ToAddress   string        `json:"to_address"`
	Quantity    string        `json:"quantity"`
	Status      TrackerStatus `json:"status,omitempty"`
	TxHash      string        `json:"tx_hash"`
	BlockNumber uint64        `json:"block_number"`
	LogIndex    uint64        `json:"log_index"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Type derives the ledger operation from the zero-address convention
func (e *LedgerEvent) Type() LedgerEventType {
	if e.AssetKind == AssetKindTracker && e.Status != "" {
		return LedgerEventTrackerStatus
	}
	switch {
	case IsZeroAddress(e.FromAddress):
		return LedgerEventIssue
	case IsZeroAddress(e.ToAddress):
		return LedgerEventRetire
	default:
		return LedgerEventTransfer
	}
}

// Valid checks the event carries what its type needs
func (e *LedgerEvent) Valid() bool {
	if !IsValidAssetKind(e.AssetKind) || e.AssetID <= 0 {
		return false
	}

	if e.Type() == LedgerEventTrackerStatus {
		return IsValidTrackerStatus(e.Status) && !IsZeroAddress(e.ToAddress)
	}
	if !e.AssetKind.HasQuantities() {
		return false
	}

	quantity, err := strconv.ParseUint(e.Quantity, 10, 64)
	if err != nil || quantity == 0 {
		return false
	}

	// Both sides zero would be a no-op mint-burn
	if IsZeroAddress(e.FromAddress) && IsZeroAddress(e.ToAddress) {
		return false
	}
	return true
}

// IsZeroAddress reports whether addr is empty or the zero address
func IsZeroAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return true
	}
	if !common.IsHexAddress(addr) {
		return false
	}
	return common.HexToAddress(addr) == (common.Address{})
}

// NormalizeHolder canonicalizes a holder identifier for storage and comparison
func NormalizeHolder(holder string) string {
	return strings.ToLower(strings.TrimSpace(holder))
}

// ParseYear parses the year part of a date string (YYYY, YYYY-MM-DD or RFC3339).
// Returns nil when no year can be read.
func ParseYear(value string) *int {
	value = strings.TrimSpace(value)
	if len(value) < 4 {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y := t.Year()
		return &y
	}
	y, err := strconv.Atoi(value[:4])
	if err != nil || y <= 0 {
		return nil
	}
	return &y
}
