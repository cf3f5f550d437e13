package domain

import "errors"

var (
	// ErrFactorNotFound is returned when no factor matches an activity after every fallback
	ErrFactorNotFound = errors.New("no factor for activity")

	// ErrAmbiguousFactor is returned when more than one distinct factor matches
	ErrAmbiguousFactor = errors.New("ambiguous factor match")

	// ErrNoUtilityFactor is returned when the division year-retry loop is exhausted
	ErrNoUtilityFactor = errors.New("no utility factor found for division")

	// ErrInvalidActivity is returned when a per-unit activity is missing its multiplier
	ErrInvalidActivity = errors.New("invalid activity")

	// ErrInvalidFactorForActivity is returned when a factor does not match the activity it is applied to
	ErrInvalidFactorForActivity = errors.New("invalid factor for activity")

	// ErrInvalidUOM is returned for a unit not in the conversion table
	ErrInvalidUOM = errors.New("invalid unit of measure")

	// ErrInvalidAmount is returned for non-positive or fractional ledger amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidHolder is returned when a holder is not a non-zero hex address
	ErrInvalidHolder = errors.New("invalid holder")

	// ErrInsufficientBalance is returned when a debit exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceNotFound is returned when a debit targets a holder without a balance row
	ErrBalanceNotFound = errors.New("balance not found")

	// ErrAssetNotFound is returned when the asset row does not exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetKind is returned for an unknown asset kind
	ErrInvalidAssetKind = errors.New("invalid asset kind")

	// ErrInvalidTrackerStatus is returned for a status outside the enumeration
	ErrInvalidTrackerStatus = errors.New("invalid tracker status")

	// ErrUnknownColumn is returned when a filter references a column no joined table owns
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidFilter is returned for a filter term with an unsupported operator
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidEvent is returned for ledger events that cannot be applied
	ErrInvalidEvent = errors.New("invalid ledger event")
)
