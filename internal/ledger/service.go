package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/querybuild"
	"github.com/feral-file/carbon-engine/internal/store"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Request is a quantity operation on one holder's balance
type Request struct {
	Holder  string          `json:"holder" binding:"required"`
	AssetID int64           `json:"asset_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	// To receives a transfer. Empty when the quantity leaves the ledger.
	To string `json:"to,omitempty"`
	// Reference makes the request idempotent; one is generated when empty
	Reference string `json:"reference,omitempty"`
}

// Receipt reports the outcome of a request
type Receipt struct {
	Reference string `json:"reference"`
	OutboxID  string `json:"outbox_id,omitempty"`
	// Applied is false when the reference had already been applied
	Applied bool `json:"applied"`
}

// OutboxPayload is the canonical body published for an outbox entry
type OutboxPayload struct {
	Reference   string               `json:"reference"`
	Kind        schema.OutboxKind    `json:"kind"`
	AssetKind   domain.AssetKind     `json:"asset_kind"`
	AssetID     int64                `json:"asset_id"`
	Holder      string               `json:"holder"`
	To          string               `json:"to,omitempty"`
	Amount      string               `json:"amount"`
	Status      domain.TrackerStatus `json:"status,omitempty"`
	RequestedAt time.Time            `json:"requested_at"`
}

// Page is one page of balances
type Page struct {
	Items  []store.BalanceView `json:"items"`
	Total  int64               `json:"total"`
	Offset int                 `json:"offset"`
	Limit  int                 `json:"limit"`
}

// ConservationReport compares the holder rows of an asset with its counters.
// Quantity is conserved when available + retired + transferred equals total issued plus
// what holders received by transfer.
type ConservationReport struct {
	Kind         domain.AssetKind `json:"kind"`
	AssetID      int64            `json:"asset_id"`
	Holders      int64            `json:"holders"`
	TotalIssued  decimal.Decimal  `json:"total_issued"`
	TotalRetired decimal.Decimal  `json:"total_retired"`
	Available    decimal.Decimal  `json:"available"`
	Retired      decimal.Decimal  `json:"retired"`
	Transferred  decimal.Decimal  `json:"transferred"`
	Received     decimal.Decimal  `json:"received"`
	// Discrepancy is held minus expected; zero when conserved
	Discrepancy    decimal.Decimal `json:"discrepancy"`
	Conserved      bool            `json:"conserved"`
	RetiredMatches bool            `json:"retired_matches"`
}

// Service composes the ledger primitives into validated, idempotent operations
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger_service.go -package=mocks -mock_names=Service=MockLedgerService
type Service interface {
	// Issue credits the holder and the asset's total issued, and queues an outbox entry
	Issue(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error)
	// Transfer moves quantity out of the holder's available balance, crediting req.To when set
	Transfer(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error)
	// Retire moves quantity from available to retired and adds it to the asset's total retired
	Retire(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error)
	// SetTrackerStatus sets a holder's custody status for a tracker
	SetTrackerStatus(ctx context.Context, holder string, trackerID int64, status domain.TrackerStatus, reference string) (*Receipt, error)

	// Balance returns the holder's row, nil if the holder never received the asset
	Balance(ctx context.Context, kind domain.AssetKind, holder string, assetID int64) (*store.BalanceView, error)
	// List returns a page of rows matching filter
	List(ctx context.Context, kind domain.AssetKind, offset, limit int, filter querybuild.Predicate) (*Page, error)
	// Audit checks conservation for one asset
	Audit(ctx context.Context, kind domain.AssetKind, assetID int64) (*ConservationReport, error)

	// ApplyEvent mirrors a chain event. An event matching a queued outbox entry reconciles
	// that entry instead of mutating balances again. Returns false for an already applied event.
	ApplyEvent(ctx context.Context, event *domain.LedgerEvent) (bool, error)
}

type service struct {
	store   store.Store
	json    adapter.JSON
	jcs     adapter.JCS
	clock   adapter.Clock
	metrics *Metrics
}

// NewService creates a ledger service
func NewService(st store.Store, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, clock adapter.Clock, metrics *Metrics) Service {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &service{
		store:   st,
		json:    jsonAdapter,
		jcs:     jcsAdapter,
		clock:   clock,
		metrics: metrics,
	}
}

func (s *service) Issue(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	receipt, err := s.issue(ctx, kind, req)
	s.metrics.operation(kind, opIssue, err)
	return receipt, err
}

func (s *service) issue(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	if err := validQuantityRequest(kind, req); err != nil {
		return nil, err
	}

	return s.apply(ctx, s.payload(schema.OutboxKindIssued, kind, req), req.Amount, func(tx store.Store) error {
		if err := tx.CreditAvailable(ctx, kind, req.Holder, req.AssetID, req.Amount); err != nil {
			return err
		}
		return tx.IncrementTotalIssued(ctx, kind, req.AssetID, req.Amount)
	})
}

func (s *service) Transfer(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	receipt, err := s.transfer(ctx, kind, req)
	s.metrics.operation(kind, opTransfer, err)
	return receipt, err
}

func (s *service) transfer(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	if err := validQuantityRequest(kind, req); err != nil {
		return nil, err
	}
	if req.To != "" {
		if err := validHolder(req.To); err != nil {
			return nil, err
		}
		if domain.NormalizeHolder(req.To) == domain.NormalizeHolder(req.Holder) {
			return nil, fmt.Errorf("%w: cannot transfer to the sender", domain.ErrInvalidHolder)
		}
	}

	return s.apply(ctx, s.payload(schema.OutboxKindTransferred, kind, req), req.Amount, func(tx store.Store) error {
		if err := tx.Transfer(ctx, kind, req.Holder, req.AssetID, req.Amount); err != nil {
			return err
		}
		if req.To == "" {
			return nil
		}
		return tx.CreditReceived(ctx, kind, req.To, req.AssetID, req.Amount)
	})
}

func (s *service) Retire(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	receipt, err := s.retire(ctx, kind, req)
	s.metrics.operation(kind, opRetire, err)
	return receipt, err
}

func (s *service) retire(ctx context.Context, kind domain.AssetKind, req Request) (*Receipt, error) {
	if err := validQuantityRequest(kind, req); err != nil {
		return nil, err
	}

	return s.apply(ctx, s.payload(schema.OutboxKindRetired, kind, req), req.Amount, func(tx store.Store) error {
		if err := tx.Retire(ctx, kind, req.Holder, req.AssetID, req.Amount); err != nil {
			return err
		}
		return tx.IncrementTotalRetired(ctx, kind, req.AssetID, req.Amount)
	})
}

func (s *service) SetTrackerStatus(ctx context.Context, holder string, trackerID int64, status domain.TrackerStatus, reference string) (*Receipt, error) {
	receipt, err := s.setTrackerStatus(ctx, holder, trackerID, status, reference)
	s.metrics.operation(domain.AssetKindTracker, opTrackerStatus, err)
	return receipt, err
}

func (s *service) setTrackerStatus(ctx context.Context, holder string, trackerID int64, status domain.TrackerStatus, reference string) (*Receipt, error) {
	if err := validHolder(holder); err != nil {
		return nil, err
	}
	if trackerID <= 0 {
		return nil, fmt.Errorf("%w: tracker id %d", domain.ErrAssetNotFound, trackerID)
	}
	if !domain.IsValidTrackerStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTrackerStatus, status)
	}

	req := Request{Holder: holder, AssetID: trackerID, Reference: reference}
	payload := s.payload(schema.OutboxKindTrackerStatus, domain.AssetKindTracker, req)
	payload.Status = status

	return s.apply(ctx, payload, decimal.Zero, func(tx store.Store) error {
		return tx.SetTrackerStatus(ctx, holder, trackerID, status)
	})
}

func (s *service) payload(kind schema.OutboxKind, assetKind domain.AssetKind, req Request) OutboxPayload {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = ulid.Make().String()
	}

	p := OutboxPayload{
		Reference:   reference,
		Kind:        kind,
		AssetKind:   assetKind,
		AssetID:     req.AssetID,
		Holder:      domain.NormalizeHolder(req.Holder),
		Amount:      req.Amount.String(),
		RequestedAt: s.clock.Now().UTC(),
	}
	if req.To != "" {
		p.To = domain.NormalizeHolder(req.To)
	}
	return p
}

// apply runs mutate and queues the outbox entry in one transaction, once per reference
func (s *service) apply(ctx context.Context, payload OutboxPayload, amount decimal.Decimal, mutate func(tx store.Store) error) (*Receipt, error) {
	body, dedupeKey, err := s.canonical(payload)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{Reference: payload.Reference}
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		first, err := tx.MarkOnce(ctx, requestKey(payload.Reference))
		if err != nil {
			return err
		}
		if !first {
			return nil
		}

		if err := mutate(tx); err != nil {
			return err
		}

		entry := &schema.OutboxEvent{
			Kind:      payload.Kind,
			AssetKind: string(payload.AssetKind),
			AssetID:   payload.AssetID,
			Holder:    payload.Holder,
			Amount:    amount,
			Payload:   datatypes.JSON(body),
			DedupeKey: dedupeKey,
		}
		if err := tx.EnqueueOutbox(ctx, entry); err != nil {
			return err
		}

		receipt.OutboxID = entry.ID
		receipt.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !receipt.Applied {
		logger.InfoCtx(ctx, "Ledger request already applied", zap.String("reference", payload.Reference))
		return receipt, nil
	}

	logger.InfoCtx(ctx, "Applied ledger request",
		zap.String("kind", string(payload.Kind)),
		zap.String("assetKind", string(payload.AssetKind)),
		zap.Int64("assetID", payload.AssetID),
		zap.String("holder", payload.Holder),
		zap.String("amount", payload.Amount),
		zap.String("reference", payload.Reference),
		zap.String("outboxID", receipt.OutboxID),
	)
	return receipt, nil
}

// canonical returns the JCS form of payload and its sha256 digest
func (s *service) canonical(payload OutboxPayload) ([]byte, string, error) {
	raw, err := s.json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal outbox payload: %w", err)
	}
	body, err := s.jcs.Transform(raw)
	if err != nil {
		return nil, "", fmt.Errorf("failed to canonicalize outbox payload: %w", err)
	}
	sum := sha256.Sum256(body)
	return body, hex.EncodeToString(sum[:]), nil
}

func (s *service) Balance(ctx context.Context, kind domain.AssetKind, holder string, assetID int64) (*store.BalanceView, error) {
	if !domain.IsValidAssetKind(kind) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAssetKind, kind)
	}
	return s.store.SelectBalance(ctx, kind, holder, assetID)
}

func (s *service) List(ctx context.Context, kind domain.AssetKind, offset, limit int, filter querybuild.Predicate) (*Page, error) {
	if !domain.IsValidAssetKind(kind) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAssetKind, kind)
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	total, err := s.store.Count(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	items, err := s.store.SelectPaginated(ctx, kind, offset, limit, filter)
	if err != nil {
		return nil, err
	}

	return &Page{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}

func (s *service) Audit(ctx context.Context, kind domain.AssetKind, assetID int64) (*ConservationReport, error) {
	if !kind.HasQuantities() {
		return nil, fmt.Errorf("%w: %s balances carry no quantities", domain.ErrInvalidAssetKind, kind)
	}

	totals, err := s.store.GetAssetTotals(ctx, kind, assetID)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		return nil, fmt.Errorf("%w: %s %d", domain.ErrAssetNotFound, kind, assetID)
	}

	sums, err := s.store.SumBalances(ctx, kind, assetID)
	if err != nil {
		return nil, err
	}

	held := sums.Available.Add(sums.Retired).Add(sums.Transferred)
	expected := totals.TotalIssued.Add(sums.Received)

	report := &ConservationReport{
		Kind:           kind,
		AssetID:        assetID,
		Holders:        sums.Holders,
		TotalIssued:    totals.TotalIssued,
		TotalRetired:   totals.TotalRetired,
		Available:      sums.Available,
		Retired:        sums.Retired,
		Transferred:    sums.Transferred,
		Received:       sums.Received,
		Discrepancy:    held.Sub(expected),
		Conserved:      held.Equal(expected),
		RetiredMatches: sums.Retired.Equal(totals.TotalRetired),
	}
	s.metrics.discrepancy.WithLabelValues(string(kind)).Set(report.Discrepancy.InexactFloat64())

	if !report.Conserved || !report.RetiredMatches {
		logger.WarnCtx(ctx, "Ledger audit found a discrepancy",
			zap.String("kind", string(kind)),
			zap.Int64("assetID", assetID),
			zap.String("discrepancy", report.Discrepancy.String()),
			zap.String("retired", sums.Retired.String()),
			zap.String("totalRetired", totals.TotalRetired.String()),
		)
	}
	return report, nil
}

func (s *service) ApplyEvent(ctx context.Context, event *domain.LedgerEvent) (bool, error) {
	if event == nil || !event.Valid() {
		return false, domain.ErrInvalidEvent
	}

	eventType := event.Type()
	amount := decimal.Zero
	if eventType != domain.LedgerEventTrackerStatus {
		q, err := decimal.NewFromString(event.Quantity)
		if err != nil {
			return false, fmt.Errorf("%w: quantity %q", domain.ErrInvalidEvent, event.Quantity)
		}
		amount = q
	}

	outcome := outcomeApplied
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		first, err := tx.MarkOnce(ctx, eventKey(event))
		if err != nil {
			return err
		}
		if !first {
			outcome = outcomeDuplicate
			return nil
		}

		reconciled, err := tx.ReconcileOutbox(ctx, outboxKindOf(eventType), event.AssetKind, event.AssetID, subjectOf(event), amount)
		if err != nil {
			return err
		}
		if reconciled {
			outcome = outcomeReconciled
			return nil
		}

		return mirror(ctx, tx, event, amount)
	})
	if err != nil {
		s.metrics.event(eventType, outcomeOf(err))
		return false, err
	}
	s.metrics.event(eventType, outcome)

	logger.InfoCtx(ctx, "Ledger event handled",
		zap.String("type", string(eventType)),
		zap.String("outcome", outcome),
		zap.String("assetKind", string(event.AssetKind)),
		zap.Int64("assetID", event.AssetID),
		zap.String("txHash", event.TxHash),
		zap.Uint64("logIndex", event.LogIndex),
	)
	return outcome != outcomeDuplicate, nil
}

// mirror applies a chain event nothing off-chain had queued
func mirror(ctx context.Context, tx store.Store, event *domain.LedgerEvent, amount decimal.Decimal) error {
	kind := event.AssetKind
	switch event.Type() {
	case domain.LedgerEventIssue:
		if err := tx.CreditAvailable(ctx, kind, event.ToAddress, event.AssetID, amount); err != nil {
			return err
		}
		return tx.IncrementTotalIssued(ctx, kind, event.AssetID, amount)
	case domain.LedgerEventRetire:
		if err := tx.Retire(ctx, kind, event.FromAddress, event.AssetID, amount); err != nil {
			return err
		}
		return tx.IncrementTotalRetired(ctx, kind, event.AssetID, amount)
	case domain.LedgerEventTransfer:
		if err := tx.Transfer(ctx, kind, event.FromAddress, event.AssetID, amount); err != nil {
			return err
		}
		return tx.CreditReceived(ctx, kind, event.ToAddress, event.AssetID, amount)
	case domain.LedgerEventTrackerStatus:
		return tx.SetTrackerStatus(ctx, event.ToAddress, event.AssetID, event.Status)
	default:
		return domain.ErrInvalidEvent
	}
}

func outboxKindOf(eventType domain.LedgerEventType) schema.OutboxKind {
	switch eventType {
	case domain.LedgerEventIssue:
		return schema.OutboxKindIssued
	case domain.LedgerEventRetire:
		return schema.OutboxKindRetired
	case domain.LedgerEventTrackerStatus:
		return schema.OutboxKindTrackerStatus
	default:
		return schema.OutboxKindTransferred
	}
}

// subjectOf returns the holder an outbox entry for the event is keyed on
func subjectOf(event *domain.LedgerEvent) string {
	switch event.Type() {
	case domain.LedgerEventIssue, domain.LedgerEventTrackerStatus:
		return event.ToAddress
	default:
		return event.FromAddress
	}
}

func requestKey(reference string) string {
	return schema.KeyPrefixLedgerRequest + reference
}

func eventKey(event *domain.LedgerEvent) string {
	return fmt.Sprintf("%s%s:%d", schema.KeyPrefixLedgerEvent, strings.ToLower(event.TxHash), event.LogIndex)
}

func validQuantityRequest(kind domain.AssetKind, req Request) error {
	if !kind.HasQuantities() {
		return fmt.Errorf("%w: %s balances carry no quantities", domain.ErrInvalidAssetKind, kind)
	}
	if err := validHolder(req.Holder); err != nil {
		return err
	}
	if req.AssetID <= 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrAssetNotFound, kind, req.AssetID)
	}
	if !req.Amount.IsPositive() || !req.Amount.Equal(req.Amount.Truncate(0)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, req.Amount)
	}
	return nil
}

func validHolder(holder string) error {
	holder = strings.TrimSpace(holder)
	if !common.IsHexAddress(holder) || domain.IsZeroAddress(holder) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidHolder, holder)
	}
	return nil
}
