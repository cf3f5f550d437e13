package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/querybuild"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// ledgerTable describes where one asset kind keeps its balances and counters
type ledgerTable struct {
	balanceModel any
	balance      *querybuild.Table
	asset        *querybuild.Table
	// assetColumn is the balance column referencing the asset, named the same on both tables
	assetColumn string
	// assetDescription is the asset column surfaced in BalanceView.AssetDescription
	assetDescription string
}

var ledgerTables = map[domain.AssetKind]ledgerTable{
	domain.AssetKindToken: {
		balanceModel:     &schema.Balance{},
		balance:          querybuild.MustTable(&schema.Balance{}),
		asset:            querybuild.MustTable(&schema.Token{}),
		assetColumn:      "token_id",
		assetDescription: "description",
	},
	domain.AssetKindProduct: {
		balanceModel:     &schema.ProductTokenBalance{},
		balance:          querybuild.MustTable(&schema.ProductTokenBalance{}),
		asset:            querybuild.MustTable(&schema.ProductToken{}),
		assetColumn:      "product_id",
		assetDescription: "name",
	},
	domain.AssetKindTracker: {
		balanceModel:     &schema.TrackerBalance{},
		balance:          querybuild.MustTable(&schema.TrackerBalance{}),
		asset:            querybuild.MustTable(&schema.Tracker{}),
		assetColumn:      "tracker_id",
		assetDescription: "description",
	},
}

func tableFor(kind domain.AssetKind) (ledgerTable, error) {
	t, ok := ledgerTables[kind]
	if !ok {
		return ledgerTable{}, fmt.Errorf("%w: %s", domain.ErrInvalidAssetKind, kind)
	}
	return t, nil
}

func quantityTableFor(kind domain.AssetKind) (ledgerTable, error) {
	if !kind.HasQuantities() {
		return ledgerTable{}, fmt.Errorf("%w: %s balances carry no quantities", domain.ErrInvalidAssetKind, kind)
	}
	return tableFor(kind)
}

// joined selects the balance table left-joined with its asset table, shaped as BalanceView
func (t ledgerTable) joined(db *gorm.DB, kind domain.AssetKind) *gorm.DB {
	b, a := t.balance.Name, t.asset.Name

	quantities := fmt.Sprintf("%[1]s.available AS available, %[1]s.retired AS retired, %[1]s.transferred AS transferred, %[1]s.received AS received, '' AS status", b)
	if !kind.HasQuantities() {
		quantities = fmt.Sprintf("0 AS available, 0 AS retired, 0 AS transferred, 0 AS received, %s.status AS status", b)
	}

	return db.Table(b).
		Select(fmt.Sprintf(
			"%[1]s.issued_to AS issued_to, %[1]s.%[3]s AS asset_id, %[4]s, "+
				"COALESCE(%[2]s.%[5]s, '') AS asset_description, COALESCE(%[2]s.total_issued, 0) AS asset_total_issued, "+
				"COALESCE(%[2]s.total_retired, 0) AS asset_total_retired, %[1]s.updated_at AS updated_at",
			b, a, t.assetColumn, quantities, t.assetDescription)).
		Joins(fmt.Sprintf("LEFT JOIN %[2]s ON %[2]s.%[3]s = %[1]s.%[3]s", b, a, t.assetColumn))
}

func validAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(0)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	return nil
}

// CreditAvailable adds amount to available in a single upsert
func (s *pgStore) CreditAvailable(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error {
	return s.credit(ctx, kind, holder, assetID, amount, false)
}

// CreditReceived adds amount to available and received in a single upsert
func (s *pgStore) CreditReceived(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error {
	return s.credit(ctx, kind, holder, assetID, amount, true)
}

func (s *pgStore) credit(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal, received bool) error {
	t, err := quantityTableFor(kind)
	if err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}

	row := map[string]any{
		"issued_to":   domain.NormalizeHolder(holder),
		t.assetColumn: assetID,
		"available":   amount,
		"retired":     decimal.Zero,
		"transferred": decimal.Zero,
		"received":    decimal.Zero,
	}
	updates := map[string]any{
		"available":  gorm.Expr(t.balance.Name + ".available + EXCLUDED.available"),
		"updated_at": gorm.Expr("now()"),
	}
	if received {
		row["received"] = amount
		updates["received"] = gorm.Expr(t.balance.Name + ".received + EXCLUDED.received")
	}

	err = s.db.WithContext(ctx).
		Table(t.balance.Name).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: t.assetColumn}, {Name: "issued_to"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to credit available balance: %w", err)
	}
	return nil
}

// Transfer moves amount from available to transferred
func (s *pgStore) Transfer(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error {
	return s.debit(ctx, kind, holder, assetID, amount, "transferred")
}

// Retire moves amount from available to retired
func (s *pgStore) Retire(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal) error {
	return s.debit(ctx, kind, holder, assetID, amount, "retired")
}

// debit is one conditional update: it applies only while available covers amount
func (s *pgStore) debit(ctx context.Context, kind domain.AssetKind, holder string, assetID int64, amount decimal.Decimal, column string) error {
	t, err := quantityTableFor(kind)
	if err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}
	holder = domain.NormalizeHolder(holder)

	result := s.db.WithContext(ctx).
		Table(t.balance.Name).
		Where(t.assetColumn+" = ? AND issued_to = ? AND available >= ?", assetID, holder, amount).
		Updates(map[string]any{
			"available":  gorm.Expr("available - ?", amount),
			column:       gorm.Expr(column+" + ?", amount),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to debit available balance: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: tell a missing row from a short one
	var count int64
	err = s.primary(ctx).
		Table(t.balance.Name).
		Where(t.assetColumn+" = ? AND issued_to = ?", assetID, holder).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check balance: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s holds no %s %d", domain.ErrBalanceNotFound, holder, kind, assetID)
	}
	return fmt.Errorf("%w: %s has less than %s of %s %d available", domain.ErrInsufficientBalance, holder, amount, kind, assetID)
}

// SetTrackerStatus sets the custody status in a single upsert
func (s *pgStore) SetTrackerStatus(ctx context.Context, holder string, trackerID int64, status domain.TrackerStatus) error {
	if !domain.IsValidTrackerStatus(status) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTrackerStatus, status)
	}

	tb := schema.TrackerBalance{
		IssuedTo:  domain.NormalizeHolder(holder),
		TrackerID: trackerID,
		Status:    string(status),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tracker_id"}, {Name: "issued_to"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     gorm.Expr("EXCLUDED.status"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(&tb).Error
	if err != nil {
		return fmt.Errorf("failed to set tracker status: %w", err)
	}
	return nil
}

// SelectBalance returns the holder's row, nil if missing
func (s *pgStore) SelectBalance(ctx context.Context, kind domain.AssetKind, holder string, assetID int64) (*BalanceView, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []BalanceView
	err = t.joined(s.db.WithContext(ctx), kind).
		Where(fmt.Sprintf("%s.%s = ? AND LOWER(%s.issued_to) = LOWER(?)", t.balance.Name, t.assetColumn, t.balance.Name), assetID, holder).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select balance: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	rows[0].Kind = kind
	return &rows[0], nil
}

// SelectPaginated lists rows joined with their asset, ordered by asset then holder
func (s *pgStore) SelectPaginated(ctx context.Context, kind domain.AssetKind, offset, limit int, filter querybuild.Predicate) ([]BalanceView, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	db, err := querybuild.Apply(t.joined(s.db.WithContext(ctx), kind), filter, t.balance, t.asset)
	if err != nil {
		return nil, err
	}

	var rows []BalanceView
	err = db.
		Order(fmt.Sprintf("%s.%s ASC", t.balance.Name, t.assetColumn)).
		Order(fmt.Sprintf("%s.issued_to ASC", t.balance.Name)).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select balances: %w", err)
	}

	for i := range rows {
		rows[i].Kind = kind
	}
	return rows, nil
}

// Count counts rows matching filter
func (s *pgStore) Count(ctx context.Context, kind domain.AssetKind, filter querybuild.Predicate) (int64, error) {
	t, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	db := s.db.WithContext(ctx).
		Table(t.balance.Name).
		Joins(fmt.Sprintf("LEFT JOIN %[2]s ON %[2]s.%[3]s = %[1]s.%[3]s", t.balance.Name, t.asset.Name, t.assetColumn))
	db, err = querybuild.Apply(db, filter, t.balance, t.asset)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count balances: %w", err)
	}
	return count, nil
}

// SumBalances aggregates all holder rows of an asset
func (s *pgStore) SumBalances(ctx context.Context, kind domain.AssetKind, assetID int64) (*BalanceSums, error) {
	t, err := quantityTableFor(kind)
	if err != nil {
		return nil, err
	}

	var sums BalanceSums
	err = s.primary(ctx).
		Table(t.balance.Name).
		Select("COUNT(*) AS holders, COALESCE(SUM(available), 0) AS available, "+
			"COALESCE(SUM(retired), 0) AS retired, COALESCE(SUM(transferred), 0) AS transferred, "+
			"COALESCE(SUM(received), 0) AS received").
		Where(t.assetColumn+" = ?", assetID).
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}
	return &sums, nil
}

// CreateToken registers a token, ignoring duplicates
func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token) error {
	token.IssuedTo = domain.NormalizeHolder(token.IssuedTo)
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// CreateProductToken registers a product token, ignoring duplicates
func (s *pgStore) CreateProductToken(ctx context.Context, product *schema.ProductToken) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product token: %w", err)
	}
	return nil
}

// CreateTracker registers a tracker, ignoring duplicates
func (s *pgStore) CreateTracker(ctx context.Context, tracker *schema.Tracker) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(tracker).Error; err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}
	return nil
}

// GetAssetTotals returns the counters of an asset
func (s *pgStore) GetAssetTotals(ctx context.Context, kind domain.AssetKind, assetID int64) (*AssetTotals, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		TotalIssued  decimal.Decimal
		TotalRetired decimal.Decimal
	}
	err = s.primary(ctx).
		Table(t.asset.Name).
		Select("total_issued, total_retired").
		Where(t.assetColumn+" = ?", assetID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset totals: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &AssetTotals{
		Kind:         kind,
		AssetID:      assetID,
		TotalIssued:  rows[0].TotalIssued,
		TotalRetired: rows[0].TotalRetired,
	}, nil
}

// IncrementTotalIssued adds amount to the asset's total issued
func (s *pgStore) IncrementTotalIssued(ctx context.Context, kind domain.AssetKind, assetID int64, amount decimal.Decimal) error {
	return s.incrementTotal(ctx, kind, assetID, amount, "total_issued")
}

// IncrementTotalRetired adds amount to the asset's total retired
func (s *pgStore) IncrementTotalRetired(ctx context.Context, kind domain.AssetKind, assetID int64, amount decimal.Decimal) error {
	return s.incrementTotal(ctx, kind, assetID, amount, "total_retired")
}

func (s *pgStore) incrementTotal(ctx context.Context, kind domain.AssetKind, assetID int64, amount decimal.Decimal, column string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Table(t.asset.Name).
		Where(t.assetColumn+" = ?", assetID).
		Updates(map[string]any{
			column:       gorm.Expr(column+" + ?", amount),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrAssetNotFound, kind, assetID)
	}
	return nil
}
