package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// EnqueueOutbox stores an entry, ignoring an entry with the same dedupe key
func (s *pgStore) EnqueueOutbox(ctx context.Context, event *schema.OutboxEvent) error {
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.Status == "" {
		event.Status = schema.OutboxStatusPending
	}
	event.Holder = domain.NormalizeHolder(event.Holder)

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedupe_key"}},
			DoNothing: true,
		}).
		Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to enqueue outbox event: %w", err)
	}
	return nil
}

// ListPendingOutbox returns the oldest pending entries
func (s *pgStore) ListPendingOutbox(ctx context.Context, limit int) ([]schema.OutboxEvent, error) {
	var events []schema.OutboxEvent
	err := s.primary(ctx).
		Where("status = ?", schema.OutboxStatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending outbox events: %w", err)
	}
	return events, nil
}

// MarkOutboxPublished records a successful publish. Reconciled entries keep their status.
func (s *pgStore) MarkOutboxPublished(ctx context.Context, id string, sentAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Where("id = ? AND status = ?", id, schema.OutboxStatusPending).
		Updates(map[string]any{
			"status":     schema.OutboxStatusPublished,
			"sent_at":    sentAt,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": nil,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox event published: %w", err)
	}
	return nil
}

// MarkOutboxAttemptFailed records a failed publish; the entry turns failed once attempts reach maxAttempts
func (s *pgStore) MarkOutboxAttemptFailed(ctx context.Context, id string, cause string, maxAttempts int) error {
	err := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Where("id = ? AND status = ?", id, schema.OutboxStatusPending).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": cause,
			"status": gorm.Expr("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
				maxAttempts, schema.OutboxStatusFailed),
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to record outbox attempt: %w", err)
	}
	return nil
}

// ReconcileOutbox marks the oldest unreconciled matching entry as reconciled
func (s *pgStore) ReconcileOutbox(ctx context.Context, kind schema.OutboxKind, assetKind domain.AssetKind, assetID int64, holder string, amount decimal.Decimal) (bool, error) {
	oldest := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Select("id").
		Where("kind = ? AND asset_kind = ? AND asset_id = ? AND holder = ? AND amount = ?",
			kind, string(assetKind), assetID, domain.NormalizeHolder(holder), amount).
		Where("status IN ?", []schema.OutboxStatus{schema.OutboxStatusPending, schema.OutboxStatusPublished, schema.OutboxStatusFailed}).
		Order("id ASC").
		Limit(1)

	result := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Where("id = (?)", oldest).
		Updates(map[string]any{
			"status":     schema.OutboxStatusReconciled,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to reconcile outbox event: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CountOutboxByStatus counts entries per status
func (s *pgStore) CountOutboxByStatus(ctx context.Context) (map[schema.OutboxStatus]int64, error) {
	var rows []struct {
		Status schema.OutboxStatus
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count outbox events: %w", err)
	}

	counts := make(map[schema.OutboxStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
