package outbox

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/messaging"
	"github.com/feral-file/carbon-engine/internal/store"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// Config holds configuration for the outbox relay
type Config struct {
	SubjectPrefix   string        // Subjects are <prefix>.<kind>
	BatchSize       int           // Entries read per cycle
	PollInterval    time.Duration // Sleep between cycles when the outbox is drained
	MaxAttempts     int           // Failed cycles before an entry is marked failed
	PublishRetries  int           // In-cycle retries of one publish
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// Relay publishes pending outbox entries to the message broker
type Relay interface {
	// Start runs the relay loop until the context is canceled or Stop is called
	Start(ctx context.Context) error
	// Stop asks the loop to exit and waits for it
	Stop(ctx context.Context) error
	// RelayOnce publishes one batch and returns the number of entries read
	RelayOnce(ctx context.Context) (int, error)
	// Name returns the relay's name for logging
	Name() string
}

type relay struct {
	config    Config
	store     store.OutboxStore
	publisher messaging.Publisher
	clock     adapter.Clock
	metrics   *Metrics
	running   atomic.Bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewRelay creates an outbox relay
func NewRelay(cfg Config, st store.OutboxStore, pub messaging.Publisher, clock adapter.Clock, metrics *Metrics) Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "ledger.outbox"
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &relay{
		config:    cfg,
		store:     st,
		publisher: pub,
		clock:     clock,
		metrics:   metrics,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (r *relay) Name() string {
	return "outbox-relay"
}

func (r *relay) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("relay already running")
	}
	defer close(r.stoppedCh)

	logger.InfoCtx(ctx, "Starting outbox relay",
		zap.String("subjectPrefix", r.config.SubjectPrefix),
		zap.Int("batchSize", r.config.BatchSize),
		zap.Duration("pollInterval", r.config.PollInterval),
	)

	for {
		read, err := r.RelayOnce(ctx)
		if err != nil && ctx.Err() == nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Outbox relay cycle failed"))
		}

		// A full batch means a backlog: go again without sleeping
		wait := r.config.PollInterval
		if err == nil && read >= r.config.BatchSize {
			wait = 0
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Outbox relay stopping due to context cancellation")
			return nil
		case <-r.stopCh:
			logger.InfoCtx(ctx, "Outbox relay stop requested")
			return nil
		case <-r.clock.After(wait):
		}
	}
}

func (r *relay) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}
	close(r.stopCh)

	select {
	case <-r.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *relay) RelayOnce(ctx context.Context) (int, error) {
	entries, err := r.store.ListPendingOutbox(ctx, r.config.BatchSize)
	if err != nil {
		return 0, err
	}

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		entry := &entries[i]
		if err := r.publish(ctx, entry); err != nil {
			r.metrics.published.WithLabelValues(string(entry.Kind), outcomeFailed).Inc()
			logger.WarnCtx(ctx, "Failed to publish outbox entry",
				zap.Error(err),
				zap.String("id", entry.ID),
				zap.Int("attempts", entry.Attempts+1),
			)
			if err := r.store.MarkOutboxAttemptFailed(ctx, entry.ID, err.Error(), r.config.MaxAttempts); err != nil {
				return i, err
			}
			continue
		}

		if err := r.store.MarkOutboxPublished(ctx, entry.ID, r.clock.Now()); err != nil {
			return i, err
		}
		r.metrics.published.WithLabelValues(string(entry.Kind), outcomePublished).Inc()
	}

	r.refreshBacklog(ctx)
	return len(entries), nil
}

// publish retries one entry with exponential backoff. The entry id is the message id,
// so a publish that reached the broker before a failed ack is dropped as a duplicate.
func (r *relay) publish(ctx context.Context, entry *schema.OutboxEvent) error {
	b := backoff.NewExponentialBackOff()
	if r.config.InitialInterval > 0 {
		b.InitialInterval = r.config.InitialInterval
	}
	if r.config.MaxElapsedTime > 0 {
		b.MaxElapsedTime = r.config.MaxElapsedTime
	}
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(r.config.PublishRetries, 0))), ctx)

	subject := fmt.Sprintf("%s.%s", r.config.SubjectPrefix, entry.Kind)
	operation := func() error {
		return r.publisher.Publish(ctx, subject, entry.ID, []byte(entry.Payload))
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.DebugCtx(ctx, "Outbox publish failed, retrying",
			zap.Error(err),
			zap.String("id", entry.ID),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	return backoff.RetryNotify(operation, policy, notifyOnError)
}

func (r *relay) refreshBacklog(ctx context.Context) {
	counts, err := r.store.CountOutboxByStatus(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to count outbox entries", zap.Error(err))
		return
	}

	for _, status := range []schema.OutboxStatus{
		schema.OutboxStatusPending,
		schema.OutboxStatusPublished,
		schema.OutboxStatusReconciled,
		schema.OutboxStatusFailed,
	} {
		r.metrics.entries.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}
