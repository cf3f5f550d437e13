package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/ledger"
	"github.com/feral-file/carbon-engine/internal/logger"
	jsprovider "github.com/feral-file/carbon-engine/internal/providers/jetstream"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run consumes chain events until the context is canceled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	ledger ledger.Service
	json   adapter.JSON
	config Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	ledgerService ledger.Service,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "ledger.events"
	}

	nc, js, err := natsJS.Connect(cfg.URL, jsprovider.ConnectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:     nc,
		js:     js,
		ledger: ledgerService,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: b.config.SubjectPrefix + ".>",
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming ledger events")

	// Events are applied one at a time in delivery order: a transfer must not overtake
	// the issue that funded it.
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var delivered uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		delivered = metadata.NumDelivered
	}

	var event domain.LedgerEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal ledger event"))
		b.term(ctx, msg)
		return
	}

	logger.DebugCtx(ctx, "Received ledger event",
		zap.String("assetKind", string(event.AssetKind)),
		zap.Int64("assetID", event.AssetID),
		zap.String("txHash", event.TxHash),
		zap.Uint64("logIndex", event.LogIndex),
		zap.Uint64("deliveryCount", delivered),
	)

	applied, err := b.ledger.ApplyEvent(ctx, &event)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			logger.WarnCtx(ctx, "Dropping invalid ledger event",
				zap.Error(err),
				zap.String("txHash", event.TxHash),
				zap.Uint64("logIndex", event.LogIndex),
			)
			b.term(ctx, msg)
			return
		}

		// Includes events for assets not registered yet; redelivery gives them another chance
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to apply ledger event"),
			zap.String("txHash", event.TxHash),
			zap.Uint64("logIndex", event.LogIndex),
			zap.Uint64("deliveryCount", delivered),
		)
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if !applied {
		logger.DebugCtx(ctx, "Ledger event already applied", zap.String("txHash", event.TxHash), zap.Uint64("logIndex", event.LogIndex))
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

func (b *bridge) term(ctx context.Context, msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
