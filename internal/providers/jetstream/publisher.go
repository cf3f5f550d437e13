package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// Stream is provisioned on connect when set, capturing Subjects
	Stream   string
	Subjects []string
	// DuplicateWindow is how long the broker remembers message ids
	DuplicateWindow time.Duration
}

type publisher struct {
	nc adapter.NatsConn
	js adapter.JetStream
}

// ConnectionOptions returns the reconnect and logging options shared by publishers and consumers
func ConnectionOptions(name string, maxReconnects int, reconnectWait time.Duration) []nats.Option {
	return []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, ConnectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.Stream != "" {
		err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:       cfg.Stream,
			Subjects:   cfg.Subjects,
			Duplicates: cfg.DuplicateWindow,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to provision stream %s: %w", cfg.Stream, err)
		}
		logger.InfoCtx(ctx, "Provisioned NATS stream", zap.String("stream", cfg.Stream), zap.Strings("subjects", cfg.Subjects))
	}

	return &publisher{
		nc: nc,
		js: js,
	}, nil
}

// Publish publishes data to NATS JetStream with msgID as the Nats-Msg-Id header
func (p *publisher) Publish(ctx context.Context, subject string, msgID string, data []byte) error {
	logger.DebugCtx(ctx, "Publishing NATS message", zap.String("subject", subject), zap.String("msgID", msgID))

	ack, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	if ack != nil && ack.Duplicate {
		logger.InfoCtx(ctx, "Broker dropped duplicate message", zap.String("msgID", msgID))
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
