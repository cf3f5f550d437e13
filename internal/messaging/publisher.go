package messaging

import (
	"context"
)

// Publisher defines the interface for publishing ledger messages to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish publishes data on subject. The broker drops a repeated msgID within its duplicate window.
	Publish(ctx context.Context, subject string, msgID string, data []byte) error
	// Close closes the connection
	Close()
}
