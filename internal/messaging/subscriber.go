package messaging

import (
	"context"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// EpochClosedHandler is called for each epoch closure announcement. Returning
// an error requeues the message for redelivery.
type EpochClosedHandler func(ctx context.Context, epoch domain.Epoch) error

// Subscriber defines the interface for consuming epoch closure announcements
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEpochClosed consumes epoch closure events until ctx is done
	SubscribeEpochClosed(ctx context.Context, handler EpochClosedHandler) error
	// Close closes the connection and cleans up resources
	Close()
}
