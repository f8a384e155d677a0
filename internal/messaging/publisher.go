package messaging

import (
	"context"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// Publisher defines the interface for publishing engine events to the broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishProofAccepted announces a persisted proof submission
	PublishProofAccepted(ctx context.Context, proof *domain.WorkProof) error
	// PublishSlotResolved announces a recorded slot result
	PublishSlotResolved(ctx context.Context, result *domain.SlotResult) error
	// Close closes the connection
	Close()
}
