package messaging

import "github.com/lucid-net/poot-engine/internal/domain"

// NATS subjects carried on the engine's event stream
const (
	// SubjectProofAccepted announces an accepted (or replaced) work proof
	SubjectProofAccepted = "poot.proofs.accepted"
	// SubjectSlotResolved announces a recorded slot result for settlement
	SubjectSlotResolved = "poot.slots.resolved"
	// SubjectEpochClosed is published by the epoch closure oracle when an
	// epoch's proof window ends
	SubjectEpochClosed = "poot.epochs.closed"
)

// ProofAcceptedEvent is emitted after a proof submission is persisted
type ProofAcceptedEvent struct {
	Slot     uint64           `json:"slot"`
	NodeID   string           `json:"node_id"`
	EntityID string           `json:"entity_id"`
	Type     domain.ProofType `json:"type"`
}

// SlotResolvedEvent is emitted after a slot result is recorded. Settlement
// consumes these instead of polling the schedule table.
type SlotResolvedEvent struct {
	Slot   uint64  `json:"slot"`
	Winner *string `json:"winner,omitempty"`
	Reason string  `json:"reason"`
}

// EpochClosedEvent announces that an epoch's proof submission window has
// closed and the epoch is ready to tally
type EpochClosedEvent struct {
	Epoch uint64 `json:"epoch"`
}
