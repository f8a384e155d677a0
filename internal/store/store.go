package store

import (
	"context"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertProof stores an accepted proof with last-write-wins semantics on
	// the (slot, node_id, proof_type) key and appends the raw submission to
	// the audit log in the same transaction
	UpsertProof(ctx context.Context, proof *domain.WorkProof) error
	// GetProofsBySlot retrieves all accepted proofs for a slot
	GetProofsBySlot(ctx context.Context, slot uint64) ([]*domain.WorkProof, error)
	// GetProofsByNode retrieves a node's accepted proofs over an inclusive slot range
	GetProofsByNode(ctx context.Context, nodeID string, fromSlot, toSlot uint64) ([]*domain.WorkProof, error)
	// GetProofsBySlotRange retrieves all accepted proofs over an inclusive slot range
	GetProofsBySlotRange(ctx context.Context, fromSlot, toSlot uint64) ([]*domain.WorkProof, error)

	// ReplaceEpochTally atomically replaces the epoch's tally rows. Returns
	// domain.ErrTallyFinalized when a schedule already exists for the epoch.
	ReplaceEpochTally(ctx context.Context, epoch domain.Epoch, entries []*domain.WorkTallyEntry) error
	// GetEpochTally retrieves the epoch's tally rows ordered by rank ascending
	GetEpochTally(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error)

	// CreateEpochSchedule atomically writes all slot schedule rows for an
	// epoch. Returns domain.ErrScheduleConflict when the epoch already has a
	// schedule; the existing schedule is left untouched.
	CreateEpochSchedule(ctx context.Context, epoch domain.Epoch, entries []*domain.LeaderScheduleEntry) error
	// GetScheduleEntry retrieves one slot's schedule entry, or
	// domain.ErrScheduleNotFound when the slot was never scheduled
	GetScheduleEntry(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error)
	// GetEpochSchedule retrieves the epoch's schedule ordered by slot ascending
	GetEpochSchedule(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error)
	// IsEpochScheduled reports whether a schedule exists for the epoch
	IsEpochScheduled(ctx context.Context, epoch domain.Epoch) (bool, error)

	// RecordSlotResult writes a slot's result exactly once. Returns
	// domain.ErrScheduleNotFound for unscheduled slots and
	// domain.ErrResultAlreadyRecorded when the slot is already resolved.
	RecordSlotResult(ctx context.Context, result *domain.SlotResult) error
}
