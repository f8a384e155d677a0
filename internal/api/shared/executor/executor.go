package executor

import (
	"context"

	"github.com/lucid-net/poot-engine/internal/anchor"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/proofstore"
	"github.com/lucid-net/poot-engine/internal/scheduler"
	"github.com/lucid-net/poot-engine/internal/tally"
)

// Executor bundles the engine's operations behind one interface so the REST
// handlers stay free of service wiring
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// SubmitProof validates, verifies, and stores a work proof
	SubmitProof(ctx context.Context, proof *domain.WorkProof) error
	// ProofsBySlot returns all accepted proofs for a slot
	ProofsBySlot(ctx context.Context, slot uint64) ([]*domain.WorkProof, error)
	// ProofsByNode returns a node's accepted proofs over an inclusive slot range
	ProofsByNode(ctx context.Context, nodeID string, fromSlot, toSlot uint64) ([]*domain.WorkProof, error)
	// EpochTally returns the stored ranking for an epoch, rank ascending
	EpochTally(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error)
	// EpochSchedule returns the stored schedule for an epoch, slot ascending
	EpochSchedule(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error)
	// SlotSchedule returns a single slot's schedule entry
	SlotSchedule(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error)
	// RecordSlotResult anchors a slot's production outcome, write-once
	RecordSlotResult(ctx context.Context, result *domain.SlotResult) error
}

type exec struct {
	proofs    *proofstore.Service
	tallier   *tally.Aggregator
	scheduler *scheduler.Scheduler
	recorder  *anchor.Recorder
}

// NewExecutor creates the executor over the engine's services
func NewExecutor(proofs *proofstore.Service, tallier *tally.Aggregator, sched *scheduler.Scheduler, recorder *anchor.Recorder) Executor {
	return &exec{
		proofs:    proofs,
		tallier:   tallier,
		scheduler: sched,
		recorder:  recorder,
	}
}

func (e *exec) SubmitProof(ctx context.Context, proof *domain.WorkProof) error {
	return e.proofs.Submit(ctx, proof)
}

func (e *exec) ProofsBySlot(ctx context.Context, slot uint64) ([]*domain.WorkProof, error) {
	return e.proofs.ProofsBySlot(ctx, slot)
}

func (e *exec) ProofsByNode(ctx context.Context, nodeID string, fromSlot, toSlot uint64) ([]*domain.WorkProof, error) {
	return e.proofs.ProofsByNode(ctx, nodeID, fromSlot, toSlot)
}

func (e *exec) EpochTally(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error) {
	return e.tallier.EpochTally(ctx, epoch)
}

func (e *exec) EpochSchedule(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error) {
	return e.scheduler.EpochSchedule(ctx, epoch)
}

func (e *exec) SlotSchedule(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error) {
	return e.scheduler.SlotSchedule(ctx, slot)
}

func (e *exec) RecordSlotResult(ctx context.Context, result *domain.SlotResult) error {
	return e.recorder.RecordResult(ctx, result)
}
