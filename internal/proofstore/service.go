package proofstore

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/messaging"
	"github.com/lucid-net/poot-engine/internal/registry"
	"github.com/lucid-net/poot-engine/internal/store"
)

const (
	defaultVerifyPoolSize  = 32
	defaultVerifyQueueSize = 1024
)

// Config holds proof intake settings
type Config struct {
	// Timer maps wall time to slot numbers
	Timer domain.SlotTimer
	// RetentionSlots is the depth of the retention window; submissions for
	// slots older than the horizon are rejected
	RetentionSlots uint64
	// VerifyPoolSize bounds concurrent signature verification
	VerifyPoolSize int
	// VerifyQueueSize bounds the verification backlog
	VerifyQueueSize int
}

// Service accepts, verifies, stores, and serves work proofs
type Service struct {
	cfg   Config
	store store.Store
	keys  registry.KeyRegistry
	pub   messaging.Publisher
	clock adapter.Clock
	pool  pond.Pool
}

// NewService creates the proof intake service. Signature verification runs
// on a bounded worker pool so a burst of submissions cannot monopolize CPU.
func NewService(cfg Config, st store.Store, keys registry.KeyRegistry, pub messaging.Publisher, clock adapter.Clock) *Service {
	poolSize := cfg.VerifyPoolSize
	if poolSize == 0 {
		poolSize = defaultVerifyPoolSize
	}
	queueSize := cfg.VerifyQueueSize
	if queueSize == 0 {
		queueSize = defaultVerifyQueueSize
	}

	return &Service{
		cfg:   cfg,
		store: st,
		keys:  keys,
		pub:   pub,
		clock: clock,
		pool:  pond.NewPool(poolSize, pond.WithQueueSize(queueSize)),
	}
}

// Submit validates, verifies, and persists a work proof. A prior proof for
// the same (slot, nodeId, proofType) is replaced, never merged. The raw
// accepted submission lands in the audit log alongside the upsert.
func (s *Service) Submit(ctx context.Context, proof *domain.WorkProof) error {
	if err := proof.Validate(); err != nil {
		return err
	}

	now := s.clock.Now().UTC()
	horizon := s.cfg.Timer.RetentionHorizon(now, s.cfg.RetentionSlots)
	if proof.Slot < horizon {
		return fmt.Errorf("%w: slot %d is before horizon %d", domain.ErrProofExpired, proof.Slot, horizon)
	}

	pub, err := s.keys.PublicKey(ctx, proof.NodeID)
	if err != nil {
		return err
	}

	task := s.pool.SubmitErr(func() error {
		return proof.VerifySignature(pub)
	})
	if err := task.Wait(); err != nil {
		return err
	}

	if proof.SubmittedAt.IsZero() {
		proof.SubmittedAt = now
	}

	if err := s.store.UpsertProof(ctx, proof); err != nil {
		return fmt.Errorf("failed to store proof: %w", err)
	}

	// Acceptance already happened; a broker hiccup must not fail the submission
	if s.pub != nil {
		if err := s.pub.PublishProofAccepted(ctx, proof); err != nil {
			logger.WarnCtx(ctx, "failed to publish proof accepted event",
				zap.Uint64("slot", proof.Slot),
				zap.String("node_id", proof.NodeID),
				zap.Error(err))
		}
	}

	return nil
}

// ProofsBySlot returns all accepted proofs for a slot
func (s *Service) ProofsBySlot(ctx context.Context, slot uint64) ([]*domain.WorkProof, error) {
	return s.store.GetProofsBySlot(ctx, slot)
}

// ProofsByNode returns a node's accepted proofs over an inclusive slot range
func (s *Service) ProofsByNode(ctx context.Context, nodeID string, fromSlot, toSlot uint64) ([]*domain.WorkProof, error) {
	return s.store.GetProofsByNode(ctx, nodeID, fromSlot, toSlot)
}

// Stop drains the verification pool
func (s *Service) Stop() {
	s.pool.StopAndWait()
}
