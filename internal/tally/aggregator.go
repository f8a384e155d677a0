package tally

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/store"
	"github.com/lucid-net/poot-engine/internal/weights"
)

// Config holds tally computation settings
type Config struct {
	// SlotsPerEpoch is the fixed epoch length in slots
	SlotsPerEpoch uint64
	// Timer maps wall time to slot numbers for the closed-epoch check
	Timer domain.SlotTimer
}

// Aggregator turns a closed epoch's accepted proofs into a ranked work tally.
// The computation is deterministic: integer credit arithmetic and a strict
// total order mean recomputing an unchanged epoch yields identical rows.
type Aggregator struct {
	cfg   Config
	store store.Store
	table *weights.Table
	clock adapter.Clock
}

// NewAggregator creates a tally aggregator using the given weight table
func NewAggregator(cfg Config, st store.Store, table *weights.Table, clock adapter.Clock) *Aggregator {
	return &Aggregator{
		cfg:   cfg,
		store: st,
		table: table,
		clock: clock,
	}
}

// entityAccumulator collects one entity's evidence while scanning proofs
type entityAccumulator struct {
	credits      uint64
	coveredSlots map[uint64]struct{}
}

// TallyEpoch computes the epoch's ranking from its accepted proofs and
// atomically replaces any prior tally for the epoch. The epoch must be
// closed; a finalized epoch (one with a schedule) is refused by the store.
func (a *Aggregator) TallyEpoch(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error) {
	lastSlot := epoch.LastSlot(a.cfg.SlotsPerEpoch)
	currentSlot := a.cfg.Timer.SlotAt(a.clock.Now().UTC())
	if currentSlot <= lastSlot {
		return nil, fmt.Errorf("%w: epoch %d runs through slot %d, current slot is %d",
			domain.ErrEpochNotClosed, epoch, lastSlot, currentSlot)
	}

	firstSlot := epoch.FirstSlot(a.cfg.SlotsPerEpoch)
	proofs, err := a.store.GetProofsBySlotRange(ctx, firstSlot, lastSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to load epoch proofs: %w", err)
	}

	entries := a.compute(ctx, epoch, proofs)

	if err := a.store.ReplaceEpochTally(ctx, epoch, entries); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "epoch tallied",
		zap.Uint64("epoch", uint64(epoch)),
		zap.Int("proofs", len(proofs)),
		zap.Int("entities", len(entries)),
		zap.String("weight_table", a.table.Version))

	return entries, nil
}

// compute aggregates proofs into ranked tally entries. Credits are the
// weighted sum of per-type metrics; liveScore is the fraction of the epoch's
// slots the entity covered with at least one accepted proof.
func (a *Aggregator) compute(ctx context.Context, epoch domain.Epoch, proofs []*domain.WorkProof) []*domain.WorkTallyEntry {
	accumulators := make(map[string]*entityAccumulator)

	for _, proof := range proofs {
		credit, ok := a.table.Credit(proof)
		if !ok {
			// Weight table evolution must never retroactively break old
			// proofs: an uncovered type is an explicit skip, not an error
			logger.WarnCtx(ctx, "skipping proof with uncovered type",
				zap.Uint64("slot", proof.Slot),
				zap.String("node_id", proof.NodeID),
				zap.String("type", string(proof.Type)))
			continue
		}

		entityID := proof.EntityID()
		acc, ok := accumulators[entityID]
		if !ok {
			acc = &entityAccumulator{coveredSlots: make(map[uint64]struct{})}
			accumulators[entityID] = acc
		}

		acc.credits += credit
		acc.coveredSlots[proof.Slot] = struct{}{}
	}

	entries := make([]*domain.WorkTallyEntry, 0, len(accumulators))
	for entityID, acc := range accumulators {
		entries = append(entries, &domain.WorkTallyEntry{
			Epoch:     epoch,
			EntityID:  entityID,
			Credits:   acc.credits,
			LiveScore: float64(len(acc.coveredSlots)) / float64(a.cfg.SlotsPerEpoch),
		})
	}

	// Strict total order: credits desc, liveScore desc, entityId asc.
	// The entityId tiebreak guarantees no two entries ever compare equal.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Credits != entries[j].Credits {
			return entries[i].Credits > entries[j].Credits
		}
		if entries[i].LiveScore != entries[j].LiveScore {
			return entries[i].LiveScore > entries[j].LiveScore
		}
		return entries[i].EntityID < entries[j].EntityID
	})

	for i := range entries {
		entries[i].Rank = uint32(i + 1)
	}

	return entries
}

// EpochTally returns the stored ranking for an epoch, rank ascending
func (a *Aggregator) EpochTally(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error) {
	return a.store.GetEpochTally(ctx, epoch)
}
