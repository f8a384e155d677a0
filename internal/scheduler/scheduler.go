package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/store"
)

// Config holds leader scheduling settings
type Config struct {
	// SlotsPerEpoch is the fixed epoch length in slots
	SlotsPerEpoch uint64
	// FallbackDepth is the number of fallback leaders per slot
	FallbackDepth int
}

// Scheduler derives a deterministic leader rotation from an epoch's tally.
// Slot assignment is pure arithmetic over the ranking, so any node holding
// the same tally derives the same schedule.
type Scheduler struct {
	cfg   Config
	store store.Store
}

// NewScheduler creates a leader scheduler
func NewScheduler(cfg Config, st store.Store) *Scheduler {
	return &Scheduler{cfg: cfg, store: st}
}

// ScheduleEpoch builds and persists the slot-by-slot leader schedule for an
// epoch from its stored tally. Schedules are write-once: a second attempt
// fails with domain.ErrScheduleConflict. Writing the schedule finalizes the
// epoch's tally as a side effect.
func (s *Scheduler) ScheduleEpoch(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error) {
	tallyEntries, err := s.store.GetEpochTally(ctx, epoch)
	if err != nil {
		return nil, fmt.Errorf("failed to load epoch tally: %w", err)
	}
	if len(tallyEntries) == 0 {
		return nil, fmt.Errorf("%w: epoch %d", domain.ErrEmptyRanking, epoch)
	}

	ranked := make([]string, len(tallyEntries))
	for i, entry := range tallyEntries {
		ranked[i] = entry.EntityID
	}

	entries := buildSchedule(epoch, ranked, s.cfg.SlotsPerEpoch, s.cfg.FallbackDepth)

	if err := s.store.CreateEpochSchedule(ctx, epoch, entries); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "epoch scheduled",
		zap.Uint64("epoch", uint64(epoch)),
		zap.Int("entities", len(ranked)),
		zap.Uint64("slots", s.cfg.SlotsPerEpoch))

	return entries, nil
}

// buildSchedule assigns each slot a primary and ordered fallbacks by rotating
// through the ranked list: slot k gets ranked[k mod N] as primary and the
// next fallbackDepth distinct entities, wrapping around. Fewer entities than
// fallbackDepth+1 just yields shorter fallback lists; an entity never backs
// itself up.
func buildSchedule(epoch domain.Epoch, ranked []string, slotsPerEpoch uint64, fallbackDepth int) []*domain.LeaderScheduleEntry {
	n := len(ranked)
	depth := fallbackDepth
	if depth > n-1 {
		depth = n - 1
	}

	firstSlot := epoch.FirstSlot(slotsPerEpoch)
	entries := make([]*domain.LeaderScheduleEntry, 0, slotsPerEpoch)
	for i := uint64(0); i < slotsPerEpoch; i++ {
		slot := firstSlot + i
		lead := int(slot % uint64(n))

		fallbacks := make([]string, 0, depth)
		for j := 1; j <= depth; j++ {
			fallbacks = append(fallbacks, ranked[(lead+j)%n])
		}

		entries = append(entries, &domain.LeaderScheduleEntry{
			Slot:      slot,
			Epoch:     epoch,
			Primary:   ranked[lead],
			Fallbacks: fallbacks,
		})
	}

	return entries
}

// EpochSchedule returns the stored schedule for an epoch, slot ascending
func (s *Scheduler) EpochSchedule(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error) {
	return s.store.GetEpochSchedule(ctx, epoch)
}

// SlotSchedule returns a single slot's schedule entry
func (s *Scheduler) SlotSchedule(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error) {
	return s.store.GetScheduleEntry(ctx, slot)
}
