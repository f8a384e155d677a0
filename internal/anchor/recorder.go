package anchor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/messaging"
	"github.com/lucid-net/poot-engine/internal/store"
)

// Recorder anchors each slot's production outcome against its schedule
// entry. Results are write-once; settlement and auditing read them but
// never change them.
type Recorder struct {
	store store.Store
	pub   messaging.Publisher
}

// NewRecorder creates a slot result recorder
func NewRecorder(st store.Store, pub messaging.Publisher) *Recorder {
	return &Recorder{store: st, pub: pub}
}

// RecordResult validates a slot result against the slot's schedule and
// persists it. The reason must belong to the closed set and the winner must
// match the entity that reason names. A second record for the same slot
// fails with domain.ErrResultAlreadyRecorded and leaves the first untouched.
func (r *Recorder) RecordResult(ctx context.Context, result *domain.SlotResult) error {
	entry, err := r.store.GetScheduleEntry(ctx, result.Slot)
	if err != nil {
		return err
	}

	if entry.Resolved() {
		return fmt.Errorf("%w: slot %d", domain.ErrResultAlreadyRecorded, result.Slot)
	}

	if err := result.Validate(entry); err != nil {
		return err
	}

	if err := r.store.RecordSlotResult(ctx, result); err != nil {
		return err
	}

	// Recording already happened; a broker hiccup must not fail the call
	if r.pub != nil {
		if err := r.pub.PublishSlotResolved(ctx, result); err != nil {
			logger.WarnCtx(ctx, "failed to publish slot resolved event",
				zap.Uint64("slot", result.Slot),
				zap.Error(err))
		}
	}

	return nil
}

// SlotEntry returns a slot's schedule entry including any recorded result
func (r *Recorder) SlotEntry(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error) {
	return r.store.GetScheduleEntry(ctx, slot)
}
