package domain

import "time"

// SlotTimer derives slot numbers from wall time. Slot 0 starts at genesis;
// every slot lasts exactly SlotDuration.
type SlotTimer struct {
	Genesis      time.Time
	SlotDuration time.Duration
}

// SlotAt returns the slot containing the given instant. Instants before
// genesis map to slot 0.
func (t SlotTimer) SlotAt(now time.Time) uint64 {
	elapsed := now.Sub(t.Genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / t.SlotDuration)
}

// RetentionHorizon returns the oldest slot still inside the retention window
// at the given instant
func (t SlotTimer) RetentionHorizon(now time.Time, retentionSlots uint64) uint64 {
	current := t.SlotAt(now)
	if current < retentionSlots {
		return 0
	}
	return current - retentionSlots
}
