package domain

// Epoch is a fixed, contiguous range of slots over which work proofs are
// aggregated into one ranking. Epoch boundaries are a pure function of the
// slot number and the configured epoch length, so every component derives
// them identically without shared state.
type Epoch uint64

// EpochForSlot returns the epoch containing the given slot
func EpochForSlot(slot uint64, slotsPerEpoch uint64) Epoch {
	return Epoch(slot / slotsPerEpoch)
}

// FirstSlot returns the first slot of the epoch
func (e Epoch) FirstSlot(slotsPerEpoch uint64) uint64 {
	return uint64(e) * slotsPerEpoch
}

// LastSlot returns the last slot of the epoch, inclusive
func (e Epoch) LastSlot(slotsPerEpoch uint64) uint64 {
	return (uint64(e)+1)*slotsPerEpoch - 1
}

// Contains reports whether the slot falls inside the epoch
func (e Epoch) Contains(slot uint64, slotsPerEpoch uint64) bool {
	return EpochForSlot(slot, slotsPerEpoch) == e
}
