package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func uint64Ptr(v uint64) *uint64 { return &v }

func strPtr(s string) *string { return &s }

// buildTestProof creates a relay bandwidth proof for the given slot and node
func buildTestProof(slot uint64, nodeID string, bytesTransferred uint64) *domain.WorkProof {
	return &domain.WorkProof{
		NodeID: nodeID,
		Slot:   slot,
		Type:   domain.ProofTypeRelayBandwidth,
		Value: domain.ProofValue{
			BytesTransferred: uint64Ptr(bytesTransferred),
		},
		Signature:   fmt.Sprintf("sig-%s-%d", nodeID, slot),
		SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// buildTestTallyEntry creates a tally row for the given epoch, entity and rank
func buildTestTallyEntry(epoch domain.Epoch, entityID string, credits uint64, rank uint32) *domain.WorkTallyEntry {
	return &domain.WorkTallyEntry{
		Epoch:     epoch,
		EntityID:  entityID,
		Credits:   credits,
		LiveScore: 0.5,
		Rank:      rank,
	}
}

// buildTestSchedule creates schedule entries for consecutive slots of an epoch
func buildTestSchedule(epoch domain.Epoch, firstSlot uint64, count int, ranked []string) []*domain.LeaderScheduleEntry {
	entries := make([]*domain.LeaderScheduleEntry, 0, count)
	for i := 0; i < count; i++ {
		slot := firstSlot + uint64(i)
		primary := ranked[int(slot)%len(ranked)]
		fallback := ranked[(int(slot)+1)%len(ranked)]
		entries = append(entries, &domain.LeaderScheduleEntry{
			Slot:      slot,
			Epoch:     epoch,
			Primary:   primary,
			Fallbacks: []string{fallback},
		})
	}
	return entries
}

// =============================================================================
// Test: UpsertProof
// =============================================================================

func testUpsertProof(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("stores a new proof", func(t *testing.T) {
		proof := buildTestProof(100, "node-a", 4096)
		require.NoError(t, store.UpsertProof(ctx, proof))

		got, err := store.GetProofsBySlot(ctx, 100)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "node-a", got[0].NodeID)
		assert.Equal(t, domain.ProofTypeRelayBandwidth, got[0].Type)
		require.NotNil(t, got[0].Value.BytesTransferred)
		assert.Equal(t, uint64(4096), *got[0].Value.BytesTransferred)
	})

	t.Run("resubmission replaces the prior value", func(t *testing.T) {
		first := buildTestProof(200, "node-b", 1000)
		require.NoError(t, store.UpsertProof(ctx, first))

		second := buildTestProof(200, "node-b", 9999)
		second.Signature = "sig-replacement"
		require.NoError(t, store.UpsertProof(ctx, second))

		got, err := store.GetProofsBySlot(ctx, 200)
		require.NoError(t, err)
		require.Len(t, got, 1, "replacement must not create a second row")
		assert.Equal(t, uint64(9999), *got[0].Value.BytesTransferred)
		assert.Equal(t, "sig-replacement", got[0].Signature)
	})

	t.Run("distinct proof types for the same slot and node coexist", func(t *testing.T) {
		relay := buildTestProof(300, "node-c", 512)
		require.NoError(t, store.UpsertProof(ctx, relay))

		uptime := &domain.WorkProof{
			NodeID:      "node-c",
			Slot:        300,
			Type:        domain.ProofTypeUptimeBeacon,
			Value:       domain.ProofValue{UptimeSeconds: uint64Ptr(120)},
			Signature:   "sig-uptime",
			SubmittedAt: time.Now().UTC(),
		}
		require.NoError(t, store.UpsertProof(ctx, uptime))

		got, err := store.GetProofsBySlot(ctx, 300)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("pool membership round-trips", func(t *testing.T) {
		proof := buildTestProof(400, "node-d", 2048)
		proof.PoolID = strPtr("pool-1")
		require.NoError(t, store.UpsertProof(ctx, proof))

		got, err := store.GetProofsBySlot(ctx, 400)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].PoolID)
		assert.Equal(t, "pool-1", *got[0].PoolID)
		assert.Equal(t, "pool-1", got[0].EntityID())
	})
}

// =============================================================================
// Test: Proof Queries
// =============================================================================

func testProofQueries(t *testing.T, store Store) {
	ctx := context.Background()

	// node-a covers slots 10..13, node-b only slot 11
	for slot := uint64(10); slot <= 13; slot++ {
		require.NoError(t, store.UpsertProof(ctx, buildTestProof(slot, "node-a", slot*100)))
	}
	require.NoError(t, store.UpsertProof(ctx, buildTestProof(11, "node-b", 7)))

	t.Run("by node over a slot range", func(t *testing.T) {
		got, err := store.GetProofsByNode(ctx, "node-a", 11, 12)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, uint64(11), got[0].Slot)
		assert.Equal(t, uint64(12), got[1].Slot)
	})

	t.Run("by node outside the range is empty", func(t *testing.T) {
		got, err := store.GetProofsByNode(ctx, "node-a", 50, 60)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("by slot range returns all nodes", func(t *testing.T) {
		got, err := store.GetProofsBySlotRange(ctx, 10, 11)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("by slot with no proofs is empty", func(t *testing.T) {
		got, err := store.GetProofsBySlot(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// =============================================================================
// Test: ReplaceEpochTally
// =============================================================================

func testReplaceEpochTally(t *testing.T, store Store) {
	ctx := context.Background()
	epoch := domain.Epoch(5)

	t.Run("writes and reads a full ranking", func(t *testing.T) {
		entries := []*domain.WorkTallyEntry{
			buildTestTallyEntry(epoch, "node-a", 300, 1),
			buildTestTallyEntry(epoch, "node-b", 200, 2),
			buildTestTallyEntry(epoch, "node-c", 100, 3),
		}
		require.NoError(t, store.ReplaceEpochTally(ctx, epoch, entries))

		got, err := store.GetEpochTally(ctx, epoch)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "node-a", got[0].EntityID)
		assert.Equal(t, uint32(1), got[0].Rank)
		assert.Equal(t, "node-c", got[2].EntityID)
	})

	t.Run("recompute replaces rather than merges", func(t *testing.T) {
		entries := []*domain.WorkTallyEntry{
			buildTestTallyEntry(epoch, "node-b", 500, 1),
			buildTestTallyEntry(epoch, "node-a", 400, 2),
		}
		require.NoError(t, store.ReplaceEpochTally(ctx, epoch, entries))

		got, err := store.GetEpochTally(ctx, epoch)
		require.NoError(t, err)
		require.Len(t, got, 2, "node-c from the first run must be gone")
		assert.Equal(t, "node-b", got[0].EntityID)
	})

	t.Run("refused once the epoch is scheduled", func(t *testing.T) {
		schedule := buildTestSchedule(epoch, 3600, 2, []string{"node-a", "node-b"})
		require.NoError(t, store.CreateEpochSchedule(ctx, epoch, schedule))

		err := store.ReplaceEpochTally(ctx, epoch, []*domain.WorkTallyEntry{
			buildTestTallyEntry(epoch, "node-z", 1, 1),
		})
		require.ErrorIs(t, err, domain.ErrTallyFinalized)

		// Original tally untouched
		got, err := store.GetEpochTally(ctx, epoch)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "node-b", got[0].EntityID)
	})

	t.Run("unknown epoch reads empty", func(t *testing.T) {
		got, err := store.GetEpochTally(ctx, domain.Epoch(999))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// =============================================================================
// Test: CreateEpochSchedule
// =============================================================================

func testCreateEpochSchedule(t *testing.T, store Store) {
	ctx := context.Background()
	epoch := domain.Epoch(7)
	ranked := []string{"node-a", "node-b", "node-c"}

	t.Run("writes and reads an epoch schedule", func(t *testing.T) {
		entries := buildTestSchedule(epoch, 5040, 4, ranked)
		require.NoError(t, store.CreateEpochSchedule(ctx, epoch, entries))

		got, err := store.GetEpochSchedule(ctx, epoch)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, uint64(5040), got[0].Slot)
		assert.Equal(t, entries[0].Primary, got[0].Primary)
		assert.Equal(t, entries[0].Fallbacks, got[0].Fallbacks)
		assert.Nil(t, got[0].Winner)
		assert.False(t, got[0].Resolved())

		scheduled, err := store.IsEpochScheduled(ctx, epoch)
		require.NoError(t, err)
		assert.True(t, scheduled)
	})

	t.Run("second schedule for the same epoch is rejected", func(t *testing.T) {
		err := store.CreateEpochSchedule(ctx, epoch, buildTestSchedule(epoch, 5050, 2, ranked))
		require.ErrorIs(t, err, domain.ErrScheduleConflict)

		got, err := store.GetEpochSchedule(ctx, epoch)
		require.NoError(t, err)
		assert.Len(t, got, 4, "rejected attempt must leave the schedule untouched")
	})

	t.Run("single slot lookup", func(t *testing.T) {
		got, err := store.GetScheduleEntry(ctx, 5041)
		require.NoError(t, err)
		assert.Equal(t, epoch, got.Epoch)
	})

	t.Run("unscheduled slot lookup fails", func(t *testing.T) {
		_, err := store.GetScheduleEntry(ctx, 123456)
		require.ErrorIs(t, err, domain.ErrScheduleNotFound)
	})

	t.Run("unscheduled epoch reports false", func(t *testing.T) {
		scheduled, err := store.IsEpochScheduled(ctx, domain.Epoch(999))
		require.NoError(t, err)
		assert.False(t, scheduled)
	})
}

// =============================================================================
// Test: RecordSlotResult
// =============================================================================

func testRecordSlotResult(t *testing.T, store Store) {
	ctx := context.Background()
	epoch := domain.Epoch(9)
	ranked := []string{"node-a", "node-b"}

	require.NoError(t, store.CreateEpochSchedule(ctx, epoch, buildTestSchedule(epoch, 6480, 3, ranked)))

	t.Run("records a winner exactly once", func(t *testing.T) {
		entry, err := store.GetScheduleEntry(ctx, 6480)
		require.NoError(t, err)

		result := &domain.SlotResult{
			Slot:   6480,
			Winner: strPtr(entry.Primary),
			Reason: domain.ReasonPrimarySucceeded,
		}
		require.NoError(t, store.RecordSlotResult(ctx, result))

		got, err := store.GetScheduleEntry(ctx, 6480)
		require.NoError(t, err)
		require.NotNil(t, got.Winner)
		assert.Equal(t, entry.Primary, *got.Winner)
		require.NotNil(t, got.Reason)
		assert.Equal(t, domain.ReasonPrimarySucceeded, *got.Reason)
		assert.True(t, got.Resolved())

		err = store.RecordSlotResult(ctx, result)
		require.ErrorIs(t, err, domain.ErrResultAlreadyRecorded)
	})

	t.Run("records a no-producer timeout without a winner", func(t *testing.T) {
		result := &domain.SlotResult{
			Slot:   6481,
			Reason: domain.ReasonNoProducerTimeout,
		}
		require.NoError(t, store.RecordSlotResult(ctx, result))

		got, err := store.GetScheduleEntry(ctx, 6481)
		require.NoError(t, err)
		assert.Nil(t, got.Winner)
		require.NotNil(t, got.Reason)
		assert.Equal(t, domain.ReasonNoProducerTimeout, *got.Reason)
		assert.True(t, got.Resolved())
	})

	t.Run("unscheduled slot is rejected", func(t *testing.T) {
		err := store.RecordSlotResult(ctx, &domain.SlotResult{
			Slot:   777777,
			Reason: domain.ReasonNoProducerTimeout,
		})
		require.ErrorIs(t, err, domain.ErrScheduleNotFound)
	})
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs the full store test suite against any Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertProof", testUpsertProof},
		{"ProofQueries", testProofQueries},
		{"ReplaceEpochTally", testReplaceEpochTally},
		{"CreateEpochSchedule", testCreateEpochSchedule},
		{"RecordSlotResult", testRecordSlotResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
