package scheduler_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/mocks"
	"github.com/lucid-net/poot-engine/internal/scheduler"
)

const slotsPerEpoch = 16

func newScheduler(t *testing.T, fallbackDepth int) (*scheduler.Scheduler, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockStore(ctrl)
	s := scheduler.NewScheduler(scheduler.Config{
		SlotsPerEpoch: slotsPerEpoch,
		FallbackDepth: fallbackDepth,
	}, mockStore)
	return s, mockStore
}

func tallyFor(epoch domain.Epoch, entities ...string) []*domain.WorkTallyEntry {
	entries := make([]*domain.WorkTallyEntry, 0, len(entities))
	for i, id := range entities {
		entries = append(entries, &domain.WorkTallyEntry{
			Epoch:    epoch,
			EntityID: id,
			Credits:  uint64(1000 - i),
			Rank:     uint32(i + 1),
		})
	}
	return entries
}

func TestScheduleEpoch(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates leadership by slot mod ranking size", func(t *testing.T) {
		s, mockStore := newScheduler(t, 2)
		epoch := domain.Epoch(0) // slots 0..15
		ranked := []string{"ent-0", "ent-1", "ent-2", "ent-3"}

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(tallyFor(epoch, ranked...), nil)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(nil)

		entries, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)
		require.Len(t, entries, slotsPerEpoch)

		// N=4, k=2: slot 10 gets ranked[2] with the next two wrapping around
		slot10 := entries[10]
		assert.Equal(t, uint64(10), slot10.Slot)
		assert.Equal(t, "ent-2", slot10.Primary)
		assert.Equal(t, []string{"ent-3", "ent-0"}, slot10.Fallbacks)

		// Wrap-around at the end of the ranking
		slot3 := entries[3]
		assert.Equal(t, "ent-3", slot3.Primary)
		assert.Equal(t, []string{"ent-0", "ent-1"}, slot3.Fallbacks)
	})

	t.Run("primary and fallbacks stay within the ranked set", func(t *testing.T) {
		s, mockStore := newScheduler(t, 3)
		epoch := domain.Epoch(2) // slots 32..47
		ranked := []string{"ent-a", "ent-b", "ent-c", "ent-d", "ent-e"}
		rankedSet := make(map[string]bool, len(ranked))
		for _, id := range ranked {
			rankedSet[id] = true
		}

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(tallyFor(epoch, ranked...), nil)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(nil)

		entries, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)

		for _, entry := range entries {
			assert.True(t, rankedSet[entry.Primary])
			seen := map[string]bool{entry.Primary: true}
			for _, fb := range entry.Fallbacks {
				assert.True(t, rankedSet[fb])
				assert.False(t, seen[fb], "fallbacks must be distinct and exclude the primary")
				seen[fb] = true
			}
		}
	})

	t.Run("fallback depth is capped by ranking size", func(t *testing.T) {
		s, mockStore := newScheduler(t, 5)
		epoch := domain.Epoch(1)
		ranked := []string{"ent-a", "ent-b"}

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(tallyFor(epoch, ranked...), nil)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(nil)

		entries, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.Len(t, entry.Fallbacks, 1)
			assert.NotEqual(t, entry.Primary, entry.Fallbacks[0])
		}
	})

	t.Run("single entity schedules with no fallbacks", func(t *testing.T) {
		s, mockStore := newScheduler(t, 2)
		epoch := domain.Epoch(1)

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(tallyFor(epoch, "ent-only"), nil)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(nil)

		entries, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.Equal(t, "ent-only", entry.Primary)
			assert.Empty(t, entry.Fallbacks)
		}
	})

	t.Run("empty ranking is a fatal precondition", func(t *testing.T) {
		s, mockStore := newScheduler(t, 2)
		epoch := domain.Epoch(4)

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(nil, nil)

		_, err := s.ScheduleEpoch(ctx, epoch)
		assert.ErrorIs(t, err, domain.ErrEmptyRanking)
	})

	t.Run("already scheduled epoch surfaces the conflict", func(t *testing.T) {
		s, mockStore := newScheduler(t, 2)
		epoch := domain.Epoch(4)

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(tallyFor(epoch, "ent-a"), nil)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(domain.ErrScheduleConflict)

		_, err := s.ScheduleEpoch(ctx, epoch)
		assert.ErrorIs(t, err, domain.ErrScheduleConflict)
	})

	t.Run("identical tallies derive identical schedules", func(t *testing.T) {
		s, mockStore := newScheduler(t, 2)
		epoch := domain.Epoch(3)
		ranked := tallyFor(epoch, "ent-a", "ent-b", "ent-c")

		mockStore.EXPECT().GetEpochTally(ctx, epoch).Return(ranked, nil).Times(2)
		mockStore.EXPECT().CreateEpochSchedule(ctx, epoch, gomock.Any()).Return(nil).Times(2)

		first, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)
		second, err := s.ScheduleEpoch(ctx, epoch)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
