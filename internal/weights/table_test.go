package weights_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/weights"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func writeTable(t *testing.T, table map[string]interface{}) string {
	t.Helper()

	raw, err := json.Marshal(table)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, raw, 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads a complete table", func(t *testing.T) {
		table, err := weights.Load(writeTable(t, map[string]interface{}{
			"version": "v2",
			"weights": map[string]uint64{
				"relay_bandwidth":      3,
				"storage_availability": 4,
				"validation_signature": 100,
				"uptime_beacon":        7,
				"future_proof_kind":    1,
			},
		}))
		require.NoError(t, err)
		assert.Equal(t, "v2", table.Version)

		w, ok := table.Weight(domain.ProofTypeRelayBandwidth)
		require.True(t, ok)
		assert.Equal(t, uint64(3), w)
	})

	t.Run("rejects a table missing a recognized type", func(t *testing.T) {
		_, err := weights.Load(writeTable(t, map[string]interface{}{
			"version": "v2",
			"weights": map[string]uint64{
				"relay_bandwidth": 3,
			},
		}))
		assert.ErrorContains(t, err, "missing weight for")
	})

	t.Run("rejects an unversioned table", func(t *testing.T) {
		_, err := weights.Load(writeTable(t, map[string]interface{}{
			"weights": map[string]uint64{
				"relay_bandwidth":      3,
				"storage_availability": 4,
				"validation_signature": 100,
				"uptime_beacon":        7,
			},
		}))
		assert.ErrorContains(t, err, "no version")
	})
}

func TestCredit(t *testing.T) {
	table := weights.Default()

	t.Run("multiplies metric by type weight", func(t *testing.T) {
		proof := &domain.WorkProof{
			NodeID: "node-a",
			Slot:   10,
			Type:   domain.ProofTypeValidationSignature,
			Value:  domain.ProofValue{ValidatedSessions: uint64Ptr(3)},
		}

		credit, ok := table.Credit(proof)
		require.True(t, ok)
		assert.Equal(t, uint64(1500), credit)
	})

	t.Run("uncovered proof type is skipped, not an error", func(t *testing.T) {
		proof := &domain.WorkProof{
			NodeID: "node-a",
			Slot:   10,
			Type:   domain.ProofType("exotic_future_proof"),
		}

		_, ok := table.Credit(proof)
		assert.False(t, ok)
	})

	t.Run("payload missing the metric field is skipped", func(t *testing.T) {
		proof := &domain.WorkProof{
			NodeID: "node-a",
			Slot:   10,
			Type:   domain.ProofTypeRelayBandwidth,
			Value:  domain.ProofValue{},
		}

		_, ok := table.Credit(proof)
		assert.False(t, ok)
	})
}
