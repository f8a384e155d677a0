package weights

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// Table is a versioned credit weight table mapping proof types to integer
// weights per metric unit. Versioning makes historical epochs recomputable
// byte-identically: a tally is only valid against the table version it was
// computed with.
type Table struct {
	Version string                      `json:"version"`
	Weights map[domain.ProofType]uint64 `json:"weights"`
}

// Load reads a weight table from a JSON file and checks it is complete:
// every recognized proof type must carry a weight. Types beyond the
// recognized set are allowed so table evolution cannot break old deployments.
func Load(filePath string) (*Table, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read weight table: %w", err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse weight table JSON: %w", err)
	}

	if table.Version == "" {
		return nil, fmt.Errorf("weight table has no version")
	}

	for _, t := range domain.KnownProofTypes {
		if _, ok := table.Weights[t]; !ok {
			return nil, fmt.Errorf("weight table %s missing weight for %s", table.Version, t)
		}
	}

	return &table, nil
}

// Default returns the genesis weight table used when no external table is
// configured. Bandwidth is weighted per byte, storage per byte stored,
// validation per session, uptime per attested second.
func Default() *Table {
	return &Table{
		Version: "genesis",
		Weights: map[domain.ProofType]uint64{
			domain.ProofTypeRelayBandwidth:      1,
			domain.ProofTypeStorageAvailability: 2,
			domain.ProofTypeValidationSignature: 500,
			domain.ProofTypeUptimeBeacon:        10,
		},
	}
}

// Weight returns the credit weight for a proof type. The second return is
// false for types the table does not cover.
func (t *Table) Weight(proofType domain.ProofType) (uint64, bool) {
	w, ok := t.Weights[proofType]
	return w, ok
}

// Credit computes the credit contribution of a single proof: the type's
// metric multiplied by its table weight, in integer arithmetic. The second
// return is false when the table does not cover the proof's type; callers
// skip such proofs rather than failing the tally.
func (t *Table) Credit(proof *domain.WorkProof) (uint64, bool) {
	weight, ok := t.Weights[proof.Type]
	if !ok {
		return 0, false
	}

	metric, ok := proof.Value.Metric(proof.Type)
	if !ok {
		return 0, false
	}

	return weight * metric, true
}
