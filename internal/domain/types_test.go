package domain

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestProofType_Valid(t *testing.T) {
	for _, pt := range KnownProofTypes {
		assert.True(t, pt.Valid(), string(pt))
	}
	assert.False(t, ProofType("block_production").Valid())
	assert.False(t, ProofType("").Valid())
}

func TestProofValue_Metric(t *testing.T) {
	tests := []struct {
		name      string
		proofType ProofType
		value     ProofValue
		expected  uint64
		ok        bool
	}{
		{
			name:      "relay bandwidth",
			proofType: ProofTypeRelayBandwidth,
			value:     ProofValue{BytesTransferred: uint64Ptr(4096)},
			expected:  4096,
			ok:        true,
		},
		{
			name:      "storage availability uses size bytes",
			proofType: ProofTypeStorageAvailability,
			value:     ProofValue{ChunksStored: uint64Ptr(8), SizeBytes: uint64Ptr(1 << 20)},
			expected:  1 << 20,
			ok:        true,
		},
		{
			name:      "storage availability requires both fields",
			proofType: ProofTypeStorageAvailability,
			value:     ProofValue{SizeBytes: uint64Ptr(1 << 20)},
			ok:        false,
		},
		{
			name:      "validation signature",
			proofType: ProofTypeValidationSignature,
			value:     ProofValue{ValidatedSessions: uint64Ptr(3)},
			expected:  3,
			ok:        true,
		},
		{
			name:      "uptime beacon",
			proofType: ProofTypeUptimeBeacon,
			value:     ProofValue{UptimeSeconds: uint64Ptr(118)},
			expected:  118,
			ok:        true,
		},
		{
			name:      "missing required field",
			proofType: ProofTypeRelayBandwidth,
			value:     ProofValue{UptimeSeconds: uint64Ptr(118)},
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric, ok := tt.value.Metric(tt.proofType)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, metric)
			}
		})
	}
}

func TestWorkProof_EntityID(t *testing.T) {
	proof := WorkProof{NodeID: "node-1"}
	assert.Equal(t, "node-1", proof.EntityID())

	proof.PoolID = strPtr("pool-a")
	assert.Equal(t, "pool-a", proof.EntityID())

	proof.PoolID = strPtr("")
	assert.Equal(t, "node-1", proof.EntityID())
}

func TestWorkProof_SigningPayload(t *testing.T) {
	proof := WorkProof{
		NodeID: "node-1",
		Slot:   42,
		Type:   ProofTypeUptimeBeacon,
		Value:  ProofValue{UptimeSeconds: uint64Ptr(118)},
	}

	first, err := proof.SigningPayload()
	require.NoError(t, err)
	second, err := proof.SigningPayload()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The wire timestamp and signature are outside the signing subject
	proof.Signature = "deadbeef"
	third, err := proof.SigningPayload()
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestWorkProof_Validate(t *testing.T) {
	valid := func() WorkProof {
		return WorkProof{
			NodeID:    "node-1",
			Slot:      42,
			Type:      ProofTypeUptimeBeacon,
			Value:     ProofValue{UptimeSeconds: uint64Ptr(118)},
			Signature: "deadbeef",
		}
	}

	t.Run("valid proof", func(t *testing.T) {
		p := valid()
		assert.NoError(t, p.Validate())
	})

	t.Run("empty node id", func(t *testing.T) {
		p := valid()
		p.NodeID = ""
		assert.ErrorIs(t, p.Validate(), ErrInvalidProof)
	})

	t.Run("unknown type", func(t *testing.T) {
		p := valid()
		p.Type = "block_production"
		assert.ErrorIs(t, p.Validate(), ErrUnknownProofType)
	})

	t.Run("value missing required field", func(t *testing.T) {
		p := valid()
		p.Value = ProofValue{BytesTransferred: uint64Ptr(100)}
		assert.ErrorIs(t, p.Validate(), ErrInvalidProof)
	})

	t.Run("empty signature", func(t *testing.T) {
		p := valid()
		p.Signature = ""
		assert.ErrorIs(t, p.Validate(), ErrInvalidProof)
	})
}

func TestWorkProof_VerifySignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	sign := func(p *WorkProof) {
		payload, err := p.SigningPayload()
		require.NoError(t, err)
		p.Signature = hex.EncodeToString(ed25519.Sign(priv, payload))
	}

	proof := WorkProof{
		NodeID: "node-1",
		Slot:   42,
		Type:   ProofTypeUptimeBeacon,
		Value:  ProofValue{UptimeSeconds: uint64Ptr(118)},
	}
	sign(&proof)

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, proof.VerifySignature(pub))
	})

	t.Run("tampered payload", func(t *testing.T) {
		tampered := proof
		tampered.Value = ProofValue{UptimeSeconds: uint64Ptr(999)}
		assert.ErrorIs(t, tampered.VerifySignature(pub), ErrInvalidSignature)
	})

	t.Run("wrong key", func(t *testing.T) {
		otherPub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		assert.ErrorIs(t, proof.VerifySignature(otherPub), ErrInvalidSignature)
	})

	t.Run("non-hex signature", func(t *testing.T) {
		bad := proof
		bad.Signature = "not-hex"
		assert.ErrorIs(t, bad.VerifySignature(pub), ErrInvalidSignature)
	})

	t.Run("truncated signature", func(t *testing.T) {
		bad := proof
		bad.Signature = "deadbeef"
		assert.ErrorIs(t, bad.VerifySignature(pub), ErrInvalidSignature)
	})
}

func TestSlotResult_Validate(t *testing.T) {
	entry := &LeaderScheduleEntry{
		Slot:      10,
		Epoch:     1,
		Primary:   "ent-2",
		Fallbacks: []string{"ent-3", "ent-0"},
	}

	tests := []struct {
		name    string
		result  SlotResult
		wantErr error
	}{
		{
			name:   "primary succeeded",
			result: SlotResult{Slot: 10, Winner: strPtr("ent-2"), Reason: ReasonPrimarySucceeded},
		},
		{
			name:   "first fallback succeeded",
			result: SlotResult{Slot: 10, Winner: strPtr("ent-3"), Reason: FallbackReason(1)},
		},
		{
			name:   "second fallback succeeded",
			result: SlotResult{Slot: 10, Winner: strPtr("ent-0"), Reason: FallbackReason(2)},
		},
		{
			name:   "no producer timeout",
			result: SlotResult{Slot: 10, Reason: ReasonNoProducerTimeout},
		},
		{
			name:    "primary reason with wrong winner",
			result:  SlotResult{Slot: 10, Winner: strPtr("ent-0"), Reason: ReasonPrimarySucceeded},
			wantErr: ErrInvalidWinner,
		},
		{
			name:    "fallback reason with wrong winner",
			result:  SlotResult{Slot: 10, Winner: strPtr("ent-2"), Reason: FallbackReason(1)},
			wantErr: ErrInvalidWinner,
		},
		{
			name:    "timeout with winner",
			result:  SlotResult{Slot: 10, Winner: strPtr("ent-2"), Reason: ReasonNoProducerTimeout},
			wantErr: ErrInvalidWinner,
		},
		{
			name:    "fallback position beyond schedule depth",
			result:  SlotResult{Slot: 10, Winner: strPtr("ent-1"), Reason: FallbackReason(3)},
			wantErr: ErrInvalidResultReason,
		},
		{
			name:    "off-list reason",
			result:  SlotResult{Slot: 10, Reason: "vibes"},
			wantErr: ErrInvalidResultReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate(entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
