package domain

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
)

// ProofType identifies the kind of operational work a proof attests to
type ProofType string

const (
	// ProofTypeRelayBandwidth attests to data relayed between nodes
	ProofTypeRelayBandwidth ProofType = "relay_bandwidth"
	// ProofTypeStorageAvailability attests to chunks stored and available
	ProofTypeStorageAvailability ProofType = "storage_availability"
	// ProofTypeValidationSignature attests to session validation signatures
	ProofTypeValidationSignature ProofType = "validation_signature"
	// ProofTypeUptimeBeacon attests to node uptime and availability
	ProofTypeUptimeBeacon ProofType = "uptime_beacon"
)

// KnownProofTypes lists every proof type the engine accepts, in a fixed order
var KnownProofTypes = []ProofType{
	ProofTypeRelayBandwidth,
	ProofTypeStorageAvailability,
	ProofTypeValidationSignature,
	ProofTypeUptimeBeacon,
}

// Valid checks if the proof type is one of the recognized kinds
func (t ProofType) Valid() bool {
	switch t {
	case ProofTypeRelayBandwidth, ProofTypeStorageAvailability,
		ProofTypeValidationSignature, ProofTypeUptimeBeacon:
		return true
	}
	return false
}

// ProofValue carries the type-specific work evidence. Exactly the fields
// required by the proof's type must be set; the rest stay nil.
type ProofValue struct {
	// BytesTransferred is the data relayed, for relay_bandwidth proofs
	BytesTransferred *uint64 `json:"bytes_transferred,omitempty"`
	// ChunksStored is the number of chunks held, for storage_availability proofs
	ChunksStored *uint64 `json:"chunks_stored,omitempty"`
	// SizeBytes is the total bytes stored, for storage_availability proofs
	SizeBytes *uint64 `json:"size_bytes,omitempty"`
	// ValidatedSessions is the session validation count, for validation_signature proofs
	ValidatedSessions *uint64 `json:"validated_sessions,omitempty"`
	// UptimeSeconds is the attested uptime, for uptime_beacon proofs
	UptimeSeconds *uint64 `json:"uptime_seconds,omitempty"`
}

// Metric returns the credit-bearing quantity for the given proof type.
// Returns false when the payload does not carry the field the type requires.
func (v *ProofValue) Metric(t ProofType) (uint64, bool) {
	switch t {
	case ProofTypeRelayBandwidth:
		if v.BytesTransferred == nil {
			return 0, false
		}
		return *v.BytesTransferred, true
	case ProofTypeStorageAvailability:
		if v.SizeBytes == nil || v.ChunksStored == nil {
			return 0, false
		}
		return *v.SizeBytes, true
	case ProofTypeValidationSignature:
		if v.ValidatedSessions == nil {
			return 0, false
		}
		return *v.ValidatedSessions, true
	case ProofTypeUptimeBeacon:
		if v.UptimeSeconds == nil {
			return 0, false
		}
		return *v.UptimeSeconds, true
	}
	return 0, false
}

// WorkProof is a signed attestation of operational work performed by a node
// during a slot. At most one proof exists per (slot, nodeId, proofType);
// resubmission replaces the prior value.
type WorkProof struct {
	NodeID      string     `json:"node_id"`
	PoolID      *string    `json:"pool_id,omitempty"`
	Slot        uint64     `json:"slot"`
	Type        ProofType  `json:"type"`
	Value       ProofValue `json:"value"`
	Signature   string     `json:"signature"` // hex-encoded ed25519 signature over SigningPayload
	SubmittedAt time.Time  `json:"submitted_at"`
}

// EntityID returns the ranked unit this proof's credit accrues to:
// the pool when the node participates in one, the node itself otherwise.
func (p *WorkProof) EntityID() string {
	if p.PoolID != nil && *p.PoolID != "" {
		return *p.PoolID
	}
	return p.NodeID
}

// signedBody is the canonical signing subject of a proof. SubmittedAt and
// Signature are excluded so the wire timestamp cannot invalidate a signature.
type signedBody struct {
	NodeID string     `json:"node_id"`
	PoolID *string    `json:"pool_id,omitempty"`
	Slot   uint64     `json:"slot"`
	Type   ProofType  `json:"type"`
	Value  ProofValue `json:"value"`
}

// SigningPayload returns the RFC 8785 canonical JSON form of the proof body.
// Canonicalization makes the signed bytes independent of field ordering and
// whitespace, so any implementation produces identical payloads.
func (p *WorkProof) SigningPayload() ([]byte, error) {
	raw, err := json.Marshal(signedBody{
		NodeID: p.NodeID,
		PoolID: p.PoolID,
		Slot:   p.Slot,
		Type:   p.Type,
		Value:  p.Value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proof body: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize proof body: %w", err)
	}

	return canonical, nil
}

// Validate checks structural validity: node identity, recognized type, and
// the payload contract for that type
func (p *WorkProof) Validate() error {
	if p.NodeID == "" {
		return fmt.Errorf("%w: empty node_id", ErrInvalidProof)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownProofType, p.Type)
	}
	if _, ok := p.Value.Metric(p.Type); !ok {
		return fmt.Errorf("%w: missing value fields for %s", ErrInvalidProof, p.Type)
	}
	if p.Signature == "" {
		return fmt.Errorf("%w: empty signature", ErrInvalidProof)
	}
	return nil
}

// VerifySignature checks the proof's ed25519 signature against the given
// public key. Returns ErrInvalidSignature on any mismatch.
func (p *WorkProof) VerifySignature(pub ed25519.PublicKey) error {
	sig, err := hex.DecodeString(p.Signature)
	if err != nil {
		return fmt.Errorf("%w: signature is not valid hex", ErrInvalidSignature)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: signature length %d", ErrInvalidSignature, len(sig))
	}

	payload, err := p.SigningPayload()
	if err != nil {
		return err
	}

	if !ed25519.Verify(pub, payload, sig) {
		return ErrInvalidSignature
	}

	return nil
}

// WorkTallyEntry is one entity's scored row in a closed epoch's ranking
type WorkTallyEntry struct {
	Epoch     Epoch   `json:"epoch"`
	EntityID  string  `json:"entity_id"`
	Credits   uint64  `json:"credits"`
	LiveScore float64 `json:"live_score"`
	Rank      uint32  `json:"rank"`
}

// LeaderScheduleEntry assigns a primary leader and ordered fallbacks to a slot.
// Result fields are nil until the slot resolves.
type LeaderScheduleEntry struct {
	Slot       uint64     `json:"slot"`
	Epoch      Epoch      `json:"epoch"`
	Primary    string     `json:"primary"`
	Fallbacks  []string   `json:"fallbacks"`
	Winner     *string    `json:"winner,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// Resolved reports whether the slot's outcome has been recorded
func (e *LeaderScheduleEntry) Resolved() bool {
	return e.ResolvedAt != nil
}

// Slot result reasons form a closed set consumed by settlement
const (
	// ReasonPrimarySucceeded marks the scheduled primary producing the block
	ReasonPrimarySucceeded = "primary-succeeded"
	// ReasonNoProducerTimeout marks a slot that expired with no producer
	ReasonNoProducerTimeout = "no-producer-timeout"
)

// FallbackReason returns the result reason for the 1-based fallback position
func FallbackReason(position int) string {
	return fmt.Sprintf("fallback-%d-succeeded", position)
}

// SlotResult is the recorded outcome of a resolved slot
type SlotResult struct {
	Slot   uint64  `json:"slot"`
	Winner *string `json:"winner,omitempty"` // nil when no producer appeared
	Reason string  `json:"reason"`
}

// Validate checks the result against the slot's schedule entry: the reason
// must belong to the closed set and the winner must be the scheduled primary
// or the fallback the reason names.
func (r *SlotResult) Validate(entry *LeaderScheduleEntry) error {
	switch r.Reason {
	case ReasonPrimarySucceeded:
		if r.Winner == nil || *r.Winner != entry.Primary {
			return fmt.Errorf("%w: reason %s requires winner %s", ErrInvalidWinner, r.Reason, entry.Primary)
		}
		return nil
	case ReasonNoProducerTimeout:
		if r.Winner != nil {
			return fmt.Errorf("%w: reason %s forbids a winner", ErrInvalidWinner, r.Reason)
		}
		return nil
	}

	for i, fb := range entry.Fallbacks {
		if r.Reason == FallbackReason(i+1) {
			if r.Winner == nil || *r.Winner != fb {
				return fmt.Errorf("%w: reason %s requires winner %s", ErrInvalidWinner, r.Reason, fb)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidResultReason, r.Reason)
}
