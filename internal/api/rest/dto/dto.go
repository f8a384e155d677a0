package dto

import (
	"time"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// SubmitProofRequest is the wire shape of a proof submission
type SubmitProofRequest struct {
	NodeID    string            `json:"node_id" binding:"required"`
	PoolID    *string           `json:"pool_id"`
	Slot      uint64            `json:"slot"`
	Type      string            `json:"type" binding:"required"`
	Value     domain.ProofValue `json:"value"`
	Signature string            `json:"signature" binding:"required"`
}

// ToDomain converts the request to a domain proof
func (r *SubmitProofRequest) ToDomain() *domain.WorkProof {
	return &domain.WorkProof{
		NodeID:    r.NodeID,
		PoolID:    r.PoolID,
		Slot:      r.Slot,
		Type:      domain.ProofType(r.Type),
		Value:     r.Value,
		Signature: r.Signature,
	}
}

// Proof is the wire shape of an accepted proof
type Proof struct {
	NodeID      string            `json:"node_id"`
	PoolID      *string           `json:"pool_id,omitempty"`
	EntityID    string            `json:"entity_id"`
	Slot        uint64            `json:"slot"`
	Type        domain.ProofType  `json:"type"`
	Value       domain.ProofValue `json:"value"`
	Signature   string            `json:"signature"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// FromProof converts a domain proof to its wire shape
func FromProof(p *domain.WorkProof) Proof {
	return Proof{
		NodeID:      p.NodeID,
		PoolID:      p.PoolID,
		EntityID:    p.EntityID(),
		Slot:        p.Slot,
		Type:        p.Type,
		Value:       p.Value,
		Signature:   p.Signature,
		SubmittedAt: p.SubmittedAt,
	}
}

// FromProofs converts a slice of domain proofs
func FromProofs(proofs []*domain.WorkProof) []Proof {
	out := make([]Proof, 0, len(proofs))
	for _, p := range proofs {
		out = append(out, FromProof(p))
	}
	return out
}

// ProofsResponse wraps a proof listing
type ProofsResponse struct {
	Proofs []Proof `json:"proofs"`
}

// TallyEntry is the wire shape of one ranked tally row
type TallyEntry struct {
	EntityID  string  `json:"entity_id"`
	Credits   uint64  `json:"credits"`
	LiveScore float64 `json:"live_score"`
	Rank      uint32  `json:"rank"`
}

// TallyResponse wraps an epoch's ranking
type TallyResponse struct {
	Epoch   uint64       `json:"epoch"`
	Entries []TallyEntry `json:"entries"`
}

// FromTally converts domain tally entries to their wire shape
func FromTally(epoch domain.Epoch, entries []*domain.WorkTallyEntry) TallyResponse {
	out := TallyResponse{
		Epoch:   uint64(epoch),
		Entries: make([]TallyEntry, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, TallyEntry{
			EntityID:  e.EntityID,
			Credits:   e.Credits,
			LiveScore: e.LiveScore,
			Rank:      e.Rank,
		})
	}
	return out
}

// ScheduleEntry is the wire shape of one slot's schedule entry
type ScheduleEntry struct {
	Slot       uint64     `json:"slot"`
	Epoch      uint64     `json:"epoch"`
	Primary    string     `json:"primary"`
	Fallbacks  []string   `json:"fallbacks"`
	Winner     *string    `json:"winner,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// FromScheduleEntry converts a domain schedule entry to its wire shape
func FromScheduleEntry(e *domain.LeaderScheduleEntry) ScheduleEntry {
	return ScheduleEntry{
		Slot:       e.Slot,
		Epoch:      uint64(e.Epoch),
		Primary:    e.Primary,
		Fallbacks:  e.Fallbacks,
		Winner:     e.Winner,
		Reason:     e.Reason,
		ResolvedAt: e.ResolvedAt,
	}
}

// ScheduleResponse wraps an epoch's full schedule
type ScheduleResponse struct {
	Epoch   uint64          `json:"epoch"`
	Entries []ScheduleEntry `json:"entries"`
}

// FromSchedule converts domain schedule entries to their wire shape
func FromSchedule(epoch domain.Epoch, entries []*domain.LeaderScheduleEntry) ScheduleResponse {
	out := ScheduleResponse{
		Epoch:   uint64(epoch),
		Entries: make([]ScheduleEntry, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, FromScheduleEntry(e))
	}
	return out
}

// RecordResultRequest is the wire shape of a slot result submission
type RecordResultRequest struct {
	Winner *string `json:"winner"`
	Reason string  `json:"reason" binding:"required"`
}

// AcceptedResponse acknowledges a successful write
type AcceptedResponse struct {
	Status string `json:"status"`
}
