package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// WorkProof represents the work_proofs table - one accepted proof per
// (slot, node_id, proof_type). Resubmission for the same key replaces the
// row; proofs are never summed across submissions.
type WorkProof struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slot is the slot the work was performed in
	Slot uint64 `gorm:"column:slot;not null;type:bigint;uniqueIndex:idx_work_proofs_slot_node_type,priority:1;index:idx_work_proofs_slot"`
	// NodeID identifies the submitting node
	NodeID string `gorm:"column:node_id;not null;type:text;uniqueIndex:idx_work_proofs_slot_node_type,priority:2;index:idx_work_proofs_node_slot,priority:1"`
	// ProofType identifies the kind of operational work attested
	ProofType domain.ProofType `gorm:"column:proof_type;not null;type:text;uniqueIndex:idx_work_proofs_slot_node_type,priority:3"`
	// PoolID is the pool the node's credit accrues to (nil for solo nodes)
	PoolID *string `gorm:"column:pool_id;type:text"`
	// Value contains the type-specific work evidence as JSON
	Value datatypes.JSON `gorm:"column:value;not null;type:jsonb"`
	// Signature is the hex-encoded ed25519 signature over the canonical proof body
	Signature string `gorm:"column:signature;not null;type:text"`
	// SubmittedAt is the submitter-reported timestamp of the proof
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last replacement of this key
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WorkProof model
func (WorkProof) TableName() string {
	return "work_proofs"
}
