package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// ProofAuditRecord represents the proof_audit_log table - an append-only log
// of every accepted submission, including replacements, kept for dispute
// resolution. Rows are never updated or deleted inside the retention window.
type ProofAuditRecord struct {
	// ID is a generated UUID for the audit entry
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Slot is the proof's slot
	Slot uint64 `gorm:"column:slot;not null;type:bigint;index:idx_proof_audit_slot"`
	// NodeID identifies the submitting node
	NodeID string `gorm:"column:node_id;not null;type:text;index:idx_proof_audit_node"`
	// ProofType identifies the kind of operational work attested
	ProofType domain.ProofType `gorm:"column:proof_type;not null;type:text"`
	// Raw is the accepted submission exactly as received
	Raw datatypes.JSON `gorm:"column:raw;not null;type:jsonb"`
	// ReceivedAt is the server timestamp of acceptance
	ReceivedAt time.Time `gorm:"column:received_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProofAuditRecord model
func (ProofAuditRecord) TableName() string {
	return "proof_audit_log"
}
