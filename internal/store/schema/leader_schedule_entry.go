package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LeaderScheduleEntry represents the leader_schedule_entries table - one row
// per slot, written once per epoch when the scheduler runs. The result
// columns (winner, reason, resolved_at) are the only mutable fields and are
// written exactly once when the slot resolves.
type LeaderScheduleEntry struct {
	// Slot is the scheduled slot and the primary key
	Slot uint64 `gorm:"column:slot;primaryKey;type:bigint"`
	// Epoch is the epoch containing the slot
	Epoch uint64 `gorm:"column:epoch;not null;type:bigint;index:idx_leader_schedule_epoch"`
	// PrimaryEntity is the entity expected to produce the slot's block
	PrimaryEntity string `gorm:"column:primary_entity;not null;type:text"`
	// Fallbacks is the ordered list of backup entities as a JSON array
	Fallbacks datatypes.JSON `gorm:"column:fallbacks;not null;type:jsonb"`
	// Winner is the entity that actually produced the block (nil before
	// resolution and for no-producer slots)
	Winner *string `gorm:"column:winner;type:text"`
	// Reason records why the winner won (closed set)
	Reason *string `gorm:"column:reason;type:text"`
	// ResolvedAt marks the slot's result as recorded; write-once guard
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is the timestamp the schedule batch was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LeaderScheduleEntry model
func (LeaderScheduleEntry) TableName() string {
	return "leader_schedule_entries"
}
