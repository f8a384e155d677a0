package schema

import "time"

// WorkTallyEntry represents the work_tally_entries table - one scored row
// per (epoch, entity). All rows for an epoch are written in a single
// transaction so readers never observe a partial ranking.
type WorkTallyEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Epoch is the closed epoch the tally covers
	Epoch uint64 `gorm:"column:epoch;not null;type:bigint;uniqueIndex:idx_work_tally_epoch_entity,priority:1;index:idx_work_tally_epoch_rank,priority:1"`
	// EntityID is the ranked unit (node or pool)
	EntityID string `gorm:"column:entity_id;not null;type:text;uniqueIndex:idx_work_tally_epoch_entity,priority:2"`
	// Credits is the weighted work credit sum for the epoch
	Credits uint64 `gorm:"column:credits;not null;type:bigint"`
	// LiveScore is the epoch-length-normalized liveness score in [0,1]
	LiveScore float64 `gorm:"column:live_score;not null;type:double precision"`
	// Rank is the 1-based position in the epoch's strict total order
	Rank uint32 `gorm:"column:rank;not null;type:int;index:idx_work_tally_epoch_rank,priority:2"`
	// CreatedAt is the timestamp the tally batch was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WorkTallyEntry model
func (WorkTallyEntry) TableName() string {
	return "work_tally_entries"
}
