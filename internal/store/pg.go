package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays
// under PostgreSQL's extended-protocol limit of 65535 parameters per query,
// with headroom for ON CONFLICT clauses and GORM bookkeeping.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	safeBatchSize := max((maxParams-totalHeadroom)/fieldsPerRecord, 1)
	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// proofToRow converts a domain proof to its table representation
func proofToRow(proof *domain.WorkProof) (*schema.WorkProof, error) {
	value, err := json.Marshal(proof.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proof value: %w", err)
	}

	return &schema.WorkProof{
		Slot:        proof.Slot,
		NodeID:      proof.NodeID,
		ProofType:   proof.Type,
		PoolID:      proof.PoolID,
		Value:       value,
		Signature:   proof.Signature,
		SubmittedAt: proof.SubmittedAt,
	}, nil
}

// rowToProof converts a table row back to the domain proof
func rowToProof(row *schema.WorkProof) (*domain.WorkProof, error) {
	var value domain.ProofValue
	if err := json.Unmarshal(row.Value, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal proof value: %w", err)
	}

	return &domain.WorkProof{
		NodeID:      row.NodeID,
		PoolID:      row.PoolID,
		Slot:        row.Slot,
		Type:        row.ProofType,
		Value:       value,
		Signature:   row.Signature,
		SubmittedAt: row.SubmittedAt,
	}, nil
}

// UpsertProof stores an accepted proof with last-write-wins semantics and
// appends the raw submission to the audit log in the same transaction
func (s *pgStore) UpsertProof(ctx context.Context, proof *domain.WorkProof) error {
	row, err := proofToRow(proof)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(proof)
	if err != nil {
		return fmt.Errorf("failed to marshal proof for audit: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace, never merge: a duplicate (slot, node_id, proof_type)
		// submission overwrites the prior value so resubmission cannot
		// double-count work
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot"}, {Name: "node_id"}, {Name: "proof_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pool_id", "value", "signature", "submitted_at", "updated_at",
			}),
		}).Create(row).Error; err != nil {
			return fmt.Errorf("failed to upsert proof: %w", err)
		}

		audit := schema.ProofAuditRecord{
			ID:        uuid.NewString(),
			Slot:      proof.Slot,
			NodeID:    proof.NodeID,
			ProofType: proof.Type,
			Raw:       raw,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to append audit record: %w", err)
		}

		return nil
	})
}

// GetProofsBySlot retrieves all accepted proofs for a slot
func (s *pgStore) GetProofsBySlot(ctx context.Context, slot uint64) ([]*domain.WorkProof, error) {
	var rows []schema.WorkProof
	err := s.db.WithContext(ctx).
		Where("slot = ?", slot).
		Order("node_id ASC, proof_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get proofs for slot: %w", err)
	}

	return rowsToProofs(rows)
}

// GetProofsByNode retrieves a node's accepted proofs over an inclusive slot range
func (s *pgStore) GetProofsByNode(ctx context.Context, nodeID string, fromSlot, toSlot uint64) ([]*domain.WorkProof, error) {
	var rows []schema.WorkProof
	err := s.db.WithContext(ctx).
		Where("node_id = ? AND slot >= ? AND slot <= ?", nodeID, fromSlot, toSlot).
		Order("slot ASC, proof_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get proofs for node: %w", err)
	}

	return rowsToProofs(rows)
}

// GetProofsBySlotRange retrieves all accepted proofs over an inclusive slot range
func (s *pgStore) GetProofsBySlotRange(ctx context.Context, fromSlot, toSlot uint64) ([]*domain.WorkProof, error) {
	var rows []schema.WorkProof
	err := s.db.WithContext(ctx).
		Where("slot >= ? AND slot <= ?", fromSlot, toSlot).
		Order("slot ASC, node_id ASC, proof_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get proofs for slot range: %w", err)
	}

	return rowsToProofs(rows)
}

func rowsToProofs(rows []schema.WorkProof) ([]*domain.WorkProof, error) {
	proofs := make([]*domain.WorkProof, 0, len(rows))
	for i := range rows {
		proof, err := rowToProof(&rows[i])
		if err != nil {
			return nil, err
		}
		proofs = append(proofs, proof)
	}
	return proofs, nil
}

// ReplaceEpochTally atomically replaces the epoch's tally rows. Writing is
// refused once a schedule exists for the epoch, since the schedule was
// derived from the tally and the tally is then immutable history.
func (s *pgStore) ReplaceEpochTally(ctx context.Context, epoch domain.Epoch, entries []*domain.WorkTallyEntry) error {
	rows := make([]schema.WorkTallyEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, schema.WorkTallyEntry{
			Epoch:     uint64(entry.Epoch),
			EntityID:  entry.EntityID,
			Credits:   entry.Credits,
			LiveScore: entry.LiveScore,
			Rank:      entry.Rank,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var scheduled int64
		if err := tx.Model(&schema.LeaderScheduleEntry{}).
			Where("epoch = ?", uint64(epoch)).
			Count(&scheduled).Error; err != nil {
			return fmt.Errorf("failed to check epoch schedule: %w", err)
		}
		if scheduled > 0 {
			return domain.ErrTallyFinalized
		}

		if err := tx.Where("epoch = ?", uint64(epoch)).
			Delete(&schema.WorkTallyEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear prior tally: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		batchSize := calculateSafeBatchSize(len(rows), 6)
		if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
			return fmt.Errorf("failed to write tally rows: %w", err)
		}

		return nil
	})
}

// GetEpochTally retrieves the epoch's tally rows ordered by rank ascending
func (s *pgStore) GetEpochTally(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error) {
	var rows []schema.WorkTallyEntry
	err := s.db.WithContext(ctx).
		Where("epoch = ?", uint64(epoch)).
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get epoch tally: %w", err)
	}

	entries := make([]*domain.WorkTallyEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, &domain.WorkTallyEntry{
			Epoch:     domain.Epoch(rows[i].Epoch),
			EntityID:  rows[i].EntityID,
			Credits:   rows[i].Credits,
			LiveScore: rows[i].LiveScore,
			Rank:      rows[i].Rank,
		})
	}

	return entries, nil
}

// CreateEpochSchedule atomically writes all slot schedule rows for an epoch.
// Schedules are write-once per epoch; a second attempt fails with
// domain.ErrScheduleConflict and leaves the original schedule untouched.
func (s *pgStore) CreateEpochSchedule(ctx context.Context, epoch domain.Epoch, entries []*domain.LeaderScheduleEntry) error {
	rows := make([]schema.LeaderScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		fallbacks, err := json.Marshal(entry.Fallbacks)
		if err != nil {
			return fmt.Errorf("failed to marshal fallbacks: %w", err)
		}
		rows = append(rows, schema.LeaderScheduleEntry{
			Slot:          entry.Slot,
			Epoch:         uint64(entry.Epoch),
			PrimaryEntity: entry.Primary,
			Fallbacks:     fallbacks,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&schema.LeaderScheduleEntry{}).
			Where("epoch = ?", uint64(epoch)).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing schedule: %w", err)
		}
		if existing > 0 {
			return domain.ErrScheduleConflict
		}

		batchSize := calculateSafeBatchSize(len(rows), 7)
		if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
			return fmt.Errorf("failed to write schedule rows: %w", err)
		}

		return nil
	})

	// A concurrent writer that slipped past the count check trips the slot
	// primary key instead; surface that as the same conflict
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrScheduleConflict
	}

	return err
}

// GetScheduleEntry retrieves one slot's schedule entry
func (s *pgStore) GetScheduleEntry(ctx context.Context, slot uint64) (*domain.LeaderScheduleEntry, error) {
	var row schema.LeaderScheduleEntry
	err := s.db.WithContext(ctx).Where("slot = ?", slot).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule entry: %w", err)
	}

	return rowToScheduleEntry(&row)
}

// GetEpochSchedule retrieves the epoch's schedule ordered by slot ascending
func (s *pgStore) GetEpochSchedule(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error) {
	var rows []schema.LeaderScheduleEntry
	err := s.db.WithContext(ctx).
		Where("epoch = ?", uint64(epoch)).
		Order("slot ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get epoch schedule: %w", err)
	}

	entries := make([]*domain.LeaderScheduleEntry, 0, len(rows))
	for i := range rows {
		entry, err := rowToScheduleEntry(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// IsEpochScheduled reports whether a schedule exists for the epoch
func (s *pgStore) IsEpochScheduled(ctx context.Context, epoch domain.Epoch) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.LeaderScheduleEntry{}).
		Where("epoch = ?", uint64(epoch)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check epoch schedule: %w", err)
	}

	return count > 0, nil
}

// RecordSlotResult writes a slot's result exactly once. The update is
// guarded by resolved_at IS NULL so a racing second writer loses cleanly.
func (s *pgStore) RecordSlotResult(ctx context.Context, result *domain.SlotResult) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.LeaderScheduleEntry
		err := tx.Where("slot = ?", result.Slot).First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrScheduleNotFound
			}
			return fmt.Errorf("failed to get schedule entry: %w", err)
		}

		if row.ResolvedAt != nil {
			return domain.ErrResultAlreadyRecorded
		}

		update := tx.Model(&schema.LeaderScheduleEntry{}).
			Where("slot = ? AND resolved_at IS NULL", result.Slot).
			Updates(map[string]interface{}{
				"winner":      result.Winner,
				"reason":      result.Reason,
				"resolved_at": gorm.Expr("now()"),
			})
		if update.Error != nil {
			return fmt.Errorf("failed to record slot result: %w", update.Error)
		}
		if update.RowsAffected == 0 {
			return domain.ErrResultAlreadyRecorded
		}

		return nil
	})
}

func rowToScheduleEntry(row *schema.LeaderScheduleEntry) (*domain.LeaderScheduleEntry, error) {
	var fallbacks []string
	if err := json.Unmarshal(row.Fallbacks, &fallbacks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fallbacks: %w", err)
	}

	return &domain.LeaderScheduleEntry{
		Slot:       row.Slot,
		Epoch:      domain.Epoch(row.Epoch),
		Primary:    row.PrimaryEntity,
		Fallbacks:  fallbacks,
		Winner:     row.Winner,
		Reason:     row.Reason,
		ResolvedAt: row.ResolvedAt,
	}, nil
}
