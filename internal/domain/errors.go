package domain

import "errors"

var (
	// ErrInvalidProof is returned when a proof fails structural validation
	ErrInvalidProof = errors.New("invalid proof")

	// ErrUnknownProofType is returned when a proof carries an unrecognized type
	ErrUnknownProofType = errors.New("unknown proof type")

	// ErrInvalidSignature is returned when a proof's signature does not verify
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrProofExpired is returned when a proof's slot is older than the retention horizon
	ErrProofExpired = errors.New("proof slot is past the retention horizon")

	// ErrUnknownNode is returned when the key registry has no key for a node
	ErrUnknownNode = errors.New("node is not registered")

	// ErrEpochNotClosed is returned when tallying is attempted on an open epoch
	ErrEpochNotClosed = errors.New("epoch is not closed")

	// ErrTallyFinalized is returned when a tally write targets an epoch whose
	// schedule was already derived
	ErrTallyFinalized = errors.New("tally is finalized by an existing schedule")

	// ErrEmptyRanking is returned when scheduling finds no ranked entities
	ErrEmptyRanking = errors.New("epoch has no ranked entities")

	// ErrScheduleConflict is returned when an epoch is scheduled a second time
	ErrScheduleConflict = errors.New("epoch is already scheduled")

	// ErrScheduleNotFound is returned when no schedule entry exists for a slot
	ErrScheduleNotFound = errors.New("no schedule entry for slot")

	// ErrResultAlreadyRecorded is returned when a slot result is recorded twice
	ErrResultAlreadyRecorded = errors.New("slot result already recorded")

	// ErrInvalidResultReason is returned when a result reason is outside the closed set
	ErrInvalidResultReason = errors.New("invalid result reason")

	// ErrInvalidWinner is returned when a result winner contradicts the schedule
	ErrInvalidWinner = errors.New("winner does not match schedule")
)
