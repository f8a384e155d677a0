package worker

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/messaging"
)

// EpochTallier computes and persists a closed epoch's ranking
type EpochTallier interface {
	TallyEpoch(ctx context.Context, epoch domain.Epoch) ([]*domain.WorkTallyEntry, error)
}

// EpochScheduler derives and persists an epoch's leader schedule
type EpochScheduler interface {
	ScheduleEpoch(ctx context.Context, epoch domain.Epoch) ([]*domain.LeaderScheduleEntry, error)
}

// Config holds consensus worker settings
type Config struct {
	// MaxElapsedTime bounds in-process retries for one epoch before the
	// message is handed back to JetStream for redelivery
	MaxElapsedTime time.Duration
}

// Worker drives epoch processing: for every epoch closure announcement it
// tallies the epoch and then derives its leader schedule. Both steps are
// idempotent, so a redelivered announcement converges to the same state.
type Worker struct {
	cfg       Config
	sub       messaging.Subscriber
	tallier   EpochTallier
	scheduler EpochScheduler
}

// NewWorker creates a consensus worker
func NewWorker(cfg Config, sub messaging.Subscriber, tallier EpochTallier, scheduler EpochScheduler) *Worker {
	if cfg.MaxElapsedTime == 0 {
		cfg.MaxElapsedTime = 5 * time.Minute
	}
	return &Worker{
		cfg:       cfg,
		sub:       sub,
		tallier:   tallier,
		scheduler: scheduler,
	}
}

// Run consumes epoch closure announcements until ctx is done
func (w *Worker) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "consensus worker starting")
	return w.sub.SubscribeEpochClosed(ctx, w.ProcessEpoch)
}

// ProcessEpoch tallies a closed epoch and derives its schedule, retrying
// transient failures with exponential backoff. Terminal conditions:
//   - tally finalized or schedule conflict: the epoch was already processed,
//     treated as success
//   - empty ranking: no schedule can ever be produced, surfaced as an error
func (w *Worker) ProcessEpoch(ctx context.Context, epoch domain.Epoch) error {
	operation := func() error {
		if _, err := w.tallier.TallyEpoch(ctx, epoch); err != nil {
			if errors.Is(err, domain.ErrTallyFinalized) {
				// A schedule already exists, so both steps are done
				logger.InfoCtx(ctx, "epoch already processed",
					zap.Uint64("epoch", uint64(epoch)))
				return nil
			}
			// Everything else, including ErrEpochNotClosed from residual
			// clock skew, is transient and retried
			return err
		}

		if _, err := w.scheduler.ScheduleEpoch(ctx, epoch); err != nil {
			if errors.Is(err, domain.ErrScheduleConflict) {
				// Another worker won the write-once race
				logger.InfoCtx(ctx, "epoch already scheduled",
					zap.Uint64("epoch", uint64(epoch)))
				return nil
			}
			if errors.Is(err, domain.ErrEmptyRanking) {
				return backoff.Permanent(err)
			}
			return err
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = w.cfg.MaxElapsedTime

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("epoch", uint64(epoch)),
			zap.String("message", "epoch processing failed"))
		return err
	}

	logger.InfoCtx(ctx, "epoch processed", zap.Uint64("epoch", uint64(epoch)))
	return nil
}
