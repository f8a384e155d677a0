package jetstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/messaging"
)

type subscriber struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	streamName   string
	consumerName string
}

// NewSubscriber creates a NATS JetStream subscriber for epoch closure
// announcements. The durable consumer name keeps redelivery state across
// worker restarts.
func NewSubscriber(cfg Config, consumerName string, natsJS adapter.NatsJetStream) (messaging.Subscriber, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		nc:           nc,
		js:           js,
		streamName:   cfg.StreamName,
		consumerName: consumerName,
	}, nil
}

// SubscribeEpochClosed consumes epoch closure events until ctx is done.
// Handler failures Nak the message so JetStream redelivers it.
func (s *subscriber) SubscribeEpochClosed(ctx context.Context, handler messaging.EpochClosedHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.streamName, jetstream.ConsumerConfig{
		Durable:       s.consumerName,
		FilterSubject: messaging.SubjectEpochClosed,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create epoch closure consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(func(msg adapter.Message) {
		var event messaging.EpochClosedEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			logger.Error(err, zap.String("message", "malformed epoch closure event"))
			// Unparseable messages can never succeed; drop them
			if err := msg.Term(); err != nil {
				logger.Error(err, zap.String("message", "failed to terminate message"))
			}
			return
		}

		if err := handler(ctx, domain.Epoch(event.Epoch)); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("epoch", event.Epoch),
				zap.String("message", "epoch closure handling failed, requeueing"))
			if err := msg.Nak(); err != nil {
				logger.Error(err, zap.String("message", "failed to nak message"))
			}
			return
		}

		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "failed to ack message"))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	<-ctx.Done()
	consumeCtx.Drain()

	return nil
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
