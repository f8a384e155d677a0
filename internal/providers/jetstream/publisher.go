package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// connect dials NATS with reconnect handlers shared by publisher and subscriber
func connect(cfg Config, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return nc, js, nil
}

type publisher struct {
	nc adapter.NatsConn
	js adapter.JetStream
}

// NewPublisher creates a new NATS JetStream publisher for engine events
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &publisher{nc: nc, js: js}, nil
}

// PublishProofAccepted announces a persisted proof submission
func (p *publisher) PublishProofAccepted(ctx context.Context, proof *domain.WorkProof) error {
	return p.publish(ctx, messaging.SubjectProofAccepted, messaging.ProofAcceptedEvent{
		Slot:     proof.Slot,
		NodeID:   proof.NodeID,
		EntityID: proof.EntityID(),
		Type:     proof.Type,
	})
}

// PublishSlotResolved announces a recorded slot result
func (p *publisher) PublishSlotResolved(ctx context.Context, result *domain.SlotResult) error {
	return p.publish(ctx, messaging.SubjectSlotResolved, messaging.SlotResolvedEvent{
		Slot:   result.Slot,
		Winner: result.Winner,
		Reason: result.Reason,
	})
}

func (p *publisher) publish(ctx context.Context, subject string, event interface{}) error {
	logger.DebugCtx(ctx, "publishing event", zap.String("subject", subject), zap.Any("event", event))

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
