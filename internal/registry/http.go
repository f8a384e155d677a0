package registry

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
)

// nodeKeyResponse is the wire shape of the registry service's key endpoint
type nodeKeyResponse struct {
	NodeID    string `json:"node_id"`
	PublicKey string `json:"public_key"`
}

// httpKeyRegistry resolves node keys from a remote registry service. Resolved
// keys are cached for the life of the process; node keys never rotate inside
// a deployment.
type httpKeyRegistry struct {
	client  adapter.HTTPClient
	baseURL string

	mu    sync.RWMutex
	cache map[string]ed25519.PublicKey
}

// NewHTTPKeyRegistry creates a KeyRegistry backed by a remote registry service
func NewHTTPKeyRegistry(client adapter.HTTPClient, baseURL string) KeyRegistry {
	return &httpKeyRegistry{
		client:  client,
		baseURL: baseURL,
		cache:   make(map[string]ed25519.PublicKey),
	}
}

// PublicKey returns the node's ed25519 public key, fetching from the registry
// service on cache miss
func (r *httpKeyRegistry) PublicKey(ctx context.Context, nodeID string) (ed25519.PublicKey, error) {
	r.mu.RLock()
	key, ok := r.cache[nodeID]
	r.mu.RUnlock()
	if ok {
		return key, nil
	}

	url := fmt.Sprintf("%s/v1/nodes/%s/public-key", r.baseURL, nodeID)

	var resp nodeKeyResponse
	if err := r.client.Get(ctx, url, &resp); err != nil {
		logger.WarnCtx(ctx, "node key lookup failed",
			zap.String("node_id", nodeID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNode, nodeID)
	}

	key, err := decodePublicKey(resp.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key for node %s: %w", nodeID, err)
	}

	r.mu.Lock()
	r.cache[nodeID] = key
	r.mu.Unlock()

	return key, nil
}
