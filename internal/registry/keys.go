package registry

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucid-net/poot-engine/internal/domain"
)

// KeyRegistry resolves node identities to their ed25519 public keys. Proof
// signature verification depends on it; a node missing from the registry
// cannot have proofs accepted.
//
//go:generate mockgen -source=keys.go -destination=../mocks/key_registry.go -package=mocks -mock_names=KeyRegistry=MockKeyRegistry
type KeyRegistry interface {
	// PublicKey returns the node's ed25519 public key, or
	// domain.ErrUnknownNode for unregistered nodes
	PublicKey(ctx context.Context, nodeID string) (ed25519.PublicKey, error)
}

// KeyFileData represents the structure of the node key file
// Key format: "node_id" -> hex-encoded ed25519 public key
type KeyFileData map[string]string

// fileKeyRegistry is the file-backed implementation of KeyRegistry
type fileKeyRegistry struct {
	keys map[string]ed25519.PublicKey
}

// LoadKeyFile loads the node key registry from a JSON file
func LoadKeyFile(filePath string) (KeyRegistry, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var fileData KeyFileData
	if err := json.Unmarshal(data, &fileData); err != nil {
		return nil, fmt.Errorf("failed to parse key file JSON: %w", err)
	}

	reg := &fileKeyRegistry{
		keys: make(map[string]ed25519.PublicKey, len(fileData)),
	}

	for nodeID, hexKey := range fileData {
		key, err := decodePublicKey(hexKey)
		if err != nil {
			return nil, fmt.Errorf("invalid public key for node %s: %w", nodeID, err)
		}
		reg.keys[nodeID] = key
	}

	return reg, nil
}

// PublicKey returns the node's ed25519 public key
func (r *fileKeyRegistry) PublicKey(_ context.Context, nodeID string) (ed25519.PublicKey, error) {
	key, ok := r.keys[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNode, nodeID)
	}
	return key, nil
}

// decodePublicKey decodes and length-checks a hex-encoded ed25519 public key
func decodePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("not valid hex: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("unexpected key length %d", len(raw))
	}
	return ed25519.PublicKey(raw), nil
}
