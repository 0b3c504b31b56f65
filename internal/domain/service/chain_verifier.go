// Package service declares the collaborators the use cases depend on.
// Concrete implementations live under internal/infra.
package service

import (
	"context"
	"errors"
)

// ErrUnsupportedChain is returned when no read client is configured for a chain id.
var ErrUnsupportedChain = errors.New("unsupported chain")

// ChainClient verifies signed messages on a single chain. Implementations
// must accept both EOA signatures and contract-wallet (ERC-1271) signatures.
type ChainClient interface {
	VerifyMessage(ctx context.Context, address, message, signature string) (bool, error)
}

// ChainClientResolver resolves the read client for a chain id.
type ChainClientResolver interface {
	Client(chainID uint64) (ChainClient, error)
}
