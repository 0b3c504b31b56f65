package evm

import (
	"context"
	"log/slog"
	"sync"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type chainEntry struct {
	config   config.ChainConfig
	verifier *chainVerifier

	mu     sync.Mutex
	client *ethclient.Client
}

// Registry resolves chain verifiers for the configured allowlist. RPC
// clients are dialed on first use and shared afterwards.
type Registry struct {
	chains map[uint64]*chainEntry
	logger *slog.Logger
	dial   func(ctx context.Context, rawURL string) (*ethclient.Client, error)
}

// RegistryParams holds dependencies for the chain registry, injected by Fx
type RegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewChainRegistry builds the registry and closes dialed clients on shutdown.
func NewChainRegistry(params RegistryParams) service.ChainClientResolver {
	registry := newRegistry(params.Config.EVM.Chains, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			registry.Close()

			return nil
		},
	})

	return registry
}

func newRegistry(chains []config.ChainConfig, logger *slog.Logger) *Registry {
	r := &Registry{
		chains: make(map[uint64]*chainEntry, len(chains)),
		logger: logger,
		dial:   ethclient.DialContext,
	}

	for _, chain := range chains {
		entry := &chainEntry{config: chain}
		entry.verifier = &chainVerifier{
			chainID: chain.ID,
			caller: func(ctx context.Context) (contractCaller, error) {
				return r.clientFor(ctx, entry)
			},
		}
		r.chains[chain.ID] = entry
	}

	return r
}

// Client implements service.ChainClientResolver.
func (r *Registry) Client(chainID uint64) (service.ChainClient, error) {
	entry, ok := r.chains[chainID]
	if !ok {
		return nil, service.ErrUnsupportedChain
	}

	return entry.verifier, nil
}

func (r *Registry) clientFor(ctx context.Context, entry *chainEntry) (*ethclient.Client, error) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.client != nil {
		return entry.client, nil
	}

	client, err := r.dial(ctx, entry.config.RPCURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial chain %d", entry.config.ID)
	}

	r.logger.Info("Connected to chain RPC", slog.Uint64("chainID", entry.config.ID), slog.String("name", entry.config.Name))
	entry.client = client

	return client, nil
}

// Close releases every dialed RPC client.
func (r *Registry) Close() {
	for _, entry := range r.chains {
		entry.mu.Lock()
		if entry.client != nil {
			entry.client.Close()
			entry.client = nil
		}
		entry.mu.Unlock()
	}
}
