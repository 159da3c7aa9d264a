package network

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// DefaultNetworkName is picked when several networks exist and none is selected
const DefaultNetworkName = "default"

// Resolver resolves network names against the runtime configuration
type Resolver struct {
	networks map[string]config.Network
}

// NewResolver creates a new network resolver
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	return &Resolver{
		networks: cfg.Networks,
	}
}

// GetNetworks returns the configured network names, sorted
func (r *Resolver) GetNetworks(ctx context.Context) []string {
	names := lo.Keys(r.networks)
	sort.Strings(names)
	return names
}

// ResolveNetwork looks up a network by name. An empty name selects the only
// configured network, or the one named "default".
func (r *Resolver) ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error) {
	if networkName == "" {
		return r.resolveImplicit(ctx)
	}

	network, ok := r.networks[networkName]
	if !ok {
		// Case-insensitive fallback, first match in sorted order
		for _, name := range r.GetNetworks(ctx) {
			if strings.EqualFold(name, networkName) {
				network, ok = r.networks[name], true
				break
			}
		}
	}
	if !ok {
		return nil, fmt.Errorf("network '%s' is not configured (available: %s)",
			networkName, available(r.GetNetworks(ctx)))
	}
	if network.RPCURL == "" && network.RPCURLEnv != "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url: environment variable %s is not set", networkName, network.RPCURLEnv)
	}
	if network.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url", networkName)
	}

	if network.Name == "" {
		network.Name = networkName
	}
	return &network, nil
}

func (r *Resolver) resolveImplicit(ctx context.Context) (*config.Network, error) {
	names := r.GetNetworks(ctx)
	switch {
	case len(names) == 0:
		return nil, fmt.Errorf("no network configured: set RPC_URL or add [networks] to deploy.toml")
	case len(names) == 1:
		return r.ResolveNetwork(ctx, names[0])
	case lo.Contains(names, DefaultNetworkName):
		return r.ResolveNetwork(ctx, DefaultNetworkName)
	default:
		return nil, fmt.Errorf("multiple networks configured (%s): select one with --network", available(names))
	}
}

func available(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*Resolver)(nil)
