package network

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

func newTestResolver(networks ...config.Network) *Resolver {
	cfg := &config.RuntimeConfig{Networks: make(map[string]config.Network)}
	for _, n := range networks {
		cfg.Networks[n.Name] = n
	}
	return NewResolver(cfg)
}

func TestResolver_GetNetworks(t *testing.T) {
	r := newTestResolver(
		config.Network{Name: "sepolia", RPCURL: "https://rpc.sepolia.org"},
		config.Network{Name: "anvil", RPCURL: "http://localhost:8545"},
		config.Network{Name: "swisstronik", RPCURL: "https://json-rpc.testnet.swisstronik.com"},
	)

	assert.Equal(t, []string{"anvil", "sepolia", "swisstronik"}, r.GetNetworks(context.Background()))
}

func TestResolver_ResolveNetwork(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		networks  []config.Network
		query     string
		wantName  string
		wantError string
	}{
		{
			name:     "explicit name",
			networks: []config.Network{{Name: "anvil", RPCURL: "http://localhost:8545"}, {Name: "sepolia", RPCURL: "https://rpc.sepolia.org"}},
			query:    "sepolia",
			wantName: "sepolia",
		},
		{
			name:     "case insensitive",
			networks: []config.Network{{Name: "swisstronik", RPCURL: "https://json-rpc.testnet.swisstronik.com"}},
			query:    "Swisstronik",
			wantName: "swisstronik",
		},
		{
			name:     "single network selected implicitly",
			networks: []config.Network{{Name: "swisstronik", RPCURL: "https://json-rpc.testnet.swisstronik.com"}},
			wantName: "swisstronik",
		},
		{
			name:     "default network selected implicitly",
			networks: []config.Network{{Name: "default", RPCURL: "http://localhost:8545"}, {Name: "sepolia", RPCURL: "https://rpc.sepolia.org"}},
			wantName: "default",
		},
		{
			name:      "ambiguous",
			networks:  []config.Network{{Name: "anvil", RPCURL: "http://localhost:8545"}, {Name: "sepolia", RPCURL: "https://rpc.sepolia.org"}},
			wantError: "multiple networks configured (anvil, sepolia)",
		},
		{
			name:      "nothing configured",
			wantError: "no network configured",
		},
		{
			name:      "unknown name",
			networks:  []config.Network{{Name: "anvil", RPCURL: "http://localhost:8545"}},
			query:     "mainnet",
			wantError: "network 'mainnet' is not configured (available: anvil)",
		},
		{
			name:      "empty rpc url",
			networks:  []config.Network{{Name: "sepolia"}},
			query:     "sepolia",
			wantError: "network 'sepolia' has no rpc_url",
		},
		{
			name:      "unset rpc url variable",
			networks:  []config.Network{{Name: "swisstronik", RPCURLEnv: "SWISSTRONIK_RPC_URL"}},
			query:     "swisstronik",
			wantError: "environment variable SWISSTRONIK_RPC_URL is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.networks...)
			network, err := r.ResolveNetwork(ctx, tt.query)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, network.Name)
		})
	}
}

func TestResolver_CaseInsensitiveMatchIsStable(t *testing.T) {
	r := newTestResolver(
		config.Network{Name: "Sepolia", RPCURL: "https://rpc.sepolia.org"},
		config.Network{Name: "SEPOLIA", RPCURL: "https://ethereum-sepolia.publicnode.com"},
	)

	// Map iteration order varies between calls, the pick must not
	for i := 0; i < 20; i++ {
		network, err := r.ResolveNetwork(context.Background(), "sepolia")
		require.NoError(t, err)
		assert.Equal(t, "SEPOLIA", network.Name)
	}
}
