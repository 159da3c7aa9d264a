package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

func TestListNetworks(t *testing.T) {
	t.Run("single network is selected implicitly", func(t *testing.T) {
		resolver := &mockNetworkResolver{networks: map[string]*config.Network{
			"swisstronik": {Name: "swisstronik", RPCURL: "https://json-rpc.testnet.swisstronik.com", ChainID: 1291},
		}}
		uc := NewListNetworks(&config.RuntimeConfig{}, resolver)

		result, err := uc.Run(context.Background(), ListNetworksParams{})
		require.NoError(t, err)
		require.Len(t, result.Networks, 1)
		assert.Equal(t, "swisstronik", result.Networks[0].Name)
		assert.Equal(t, uint64(1291), result.Networks[0].ChainID)
		assert.NoError(t, result.Networks[0].Error)
		assert.Equal(t, "swisstronik", result.Selected)
	})

	t.Run("ambiguous selection", func(t *testing.T) {
		resolver := &mockNetworkResolver{networks: map[string]*config.Network{
			"anvil":   {Name: "anvil", RPCURL: "http://localhost:8545"},
			"sepolia": {Name: "sepolia", RPCURL: "https://rpc.sepolia.org", ChainID: 11155111},
		}}
		uc := NewListNetworks(&config.RuntimeConfig{}, resolver)

		result, err := uc.Run(context.Background(), ListNetworksParams{})
		require.NoError(t, err)
		names := []string{result.Networks[0].Name, result.Networks[1].Name}
		sort.Strings(names)
		assert.Equal(t, []string{"anvil", "sepolia"}, names)
		assert.Empty(t, result.Selected)
	})

	t.Run("explicit selection", func(t *testing.T) {
		resolver := &mockNetworkResolver{networks: map[string]*config.Network{
			"anvil":   {Name: "anvil", RPCURL: "http://localhost:8545"},
			"sepolia": {Name: "sepolia", RPCURL: "https://rpc.sepolia.org", ChainID: 11155111},
		}}
		uc := NewListNetworks(&config.RuntimeConfig{NetworkName: "sepolia"}, resolver)

		result, err := uc.Run(context.Background(), ListNetworksParams{})
		require.NoError(t, err)
		assert.Equal(t, "sepolia", result.Selected)
	})
}
