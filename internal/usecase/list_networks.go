package usecase

import (
	"context"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Selected string // network a deployment would use, empty if ambiguous
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.RPCURL = info.RPCURL
			status.ChainID = info.ChainID
		}

		networks = append(networks, status)
	}

	result := &ListNetworksResult{
		Networks: networks,
	}
	if selected, err := uc.resolver.ResolveNetwork(ctx, uc.config.NetworkName); err == nil {
		result.Selected = selected.Name
	}

	return result, nil
}
