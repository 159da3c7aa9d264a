package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
)

// SignerProvider provisions the identities able to authorize transactions.
// The first signer returned is the deployer.
type SignerProvider interface {
	Signers(ctx context.Context) ([]*models.Signer, error)
}

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	GetContract(ctx context.Context, query domain.ContractQuery) (*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// ContractDeployer submits contract creation transactions and waits for them
type ContractDeployer interface {
	// Connect dials the network and returns its chain ID
	Connect(ctx context.Context, network *config.Network) (uint64, error)
	// Deploy submits the creation transaction and returns a pending deployment
	Deploy(ctx context.Context, signer *models.Signer, contract *models.Contract, args ...any) (*models.Deployment, error)
	// WaitForDeployment blocks until the deployment is confirmed and marks it so
	WaitForDeployment(ctx context.Context, deployment *models.Deployment) error
	// Close releases the connection opened by Connect
	Close()
}

// AddressWriter persists a deployed contract address
type AddressWriter interface {
	WriteAddress(ctx context.Context, path string, address common.Address) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
