package adapters

import (
	"github.com/google/wire"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/blockchain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/contracts"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/fs"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/network"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/signers"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewAddressWriterAdapter,
	wire.Bind(new(usecase.AddressWriter), new(*fs.AddressWriterAdapter)),
)

// ContractsSet provides the artifact repository
var ContractsSet = wire.NewSet(
	contracts.NewIndexer,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Indexer)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),

	signers.NewProvider,
	wire.Bind(new(usecase.SignerProvider), new(*signers.Provider)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ContractsSet,
	ConfigSet,
	BlockchainSet,
)
