package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// Backend is the subset of an RPC client needed to deploy and confirm contracts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// DialFunc opens a backend for an RPC endpoint
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

func dialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Deployer implements the ContractDeployer interface using ethclient
type Deployer struct {
	dial    DialFunc
	log     *slog.Logger
	backend Backend
	chainID *big.Int
}

// NewDeployer creates a new deployer that dials networks over JSON-RPC
func NewDeployer(log *slog.Logger) *Deployer {
	return NewDeployerWithDialer(dialEthClient, log)
}

// NewDeployerWithDialer creates a deployer that opens backends with dial
func NewDeployerWithDialer(dial DialFunc, log *slog.Logger) *Deployer {
	return &Deployer{
		dial: dial,
		log:  log.With("component", "deployer"),
	}
}

// Connect establishes connection to the blockchain and verifies the chain ID
func (d *Deployer) Connect(ctx context.Context, network *config.Network) (uint64, error) {
	backend, err := d.dial(ctx, network.RPCURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		backend.Close()
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// A chain ID of 0 means "whatever the node reports"
	if network.ChainID != 0 && networkChainID.Uint64() != network.ChainID {
		backend.Close()
		return 0, fmt.Errorf("chain ID mismatch: expected %d, got %d", network.ChainID, networkChainID.Uint64())
	}

	d.Close()
	d.backend = backend
	d.chainID = networkChainID
	d.log.Debug("connected", "network", network.Name, "chain_id", networkChainID.Uint64())
	return networkChainID.Uint64(), nil
}

// Close releases the connection opened by Connect
func (d *Deployer) Close() {
	if d.backend != nil {
		d.backend.Close()
		d.backend = nil
	}
}

// Deploy signs and submits the creation transaction for contract
func (d *Deployer) Deploy(ctx context.Context, signer *models.Signer, contract *models.Contract, args ...any) (*models.Deployment, error) {
	if d.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	if contract.Artifact == nil {
		return nil, fmt.Errorf("contract %s has no artifact loaded", contract.Name)
	}

	bytecode, err := contract.Artifact.CreationCode()
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	parsed, err := contract.Artifact.ParseABI()
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	// An empty method name packs constructor arguments
	input, err := parsed.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	opts := bind.NewKeyedTransactor(signer.PrivateKey, d.chainID)
	opts.Context = ctx

	address, tx, err := bind.DeployContract(opts, bytecode, d.backend, input)
	if err != nil {
		return nil, fmt.Errorf("failed to submit deployment: %w", err)
	}
	d.log.Debug("deployment submitted", "contract", contract.Name, "tx", tx.Hash().Hex(), "address", address.Hex())

	return &models.Deployment{
		ContractName: contract.Name,
		ChainID:      d.chainID.Uint64(),
		Deployer:     signer.Address,
		TxHash:       tx.Hash(),
		Address:      address,
		Status:       models.DeploymentStatusPending,
	}, nil
}

// WaitForDeployment blocks until the creation transaction is mined, then
// checks the receipt and that code exists at the deployed address.
func (d *Deployer) WaitForDeployment(ctx context.Context, deployment *models.Deployment) error {
	if d.backend == nil {
		return fmt.Errorf("not connected to blockchain")
	}

	receipt, err := bind.WaitMined(ctx, d.backend, deployment.TxHash)
	if err != nil {
		return fmt.Errorf("failed waiting for transaction %s: %w", deployment.TxHash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("deployment transaction %s reverted in block %d", deployment.TxHash.Hex(), receipt.BlockNumber.Uint64())
	}
	if receipt.ContractAddress != deployment.Address {
		return fmt.Errorf("receipt contract address %s does not match expected %s", receipt.ContractAddress.Hex(), deployment.Address.Hex())
	}

	code, err := d.backend.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("no code at address %s", receipt.ContractAddress.Hex())
	}

	deployment.BlockNumber = receipt.BlockNumber.Uint64()
	deployment.GasUsed = receipt.GasUsed
	deployment.Status = models.DeploymentStatusConfirmed
	d.log.Debug("deployment mined", "block", deployment.BlockNumber, "gas_used", deployment.GasUsed)
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*Deployer)(nil)
