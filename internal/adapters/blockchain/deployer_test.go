package blockchain

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
)

const (
	// Returns a single STOP byte as runtime code; trailing constructor input is ignored
	storeStopBytecode = "0x6001600c60003960016000f300"
	// PUSH1 0 PUSH1 0 REVERT
	revertBytecode = "0x60006000fd"

	ownerConstructorABI = `[{"type":"constructor","inputs":[{"name":"owner","type":"address"}],"stateMutability":"nonpayable"}]`
)

// autoCommitBackend mines a block after every transaction so WaitMined returns
type autoCommitBackend struct {
	simulated.Client
	sim      *simulated.Backend
	gasLimit uint64
	closed   int
}

// Close is counted only; the simulated chain is closed by the test cleanup
func (b *autoCommitBackend) Close() {
	b.closed++
}

func (b *autoCommitBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := b.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	b.sim.Commit()
	return nil
}

func (b *autoCommitBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if b.gasLimit > 0 {
		return b.gasLimit, nil
	}
	return b.Client.EstimateGas(ctx, msg)
}

type testChain struct {
	backend *autoCommitBackend
	key     *ecdsa.PrivateKey
	signer  *models.Signer
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	sim := simulated.NewBackend(types.GenesisAlloc{address: {Balance: balance}})
	t.Cleanup(func() { _ = sim.Close() })

	return &testChain{
		backend: &autoCommitBackend{Client: sim.Client(), sim: sim},
		key:     key,
		signer:  &models.Signer{Name: "deployer", Address: address, PrivateKey: key},
	}
}

func (c *testChain) deployer() *Deployer {
	return NewDeployerWithDialer(
		func(context.Context, string) (Backend, error) { return c.backend, nil },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (c *testChain) chainID(t *testing.T) uint64 {
	t.Helper()
	id, err := c.backend.ChainID(context.Background())
	require.NoError(t, err)
	return id.Uint64()
}

func testContract(bytecode string) *models.Contract {
	return &models.Contract{
		Name:       "PrivateNFT",
		SourceName: "contracts/PrivateNFT.sol",
		Artifact: &models.Artifact{
			ContractName: "PrivateNFT",
			ABI:          json.RawMessage(ownerConstructorABI),
			Bytecode:     models.BytecodeObject{Object: bytecode},
		},
	}
}

func TestDeployer_Connect(t *testing.T) {
	ctx := context.Background()
	chain := newTestChain(t)
	chainID := chain.chainID(t)

	t.Run("accepts node chain id when unset", func(t *testing.T) {
		got, err := chain.deployer().Connect(ctx, &config.Network{Name: "local", RPCURL: "sim"})
		require.NoError(t, err)
		assert.Equal(t, chainID, got)
	})

	t.Run("matching chain id", func(t *testing.T) {
		got, err := chain.deployer().Connect(ctx, &config.Network{Name: "local", RPCURL: "sim", ChainID: chainID})
		require.NoError(t, err)
		assert.Equal(t, chainID, got)
	})

	t.Run("chain id mismatch closes the connection", func(t *testing.T) {
		closed := chain.backend.closed
		_, err := chain.deployer().Connect(ctx, &config.Network{Name: "local", RPCURL: "sim", ChainID: chainID + 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain ID mismatch")
		assert.Equal(t, closed+1, chain.backend.closed)
	})

	t.Run("close releases the backend", func(t *testing.T) {
		d := chain.deployer()
		_, err := d.Connect(ctx, &config.Network{Name: "local", RPCURL: "sim"})
		require.NoError(t, err)

		closed := chain.backend.closed
		d.Close()
		assert.Equal(t, closed+1, chain.backend.closed)

		// Second close is a no-op
		d.Close()
		assert.Equal(t, closed+1, chain.backend.closed)

		_, err = d.Deploy(ctx, chain.signer, testContract(storeStopBytecode), chain.signer.Address)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not connected")
	})

	t.Run("dial failure", func(t *testing.T) {
		dialErr := errors.New("connection refused")
		d := chain.deployer()
		d.dial = func(context.Context, string) (Backend, error) { return nil, dialErr }

		_, err := d.Connect(ctx, &config.Network{Name: "local", RPCURL: "http://127.0.0.1:1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, dialErr)
		assert.Contains(t, err.Error(), "failed to connect to RPC")
	})
}

func TestDeployer_DeployAndWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	chain := newTestChain(t)
	d := chain.deployer()
	_, err := d.Connect(ctx, &config.Network{Name: "local", RPCURL: "sim"})
	require.NoError(t, err)

	deployment, err := d.Deploy(ctx, chain.signer, testContract(storeStopBytecode), chain.signer.Address)
	require.NoError(t, err)
	assert.Equal(t, models.DeploymentStatusPending, deployment.Status)
	assert.Equal(t, "PrivateNFT", deployment.ContractName)
	assert.Equal(t, chain.signer.Address, deployment.Deployer)
	assert.Equal(t, crypto.CreateAddress(chain.signer.Address, 0), deployment.Address)
	assert.False(t, deployment.IsConfirmed())

	require.NoError(t, d.WaitForDeployment(ctx, deployment))
	assert.True(t, deployment.IsConfirmed())
	assert.NotZero(t, deployment.BlockNumber)
	assert.NotZero(t, deployment.GasUsed)

	code, err := chain.backend.CodeAt(ctx, deployment.Address, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, code)
	assert.Len(t, deployment.AddressHex(), 42)
}

func TestDeployer_DeployErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("not connected", func(t *testing.T) {
		chain := newTestChain(t)
		_, err := chain.deployer().Deploy(ctx, chain.signer, testContract(storeStopBytecode), chain.signer.Address)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not connected")
	})

	tests := []struct {
		name      string
		contract  *models.Contract
		withOwner bool
		wantError string
	}{
		{
			name:      "missing artifact",
			contract:  &models.Contract{Name: "PrivateNFT"},
			wantError: "no artifact loaded",
		},
		{
			name:      "empty bytecode",
			contract:  testContract("0x"),
			wantError: "no creation bytecode",
		},
		{
			name:      "missing constructor argument",
			contract:  testContract(storeStopBytecode),
			wantError: "failed to encode constructor arguments",
		},
		{
			name:      "reverting constructor fails estimation",
			contract:  testContract(revertBytecode),
			withOwner: true,
			wantError: "failed to submit deployment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := newTestChain(t)
			d := chain.deployer()
			_, err := d.Connect(ctx, &config.Network{Name: "local", RPCURL: "sim"})
			require.NoError(t, err)

			var args []any
			if tt.withOwner {
				args = append(args, chain.signer.Address)
			}
			_, err = d.Deploy(ctx, chain.signer, tt.contract, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestDeployer_WaitForRevertedDeployment(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	chain := newTestChain(t)
	// Skip estimation so the revert only surfaces in the receipt
	chain.backend.gasLimit = 100_000
	d := chain.deployer()
	_, err := d.Connect(ctx, &config.Network{Name: "local", RPCURL: "sim"})
	require.NoError(t, err)

	deployment, err := d.Deploy(ctx, chain.signer, testContract(revertBytecode), chain.signer.Address)
	require.NoError(t, err)

	err = d.WaitForDeployment(ctx, deployment)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
	assert.False(t, deployment.IsConfirmed())
}

func TestDeployer_WaitHonorsContext(t *testing.T) {
	chain := newTestChain(t)
	d := chain.deployer()
	_, err := d.Connect(context.Background(), &config.Network{Name: "local", RPCURL: "sim"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = d.WaitForDeployment(ctx, &models.Deployment{TxHash: [32]byte{0x01}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
