package app

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/blockchain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/contracts"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/fs"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/network"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/progress"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/signers"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli/render"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// Returns a single STOP byte as runtime code; the constructor argument is ignored
const storeStopBytecode = "0x6001600c60003960016000f300"

const privateNFTArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "PrivateNFT",
  "sourceName": "contracts/PrivateNFT.sol",
  "abi": [{"type": "constructor", "inputs": [{"name": "initialOwner", "type": "address"}], "stateMutability": "nonpayable"}],
  "bytecode": "` + storeStopBytecode + `",
  "deployedBytecode": "0x00"
}`

// simulatedChain mines a block after every transaction
type simulatedChain struct {
	simulated.Client
	sim    *simulated.Backend
	closed int
}

func (c *simulatedChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.sim.Commit()
	return nil
}

func (c *simulatedChain) Close() {
	c.closed++
}

func writeProject(t *testing.T, privateKey string) string {
	t.Helper()
	t.Setenv("RPC_URL", "")
	t.Setenv("PRIVATE_KEY", "")
	t.Setenv("DEPLOY_NETWORK", "")
	t.Setenv("DEPLOY_CONTRACT", "")
	t.Setenv("DEPLOY_OUTPUT", "")

	root := t.TempDir()
	deployToml := fmt.Sprintf(`network = "local"

[networks.local]
rpc_url = "http://127.0.0.1:8545"

[accounts.deployer]
type = "private_key"
private_key = "0x%s"
`, privateKey)
	require.NoError(t, os.WriteFile(filepath.Join(root, "deploy.toml"), []byte(deployToml), 0644))

	dir := filepath.Join(root, "artifacts", "contracts", "PrivateNFT.sol")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PrivateNFT.json"), []byte(privateNFTArtifact), 0644))
	return root
}

func TestDeployContract_EndToEnd(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	sim := simulated.NewBackend(types.GenesisAlloc{owner: {Balance: balance}})
	t.Cleanup(func() { _ = sim.Close() })
	chain := &simulatedChain{Client: sim.Client(), sim: sim}

	root := writeProject(t, hex.EncodeToString(crypto.FromECDSA(key)))

	cfg, err := config.Provider(config.SetupViper(root, nil))
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var dialed string
	deployer := blockchain.NewDeployerWithDialer(func(ctx context.Context, rpcURL string) (blockchain.Backend, error) {
		dialed = rpcURL
		return chain, nil
	}, log)

	uc := usecase.NewDeployContract(cfg,
		signers.NewProvider(cfg),
		network.NewResolver(cfg),
		contracts.NewIndexer(cfg, log),
		deployer,
		fs.NewAddressWriterAdapter(),
		progress.NewNopSink(),
		log,
	)

	result, err := uc.Run(context.Background(), usecase.DeployContractParams{})
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, render.NewDeployRenderer(&stdout).RenderDeployment(result))

	// First deployment from a fresh account lands at nonce 0
	want := crypto.CreateAddress(owner, 0)
	assert.Equal(t, want, result.Deployment.Address)
	assert.Equal(t, "Contract deployed to "+want.Hex()+"\n", stdout.String())
	assert.Equal(t, "http://127.0.0.1:8545", dialed)
	assert.Equal(t, 1, chain.closed)

	data, err := os.ReadFile(filepath.Join(root, "contract.txt"))
	require.NoError(t, err)
	assert.Equal(t, want.Hex(), string(data))
	assert.True(t, common.IsHexAddress(string(data)))

	code, err := chain.CodeAt(context.Background(), want, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, code)
}
